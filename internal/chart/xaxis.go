package chart

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// labelSpan is the number of graph columns budgeted per x-axis label.
const labelSpan = 10

// XLabelIndices picks which of count points get an x-axis label on a graph
// graphWidth columns wide. At most graphWidth/10 indices are returned; index
// 0 is always first. The last index is appended, or replaces the previous
// pick when that one sits closer than half an interval.
func XLabelIndices(count, graphWidth int) []int {
	if count <= 0 {
		return nil
	}
	maxLabels := max(1, graphWidth/labelSpan)
	if count == 1 || maxLabels == 1 {
		return []int{0}
	}

	last := count - 1
	interval := max(1, (last+maxLabels-2)/(maxLabels-1))

	indices := make([]int, 0, maxLabels)
	for i := 0; i < count; i += interval {
		indices = append(indices, i)
	}

	prev := indices[len(indices)-1]
	switch {
	case prev == last:
	case float64(last-prev) < float64(interval)/2:
		indices[len(indices)-1] = last
	default:
		indices = append(indices, last)
	}
	return indices
}

// XAxis lays out a subset of labels under a graph graphWidth columns wide,
// one label per point, indented by margin columns. Labels start at their
// point's column; a label that would begin before the previous one ends is
// dropped, and the final label is pulled left to stay inside the graph.
func XAxis(labels []string, graphWidth, margin int) string {
	indices := XLabelIndices(len(labels), graphWidth)
	if len(indices) == 0 {
		return ""
	}

	spacing := 0.0
	if len(labels) > 1 {
		spacing = float64(graphWidth) / float64(len(labels)-1)
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", margin))
	cursor := 0
	for n, idx := range indices {
		label := labels[idx]
		w := runewidth.StringWidth(label)
		pos := round(float64(idx) * spacing)
		if n == len(indices)-1 {
			pos = max(0, min(pos, graphWidth-w))
		}
		if pos < cursor {
			continue
		}
		b.WriteString(strings.Repeat(" ", pos-cursor))
		b.WriteString(label)
		cursor = pos + w
	}
	return strings.TrimRight(b.String(), " ")
}
