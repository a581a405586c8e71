package stats

import (
	"fmt"
	"math"
)

// Summary is a point-in-time read of a series.
type Summary struct {
	Count   int // non-missing points
	Missing int
	Total   float64
	Min     float64
	Max     float64
	Mean    float64
	Last    float64
}

// Summarize folds values into a Summary. NaN values count as missing.
func Summarize(values []float64) Summary {
	var s Summary
	for _, v := range values {
		if math.IsNaN(v) {
			s.Missing++
			continue
		}
		if s.Count == 0 {
			s.Min, s.Max = v, v
		}
		s.Count++
		s.Total += v
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
		s.Last = v
	}
	if s.Count > 0 {
		s.Mean = s.Total / float64(s.Count)
	}
	return s
}

// RollingMean returns the mean of the last n non-missing values, or 0 when
// there are none.
func RollingMean(values []float64, n int) float64 {
	var sum float64
	count := 0
	for i := len(values) - 1; i >= 0 && count < n; i-- {
		if math.IsNaN(values[i]) {
			continue
		}
		sum += values[i]
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// Format renders the summary on one line, formatting amounts with format.
func (s Summary) Format(format func(float64) string) string {
	line := fmt.Sprintf("points %d  total %s  min %s  max %s  avg %s",
		s.Count, format(s.Total), format(s.Min), format(s.Max), format(s.Mean))
	if s.Missing > 0 {
		line += fmt.Sprintf("  missing %d", s.Missing)
	}
	return line
}

func (s Summary) String() string {
	return fmt.Sprintf("count=%d missing=%d total=%g min=%g max=%g mean=%g",
		s.Count, s.Missing, s.Total, s.Min, s.Max, s.Mean)
}
