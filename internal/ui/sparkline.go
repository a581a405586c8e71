package ui

import "math"

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders a slice of float64 values as Unicode block characters.
// The output is exactly width runes wide: the last width samples, padded on
// the left with blanks. Values are normalized to the max value in the
// window; missing (NaN) samples render as a blank.
func Sparkline(data []float64, width int) string {
	if width <= 0 {
		return ""
	}

	samples := make([]float64, width)
	for i := range samples {
		samples[i] = math.NaN()
	}
	if len(data) >= width {
		copy(samples, data[len(data)-width:])
	} else {
		copy(samples[width-len(data):], data)
	}

	maxVal := 0.0
	for _, v := range samples {
		if v > maxVal {
			maxVal = v
		}
	}

	out := make([]rune, width)
	for i, v := range samples {
		switch {
		case math.IsNaN(v):
			out[i] = ' '
		case maxVal <= 0 || v <= 0:
			out[i] = sparkBlocks[0]
		default:
			idx := int(v / maxVal * float64(len(sparkBlocks)-1))
			out[i] = sparkBlocks[min(idx, len(sparkBlocks)-1)]
		}
	}
	return string(out)
}
