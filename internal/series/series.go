// Package series reads an ordered sequence of labeled values from text.
package series

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
)

// ErrNoData indicates the input held no values, not even missing ones.
var ErrNoData = errors.New("no data")

// Series is an ordered run of values with one label per value. Missing
// values are NaN.
type Series struct {
	Labels []string
	Values []float64
}

// Len returns the number of points, missing ones included.
func (s Series) Len() int { return len(s.Values) }

// Tail returns the last n points. n <= 0 or n >= Len returns s unchanged.
func (s Series) Tail(n int) Series {
	if n <= 0 || n >= s.Len() {
		return s
	}
	off := s.Len() - n
	return Series{Labels: s.Labels[off:], Values: s.Values[off:]}
}

// Parse reads one point per line. A line is either a bare value or a label
// followed by a value; the value is always the last field. "-", "null" and
// "nan" mark a missing value. Blank lines and lines starting with '#' are
// ignored, and lines whose value does not parse are logged and skipped.
func Parse(r io.Reader) (Series, error) {
	var s Series

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		raw := fields[len(fields)-1]
		v, err := parseValue(raw)
		if err != nil {
			slog.Warn("skipping line", "line", lineNo, "value", raw, "error", err)
			continue
		}

		label := strings.Join(fields[:len(fields)-1], " ")
		if label == "" {
			label = strconv.Itoa(len(s.Values) + 1)
		}
		s.Labels = append(s.Labels, label)
		s.Values = append(s.Values, v)
	}
	if err := sc.Err(); err != nil {
		return Series{}, fmt.Errorf("read series: %w", err)
	}
	if s.Len() == 0 {
		return Series{}, ErrNoData
	}

	slog.Debug("parsed series", "points", s.Len())
	return s, nil
}

func parseValue(raw string) (float64, error) {
	switch strings.ToLower(raw) {
	case "-", "null", "nan":
		return math.NaN(), nil
	}

	clean := strings.ReplaceAll(raw, ",", "")
	neg := strings.HasPrefix(clean, "-")
	clean = strings.TrimPrefix(clean, "-")
	clean = strings.TrimPrefix(clean, "$")

	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", raw, err)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("parse %q: not a finite number", raw)
	}
	if neg {
		v = -v
	}
	return v, nil
}
