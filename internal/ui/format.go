package ui

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/bamsammich/costgraph/internal/chart"
)

// FormatNames lists the value formats accepted by Formatter.
var FormatNames = []string{"currency", "count", "si", "plain"}

// Formatter returns the value formatter registered under name.
func Formatter(name string) (func(float64) string, error) {
	switch name {
	case "", "currency":
		return chart.DefaultFormat, nil
	case "count":
		return FormatCount, nil
	case "si":
		return FormatSI, nil
	case "plain":
		return FormatPlain, nil
	}
	return nil, fmt.Errorf("unknown format %q (use currency, count, si or plain)", name)
}

// FormatCount rounds v and formats it with comma separators.
func FormatCount(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}

// FormatSI formats v with an SI prefix and at most one decimal, e.g. "1.5k".
func FormatSI(v float64) string {
	value, prefix := humanize.ComputeSI(v)
	return humanize.FtoaWithDigits(value, 1) + prefix
}

// FormatPlain formats v with two decimals and no grouping.
func FormatPlain(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
