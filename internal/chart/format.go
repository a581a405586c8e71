package chart

import "github.com/dustin/go-humanize"

// DefaultFormat renders v as dollars and cents with thousands separators,
// e.g. "$1,234.50" or "-$3.00".
func DefaultFormat(v float64) string {
	if v < 0 {
		return "-$" + humanize.FormatFloat("#,###.##", -v)
	}
	return "$" + humanize.FormatFloat("#,###.##", v)
}
