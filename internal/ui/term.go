package ui

import "golang.org/x/term"

const defaultTermWidth = 80

// IsTTY reports whether the given file descriptor refers to a terminal.
func IsTTY(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// TermWidth returns the terminal width in columns, or 80 if it cannot be determined.
func TermWidth(fd uintptr) int {
	w, _, err := term.GetSize(int(fd))
	if err != nil || w <= 0 {
		return defaultTermWidth
	}
	return w
}

// GraphWidth returns the canvas width that fits a terminal of termWidth
// columns once margin columns are reserved for padding and y-axis labels.
// It never returns less than minWidth.
func GraphWidth(termWidth, margin, minWidth int) int {
	return max(minWidth, termWidth-margin)
}
