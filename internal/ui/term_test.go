package ui

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraphWidth(t *testing.T) {
	assert.Equal(t, 68, GraphWidth(80, 12, 10))
	assert.Equal(t, 10, GraphWidth(15, 12, 10))
}

func TestTermWidthFallsBack(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "notatty")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	assert.False(t, IsTTY(f.Fd()))
	assert.Equal(t, defaultTermWidth, TermWidth(f.Fd()))
}
