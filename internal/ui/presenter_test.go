package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input string
		want  ColorMode
	}{
		{"", ColorAuto},
		{"auto", ColorAuto},
		{"ALWAYS", ColorAlways},
		{"never", ColorNever},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColorMode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseColorMode("sometimes")
	assert.Error(t, err)
}

func TestNewPresenterSelection(t *testing.T) {
	var buf bytes.Buffer

	assert.IsType(t, &plainPresenter{}, NewPresenter(Config{Writer: &buf, Color: ColorNever, IsTTY: true}))
	assert.IsType(t, &plainPresenter{}, NewPresenter(Config{Writer: &buf, Color: ColorAuto}))
	assert.IsType(t, &colorPresenter{}, NewPresenter(Config{Writer: &buf, Color: ColorAuto, IsTTY: true}))
	assert.IsType(t, &colorPresenter{}, NewPresenter(Config{Writer: &buf, Color: ColorAlways}))
}

func TestPlainPresenterWritesSections(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(Config{Writer: &buf, Color: ColorNever})

	err := p.Present(Report{
		Chart:   "$1.00 ┼●",
		XAxis:   "       a",
		Summary: "points 1",
	})
	require.NoError(t, err)
	assert.Equal(t, "$1.00 ┼●\n       a\npoints 1\n", buf.String())
}

func TestPlainPresenterSkipsEmptySections(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(Config{Writer: &buf, Color: ColorNever})

	require.NoError(t, p.Present(Report{Chart: "$1.00 ┼●"}))
	assert.Equal(t, "$1.00 ┼●\n", buf.String())
}

func TestColorPresenterForcesColor(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(Config{Writer: &buf, Color: ColorAlways})

	require.NoError(t, p.Present(Report{Chart: "$1.00 ┼●", Summary: "points 1"}))
	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "points 1")
}
