package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/bamsammich/costgraph/internal/config"
)

// ColorMode controls whether output is styled.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// ParseColorMode maps auto, always or never to a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("unknown color mode %q (use auto, always or never)", s)
}

// Report is everything written for one chart.
type Report struct {
	Chart   string // rendered chart, no trailing newline
	XAxis   string // optional x-axis label line
	Summary string // optional summary line
}

// Presenter writes a report.
type Presenter interface {
	Present(r Report) error
}

// Config configures a Presenter.
type Config struct {
	Writer io.Writer
	Color  ColorMode
	IsTTY  bool
	Theme  config.ThemeConfig
}

// NewPresenter creates the appropriate presenter based on configuration.
//
//nolint:ireturn // factory function returns interface by design
func NewPresenter(cfg Config) Presenter {
	if cfg.Color == ColorNever || (cfg.Color == ColorAuto && !cfg.IsTTY) {
		return &plainPresenter{w: cfg.Writer}
	}

	r := lipgloss.NewRenderer(cfg.Writer)
	if cfg.Color == ColorAlways {
		r.SetColorProfile(termenv.TrueColor)
	}
	return &colorPresenter{w: cfg.Writer, theme: NewTheme(r, cfg.Theme)}
}

// plainPresenter writes the report untouched.
type plainPresenter struct {
	w io.Writer
}

func (p *plainPresenter) Present(r Report) error {
	return writeLines(p.w, r.Chart, r.XAxis, r.Summary)
}

// colorPresenter styles the chart and its labels with a theme.
type colorPresenter struct {
	w     io.Writer
	theme Theme
}

func (p *colorPresenter) Present(r Report) error {
	chartText := r.Chart
	if chartText != "" {
		chartText = p.theme.Colorize(chartText)
	}
	xaxis := r.XAxis
	if xaxis != "" {
		xaxis = p.theme.Label.Render(xaxis)
	}
	summary := r.Summary
	if summary != "" {
		summary = p.theme.Axis.Render(summary)
	}
	return writeLines(p.w, chartText, xaxis, summary)
}

func writeLines(w io.Writer, lines ...string) error {
	for _, line := range lines {
		if line == "" {
			continue
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}
