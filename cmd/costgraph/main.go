package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bamsammich/costgraph/internal/chart"
	"github.com/bamsammich/costgraph/internal/config"
	"github.com/bamsammich/costgraph/internal/series"
	"github.com/bamsammich/costgraph/internal/stats"
	"github.com/bamsammich/costgraph/internal/ui"
)

var version = "dev"

// minGraphWidth is the narrowest canvas chosen when sizing to the terminal.
const minGraphWidth = 10

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// modeFlag is a custom pflag.Value that validates --mode at parse time.
type modeFlag struct {
	mode *chart.Mode
}

func (f *modeFlag) String() string {
	if f.mode == nil {
		return ""
	}
	return f.mode.String()
}

func (*modeFlag) Type() string { return "mode" }

var _ pflag.Value = (*modeFlag)(nil)

func (f *modeFlag) Set(val string) error {
	m, err := chart.ParseMode(val)
	if err != nil {
		return err
	}
	*f.mode = m
	return nil
}

// options collects every root flag.
type options struct {
	mode        chart.Mode
	width       int
	height      int
	padding     string
	tail        int
	window      int
	format      string
	color       string
	labels      bool
	summary     bool
	spark       bool
	verbose     bool
	quiet       bool
	showVersion bool
	logFile     string
}

//nolint:revive // cognitive-complexity: CLI entry point wires flags, config and output
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts := options{mode: chart.ModeLine, height: 10, window: 7, color: "auto"}

	rootCmd := &cobra.Command{
		Use:   "costgraph [flags] [FILE]",
		Short: "Render a series of values as a text chart",
		Long: `Render a series of values as a text chart.

Values are read from FILE, or stdin when FILE is omitted or "-". Each line
holds one value, optionally preceded by a label. "-", "null" and "nan" mark
a missing value; blank lines and lines starting with '#' are skipped.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.showVersion {
				fmt.Fprintf(stdout, "costgraph %s\n", version)
				return nil
			}

			// Load optional config file.
			cfg, err := config.Load()
			if err != nil {
				fmt.Fprintf(stderr, "warning: failed to load config: %v\n", err)
			}
			if err := applyConfigDefaults(cmd, cfg.Defaults, &opts); err != nil {
				return fmt.Errorf("config defaults: %w", err)
			}

			closeLog, err := setupLogging(stderr, opts)
			if err != nil {
				return err
			}
			defer closeLog()

			return render(cmd, args, stdin, stdout, opts, cfg.Theme)
		},
	}

	flags := rootCmd.Flags()
	flags.SortFlags = false
	flags.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	flags.VarP(&modeFlag{mode: &opts.mode}, "mode", "m", "chart mode (line, bar or plain)")
	flags.IntVarP(&opts.width, "width", "w", 0, "chart width in columns (default: fit the terminal)")
	flags.IntVarP(&opts.height, "height", "H", opts.height, "chart height in rows above the baseline")
	flags.StringVar(&opts.padding, "padding", "", "prefix written before every chart line")
	flags.IntVar(&opts.tail, "tail", 0, "only chart the last N points")
	flags.IntVar(&opts.window, "window", opts.window, "points in the summary's trailing average (0 disables it)")
	flags.StringVarP(&opts.format, "format", "f", "currency",
		"value format ("+strings.Join(ui.FormatNames, ", ")+")")
	flags.StringVar(&opts.color, "color", opts.color, "colorize output (auto, always or never)")
	flags.BoolVar(&opts.labels, "labels", false, "print an x-axis line with point labels")
	flags.BoolVar(&opts.summary, "summary", false, "print a one-line summary after the chart")
	flags.BoolVar(&opts.spark, "spark", false, "print a one-line sparkline instead of a chart")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress all output except errors")
	flags.StringVar(&opts.logFile, "log", "", "write structured JSON log to FILE")

	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(initConfigCmd)

	// A nil slice makes cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	return 0
}

func setupLogging(stderr io.Writer, opts options) (func(), error) {
	logLevel := slog.LevelWarn
	if opts.verbose {
		logLevel = slog.LevelDebug
	} else if opts.quiet {
		logLevel = slog.LevelError
	}
	textHandler := slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	var logHandler slog.Handler = textHandler
	closeLog := func() {}
	if opts.logFile != "" {
		lf, err := os.Create(opts.logFile)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		closeLog = func() { lf.Close() }
		jsonHandler := slog.NewJSONHandler(lf, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		logHandler = ui.NewMultiHandler(textHandler, jsonHandler)
	}
	slog.SetDefault(slog.New(logHandler))
	return closeLog, nil
}

//nolint:revive // cyclomatic: input, sizing and output selection in one place
func render(
	cmd *cobra.Command,
	args []string,
	stdin io.Reader,
	stdout io.Writer,
	opts options,
	theme config.ThemeConfig,
) error {
	format, err := ui.Formatter(opts.format)
	if err != nil {
		return fmt.Errorf("invalid --format: %w", err)
	}
	colorMode, err := ui.ParseColorMode(opts.color)
	if err != nil {
		return fmt.Errorf("invalid --color: %w", err)
	}
	if opts.height < 1 {
		return fmt.Errorf("invalid --height %d: must be at least 1", opts.height)
	}
	if cmd.Flags().Changed("width") && opts.width < 1 {
		return fmt.Errorf("invalid --width %d: must be at least 1", opts.width)
	}

	s, err := readSeries(args, stdin)
	if errors.Is(err, series.ErrNoData) {
		slog.Error("nothing to chart", "error", err)
		return &exitError{code: 1}
	}
	if err != nil {
		return err
	}
	s = s.Tail(opts.tail)

	sum := stats.Summarize(s.Values)
	slog.Debug("series loaded",
		"points", s.Len(),
		"mode", opts.mode,
		"summary", sum.String(),
	)

	isTTY := false
	if f, ok := stdout.(*os.File); ok {
		isTTY = ui.IsTTY(f.Fd())
	}
	if opts.width <= 0 {
		termWidth := 80
		if f, ok := stdout.(*os.File); ok {
			termWidth = ui.TermWidth(f.Fd())
		}
		opts.width = ui.GraphWidth(termWidth, estimateMargin(opts.padding, sum, format), minGraphWidth)
	}

	var report ui.Report
	if opts.spark {
		report.Chart = opts.padding + ui.Sparkline(s.Values, min(opts.width, s.Len()))
	} else {
		report.Chart = chart.Render(opts.mode, s.Values, chart.Options{
			Width:   opts.width,
			Height:  opts.height,
			Padding: opts.padding,
			Format:  format,
		})
		if opts.labels {
			report.XAxis = chart.XAxis(s.Labels, opts.width, chartMargin(report.Chart))
		}
	}
	if opts.summary && !opts.quiet {
		report.Summary = opts.padding + sum.Format(format)
		if opts.window > 0 && sum.Count > opts.window {
			report.Summary += fmt.Sprintf("  last %d avg %s",
				opts.window, format(stats.RollingMean(s.Values, opts.window)))
		}
	}

	presenter := ui.NewPresenter(ui.Config{
		Writer: stdout,
		Color:  colorMode,
		IsTTY:  isTTY,
		Theme:  theme,
	})
	return presenter.Present(report)
}

func readSeries(args []string, stdin io.Reader) (series.Series, error) {
	if len(args) == 0 || args[0] == "-" {
		return series.Parse(stdin)
	}
	f, err := os.Open(args[0])
	if err != nil {
		return series.Series{}, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	return series.Parse(f)
}

// estimateMargin guesses the width of the y-axis gutter before rendering:
// padding, the widest extreme label, a space and the axis glyph. Stepped
// domains may round the top tick up by a digit, hence the extra column.
func estimateMargin(padding string, sum stats.Summary, format func(float64) string) int {
	label := max(runewidth.StringWidth(format(sum.Min)), runewidth.StringWidth(format(sum.Max)))
	return runewidth.StringWidth(padding) + label + 3
}

// chartMargin returns the display width of the first chart line up to and
// including its axis glyph.
func chartMargin(rendered string) int {
	first, _, _ := strings.Cut(rendered, "\n")
	cut := strings.IndexAny(first, string([]rune{chart.GlyphCross, chart.GlyphAxis}))
	if cut < 0 {
		return 0
	}
	return runewidth.StringWidth(first[:cut]) + 1
}

// applyConfigDefaults applies config file defaults for flags not explicitly set on the CLI.
func applyConfigDefaults(cmd *cobra.Command, defaults config.DefaultsConfig, opts *options) error {
	if !cmd.Flags().Changed("mode") && defaults.Mode != nil {
		m, err := chart.ParseMode(*defaults.Mode)
		if err != nil {
			return err
		}
		opts.mode = m
	}
	if !cmd.Flags().Changed("width") && defaults.Width != nil {
		opts.width = *defaults.Width
	}
	if !cmd.Flags().Changed("height") && defaults.Height != nil {
		opts.height = *defaults.Height
	}
	if !cmd.Flags().Changed("padding") && defaults.Padding != nil {
		opts.padding = *defaults.Padding
	}
	if !cmd.Flags().Changed("summary") && defaults.Summary != nil {
		opts.summary = *defaults.Summary
	}
	if !cmd.Flags().Changed("color") && defaults.Color != nil {
		opts.color = *defaults.Color
	}
	return nil
}

type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}
