// Command chart plots experiment results from a CSV file: equation counts
// (or their reduction) against the edge probability of the generated
// graphs.
//
//	chart -preset difference -csv data-reg-diff.csv
//	chart -preset result -csv data-reg.csv -save result.png -viewer none
//	chart -archive plots -note "n=15, 50 iterations"
//
// The gnuplot viewer needs gnuplot on PATH and is built with
//
//	go build -tags gnuplot ./cmd/chart
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"gonum.org/v1/plot/vg"

	"github.com/HamletTheHamster/experiment-charts/internal/chart"
	"github.com/HamletTheHamster/experiment-charts/internal/runlog"
	"github.com/HamletTheHamster/experiment-charts/internal/table"
	"github.com/HamletTheHamster/experiment-charts/internal/view"
)

type config struct {
	path     string
	encoding string
	spec     chart.Spec
	minX     float64 // rows with Category < minX are dropped; NaN disables

	save    string // single output file, "" for none
	archive string // root of dated png/svg/pdf + log.txt folders, "" for none
	note    string
	viewer  string
	quiet   bool
	preset  string
}

func main() {
	logger := log.New(os.Stderr, "", log.Ldate|log.Ltime)

	cfg, err := flags(os.Args[1:], os.Getenv)
	if err != nil {
		if err == flag.ErrHelp {
			os.Exit(2)
		}
		logger.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdout, logger); err != nil {
		logger.Fatal(err)
	}
}

func flags(args []string, getenv func(string) string) (config, error) {
	fs := flag.NewFlagSet("chart", flag.ContinueOnError)

	var (
		presetName, path, enc, kind, category, value string
		title, xlabel, ylabel, trend                 string
		width, height, minX                          float64
		dpi                                          int
		seed                                         uint64
		noFilter                                     bool
		cfg                                          config
	)

	viewerDefault := getenv("CHART_VIEWER")
	if viewerDefault == "" {
		viewerDefault = "system"
	}

	fs.StringVar(&presetName, "preset", "difference", "chart preset: "+strings.Join(presetNames(), ", "))
	fs.StringVar(&path, "csv", "", "input CSV file (default from preset)")
	fs.StringVar(&enc, "encoding", table.DefaultEncoding, "input text encoding")
	fs.StringVar(&kind, "kind", "", "chart kind: bar or box (default from preset)")
	fs.StringVar(&category, "x", "", "category column (default from preset)")
	fs.StringVar(&value, "y", "", "value column (default from preset)")
	fs.Float64Var(&minX, "min", 0, "drop rows whose category is below this value")
	fs.BoolVar(&noFilter, "all", false, "keep every row, ignoring -min")
	fs.StringVar(&title, "title", "", "chart title (default from preset)")
	fs.StringVar(&xlabel, "xlabel", "", "x axis label (default from preset)")
	fs.StringVar(&ylabel, "ylabel", "", "y axis label (default from preset)")
	fs.Float64Var(&width, "width", 12, "figure width in inches")
	fs.Float64Var(&height, "height", 8, "figure height in inches")
	fs.IntVar(&dpi, "dpi", chart.DefaultDPI, "raster resolution")
	fs.StringVar(&trend, "trend", "none", "fit a trend: none, linear or exp")
	fs.Uint64Var(&seed, "seed", 0, "seed for bootstrap resampling and jitter")
	fs.StringVar(&cfg.save, "save", "", "write the chart to this file ("+strings.Join(chart.Formats, ", ")+")")
	fs.StringVar(&cfg.archive, "archive", "", "archive png, svg, pdf and log.txt under this folder, by date and time")
	fs.StringVar(&cfg.note, "note", "", "note appended to the archive folder name")
	fs.StringVar(&cfg.viewer, "viewer", viewerDefault, "how to show the chart: "+strings.Join(view.Names(), ", "))
	fs.BoolVar(&cfg.quiet, "quiet", false, "do not print the loaded table")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments %q", fs.Args())
	}

	p, err := lookupPreset(presetName)
	if err != nil {
		return config{}, err
	}
	cfg.preset = presetName
	cfg.path = p.path
	cfg.encoding = enc
	cfg.spec = p.spec
	cfg.minX = minX
	if noFilter {
		cfg.minX = math.NaN()
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["csv"] {
		cfg.path = path
	}
	if set["kind"] {
		if cfg.spec.Kind, err = chart.ParseKind(kind); err != nil {
			return config{}, err
		}
	}
	if set["x"] {
		cfg.spec.Category = category
	}
	if set["y"] {
		cfg.spec.Value = value
	}
	if set["title"] {
		cfg.spec.Title = strings.ReplaceAll(title, `\n`, "\n")
	}
	if set["xlabel"] {
		cfg.spec.XLabel = xlabel
	}
	if set["ylabel"] {
		cfg.spec.YLabel = ylabel
	}
	if cfg.spec.Trend, err = chart.ParseTrend(trend); err != nil {
		return config{}, err
	}
	if width <= 0 || height <= 0 {
		return config{}, fmt.Errorf("figure size %vx%v in must be positive", width, height)
	}
	cfg.spec.Width = vg.Length(width) * vg.Inch
	cfg.spec.Height = vg.Length(height) * vg.Inch
	cfg.spec.DPI = dpi
	cfg.spec.Seed = seed

	if !math.IsNaN(cfg.minX) {
		cfg.spec.Filter = chart.AtLeast(cfg.spec.Category, cfg.minX)
	}

	return cfg, cfg.spec.Validate()
}

func run(ctx context.Context, cfg config, stdout io.Writer, logger *log.Logger) error {
	start := time.Now()
	journal := runlog.New(logger)

	v, err := view.New(cfg.viewer, logger)
	if err != nil {
		return err
	}

	t, err := table.Load(cfg.path, cfg.encoding)
	if err != nil {
		return err
	}
	if !cfg.quiet {
		if err := t.Print(stdout); err != nil {
			return err
		}
	}

	journal.Printf("Input: %s (%s), %d rows, columns %q", cfg.path, cfg.encoding, t.Len(), t.Columns())
	journal.Printf("Preset: %s, %v chart of %s by %s", cfg.preset, cfg.spec.Kind, cfg.spec.Value, cfg.spec.Category)
	if !math.IsNaN(cfg.minX) {
		journal.Printf("Filter: %s >= %v", cfg.spec.Category, cfg.minX)
	}

	c, err := chart.Render(t, cfg.spec)
	if err != nil {
		return err
	}
	for _, g := range c.Groups {
		journal.Printf("\t%s = %s: n=%d mean=%.4g CI=[%.4g, %.4g] median=%.4g IQR=[%.4g, %.4g]",
			cfg.spec.Category, g.Label, len(g.Values), g.Mean, g.CILow, g.CIHigh,
			g.Five.Median, g.Five.Q1, g.Five.Q3)
	}
	if c.TrendParams != nil {
		journal.Printf("Trend %v: %v", cfg.spec.Trend, c.TrendParams)
	}

	if cfg.save != "" {
		if err := c.Save(cfg.save); err != nil {
			return err
		}
		journal.Printf("Saved %s", cfg.save)
	}

	if cfg.archive != "" {
		dir := runlog.Dir(cfg.archive, cfg.note, start)
		name := strings.TrimSuffix(filepath.Base(cfg.path), filepath.Ext(cfg.path))
		paths, err := c.SaveAll(dir, name)
		if err != nil {
			return err
		}
		journal.Printf("Archived %s", strings.Join(paths, ", "))
		if err := journal.Write(dir); err != nil {
			return err
		}
	}

	return v.Show(ctx, c)
}
