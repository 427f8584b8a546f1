//go:build gnuplot

package view

import (
	"context"
	"fmt"
	"log"

	"github.com/Arafatk/glot"

	"github.com/HamletTheHamster/experiment-charts/internal/chart"
)

func init() {
	register("gnuplot", func(l *log.Logger) Viewer { return &Gnuplot{Logger: l} })
}

// Gnuplot redraws a chart's summary in a persistent gnuplot window. The
// window outlives the call; Show returns once gnuplot has the data.
//
// glot looks for gnuplot when the package loads and panics if it is
// missing, so this viewer is only built with -tags gnuplot.
type Gnuplot struct {
	Debug  bool
	Logger *log.Logger
}

func (g *Gnuplot) Show(ctx context.Context, c *chart.Chart) error {
	if Headless() {
		logf(g.Logger, "no display, not plotting %q in gnuplot", c.Spec.Title)
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	dimensions := 2
	persist := true
	plot, err := glot.NewPlot(dimensions, persist, g.Debug)
	if err != nil {
		return fmt.Errorf("view: gnuplot: %w", err)
	}

	plot.SetTitle(c.Spec.Title)
	plot.SetXLabel(c.Spec.XLabel)
	plot.SetYLabel(c.Spec.YLabel)
	plot.SetXrange(-1, len(c.Groups))

	for _, s := range chartSeries(c) {
		if err := plot.AddPointGroup(s.name, s.style, s.data); err != nil {
			return fmt.Errorf("view: gnuplot %s: %w", s.name, err)
		}
	}
	return nil
}
