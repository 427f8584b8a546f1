// Package chart turns experiment tables into statistical charts: group
// means with bootstrapped confidence intervals, or box plots with the
// observations overlaid.
package chart

import (
	"errors"
	"image/color"
	"math/rand/v2"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/HamletTheHamster/experiment-charts/internal/table"
)

// ErrNoData is returned when no row survives filtering.
var ErrNoData = errors.New("chart: no rows to plot")

// Chart is a rendered chart, ready to be saved or shown.
type Chart struct {
	Plot   *plot.Plot
	Spec   Spec // with defaults applied
	Groups []Group

	// Points are the jittered observation positions of a box chart, one
	// set per group, in plot coordinates.
	Points []plotter.XYs

	// TrendParams are the fitted model parameters, nil without a trend.
	// Linear: intercept, slope. Exp: a, b, c of a*exp(b*x)+c.
	TrendParams []float64
}

// Render summarises t according to s and lays out the chart.
func Render(t *table.Table, s Spec) (*Chart, error) {
	groups, err := Summarize(t, s)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, ErrNoData
	}
	s = s.withDefaults()

	p := prepPlot(s, groups)

	ch := &Chart{Plot: p, Spec: s, Groups: groups}
	switch s.Kind {
	case Bar:
		if err := addBars(p, s, groups); err != nil {
			return nil, err
		}
	case Box:
		pts, err := addBoxes(p, s, groups)
		if err != nil {
			return nil, err
		}
		ch.Points = pts
	}

	if s.Trend != NoTrend {
		params, err := fitTrend(s.Trend, groups)
		if err != nil {
			return nil, err
		}
		if err := addTrend(p, s.Trend, params, groups); err != nil {
			return nil, err
		}
		ch.TrendParams = params
	}

	return ch, nil
}

func prepPlot(s Spec, groups []Group) *plot.Plot {
	p := plot.New()

	p.Title.Text = s.Title
	p.Title.TextStyle.Font.Variant = font.Variant(s.FontVariant)
	p.Title.TextStyle.Font.Weight = xfont.WeightBold
	p.Title.TextStyle.Font.Size = s.TitleSize
	p.Title.Padding = s.TitleSize / 2

	p.X.Label.Text = s.XLabel
	p.X.Label.TextStyle.Font.Variant = font.Variant(s.FontVariant)
	p.X.Label.TextStyle.Font.Size = s.LabelSize
	p.X.Tick.Label.Font.Variant = font.Variant(s.FontVariant)

	p.Y.Label.Text = s.YLabel
	p.Y.Label.TextStyle.Font.Variant = font.Variant(s.FontVariant)
	p.Y.Label.TextStyle.Font.Size = s.LabelSize
	p.Y.Tick.Label.Font.Variant = font.Variant(s.FontVariant)

	labels := make([]string, len(groups))
	for i, g := range groups {
		labels[i] = g.Label
	}
	p.NominalX(labels...)
	p.X.Min = -0.5
	p.X.Max = float64(len(groups)) - 0.5

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	p.Add(grid)
	return p
}

type errorPoints struct {
	plotter.XYs
	plotter.YErrors
}

func addBars(p *plot.Plot, s Spec, groups []Group) error {
	// Bar widths are canvas lengths, not data units.
	width := s.Width * 0.6 / vg.Length(len(groups))

	means := errorPoints{
		XYs:     make(plotter.XYs, len(groups)),
		YErrors: make(plotter.YErrors, len(groups)),
	}
	for i, g := range groups {
		bar, err := plotter.NewBarChart(plotter.Values{g.Mean}, width)
		if err != nil {
			return err
		}
		bar.XMin = float64(i)
		bar.Color = Palette(i, false)
		bar.LineStyle.Color = Palette(i, true)
		p.Add(bar)

		means.XYs[i].X, means.XYs[i].Y = float64(i), g.Mean
		means.YErrors[i].Low = g.Mean - g.CILow
		means.YErrors[i].High = g.CIHigh - g.Mean
	}

	e, err := plotter.NewYErrorBars(means)
	if err != nil {
		return err
	}
	e.LineStyle.Color = color.Gray{Y: 60}
	e.LineStyle.Width = vg.Points(2.5)
	e.CapWidth = 0
	p.Add(e)
	return nil
}

func addBoxes(p *plot.Plot, s Spec, groups []Group) ([]plotter.XYs, error) {
	p.Add(newBoxes(groups))
	all := make([]plotter.XYs, len(groups))

	rng := rand.New(rand.NewPCG(s.Seed, s.Seed^0xbf58476d1ce4e5b9))
	jitter := max(s.Jitter, 0)

	for i, g := range groups {
		pts := make(plotter.XYs, len(g.Values))
		for j, v := range g.Values {
			pts[j].X = float64(i) + (rng.Float64()*2-1)*jitter
			pts[j].Y = v
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle.Color = withAlpha(Palette(i, true), s.PointAlpha)
		sc.GlyphStyle.Radius = vg.Points(3)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)
		all[i] = pts
	}
	return all, nil
}

func addTrend(p *plot.Plot, m Trend, params []float64, groups []Group) error {
	mod := models[m]
	pts := make(plotter.XYs, len(groups))
	for i, g := range groups {
		pts[i].X = float64(i)
		pts[i].Y = mod.eval(g.X, params)
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.LineStyle.Width = vg.Points(2)
	l.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
	l.LineStyle.Color = color.Gray{Y: 30}
	p.Add(l)
	p.Legend.Add(m.String()+" fit", l)
	p.Legend.Top = true
	return nil
}
