package chart

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// boxes draws one box per group at x = group index. Outliers are not
// drawn; the observation overlay shows them.
type boxes struct {
	groups []Group

	// Width of a box in category units.
	Width float64

	BoxStyle     draw.LineStyle
	WhiskerStyle draw.LineStyle
	MedianStyle  draw.LineStyle
	Fill         func(i int) color.Color

	// CapWidth is the width of the whisker caps, in category units.
	CapWidth float64
}

var _ plot.Plotter = (*boxes)(nil)
var _ plot.DataRanger = (*boxes)(nil)

func newBoxes(groups []Group) *boxes {
	line := draw.LineStyle{Color: color.Gray{Y: 60}, Width: vg.Points(1.5)}
	return &boxes{
		groups:       groups,
		Width:        0.8,
		BoxStyle:     line,
		WhiskerStyle: line,
		MedianStyle:  line,
		Fill:         func(i int) color.Color { return Palette(i, false) },
		CapWidth:     0.2,
	}
}

func (b *boxes) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for i, g := range b.groups {
		f := g.Five
		x := float64(i)
		left, right := trX(x-b.Width/2), trX(x+b.Width/2)
		q1, q3, med := trY(f.Q1), trY(f.Q3), trY(f.Median)

		box := []vg.Point{{X: left, Y: q1}, {X: left, Y: q3}, {X: right, Y: q3}, {X: right, Y: q1}, {X: left, Y: q1}}
		if b.Fill != nil {
			c.FillPolygon(b.Fill(i), c.ClipPolygonXY(box))
		}
		c.StrokeLines(b.BoxStyle, c.ClipLinesXY(box)...)
		c.StrokeLine2(b.MedianStyle, left, med, right, med)

		mid := trX(x)
		capL, capR := trX(x-b.CapWidth/2), trX(x+b.CapWidth/2)
		lo, hi := trY(f.LowWhisker), trY(f.HighWhisker)
		c.StrokeLine2(b.WhiskerStyle, mid, q1, mid, lo)
		c.StrokeLine2(b.WhiskerStyle, mid, q3, mid, hi)
		c.StrokeLine2(b.WhiskerStyle, capL, lo, capR, lo)
		c.StrokeLine2(b.WhiskerStyle, capL, hi, capR, hi)
	}
}

// DataRange spans the boxes and their whiskers.
func (b *boxes) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = -b.Width/2, float64(len(b.groups)-1)+b.Width/2
	ymin, ymax = math.Inf(1), math.Inf(-1)
	for _, g := range b.groups {
		ymin = math.Min(ymin, g.Five.LowWhisker)
		ymax = math.Max(ymax, g.Five.HighWhisker)
	}
	return xmin, xmax, ymin, ymax
}
