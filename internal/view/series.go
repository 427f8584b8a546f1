package view

import "github.com/HamletTheHamster/experiment-charts/internal/chart"

// series is one gnuplot point group: {xs, ys} drawn in style.
type series struct {
	name  string
	style string
	data  [][]float64
}

// chartSeries flattens c into gnuplot point groups. Group names must be
// unique per plot.
func chartSeries(c *chart.Chart) []series {
	var out []series
	switch c.Spec.Kind {
	case chart.Bar:
		xs := make([]float64, len(c.Groups))
		ys := make([]float64, len(c.Groups))
		for i, g := range c.Groups {
			xs[i], ys[i] = float64(i), g.Mean
			out = append(out, series{
				name:  "CI " + g.Label,
				style: "lines",
				data:  [][]float64{{float64(i), float64(i)}, {g.CILow, g.CIHigh}},
			})
		}
		out = append([]series{{name: "mean", style: "impulses", data: [][]float64{xs, ys}}}, out...)

	case chart.Box:
		for i, g := range c.Groups {
			f, x := g.Five, float64(i)
			l, r := x-0.4, x+0.4
			out = append(out,
				series{"box " + g.Label, "lines", [][]float64{{l, l, r, r, l}, {f.Q1, f.Q3, f.Q3, f.Q1, f.Q1}}},
				series{"median " + g.Label, "lines", [][]float64{{l, r}, {f.Median, f.Median}}},
				series{"whiskers " + g.Label, "lines", [][]float64{{x, x}, {f.LowWhisker, f.Q1}}},
				series{"upper " + g.Label, "lines", [][]float64{{x, x}, {f.Q3, f.HighWhisker}}},
			)
			if i < len(c.Points) {
				pts := c.Points[i]
				xs := make([]float64, len(pts))
				ys := make([]float64, len(pts))
				for j, p := range pts {
					xs[j], ys[j] = p.X, p.Y
				}
				out = append(out, series{"observations " + g.Label, "points", [][]float64{xs, ys}})
			}
		}
	}
	return out
}
