package chart

import (
	"errors"
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/maorshutman/lm"
)

var errTextCategories = errors.New("chart: a trend needs numeric categories")

// model is a curve y = f(x; params).
type model struct {
	dim   int
	eval  func(x float64, p []float64) float64
	guess func(xs, ys []float64) []float64
}

var models = map[Trend]model{
	LinearTrend: {
		dim:   2,
		eval:  func(x float64, p []float64) float64 { return p[0] + p[1]*x },
		guess: func(xs, ys []float64) []float64 { return []float64{stats.Mean(ys), 0} },
	},
	ExpTrend: {
		dim:  3,
		eval: func(x float64, p []float64) float64 { return p[0]*math.Exp(p[1]*x) + p[2] },
		guess: func(xs, ys []float64) []float64 {
			lo, hi := stats.Bounds(ys)
			xlo, xhi := stats.Bounds(xs)
			rate := 1.0
			if xhi > xlo {
				rate = 1 / (xhi - xlo)
			}
			return []float64{hi - lo, rate, lo}
		},
	},
}

// fitTrend fits m through every observation of groups with
// Levenberg-Marquardt and returns the fitted parameters.
func fitTrend(m Trend, groups []Group) ([]float64, error) {
	mod, ok := models[m]
	if !ok {
		return nil, fmt.Errorf("chart: no model for trend %v", m)
	}

	var xs, ys []float64
	for _, g := range groups {
		if math.IsNaN(g.X) {
			return nil, errTextCategories
		}
		for _, v := range g.Values {
			xs = append(xs, g.X)
			ys = append(ys, v)
		}
	}
	if len(xs) < mod.dim {
		return nil, fmt.Errorf("chart: %v trend needs at least %d observations, have %d", m, mod.dim, len(xs))
	}

	resFunc := func(dst, params []float64) {
		for i, x := range xs {
			dst[i] = mod.eval(x, params) - ys[i]
		}
	}
	nj := &lm.NumJac{Func: resFunc}

	problem := lm.LMProblem{
		Dim:        mod.dim,
		Size:       len(xs),
		Func:       resFunc,
		Jac:        nj.Jac,
		InitParams: mod.guess(xs, ys),
		Tau:        1e-6,
		Eps1:       1e-8,
		Eps2:       1e-8,
	}

	result, err := lm.LM(problem, &lm.Settings{Iterations: 1000, ObjectiveTol: 1e-16})
	if err != nil {
		return nil, fmt.Errorf("chart: %v trend fit: %w", m, err)
	}
	return result.X, nil
}
