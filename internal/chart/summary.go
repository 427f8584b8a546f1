package chart

import (
	"math"
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"

	"github.com/aclements/go-moremath/stats"

	"github.com/HamletTheHamster/experiment-charts/internal/table"
)

// Group is the observations of one category and their statistics.
type Group struct {
	Label  string
	X      float64 // numeric category value; NaN for text categories
	Values []float64

	Mean   float64
	StdDev float64
	CILow  float64
	CIHigh float64

	Five FiveNumber
}

// FiveNumber is the box of a box plot. Whiskers reach the most extreme
// observation within 1.5 IQR of the box; anything beyond is an outlier.
type FiveNumber struct {
	Min, Q1, Median, Q3, Max float64

	LowWhisker, HighWhisker float64
	Outliers                []float64
}

// Summarize filters t with s.Filter, groups the remaining rows by
// s.Category and computes the statistics of s.Value per group.
//
// Groups are ordered by numeric value when every category is a number,
// otherwise in order of first appearance. Rows with an empty value cell
// are skipped.
func Summarize(t *table.Table, s Spec) ([]Group, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	s = s.withDefaults()

	// Both columns must exist even when the filter drops every row.
	if _, err := t.Lookup(s.Category); err != nil {
		return nil, err
	}
	if _, err := t.Lookup(s.Value); err != nil {
		return nil, err
	}

	if s.Filter != nil {
		var ferr error
		t = t.Filter(func(r table.Row) bool {
			if ferr != nil {
				return false
			}
			keep, err := s.Filter(r)
			if err != nil {
				ferr = err
			}
			return keep
		})
		if ferr != nil {
			return nil, ferr
		}
	}

	values, err := t.Floats(s.Value)
	if err != nil {
		return nil, err
	}

	numeric := true
	keys := make([]string, t.Len())
	xs := make([]float64, t.Len())
	for i := range keys {
		raw, _ := t.Value(i, s.Category)
		keys[i] = strings.TrimSpace(raw)
		if keys[i] == "" {
			continue
		}
		x, err := strconv.ParseFloat(keys[i], 64)
		if err != nil {
			numeric = false
		}
		xs[i] = x
	}

	var groups []Group
	byKey := make(map[string]int)
	for i, v := range values {
		if math.IsNaN(v) || keys[i] == "" {
			continue
		}
		key, x := keys[i], math.NaN()
		if numeric {
			x = xs[i]
			key = strconv.FormatFloat(x, 'g', -1, 64)
		}
		gi, ok := byKey[key]
		if !ok {
			gi = len(groups)
			byKey[key] = gi
			groups = append(groups, Group{Label: key, X: x})
		}
		groups[gi].Values = append(groups[gi].Values, v)
	}

	if numeric {
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].X < groups[j].X })
	}

	rng := rand.New(rand.NewPCG(s.Seed, s.Seed^0x9e3779b97f4a7c15))
	for i := range groups {
		g := &groups[i]
		sample := stats.Sample{Xs: g.Values}
		g.Mean = sample.Mean()
		g.StdDev = sample.StdDev()
		g.CILow, g.CIHigh = bootstrapCI(g.Values, s.Confidence, s.Resamples, rng)
		g.Five = fiveNumber(g.Values)
	}
	return groups, nil
}

// bootstrapCI resamples xs with replacement n times and returns the
// percentile interval of the resampled means at confidence level.
func bootstrapCI(xs []float64, level float64, n int, rng *rand.Rand) (lo, hi float64) {
	if len(xs) == 1 {
		return xs[0], xs[0]
	}
	means := make([]float64, n)
	buf := make([]float64, len(xs))
	for i := range means {
		for j := range buf {
			buf[j] = xs[rng.IntN(len(xs))]
		}
		means[i] = stats.Sample{Xs: buf}.Mean()
	}
	sort.Float64s(means)
	tail := (1 - level) / 2
	return quantile(means, tail), quantile(means, 1-tail)
}

func fiveNumber(xs []float64) FiveNumber {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	sample := stats.Sample{Xs: sorted, Sorted: true}

	var f FiveNumber
	f.Min, f.Max = sample.Bounds()
	f.Q1 = quantile(sorted, 0.25)
	f.Median = quantile(sorted, 0.5)
	f.Q3 = quantile(sorted, 0.75)

	iqr := f.Q3 - f.Q1
	lo, hi := f.Q1-1.5*iqr, f.Q3+1.5*iqr
	f.LowWhisker, f.HighWhisker = f.Q1, f.Q3
	for _, v := range sorted {
		switch {
		case v < lo || v > hi:
			f.Outliers = append(f.Outliers, v)
		case v < f.LowWhisker:
			f.LowWhisker = v
		case v > f.HighWhisker:
			f.HighWhisker = v
		}
	}
	return f
}

// quantile is the p-quantile of sorted, interpolating linearly between
// the closest ranks.
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	h := p * float64(n-1)
	i := int(math.Floor(h))
	if i >= n-1 {
		return sorted[n-1]
	}
	if i < 0 {
		return sorted[0]
	}
	return sorted[i] + (h-float64(i))*(sorted[i+1]-sorted[i])
}
