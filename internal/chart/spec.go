package chart

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/plot/vg"

	"github.com/HamletTheHamster/experiment-charts/internal/table"
)

// Kind selects how each category is drawn.
type Kind int

const (
	// Bar draws the group mean with a bootstrapped confidence interval.
	Bar Kind = iota
	// Box draws the five-number summary, no outlier glyphs, with every
	// observation overlaid as a jittered dot.
	Box
)

func (k Kind) String() string {
	switch k {
	case Bar:
		return "bar"
	case Box:
		return "box"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "bar":
		return Bar, nil
	case "box":
		return Box, nil
	}
	return 0, fmt.Errorf("chart: unknown kind %q (want bar or box)", s)
}

// Trend selects an optional model fitted through the observations.
type Trend int

const (
	NoTrend Trend = iota
	LinearTrend
	ExpTrend
)

func (m Trend) String() string {
	switch m {
	case NoTrend:
		return "none"
	case LinearTrend:
		return "linear"
	case ExpTrend:
		return "exp"
	}
	return fmt.Sprintf("Trend(%d)", int(m))
}

func ParseTrend(s string) (Trend, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return NoTrend, nil
	case "linear":
		return LinearTrend, nil
	case "exp":
		return ExpTrend, nil
	}
	return 0, fmt.Errorf("chart: unknown trend %q (want none, linear or exp)", s)
}

// Predicate selects the rows that take part in a chart.
type Predicate func(table.Row) (bool, error)

// AtLeast keeps rows whose col value is >= min. Empty cells are dropped.
func AtLeast(col string, min float64) Predicate {
	return func(r table.Row) (bool, error) {
		v, err := r.Float(col)
		if err != nil {
			return false, err
		}
		return v >= min, nil
	}
}

// Spec describes one chart independently of how it is shown.
type Spec struct {
	Category string // x axis, one group per distinct value
	Value    string // y axis, aggregated per group
	Filter   Predicate
	Kind     Kind

	Title  string
	XLabel string
	YLabel string

	Width, Height vg.Length
	DPI           int

	FontVariant string
	TitleSize   vg.Length
	LabelSize   vg.Length

	// Bar
	Confidence float64
	Resamples  int

	// Box
	Jitter     float64 // half-width of the jitter, in category widths
	PointAlpha float64

	Trend Trend
	Seed  uint64
}

// Defaults used for zero Spec fields.
const (
	DefaultDPI        = 300
	DefaultConfidence = 0.95
	DefaultResamples  = 1000
	DefaultJitter     = 0.1
	DefaultPointAlpha = 0.3
)

var (
	DefaultWidth     = 12 * vg.Inch
	DefaultHeight    = 8 * vg.Inch
	DefaultTitleSize = vg.Points(22)
	DefaultLabelSize = vg.Points(14)
)

var errNoColumn = errors.New("chart: category and value columns are required")

// Validate reports a Spec that cannot describe any chart.
func (s Spec) Validate() error {
	if s.Category == "" || s.Value == "" {
		return errNoColumn
	}
	if s.Kind != Bar && s.Kind != Box {
		return fmt.Errorf("chart: unknown kind %v", s.Kind)
	}
	if s.Confidence < 0 || s.Confidence >= 1 {
		return fmt.Errorf("chart: confidence %v out of range [0, 1)", s.Confidence)
	}
	if s.Resamples < 0 || s.DPI < 0 {
		return errors.New("chart: resamples and DPI must not be negative")
	}
	return nil
}

func (s Spec) withDefaults() Spec {
	if s.Width == 0 {
		s.Width = DefaultWidth
	}
	if s.Height == 0 {
		s.Height = DefaultHeight
	}
	if s.DPI == 0 {
		s.DPI = DefaultDPI
	}
	if s.FontVariant == "" {
		s.FontVariant = "Serif"
	}
	if s.TitleSize == 0 {
		s.TitleSize = DefaultTitleSize
	}
	if s.LabelSize == 0 {
		s.LabelSize = DefaultLabelSize
	}
	if s.Confidence == 0 {
		s.Confidence = DefaultConfidence
	}
	if s.Resamples == 0 {
		s.Resamples = DefaultResamples
	}
	if s.Jitter == 0 {
		s.Jitter = DefaultJitter
	}
	if s.PointAlpha == 0 {
		s.PointAlpha = DefaultPointAlpha
	}
	return s
}
