//go:build !gnuplot

package view

import (
	"errors"
	"slices"
	"testing"
)

func TestGnuplotNotBuilt(t *testing.T) {
	if slices.Contains(Names(), "gnuplot") {
		t.Errorf("Names() = %v, gnuplot needs -tags gnuplot", Names())
	}
	if _, err := New("gnuplot", nil); !errors.Is(err, ErrNotBuilt) {
		t.Errorf("New(gnuplot) err = %v, want ErrNotBuilt", err)
	}
}
