//go:build !gnuplot

package main

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/HamletTheHamster/experiment-charts/internal/view"
)

func TestRunWithoutGnuplot(t *testing.T) {
	logger := log.New(&bytes.Buffer{}, "", 0)
	csv := filepath.Join("testdata", "data-reg-diff.csv")

	cfg, err := flags([]string{"-csv", csv, "-viewer", "none", "-quiet"}, noEnv)
	if err != nil {
		t.Fatal(err)
	}
	if err := run(context.Background(), cfg, &bytes.Buffer{}, logger); err != nil {
		t.Fatalf("viewer none: %v", err)
	}

	out := filepath.Join(t.TempDir(), "chart.png")
	cfg, err = flags([]string{"-csv", csv, "-viewer", "gnuplot", "-quiet", "-save", out}, noEnv)
	if err != nil {
		t.Fatal(err)
	}
	if err := run(context.Background(), cfg, &bytes.Buffer{}, logger); !errors.Is(err, view.ErrNotBuilt) {
		t.Errorf("viewer gnuplot: err = %v, want ErrNotBuilt", err)
	}
	if _, err := os.Stat(out); err == nil {
		t.Error("chart saved before the viewer was rejected")
	}
}
