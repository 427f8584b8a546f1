package main

import (
	"bytes"
	"context"
	"errors"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/plot/vg"

	"github.com/HamletTheHamster/experiment-charts/internal/chart"
	"github.com/HamletTheHamster/experiment-charts/internal/table"
)

func noEnv(string) string { return "" }

func TestFlagsPreset(t *testing.T) {
	cfg, err := flags(nil, noEnv)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.path != "data-reg-diff.csv" || cfg.spec.Value != "difference" || cfg.spec.Kind != chart.Bar {
		t.Errorf("difference preset not applied: %+v", cfg)
	}
	if cfg.spec.Width != 12*vg.Inch || cfg.spec.Height != 8*vg.Inch || cfg.spec.DPI != 300 {
		t.Errorf("figure = %v x %v @ %d", cfg.spec.Width, cfg.spec.Height, cfg.spec.DPI)
	}
	if cfg.spec.Filter == nil || cfg.minX != 0 {
		t.Error("probability >= 0 filter missing")
	}
	if cfg.viewer != "system" || cfg.encoding != "ISO-8859-1" {
		t.Errorf("viewer %q encoding %q", cfg.viewer, cfg.encoding)
	}
}

func TestFlagsOverride(t *testing.T) {
	env := func(k string) string {
		if k == "CHART_VIEWER" {
			return "none"
		}
		return ""
	}
	cfg, err := flags([]string{
		"-preset", "result", "-csv", "in.csv", "-kind", "bar", "-y", "difference",
		"-title", `two\nlines`, "-all", "-trend", "linear", "-dpi", "72",
	}, env)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.path != "in.csv" || cfg.spec.Kind != chart.Bar || cfg.spec.Value != "difference" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.spec.Title != "two\nlines" {
		t.Errorf("title = %q", cfg.spec.Title)
	}
	if cfg.spec.Filter != nil || !math.IsNaN(cfg.minX) {
		t.Error("-all should drop the filter")
	}
	if cfg.spec.Trend != chart.LinearTrend || cfg.spec.DPI != 72 || cfg.viewer != "none" {
		t.Errorf("trend %v dpi %d viewer %q", cfg.spec.Trend, cfg.spec.DPI, cfg.viewer)
	}
}

func TestFlagsErrors(t *testing.T) {
	for _, args := range [][]string{
		{"-preset", "pie"},
		{"-kind", "pie"},
		{"-trend", "cubic"},
		{"-width", "0"},
		{"-y", ""},
		{"stray"},
	} {
		if _, err := flags(args, noEnv); err == nil {
			t.Errorf("flags(%q) should fail", args)
		}
	}
}

func TestRun(t *testing.T) {
	out := t.TempDir()
	cfg, err := flags([]string{
		"-csv", filepath.Join("testdata", "data-reg-diff.csv"),
		"-preset", "result",
		"-width", "3", "-height", "2", "-dpi", "50",
		"-save", filepath.Join(out, "result.png"),
		"-archive", filepath.Join(out, "plots"),
		"-note", "test",
		"-viewer", "none",
	}, noEnv)
	if err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), cfg, &stdout, log.New(&stderr, "", 0)); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(stdout.String(), "[41 rows x 4 columns]") {
		t.Errorf("table dump missing:\n%s", stdout.String())
	}
	if _, err := os.Stat(filepath.Join(out, "result.png")); err != nil {
		t.Error(err)
	}

	logs, _ := filepath.Glob(filepath.Join(out, "plots", "*", "*: test", "log.txt"))
	if len(logs) != 1 {
		t.Fatalf("archive log.txt = %v", logs)
	}
	b, err := os.ReadFile(logs[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "probability = 0.05") || strings.Contains(string(b), "probability = -1") {
		t.Errorf("log.txt:\n%s", b)
	}
	for _, ext := range []string{"png", "svg", "pdf"} {
		if _, err := os.Stat(filepath.Join(filepath.Dir(logs[0]), "data-reg-diff."+ext)); err != nil {
			t.Error(err)
		}
	}
}

func TestRunErrors(t *testing.T) {
	logger := log.New(&bytes.Buffer{}, "", 0)

	cfg, err := flags([]string{"-csv", filepath.Join(t.TempDir(), "missing.csv"), "-viewer", "none"}, noEnv)
	if err != nil {
		t.Fatal(err)
	}
	if err := run(context.Background(), cfg, &bytes.Buffer{}, logger); !errors.Is(err, table.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}

	cfg, err = flags([]string{"-csv", filepath.Join("testdata", "data-reg-diff.csv"), "-y", "reduction", "-viewer", "none", "-quiet"}, noEnv)
	if err != nil {
		t.Fatal(err)
	}
	if err := run(context.Background(), cfg, &bytes.Buffer{}, logger); !errors.Is(err, table.ErrNoColumn) {
		t.Errorf("err = %v, want ErrNoColumn", err)
	}
}
