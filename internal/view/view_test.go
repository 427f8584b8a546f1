package view

import (
	"context"
	"errors"
	"image/png"
	"os"
	"runtime"
	"strings"
	"testing"

	"gonum.org/v1/plot/vg"

	"github.com/HamletTheHamster/experiment-charts/internal/chart"
	"github.com/HamletTheHamster/experiment-charts/internal/table"
)

func render(t *testing.T, kind chart.Kind) *chart.Chart {
	t.Helper()
	tb, err := table.LoadReader(strings.NewReader("probability,result\n0.1,5\n0.1,7\n0.2,3\n0.2,100\n0.2,4\n0.2,5\n"), "t", "")
	if err != nil {
		t.Fatal(err)
	}
	c, err := chart.Render(tb, chart.Spec{
		Category: "probability",
		Value:    "result",
		Kind:     kind,
		Title:    "test",
		Width:    2 * vg.Inch,
		Height:   vg.Inch,
		DPI:      50,
	})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func fakeEnv(t *testing.T, env map[string]string) {
	t.Helper()
	old := getenv
	getenv = func(k string) string { return env[k] }
	t.Cleanup(func() { getenv = old })
}

func TestHeadless(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("always has a display")
	}
	fakeEnv(t, nil)
	if !Headless() {
		t.Error("no DISPLAY should be headless")
	}
	fakeEnv(t, map[string]string{"WAYLAND_DISPLAY": "wayland-0"})
	if Headless() {
		t.Error("WAYLAND_DISPLAY should count as a display")
	}
}

func TestSystemShow(t *testing.T) {
	fakeEnv(t, map[string]string{"DISPLAY": ":0"})

	var opened string
	v := &System{Dir: t.TempDir(), run: func(path string) error {
		opened = path
		return nil
	}}
	if err := v.Show(context.Background(), render(t, chart.Box)); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(opened)
	if err != nil {
		t.Fatalf("viewer got %q: %v", opened, err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("viewer got a file that is not a PNG: %v", err)
	}
}

func TestSystemShowHeadless(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("always has a display")
	}
	fakeEnv(t, nil)

	v := &System{Dir: t.TempDir(), run: func(string) error {
		t.Error("opened a viewer without a display")
		return nil
	}}
	if err := v.Show(context.Background(), render(t, chart.Bar)); err != nil {
		t.Fatal(err)
	}
}

func TestSystemShowCancelled(t *testing.T) {
	fakeEnv(t, map[string]string{"DISPLAY": ":0"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	v := &System{Dir: t.TempDir(), run: func(string) error {
		t.Error("opened a viewer after cancellation")
		return nil
	}}
	if err := v.Show(ctx, render(t, chart.Bar)); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestNew(t *testing.T) {
	for _, name := range Names() {
		if _, err := New(name, nil); err != nil {
			t.Errorf("New(%q): %v", name, err)
		}
	}
	if _, err := New("fyne", nil); err == nil {
		t.Error("New(fyne) should fail")
	}
	if err := (None{}).Show(context.Background(), nil); err != nil {
		t.Error(err)
	}
}

func TestChartSeriesBar(t *testing.T) {
	c := render(t, chart.Bar)
	s := chartSeries(c)
	if len(s) != 1+len(c.Groups) {
		t.Fatalf("got %d series, want mean plus one CI per group", len(s))
	}
	if s[0].name != "mean" || s[0].style != "impulses" {
		t.Errorf("first series = %s/%s", s[0].name, s[0].style)
	}
	if got := s[0].data[1][0]; got != 6 {
		t.Errorf("mean of 0.1 = %v, want 6", got)
	}
	seen := map[string]bool{}
	for _, x := range s {
		if seen[x.name] {
			t.Errorf("duplicate series name %q", x.name)
		}
		seen[x.name] = true
	}
}

func TestChartSeriesBox(t *testing.T) {
	c := render(t, chart.Box)
	s := chartSeries(c)
	if len(s) != 5*len(c.Groups) {
		t.Fatalf("got %d series, want 5 per group", len(s))
	}
	for _, x := range s {
		if len(x.data) != 2 || len(x.data[0]) != len(x.data[1]) {
			t.Errorf("%s: ragged data %v", x.name, x.data)
		}
		if strings.HasPrefix(x.name, "upper") {
			for _, y := range x.data[1] {
				if y >= 100 {
					t.Errorf("%s reaches the outlier", x.name)
				}
			}
		}
	}
}
