// Package view puts rendered charts in front of a user.
//
// Every viewer is a no-op when no display is reachable, so the same
// pipeline runs unchanged on a headless machine.
package view

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"sort"
	"strings"

	"github.com/skratchdot/open-golang/open"

	"github.com/HamletTheHamster/experiment-charts/internal/chart"
)

// Viewer shows a chart.
type Viewer interface {
	Show(ctx context.Context, c *chart.Chart) error
}

// ErrNotBuilt is returned by New for a viewer left out of this build.
var ErrNotBuilt = errors.New("view: viewer not built")

var viewers = map[string]func(*log.Logger) Viewer{
	"system": func(l *log.Logger) Viewer { return &System{Logger: l} },
	"none":   func(*log.Logger) Viewer { return None{} },
}

// optional maps viewers that need a build tag to that tag.
var optional = map[string]string{"gnuplot": "gnuplot"}

func register(name string, f func(*log.Logger) Viewer) {
	viewers[name] = f
}

// Names lists the viewers New knows in this build.
func Names() []string {
	names := make([]string, 0, len(viewers))
	for n := range viewers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// New returns the viewer called name. A nil logger discards messages.
func New(name string, logger *log.Logger) (Viewer, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	name = strings.ToLower(name)
	if name == "" {
		name = "system"
	}
	if f, ok := viewers[name]; ok {
		return f(logger), nil
	}
	if tag, ok := optional[name]; ok {
		return nil, fmt.Errorf("%w: %s (rebuild with -tags %s)", ErrNotBuilt, name, tag)
	}
	return nil, fmt.Errorf("view: unknown viewer %q (want one of %s)", name, strings.Join(Names(), ", "))
}

var getenv = os.Getenv

// Headless reports whether there is no display to show a window on.
func Headless() bool {
	switch runtime.GOOS {
	case "windows", "darwin", "ios", "android":
		return false
	}
	return getenv("DISPLAY") == "" && getenv("WAYLAND_DISPLAY") == ""
}

func logf(l *log.Logger, format string, args ...any) {
	if l != nil {
		l.Printf(format, args...)
	}
}

// None never shows anything.
type None struct{}

func (None) Show(context.Context, *chart.Chart) error { return nil }

// System writes the chart as a PNG and hands it to the desktop's default
// image viewer, waiting for the opener to return. The PNG stays in Dir so
// that viewers which detach can still read it.
type System struct {
	Dir    string // "" means os.TempDir()
	Logger *log.Logger

	run func(path string) error
}

func (v *System) Show(ctx context.Context, c *chart.Chart) error {
	if Headless() {
		logf(v.Logger, "no display, not showing %q", c.Spec.Title)
		return nil
	}

	f, err := os.CreateTemp(v.Dir, "chart-*.png")
	if err != nil {
		return err
	}
	if _, err := c.WriteTo(f, "png"); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	run := v.run
	if run == nil {
		run = open.Run
	}
	logf(v.Logger, "opening %s", f.Name())
	if err := run(f.Name()); err != nil {
		return fmt.Errorf("view: open %s: %w", f.Name(), err)
	}
	return nil
}
