package chart

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Formats lists the file formats Save and WriteTo accept.
var Formats = []string{"png", "jpg", "jpeg", "tif", "tiff", "svg", "pdf", "eps"}

// Save writes the chart to path. The format follows the extension; raster
// formats are drawn at Spec.DPI.
func (c *Chart) Save(path string) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !supported(format) {
		return fmt.Errorf("chart: save %s: unsupported format %q", path, format)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := c.WriteTo(f, format); err != nil {
		f.Close()
		return fmt.Errorf("chart: save %s: %w", path, err)
	}
	return f.Close()
}

// WriteTo encodes the chart as format into w.
func (c *Chart) WriteTo(w io.Writer, format string) (int64, error) {
	w0, h0 := c.Spec.Width, c.Spec.Height

	switch format {
	case "png", "jpg", "jpeg", "tif", "tiff":
		cv := vgimg.NewWith(vgimg.UseWH(w0, h0), vgimg.UseDPI(c.Spec.DPI))
		c.Plot.Draw(draw.New(cv))

		switch format {
		case "png":
			return vgimg.PngCanvas{Canvas: cv}.WriteTo(w)
		case "jpg", "jpeg":
			return vgimg.JpegCanvas{Canvas: cv}.WriteTo(w)
		default:
			return vgimg.TiffCanvas{Canvas: cv}.WriteTo(w)
		}

	case "svg", "pdf", "eps":
		if format == "pdf" {
			defer regularWeight(c.Plot)()
		}
		wt, err := c.Plot.WriterTo(w0, h0, format)
		if err != nil {
			return 0, err
		}
		return wt.WriteTo(w)
	}
	return 0, fmt.Errorf("chart: unsupported format %q", format)
}

// SaveAll writes name.png, name.svg and name.pdf into dir, creating it
// if needed, and returns the paths written.
func (c *Chart) SaveAll(dir, name string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	var paths []string
	for _, ext := range []string{"png", "svg", "pdf"} {
		path := filepath.Join(dir, name+"."+ext)
		if err := c.Save(path); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// regularWeight sets every bold text style of p to normal weight and
// returns a func restoring them. vgpdf registers each face without a
// style but selects bold ones with "B", so it cannot find them.
func regularWeight(p *plot.Plot) (restore func()) {
	styles := []*text.Style{
		&p.Title.TextStyle,
		&p.X.Label.TextStyle, &p.Y.Label.TextStyle,
		&p.X.Tick.Label, &p.Y.Tick.Label,
		&p.Legend.TextStyle,
	}
	var bold []*text.Style
	for _, sty := range styles {
		if sty.Font.Weight != xfont.WeightNormal {
			bold = append(bold, sty)
		}
	}
	old := make([]xfont.Weight, len(bold))
	for i, sty := range bold {
		old[i] = sty.Font.Weight
		sty.Font.Weight = xfont.WeightNormal
	}
	return func() {
		for i, sty := range bold {
			sty.Font.Weight = old[i]
		}
	}
}

func supported(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}
