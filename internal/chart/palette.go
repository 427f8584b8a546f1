package chart

import "image/color"

var (
	brushes = []color.RGBA{
		{R: 31, G: 211, B: 172, A: 255},
		{R: 255, G: 122, B: 180, A: 255},
		{R: 122, G: 156, B: 255, A: 255},
		{R: 255, G: 193, B: 122, A: 255},
		{R: 188, G: 117, B: 255, A: 255},
		{R: 234, G: 156, B: 172, A: 255},
		{R: 46, G: 140, B: 60, A: 255},
		{R: 27, G: 150, B: 146, A: 255},
		{R: 140, G: 46, B: 49, A: 255},
		{R: 122, G: 90, B: 41, A: 255},
	}
	darkBrushes = []color.RGBA{
		{R: 27, G: 170, B: 139, A: 255},
		{R: 201, G: 104, B: 146, A: 255},
		{R: 99, G: 124, B: 198, A: 255},
		{R: 183, G: 139, B: 89, A: 255},
		{R: 150, G: 90, B: 204, A: 255},
		{R: 187, G: 125, B: 138, A: 255},
		{R: 30, G: 100, B: 40, A: 255},
		{R: 18, G: 102, B: 99, A: 255},
		{R: 91, G: 22, B: 22, A: 255},
		{R: 80, G: 58, B: 26, A: 255},
	}
)

// Palette returns the fill colour of group i. Colours repeat after ten
// groups.
func Palette(i int, dark bool) color.RGBA {
	if dark {
		return darkBrushes[i%len(darkBrushes)]
	}
	return brushes[i%len(brushes)]
}

// withAlpha returns c at opacity a in [0, 1].
func withAlpha(c color.RGBA, a float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a*255 + 0.5)}
}
