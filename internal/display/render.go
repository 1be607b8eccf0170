package display

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

const halfBlock = "▀"

// FitSize returns the pixel dimensions img should be scaled to so it fits in
// a cols x rows cell grid. Each cell holds two vertically stacked pixels.
// Images are only ever scaled down.
func FitSize(bounds image.Rectangle, cols, rows int) (int, int) {
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 || cols <= 0 || rows <= 0 {
		return 0, 0
	}

	maxW, maxH := cols, rows*2
	scale := 1.0
	if sx := float64(maxW) / float64(w); sx < scale {
		scale = sx
	}
	if sy := float64(maxH) / float64(h); sy < scale {
		scale = sy
	}

	fw := max(1, int(float64(w)*scale))
	fh := max(1, int(float64(h)*scale))
	return fw, fh
}

// Render draws img into at most cols x rows terminal cells.
func Render(img image.Image, cols, rows int) string {
	if img == nil {
		return ""
	}
	w, h := FitSize(img.Bounds(), cols, rows)
	if w == 0 || h == 0 {
		return ""
	}

	scaled := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)

	var b strings.Builder
	for y := 0; y < h; y += 2 {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < w; x++ {
			style := lipgloss.NewStyle().Foreground(hexColor(scaled.NRGBAAt(x, y)))
			if y+1 < h {
				style = style.Background(hexColor(scaled.NRGBAAt(x, y+1)))
			}
			b.WriteString(style.Render(halfBlock))
		}
	}
	return b.String()
}

func hexColor(c color.NRGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
