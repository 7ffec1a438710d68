package palette

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

var errSwatchLayout = errors.New("palette: columns must be between 1 and 256 and scale at least 1")

// Swatch renders p as a grid with cols colors per row, each color drawn as a
// scale by scale square. Every color is drawn opaque, including Transparent;
// cells past the last color on a short final row stay transparent.
func Swatch(p *Palette, cols, scale int) (*image.NRGBA, error) {
	if cols < 1 || cols > Size || scale < 1 {
		return nil, errSwatchLayout
	}
	rows := (Size + cols - 1) / cols

	m := image.NewNRGBA(image.Rect(0, 0, cols, rows))
	for i, c := range p {
		m.SetNRGBA(i%cols, i/cols, color.NRGBA{c.R, c.G, c.B, 0xff})
	}

	if scale == 1 {
		return m, nil
	}

	dst := image.NewNRGBA(image.Rect(0, 0, cols*scale, rows*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), m, m.Bounds(), draw.Src, nil)
	return dst, nil
}
