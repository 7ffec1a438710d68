package pcx

import (
	"image"
	"image/color"

	"github.com/bodgit/pcxconv/palette"
)

// ToRaster expands indexed scanlines into an RGBA image. Index 0 becomes a
// fully transparent black pixel, everything else the palette color at full
// opacity. Bytes beyond width in each scanline are ignored.
func ToRaster(pix []byte, p *palette.Palette, width, height, bytesPerLine int) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := pix[y*bytesPerLine+x]
			if i == palette.Transparent {
				continue
			}

			c := p[i]
			o := m.PixOffset(x, y)
			m.Pix[o+0] = c.R
			m.Pix[o+1] = c.G
			m.Pix[o+2] = c.B
			m.Pix[o+3] = 0xff
		}
	}

	return m
}

// FromRaster maps every pixel of m to a palette index and returns the
// scanlines padded to an even length along with that length.
func FromRaster(m image.Image, p *palette.Palette) ([]byte, int) {
	b := m.Bounds()
	bytesPerLine := stride(b.Dx())
	pix := make([]byte, bytesPerLine*b.Dy())

	q := palette.NewQuantizer(p)

	switch src := m.(type) {
	case *image.NRGBA:
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				o := src.PixOffset(b.Min.X+x, b.Min.Y+y)
				s := src.Pix[o : o+4 : o+4]
				pix[y*bytesPerLine+x] = q.Index(color.NRGBA{s[0], s[1], s[2], s[3]})
			}
		}
	default:
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				pix[y*bytesPerLine+x] = q.Index(m.At(b.Min.X+x, b.Min.Y+y))
			}
		}
	}

	return pix, bytesPerLine
}
