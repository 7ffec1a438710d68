package palette

import (
	"image"
	"image/color"

	"github.com/ericpauley/go-quantize/quantize"
)

// FromImage builds a palette from the colors in m using median cut
// quantization. Transparent is left black and the quantized colors fill the
// remaining entries in order; any unused entries are also black.
func FromImage(m image.Image) *Palette {
	q := quantize.MedianCutQuantizer{}

	p := new(Palette)
	for i, c := range q.Quantize(make(color.Palette, 0, Size-1), m) {
		if i >= Size-1 {
			break
		}
		n := toNRGBA(c)
		p[i+1] = RGB{n.R, n.G, n.B}
	}
	return p
}
