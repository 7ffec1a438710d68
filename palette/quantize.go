package palette

import "image/color"

// AlphaThreshold is the highest alpha value that is still treated as
// transparent
const AlphaThreshold = 128

func sqDiff(x, y uint8) uint32 {
	d := int32(x) - int32(y)
	return uint32(d * d)
}

// NearestIndex returns the index of the color closest to r, g, b by squared
// Euclidean distance. Transparent is never returned. On a tie the lowest
// index wins.
func (p *Palette) NearestIndex(r, g, b uint8) uint8 {
	best, bestSum := 1, uint32(1<<32-1)
	for i := 1; i < Size; i++ {
		c := p[i]
		sum := sqDiff(r, c.R) + sqDiff(g, c.G) + sqDiff(b, c.B)
		if sum < bestSum {
			best, bestSum = i, sum
		}
	}
	return uint8(best)
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// Index returns the palette index for c. Colors with an alpha at or below
// AlphaThreshold map to Transparent, anything else to NearestIndex.
func (p *Palette) Index(c color.Color) uint8 {
	n := toNRGBA(c)
	if n.A <= AlphaThreshold {
		return Transparent
	}
	return p.NearestIndex(n.R, n.G, n.B)
}

// Quantizer memoizes palette lookups for a single conversion. It is not safe
// for concurrent use.
type Quantizer struct {
	p     *Palette
	cache map[RGB]uint8
}

// NewQuantizer returns a Quantizer for p
func NewQuantizer(p *Palette) *Quantizer {
	return &Quantizer{
		p:     p,
		cache: make(map[RGB]uint8),
	}
}

// Index behaves like Palette.Index
func (q *Quantizer) Index(c color.Color) uint8 {
	n := toNRGBA(c)
	if n.A <= AlphaThreshold {
		return Transparent
	}
	k := RGB{n.R, n.G, n.B}
	if i, ok := q.cache[k]; ok {
		return i
	}
	i := q.p.NearestIndex(n.R, n.G, n.B)
	q.cache[k] = i
	return i
}
