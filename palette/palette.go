/*
Package palette implements the fixed 256 color palette used by 8-bit PCX
images.

A palette is stored on disk either as a raw 768 byte file of RGB triples or,
inside a PCX file, as a 769 byte block made up of a marker byte followed by
the same triples. Index 0 is reserved for transparent pixels.
*/
package palette

import (
	"errors"
	"image/color"
)

const (
	// Size is the number of colors in a palette
	Size = 256

	// RawSize is the size in bytes of a raw palette
	RawSize = Size * 3

	// BlockSize is the size in bytes of the palette block at the end of a
	// PCX file
	BlockSize = RawSize + 1

	// Marker is the first byte of a PCX palette block
	Marker = 0x0c

	// Transparent is the index reserved for transparent or background
	// pixels. It is never chosen when quantizing an opaque color.
	Transparent = 0
)

var (
	// ErrSizeMismatch is returned when a raw palette is not exactly
	// RawSize bytes
	ErrSizeMismatch = errors.New("palette: raw palette must be 768 bytes")

	// ErrBadMarker is returned when a PCX palette block does not start
	// with Marker
	ErrBadMarker = errors.New("palette: invalid palette block marker")
)

// RGB is a single palette entry
type RGB struct {
	R, G, B uint8
}

// Palette holds exactly Size colors. It implements the
// encoding.BinaryMarshaler and encoding.BinaryUnmarshaler interfaces using
// the raw 768 byte form.
type Palette [Size]RGB

// Load parses a raw palette
func Load(b []byte) (*Palette, error) {
	p := new(Palette)
	if err := p.UnmarshalBinary(b); err != nil {
		return nil, err
	}
	return p, nil
}

// ParseBlock parses the PCX palette block starting at offset within b
func ParseBlock(b []byte, offset int) (*Palette, error) {
	if offset < 0 || offset >= len(b) || b[offset] != Marker {
		return nil, ErrBadMarker
	}
	if len(b)-offset < BlockSize {
		return nil, ErrBadMarker
	}
	return Load(b[offset+1 : offset+BlockSize])
}

// Block returns the palette as a PCX palette block
func (p *Palette) Block() []byte {
	b := make([]byte, 1, BlockSize)
	b[0] = Marker
	return p.appendRaw(b)
}

func (p *Palette) appendRaw(b []byte) []byte {
	for _, c := range p {
		b = append(b, c.R, c.G, c.B)
	}
	return b
}

// MarshalBinary encodes the palette in raw form
func (p *Palette) MarshalBinary() ([]byte, error) {
	return p.appendRaw(make([]byte, 0, RawSize)), nil
}

// UnmarshalBinary decodes the palette from raw form
func (p *Palette) UnmarshalBinary(b []byte) error {
	if len(b) != RawSize {
		return ErrSizeMismatch
	}
	for i := range p {
		p[i] = RGB{b[i*3], b[i*3+1], b[i*3+2]}
	}
	return nil
}

// ColorPalette returns the palette as a color.Palette. The Transparent entry
// is fully transparent, every other entry is opaque.
func (p *Palette) ColorPalette() color.Palette {
	cp := make(color.Palette, Size)
	for i, c := range p {
		if i == Transparent {
			cp[i] = color.NRGBA{}
			continue
		}
		cp[i] = color.NRGBA{c.R, c.G, c.B, 0xff}
	}
	return cp
}
