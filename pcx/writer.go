package pcx

import (
	"errors"
	"image"
	"io"
	"math"

	"github.com/bodgit/pcxconv/palette"
	"github.com/bodgit/pcxconv/rle"
)

// Options are the encoding parameters.
type Options struct {
	// Palette is used to quantize the image. The built-in palette is used
	// if nil.
	Palette *palette.Palette

	// Scanlines restarts run-length encoding at the start of every
	// scanline. Some readers decode one scanline at a time and reject runs
	// that cross a line boundary.
	Scanlines bool
}

type encoder struct {
	w         io.Writer
	scanlines bool
}

func (e *encoder) encode(im *Image) error {
	h, err := im.Header.MarshalBinary()
	if err != nil {
		return err
	}
	if _, err := e.w.Write(h); err != nil {
		return err
	}

	var data []byte
	if e.scanlines {
		data = rle.EncodeLines(im.Pix, int(im.Header.BytesPerLine))
	} else {
		data = rle.Encode(im.Pix)
	}
	if _, err := e.w.Write(data); err != nil {
		return err
	}

	_, err = e.w.Write(im.Palette.Block())
	return err
}

// NewImage quantizes m against p ready for encoding.
func NewImage(m image.Image, p *palette.Palette) (*Image, error) {
	b := m.Bounds()
	if b.Empty() {
		return nil, errors.New("pcx: image is empty")
	}
	// The padded scanline length must also fit in 16 bits
	if b.Dx() >= math.MaxUint16 || b.Dy() > math.MaxUint16 {
		return nil, errors.New("pcx: image is too large")
	}

	pix, _ := FromRaster(m, p)

	return &Image{
		Header:  *NewHeader(b.Dx(), b.Dy()),
		Pix:     pix,
		Palette: p,
	}, nil
}

// Encode writes the Image m to w in 8-bit PCX format. Pixels with an alpha at
// or below palette.AlphaThreshold are written as index 0.
func Encode(w io.Writer, m image.Image, o *Options) error {
	var p *palette.Palette
	if o != nil {
		p = o.Palette
	}
	if p == nil {
		p = palette.Default()
	}

	im, err := NewImage(m, p)
	if err != nil {
		return err
	}

	e := encoder{w: w}
	if o != nil {
		e.scanlines = o.Scanlines
	}

	return e.encode(im)
}
