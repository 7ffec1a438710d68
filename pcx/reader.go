package pcx

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/bodgit/pcxconv/palette"
	"github.com/bodgit/pcxconv/rle"
)

func init() {
	image.RegisterFormat("pcx", "\x0a?\x01", Decode, DecodeConfig)
}

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

// Image is a decoded PCX file before conversion to RGBA
type Image struct {
	Header  Header
	Pix     []byte
	Palette *palette.Palette

	// Short is the number of scanline bytes missing from truncated RLE
	// data. Missing bytes are left as index 0.
	Short int
}

// Raster converts the image to RGBA
func (im *Image) Raster() *image.NRGBA {
	return ToRaster(im.Pix, im.Palette, im.Header.Width(), im.Header.Height(), int(im.Header.BytesPerLine))
}

type decoder struct {
	h Header
}

func (d *decoder) readHeader(b []byte) error {
	if err := d.h.UnmarshalBinary(b); err != nil {
		return err
	}

	if d.h.BitsPerPixel != bitsPerPixel {
		return UnsupportedError(fmt.Sprintf("%d bits per pixel", d.h.BitsPerPixel))
	}
	if d.h.Planes > 1 {
		return UnsupportedError(fmt.Sprintf("%d planes", d.h.Planes))
	}
	if d.h.Width() < 1 || d.h.Height() < 1 || int(d.h.BytesPerLine) < d.h.Width() {
		return ErrMalformedHeader
	}

	return nil
}

func (d *decoder) decode(b []byte) (*Image, error) {
	if err := d.readHeader(b); err != nil {
		return nil, err
	}

	if len(b) < minFileSize {
		return nil, palette.ErrBadMarker
	}

	offset := len(b) - palette.BlockSize
	p, err := palette.ParseBlock(b, offset)
	if err != nil {
		return nil, err
	}

	size := d.h.Height() * int(d.h.BytesPerLine)
	pix, n := rle.Decode(b[headerSize:offset], size)

	return &Image{
		Header:  d.h,
		Pix:     pix,
		Palette: p,
		Short:   size - n,
	}, nil
}

// Parse decodes a complete PCX file held in b
func Parse(b []byte) (*Image, error) {
	var d decoder
	return d.decode(b)
}

// Decode reads a PCX image from r and returns it as an *image.NRGBA.
func Decode(r io.Reader) (image.Image, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	im, err := Parse(b)
	if err != nil {
		return nil, err
	}

	return im.Raster(), nil
}

// DecodeConfig returns the color model and dimensions of a PCX image without
// decoding the entire image.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var b [headerSize]byte
	if err := readFull(r, b[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			return image.Config{}, ErrMalformedHeader
		}
		return image.Config{}, err
	}

	var d decoder
	if err := d.readHeader(b[:]); err != nil {
		return image.Config{}, err
	}

	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      d.h.Width(),
		Height:     d.h.Height(),
	}, nil
}
