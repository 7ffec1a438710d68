package pcx

import (
	"encoding/binary"
)

// Header is the fixed 128 byte PCX header. It implements the
// encoding.BinaryMarshaler and encoding.BinaryUnmarshaler interfaces.
type Header struct {
	Manufacturer uint8
	Version      uint8
	Encoding     uint8
	BitsPerPixel uint8
	XMin         uint16
	YMin         uint16
	XMax         uint16
	YMax         uint16
	HDPI         uint16
	VDPI         uint16
	Planes       uint8
	BytesPerLine uint16
	PaletteInfo  uint16
}

// NewHeader returns the header for an 8-bit RLE image of the given size
func NewHeader(width, height int) *Header {
	return &Header{
		Manufacturer: manufacturer,
		Version:      version,
		Encoding:     encodingRLE,
		BitsPerPixel: bitsPerPixel,
		XMax:         uint16(width - 1),
		YMax:         uint16(height - 1),
		HDPI:         uint16(width),
		VDPI:         uint16(height),
		Planes:       1,
		BytesPerLine: uint16(stride(width)),
		PaletteInfo:  paletteColor,
	}
}

// Scanlines are padded to an even number of bytes
func stride(width int) int {
	return (width + 1) &^ 1
}

// Width returns the image width in pixels
func (h *Header) Width() int {
	return int(h.XMax) - int(h.XMin) + 1
}

// Height returns the image height in pixels
func (h *Header) Height() int {
	return int(h.YMax) - int(h.YMin) + 1
}

// MarshalBinary encodes the header into its 128 byte form. Unused and
// reserved bytes are zero.
func (h *Header) MarshalBinary() ([]byte, error) {
	b := make([]byte, headerSize)
	b[0] = h.Manufacturer
	b[1] = h.Version
	b[2] = h.Encoding
	b[3] = h.BitsPerPixel
	binary.LittleEndian.PutUint16(b[4:], h.XMin)
	binary.LittleEndian.PutUint16(b[6:], h.YMin)
	binary.LittleEndian.PutUint16(b[8:], h.XMax)
	binary.LittleEndian.PutUint16(b[10:], h.YMax)
	binary.LittleEndian.PutUint16(b[12:], h.HDPI)
	binary.LittleEndian.PutUint16(b[14:], h.VDPI)
	b[65] = h.Planes
	binary.LittleEndian.PutUint16(b[66:], h.BytesPerLine)
	binary.LittleEndian.PutUint16(b[68:], h.PaletteInfo)
	return b, nil
}

// UnmarshalBinary decodes the header from the first 128 bytes of b
func (h *Header) UnmarshalBinary(b []byte) error {
	if len(b) < headerSize || b[0] != manufacturer {
		return ErrMalformedHeader
	}

	*h = Header{
		Manufacturer: b[0],
		Version:      b[1],
		Encoding:     b[2],
		BitsPerPixel: b[3],
		XMin:         binary.LittleEndian.Uint16(b[4:]),
		YMin:         binary.LittleEndian.Uint16(b[6:]),
		XMax:         binary.LittleEndian.Uint16(b[8:]),
		YMax:         binary.LittleEndian.Uint16(b[10:]),
		HDPI:         binary.LittleEndian.Uint16(b[12:]),
		VDPI:         binary.LittleEndian.Uint16(b[14:]),
		Planes:       b[65],
		BytesPerLine: binary.LittleEndian.Uint16(b[66:]),
		PaletteInfo:  binary.LittleEndian.Uint16(b[68:]),
	}
	return nil
}
