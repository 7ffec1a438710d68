/*
Package pcx implements an 8-bit PCX image decoder and encoder.

Only the single plane, 256 color variant is supported. A file is a 128 byte
header, run-length encoded scanlines of one palette index per pixel and
finally a 769 byte palette block. Palette index 0 is treated as transparent in
both directions so that images with an alpha channel survive a round trip.
*/
package pcx

import (
	"errors"

	"github.com/bodgit/pcxconv/palette"
)

const (
	headerSize = 128

	manufacturer = 0x0a
	version      = 5
	encodingRLE  = 1
	bitsPerPixel = 8
	paletteColor = 1

	minFileSize = headerSize + palette.BlockSize
)

// ErrMalformedHeader is returned when the data does not start with a valid
// PCX header
var ErrMalformedHeader = errors.New("pcx: malformed header")

// An UnsupportedError reports a valid PCX file using a variant that is not
// supported.
type UnsupportedError string

func (e UnsupportedError) Error() string {
	return "pcx: unsupported variant: " + string(e)
}
