package pcxconv

import (
	"bytes"
	"fmt"
	"os"

	"github.com/bodgit/pcxconv/palette"
	"github.com/bodgit/pcxconv/pcx"
)

// DecodeFile converts the PCX file src into a raster image written to dst.
// The output format is chosen from the extension of dst.
func (c *Converter) DecodeFile(src, dst string) error {
	b, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	im, err := pcx.Parse(b)
	if err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}

	if im.Short > 0 {
		c.logger.Printf("Warning: \"%s\" is truncated, %d of %d bytes missing\n", src, im.Short, len(im.Pix))
	}

	if err := writeRaster(dst, im.Raster()); err != nil {
		return err
	}

	c.logger.Printf("Wrote \"%s\" (%dx%d)\n", dst, im.Header.Width(), im.Header.Height())
	return nil
}

// EncodeFile converts the raster image src into a PCX file written to dst
// using palette p. If scanlines is true no run crosses a scanline.
func (c *Converter) EncodeFile(src, dst string, p *palette.Palette, scanlines bool) error {
	m, err := readRaster(src)
	if err != nil {
		return err
	}

	b := new(bytes.Buffer)
	if err := pcx.Encode(b, m, &pcx.Options{Palette: p, Scanlines: scanlines}); err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}

	if err := os.WriteFile(dst, b.Bytes(), 0o644); err != nil {
		return err
	}

	c.logger.Printf("Wrote \"%s\" (%dx%d)\n", dst, m.Bounds().Dx(), m.Bounds().Dy())
	return nil
}
