package pcxconv

import (
	"fmt"
	"os"

	"github.com/bodgit/pcxconv/palette"
)

// ReadPalette reads a raw 768 byte palette file
func ReadPalette(file string) (*palette.Palette, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	p, err := palette.Load(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return p, nil
}

// WritePalette writes p to file in raw form
func WritePalette(file string, p *palette.Palette) error {
	b, err := p.MarshalBinary()
	if err != nil {
		return err
	}
	return os.WriteFile(file, b, 0o644)
}

// Swatch renders the palette file src as an image written to dst with cols
// colors per row, each drawn scale pixels square
func (c *Converter) Swatch(src, dst string, cols, scale int) error {
	p, err := ReadPalette(src)
	if err != nil {
		return err
	}

	m, err := palette.Swatch(p, cols, scale)
	if err != nil {
		return err
	}

	if err := writeRaster(dst, m); err != nil {
		return err
	}

	c.logger.Printf("Wrote \"%s\" (%dx%d)\n", dst, m.Bounds().Dx(), m.Bounds().Dy())
	return nil
}

// GeneratePalette writes a palette to dst. If src is empty the built-in
// palette is used, otherwise one is built from the colors in the image src.
func (c *Converter) GeneratePalette(src, dst string) error {
	p := palette.Default()
	if src != "" {
		m, err := readRaster(src)
		if err != nil {
			return err
		}
		p = palette.FromImage(m)
	}

	if err := WritePalette(dst, p); err != nil {
		return err
	}

	c.logger.Printf("Wrote \"%s\"\n", dst)
	return nil
}
