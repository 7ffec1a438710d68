package pcxconv

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/bodgit/pcxconv/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePalette(t *testing.T) {
	dir := t.TempDir()
	c := New(nil, 1)

	builtin := filepath.Join(dir, "DMTD.PAL")
	require.NoError(t, c.GeneratePalette("", builtin))

	info, err := os.Stat(builtin)
	require.NoError(t, err)
	assert.Equal(t, int64(palette.RawSize), info.Size())

	p, err := ReadPalette(builtin)
	require.NoError(t, err)
	assert.Equal(t, palette.Default(), p)

	src := filepath.Join(dir, "in.png")
	writePNG(t, src, testImage())

	generated := filepath.Join(dir, "GEN.PAL")
	require.NoError(t, c.GeneratePalette(src, generated))

	p, err = ReadPalette(generated)
	require.NoError(t, err)
	assert.Equal(t, palette.RGB{}, p[palette.Transparent])
}

func TestReadPaletteSize(t *testing.T) {
	file := filepath.Join(t.TempDir(), "BAD.PAL")
	require.NoError(t, os.WriteFile(file, make([]byte, palette.BlockSize), 0o644))

	_, err := ReadPalette(file)
	assert.ErrorIs(t, err, palette.ErrSizeMismatch)
}

func TestSwatch(t *testing.T) {
	dir := t.TempDir()
	c := New(nil, 1)

	pal := filepath.Join(dir, "DMTD.PAL")
	require.NoError(t, WritePalette(pal, palette.Default()))

	out := filepath.Join(dir, "swatch.png")
	require.NoError(t, c.Swatch(pal, out, 16, 2))

	m, err := readRaster(out)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 32, 32), m.Bounds())

	assert.Error(t, c.Swatch(pal, out, 0, 1))
}
