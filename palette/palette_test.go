package palette

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawPalette() []byte {
	b := make([]byte, RawSize)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestLoad(t *testing.T) {
	tables := []struct {
		name string
		size int
		err  error
	}{
		{"short", RawSize - 1, ErrSizeMismatch},
		{"long", RawSize + 1, ErrSizeMismatch},
		{"empty", 0, ErrSizeMismatch},
		{"exact", RawSize, nil},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			p, err := Load(make([]byte, table.size))
			if table.err != nil {
				assert.ErrorIs(t, err, table.err)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Len(t, p[:], Size)
		})
	}
}

func TestLoadOrder(t *testing.T) {
	p, err := Load(rawPalette())
	require.NoError(t, err)

	assert.Equal(t, RGB{0, 1, 2}, p[0])
	assert.Equal(t, RGB{3, 4, 5}, p[1])
	assert.Equal(t, RGB{0xfd, 0xfe, 0xff}, p[255])

	b, err := p.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, rawPalette(), b)
}

func TestBlock(t *testing.T) {
	p, err := Load(rawPalette())
	require.NoError(t, err)

	block := p.Block()
	require.Len(t, block, BlockSize)
	assert.Equal(t, byte(Marker), block[0])
	assert.Equal(t, rawPalette(), block[1:])

	// Embed the block after some leading data
	b := append(bytes.Repeat([]byte{0xaa}, 10), block...)
	q, err := ParseBlock(b, 10)
	require.NoError(t, err)
	assert.Equal(t, p, q)
}

func TestParseBlockErrors(t *testing.T) {
	block := Default().Block()

	bad := append([]byte{}, block...)
	bad[0] = 0x0d
	_, err := ParseBlock(bad, 0)
	assert.ErrorIs(t, err, ErrBadMarker)

	_, err = ParseBlock(block[:BlockSize-1], 0)
	assert.ErrorIs(t, err, ErrBadMarker)

	_, err = ParseBlock(block, len(block))
	assert.ErrorIs(t, err, ErrBadMarker)

	_, err = ParseBlock(block, -1)
	assert.ErrorIs(t, err, ErrBadMarker)
}

func TestColorPalette(t *testing.T) {
	p := Default()
	p[0] = RGB{1, 2, 3}

	cp := p.ColorPalette()
	require.Len(t, cp, Size)
	assert.Equal(t, color.NRGBA{}, cp[Transparent])
	assert.Equal(t, color.NRGBA{0xd9, 0x5b, 0x9a, 0xff}, cp[1])
}

func TestDefault(t *testing.T) {
	p := Default()
	assert.Equal(t, RGB{}, p[0])
	assert.Equal(t, RGB{0xd9, 0x5b, 0x9a}, p[1])
	assert.Equal(t, RGB{0xff, 0xff, 0xff}, p[45])
	assert.Equal(t, RGB{0x46, 0x82, 0xb4}, p[255])

	// Copies must not alias the built-in palette
	p[1] = RGB{}
	assert.Equal(t, RGB{0xd9, 0x5b, 0x9a}, Default()[1])
}

func TestParseHex(t *testing.T) {
	p, err := ParseHex("#FF0000 00ff00\n0000FF")
	require.NoError(t, err)
	assert.Equal(t, RGB{0xff, 0, 0}, p[0])
	assert.Equal(t, RGB{0, 0xff, 0}, p[1])
	assert.Equal(t, RGB{0, 0, 0xff}, p[2])
	assert.Equal(t, RGB{}, p[3])

	_, err = ParseHex("FFF")
	assert.Error(t, err)

	_, err = ParseHex("GG0000")
	assert.Error(t, err)

	_, err = ParseHex(string(bytes.Repeat([]byte("000000 "), Size+1)))
	assert.ErrorIs(t, err, ErrSizeMismatch)
}
