package palette

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromImage(t *testing.T) {
	colors := []color.NRGBA{
		{0xff, 0x00, 0x00, 0xff},
		{0x00, 0xff, 0x00, 0xff},
		{0x00, 0x00, 0xff, 0xff},
		{0xff, 0xff, 0xff, 0xff},
	}

	m := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			m.SetNRGBA(x, y, colors[(y/8)*2+x/8])
		}
	}

	p := FromImage(m)
	assert.Equal(t, RGB{}, p[Transparent])

	// Every source color must quantize back to itself
	for _, c := range colors {
		i := p.Index(c)
		require.NotEqual(t, uint8(Transparent), i)
		assert.Equal(t, RGB{c.R, c.G, c.B}, p[i])
	}
}

func TestSwatch(t *testing.T) {
	p := Default()

	m, err := Swatch(p, 16, 1)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 16, 16), m.Bounds())
	assert.Equal(t, color.NRGBA{0, 0, 0, 0xff}, m.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{0xd9, 0x5b, 0x9a, 0xff}, m.NRGBAAt(1, 0))
	assert.Equal(t, color.NRGBA{0xd1, 0x7f, 0x6b, 0xff}, m.NRGBAAt(0, 1))

	m, err = Swatch(p, 256, 1)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 256, 1), m.Bounds())

	m, err = Swatch(p, 32, 4)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 128, 32), m.Bounds())
	assert.Equal(t, color.NRGBA{0xd9, 0x5b, 0x9a, 0xff}, m.NRGBAAt(7, 3))
	assert.Equal(t, color.NRGBA{0x9e, 0x44, 0x91, 0xff}, m.NRGBAAt(8, 0))

	// 256 colors over 100 columns leaves a partial last row
	m, err = Swatch(p, 100, 1)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 100, 3), m.Bounds())
	assert.Equal(t, color.NRGBA{}, m.NRGBAAt(99, 2))
}

func TestSwatchLayout(t *testing.T) {
	for _, layout := range [][2]int{{0, 1}, {257, 1}, {16, 0}} {
		_, err := Swatch(Default(), layout[0], layout[1])
		assert.Error(t, err)
	}
}
