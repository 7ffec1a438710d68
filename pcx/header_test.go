package pcx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderRoundTrip(t *testing.T) {
	b, err := NewHeader(200, 150).MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, headerSize)

	var h Header
	require.NoError(t, h.UnmarshalBinary(b))
	assert.Equal(t, 200, h.Width())
	assert.Equal(t, 150, h.Height())
	assert.Equal(t, uint16(200), h.BytesPerLine)
}

func TestHeaderLayout(t *testing.T) {
	b, err := NewHeader(301, 2).MarshalBinary()
	require.NoError(t, err)

	expected := make([]byte, headerSize)
	copy(expected, []byte{
		0x0a, 0x05, 0x01, 0x08, // manufacturer, version, encoding, bpp
		0x00, 0x00, 0x00, 0x00, // xmin, ymin
		0x2c, 0x01, 0x01, 0x00, // xmax, ymax
		0x2d, 0x01, 0x02, 0x00, // hdpi, vdpi
	})
	expected[65] = 1
	expected[66], expected[67] = 0x2e, 0x01 // 302
	expected[68] = 1

	assert.Equal(t, expected, b)
}

func TestHeaderWindow(t *testing.T) {
	b := make([]byte, headerSize)
	b[0] = manufacturer
	b[4], b[6] = 10, 20  // xmin, ymin
	b[8], b[10] = 19, 24 // xmax, ymax
	b[66] = 12

	var h Header
	require.NoError(t, h.UnmarshalBinary(b))
	assert.Equal(t, 10, h.Width())
	assert.Equal(t, 5, h.Height())
	assert.Equal(t, uint16(12), h.BytesPerLine)
}

func TestHeaderMalformed(t *testing.T) {
	b, err := NewHeader(4, 4).MarshalBinary()
	require.NoError(t, err)

	var h Header
	assert.ErrorIs(t, h.UnmarshalBinary(b[:headerSize-1]), ErrMalformedHeader)

	b[0] = 0x0b
	assert.ErrorIs(t, h.UnmarshalBinary(b), ErrMalformedHeader)
}

func TestStride(t *testing.T) {
	for width, expected := range map[int]int{1: 2, 2: 2, 3: 4, 4: 4, 199: 200, 200: 200} {
		assert.Equal(t, expected, stride(width), "width %d", width)
	}
}
