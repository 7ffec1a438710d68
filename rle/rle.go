/*
Package rle implements the run-length encoding used by PCX scanline data.

A byte with both top bits set is a run marker; its low six bits hold a repeat
count and the following byte is the value to repeat. Any other byte is copied
through literally, so a literal value of 0xC0 or above has to be written as a
run of one.
*/
package rle

const (
	marker = 0xc0
	mask   = 0x3f

	// MaxRun is the longest run a single marker can describe
	MaxRun = mask
)

func isMarker(b byte) bool {
	return b&marker == marker
}

// Decode expands src into a zeroed buffer of size bytes. It stops once the
// buffer is full or src is exhausted and also returns how many bytes were
// produced. A short count is not an error; the remainder of the buffer is
// left as zero.
func Decode(src []byte, size int) ([]byte, int) {
	dst := make([]byte, size)

	var i, n int
	for i < len(src) && n < size {
		b := src[i]
		i++

		if !isMarker(b) {
			dst[n] = b
			n++
			continue
		}

		// Marker with nothing after it
		if i == len(src) {
			break
		}

		v := src[i]
		i++
		for count := int(b & mask); count > 0 && n < size; count-- {
			dst[n] = v
			n++
		}
	}

	return dst, n
}

func encode(dst, src []byte) []byte {
	for i := 0; i < len(src); {
		v := src[i]
		n := 1
		for i+n < len(src) && src[i+n] == v && n < MaxRun {
			n++
		}

		if n > 1 || isMarker(v) {
			dst = append(dst, marker|byte(n), v)
		} else {
			dst = append(dst, v)
		}
		i += n
	}
	return dst
}

// Encode compresses src as a single stream; runs may span the whole input.
func Encode(src []byte) []byte {
	return encode(make([]byte, 0, len(src)), src)
}

// EncodeLines compresses src one stride sized line at a time so that no run
// crosses a line boundary. A trailing partial line is encoded on its own.
func EncodeLines(src []byte, stride int) []byte {
	if stride <= 0 {
		return Encode(src)
	}

	dst := make([]byte, 0, len(src))
	for off := 0; off < len(src); off += stride {
		end := off + stride
		if end > len(src) {
			end = len(src)
		}
		dst = encode(dst, src[off:end])
	}
	return dst
}
