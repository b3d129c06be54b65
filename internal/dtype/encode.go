package dtype

import (
	"strings"

	"github.com/robert-malhotra/go-c3d/internal/binary"
)

// EncodeStrings writes exactly Count(dims) bytes of character data.
// Strings are padded or truncated to the element width; missing strings
// are written as spaces.
func EncodeStrings(w *binary.Writer, dims []int, data []string) {
	n := Count(dims)
	if n == 0 {
		return
	}
	if len(dims) <= 1 {
		w.PutString(strings.Join(data, ""), n)
		return
	}

	width := dims[0]
	for i := 0; i < Count(dims[1:]); i++ {
		s := ""
		if i < len(data) {
			s = data[i]
		}
		w.PutString(s, width)
	}
}

// EncodeBytes writes exactly n bytes, zero-filling past the end of data.
func EncodeBytes(w *binary.Writer, n int, data []uint8) {
	for i := 0; i < n; i++ {
		var v uint8
		if i < len(data) {
			v = data[i]
		}
		w.PutUint8(v)
	}
}

// EncodeInt16s writes exactly n words, zero-filling past the end of data.
func EncodeInt16s(w *binary.Writer, n int, data []int16) {
	for i := 0; i < n; i++ {
		var v int16
		if i < len(data) {
			v = data[i]
		}
		w.PutInt16(v)
	}
}

// EncodeFloat32s writes exactly n floats, zero-filling past the end of data.
func EncodeFloat32s(w *binary.Writer, n int, data []float32) {
	for i := 0; i < n; i++ {
		var v float32
		if i < len(data) {
			v = data[i]
		}
		w.PutFloat32(v)
	}
}
