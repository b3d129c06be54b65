package dtype

import (
	"github.com/robert-malhotra/go-c3d/internal/binary"
)

// DecodeStrings reads a character payload for dims from the cursor.
// It returns nil when the payload is empty.
func DecodeStrings(c *binary.Cursor, dims []int) []string {
	n := Count(dims)
	if n == 0 {
		return nil
	}
	if len(dims) <= 1 {
		return []string{c.String(n)}
	}
	return c.Strings(dims[0], Count(dims[1:]))
}

// DecodeBytes reads n unsigned bytes.
func DecodeBytes(c *binary.Cursor, n int) []uint8 {
	if n == 0 {
		return nil
	}
	return c.Bytes(n)
}

// DecodeInt16s reads n signed 16-bit words.
func DecodeInt16s(c *binary.Cursor, n int) []int16 {
	if n == 0 {
		return nil
	}
	return c.Int16s(n)
}

// DecodeFloat32s reads n floats.
func DecodeFloat32s(c *binary.Cursor, n int) []float32 {
	if n == 0 {
		return nil
	}
	return c.Float32s(n)
}
