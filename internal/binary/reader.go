// Package binary provides low-level binary I/O operations for C3D file parsing.
package binary

import (
	"encoding/binary"
	"math"
)

// C3D addressing units.
const (
	WordSize  = 2
	BlockSize = 512
)

// Order is one of the three byte orderings a C3D file may be stored in.
type Order int

const (
	// LittleEndian is the Intel/PC ordering (processor type 84).
	LittleEndian Order = iota
	// MiddleEndian is the DEC VAX ordering (processor type 85). 16-bit words
	// are little-endian; 32-bit values are word-swapped DEC floats.
	MiddleEndian
	// BigEndian is the MIPS/SGI ordering (processor type 86).
	BigEndian
)

func (o Order) String() string {
	switch o {
	case LittleEndian:
		return "little-endian"
	case MiddleEndian:
		return "middle-endian (DEC)"
	case BigEndian:
		return "big-endian"
	default:
		return "unknown"
	}
}

// Cursor is a positionable decoder over an immutable byte slice.
//
// Reads outside the slice panic. Callers check Remaining before decoding
// anything whose extent comes from the file itself.
type Cursor struct {
	data  []byte
	order Order
	pos   int
}

// NewCursor returns a little-endian cursor positioned at byte 0.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// SetOrder selects the byte order used by all subsequent multi-byte reads.
func (c *Cursor) SetOrder(order Order) {
	c.order = order
}

// Order returns the configured byte order.
func (c *Cursor) Order() Order {
	return c.order
}

// Len returns the size of the underlying data.
func (c *Cursor) Len() int {
	return len(c.data)
}

// Pos returns the current read position (0-based).
func (c *Cursor) Pos() int {
	return c.pos
}

// Remaining returns the number of bytes between the position and the end.
func (c *Cursor) Remaining() int {
	if c.pos >= len(c.data) {
		return 0
	}
	return len(c.data) - c.pos
}

// Seek moves to a 0-based byte index.
func (c *Cursor) Seek(i int) {
	c.pos = i
}

// SeekByte moves to a 1-based byte index.
func (c *Cursor) SeekByte(i int) {
	c.pos = i - 1
}

// SeekWord moves to the start of a 1-based word.
func (c *Cursor) SeekWord(i int) {
	c.pos = (i - 1) * WordSize
}

// SeekBlock moves to the start of a 1-based block.
func (c *Cursor) SeekBlock(i int) {
	c.pos = (i - 1) * BlockSize
}

// Skip advances the position by n bytes.
func (c *Cursor) Skip(n int) {
	c.pos += n
}

// Uint8At returns the byte at i.
func (c *Cursor) Uint8At(i int) uint8 {
	return c.data[i]
}

// Int8At returns the signed byte at i.
func (c *Cursor) Int8At(i int) int8 {
	return int8(c.data[i])
}

// Uint16At decodes the 16-bit word starting at i.
func (c *Cursor) Uint16At(i int) uint16 {
	b := c.data[i : i+2]
	if c.order == BigEndian {
		return binary.BigEndian.Uint16(b)
	}
	return binary.LittleEndian.Uint16(b)
}

// Int16At decodes the signed 16-bit word starting at i.
func (c *Cursor) Int16At(i int) int16 {
	return int16(c.Uint16At(i))
}

// Int32At decodes the 32-bit integer starting at i.
//
// In middle-endian order the bytes are reassembled as b1 b0 b3 b2 and, unless
// all four bytes are zero, the high byte is decremented first. That is the
// DEC-to-IEEE exponent correction applied at the bit level, so Float32At
// yields the IEEE value of a DEC F-float.
func (c *Cursor) Int32At(i int) int32 {
	b := c.data[i : i+4]
	switch c.order {
	case BigEndian:
		return int32(binary.BigEndian.Uint32(b))
	case MiddleEndian:
		b0, b1, b2, b3 := b[0], b[1], b[2], b[3]
		if b0 != 0 || b1 != 0 || b2 != 0 || b3 != 0 {
			b1--
		}
		return int32(uint32(b1)<<24 | uint32(b0)<<16 | uint32(b3)<<8 | uint32(b2))
	default:
		return int32(binary.LittleEndian.Uint32(b))
	}
}

// Float32At decodes the 32-bit float starting at i.
func (c *Cursor) Float32At(i int) float32 {
	return math.Float32frombits(uint32(c.Int32At(i)))
}

// BytesAt returns a copy of n bytes starting at i.
func (c *Cursor) BytesAt(i, n int) []byte {
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n)
	copy(buf, c.data[i:i+n])
	return buf
}

// StringAt returns n bytes starting at i as a string, untrimmed.
func (c *Cursor) StringAt(i, n int) string {
	if n <= 0 {
		return ""
	}
	return string(c.data[i : i+n])
}

// Uint8 reads one byte.
func (c *Cursor) Uint8() uint8 {
	v := c.Uint8At(c.pos)
	c.pos++
	return v
}

// Int8 reads one signed byte.
func (c *Cursor) Int8() int8 {
	v := c.Int8At(c.pos)
	c.pos++
	return v
}

// Uint16 reads a 16-bit word.
func (c *Cursor) Uint16() uint16 {
	v := c.Uint16At(c.pos)
	c.pos += 2
	return v
}

// Int16 reads a signed 16-bit word.
func (c *Cursor) Int16() int16 {
	v := c.Int16At(c.pos)
	c.pos += 2
	return v
}

// Int32 reads a signed 32-bit integer.
func (c *Cursor) Int32() int32 {
	v := c.Int32At(c.pos)
	c.pos += 4
	return v
}

// Float32 reads a 32-bit float.
func (c *Cursor) Float32() float32 {
	v := c.Float32At(c.pos)
	c.pos += 4
	return v
}

// Bytes reads n bytes.
func (c *Cursor) Bytes(n int) []byte {
	v := c.BytesAt(c.pos, n)
	if n > 0 {
		c.pos += n
	}
	return v
}

// String reads n bytes as a string.
func (c *Cursor) String(n int) string {
	v := c.StringAt(c.pos, n)
	if n > 0 {
		c.pos += n
	}
	return v
}

// Int16s reads n consecutive signed words.
func (c *Cursor) Int16s(n int) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = c.Int16()
	}
	return out
}

// Float32s reads n consecutive floats.
func (c *Cursor) Float32s(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = c.Float32()
	}
	return out
}

// Strings reads n consecutive fixed-width strings.
func (c *Cursor) Strings(width, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = c.String(width)
	}
	return out
}
