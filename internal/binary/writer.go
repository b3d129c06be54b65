// Package binary provides low-level binary I/O operations for C3D file parsing and writing.
package binary

import (
	"encoding/binary"
	"math"
)

// Writer encodes values into a zero-filled in-memory image made of whole
// 512-byte blocks. Writing past the image panics; the encoder sizes the
// image up front from the computed block layout.
type Writer struct {
	buf   []byte
	order Order
	pos   int
}

// NewWriter creates a writer over a zeroed image of the given block count.
func NewWriter(blocks int, order Order) *Writer {
	return &Writer{
		buf:   make([]byte, blocks*BlockSize),
		order: order,
	}
}

// Bytes returns the encoded image.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Order returns the configured byte order.
func (w *Writer) Order() Order {
	return w.order
}

// Pos returns the current write position (0-based).
func (w *Writer) Pos() int {
	return w.pos
}

// Seek moves to a 0-based byte index.
func (w *Writer) Seek(i int) {
	w.pos = i
}

// SeekWord moves to the start of a 1-based word.
func (w *Writer) SeekWord(i int) {
	w.pos = (i - 1) * WordSize
}

// SeekBlock moves to the start of a 1-based block.
func (w *Writer) SeekBlock(i int) {
	w.pos = (i - 1) * BlockSize
}

// Skip advances the position by n bytes without writing.
func (w *Writer) Skip(n int) {
	w.pos += n
}

// PutUint8 writes one byte.
func (w *Writer) PutUint8(v uint8) {
	w.buf[w.pos] = v
	w.pos++
}

// PutInt8 writes one signed byte.
func (w *Writer) PutInt8(v int8) {
	w.PutUint8(uint8(v))
}

// PutUint16 writes a 16-bit word.
func (w *Writer) PutUint16(v uint16) {
	b := w.buf[w.pos : w.pos+2]
	if w.order == BigEndian {
		binary.BigEndian.PutUint16(b, v)
	} else {
		binary.LittleEndian.PutUint16(b, v)
	}
	w.pos += 2
}

// PutInt16 writes a signed 16-bit word.
func (w *Writer) PutInt16(v int16) {
	w.PutUint16(uint16(v))
}

// PutInt32 writes a 32-bit integer. Middle-endian output is the inverse of
// Cursor.Int32At: the high byte is incremented for non-zero values and the
// two words are stored swapped.
func (w *Writer) PutInt32(v int32) {
	b := w.buf[w.pos : w.pos+4]
	u := uint32(v)
	switch w.order {
	case BigEndian:
		binary.BigEndian.PutUint32(b, u)
	case MiddleEndian:
		hi := byte(u >> 24)
		if u != 0 {
			hi++
		}
		b[0] = byte(u >> 16)
		b[1] = hi
		b[2] = byte(u)
		b[3] = byte(u >> 8)
	default:
		binary.LittleEndian.PutUint32(b, u)
	}
	w.pos += 4
}

// PutFloat32 writes a 32-bit float.
func (w *Writer) PutFloat32(v float32) {
	w.PutInt32(int32(math.Float32bits(v)))
}

// PutBytes writes raw bytes.
func (w *Writer) PutBytes(data []byte) {
	n := copy(w.buf[w.pos:w.pos+len(data)], data)
	w.pos += n
}

// PutString writes s into exactly width bytes, padding with spaces or
// truncating as needed.
func (w *Writer) PutString(s string, width int) {
	for i := 0; i < width; i++ {
		if i < len(s) {
			w.buf[w.pos+i] = s[i]
		} else {
			w.buf[w.pos+i] = ' '
		}
	}
	w.pos += width
}
