package param

import (
	"strings"

	"github.com/robert-malhotra/go-c3d/internal/binary"
	"github.com/robert-malhotra/go-c3d/internal/dtype"
)

// Parameter is one named, typed, dimensioned value within a group.
//
// Exactly one of the payload slices is used, selected by Type. A nil payload
// means the parameter has no data (an extent of zero).
type Parameter struct {
	Name        string
	GroupID     int
	Locked      bool
	Description string

	// Dims is nil for a scalar.
	Dims []int
	Type dtype.Type

	Strings []string
	Bytes   []uint8
	Ints    []int16
	Floats  []float32
}

// Count returns the number of elements described by the dimensions.
func (p *Parameter) Count() int {
	return dtype.Count(p.Dims)
}

// DataSize returns the payload size in bytes.
func (p *Parameter) DataSize() int {
	return dtype.Size(p.Type, p.Dims)
}

// Len returns the number of decoded values held by the parameter.
func (p *Parameter) Len() int {
	switch p.Type {
	case dtype.Char:
		return len(p.Strings)
	case dtype.Byte:
		return len(p.Bytes)
	case dtype.Int16:
		return len(p.Ints)
	case dtype.Float32:
		return len(p.Floats)
	}
	return 0
}

// TrimmedStrings returns the character payload with trailing spaces and
// NULs removed from every element.
func (p *Parameter) TrimmedStrings() []string {
	if p.Type != dtype.Char || p.Strings == nil {
		return nil
	}
	out := make([]string, len(p.Strings))
	for i, s := range p.Strings {
		out[i] = strings.TrimRight(s, " \x00")
	}
	return out
}

func (p *Parameter) readData(c *binary.Cursor) {
	n := p.Count()
	switch p.Type {
	case dtype.Char:
		p.Strings = dtype.DecodeStrings(c, p.Dims)
	case dtype.Byte:
		p.Bytes = dtype.DecodeBytes(c, n)
	case dtype.Int16:
		p.Ints = dtype.DecodeInt16s(c, n)
	case dtype.Float32:
		p.Floats = dtype.DecodeFloat32s(c, n)
	}
}

// PutData writes exactly DataSize bytes. Character data is padded or
// truncated; short numeric data is zero filled.
func (p *Parameter) PutData(w *binary.Writer) {
	n := p.Count()
	switch p.Type {
	case dtype.Char:
		dtype.EncodeStrings(w, p.Dims, p.Strings)
	case dtype.Byte:
		dtype.EncodeBytes(w, n, p.Bytes)
	case dtype.Int16:
		dtype.EncodeInt16s(w, n, p.Ints)
	case dtype.Float32:
		dtype.EncodeFloat32s(w, n, p.Floats)
	}
}

// recordSize is the number of bytes the record occupies on disk.
func (p *Parameter) recordSize() int {
	return 7 + len(p.Name) + len(p.Description) + len(p.Dims) + p.DataSize()
}
