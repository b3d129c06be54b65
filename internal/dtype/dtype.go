package dtype

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrUnknownType is returned for a type tag outside {-1, 1, 2, 4}.
var ErrUnknownType = errors.New("unknown parameter element type")

// Type is the on-disk element type tag of a parameter.
type Type int8

// Parameter element types.
const (
	Char    Type = -1
	Byte    Type = 1
	Int16   Type = 2
	Float32 Type = 4
)

// Parse validates a type tag read from a parameter record.
func Parse(tag int8) (Type, error) {
	t := Type(tag)
	if !t.Valid() {
		return 0, errors.Wrapf(ErrUnknownType, "tag %d", tag)
	}
	return t, nil
}

// Valid reports whether t is one of the four defined element types.
func (t Type) Valid() bool {
	switch t {
	case Char, Byte, Int16, Float32:
		return true
	default:
		return false
	}
}

// Width returns the size of one element in bytes.
func (t Type) Width() int {
	if t < 0 {
		return int(-t)
	}
	return int(t)
}

func (t Type) String() string {
	switch t {
	case Char:
		return "Char"
	case Byte:
		return "Byte"
	case Int16:
		return "Int16"
	case Float32:
		return "Float32"
	default:
		return fmt.Sprintf("Type(%d)", int8(t))
	}
}

// Count returns the number of elements described by dims: 1 for a scalar,
// 0 if any extent is 0, otherwise the product of the extents.
func Count(dims []int) int {
	n := 1
	for _, d := range dims {
		n *= d
	}
	return n
}

// Size returns the payload size in bytes for an element type and dims.
func Size(t Type, dims []int) int {
	return t.Width() * Count(dims)
}

// FitString pads s with spaces or truncates it to exactly width bytes.
func FitString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if len(s) >= width {
		return s[:width]
	}
	buf := make([]byte, width)
	copy(buf, s)
	for i := len(s); i < width; i++ {
		buf[i] = ' '
	}
	return string(buf)
}
