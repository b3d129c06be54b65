package layout

import "math"

// Format is the numeric encoding of point and analog samples.
type Format int

const (
	Integer Format = iota
	Real
)

func (f Format) String() string {
	if f == Real {
		return "real"
	}
	return "integer"
}

// AnalogFormat is the signedness of integer analog samples.
type AnalogFormat int

const (
	Signed AnalogFormat = iota
	Unsigned
)

func (a AnalogFormat) String() string {
	if a == Unsigned {
		return "unsigned"
	}
	return "signed"
}

// Calibration holds the ANALOG group calibration arrays.
type Calibration struct {
	Offset   []int16
	Scale    []float32
	GenScale []float32
}

// applies reports whether the calibration covers the given channel count.
func (c *Calibration) applies(channels int) bool {
	return c != nil &&
		c.Offset != nil && c.Scale != nil && c.GenScale != nil &&
		len(c.Offset) >= channels && len(c.Scale) >= channels && len(c.GenScale) >= 1
}

func (c *Calibration) decode(raw float32, ch int) float32 {
	return (raw - float32(c.Offset[ch])) * c.Scale[ch] * c.GenScale[0]
}

func (c *Calibration) encode(value float32, ch int) float32 {
	if c.GenScale[0] == 0 || c.Scale[ch] == 0 {
		return float32(c.Offset[ch])
	}
	return value/c.GenScale[0]/c.Scale[ch] + float32(c.Offset[ch])
}

// Layout describes the shape and encoding of the data section.
type Layout struct {
	Points   int
	Samples  int
	Channels int

	// Scale is the header scale factor; its sign selects the Format.
	Scale       float32
	Analog      AnalogFormat
	Calibration *Calibration
}

// Format returns the numeric encoding selected by the scale factor.
func (l Layout) Format() Format {
	if l.Scale < 0 {
		return Real
	}
	return Integer
}

// ElementSize is the width of one stored value: 2 for integer, 4 for real.
func (l Layout) ElementSize() int {
	if l.Format() == Real {
		return 4
	}
	return 2
}

// FrameSize returns the number of bytes one frame occupies.
func (l Layout) FrameSize() int {
	return (l.Points*4 + l.Samples*l.Channels) * l.ElementSize()
}

// SectionSize returns the number of bytes n frames occupy.
func (l Layout) SectionSize(n int) int {
	return n * l.FrameSize()
}

// floatWord converts a float to an int16 the way a saturating float to
// int32 conversion followed by a 16-bit truncation does.
func floatWord(v float32) int16 {
	switch {
	case v != v:
		return 0
	case v >= math.MaxInt32:
		// low word of 0x7fffffff
		return -1
	case v <= math.MinInt32:
		return 0
	}
	return int16(int32(v))
}

func roundInt16(v float32) int16 {
	r := math.Round(float64(v))
	switch {
	case r != r:
		return 0
	case r > math.MaxInt16:
		return math.MaxInt16
	case r < math.MinInt16:
		return math.MinInt16
	}
	return int16(r)
}

func roundUint16(v float32) uint16 {
	r := math.Round(float64(v))
	switch {
	case r != r || r < 0:
		return 0
	case r > math.MaxUint16:
		return math.MaxUint16
	}
	return uint16(r)
}

func roundUint8(v float32) uint8 {
	r := math.Round(float64(v))
	switch {
	case r != r || r < 0:
		return 0
	case r > math.MaxUint8:
		return math.MaxUint8
	}
	return uint8(r)
}

// pointWord packs a camera mask and residual byte. A valid point never
// produces the invalid sentinel -1.
func pointWord(mask, residual uint8) int16 {
	if mask == 0xff && residual == 0xff {
		residual = 0xfe
	}
	return int16(uint16(mask)<<8 | uint16(residual))
}
