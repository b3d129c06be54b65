package c3d

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/robert-malhotra/go-c3d/internal/binary"
	"github.com/robert-malhotra/go-c3d/internal/dtype"
	"github.com/robert-malhotra/go-c3d/internal/header"
	"github.com/robert-malhotra/go-c3d/internal/layout"
	"github.com/robert-malhotra/go-c3d/internal/log"
	"github.com/robert-malhotra/go-c3d/internal/param"
)

// Frame holds the point and analog data of one frame.
type Frame = layout.Frame

// Event is a labelled time event from the header.
type Event = header.Event

// DataFormat is the numeric encoding of point and analog data.
type DataFormat = layout.Format

// Data formats.
const (
	Integer = layout.Integer
	Real    = layout.Real
)

// AnalogFormat is the signedness of integer analog samples.
type AnalogFormat = layout.AnalogFormat

// Analog formats.
const (
	Signed   = layout.Signed
	Unsigned = layout.Unsigned
)

// File is a decoded C3D file.
type File struct {
	path         string
	header       *header.Header
	params       *param.Section
	frames       []*Frame
	analogFormat AnalogFormat
}

// Open reads and decodes a C3D file.
func Open(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	f, err := Decode(data)
	if err != nil {
		return nil, errors.WithMessagef(err, "decoding %s", path)
	}
	f.path = path
	return f, nil
}

// Read decodes a C3D file from r.
func Read(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return Decode(data)
}

// Decode decodes a complete C3D image. The header, parameter and data
// sections are decoded in that order; any failure aborts the whole decode.
func Decode(data []byte) (*File, error) {
	c := binary.NewCursor(data)

	h, err := header.Read(c)
	if err != nil {
		return nil, truncated(errors.WithMessage(err, "reading header"))
	}

	sec, err := param.Parse(c, h.ParamStartBlock)
	if err != nil {
		return nil, truncated(errors.WithMessage(err, "reading parameters"))
	}

	f := &File{header: h, params: sec}
	if !h.Real() {
		format := f.Strings("ANALOG", "FORMAT", nil)
		if len(format) > 0 && strings.TrimRight(format[0], " \x00") == "UNSIGNED" {
			f.analogFormat = Unsigned
		}
	}

	frames, err := layout.Decode(c, h.DataStartBlock, h.NumFrames(), f.layout())
	if err != nil {
		return nil, truncated(errors.WithMessage(err, "reading data"))
	}
	f.frames = frames

	log.Debug("decoded file", map[string]interface{}{
		log.KeyOrder:  h.Order.String(),
		log.KeyPoints: h.PointCount,
		log.KeyFrames: len(frames),
		"format":      f.DataFormat().String(),
	})
	return f, nil
}

func (f *File) layout() layout.Layout {
	return layout.Layout{
		Points:      f.header.PointCount,
		Samples:     f.header.AnalogSamplesPerFrame,
		Channels:    f.header.AnalogChannels(),
		Scale:       f.header.Scale,
		Analog:      f.analogFormat,
		Calibration: f.calibration(),
	}
}

// calibration is looked up once per decode or encode.
func (f *File) calibration() *layout.Calibration {
	return &layout.Calibration{
		Offset:   f.Int16s("ANALOG", "OFFSET", nil),
		Scale:    f.Float32s("ANALOG", "SCALE", nil),
		GenScale: f.Float32s("ANALOG", "GEN_SCALE", nil),
	}
}

// Path returns the path the file was opened from, if any.
func (f *File) Path() string {
	return f.path
}

// ParamStartBlock returns the first block of the parameter section.
func (f *File) ParamStartBlock() int { return f.header.ParamStartBlock }

// ParamBlocks returns the parameter section length in blocks.
func (f *File) ParamBlocks() int { return f.params.Blocks }

// PointCount returns the number of 3D points per frame.
func (f *File) PointCount() int { return f.header.PointCount }

// AnalogPerFrame returns the number of analog measurements per frame
// (channels × samples).
func (f *File) AnalogPerFrame() int { return f.header.AnalogPerFrame }

// AnalogSamplesPerFrame returns the number of analog samples per frame.
func (f *File) AnalogSamplesPerFrame() int { return f.header.AnalogSamplesPerFrame }

// AnalogChannels returns the number of analog channels.
func (f *File) AnalogChannels() int { return f.header.AnalogChannels() }

// FirstFrame returns the number of the first frame.
func (f *File) FirstFrame() int { return f.header.FirstFrame }

// LastFrame returns the number of the last frame.
func (f *File) LastFrame() int { return f.header.LastFrame }

// MaxInterpolationGap returns the maximum interpolation gap in frames.
func (f *File) MaxInterpolationGap() int { return f.header.MaxInterpolationGap }

// Scale returns the point scale factor.
func (f *File) Scale() float32 { return f.header.Scale }

// DataStartBlock returns the first block of the data section.
func (f *File) DataStartBlock() int { return f.header.DataStartBlock }

// FrameRate returns the point frame rate in Hz.
func (f *File) FrameRate() float32 { return f.header.FrameRate }

// AnalogRate returns the analog sample rate in Hz.
func (f *File) AnalogRate() float32 { return f.header.AnalogRate() }

// RangeAndLabel reports whether a label and range section is present.
func (f *File) RangeAndLabel() bool { return f.header.RangeAndLabel }

// LabelRangeBlock returns the first block of the label and range section.
func (f *File) LabelRangeBlock() int { return f.header.LabelRangeBlock }

// FourCharEventLabels reports whether event labels are 4 characters wide.
func (f *File) FourCharEventLabels() bool { return f.header.FourCharEventLabels }

// Events returns a copy of the header events.
func (f *File) Events() []Event {
	if f.header.Events == nil {
		return nil
	}
	out := make([]Event, len(f.header.Events))
	copy(out, f.header.Events)
	return out
}

// ByteOrder returns the byte order the file was read with.
func (f *File) ByteOrder() Order { return f.header.Order }

// DataFormat returns the point and analog storage format.
func (f *File) DataFormat() DataFormat {
	if f.header.Real() {
		return Real
	}
	return Integer
}

// AnalogFormat returns the signedness of integer analog samples.
func (f *File) AnalogFormat() AnalogFormat { return f.analogFormat }

// NumFrames returns the number of frames.
func (f *File) NumFrames() int { return len(f.frames) }

// Frame returns frame i (0-based).
func (f *File) Frame(i int) *Frame { return f.frames[i] }

// Frames returns all frames.
func (f *File) Frames() []*Frame { return f.frames }

// Groups returns all parameter groups in file order.
func (f *File) Groups() []*Group {
	groups := make([]*Group, len(f.params.Groups))
	for i, g := range f.params.Groups {
		groups[i] = &Group{g: g}
	}
	return groups
}

// Group returns the named group, or nil.
func (f *File) Group(name string) *Group {
	g := f.params.Group(name)
	if g == nil {
		return nil
	}
	return &Group{g: g}
}

// Parameter returns the named parameter, or nil.
func (f *File) Parameter(group, name string) *Parameter {
	g := f.Group(group)
	if g == nil {
		return nil
	}
	return g.Parameter(name)
}

// Lookup returns the parameter at a "GROUP:NAME" path.
func (f *File) Lookup(path string) (*Parameter, error) {
	group, name, err := ParseParamPath(path)
	if err != nil {
		return nil, err
	}
	p := f.Parameter(group, name)
	if p == nil {
		return nil, errors.Wrapf(ErrInvalidPath, "%s not found", path)
	}
	return p, nil
}

// typed returns the raw parameter when it exists, has type t and holds data.
func (f *File) typed(group, name string, t dtype.Type) *param.Parameter {
	p := f.params.Param(group, name)
	if p == nil || p.Type != t || p.Len() == 0 {
		return nil
	}
	return p
}

// Strings returns the character data of a parameter, or def when the
// parameter is absent, not character data, or empty.
func (f *File) Strings(group, name string, def []string) []string {
	if p := f.typed(group, name, dtype.Char); p != nil {
		return p.Strings
	}
	return def
}

// Bytes returns the byte data of a parameter, or def.
func (f *File) Bytes(group, name string, def []uint8) []uint8 {
	if p := f.typed(group, name, dtype.Byte); p != nil {
		return p.Bytes
	}
	return def
}

// Int16s returns the integer data of a parameter, or def.
func (f *File) Int16s(group, name string, def []int16) []int16 {
	if p := f.typed(group, name, dtype.Int16); p != nil {
		return p.Ints
	}
	return def
}

// Float32s returns the float data of a parameter, or def.
func (f *File) Float32s(group, name string, def []float32) []float32 {
	if p := f.typed(group, name, dtype.Float32); p != nil {
		return p.Floats
	}
	return def
}

// PointLabels returns POINT:LABELS with trailing padding removed, or nil.
func (f *File) PointLabels() []string {
	if p := f.typed("POINT", "LABELS", dtype.Char); p != nil {
		return p.TrimmedStrings()
	}
	return nil
}

// PointLabel returns the label of point i, if it has one.
func (f *File) PointLabel(i int) (string, bool) {
	labels := f.PointLabels()
	if i < 0 || i >= len(labels) {
		return "", false
	}
	return labels[i], true
}

// PointIndex returns the index of the point with the given label.
func (f *File) PointIndex(label string) (int, bool) {
	for i, l := range f.PointLabels() {
		if l == label {
			return i, true
		}
	}
	return 0, false
}
