package header

import (
	"github.com/pkg/errors"

	"github.com/robert-malhotra/go-c3d/internal/binary"
)

// Format marker stored in the second byte of the file.
const Marker = 0x50

// Processor tags stored in the parameter section preamble.
const (
	ProcessorIntel = 84
	ProcessorDEC   = 85
	ProcessorMIPS  = 86
)

// Flag value used by words 148 and 150.
const keyValue = 12345

// MaxEvents is the number of events the header can hold.
const MaxEvents = 18

// Header word offsets.
const (
	wordPoints      = 2
	wordLabelRange  = 148
	wordEventTimes  = 153
	wordEventFlags  = 189
	wordEventLabels = 199
)

var (
	// ErrNotC3D is returned when the format marker byte is not 0x50.
	ErrNotC3D = errors.New("not a C3D file: second byte must be 0x50")
	// ErrUnknownProcessor is returned for a processor tag other than 84, 85
	// or 86.
	ErrUnknownProcessor = errors.New("unknown processor type")
	// ErrTruncated is returned when the input is shorter than the header
	// block or the tag it points to.
	ErrTruncated = errors.New("header block truncated")
)

// Event is a labelled point in time stored in the header.
type Event struct {
	Time    float32
	Display bool
	Label   string
}

// Header holds the decoded header block.
type Header struct {
	ParamStartBlock int
	Order           binary.Order

	PointCount            int
	AnalogPerFrame        int
	FirstFrame            int
	LastFrame             int
	MaxInterpolationGap   int
	Scale                 float32
	DataStartBlock        int
	AnalogSamplesPerFrame int
	FrameRate             float32

	RangeAndLabel       bool
	LabelRangeBlock     int
	FourCharEventLabels bool
	Events              []Event
}

// OrderFor maps a processor tag to a byte order.
func OrderFor(processor uint8) (binary.Order, error) {
	switch processor {
	case ProcessorIntel:
		return binary.LittleEndian, nil
	case ProcessorDEC:
		return binary.MiddleEndian, nil
	case ProcessorMIPS:
		return binary.BigEndian, nil
	default:
		return 0, errors.Wrapf(ErrUnknownProcessor, "tag %d", processor)
	}
}

// ProcessorFor maps a byte order to its processor tag.
func ProcessorFor(order binary.Order) uint8 {
	switch order {
	case binary.MiddleEndian:
		return ProcessorDEC
	case binary.BigEndian:
		return ProcessorMIPS
	default:
		return ProcessorIntel
	}
}

// Real reports whether point and analog samples are stored as floats.
func (h *Header) Real() bool {
	return h.Scale < 0
}

// NumFrames returns last-first+1, or 0 when the range is empty.
func (h *Header) NumFrames() int {
	n := h.LastFrame - h.FirstFrame + 1
	if n < 0 {
		return 0
	}
	return n
}

// AnalogChannels returns the number of channels per analog sample.
func (h *Header) AnalogChannels() int {
	if h.AnalogSamplesPerFrame == 0 {
		return 0
	}
	return h.AnalogPerFrame / h.AnalogSamplesPerFrame
}

// AnalogRate returns the analog sampling rate in Hz.
func (h *Header) AnalogRate() float32 {
	return float32(h.AnalogSamplesPerFrame) * h.FrameRate
}

func (h *Header) labelWidth() int {
	if h.FourCharEventLabels {
		return 4
	}
	return 2
}

// Read decodes the header block and sets the cursor's byte order from the
// processor tag of the first parameter block.
func Read(c *binary.Cursor) (*Header, error) {
	if c.Len() < binary.BlockSize {
		return nil, errors.Wrapf(ErrTruncated, "%d bytes", c.Len())
	}

	c.SeekWord(1)
	h := &Header{ParamStartBlock: int(c.Uint8())}
	if c.Uint8() != Marker {
		return nil, ErrNotC3D
	}

	tagPos := (h.ParamStartBlock-1)*binary.BlockSize + 3
	if h.ParamStartBlock < 1 || tagPos >= c.Len() {
		return nil, errors.Wrapf(ErrTruncated, "parameter block %d", h.ParamStartBlock)
	}
	order, err := OrderFor(c.Uint8At(tagPos))
	if err != nil {
		return nil, err
	}
	h.Order = order
	c.SetOrder(order)

	c.SeekWord(wordPoints)
	h.PointCount = int(c.Uint16())
	h.AnalogPerFrame = int(c.Uint16())
	h.FirstFrame = int(c.Uint16())
	h.LastFrame = int(c.Uint16())
	h.MaxInterpolationGap = int(c.Uint16())
	h.Scale = c.Float32()
	h.DataStartBlock = int(c.Uint16())
	h.AnalogSamplesPerFrame = int(c.Uint16())
	h.FrameRate = c.Float32()

	c.SeekWord(wordLabelRange)
	h.RangeAndLabel = c.Uint16() == keyValue
	h.LabelRangeBlock = int(c.Uint16())
	h.FourCharEventLabels = c.Uint16() == keyValue
	count := int(c.Uint16())
	if count > MaxEvents {
		count = MaxEvents
	}

	if count > 0 {
		h.Events = make([]Event, count)
		c.SeekWord(wordEventTimes)
		for i := range h.Events {
			h.Events[i].Time = c.Float32()
		}
		c.SeekWord(wordEventFlags)
		for i := range h.Events {
			h.Events[i].Display = c.Uint8() == 0
		}
		c.SeekWord(wordEventLabels)
		for i := range h.Events {
			h.Events[i].Label = c.String(h.labelWidth())
		}
	}
	return h, nil
}

// Write encodes the header into block 1 using the writer's byte order.
func (h *Header) Write(w *binary.Writer) {
	w.SeekWord(1)
	w.PutUint8(uint8(h.ParamStartBlock))
	w.PutUint8(Marker)
	w.PutUint16(uint16(h.PointCount))
	w.PutUint16(uint16(h.AnalogPerFrame))
	w.PutUint16(uint16(h.FirstFrame))
	w.PutUint16(uint16(h.LastFrame))
	w.PutUint16(uint16(h.MaxInterpolationGap))
	w.PutFloat32(h.Scale)
	w.PutUint16(uint16(h.DataStartBlock))
	w.PutUint16(uint16(h.AnalogSamplesPerFrame))
	w.PutFloat32(h.FrameRate)

	w.SeekWord(wordLabelRange)
	w.PutUint16(flag(h.RangeAndLabel))
	w.PutUint16(uint16(h.LabelRangeBlock))
	w.PutUint16(flag(h.FourCharEventLabels))

	events := h.Events
	if len(events) > MaxEvents {
		events = events[:MaxEvents]
	}
	w.PutUint16(uint16(len(events)))
	if len(events) == 0 {
		return
	}

	w.SeekWord(wordEventTimes)
	for _, e := range events {
		w.PutFloat32(e.Time)
	}
	w.SeekWord(wordEventFlags)
	for _, e := range events {
		if e.Display {
			w.PutUint8(0)
		} else {
			w.PutUint8(1)
		}
	}
	w.SeekWord(wordEventLabels)
	for _, e := range events {
		w.PutString(e.Label, h.labelWidth())
	}
}

func flag(set bool) uint16 {
	if set {
		return keyValue
	}
	return 0
}
