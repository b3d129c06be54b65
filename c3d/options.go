package c3d

import (
	"github.com/robert-malhotra/go-c3d/internal/binary"
	"github.com/robert-malhotra/go-c3d/internal/header"
)

// Order is the byte order of a C3D file.
type Order = binary.Order

// Byte orders.
const (
	LittleEndian = binary.LittleEndian
	MiddleEndian = binary.MiddleEndian
	BigEndian    = binary.BigEndian
)

// WriteOption configures encoding.
type WriteOption func(*writeOptions)

type writeOptions struct {
	order Order
}

func defaultWriteOptions() *writeOptions {
	return &writeOptions{
		order: LittleEndian,
	}
}

// WithByteOrder selects the output byte order. The default is little-endian.
func WithByteOrder(order Order) WriteOption {
	return func(o *writeOptions) {
		switch order {
		case LittleEndian, MiddleEndian, BigEndian:
			o.order = order
		}
	}
}

// WithSourceOrder writes the file in the byte order it was read with.
func WithSourceOrder(f *File) WriteOption {
	return WithByteOrder(f.ByteOrder())
}

// CreateOption configures Create.
type CreateOption func(*createOptions)

type createOptions struct {
	scale    float32
	samples  int
	channels int
	labels   []string
	first    int
	events   []Event
}

func defaultCreateOptions() *createOptions {
	return &createOptions{
		scale: -1,
		first: 1,
	}
}

// WithScale sets the point scale factor. A negative scale selects float
// storage; the default is -1.
func WithScale(scale float32) CreateOption {
	return func(o *createOptions) {
		o.scale = scale
	}
}

// WithAnalog adds analog data with the given channel count and samples per
// frame.
func WithAnalog(channels, samples int) CreateOption {
	return func(o *createOptions) {
		if channels > 0 && samples > 0 {
			o.channels = channels
			o.samples = samples
		}
	}
}

// WithLabels sets POINT:LABELS.
func WithLabels(labels ...string) CreateOption {
	return func(o *createOptions) {
		o.labels = labels
	}
}

// WithFirstFrame sets the number of the first frame (default 1).
func WithFirstFrame(n int) CreateOption {
	return func(o *createOptions) {
		if n > 0 {
			o.first = n
		}
	}
}

// WithEvents sets the header events. At most 18 events are kept.
func WithEvents(events ...Event) CreateOption {
	return func(o *createOptions) {
		if len(events) > header.MaxEvents {
			events = events[:header.MaxEvents]
		}
		o.events = events
	}
}
