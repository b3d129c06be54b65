package header

import (
	"errors"
	"testing"

	"github.com/robert-malhotra/go-c3d/internal/binary"
)

func sampleHeader() *Header {
	return &Header{
		ParamStartBlock:       2,
		PointCount:            3,
		AnalogPerFrame:        8,
		FirstFrame:            1,
		LastFrame:             10,
		MaxInterpolationGap:   5,
		Scale:                 -0.5,
		DataStartBlock:        4,
		AnalogSamplesPerFrame: 4,
		FrameRate:             60,
		RangeAndLabel:         true,
		LabelRangeBlock:       7,
		FourCharEventLabels:   true,
		Events: []Event{
			{Time: 0.5, Display: true, Label: "HEEL"},
			{Time: 1.25, Display: false, Label: "TOE "},
		},
	}
}

// image writes h plus a parameter preamble carrying the processor tag.
func image(h *Header, order binary.Order) []byte {
	w := binary.NewWriter(2, order)
	h.Write(w)
	w.SeekBlock(h.ParamStartBlock)
	w.Skip(3)
	w.PutUint8(ProcessorFor(order))
	return w.Bytes()
}

func TestRoundTrip(t *testing.T) {
	orders := []binary.Order{binary.LittleEndian, binary.MiddleEndian, binary.BigEndian}
	for _, order := range orders {
		t.Run(order.String(), func(t *testing.T) {
			want := sampleHeader()
			got, err := Read(binary.NewCursor(image(want, order)))
			if err != nil {
				t.Fatalf("Read failed: %v", err)
			}

			if got.Order != order {
				t.Errorf("expected order %v, got %v", order, got.Order)
			}
			if got.PointCount != 3 || got.AnalogPerFrame != 8 {
				t.Errorf("unexpected counts: points=%d analog=%d", got.PointCount, got.AnalogPerFrame)
			}
			if got.FirstFrame != 1 || got.LastFrame != 10 || got.NumFrames() != 10 {
				t.Errorf("unexpected frame range %d..%d", got.FirstFrame, got.LastFrame)
			}
			if got.Scale != -0.5 || !got.Real() {
				t.Errorf("expected real scale -0.5, got %v", got.Scale)
			}
			if got.FrameRate != 60 || got.AnalogRate() != 240 {
				t.Errorf("unexpected rates %v / %v", got.FrameRate, got.AnalogRate())
			}
			if got.AnalogChannels() != 2 {
				t.Errorf("expected 2 channels, got %d", got.AnalogChannels())
			}
			if !got.RangeAndLabel || got.LabelRangeBlock != 7 || !got.FourCharEventLabels {
				t.Errorf("unexpected label/range fields %+v", got)
			}
			if len(got.Events) != 2 {
				t.Fatalf("expected 2 events, got %d", len(got.Events))
			}
			for i, e := range want.Events {
				if got.Events[i] != e {
					t.Errorf("event %d: expected %+v, got %+v", i, e, got.Events[i])
				}
			}
		})
	}
}

func TestEventFlagBytes(t *testing.T) {
	h := sampleHeader()
	b := image(h, binary.LittleEndian)

	off := (wordEventFlags - 1) * binary.WordSize
	if b[off] != 0 || b[off+1] != 1 {
		t.Errorf("expected flags [0 1], got %v", b[off:off+2])
	}
}

func TestTwoCharEventLabels(t *testing.T) {
	h := sampleHeader()
	h.FourCharEventLabels = false

	got, err := Read(binary.NewCursor(image(h, binary.LittleEndian)))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got.Events[0].Label != "HE" {
		t.Errorf("expected label %q, got %q", "HE", got.Events[0].Label)
	}
}

func TestEventCountClamped(t *testing.T) {
	h := sampleHeader()
	b := image(h, binary.LittleEndian)
	off := (151 - 1) * binary.WordSize
	b[off] = 40

	got, err := Read(binary.NewCursor(b))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(got.Events) != MaxEvents {
		t.Errorf("expected %d events, got %d", MaxEvents, len(got.Events))
	}
}

func TestReadErrors(t *testing.T) {
	good := image(sampleHeader(), binary.LittleEndian)

	tests := []struct {
		name   string
		mutate func([]byte) []byte
		err    error
	}{
		{"short", func(b []byte) []byte { return b[:100] }, ErrTruncated},
		{"marker", func(b []byte) []byte { b[1] = 0x51; return b }, ErrNotC3D},
		{"processor", func(b []byte) []byte { b[binary.BlockSize+3] = 83; return b }, ErrUnknownProcessor},
		{"param block past end", func(b []byte) []byte { b[0] = 9; return b }, ErrTruncated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := append([]byte(nil), good...)
			_, err := Read(binary.NewCursor(tt.mutate(data)))
			if !errors.Is(err, tt.err) {
				t.Errorf("expected %v, got %v", tt.err, err)
			}
		})
	}
}

func TestProcessorMapping(t *testing.T) {
	for _, tag := range []uint8{ProcessorIntel, ProcessorDEC, ProcessorMIPS} {
		order, err := OrderFor(tag)
		if err != nil {
			t.Fatalf("OrderFor(%d) failed: %v", tag, err)
		}
		if ProcessorFor(order) != tag {
			t.Errorf("tag %d does not round trip through %v", tag, order)
		}
	}
}
