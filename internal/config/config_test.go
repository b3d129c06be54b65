package config

import (
	"errors"
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/robert-malhotra/go-c3d/internal/binary"
)

func writeTemp(t *testing.T, content string) string {
	f, err := os.CreateTemp("", "edit-*.yaml")
	if err != nil {
		t.Fatalf("CreateTemp failed: %v", err)
	}
	if _, err = f.WriteString(content); err != nil {
		t.Fatalf("WriteString failed: %v", err)
	}
	if err = f.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	return f.Name()
}

func TestConfig(t *testing.T) {
	Convey("edit job configuration", t, func() {
		os.Setenv("C3D_TEST_DIR", "/data")
		defer os.Unsetenv("C3D_TEST_DIR")

		name := writeTemp(t, `input: ${C3D_TEST_DIR}/walk.c3d
output: ${C3D_TEST_DIR}/walk-edited.c3d
byte_order: dec
log_level: debug
markers:
  - label: TEST1
    kind: circle
    radius: 50
    period: 125.66
  - label: TEST2
    kind: midpoint
    from: [LFHD, RFHD]
  - label: TEST3
    kind: oscillate
    axis: z
    amplitude: 100
    period: 62.83
  - label: TEST4
    kind: translate
    from: [C7]
    offset: [0, 0, 10]
  - label: TEST5
`)
		defer os.Remove(name)

		cfg, err := InitConfig(name)
		So(err, ShouldBeNil)

		So(cfg.Input, ShouldEqual, "/data/walk.c3d")
		So(cfg.Output, ShouldEqual, "/data/walk-edited.c3d")
		So(cfg.LogLevel, ShouldEqual, "debug")

		order, err := cfg.Order()
		So(err, ShouldBeNil)
		So(order, ShouldEqual, binary.MiddleEndian)

		So(cfg.Labels(), ShouldResemble, []string{"TEST1", "TEST2", "TEST3", "TEST4", "TEST5"})
		So(cfg.Markers[0].Kind, ShouldEqual, KindCircle)
		So(cfg.Markers[0].Radius, ShouldEqual, 50.0)
		So(cfg.Markers[1].From, ShouldResemble, []string{"LFHD", "RFHD"})
		So(cfg.Markers[2].Axis, ShouldEqual, "z")
		So(cfg.Markers[3].Offset, ShouldResemble, []float64{0, 0, 10})
		So(cfg.Markers[4].Kind, ShouldEqual, KindNone)
	})

	Convey("invalid jobs", t, func() {
		Convey("missing output", func() {
			c := &Config{Input: "a.c3d"}
			So(errors.Is(c.Validate(), ErrInvalid), ShouldBeTrue)
		})

		Convey("unknown byte order", func() {
			c := &Config{Input: "a.c3d", Output: "b.c3d", ByteOrder: "pdp"}
			So(errors.Is(c.Validate(), ErrInvalid), ShouldBeTrue)
		})

		Convey("duplicate labels", func() {
			c := &Config{Input: "a", Output: "b", Markers: []Marker{{Label: "M"}, {Label: "M"}}}
			So(errors.Is(c.Validate(), ErrInvalid), ShouldBeTrue)
		})

		Convey("midpoint without sources", func() {
			c := &Config{Input: "a", Output: "b", Markers: []Marker{{Label: "M", Kind: KindMidpoint}}}
			So(errors.Is(c.Validate(), ErrInvalid), ShouldBeTrue)
		})

		Convey("unknown kind", func() {
			c := &Config{Input: "a", Output: "b", Markers: []Marker{{Label: "M", Kind: "spiral"}}}
			So(errors.Is(c.Validate(), ErrInvalid), ShouldBeTrue)
		})

		Convey("missing file", func() {
			_, err := InitConfig("/nonexistent/job.yaml")
			So(errors.Is(err, os.ErrNotExist), ShouldBeTrue)
		})
	})
}

func TestParseOrder(t *testing.T) {
	tests := map[string]binary.Order{
		"":       binary.LittleEndian,
		"little": binary.LittleEndian,
		"BIG":    binary.BigEndian,
		"dec":    binary.MiddleEndian,
	}
	for name, want := range tests {
		got, err := ParseOrder(name)
		if err != nil {
			t.Fatalf("ParseOrder(%q) failed: %v", name, err)
		}
		if got != want {
			t.Errorf("ParseOrder(%q): expected %v, got %v", name, want, got)
		}
	}
}
