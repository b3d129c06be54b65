package c3d

import (
	"github.com/robert-malhotra/go-c3d/internal/binary"
	"github.com/robert-malhotra/go-c3d/internal/dtype"
	"github.com/robert-malhotra/go-c3d/internal/header"
	"github.com/robert-malhotra/go-c3d/internal/layout"
	"github.com/robert-malhotra/go-c3d/internal/param"
)

// Create returns an empty in-memory file with the given number of points
// and frames. The POINT group (and the ANALOG group when WithAnalog is
// used) is populated with the standard parameters.
func Create(points, frames int, rate float32, opts ...CreateOption) *File {
	o := defaultCreateOptions()
	for _, opt := range opts {
		opt(o)
	}

	h := &header.Header{
		ParamStartBlock:       2,
		Order:                 binary.LittleEndian,
		PointCount:            points,
		AnalogPerFrame:        o.channels * o.samples,
		FirstFrame:            o.first,
		LastFrame:             o.first + frames - 1,
		Scale:                 o.scale,
		AnalogSamplesPerFrame: o.samples,
		FrameRate:             rate,
		FourCharEventLabels:   true,
		Events:                o.events,
	}

	point := &param.Group{Name: "POINT", ID: 1, Description: "3-D point parameters"}
	point.Add(&param.Parameter{Name: "USED", Type: dtype.Int16, Ints: []int16{int16(points)}, Description: "Number of 3-D points"})
	point.Add(&param.Parameter{Name: "SCALE", Type: dtype.Float32, Floats: []float32{o.scale}, Description: "3-D scale factor"})
	point.Add(&param.Parameter{Name: "RATE", Type: dtype.Float32, Floats: []float32{rate}, Description: "3-D frame rate"})
	point.Add(&param.Parameter{Name: "FRAMES", Type: dtype.Int16, Ints: []int16{int16(frames)}, Description: "Number of frames"})
	if o.labels != nil {
		point.Add(labelsParam(o.labels, points))
	}
	sec := &param.Section{Groups: []*param.Group{point}}

	if o.channels > 0 {
		analog := &param.Group{Name: "ANALOG", ID: 2, Description: "Analog data parameters"}
		scale := make([]float32, o.channels)
		for i := range scale {
			scale[i] = 1
		}
		analog.Add(&param.Parameter{Name: "USED", Type: dtype.Int16, Ints: []int16{int16(o.channels)}, Description: "Number of analog channels"})
		analog.Add(&param.Parameter{Name: "RATE", Type: dtype.Float32, Floats: []float32{rate * float32(o.samples)}, Description: "Analog sample rate"})
		analog.Add(&param.Parameter{Name: "GEN_SCALE", Type: dtype.Float32, Floats: []float32{1}, Description: "Analog general scale factor"})
		analog.Add(&param.Parameter{Name: "SCALE", Type: dtype.Float32, Dims: []int{o.channels}, Floats: scale, Description: "Analog channel scale factors"})
		analog.Add(&param.Parameter{Name: "OFFSET", Type: dtype.Int16, Dims: []int{o.channels}, Ints: make([]int16, o.channels), Description: "Analog channel offsets"})
		sec.Groups = append(sec.Groups, analog)
	}
	sec.Blocks = sec.BlocksNeeded()
	h.DataStartBlock = h.ParamStartBlock + sec.Blocks

	f := &File{header: h, params: sec}
	if frames > 0 {
		f.frames = make([]*Frame, frames)
		for i := range f.frames {
			f.frames[i] = layout.NewFrame(points, o.samples, o.channels)
		}
	}
	return f
}

func labelsParam(labels []string, points int) *param.Parameter {
	width := 4
	for _, l := range labels {
		if len(l) > width {
			width = len(l)
		}
	}
	if points < len(labels) {
		points = len(labels)
	}
	data := make([]string, points)
	for i := range data {
		if i < len(labels) {
			data[i] = dtype.FitString(labels[i], width)
		} else {
			data[i] = dtype.FitString("", width)
		}
	}
	return &param.Parameter{
		Name:        "LABELS",
		Type:        dtype.Char,
		Dims:        []int{width, points},
		Strings:     data,
		Description: "Point labels",
	}
}
