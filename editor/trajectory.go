package editor

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/robert-malhotra/go-c3d/c3d"
)

func point(fr *c3d.Frame, i int) r3.Vec {
	x, y, z := fr.Point(i)
	return r3.Vec{X: float64(x), Y: float64(y), Z: float64(z)}
}

func setPoint(fr *c3d.Frame, i int, v r3.Vec) {
	fr.SetPoint(i, float32(v.X), float32(v.Y), float32(v.Z))
}

// Circle moves a marker around a circle of the given radius in the XY
// plane, advancing one radian every period frames. Z is left unchanged.
func Circle(radius, period float64) MarkerEditor {
	return MarkerEditorFunc(func(f *c3d.File, frame, marker int, _ string, _ bool) error {
		fr := f.Frame(frame)
		t := float64(frame) / period
		v := point(fr, marker)
		xy := r3.Scale(radius, r3.Vec{X: math.Sin(t), Y: math.Cos(t)})
		v.X, v.Y = xy.X, xy.Y
		setPoint(fr, marker, v)
		return nil
	})
}

// Oscillate moves a marker sinusoidally along one axis (0 X, 1 Y, 2 Z),
// advancing one radian every period frames. The other axes are unchanged.
func Oscillate(axis int, amplitude, period float64) MarkerEditor {
	return MarkerEditorFunc(func(f *c3d.File, frame, marker int, _ string, _ bool) error {
		fr := f.Frame(frame)
		v := point(fr, marker)
		d := amplitude * math.Sin(float64(frame)/period)
		switch axis {
		case 0:
			v.X = d
		case 1:
			v.Y = d
		case 2:
			v.Z = d
		default:
			return errors.Errorf("axis %d out of range", axis)
		}
		setPoint(fr, marker, v)
		return nil
	})
}

// labelIndex resolves point labels once per file.
type labelIndex struct {
	labels []string
	file   *c3d.File
	cached []int
}

func (l *labelIndex) resolve(f *c3d.File) ([]int, error) {
	if l.file == f && l.cached != nil {
		return l.cached, nil
	}
	indices := make([]int, len(l.labels))
	for i, label := range l.labels {
		idx, ok := f.PointIndex(label)
		if !ok {
			return nil, errors.Wrap(ErrUnknownLabel, label)
		}
		indices[i] = idx
	}
	l.file, l.cached = f, indices
	return indices, nil
}

// Midpoint places a marker halfway between the points labelled a and b.
// The marker is invalid in frames where either source point is invalid.
func Midpoint(a, b string) MarkerEditor {
	idx := &labelIndex{labels: []string{a, b}}
	return MarkerEditorFunc(func(f *c3d.File, frame, marker int, _ string, _ bool) error {
		ab, err := idx.resolve(f)
		if err != nil {
			return err
		}
		fr := f.Frame(frame)
		setPoint(fr, marker, r3.Scale(0.5, r3.Add(point(fr, ab[0]), point(fr, ab[1]))))
		if !fr.Valid(ab[0]) || !fr.Valid(ab[1]) {
			fr.Residual[marker] = -1
		} else {
			fr.Residual[marker] = 0
		}
		return nil
	})
}

// Translate places a marker at the point labelled from plus offset, copying
// the source residual and camera mask.
func Translate(from string, offset r3.Vec) MarkerEditor {
	idx := &labelIndex{labels: []string{from}}
	return MarkerEditorFunc(func(f *c3d.File, frame, marker int, _ string, _ bool) error {
		src, err := idx.resolve(f)
		if err != nil {
			return err
		}
		fr := f.Frame(frame)
		setPoint(fr, marker, r3.Add(point(fr, src[0]), offset))
		fr.Residual[marker] = fr.Residual[src[0]]
		fr.CamMask[marker] = fr.CamMask[src[0]]
		return nil
	})
}

// ByLabel routes each marker to the editor registered for its label.
// Unlabeled markers and labels without an editor are left unchanged.
func ByLabel(editors map[string]MarkerEditor) MarkerEditor {
	return MarkerEditorFunc(func(f *c3d.File, frame, marker int, label string, labeled bool) error {
		if !labeled {
			return nil
		}
		e, ok := editors[label]
		if !ok || e == nil {
			return nil
		}
		return e.EditMarker(f, frame, marker, label, labeled)
	})
}

// Chain runs editors in order, stopping at the first error.
func Chain(editors ...MarkerEditor) MarkerEditor {
	return MarkerEditorFunc(func(f *c3d.File, frame, marker int, label string, labeled bool) error {
		for _, e := range editors {
			if err := e.EditMarker(f, frame, marker, label, labeled); err != nil {
				return err
			}
		}
		return nil
	})
}
