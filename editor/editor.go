// Package editor drives batch modifications of C3D marker trajectories.
//
// An Editor appends new markers to a decoded file, calls a MarkerEditor
// once for every (frame, marker) pair in frame-major order and then encodes
// the result:
//
//	hook := editor.ByLabel(map[string]editor.MarkerEditor{
//	    "TEST1": editor.Circle(50, 20),
//	    "TEST2": editor.Midpoint("LFHD", "RFHD"),
//	})
//	e, err := editor.Open("walk.c3d", hook, editor.WithNewMarkers("TEST1", "TEST2"))
//	if err != nil {
//	    return err
//	}
//	err = e.ProcessFile("walk-edited.c3d")
package editor

import (
	"io"

	"github.com/pkg/errors"

	"github.com/robert-malhotra/go-c3d/c3d"
	"github.com/robert-malhotra/go-c3d/internal/log"
)

var (
	ErrNilHook      = errors.New("nil marker editor")
	ErrNilFile      = errors.New("nil file")
	ErrUnknownLabel = errors.New("no point with label")
)

// MarkerEditor computes or transforms one marker of one frame. label is the
// trimmed point label and labeled is false when the point has none.
type MarkerEditor interface {
	EditMarker(f *c3d.File, frame, marker int, label string, labeled bool) error
}

// MarkerEditorFunc adapts a function to MarkerEditor.
type MarkerEditorFunc func(f *c3d.File, frame, marker int, label string, labeled bool) error

// EditMarker calls fn.
func (fn MarkerEditorFunc) EditMarker(f *c3d.File, frame, marker int, label string, labeled bool) error {
	return fn(f, frame, marker, label, labeled)
}

// Option configures an Editor.
type Option func(*Editor)

// WithNewMarkers appends one marker per label before editing.
func WithNewMarkers(labels ...string) Option {
	return func(e *Editor) {
		e.newMarkers = append(e.newMarkers, labels...)
	}
}

// WithWriteOptions sets the options used when encoding the result.
func WithWriteOptions(opts ...c3d.WriteOption) Option {
	return func(e *Editor) {
		e.writeOpts = append(e.writeOpts, opts...)
	}
}

// Editor applies a MarkerEditor to every marker of a file.
type Editor struct {
	file       *c3d.File
	hook       MarkerEditor
	newMarkers []string
	writeOpts  []c3d.WriteOption
	applied    bool
	err        error
}

// New creates an editor over an already decoded file.
func New(f *c3d.File, hook MarkerEditor, opts ...Option) (*Editor, error) {
	if f == nil {
		return nil, ErrNilFile
	}
	if hook == nil {
		return nil, ErrNilHook
	}
	e := &Editor{file: f, hook: hook}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Open decodes path and creates an editor over it.
func Open(path string, hook MarkerEditor, opts ...Option) (*Editor, error) {
	f, err := c3d.Open(path)
	if err != nil {
		return nil, err
	}
	return New(f, hook, opts...)
}

// File returns the file being edited.
func (e *Editor) File() *c3d.File {
	return e.file
}

// Apply appends the new markers and runs the hook over every marker of every
// frame. It runs at most once; later calls return the first call's error.
func (e *Editor) Apply() error {
	if !e.applied {
		e.applied = true
		e.err = e.apply()
	}
	return e.err
}

func (e *Editor) apply() error {
	f := e.file
	if err := f.AddPoints(e.newMarkers...); err != nil {
		return errors.WithMessage(err, "adding markers")
	}

	labels := f.PointLabels()
	if len(e.newMarkers) > 0 {
		log.Debug("markers added", map[string]interface{}{
			log.KeyPoints: f.PointCount(),
			"labels":      labels,
		})
	}

	for frame := 0; frame < f.NumFrames(); frame++ {
		for marker := 0; marker < f.PointCount(); marker++ {
			label, labeled := "", marker < len(labels)
			if labeled {
				label = labels[marker]
			}
			if err := e.hook.EditMarker(f, frame, marker, label, labeled); err != nil {
				return errors.WithMessagef(err, "frame %d marker %d", frame, marker)
			}
		}
	}
	return nil
}

// Process applies the edit and encodes the result to w.
func (e *Editor) Process(w io.Writer) error {
	if err := e.Apply(); err != nil {
		return err
	}
	return e.file.Write(w, e.writeOpts...)
}

// ProcessFile applies the edit and saves the result to path.
func (e *Editor) ProcessFile(path string) error {
	if err := e.Apply(); err != nil {
		return err
	}
	if err := e.file.Save(path, e.writeOpts...); err != nil {
		return err
	}
	log.Info("edited file saved", map[string]interface{}{
		log.KeyPath:   path,
		log.KeyPoints: e.file.PointCount(),
		log.KeyFrames: e.file.NumFrames(),
	})
	return nil
}
