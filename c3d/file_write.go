package c3d

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/robert-malhotra/go-c3d/internal/alloc"
	"github.com/robert-malhotra/go-c3d/internal/binary"
	"github.com/robert-malhotra/go-c3d/internal/header"
	"github.com/robert-malhotra/go-c3d/internal/layout"
	"github.com/robert-malhotra/go-c3d/internal/log"
)

// maxParamBlocks is the largest block count the preamble byte can hold.
const maxParamBlocks = 255

// Encode serializes the file. The output always places the parameter
// section at block 2 and the data section directly after it.
func (f *File) Encode(opts ...WriteOption) ([]byte, error) {
	o := defaultWriteOptions()
	for _, opt := range opts {
		opt(o)
	}

	if err := f.params.Validate(); err != nil {
		return nil, err
	}
	l := f.layout()
	if err := f.checkFrames(l); err != nil {
		return nil, err
	}

	a := alloc.New(1)
	a.Alloc(binary.BlockSize, "header")
	params := a.Reserve(f.params.Blocks, f.params.Size(), "parameters")
	if params.Blocks > maxParamBlocks {
		return nil, errors.Wrapf(ErrDimension, "parameter section needs %d blocks", params.Blocks)
	}
	data := a.Alloc(l.SectionSize(len(f.frames)), "data")
	if err := a.Validate(); err != nil {
		return nil, err
	}

	h := *f.header
	h.ParamStartBlock = params.Block
	h.DataStartBlock = data.Block
	h.Order = o.order

	w := binary.NewWriter(a.Blocks(), o.order)
	h.Write(w)
	if err := f.params.Write(w, params.Block, params.Blocks, header.ProcessorFor(o.order)); err != nil {
		return nil, err
	}
	layout.Encode(w, data.Block, f.frames, l)

	stats := a.Stats()
	log.Debug("encoded file", map[string]interface{}{
		log.KeyOrder:  o.order.String(),
		log.KeyFrames: len(f.frames),
		"blocks":      a.Blocks(),
		"padding":     stats.PaddingBytes,
	})
	return w.Bytes(), nil
}

// checkFrames verifies that every frame matches the header shape.
func (f *File) checkFrames(l layout.Layout) error {
	if len(f.frames) != f.header.NumFrames() {
		return errors.Wrapf(ErrInconsistent, "%d frames, header declares %d", len(f.frames), f.header.NumFrames())
	}
	for i, fr := range f.frames {
		if fr.NumPoints() != l.Points || len(fr.Y) != l.Points || len(fr.Z) != l.Points ||
			len(fr.Residual) != l.Points || len(fr.CamMask) != l.Points {
			return errors.Wrapf(ErrInconsistent, "frame %d has %d points, header declares %d", i, fr.NumPoints(), l.Points)
		}
		if l.Samples == 0 || l.Channels == 0 {
			continue
		}
		if len(fr.Analog) != l.Samples {
			return errors.Wrapf(ErrInconsistent, "frame %d has %d analog samples, header declares %d", i, len(fr.Analog), l.Samples)
		}
		for _, s := range fr.Analog {
			if len(s) != l.Channels {
				return errors.Wrapf(ErrInconsistent, "frame %d has %d analog channels, header declares %d", i, len(s), l.Channels)
			}
		}
	}
	return nil
}

// Write encodes the file to w.
func (f *File) Write(w io.Writer, opts ...WriteOption) error {
	data, err := f.Encode(opts...)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, "writing output")
	}
	return nil
}

// Save encodes the file to path, replacing any existing file.
func (f *File) Save(path string, opts ...WriteOption) error {
	data, err := f.Encode(opts...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "saving file")
	}
	return nil
}
