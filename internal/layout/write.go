package layout

import (
	"github.com/robert-malhotra/go-c3d/internal/binary"
)

type pointWriter func(w *binary.Writer, f *Frame, i int, scale float32)

type channelWriter func(w *binary.Writer, v float32)

func writePointInteger(w *binary.Writer, f *Frame, i int, scale float32) {
	if !f.Valid(i) || scale == 0 {
		w.PutInt16(0)
		w.PutInt16(0)
		w.PutInt16(0)
		if f.Valid(i) {
			w.PutInt16(pointWord(f.CamMask[i], 0))
		} else {
			w.PutInt16(-1)
		}
		return
	}
	w.PutInt16(roundInt16(f.X[i] / scale))
	w.PutInt16(roundInt16(f.Y[i] / scale))
	w.PutInt16(roundInt16(f.Z[i] / scale))
	w.PutInt16(pointWord(f.CamMask[i], roundUint8(f.Residual[i]/scale)))
}

func writePointReal(w *binary.Writer, f *Frame, i int, scale float32) {
	if !f.Valid(i) {
		w.PutFloat32(0)
		w.PutFloat32(0)
		w.PutFloat32(0)
		w.PutFloat32(-1)
		return
	}
	w.PutFloat32(f.X[i])
	w.PutFloat32(f.Y[i])
	w.PutFloat32(f.Z[i])
	w.PutFloat32(float32(pointWord(f.CamMask[i], roundUint8(f.Residual[i]/-scale))))
}

func writeSigned(w *binary.Writer, v float32)   { w.PutInt16(roundInt16(v)) }
func writeUnsigned(w *binary.Writer, v float32) { w.PutUint16(roundUint16(v)) }
func writeReal(w *binary.Writer, v float32)     { w.PutFloat32(v) }

func (l Layout) writers() (pointWriter, channelWriter) {
	if l.Format() == Real {
		return writePointReal, writeReal
	}
	if l.Analog == Unsigned {
		return writePointInteger, writeUnsigned
	}
	return writePointInteger, writeSigned
}

// Encode writes frames starting at the given 1-based block. Every frame
// must hold l.Points points and, when l.Samples and l.Channels are non-zero,
// an l.Samples × l.Channels analog matrix.
func Encode(w *binary.Writer, block int, frames []*Frame, l Layout) {
	if len(frames) == 0 {
		return
	}
	w.SeekBlock(block)

	writePoint, writeChannel := l.writers()
	calibrate := l.Calibration.applies(l.Channels)

	for _, f := range frames {
		for p := 0; p < l.Points; p++ {
			writePoint(w, f, p, l.Scale)
		}
		if l.Samples == 0 || l.Channels == 0 {
			continue
		}
		for s := 0; s < l.Samples; s++ {
			for ch := 0; ch < l.Channels; ch++ {
				v := f.Analog[s][ch]
				if calibrate {
					v = l.Calibration.encode(v, ch)
				}
				writeChannel(w, v)
			}
		}
	}
}
