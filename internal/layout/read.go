package layout

import (
	"github.com/pkg/errors"

	"github.com/robert-malhotra/go-c3d/internal/binary"
)

// ErrTruncated is returned when the data section extends past the input.
var ErrTruncated = errors.New("data section truncated")

type pointReader func(c *binary.Cursor, f *Frame, i int, scale float32)

type channelReader func(c *binary.Cursor) float32

func readPointInteger(c *binary.Cursor, f *Frame, i int, scale float32) {
	f.X[i] = float32(c.Int16()) * scale
	f.Y[i] = float32(c.Int16()) * scale
	f.Z[i] = float32(c.Int16()) * scale
	splitWord(f, i, c.Int16(), scale)
}

func readPointReal(c *binary.Cursor, f *Frame, i int, scale float32) {
	f.X[i] = c.Float32()
	f.Y[i] = c.Float32()
	f.Z[i] = c.Float32()
	splitWord(f, i, floatWord(c.Float32()), -scale)
}

func splitWord(f *Frame, i int, word int16, scale float32) {
	f.CamMask[i] = uint8(word >> 8)
	if word == -1 {
		f.Residual[i] = -1
		return
	}
	f.Residual[i] = float32(word&0xff) * scale
}

func readSigned(c *binary.Cursor) float32   { return float32(c.Int16()) }
func readUnsigned(c *binary.Cursor) float32 { return float32(c.Uint16()) }
func readReal(c *binary.Cursor) float32     { return c.Float32() }

func (l Layout) readers() (pointReader, channelReader) {
	if l.Format() == Real {
		return readPointReal, readReal
	}
	if l.Analog == Unsigned {
		return readPointInteger, readUnsigned
	}
	return readPointInteger, readSigned
}

// Decode reads n frames starting at the given 1-based block.
func Decode(c *binary.Cursor, block, n int, l Layout) ([]*Frame, error) {
	size := l.SectionSize(n)
	if size > 0 {
		if block < 1 {
			return nil, errors.Wrapf(ErrTruncated, "data start block %d", block)
		}
		c.SeekBlock(block)
		if c.Remaining() < size {
			return nil, errors.Wrapf(ErrTruncated, "need %d bytes at block %d, have %d", size, block, c.Remaining())
		}
	}

	readPoint, readChannel := l.readers()
	calibrate := l.Calibration.applies(l.Channels)

	frames := make([]*Frame, n)
	for fi := range frames {
		f := NewFrame(l.Points, l.Samples, l.Channels)
		for p := 0; p < l.Points; p++ {
			readPoint(c, f, p, l.Scale)
		}
		for _, sample := range f.Analog {
			for ch := range sample {
				v := readChannel(c)
				if calibrate {
					v = l.Calibration.decode(v, ch)
				}
				sample[ch] = v
			}
		}
		frames[fi] = f
	}
	return frames, nil
}
