package layout

// Frame stores the point and analog data of one frame.
type Frame struct {
	X        []float32
	Y        []float32
	Z        []float32
	Residual []float32
	CamMask  []uint8

	// Analog is indexed [sample][channel]. It is nil when the file has no
	// analog data.
	Analog [][]float32
}

// NewFrame allocates a zeroed frame.
func NewFrame(points, samples, channels int) *Frame {
	f := &Frame{
		X:        make([]float32, points),
		Y:        make([]float32, points),
		Z:        make([]float32, points),
		Residual: make([]float32, points),
		CamMask:  make([]uint8, points),
	}
	if samples > 0 && channels > 0 {
		f.Analog = make([][]float32, samples)
		for i := range f.Analog {
			f.Analog[i] = make([]float32, channels)
		}
	}
	return f
}

// NumPoints returns the number of points held by the frame.
func (f *Frame) NumPoints() int {
	return len(f.X)
}

// Valid reports whether point i has a non-negative residual.
func (f *Frame) Valid(i int) bool {
	return f.Residual[i] >= 0
}

// CameraUsed reports whether camera cam (1 to 7) contributed to point i.
// It is false for any other camera number.
func (f *Frame) CameraUsed(i, cam int) bool {
	if cam < 1 || cam > 7 {
		return false
	}
	return (f.CamMask[i]>>(cam-1))&0x01 == 0x01
}

// Point returns the coordinates of point i.
func (f *Frame) Point(i int) (x, y, z float32) {
	return f.X[i], f.Y[i], f.Z[i]
}

// SetPoint sets the coordinates of point i.
func (f *Frame) SetPoint(i int, x, y, z float32) {
	f.X[i], f.Y[i], f.Z[i] = x, y, z
}

// Resize grows or shrinks every per-point array to n entries. New entries
// are zero, which makes new points valid with an empty camera mask.
func (f *Frame) Resize(n int) {
	f.X = resize(f.X, n)
	f.Y = resize(f.Y, n)
	f.Z = resize(f.Z, n)
	f.Residual = resize(f.Residual, n)
	f.CamMask = resize(f.CamMask, n)
}

func resize[T any](s []T, n int) []T {
	if n <= len(s) {
		return s[:n:n]
	}
	out := make([]T, n)
	copy(out, s)
	return out
}
