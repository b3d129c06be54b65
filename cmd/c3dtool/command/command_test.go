package command

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robert-malhotra/go-c3d/c3d"
	"github.com/robert-malhotra/go-c3d/internal/config"
)

func saveWalk(t *testing.T, dir string) string {
	t.Helper()

	f := c3d.Create(2, 3, 60, c3d.WithLabels("LASI", "RASI"))
	for i, fr := range f.Frames() {
		fr.SetPoint(0, float32(i), 10, 100)
		fr.SetPoint(1, float32(i)+4, 20, 100)
	}
	f.Frame(2).Residual[1] = -1

	path := filepath.Join(dir, "walk.c3d")
	require.NoError(t, f.Save(path, c3d.WithByteOrder(c3d.MiddleEndian)))
	return path
}

func TestMarkerEditor(t *testing.T) {
	kinds := []config.Marker{
		{Label: "A", Kind: config.KindCircle, Radius: 1, Period: 1},
		{Label: "B", Kind: config.KindMidpoint, From: []string{"X", "Y"}},
		{Label: "C", Kind: config.KindOscillate, Axis: "z", Amplitude: 1, Period: 1},
		{Label: "D", Kind: config.KindTranslate, From: []string{"X"}, Offset: []float64{1, 2, 3}},
	}
	for _, m := range kinds {
		e, err := markerEditor(m)
		require.NoError(t, err, m.Kind)
		assert.NotNil(t, e, m.Kind)
	}

	e, err := markerEditor(config.Marker{Label: "N", Kind: config.KindNone})
	require.NoError(t, err)
	assert.Nil(t, e)

	_, err = markerEditor(config.Marker{Label: "Q", Kind: "spiral"})
	assert.True(t, errors.Is(err, config.ErrInvalid))
}

func TestWriteOptions(t *testing.T) {
	f := c3d.Create(1, 1, 10)

	opts, err := writeOptions(f, "")
	require.NoError(t, err)
	assert.Len(t, opts, 1)

	_, err = writeOptions(f, "sideways")
	assert.True(t, errors.Is(err, config.ErrInvalid))
}

func TestRunJob(t *testing.T) {
	dir := t.TempDir()
	in := saveWalk(t, dir)
	out := filepath.Join(dir, "out.c3d")

	job := filepath.Join(dir, "job.yaml")
	yaml := `
input: ` + in + `
output: ` + out + `
markers:
  - label: PELV
    kind: midpoint
    from: [LASI, RASI]
  - label: HIGH
    kind: translate
    from: [LASI]
    offset: [0, 0, 50]
  - label: NONE
`
	require.NoError(t, os.WriteFile(job, []byte(yaml), 0o644))

	c, err := config.InitConfig(job)
	require.NoError(t, err)
	require.NoError(t, runJob(c))

	f, err := c3d.Open(out)
	require.NoError(t, err)
	assert.Equal(t, c3d.MiddleEndian, f.ByteOrder())
	assert.Equal(t, []string{"LASI", "RASI", "PELV", "HIGH", "NONE"}, f.PointLabels())

	x, y, z := f.Frame(1).Point(2)
	assert.Equal(t, []float32{3, 15, 100}, []float32{x, y, z})
	assert.False(t, f.Frame(2).Valid(2))

	x, y, z = f.Frame(1).Point(3)
	assert.Equal(t, []float32{1, 10, 150}, []float32{x, y, z})

	x, y, z = f.Frame(0).Point(4)
	assert.Equal(t, []float32{0, 0, 0}, []float32{x, y, z})
}

func TestRunJobMissingInput(t *testing.T) {
	dir := t.TempDir()
	c := &config.Config{Input: filepath.Join(dir, "nope.c3d"), Output: filepath.Join(dir, "out.c3d")}
	assert.Error(t, runJob(c))
}

func TestFramePoints(t *testing.T) {
	f, err := c3d.Open(saveWalk(t, t.TempDir()))
	require.NoError(t, err)

	points, err := framePoints(f, 2)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, "LASI", points[0].Label)
	assert.Equal(t, float32(2), points[0].X)
	assert.True(t, points[0].Valid)
	assert.False(t, points[1].Valid)

	_, err = framePoints(f, 3)
	assert.Error(t, err)
}

func TestMarkerStats(t *testing.T) {
	f, err := c3d.Open(saveWalk(t, t.TempDir()))
	require.NoError(t, err)

	stats := markerStats(f)
	require.Len(t, stats, 2)

	lasi := stats[0]
	assert.Equal(t, "LASI", lasi.Label)
	assert.Equal(t, 3, lasi.Valid)
	assert.InDelta(t, 1, lasi.Axes[0].Mean, 1e-9)
	assert.InDelta(t, 1, lasi.Axes[0].StdDev, 1e-9)
	assert.Equal(t, 0.0, lasi.Axes[0].Min)
	assert.Equal(t, 2.0, lasi.Axes[0].Max)
	assert.Equal(t, 0.0, lasi.Axes[1].StdDev)

	rasi := stats[1]
	assert.Equal(t, 2, rasi.Valid)
	assert.InDelta(t, 4.5, rasi.Axes[0].Mean, 1e-9)
	assert.InDelta(t, math.Sqrt(0.5), rasi.Axes[0].StdDev, 1e-9)
}

func TestAxisStatSingle(t *testing.T) {
	s := newAxisStat([]float64{7})
	assert.Equal(t, axisStat{Mean: 7, Min: 7, Max: 7}, s)
	assert.Equal(t, axisStat{}, newAxisStat(nil))
}
