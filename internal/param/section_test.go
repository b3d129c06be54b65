package param

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robert-malhotra/go-c3d/internal/binary"
	"github.com/robert-malhotra/go-c3d/internal/dtype"
)

// rawSection builds a one-block little-endian parameter section from raw
// record bytes.
func rawSection(records ...[]byte) []byte {
	buf := make([]byte, binary.BlockSize)
	buf[2] = 1
	buf[3] = 84
	pos := 4
	for _, r := range records {
		pos += copy(buf[pos:], r)
	}
	return buf
}

func TestParseParameterBeforeGroup(t *testing.T) {
	// Parameter SCALE of group 1 appears before the group itself.
	param := []byte{
		5, 1, 'S', 'C', 'A', 'L', 'E',
		10, 0, // next offset
		4, 0, // float scalar
		0x00, 0x00, 0x80, 0x3f, // 1.0
		1, 'x',
	}
	group := []byte{
		5, 0xff, 'P', 'O', 'I', 'N', 'T',
		0, 0, // last record
		2, 'p', 't',
	}

	s, err := Parse(binary.NewCursor(rawSection(param, group)), 1)
	require.NoError(t, err)

	assert.Equal(t, 1, s.Blocks)
	assert.Equal(t, uint8(84), s.Processor)
	require.Len(t, s.Groups, 1)

	g := s.Groups[0]
	assert.Equal(t, "POINT", g.Name)
	assert.Equal(t, 1, g.ID)
	assert.Equal(t, "pt", g.Description)
	require.Len(t, g.Params, 1)

	p := s.Param("POINT", "SCALE")
	require.NotNil(t, p)
	assert.Equal(t, dtype.Float32, p.Type)
	assert.Nil(t, p.Dims)
	assert.Equal(t, []float32{1}, p.Floats)
	assert.Equal(t, "x", p.Description)
}

func TestParseLockedAndCharMatrix(t *testing.T) {
	group := []byte{
		0xfb, 0xfe, 'P', 'O', 'I', 'N', 'T', // locked, id -2
		3, 0,
		0,
	}
	labels := []byte{
		6, 2, 'L', 'A', 'B', 'E', 'L', 'S',
		0, 0,
		0xff, 2, 2, 3, // char [2 3]
		'A', 'A', 'B', 'B', 'C', 'C',
		0,
	}

	s, err := Parse(binary.NewCursor(rawSection(group, labels)), 1)
	require.NoError(t, err)

	g := s.Group("POINT")
	require.NotNil(t, g)
	assert.True(t, g.Locked)
	assert.Equal(t, 2, g.ID)

	p := g.Param("LABELS")
	require.NotNil(t, p)
	assert.Equal(t, []int{2, 3}, p.Dims)
	assert.Equal(t, []string{"AA", "BB", "CC"}, p.Strings)
}

func TestParseZeroExtent(t *testing.T) {
	group := []byte{1, 0xff, 'G', 3, 0, 0}
	empty := []byte{
		1, 1, 'E',
		0, 0,
		2, 1, 0, // int16 [0]
		0,
	}

	s, err := Parse(binary.NewCursor(rawSection(group, empty)), 1)
	require.NoError(t, err)

	p := s.Param("G", "E")
	require.NotNil(t, p)
	assert.Nil(t, p.Ints)
	assert.Equal(t, 0, p.DataSize())
}

func TestParseDropsOrphans(t *testing.T) {
	group := []byte{1, 0xff, 'G', 3, 0, 0}
	orphan := []byte{
		1, 9, 'O',
		0, 0,
		1, 0, 7,
		0,
	}

	s, err := Parse(binary.NewCursor(rawSection(group, orphan)), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, s.NumParams())
}

func TestParseErrors(t *testing.T) {
	t.Run("unknown type", func(t *testing.T) {
		rec := []byte{1, 1, 'P', 0, 0, 3, 0, 0}
		_, err := Parse(binary.NewCursor(rawSection(rec)), 1)
		assert.True(t, errors.Is(err, dtype.ErrUnknownType), "got %v", err)
	})

	t.Run("payload past end", func(t *testing.T) {
		data := rawSection([]byte{1, 1, 'P', 0, 0, 4, 1, 200})
		_, err := Parse(binary.NewCursor(data[:16]), 1)
		assert.True(t, errors.Is(err, ErrTruncated), "got %v", err)
	})

	t.Run("next offset past end", func(t *testing.T) {
		rec := []byte{1, 0xff, 'G', 0xff, 0x7f, 0}
		_, err := Parse(binary.NewCursor(rawSection(rec)), 1)
		assert.True(t, errors.Is(err, ErrTruncated), "got %v", err)
	})
}

func sampleSection() *Section {
	point := &Group{Name: "POINT", ID: 1, Description: "3D point parameters"}
	point.Add(&Parameter{Name: "USED", Type: dtype.Int16, Ints: []int16{3}})
	point.Add(&Parameter{Name: "SCALE", Type: dtype.Float32, Floats: []float32{-0.1}, Locked: true})
	point.Add(&Parameter{
		Name:    "LABELS",
		Type:    dtype.Char,
		Dims:    []int{4, 3},
		Strings: []string{"LFHD", "RFHD", "C7"},
	})

	analog := &Group{Name: "ANALOG", ID: 2}
	analog.Add(&Parameter{Name: "OFFSET", Type: dtype.Int16, Dims: []int{2}, Ints: []int16{1, -1}})
	analog.Add(&Parameter{Name: "FLAGS", Type: dtype.Byte, Dims: []int{3}, Bytes: []uint8{1, 2, 3}})
	analog.Add(&Parameter{Name: "UNITS", Type: dtype.Char, Dims: []int{2}, Strings: []string{"V"}})

	empty := &Group{Name: "EMPTY", ID: 3}

	return &Section{Blocks: 1, Groups: []*Group{point, analog, empty}}
}

func TestWriteRoundTrip(t *testing.T) {
	for _, order := range []binary.Order{binary.LittleEndian, binary.MiddleEndian, binary.BigEndian} {
		t.Run(order.String(), func(t *testing.T) {
			s := sampleSection()
			w := binary.NewWriter(2, order)
			require.NoError(t, s.Write(w, 2, 1, 84))
			assert.Equal(t, binary.BlockSize+s.Size(), w.Pos())

			c := binary.NewCursor(w.Bytes())
			c.SetOrder(order)
			got, err := Parse(c, 2)
			require.NoError(t, err)

			require.Len(t, got.Groups, 3)
			assert.Equal(t, "3D point parameters", got.Groups[0].Description)
			assert.Equal(t, []int16{3}, got.Param("POINT", "USED").Ints)
			assert.Equal(t, []float32{-0.1}, got.Param("POINT", "SCALE").Floats)
			assert.True(t, got.Param("POINT", "SCALE").Locked)
			assert.Equal(t, []string{"LFHD", "RFHD", "C7  "}, got.Param("POINT", "LABELS").Strings)
			assert.Equal(t, []string{"LFHD", "RFHD", "C7"}, got.Param("POINT", "LABELS").TrimmedStrings())
			assert.Equal(t, []int16{1, -1}, got.Param("ANALOG", "OFFSET").Ints)
			assert.Equal(t, []uint8{1, 2, 3}, got.Param("ANALOG", "FLAGS").Bytes)
			assert.Equal(t, []string{"V "}, got.Param("ANALOG", "UNITS").Strings)
			assert.Empty(t, got.Group("EMPTY").Params)
		})
	}
}

func TestWriteNextOffsets(t *testing.T) {
	g := &Group{Name: "G", ID: 1, Description: "d"}
	g.Add(&Parameter{Name: "P", Type: dtype.Byte, Bytes: []uint8{9}})
	s := &Section{Groups: []*Group{g}}

	w := binary.NewWriter(1, binary.LittleEndian)
	require.NoError(t, s.Write(w, 1, 1, 84))
	b := w.Bytes()

	// group: len, id, name, offset(2), desc len, desc
	assert.Equal(t, []byte{1, 0xff, 'G', 4, 0, 1, 'd'}, b[4:11])
	// parameter is the last record
	assert.Equal(t, []byte{1, 1, 'P', 0, 0, 1, 0, 9, 0}, b[11:20])
	assert.Equal(t, 20, s.Size())
}

func TestValidate(t *testing.T) {
	g := &Group{Name: "G", ID: 1}
	g.Add(&Parameter{Name: "P", Type: dtype.Byte, Dims: []int{256}})
	s := &Section{Groups: []*Group{g}}
	assert.True(t, errors.Is(s.Validate(), ErrDimension))

	g.Params[0].Dims = []int{255}
	assert.NoError(t, s.Validate())

	g.ID = 0
	assert.True(t, errors.Is(s.Validate(), ErrRecord))

	empty := &Section{}
	assert.True(t, errors.Is(empty.Validate(), ErrRecord))
}
