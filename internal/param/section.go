package param

import (
	"github.com/pkg/errors"

	"github.com/robert-malhotra/go-c3d/internal/binary"
	"github.com/robert-malhotra/go-c3d/internal/dtype"
	"github.com/robert-malhotra/go-c3d/internal/log"
)

// Section is the decoded parameter section.
type Section struct {
	// Blocks is the section length in 512-byte blocks as stored in the file.
	Blocks int
	// Processor is the processor tag stored in the section preamble.
	Processor uint8
	Groups    []*Group
}

// Group returns the group with the given name, or nil.
func (s *Section) Group(name string) *Group {
	for _, g := range s.Groups {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// Param returns the named parameter of the named group, or nil.
func (s *Section) Param(group, name string) *Parameter {
	g := s.Group(group)
	if g == nil {
		return nil
	}
	return g.Param(name)
}

// NumParams returns the total number of parameters across all groups.
func (s *Section) NumParams() int {
	n := 0
	for _, g := range s.Groups {
		n += len(g.Params)
	}
	return n
}

func need(c *binary.Cursor, n int, what string) error {
	if c.Remaining() < n {
		return errors.Wrapf(ErrTruncated, "%s: need %d bytes at offset %d, have %d", what, n, c.Pos(), c.Remaining())
	}
	return nil
}

// Parse decodes the parameter section starting at the given 1-based block.
// The cursor must already be set to the file's byte order.
func Parse(c *binary.Cursor, block int) (*Section, error) {
	c.SeekBlock(block)
	if err := need(c, 4, "preamble"); err != nil {
		return nil, err
	}
	c.Skip(2)
	s := &Section{
		Blocks:    int(c.Uint8()),
		Processor: c.Uint8(),
	}

	var params []*Parameter
	groups := make(map[int]*Group)
	for {
		rec, next, err := parseRecord(c)
		if err != nil {
			return nil, err
		}
		switch r := rec.(type) {
		case *Group:
			groups[r.ID] = r
			s.Groups = append(s.Groups, r)
		case *Parameter:
			params = append(params, r)
		}
		if next < 0 {
			break
		}
		c.Seek(next)
	}

	for _, p := range params {
		g, ok := groups[p.GroupID]
		if !ok {
			log.Warning("dropping parameter with unknown group", map[string]interface{}{
				log.KeyParam: p.Name,
				log.KeyGroup: p.GroupID,
			})
			continue
		}
		g.Params = append(g.Params, p)
	}

	log.Debug("parameter section parsed", map[string]interface{}{
		"blocks": s.Blocks,
		"groups": len(s.Groups),
		"params": s.NumParams(),
	})
	return s, nil
}

// parseRecord decodes one record at the cursor. It returns the record and
// the absolute position of the next one, or -1 at the end of the chain.
func parseRecord(c *binary.Cursor) (interface{}, int, error) {
	if err := need(c, 2, "record"); err != nil {
		return nil, 0, err
	}
	nameLen := int(c.Int8())
	locked := nameLen < 0
	if locked {
		nameLen = -nameLen
	}
	id := int(c.Int8())

	if err := need(c, nameLen+2, "record name"); err != nil {
		return nil, 0, err
	}
	name := c.String(nameLen)
	mark := c.Pos()
	offset := int(c.Uint16())
	next := -1
	if offset != 0 {
		next = mark + offset
	}

	if id < 0 {
		desc, err := readDescription(c)
		if err != nil {
			return nil, 0, errors.WithMessagef(err, "group %s", name)
		}
		return &Group{Name: name, ID: -id, Locked: locked, Description: desc}, next, nil
	}

	p, err := parseParameter(c, name, id, locked)
	if err != nil {
		return nil, 0, errors.WithMessagef(err, "parameter %s", name)
	}
	return p, next, nil
}

func parseParameter(c *binary.Cursor, name string, id int, locked bool) (*Parameter, error) {
	if err := need(c, 2, "type"); err != nil {
		return nil, err
	}
	typ, err := dtype.Parse(c.Int8())
	if err != nil {
		return nil, err
	}
	ndims := int(c.Uint8())
	if err := need(c, ndims, "dimensions"); err != nil {
		return nil, err
	}
	var dims []int
	if ndims > 0 {
		dims = make([]int, ndims)
		for i := range dims {
			dims[i] = int(c.Uint8())
		}
	}

	p := &Parameter{
		Name:    name,
		GroupID: id,
		Locked:  locked,
		Dims:    dims,
		Type:    typ,
	}
	if err := need(c, p.DataSize(), "data"); err != nil {
		return nil, err
	}
	p.readData(c)

	if p.Description, err = readDescription(c); err != nil {
		return nil, err
	}
	return p, nil
}

func readDescription(c *binary.Cursor) (string, error) {
	if err := need(c, 1, "description length"); err != nil {
		return "", err
	}
	n := int(c.Uint8())
	if err := need(c, n, "description"); err != nil {
		return "", err
	}
	return c.String(n), nil
}
