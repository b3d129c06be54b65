package param

import (
	"github.com/pkg/errors"

	"github.com/robert-malhotra/go-c3d/internal/binary"
)

// Size returns the number of bytes Write produces, preamble included.
func (s *Section) Size() int {
	size := 4
	for _, g := range s.Groups {
		size += g.recordSize()
		for _, p := range g.Params {
			size += p.recordSize()
		}
	}
	return size
}

// BlocksNeeded returns the number of 512-byte blocks required to hold the
// section.
func (s *Section) BlocksNeeded() int {
	return (s.Size() + binary.BlockSize - 1) / binary.BlockSize
}

// Validate checks that every record fits its on-disk fields.
func (s *Section) Validate() error {
	// a section without records cannot be terminated
	if len(s.Groups) == 0 {
		return errors.Wrap(ErrRecord, "section has no groups")
	}
	for _, g := range s.Groups {
		if err := checkRecord(g.Name, g.Description, g.ID); err != nil {
			return errors.WithMessagef(err, "group %s", g.Name)
		}
		for _, p := range g.Params {
			if err := checkRecord(p.Name, p.Description, g.ID); err != nil {
				return errors.WithMessagef(err, "parameter %s.%s", g.Name, p.Name)
			}
			if !p.Type.Valid() {
				return errors.Wrapf(ErrRecord, "parameter %s.%s: type %v", g.Name, p.Name, p.Type)
			}
			if len(p.Dims) > 255 {
				return errors.Wrapf(ErrDimension, "parameter %s.%s: %d dimensions", g.Name, p.Name, len(p.Dims))
			}
			for _, d := range p.Dims {
				if d < 0 || d > 255 {
					return errors.Wrapf(ErrDimension, "parameter %s.%s: extent %d", g.Name, p.Name, d)
				}
			}
			if p.recordSize()-2-len(p.Name) > 0xffff {
				return errors.Wrapf(ErrDimension, "parameter %s.%s: %d byte payload", g.Name, p.Name, p.DataSize())
			}
		}
	}
	return nil
}

func checkRecord(name, desc string, id int) error {
	switch {
	case len(name) > 127:
		return errors.Wrapf(ErrRecord, "name length %d", len(name))
	case len(desc) > 255:
		return errors.Wrapf(ErrRecord, "description length %d", len(desc))
	case id < 1 || id > 127:
		return errors.Wrapf(ErrRecord, "group id %d", id)
	}
	return nil
}

// Write encodes the section at the given 1-based block. blocks is the
// section length stored in the preamble and processor the processor tag.
// Each group is written directly followed by its parameters.
func (s *Section) Write(w *binary.Writer, block, blocks int, processor uint8) error {
	if err := s.Validate(); err != nil {
		return err
	}

	w.SeekBlock(block)
	w.PutUint8(0)
	w.PutUint8(0)
	w.PutUint8(uint8(blocks))
	w.PutUint8(processor)

	for i, g := range s.Groups {
		lastGroup := i == len(s.Groups)-1
		writeGroup(w, g, !lastGroup || len(g.Params) > 0)
		for j, p := range g.Params {
			writeParam(w, p, g.ID, !lastGroup || j < len(g.Params)-1)
		}
	}
	return nil
}

func putName(w *binary.Writer, name string, locked bool, id int) {
	n := int8(len(name))
	if locked {
		n = -n
	}
	w.PutInt8(n)
	w.PutInt8(int8(id))
	w.PutBytes([]byte(name))
}

func writeGroup(w *binary.Writer, g *Group, hasNext bool) {
	putName(w, g.Name, g.Locked, -g.ID)
	offset := 0
	if hasNext {
		offset = 3 + len(g.Description)
	}
	w.PutUint16(uint16(offset))
	w.PutUint8(uint8(len(g.Description)))
	w.PutBytes([]byte(g.Description))
}

func writeParam(w *binary.Writer, p *Parameter, groupID int, hasNext bool) {
	putName(w, p.Name, p.Locked, groupID)
	offset := 0
	if hasNext {
		offset = 5 + len(p.Dims) + p.DataSize() + len(p.Description)
	}
	w.PutUint16(uint16(offset))
	w.PutInt8(int8(p.Type))
	w.PutUint8(uint8(len(p.Dims)))
	for _, d := range p.Dims {
		w.PutUint8(uint8(d))
	}
	p.PutData(w)
	w.PutUint8(uint8(len(p.Description)))
	w.PutBytes([]byte(p.Description))
}
