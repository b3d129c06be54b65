package c3d

import (
	"fmt"
	"strings"

	"github.com/robert-malhotra/go-c3d/internal/dtype"
	"github.com/robert-malhotra/go-c3d/internal/param"
)

// Type is the element type of a parameter.
type Type = dtype.Type

// Parameter element types.
const (
	Char    = dtype.Char
	Byte    = dtype.Byte
	Int16   = dtype.Int16
	Float32 = dtype.Float32
)

// Group is a read-only view of a parameter group.
type Group struct {
	g *param.Group
}

// Name returns the group name.
func (g *Group) Name() string { return g.g.Name }

// ID returns the positive group id.
func (g *Group) ID() int { return g.g.ID }

// Description returns the group description.
func (g *Group) Description() string { return g.g.Description }

// Locked reports whether the group is locked.
func (g *Group) Locked() bool { return g.g.Locked }

// Parameters returns the group's parameters in file order.
func (g *Group) Parameters() []*Parameter {
	params := make([]*Parameter, len(g.g.Params))
	for i, p := range g.g.Params {
		params[i] = &Parameter{p: p, group: g}
	}
	return params
}

// Parameter returns the named parameter, or nil.
func (g *Group) Parameter(name string) *Parameter {
	p := g.g.Param(name)
	if p == nil {
		return nil
	}
	return &Parameter{p: p, group: g}
}

// Parameter is a read-only view of a parameter.
type Parameter struct {
	p     *param.Parameter
	group *Group
}

// Name returns the parameter name.
func (p *Parameter) Name() string { return p.p.Name }

// Path returns the "GROUP:NAME" path of the parameter.
func (p *Parameter) Path() string { return JoinParamPath(p.group.Name(), p.p.Name) }

// Group returns the owning group.
func (p *Parameter) Group() *Group { return p.group }

// Description returns the parameter description.
func (p *Parameter) Description() string { return p.p.Description }

// Locked reports whether the parameter is locked.
func (p *Parameter) Locked() bool { return p.p.Locked }

// Type returns the element type.
func (p *Parameter) Type() Type { return p.p.Type }

// Dims returns a copy of the dimensions; nil for a scalar.
func (p *Parameter) Dims() []int {
	if p.p.Dims == nil {
		return nil
	}
	out := make([]int, len(p.p.Dims))
	copy(out, p.p.Dims)
	return out
}

// IsScalar reports whether the parameter has no dimensions.
func (p *Parameter) IsScalar() bool { return len(p.p.Dims) == 0 }

// Count returns the number of elements described by the dimensions.
func (p *Parameter) Count() int { return p.p.Count() }

// Strings returns a copy of the character data, or nil for other types.
func (p *Parameter) Strings() []string {
	if p.p.Type != dtype.Char {
		return nil
	}
	return append([]string(nil), p.p.Strings...)
}

// TrimmedStrings returns the character data without trailing padding.
func (p *Parameter) TrimmedStrings() []string { return p.p.TrimmedStrings() }

// Bytes returns a copy of the byte data, or nil for other types.
func (p *Parameter) Bytes() []uint8 {
	if p.p.Type != dtype.Byte {
		return nil
	}
	return append([]uint8(nil), p.p.Bytes...)
}

// Int16s returns a copy of the integer data, or nil for other types.
func (p *Parameter) Int16s() []int16 {
	if p.p.Type != dtype.Int16 {
		return nil
	}
	return append([]int16(nil), p.p.Ints...)
}

// Float32s returns a copy of the float data, or nil for other types.
func (p *Parameter) Float32s() []float32 {
	if p.p.Type != dtype.Float32 {
		return nil
	}
	return append([]float32(nil), p.p.Floats...)
}

// Value returns the payload as []string, []uint8, []int16 or []float32.
func (p *Parameter) Value() interface{} {
	switch p.p.Type {
	case dtype.Char:
		return p.Strings()
	case dtype.Byte:
		return p.Bytes()
	case dtype.Int16:
		return p.Int16s()
	case dtype.Float32:
		return p.Float32s()
	}
	return nil
}

// ValueString formats the payload for display.
func (p *Parameter) ValueString() string {
	if p.p.Type == dtype.Char {
		return "[" + strings.Join(p.TrimmedStrings(), " ") + "]"
	}
	return fmt.Sprint(p.Value())
}
