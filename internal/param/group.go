package param

// Group is a named container of parameters. ID is the positive group id;
// on disk a group record stores -ID.
type Group struct {
	Name        string
	ID          int
	Locked      bool
	Description string
	Params      []*Parameter
}

// Param returns the parameter with the given name, or nil.
func (g *Group) Param(name string) *Parameter {
	for _, p := range g.Params {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Add appends p and sets its group id.
func (g *Group) Add(p *Parameter) {
	p.GroupID = g.ID
	g.Params = append(g.Params, p)
}

func (g *Group) recordSize() int {
	return 5 + len(g.Name) + len(g.Description)
}
