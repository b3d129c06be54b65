package c3d

// WalkFunc is called for each group and parameter during traversal.
// For a group p is nil. Return nil to continue walking, or an error to stop.
type WalkFunc func(path string, g *Group, p *Parameter) error

// Walk visits every group in file order, each followed by its parameters.
//
// Example:
//
//	f.Walk(func(path string, g *c3d.Group, p *c3d.Parameter) error {
//	    if p == nil {
//	        fmt.Println("Group:", path)
//	        return nil
//	    }
//	    fmt.Println(path, p.Type(), p.Dims())
//	    return nil
//	})
func (f *File) Walk(fn WalkFunc) error {
	for _, g := range f.Groups() {
		if err := fn(g.Name(), g, nil); err != nil {
			return err
		}
		for _, p := range g.Parameters() {
			if err := fn(p.Path(), g, p); err != nil {
				return err
			}
		}
	}
	return nil
}
