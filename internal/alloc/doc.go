// Package alloc lays out the sections of a C3D file in whole 512-byte blocks.
//
// Sections are placed back to back starting at a given 1-based block: the
// header block, then the parameter section, then the data section. A section
// may reserve more blocks than its content needs (the parameter section keeps
// the block count it was read with) but never fewer.
//
//	a := alloc.New(1)
//	hdr := a.Alloc(binary.BlockSize, "header")
//	params := a.Reserve(stored, size, "parameters")
//	data := a.Alloc(dataSize, "data")
//	image := binary.NewWriter(a.Blocks(), order)
package alloc
