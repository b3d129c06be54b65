// Package param handles the C3D parameter section.
//
// The parameter section starts with a four byte preamble (two unused bytes,
// the section length in blocks and the processor tag) followed by a chain of
// variable-length records. Every record starts with:
//
//	int8   name length (negative when the record is locked)
//	int8   id (negative for a group, positive group id for a parameter)
//	[]byte name
//	uint16 offset to the next record, counted from this field; 0 ends the chain
//
// Group records then carry a description. Parameter records carry an element
// type, a dimension list, the payload and a description. See [dtype] for the
// payload encoding.
//
// Records may appear in any order, so parameters are attached to their
// groups in a second pass once every group has been seen. See [Parse].
//
// Writing is done by [Section.Write], which always emits each group directly
// followed by its parameters. [Section.Size] reports the exact number of
// bytes that Write produces.
package param
