// Package dtype provides C3D parameter element types and payload codecs.
//
// Every C3D parameter record carries a one-byte element type tag followed by
// a list of dimension extents and a payload of width × product(extents)
// bytes:
//
//	Tag | Type    | Width | Go payload
//	----|---------|-------|-----------
//	 -1 | Char    | 1     | []string
//	  1 | Byte    | 1     | []uint8
//	  2 | Int16   | 2     | []int16
//	  4 | Float32 | 4     | []float32
//
// A parameter without dimensions is a scalar holding one element. A
// parameter with any zero extent has no payload at all.
//
// # Character Data
//
// Character payloads are split on the first dimension: with zero or one
// dimension the whole payload is a single string; with two or more
// dimensions it holds product(dims[1:]) strings of dims[0] bytes each
// (e.g. POINT.LABELS with dims [4 12] holds twelve 4-byte labels).
// Strings are never trimmed on decode; encode pads with spaces.
//
// # Key Functions
//
//   - [Parse]: Validates an on-disk type tag
//   - [Count], [Size]: Element and byte counts for a dimension list
//   - [DecodeStrings], [DecodeBytes], [DecodeInt16s], [DecodeFloat32s]
//   - [EncodeStrings], [EncodeBytes], [EncodeInt16s], [EncodeFloat32s]
package dtype
