// Package header handles the C3D header block.
//
// The header occupies the first 512-byte block. Fields are addressed by
// 1-based 16-bit word index:
//
//	Word    | Field
//	--------|--------------------------------------------
//	1       | byte 1: parameter start block, byte 2: 0x50
//	2       | number of 3D points
//	3       | analog measurements per frame (channels × samples)
//	4, 5    | first and last frame
//	6       | maximum interpolation gap
//	7-8     | scale factor (negative: floating point data)
//	9       | data start block
//	10      | analog samples per frame
//	11-12   | frame rate
//	148     | 12345 when a label/range section is present
//	149     | label/range start block
//	150     | 12345 when event labels are 4 characters wide
//	151     | event count (at most 18)
//	153-188 | event times
//	189-197 | event display flags (0 means displayed)
//	199-234 | event labels
//
// The byte order is not stored in the header itself. It is given by the
// processor tag in the fourth byte of the first parameter block (84 Intel,
// 85 DEC, 86 MIPS) and must be applied before any multi-byte header field is
// decoded. See [Read].
package header
