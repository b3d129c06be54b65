// Package layout reads and writes the C3D data section.
//
// The data section holds one record per frame. Each record contains every
// 3D point followed by every analog sample:
//
//	frame:  point[0] ... point[P-1]  sample[0] ... sample[S-1]
//	point:  X Y Z W
//	sample: channel[0] ... channel[C-1]
//
// # Storage Formats
//
// The sign of the header scale factor selects the numeric encoding for the
// whole file:
//
//   - Integer (scale >= 0): X, Y and Z are int16 multiplied by scale. W is an
//     int16 whose high byte is the camera mask and whose low byte is the
//     residual, also multiplied by scale. W == -1 marks an invalid point.
//     Analog samples are int16, or uint16 when ANALOG:FORMAT is "UNSIGNED".
//
//   - Real (scale < 0): X, Y and Z are float32. W is a float32 truncated to
//     an int16 and split the same way, with the residual multiplied by
//     -scale. Analog samples are float32.
//
// # Analog Calibration
//
// When ANALOG:OFFSET, ANALOG:SCALE and ANALOG:GEN_SCALE are all available
// (see [Calibration]) every raw sample v on channel ch decodes to
//
//	(v - OFFSET[ch]) * SCALE[ch] * GEN_SCALE[0]
//
// and encoding applies the inverse. Otherwise raw values pass through.
//
// # Strategy Selection
//
// The point and channel codecs are plain functions chosen once per
// [Decode] or [Encode] call from the [Format] and [AnalogFormat].
package layout
