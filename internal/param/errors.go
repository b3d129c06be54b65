package param

import "github.com/pkg/errors"

var (
	// ErrTruncated is returned when a record extends past the end of the input.
	ErrTruncated = errors.New("parameter section truncated")

	// ErrDimension is returned when a parameter's dimensions cannot be encoded.
	ErrDimension = errors.New("parameter dimensions not encodable")

	// ErrRecord is returned when a name, description or id does not fit its
	// on-disk field.
	ErrRecord = errors.New("parameter record not encodable")
)
