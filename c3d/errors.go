// Package c3d reads, edits and writes C3D motion capture files.
package c3d

import (
	"github.com/pkg/errors"

	"github.com/robert-malhotra/go-c3d/internal/dtype"
	"github.com/robert-malhotra/go-c3d/internal/header"
	"github.com/robert-malhotra/go-c3d/internal/layout"
	"github.com/robert-malhotra/go-c3d/internal/param"
)

// Common errors
var (
	ErrNotC3D           = header.ErrNotC3D
	ErrUnknownProcessor = header.ErrUnknownProcessor
	ErrUnknownType      = dtype.ErrUnknownType
	ErrDimension        = param.ErrDimension
	ErrRecord           = param.ErrRecord
	ErrInconsistent     = errors.New("frame data inconsistent with header")
	ErrInvalidPath      = errors.New("invalid parameter path")
)

// ErrTruncated matches any section that ends before its declared extent.
var ErrTruncated = errors.New("file truncated")

// truncated rewraps the per-section truncation errors so that callers can
// test for ErrTruncated alone.
func truncated(err error) error {
	if errors.Is(err, header.ErrTruncated) || errors.Is(err, param.ErrTruncated) || errors.Is(err, layout.ErrTruncated) {
		return &truncatedError{err: err}
	}
	return err
}

type truncatedError struct {
	err error
}

func (e *truncatedError) Error() string { return e.err.Error() }
func (e *truncatedError) Unwrap() error { return e.err }
func (e *truncatedError) Is(target error) bool {
	return target == ErrTruncated
}
