package types

import (
	"errors"
	"fmt"
)

// ErrInputNotFound indicates the source file does not exist.
var ErrInputNotFound = errors.New("input file not found")

// ErrEmptySeries indicates no plottable series survived selection.
var ErrEmptySeries = errors.New("no plottable columns")

// ErrUnsupportedFormat indicates an output format name that cannot be rendered.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// InputNotFoundError carries the missing path; errors.Is(err, ErrInputNotFound) holds.
type InputNotFoundError struct {
	Path string
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("input file not found: %s", e.Path)
}

func (e *InputNotFoundError) Is(target error) bool { return target == ErrInputNotFound }

// MissingColumnError is returned in strict mode when a required column is absent.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required column %q not found", e.Column)
}

// RenderError wraps any failure while reading, building or writing a chart.
type RenderError struct {
	Stage string // "read", "png", "svg", "html", "write", ...
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render error (%s): %v", e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// NewRenderError wraps err unless it is nil.
func NewRenderError(stage string, err error) error {
	if err == nil {
		return nil
	}
	return &RenderError{Stage: stage, Err: err}
}
