package config

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrUnknownPreset       = errors.New("config: unknown page preset")
	ErrUnknownMarginPreset = errors.New("config: unknown margin preset")
	ErrBadDimension        = errors.New("config: invalid dimension")
	ErrUnsupportedFormat   = errors.New("config: unsupported file format")
)

// FieldError reports which page-setup field failed to parse.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("config: field %s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
