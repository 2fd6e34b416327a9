package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Share code errors
	ErrMsgMalformedCode      = "malformed share code"
	ErrMsgChecksumMismatch   = "share code checksum mismatch"
	ErrMsgUnsupportedVersion = "unsupported share code version"
	ErrMsgFieldOutOfRange    = "field out of range"

	// Render errors
	ErrMsgInvalidCanvasSize = "invalid canvas size"

	// Identifier errors
	ErrMsgInvalidIdentifier = "invalid identifier"

	// Profile resolution errors
	ErrMsgProfileNotFound = "profile not found"
	ErrMsgNoCrosshair     = "profile has no crosshair"
	ErrMsgUpstream        = "upstream lookup failed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Share code errors
	ErrMalformedCode      = errors.New(ErrMsgMalformedCode)
	ErrChecksumMismatch   = errors.New(ErrMsgChecksumMismatch)
	ErrUnsupportedVersion = errors.New(ErrMsgUnsupportedVersion)
	ErrFieldOutOfRange    = errors.New(ErrMsgFieldOutOfRange)

	// Render errors
	ErrInvalidCanvasSize = errors.New(ErrMsgInvalidCanvasSize)

	// Identifier errors
	ErrInvalidIdentifier = errors.New(ErrMsgInvalidIdentifier)

	// Profile resolution errors
	ErrProfileNotFound = errors.New(ErrMsgProfileNotFound)
	ErrNoCrosshair     = errors.New(ErrMsgNoCrosshair)
	ErrUpstream        = errors.New(ErrMsgUpstream)
)

// FieldOutOfRangeError reports which crosshair field failed its range check.
// It matches ErrFieldOutOfRange with errors.Is.
type FieldOutOfRangeError struct {
	Field string
	Value float64
}

func (e *FieldOutOfRangeError) Error() string {
	return fmt.Sprintf("%s: %s=%v", ErrMsgFieldOutOfRange, e.Field, e.Value)
}

func (e *FieldOutOfRangeError) Is(target error) bool {
	return target == ErrFieldOutOfRange
}

// NewFieldOutOfRange builds a FieldOutOfRangeError.
func NewFieldOutOfRange(field string, value float64) error {
	return &FieldOutOfRangeError{Field: field, Value: value}
}
