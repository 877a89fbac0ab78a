package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter marks inputs rejected before any computation runs.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrNumericOverflow marks results too large to represent.
	ErrNumericOverflow = errors.New("numeric overflow")
)

// ParameterError describes a single rejected input.
type ParameterError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s %v: %s", ErrInvalidParameter, e.Field, e.Value, e.Reason)
}

func (e *ParameterError) Unwrap() error { return ErrInvalidParameter }

// InvalidParameter builds a *ParameterError.
func InvalidParameter(field string, value any, reason string) error {
	return &ParameterError{Field: field, Value: value, Reason: reason}
}

// Overflow wraps ErrNumericOverflow with the name of the offending quantity.
func Overflow(quantity string) error {
	return fmt.Errorf("%w: %s is not representable", ErrNumericOverflow, quantity)
}

// Code is a machine-readable error code.
type Code string

const (
	CodeInvalidParameter Code = "INVALID_PARAMETER"
	CodeNumericOverflow  Code = "NUMERIC_OVERFLOW"
	CodeUnknown          Code = "UNKNOWN"
)

// CodeOf classifies err into the calculation error taxonomy.
func CodeOf(err error) Code {
	switch {
	case errors.Is(err, ErrInvalidParameter):
		return CodeInvalidParameter
	case errors.Is(err, ErrNumericOverflow):
		return CodeNumericOverflow
	default:
		return CodeUnknown
	}
}
