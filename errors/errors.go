// Package errors provides error handling for inkmill.
//
// It re-exports github.com/cockroachdb/errors so the rest of the
// codebase gets stack traces, wrapping, and errors.Is/As support from a
// single import, and defines the sentinel errors shared across the
// translation and storage packages.
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check failure class
//	if errors.Is(err, errors.ErrUnsupportedType) {
//	    // handle refused value tag
//	}
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection and classification
var (
	Is     = crdb.Is
	IsAny  = crdb.IsAny
	As     = crdb.As
	Unwrap = crdb.Unwrap
	Mark   = crdb.Mark
)

// Sentinel errors for the failure classes inkmill can produce.
// Constructors in the translate and storage packages Mark these so
// callers can classify with errors.Is regardless of wrapping depth.
var (
	// ErrUnknownTranslator indicates neither the kernel identity nor the
	// language family resolved to a registered translator.
	ErrUnknownTranslator = New("no translator registered")

	// ErrUnsupportedType indicates a translator has no rule for a value
	// tag it was asked to render.
	ErrUnsupportedType = New("unsupported value type")

	// ErrInvalidLocation indicates a malformed storage address.
	ErrInvalidLocation = New("invalid storage location")

	// ErrNormalization indicates the optional post-processing formatter
	// failed. The generated source is still valid without it.
	ErrNormalization = New("normalization failed")
)

// IsUnknownTranslatorError checks if an error is or wraps ErrUnknownTranslator.
func IsUnknownTranslatorError(err error) bool {
	return err != nil && Is(err, ErrUnknownTranslator)
}

// IsUnsupportedTypeError checks if an error is or wraps ErrUnsupportedType.
func IsUnsupportedTypeError(err error) bool {
	return err != nil && Is(err, ErrUnsupportedType)
}

// IsInvalidLocationError checks if an error is or wraps ErrInvalidLocation.
func IsInvalidLocationError(err error) bool {
	return err != nil && Is(err, ErrInvalidLocation)
}

// IsNormalizationError checks if an error is or wraps ErrNormalization.
func IsNormalizationError(err error) bool {
	return err != nil && Is(err, ErrNormalization)
}
