// Package errors provides error handling for precheck.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints attached to fatal precondition failures
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
//	// Add hints for users
//	return errors.WithHint(err, "check the project directory name")
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
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
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Sentinel errors shared across precheck.
// Use these with errors.Is(); wrap them with errors.Wrap() to add context.
var (
	// ErrMissingFile indicates a required project file or directory does not exist
	ErrMissingFile = New("required file missing")

	// ErrInvalidMetadata indicates info.yaml could not be read or has the wrong shape
	ErrInvalidMetadata = New("invalid project metadata")

	// ErrInvalidLayout indicates the GDS stream could not be parsed
	ErrInvalidLayout = New("invalid layout")

	// ErrChecksFailed indicates at least one verdict failed (only surfaced in strict mode)
	ErrChecksFailed = New("prechecks failed")
)

// IsFatal reports whether err is one of the fatal precondition failures that
// abort a run before all checks have executed.
func IsFatal(err error) bool {
	return err != nil && IsAny(err, ErrMissingFile, ErrInvalidMetadata, ErrInvalidLayout)
}

// MarkMissingFile tags err as a missing-file failure while keeping its message.
func MarkMissingFile(err error) error {
	return Mark(err, ErrMissingFile)
}

// MarkInvalidMetadata tags err as a metadata failure while keeping its message.
func MarkInvalidMetadata(err error) error {
	return Mark(err, ErrInvalidMetadata)
}

// MarkInvalidLayout tags err as a layout failure while keeping its message.
func MarkInvalidLayout(err error) error {
	return Mark(err, ErrInvalidLayout)
}
