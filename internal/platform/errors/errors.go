// Package errors provides a structured error type with wrapping and metadata
package errors

// Always import the project errors package as perr (platform/errors)

import (
	stderrs "errors"
	"fmt"
)

// ErrorCode classifies failures of a build run
// Values are stable because they drive the process exit status; add sparingly
type ErrorCode uint16

const (
	// ErrorCodeUnknown is for unclassified errors
	ErrorCodeUnknown ErrorCode = iota

	// ErrorCodeMissingDirectory is for an absent data directory; nothing was read or written
	ErrorCodeMissingDirectory

	// ErrorCodeValidation is for invalid configuration
	ErrorCodeValidation

	// ErrorCodeDataLoad is for input files that are missing, unreadable, or lack a required column
	ErrorCodeDataLoad

	// ErrorCodeDataQuality is for inputs that load but violate a data-quality rule (strict mode)
	ErrorCodeDataQuality

	// ErrorCodeWrite is for failures encoding or writing the output document
	ErrorCodeWrite
)

// String returns a short label used in logs
func (c ErrorCode) String() string {
	switch c {
	case ErrorCodeMissingDirectory:
		return "missing_directory"
	case ErrorCodeValidation:
		return "validation"
	case ErrorCodeDataLoad:
		return "data_load"
	case ErrorCodeDataQuality:
		return "data_quality"
	case ErrorCodeWrite:
		return "write"
	default:
		return "unknown"
	}
}

// ExitStatus turns an ErrorCode into a process exit status (never 0)
func ExitStatus(c ErrorCode) int {
	switch c {
	case ErrorCodeMissingDirectory:
		return 2
	case ErrorCodeValidation:
		return 3
	case ErrorCodeDataLoad:
		return 4
	case ErrorCodeDataQuality:
		return 5
	case ErrorCodeWrite:
		return 6
	default:
		return 1
	}
}

// Error is the structured error type with wrapping and metadata
// msg is human facing; code is machine facing
// field is optional (offending column or file); op is optional stage tag
// orig is the wrapped cause
type Error struct {
	orig  error
	msg   string
	code  ErrorCode
	field string
	op    string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

// Unwrap returns the wrapped error, if any
func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Field returns the offending field, if any
func (e *Error) Field() string { return e.field }

// Op returns the operation label, if set
func (e *Error) Op() string { return e.op }

// Message returns the message without the wrapped cause
func (e *Error) Message() string { return e.msg }

// Root returns the deepest wrapped cause
func Root(err error) error {
	for err != nil {
		u := stderrs.Unwrap(err)
		if u == nil {
			return err
		}
		err = u
	}
	return nil
}

// CodeOf extracts an ErrorCode from any error, defaulting to Unknown
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err has the given code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// ExitCode returns the process exit status for err; 0 only for nil
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return ExitStatus(CodeOf(err))
}

// As unwraps and returns (*Error, true) if err is one of ours
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Mutators (copy-on-write)

// WithField attaches a field to an *Error (copy-on-write). If err isn't *Error, returns err unchanged
func WithField(err error, field string) error {
	if e, ok := As(err); ok {
		c := *e
		c.field = field
		return &c
	}
	return err
}

// WithOp attaches an operation label to an *Error (copy-on-write). If err isn't *Error, returns err unchanged
func WithOp(err error, op string) error {
	if e, ok := As(err); ok {
		c := *e
		c.op = op
		return &c
	}
	return err
}

// Constructors

// New returns a new *Error with the given code and message
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf returns a new *Error with code and formatted message
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap returns a new *Error that wraps orig with code and message
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// Wrapf returns a new *Error that wraps orig with code and formatted message
func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

// WrapIf wraps only when err != nil (helper for 1-liners)
func WrapIf(err error, code ErrorCode, msg string) error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, msg)
}

// Sugar

// MissingDirf returns a missing directory error
func MissingDirf(format string, a ...any) error { return Newf(ErrorCodeMissingDirectory, format, a...) }

// Validationf returns a configuration validation error
func Validationf(format string, a ...any) error { return Newf(ErrorCodeValidation, format, a...) }

// DataLoadf returns a data load error
func DataLoadf(format string, a ...any) error { return Newf(ErrorCodeDataLoad, format, a...) }

// DataQualityf returns a data quality error
func DataQualityf(format string, a ...any) error { return Newf(ErrorCodeDataQuality, format, a...) }

// Writef returns an output write error
func Writef(format string, a ...any) error { return Newf(ErrorCodeWrite, format, a...) }
