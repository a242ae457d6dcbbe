package errors

import (
	"errors"
	"fmt"
	"maps"
)

// Code categorizes a tracker failure
type Code string

const (
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument covers bad chain definitions, status names and
	// indexes
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound covers unknown groups and missing snapshots
	CodeNotFound Code = "not_found"

	// CodeAlreadyExists covers duplicate group ids
	CodeAlreadyExists Code = "already_exists"

	// CodeUnavailable means the progress store could not be reached
	CodeUnavailable Code = "unavailable"

	// CodeValidation covers bad configuration
	CodeValidation Code = "validation"
)

// Error carries a code and optional context through a wrap chain. Meta set on
// an outer error shadows the same key set further down.
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta records a key on this error only and returns it for chaining
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = map[string]any{}
	}
	e.Meta[key] = value
	return e
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap adds context to err. A coded cause keeps its code; anything else
// becomes CodeUnknown. Wrapping nil gives nil.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	code := CodeUnknown
	if inner, ok := as(err); ok {
		code = inner.Code
	}
	return &Error{Code: code, Message: message, Cause: err}
}

func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode is Wrap with the code forced
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Cause: err}
}

func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

func Validationf(format string, args ...any) *Error {
	return Newf(CodeValidation, format, args...)
}

// Is reports whether the outermost coded error in the chain has code
func Is(err error, code Code) bool {
	e, ok := as(err)
	return ok && e.Code == code
}

func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// GetCode returns CodeUnknown for errors that were never coded
func GetCode(err error) Code {
	if e, ok := as(err); ok {
		return e.Code
	}
	return CodeUnknown
}

// GetMeta merges the metadata of every coded error in the chain into a fresh
// map. It returns nil when no error in the chain carries any.
func GetMeta(err error) map[string]any {
	var layers []map[string]any
	for err != nil {
		if e, ok := err.(*Error); ok && len(e.Meta) > 0 {
			layers = append(layers, e.Meta)
		}
		err = errors.Unwrap(err)
	}
	if len(layers) == 0 {
		return nil
	}

	merged := map[string]any{}
	for i := len(layers) - 1; i >= 0; i-- {
		maps.Copy(merged, layers[i])
	}
	return merged
}

func as(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
