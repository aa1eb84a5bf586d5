package errors

import (
	"errors"
	"fmt"
)

// Error represents a structured error with code, message, and metadata
type Error struct {
	Code    Code                   `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the target error is of the same type
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// WithMeta adds metadata to the error
func (e *Error) WithMeta(key string, value interface{}) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]interface{})
	}
	e.Meta[key] = value
	return e
}

// WithMetaMap copies multiple metadata entries into the error
func (e *Error) WithMetaMap(meta map[string]interface{}) *Error {
	if len(meta) == 0 {
		return e
	}
	if e.Meta == nil {
		e.Meta = make(map[string]interface{})
	}
	for k, v := range meta {
		e.Meta[k] = v
	}
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with a formatted message
func Newf(code Code, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error, preserving its code if it's an Error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var existingErr *Error
	if errors.As(err, &existingErr) {
		wrapped := &Error{
			Code:    existingErr.Code,
			Message: message,
			Cause:   err,
		}
		return wrapped.WithMetaMap(existingErr.Meta)
	}

	return &Error{
		Code:    CodeInternal,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with a formatted message
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	var existingErr *Error
	meta := make(map[string]interface{})
	if errors.As(err, &existingErr) && existingErr.Meta != nil {
		for k, v := range existingErr.Meta {
			meta[k] = v
		}
	}

	return &Error{
		Code:    code,
		Message: message,
		Cause:   err,
		Meta:    meta,
	}
}

// WrapWithCodef wraps an error with a specific code and formatted message
func WrapWithCodef(err error, code Code, format string, args ...interface{}) *Error {
	return WrapWithCode(err, code, fmt.Sprintf(format, args...))
}

// Constructor functions for common error types

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a not found error with formatted message
func NotFoundf(format string, args ...interface{}) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates an invalid argument error with formatted message
func InvalidArgumentf(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// ConfigNotFoundf reports a required data source that does not exist.
// The path is attached as metadata.
func ConfigNotFoundf(path string, format string, args ...interface{}) *Error {
	return Newf(CodeConfigNotFound, format, args...).WithMeta("path", path)
}

// ConfigParse wraps a parser failure for the given source
func ConfigParse(err error, path string) *Error {
	return WrapWithCodef(err, CodeConfigParse, "failed to parse %s", path).WithMeta("path", path)
}

// ConfigParsef creates a parse error for the given source with a formatted message
func ConfigParsef(path string, format string, args ...interface{}) *Error {
	return Newf(CodeConfigParse, format, args...).WithMeta("path", path)
}

// UnknownRarity reports a rarity literal outside the accepted set
func UnknownRarity(literal string, accepted []string) *Error {
	return Newf(CodeUnknownRarity, "unknown rarity %q, expected one of %q", literal, accepted).
		WithMeta("literal", literal).
		WithMeta("accepted", accepted)
}

// UnresolvedOfferingTable reports an expansion whose offering rate table is not loaded
func UnresolvedOfferingTable(expansionID, table string) *Error {
	return Newf(CodeUnresolvedOfferingTable, "expansion %s references unknown offering rate table %q", expansionID, table).
		WithMeta("expansion_id", expansionID).
		WithMeta("table", table)
}

// EmptyCardPool creates an empty card pool error
func EmptyCardPool(message string) *Error {
	return New(CodeEmptyCardPool, message)
}

// Unavailable creates an unavailable error
func Unavailable(message string) *Error {
	return New(CodeUnavailable, message)
}
