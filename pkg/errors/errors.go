package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed domain error with HTTP awareness.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors for common scenarios.
var (
	ErrUnauthorized = New("UNAUTHORIZED", http.StatusUnauthorized, "unauthorized")
	ErrValidation   = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrInternal     = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
	ErrUpstream     = New("UPSTREAM_ERROR", http.StatusBadGateway, "upstream request failed")
	ErrCacheMiss    = errors.New("cache miss")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return Wrap(err, ErrUpstream.Code, ErrUpstream.Status, ue.Error())
	}
	var ee *EnrollError
	if errors.As(err, &ee) {
		return Wrap(err, ErrUpstream.Code, ErrUpstream.Status, ee.Error())
	}
	var se *SchemaError
	if errors.As(err, &se) {
		return Wrap(err, "SCHEMA_ERROR", http.StatusBadGateway, se.Error())
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// UpstreamError signals a non-success HTTP status from the Maplewood backend
// on a read operation. The message format is part of the caller contract.
type UpstreamError struct {
	Resource   string
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Failed to fetch %s: %d", e.Resource, e.StatusCode)
}

// NewUpstreamError builds an UpstreamError for the given resource and status.
func NewUpstreamError(resource string, status int) *UpstreamError {
	return &UpstreamError{Resource: resource, StatusCode: status}
}

// EnrollError is the hard-failure variant of the enrollment mutation. The 409
// conflict path never produces it; only unexpected statuses do.
type EnrollError struct {
	StatusCode int
}

func (e *EnrollError) Error() string {
	return fmt.Sprintf("Failed to enroll in course: %d", e.StatusCode)
}

// SchemaError reports the first violation found while decoding an upstream
// payload. Payloads that do not fully satisfy their contract are rejected as
// a whole; no partially populated value escapes the decode step.
type SchemaError struct {
	Resource string
	Path     string
	Reason   string
}

func (e *SchemaError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("invalid %s payload at %s: %s", e.Resource, e.Path, e.Reason)
	}
	return fmt.Sprintf("invalid %s payload: %s", e.Resource, e.Reason)
}

// NewSchemaError builds a SchemaError.
func NewSchemaError(resource, path, reason string) *SchemaError {
	return &SchemaError{Resource: resource, Path: path, Reason: reason}
}
