package store

import (
	"errors"
	"fmt"
)

// Provider error codes.
const (
	// CodeNoRows is returned when a single-row read matched nothing.
	CodeNoRows = "PGRST116"
	// CodeUniqueViolation is a unique constraint violation.
	CodeUniqueViolation = "23505"
	// CodeForeignKeyViolation is a foreign key violation.
	CodeForeignKeyViolation = "23503"
	// CodeInvalidCredentials is a rejected sign-in.
	CodeInvalidCredentials = "invalid_credentials"
	// CodeTransport is a failure to reach the provider at all.
	CodeTransport = "transport_error"
)

// Error is a failure reported by the store provider.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Hint    string `json:"hint,omitempty"`
	// Status is the HTTP status when the provider is reached over HTTP.
	Status int `json:"-"`
}

func (e *Error) Error() string {
	return e.Message
}

// AccessError is returned by entity access functions. Its text is
// "failed to <op>: <provider message>".
type AccessError struct {
	Op  string
	Err error
}

// Fail wraps a provider failure for operation op.
func Fail(op string, err error) error {
	return &AccessError{Op: op, Err: err}
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("failed to %s: %s", e.Op, MessageOf(e.Err))
}

func (e *AccessError) Unwrap() error {
	return e.Err
}

// MessageOf returns the provider's message for err.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var access *AccessError
	if errors.As(err, &access) {
		return MessageOf(access.Err)
	}
	var provider *Error
	if errors.As(err, &provider) {
		return provider.Message
	}
	return err.Error()
}

// CodeOf returns the provider error code carried by err, if any.
func CodeOf(err error) string {
	var provider *Error
	if errors.As(err, &provider) {
		return provider.Code
	}
	return ""
}

// IsNoRows reports whether err means a single-row read matched nothing.
func IsNoRows(err error) bool {
	return CodeOf(err) == CodeNoRows
}

// IsUniqueViolation reports whether err is a unique constraint violation.
func IsUniqueViolation(err error) bool {
	return CodeOf(err) == CodeUniqueViolation
}
