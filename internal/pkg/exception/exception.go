package exception

import (
	"errors"
	"fmt"
)

// Kind is the machine-checkable classification carried by every error payload.
type Kind string

const (
	KindValidation        Kind = "validation_error"
	KindUpstreamTransport Kind = "upstream_transport_error"
	KindUpstreamResponse  Kind = "upstream_response_error"
	KindUnknownTool       Kind = "unknown_tool"
	KindProtocolEnvelope  Kind = "protocol_envelope_error"
	KindInternal          Kind = "internal_error"
)

// ApplicationError handles application level errors.
type ApplicationError struct {
	Kind    Kind
	Message string
	// Field names the offending argument of a validation error.
	Field string
	// Code is the JSON-RPC error code used when the error surfaces at protocol level.
	Code  int
	Cause error
}

// Error interface implementation.
func (e ApplicationError) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Message, e.Cause)
}

func (e ApplicationError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an ApplicationError of the same kind and message.
func (e ApplicationError) Is(target error) bool {
	var targetErr ApplicationError

	if !errors.As(target, &targetErr) {
		return false
	}

	return e.Kind == targetErr.Kind &&
		e.Message == targetErr.Message
}

// ErrorCode returns the JSON-RPC error code for an application error.
func (e ApplicationError) ErrorCode() int {
	return e.Code
}

// WithCause returns a copy of e wrapping cause.
func (e ApplicationError) WithCause(cause error) ApplicationError {
	e.Cause = cause

	return e
}

// KindOf classifies err. Errors that are not ApplicationError are internal.
func KindOf(err error) Kind {
	var appErr ApplicationError
	if errors.As(err, &appErr) && appErr.Kind != "" {
		return appErr.Kind
	}

	return KindInternal
}

// Validation builds a validation error for field.
func Validation(field, message string) ApplicationError {
	return ApplicationError{
		Kind:    KindValidation,
		Field:   field,
		Message: message,
	}
}
