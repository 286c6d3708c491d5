package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValueIsRequired    = errors.New("value is required")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrObjectNotFound     = errors.New("object not found")
	ErrConflict           = errors.New("object already exists")
	ErrGatewayUnavailable = errors.New("shipping gateway call failed")
	ErrUnauthorized       = errors.New("unauthorized")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%s", v), "\n", " ")
}

// ValueIsRequiredError indicates a required value was missing from input.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, sanitize(e.ParamName), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a value was present but failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, sanitize(e.ParamName), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError indicates a local lookup miss.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, sanitize(e.ParamName), sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ConflictError indicates a duplicate business key.
type ConflictError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewConflictError(paramName string, id any) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id}
}

func NewConflictErrorWithCause(paramName string, id any, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrConflict, sanitize(e.ParamName), sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrConflict, sanitize(e.ID))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// GatewayError indicates a transport failure or non-success response from the
// external shipping aggregator. StatusCode is zero for transport-level failures.
type GatewayError struct {
	Operation  string
	StatusCode int
	Detail     string
	Cause      error
}

func NewGatewayError(operation string, statusCode int, detail string) *GatewayError {
	return &GatewayError{Operation: operation, StatusCode: statusCode, Detail: detail}
}

func NewGatewayErrorWithCause(operation string, cause error) *GatewayError {
	return &GatewayError{Operation: operation, Cause: cause}
}

func (e *GatewayError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: operation is: %s (cause: %s)",
			ErrGatewayUnavailable, sanitize(e.Operation), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: operation is: %s, status is: %d, detail is: %s",
		ErrGatewayUnavailable, sanitize(e.Operation), e.StatusCode, sanitize(e.Detail))
}

func (e *GatewayError) Unwrap() error {
	return ErrGatewayUnavailable
}

// UnauthorizedError indicates a missing/invalid session token or a failed
// credential exchange.
type UnauthorizedError struct {
	Reason string
	Cause  error
}

func NewUnauthorizedError(reason string) *UnauthorizedError {
	return &UnauthorizedError{Reason: reason}
}

func NewUnauthorizedErrorWithCause(reason string, cause error) *UnauthorizedError {
	return &UnauthorizedError{Reason: reason, Cause: cause}
}

func (e *UnauthorizedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrUnauthorized, sanitize(e.Reason), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrUnauthorized, sanitize(e.Reason))
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}
