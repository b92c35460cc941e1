/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when the remote resource does not exist
	ErrNotFound = errors.New("resource not found")

	// ErrAlreadyExists is returned when attempting to create a resource that already exists
	ErrAlreadyExists = errors.New("resource already exists")

	// ErrInvalidInput is returned when client-side validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidState is returned when the resource is not in a state that allows the operation
	ErrInvalidState = errors.New("invalid resource state")

	// ErrDeclined is returned when a confirmation prompt was answered negatively
	ErrDeclined = errors.New("operation declined")

	// ErrEndpointUnreachable is returned when the service endpoint name could not be resolved
	ErrEndpointUnreachable = errors.New("service endpoint unreachable")

	// ErrNoIndexMap is returned when no index map is found for a type
	ErrNoIndexMap = errors.New("no index map found for type")
)

// NotFoundError represents an error when a resource is not found.
// Message and Err carry the service's reply when the error came from a remote call.
type NotFoundError struct {
	Type    string
	Key     string
	Message string
	Err     error
}

func (e *NotFoundError) Error() string {
	return withMessage(fmt.Sprintf("%s with key %q not found", e.Type, e.Key), e.Message)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError represents an error when a resource already exists
type AlreadyExistsError struct {
	Type    string
	Key     string
	Message string
	Err     error
}

func (e *AlreadyExistsError) Error() string {
	return withMessage(fmt.Sprintf("%s with key %q already exists", e.Type, e.Key), e.Message)
}

func (e *AlreadyExistsError) Unwrap() error {
	return e.Err
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// InvalidStateError represents an operation rejected because of the resource state
type InvalidStateError struct {
	Operation string
	State     string
	Err       error
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s rejected: %s", e.Operation, e.State)
}

func (e *InvalidStateError) Unwrap() error {
	return e.Err
}

func (e *InvalidStateError) Is(target error) bool {
	return target == ErrInvalidState
}

// DeclinedError is returned when the user did not confirm a mutating operation
type DeclinedError struct {
	Operation string
	Target    string
}

func (e *DeclinedError) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("%s was not confirmed", e.Operation)
	}
	return fmt.Sprintf("%s on %q was not confirmed", e.Operation, e.Target)
}

func (e *DeclinedError) Is(target error) bool {
	return target == ErrDeclined
}

func withMessage(base, message string) string {
	if message == "" {
		return base
	}
	return base + ": " + message
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resourceType, key string) error {
	return &NotFoundError{Type: resourceType, Key: key}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(resourceType, key string) error {
	return &AlreadyExistsError{Type: resourceType, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewInvalidStateError creates a new InvalidStateError
func NewInvalidStateError(operation, state string) error {
	return &InvalidStateError{Operation: operation, State: state}
}

// NewDeclinedError creates a new DeclinedError
func NewDeclinedError(operation, target string) error {
	return &DeclinedError{Operation: operation, Target: target}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsInvalidState checks if an error is an invalid state error
func IsInvalidState(err error) bool {
	return errors.Is(err, ErrInvalidState)
}

// IsDeclined checks if an error comes from a declined confirmation
func IsDeclined(err error) bool {
	return errors.Is(err, ErrDeclined)
}

// IsEndpointUnreachable checks if an error is a name resolution failure
func IsEndpointUnreachable(err error) bool {
	return errors.Is(err, ErrEndpointUnreachable)
}
