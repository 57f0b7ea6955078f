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
	// ErrNotFound is returned when a contact or address book is not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when attempting to create a contact that already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrPermissionDenied is returned when an address book does not allow an operation
	ErrPermissionDenied = errors.New("permission denied")
)

// NotFoundError represents an error when a contact or address book is not found
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError represents an error when a contact already exists
type AlreadyExistsError struct {
	Type string
	Key  string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with key %q already exists", e.Type, e.Key)
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

// PermissionDeniedError is returned when an address book's permission
// bitmask does not include the bit an operation needs.
type PermissionDeniedError struct {
	Operation   string
	AddressBook string
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("%s not permitted on address book %q", e.Operation, e.AddressBook)
}

func (e *PermissionDeniedError) Is(target error) bool {
	return target == ErrPermissionDenied
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(entityType, key string) error {
	return &NotFoundError{Type: entityType, Key: key}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(entityType, key string) error {
	return &AlreadyExistsError{Type: entityType, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewPermissionDeniedError creates a new PermissionDeniedError
func NewPermissionDeniedError(operation, addressBook string) error {
	return &PermissionDeniedError{Operation: operation, AddressBook: addressBook}
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

// IsPermissionDenied checks if an error is a permission denied error
func IsPermissionDenied(err error) bool {
	return errors.Is(err, ErrPermissionDenied)
}
