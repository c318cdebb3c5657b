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
	// ErrNotFound is returned when no item exists for an id
	ErrNotFound = errors.New("item not found")

	// ErrAlreadyExists is returned when adding an item whose id is already registered
	ErrAlreadyExists = errors.New("item already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// DuplicateItemError is returned by Add when the item's id is already in use.
type DuplicateItemError struct {
	ID string
}

func (e *DuplicateItemError) Error() string {
	return fmt.Sprintf("item with id %q already exists", e.ID)
}

func (e *DuplicateItemError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// ItemNotFoundError is returned by lookups and removals of an unknown id.
type ItemNotFoundError struct {
	ID string
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("item with id %q not found", e.ID)
}

func (e *ItemNotFoundError) Is(target error) bool {
	return target == ErrNotFound
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

// Helper functions for creating errors

// NewDuplicateItemError creates a new DuplicateItemError
func NewDuplicateItemError(id string) error {
	return &DuplicateItemError{ID: id}
}

// NewItemNotFoundError creates a new ItemNotFoundError
func NewItemNotFoundError(id string) error {
	return &ItemNotFoundError{ID: id}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
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

// ItemID returns the id carried by a DuplicateItemError or ItemNotFoundError
// anywhere in err's chain.
func ItemID(err error) (string, bool) {
	var dup *DuplicateItemError
	if errors.As(err, &dup) {
		return dup.ID, true
	}
	var nf *ItemNotFoundError
	if errors.As(err, &nf) {
		return nf.ID, true
	}
	return "", false
}
