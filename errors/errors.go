/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"reflect"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when a requested item or file is missing
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrHandlerNotFound is returned when an item's type has no exact or ancestor binding
	ErrHandlerNotFound = errors.New("handler not found for item type")

	// ErrUnknownEntity is returned when an entity name has no registered factory
	ErrUnknownEntity = errors.New("unknown entity type")

	// ErrDecode is returned when a raw record cannot be decoded into its entity
	ErrDecode = errors.New("decode failed")

	// ErrProgramming is matched by every fault raised for misuse of the API contract.
	// These are panicked, not returned.
	ErrProgramming = errors.New("programming error")
)

// NotFoundError represents an error when something is not found
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

// HandlerNotFoundError is the configuration fault raised when an item's runtime
// type matches no registered binding. Type is nil for a nil item.
type HandlerNotFoundError struct {
	Type reflect.Type
}

func (e *HandlerNotFoundError) Error() string {
	if e.Type == nil {
		return "no handler registered for nil item"
	}
	return fmt.Sprintf("no handler registered for type %s: register it or one of its interfaces before dispatching", e.Type)
}

func (e *HandlerNotFoundError) Is(target error) bool {
	return target == ErrHandlerNotFound
}

// UnknownEntityError is returned when no factory is registered under Name
type UnknownEntityError struct {
	Name string
}

func (e *UnknownEntityError) Error() string {
	return fmt.Sprintf("no entity registered with name %q", e.Name)
}

func (e *UnknownEntityError) Is(target error) bool {
	return target == ErrUnknownEntity
}

// DecodeError wraps the failure to decode a raw record into the named entity
type DecodeError struct {
	Entity string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode entity %q: %v", e.Entity, e.Err)
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IndexOutOfRangeError is panicked when a binding index falls outside the registry
type IndexOutOfRangeError struct {
	Index int
	Size  int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("binding index %d out of range [0, %d)", e.Index, e.Size)
}

func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrProgramming
}

// BuilderStateError is panicked when a one-to-many builder is used out of order
type BuilderStateError struct {
	Type    reflect.Type
	Message string
}

func (e *BuilderStateError) Error() string {
	return fmt.Sprintf("one-to-many builder for %s: %s", e.Type, e.Message)
}

func (e *BuilderStateError) Is(target error) bool {
	return target == ErrProgramming
}

// SelectorMismatchError is panicked when a selector returns a handler that is not
// part of the block registered for the item's type
type SelectorMismatchError struct {
	Type     reflect.Type
	Selected string
	Handlers []string
}

func (e *SelectorMismatchError) Error() string {
	return fmt.Sprintf("selector returned %s which is not among the handlers %v registered for %s",
		e.Selected, e.Handlers, e.Type)
}

func (e *SelectorMismatchError) Is(target error) bool {
	return target == ErrProgramming
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(kind, key string) error {
	return &NotFoundError{Type: kind, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewHandlerNotFoundError creates a new HandlerNotFoundError
func NewHandlerNotFoundError(t reflect.Type) error {
	return &HandlerNotFoundError{Type: t}
}

// NewUnknownEntityError creates a new UnknownEntityError
func NewUnknownEntityError(name string) error {
	return &UnknownEntityError{Name: name}
}

// NewDecodeError creates a new DecodeError
func NewDecodeError(entity string, err error) error {
	return &DecodeError{Entity: entity, Err: err}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsHandlerNotFound checks if an error is a missing handler configuration fault
func IsHandlerNotFound(err error) bool {
	return errors.Is(err, ErrHandlerNotFound)
}

// IsUnknownEntity checks if an error is an unknown entity error
func IsUnknownEntity(err error) bool {
	return errors.Is(err, ErrUnknownEntity)
}

// IsDecode checks if an error is a decode error
func IsDecode(err error) bool {
	return errors.Is(err, ErrDecode)
}

// IsProgramming reports whether a recovered panic value or error is an API misuse fault
func IsProgramming(v any) bool {
	err, ok := v.(error)
	return ok && errors.Is(err, ErrProgramming)
}
