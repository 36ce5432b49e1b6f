package entities

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error patterns.
// These allow both errors.Is() checks and errors.As() for detailed information.
var (
	// ErrItemNotFound is returned when an exact-key lookup misses.
	ErrItemNotFound = errors.New("menu item not found")

	// ErrInvalidDefinition is returned when a registered definition fails
	// validation in strict mode.
	ErrInvalidDefinition = errors.New("invalid menu definition")

	// ErrBadCounter is returned when a side menu counter resolves to a
	// non-numeric, non-nil value.
	ErrBadCounter = errors.New("counter resolved to a non-numeric value")
)

// ItemNotFoundError indicates an exact owner/code lookup found nothing.
type ItemNotFoundError struct {
	Owner string
	Code  string
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("menu item not found: %s.%s", e.Owner, e.Code)
}

// Is implements error matching for errors.Is() checks.
func (e *ItemNotFoundError) Is(target error) bool {
	return target == ErrItemNotFound
}

// ValidationError names the owner whose definitions failed validation and
// the first failing rule.
type ValidationError struct {
	Owner  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid menu definition for %s: %s", e.Owner, e.Reason)
}

// Is implements error matching for errors.Is() checks.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidDefinition
}

// CounterError indicates a plugin-supplied counter produced an unusable
// value during side menu listing. This is a plugin programming error and is
// reported as a fault rather than coerced.
type CounterError struct {
	Value any
	Owner string
	Code  string
}

func (e *CounterError) Error() string {
	return fmt.Sprintf("counter for %s.%s resolved to non-numeric value %v", e.Owner, e.Code, e.Value)
}

// Is implements error matching for errors.Is() checks.
func (e *CounterError) Is(target error) bool {
	return target == ErrBadCounter
}
