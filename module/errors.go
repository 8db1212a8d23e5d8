package module

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error patterns.
// These allow both errors.Is() checks and errors.As() for detailed information.
var (
	// ErrNotFound is returned when no local or built-in unit carries a
	// requested name.
	ErrNotFound = errors.New("module not found")

	// ErrUnitFailed is returned when a chain references a unit whose load
	// or metadata extraction failed during discovery.
	ErrUnitFailed = errors.New("unit failed to load")

	// ErrTransformFailed is returned when a unit's entry point fails
	// during chain execution.
	ErrTransformFailed = errors.New("transform failed")
)

// NotFoundError indicates a named unit exists in neither tier.
type NotFoundError struct {
	Kind Kind
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s module not found: %s", e.Kind, e.Name)
}

// Is implements error matching for errors.Is() checks.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// TransformError indicates a chain step's entry point failed. The chain
// aborts at the failing step; completed earlier steps produced only new
// text values, so there is nothing to roll back.
type TransformError struct {
	Step int
	Name string
	Err  error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("chain step %d (%s): %v", e.Step, e.Name, e.Err)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// Is implements error matching for errors.Is() checks.
func (e *TransformError) Is(target error) bool {
	return target == ErrTransformFailed
}
