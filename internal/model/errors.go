// Package model error taxonomy
package model

import "fmt"

// ValidationError input violates a margin position constraint
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements error
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s %s", e.Field, e.Reason)
}

// PersistenceError storage operation failure, not found is never one of these
type PersistenceError struct {
	Op  string
	Err error
}

// Error implements error
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying storage error
func (e *PersistenceError) Unwrap() error {
	return e.Err
}
