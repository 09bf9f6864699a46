package lesson

import (
	"errors"
	"fmt"
	"strings"
)

// Store errors returned by the persistence layer. They live here so the
// pipeline and its tests do not depend on the storage implementation.
var (
	// ErrNotFound indicates no package exists for the descriptor key.
	ErrNotFound = errors.New("lesson package not found")

	// ErrAlreadyExists indicates a package for the key was already
	// persisted. PutPackage returns it on the losing side of a race.
	ErrAlreadyExists = errors.New("lesson package already exists")
)

// StageError marks a whole-stage failure and records which stage died.
type StageError struct {
	Stage string // "skeleton" or "enhance"
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// FieldViolation is one structural problem found during validation.
type FieldViolation struct {
	Field  string
	Reason string
}

func (v FieldViolation) String() string {
	return v.Field + ": " + v.Reason
}

// ValidationError aggregates every violation found in one pass so the
// retry prompt (and the logs) can show all problems at once.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return "invalid content: " + strings.Join(parts, "; ")
}
