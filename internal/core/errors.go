package core

import (
	"errors"
	"fmt"
)

// ErrSubmissionNotFound reports a turn against an unknown submission id.
// It maps to a 404 and is returned before any write happens.
var ErrSubmissionNotFound = errors.New("submission not found")

// ValidationError reports blank user input. Maps to a 400.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must be provided", e.Field)
}

// UpstreamError wraps a failure from the language-model collaborator.
// Maps to a 500.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream model call failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// StorageError wraps a conversation-store failure that is fatal to the
// request. Maps to a 500.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
