package database

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a document does not exist in the store.
var ErrNotFound = errors.New("document not found")

// StoreError wraps a failed read or write against the document store.
// Op is "read" or "write".
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ReadError wraps err as a store read failure.
func ReadError(err error) error {
	return &StoreError{Op: "read", Err: err}
}

// WriteError wraps err as a store write failure.
func WriteError(err error) error {
	return &StoreError{Op: "write", Err: err}
}
