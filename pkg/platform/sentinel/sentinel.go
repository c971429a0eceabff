// Package sentinel holds the storage-level errors shared by every store.
// Services translate them into domain errors at their boundary.
package sentinel

import "errors"

var (
	// ErrNotFound: the row, or a row it references, does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict: a unique constraint rejected the write.
	ErrConflict = errors.New("conflict")
)
