package storage

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrNotInitialized is returned when a provider is used before Init/Load.
	ErrNotInitialized = errors.New("storage not initialized, run 'remind init' first")

	// ErrCorruptData is returned when the backing store exists but its contents
	// cannot be interpreted as a reminder document. The sweep treats it as a
	// signal to reset the store rather than a fatal error.
	ErrCorruptData = errors.New("storage contents are corrupt")
)
