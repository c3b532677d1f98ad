package storage

import "errors"

// Common storage errors
var (
	// ErrStoreNotFound indicates that no store has the requested id
	ErrStoreNotFound = errors.New("store not found")

	// ErrStoreExists indicates that a store with this id was already created
	ErrStoreExists = errors.New("store already exists")

	// ErrRowOffset indicates that the store row count differs from the expected append offset
	ErrRowOffset = errors.New("unexpected row offset")
)
