package storage

import "errors"

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no backend credential is stored
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrFormNotFound indicates that no snapshot was saved for the form
	ErrFormNotFound = errors.New("form snapshot not found")

	// ErrStoreRefNotFound indicates that the form is not linked to a store
	ErrStoreRefNotFound = errors.New("store reference not found")

	// ErrJournalNotFound indicates that no interrupted migration is recorded
	ErrJournalNotFound = errors.New("migration journal not found")
)
