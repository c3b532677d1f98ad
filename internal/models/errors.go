package models

import "errors"

// Ошибки, общие для клиента, коннектора и сервера
var (
	// ErrInvalidReference indicates that a store identifier cannot be parsed
	ErrInvalidReference = errors.New("invalid store reference")

	// ErrPermissionDenied indicates that the backend rejected access
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotFound indicates that the store or tab does not exist
	ErrNotFound = errors.New("store not found")

	// ErrSchemaConflict indicates that the stored header cannot be safely diffed
	ErrSchemaConflict = errors.New("schema conflict")

	// ErrTransient indicates a retryable failure (timeout, rate limit, 5xx)
	ErrTransient = errors.New("transient backend failure")

	// ErrUnsupported indicates that the backend does not implement the operation
	ErrUnsupported = errors.New("operation not supported by backend")

	// ErrDuplicateFieldKey indicates a malformed field list
	ErrDuplicateFieldKey = errors.New("duplicate field key")

	// ErrConfirmationRequired indicates that a destructive migration was not confirmed
	ErrConfirmationRequired = errors.New("full migration requires explicit confirmation")
)
