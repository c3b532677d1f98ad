package forms

import "errors"

var (
	// ErrUnknownField indicates a submitted value for a key the form does not have
	ErrUnknownField = errors.New("unknown field")

	// ErrInvalidValue indicates a submitted value that does not fit the field type
	ErrInvalidValue = errors.New("invalid field value")

	// ErrStalePlan indicates that the form was applied again after the plan was previewed
	ErrStalePlan = errors.New("form changed since preview")
)
