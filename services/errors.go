package services

import "errors"

// Common service errors. Controllers translate these into HTTP statuses;
// services wrap them with fmt.Errorf("%w: ...") for detail.
var (
	ErrNotFound   = errors.New("resource not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
)
