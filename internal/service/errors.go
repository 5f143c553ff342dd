package service

import (
	"errors"
	"fmt"
)

// Service-level error taxonomy. Handlers translate these to HTTP codes;
// anything outside the taxonomy is an unexpected error and becomes a 500.
var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrTypeInUse          = errors.New("type is referenced by existing farms")
	ErrFarmNotFound       = errors.New("farm not found")
	ErrUnknownKind        = errors.New("unknown production kind")
)

// MissingFieldError marks a required input that was not supplied.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "missing required field: " + e.Field
}

// InvalidReferenceError marks a supplied foreign key that resolves to nothing.
type InvalidReferenceError struct {
	Entity string
	ID     uint
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("referenced %s %d does not exist", e.Entity, e.ID)
}
