package services

import (
	"errors"
	"fmt"

	"pos-backend/entity"
)

var (
	ErrValidation        = errors.New("required fields missing or invalid")
	ErrInvalidID         = errors.New("id not valid")
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrStore             = errors.New("store failure")

	ErrMissingCredentials = errors.New("email and password are required")
	ErrWeakPassword       = errors.New("password does not meet security criteria")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid login credentials")
	ErrInvalidRole        = errors.New("role not valid")
)

// TransitionError reports a status change the pipeline does not allow.
type TransitionError struct {
	From entity.OrderStatus
	To   entity.OrderStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move order from %s to %s", e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStore, op, err)
}
