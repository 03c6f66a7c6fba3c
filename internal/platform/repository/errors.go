package repository

import (
	"errors"
	"fmt"
)

var (
	ErrStoreUnavailable    = errors.New("store unavailable")
	ErrConstraintViolation = errors.New("constraint violation")
)

// ConstraintViolationError reports a uniqueness, foreign-key or check
// constraint rejected by the store. Constraint is empty when the store did not
// name it.
type ConstraintViolationError struct {
	Constraint string
	Err        error
}

func (e *ConstraintViolationError) Error() string {
	if e.Constraint == "" {
		return fmt.Sprintf("constraint violation: %v", e.Err)
	}
	return fmt.Sprintf("constraint %q violated: %v", e.Constraint, e.Err)
}

func (e *ConstraintViolationError) Unwrap() error {
	return e.Err
}

func (e *ConstraintViolationError) Is(target error) bool {
	return target == ErrConstraintViolation
}

// Unavailable wraps cause so that errors.Is(err, ErrStoreUnavailable) holds
// while the driver error stays reachable through errors.As.
func Unavailable(op string, cause error) error {
	return &unavailableError{op: op, cause: cause}
}

type unavailableError struct {
	op    string
	cause error
}

func (e *unavailableError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("%s: %v", e.op, ErrStoreUnavailable)
	}
	return fmt.Sprintf("%s: %v: %v", e.op, ErrStoreUnavailable, e.cause)
}

func (e *unavailableError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrStoreUnavailable}
	}
	return []error{ErrStoreUnavailable, e.cause}
}
