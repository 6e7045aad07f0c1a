package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden: user does not have permission for this action")

	ErrMessageNotFound = fmt.Errorf("message %w", ErrNotFound)
	ErrContactNotFound = fmt.Errorf("contact %w", ErrNotFound)
	ErrNewsNotFound    = fmt.Errorf("news %w", ErrNotFound)
)

// ValidationError reports missing or malformed client input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func invalid(msg string) error {
	return &ValidationError{Msg: msg}
}
