package usecase

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrStaleTransition = errors.New("application changed concurrently, expected status no longer holds")
	ErrInternal        = errors.New("internal error")
)
