package domain

import "errors"

var (
	// ErrNotFound covers both a genuinely missing entry and an entry owned
	// by another user. Collapsing the two means the API never reveals
	// whether someone else's entry id exists.
	ErrNotFound           = errors.New("not found")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidInput       = errors.New("invalid input")
	ErrClassifier         = errors.New("mood analysis failed")
	ErrSaveInProgress     = errors.New("another save is already in progress")
)
