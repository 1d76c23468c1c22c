package domain

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEventNotFound     = errors.New("event not found")
	ErrForbidden         = errors.New("access forbidden")
	ErrSelfRoleChange    = errors.New("you cannot change your own role")
	ErrInvalidRole       = errors.New("invalid role")
	ErrInvalidPassphrase = errors.New("invalid household passphrase")
	ErrEmptyTitle        = errors.New("title is required")
	ErrEmptyName         = errors.New("name is required")
	ErrInvalidEventType  = errors.New("invalid event type")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidNavigation = errors.New("invalid navigation")
	ErrSnapshotNotFound  = errors.New("snapshot not found")
	ErrPersistence       = errors.New("persistence failure")
	ErrRequestInFlight   = errors.New("a request with this idempotency key is already in progress")
)

// ErrSuggestionUnavailable is returned whenever an idea could not be produced,
// whatever the underlying cause.
var ErrSuggestionUnavailable = errors.New("Could not generate an idea. Please try again.")
