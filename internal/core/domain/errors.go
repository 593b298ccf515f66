package domain

import "errors"

var (
	// ErrValidation marks malformed or missing input. Never retried.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidTransition marks a booking status change that does not follow
	// the lifecycle graph.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrStoreUnavailable marks a persistence failure. Fatal for writes;
	// informational reads degrade to empty results instead.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrUnknownProduct marks a checkout request for a product key outside
	// the fixed catalog.
	ErrUnknownProduct = errors.New("unknown product")
	// ErrCollaborator marks a failure of an external collaborator on a path
	// where it must surface (checkout). Chat and insight generation degrade
	// to fallbacks instead.
	ErrCollaborator = errors.New("external collaborator unavailable")

	ErrForbidden       = errors.New("access forbidden")
	ErrBookingNotFound = errors.New("booking not found")
	ErrUserNotFound    = errors.New("user not found")
)
