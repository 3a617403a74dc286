package services

import (
	"errors"

	"github.com/clubstem/registration-service/internal/validator"
)

// Primary-entity failures are loud; everything derived is best-effort and
// never surfaces past the statistics component.
var (
	// ErrEmailRegistered reports a duplicate normalized email. The check and
	// the uniqueness-enforcing write are separate store operations, so two
	// concurrent registrations can still both pass; that window is accepted.
	ErrEmailRegistered = errors.New("email already registered")

	// ErrInvalidRole reports a vote for a role outside the fixed enumerants.
	ErrInvalidRole = errors.New("invalid role")

	// ErrMissingVoter reports a vote request without a voter identifier.
	ErrMissingVoter = errors.New("missing voter identifier")

	// ErrAlreadyVoted reports a voter already present in the global voted set.
	ErrAlreadyVoted = errors.New("voter has already cast a vote")
)

// Use the validator's field-error types directly.
type ValidationError = validator.ValidationError
type ValidationErrors = validator.ValidationErrors
