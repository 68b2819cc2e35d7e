package domain

import "errors"

// Common domain errors
var (
	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrUserNotFound is returned when a referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidContribution is returned when a savings contribution is
	// zero or negative.
	ErrInvalidContribution = errors.New("contribution must be greater than zero")
	// ErrContributionExceedsTarget is returned when a contribution would
	// push a goal past its target amount.
	ErrContributionExceedsTarget = errors.New("contribution would exceed the goal target")
	// ErrValidation is returned when input validation fails.
	ErrValidation = errors.New("validation error")
)
