package model

import "errors"

// Common errors used across the application
var (
	// Catalog errors
	ErrPlayerNotFound = errors.New("player not found")

	// User errors
	ErrUserNotFound   = errors.New("user not found")
	ErrUsernameExists = errors.New("username already exists")

	// Roster errors
	ErrTeamFull           = errors.New("team size limit reached")
	ErrInsufficientBudget = errors.New("insufficient budget")
	ErrAlreadyInRoster    = errors.New("player is already in the team")
	ErrNotInRoster        = errors.New("player not found in team")
	ErrRosterConflict     = errors.New("concurrent team update, retries exhausted")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Storage errors
	// ErrVersionConflict is returned by conditional roster writes when the
	// stored version no longer matches the caller's snapshot.
	ErrVersionConflict = errors.New("roster version conflict")
	// ErrStoreUnavailable wraps backend failures (timeouts, lost connections)
	// so callers can surface them distinctly from domain errors.
	ErrStoreUnavailable = errors.New("store unavailable")
)
