package handler

import (
	"net/http"

	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest     = apierr.CodeInvalidRequest
	CodeUnauthorized       = apierr.CodeUnauthorized
	CodeForbidden          = apierr.CodeForbidden
	CodePlayerNotFound     = apierr.CodePlayerNotFound
	CodeUserNotFound       = apierr.CodeUserNotFound
	CodeUsernameExists     = apierr.CodeUsernameExists
	CodeInvalidCredentials = apierr.CodeInvalidCredentials
	CodeTeamFull           = apierr.CodeTeamFull
	CodeAlreadyInTeam      = apierr.CodeAlreadyInTeam
	CodeNotInTeam          = apierr.CodeNotInTeam
	CodeInsufficientBudget = apierr.CodeInsufficientBudget
	CodeRosterConflict     = apierr.CodeRosterConflict
	CodeStoreUnavailable   = apierr.CodeStoreUnavailable
	CodeInternalError      = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return apierr.NewUnauthorizedError()
}

// NewForbiddenError creates a forbidden error
func NewForbiddenError() error {
	return apierr.NewForbiddenError()
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
