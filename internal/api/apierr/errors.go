package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/model"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/services/auth"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/services/catalog"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/services/suggest"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodePlayerNotFound     = "PLAYER_NOT_FOUND"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeUsernameExists     = "USERNAME_EXISTS"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeTeamFull           = "TEAM_FULL"
	CodeAlreadyInTeam      = "ALREADY_IN_TEAM"
	CodeNotInTeam          = "NOT_IN_TEAM"
	CodeInsufficientBudget = "INSUFFICIENT_BUDGET"
	CodeRosterConflict     = "ROSTER_CONFLICT"
	CodeStoreUnavailable   = "STORE_UNAVAILABLE"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrUserNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeUserNotFound, "User not found"}}
	case errors.Is(err, model.ErrUsernameExists):
		return &httpError{http.StatusConflict, APIError{CodeUsernameExists, "Username already exists"}}
	case errors.Is(err, model.ErrTeamFull):
		return &httpError{http.StatusConflict, APIError{CodeTeamFull, "Team already has 11 players"}}
	case errors.Is(err, model.ErrAlreadyInRoster):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyInTeam, "Player is already in your team"}}
	case errors.Is(err, model.ErrNotInRoster):
		return &httpError{http.StatusNotFound, APIError{CodeNotInTeam, "Player is not in your team"}}
	case errors.Is(err, model.ErrInsufficientBudget):
		return &httpError{http.StatusConflict, APIError{CodeInsufficientBudget, "Not enough budget to add this player"}}
	case errors.Is(err, model.ErrRosterConflict):
		return &httpError{http.StatusConflict, APIError{CodeRosterConflict, "Team was modified concurrently, try again"}}
	case errors.Is(err, model.ErrStoreUnavailable):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeStoreUnavailable, "Storage backend unavailable"}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid username or password"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}
	case errors.Is(err, auth.ErrUsernameTooShort),
		errors.Is(err, auth.ErrPasswordTooShort),
		errors.Is(err, auth.ErrPasswordNeedsUpper),
		errors.Is(err, auth.ErrPasswordNeedsLower),
		errors.Is(err, auth.ErrPasswordNeedsDigit):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, err.Error()}}

	// Map validation errors from the services
	case errors.Is(err, catalog.ErrNameRequired),
		errors.Is(err, catalog.ErrNegativeStats),
		errors.Is(err, suggest.ErrEmptyQuery):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, err.Error()}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewForbiddenError creates a forbidden error
func NewForbiddenError() error {
	return &httpError{http.StatusForbidden, APIError{CodeForbidden, "Admin access required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
