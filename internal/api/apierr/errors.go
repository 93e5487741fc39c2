package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ewhitmore/scorepad-go/internal/model"
	"github.com/ewhitmore/scorepad-go/internal/services/access"
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
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeWrongTable      = "WRONG_TABLE"
	CodeInvalidPasscode = "INVALID_PASSCODE"
	CodeTableNotFound   = "TABLE_NOT_FOUND"
	CodePlayerNotFound  = "PLAYER_NOT_FOUND"
	CodeRosterFull      = "ROSTER_FULL"
	CodeRosterTooSmall  = "ROSTER_TOO_SMALL"
	CodeEmptyName       = "EMPTY_NAME"
	CodeDuplicateName   = "DUPLICATE_NAME"
	CodeWrongPhase      = "WRONG_PHASE"
	CodeGameFinished    = "GAME_FINISHED"
	CodeIncompleteHand  = "INCOMPLETE_HAND"
	CodeCategoryTaken   = "CATEGORY_TAKEN"
	CodeInvalidCategory = "INVALID_CATEGORY"
	CodeInvalidDieIndex = "INVALID_DIE_INDEX"
	CodeInvalidDie      = "INVALID_DIE"
	CodeInternalError   = "INTERNAL_ERROR"
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
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrTableNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeTableNotFound, "Table not found"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrRosterFull):
		return &httpError{http.StatusConflict, APIError{CodeRosterFull, "Roster is full"}}
	case errors.Is(err, model.ErrRosterTooSmall):
		return &httpError{http.StatusConflict, APIError{CodeRosterTooSmall, "Not enough players to start"}}
	case errors.Is(err, model.ErrEmptyName):
		return &httpError{http.StatusBadRequest, APIError{CodeEmptyName, "Player name must not be empty"}}
	case errors.Is(err, model.ErrDuplicateName):
		return &httpError{http.StatusConflict, APIError{CodeDuplicateName, "Player name already in use"}}
	case errors.Is(err, model.ErrWrongPhase):
		return &httpError{http.StatusConflict, APIError{CodeWrongPhase, "Command not allowed in this phase"}}
	case errors.Is(err, model.ErrGameFinished):
		return &httpError{http.StatusConflict, APIError{CodeGameFinished, "Game is already finished"}}
	case errors.Is(err, model.ErrIncompleteHand):
		return &httpError{http.StatusConflict, APIError{CodeIncompleteHand, "All five dice must be set before scoring"}}
	case errors.Is(err, model.ErrCategoryTaken):
		return &httpError{http.StatusConflict, APIError{CodeCategoryTaken, "Category already scored"}}
	case errors.Is(err, model.ErrInvalidCategory):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidCategory, "Unknown scoring category"}}
	case errors.Is(err, model.ErrInvalidDieIndex):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidDieIndex, "Die index must be 0-4"}}
	case errors.Is(err, model.ErrInvalidDie):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidDie, "Die value must be 1-6"}}

	// Map access errors
	case errors.Is(err, access.ErrInvalidPasscode):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidPasscode, "Invalid table passcode"}}
	case errors.Is(err, access.ErrInvalidToken):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired table key"}}
	case errors.Is(err, access.ErrWrongTable):
		return &httpError{http.StatusForbidden, APIError{CodeWrongTable, "Table key is for a different table"}}

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

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
