package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"hwidstore/internal/model"
	"hwidstore/internal/services/auth"
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
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeHwidNotFound   = "HWID_NOT_FOUND"
	CodeStorageError   = "STORAGE_ERROR"
	CodeInternalError  = "INTERNAL_ERROR"
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

	switch {
	case errors.Is(err, model.ErrMissingHWID):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Missing HWID in request"}}
	case errors.Is(err, model.ErrRecordNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeHwidNotFound, "HWID not found"}}

	case errors.Is(err, auth.ErrInvalidToken):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid API key"}}
	case errors.Is(err, auth.ErrInvalidAdminKey):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid admin key"}}

	// Storage detail stays in the logs, not the response
	case errors.Is(err, model.ErrStorageFailure):
		return &httpError{http.StatusInternalServerError, APIError{CodeStorageError, "Failed to save database"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError(message string) error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
