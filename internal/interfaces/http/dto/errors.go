package dto

import "net/http"

// Error codes surfaced by this service. Domain error codes pass through
// unchanged so the frontend can match on them.
const (
	// ErrCodeSessionExpired is used when the session token is missing or expired
	ErrCodeSessionExpired = "SESSION_EXPIRED"
	// ErrCodeFetchFailed is used when assembling data from the store fails
	ErrCodeFetchFailed = "FETCH_FAILED"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeUnauthorized is used when the caller lacks permission
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "INVALID_INPUT"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeSessionExpired: http.StatusUnauthorized,
	ErrCodeFetchFailed:    http.StatusInternalServerError,
	ErrCodeNotFound:       http.StatusNotFound,
	ErrCodeUnauthorized:   http.StatusUnauthorized,
	ErrCodeInvalidInput:   http.StatusBadRequest,
	ErrCodeInternal:       http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
