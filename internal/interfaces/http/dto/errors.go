package dto

import "net/http"

// Transport-level error codes not originating from the domain layer
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodeForbidden is used when the user lacks permission
	ErrCodeForbidden = "FORBIDDEN"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeRateLimited is used when rate limit is exceeded
	ErrCodeRateLimited = "RATE_LIMIT_EXCEEDED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes.
// Domain services emit these codes directly; the transport layer only
// translates them to a status line.
var ErrorCodeHTTPStatus = map[string]int{
	// Not found -> 404
	"NOT_FOUND":         http.StatusNotFound,
	"USER_NOT_FOUND":    http.StatusNotFound,
	"PROFILE_NOT_FOUND": http.StatusNotFound,
	"PROJECT_NOT_FOUND": http.StatusNotFound,
	"BOARD_NOT_FOUND":   http.StatusNotFound,
	"TASK_NOT_FOUND":    http.StatusNotFound,

	// Authentication -> 401
	"UNAUTHORIZED":        http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"TOKEN_EXPIRED":       http.StatusUnauthorized,
	"TOKEN_INVALID":       http.StatusUnauthorized,
	"TOKEN_MAX_REFRESH":   http.StatusUnauthorized,
	"TOKEN_ERROR":         http.StatusUnauthorized,

	// Authorization -> 403
	"FORBIDDEN": http.StatusForbidden,

	// Conflicts -> 409
	"ALREADY_EXISTS":       http.StatusConflict,
	"ALREADY_MEMBER":       http.StatusConflict,
	"EMAIL_TAKEN":          http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,

	// Validation and bad input -> 400
	"BAD_REQUEST":          http.StatusBadRequest,
	"INVALID_INPUT":        http.StatusBadRequest,
	"INVALID_EMAIL":        http.StatusBadRequest,
	"INVALID_PASSWORD":     http.StatusBadRequest,
	"INVALID_NAME":         http.StatusBadRequest,
	"INVALID_THEME":        http.StatusBadRequest,
	"INVALID_LANGUAGE":     http.StatusBadRequest,
	"INVALID_TITLE":        http.StatusBadRequest,
	"INVALID_STATUS":       http.StatusBadRequest,
	"INVALID_PRIORITY":     http.StatusBadRequest,
	"INVALID_POSITION":     http.StatusBadRequest,
	"INVALID_OWNER":        http.StatusBadRequest,
	"INVALID_CREATOR":      http.StatusBadRequest,
	"INVALID_USER_ID":      http.StatusBadRequest,
	"INVALID_PROJECT_ID":   http.StatusBadRequest,
	"INVALID_BOARD_ID":     http.StatusBadRequest,
	"INVALID_AVATAR":       http.StatusBadRequest,
	"INVALID_STATE":        http.StatusBadRequest,
	"NO_BOARD_FOUND":       http.StatusBadRequest,
	"UNSUPPORTED_PROVIDER": http.StatusBadRequest,
	"OAUTH_NOT_CONFIGURED": http.StatusBadRequest,

	// Uploads -> 415
	"UNSUPPORTED_MEDIA_TYPE": http.StatusUnsupportedMediaType,

	// Rate limiting -> 429
	"RATE_LIMIT_EXCEEDED": http.StatusTooManyRequests,

	// Internal -> 500
	"INTERNAL_ERROR":      http.StatusInternalServerError,
	"PASSWORD_HASH_ERROR": http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
