package dto

import (
	"net/http"
	"strings"
)

// Domain error codes that reach the HTTP layer
const (
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeConflict      = "CONFLICT"
	ErrCodeInUse         = "IN_USE"
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeRenderFailed  = "RENDER_FAILED"
)

// Codes produced by the HTTP layer itself
const (
	ErrCodeBadRequest      = "BAD_REQUEST"
	ErrCodeInvalidJSON     = "INVALID_JSON"
	ErrCodeInternal        = "INTERNAL_ERROR"
	ErrCodeRequestTooLarge = "REQUEST_TOO_LARGE"
	ErrCodeTimeout         = "REQUEST_TIMEOUT"
)

// invalidPrefix marks field-level rejections such as INVALID_PHONE or INVALID_BARCODE
const invalidPrefix = "INVALID_"

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeValidation:    http.StatusBadRequest,
	ErrCodeAlreadyExists: http.StatusBadRequest,
	ErrCodeConflict:      http.StatusBadRequest,
	ErrCodeInUse:         http.StatusBadRequest,
	ErrCodeInvalidInput:  http.StatusBadRequest,
	ErrCodeBadRequest:    http.StatusBadRequest,
	ErrCodeInvalidJSON:   http.StatusBadRequest,

	ErrCodeNotFound: http.StatusNotFound,

	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,
	ErrCodeTimeout:         http.StatusServiceUnavailable,

	ErrCodeRenderFailed: http.StatusInternalServerError,
	ErrCodeInternal:     http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown INVALID_* codes are client errors; anything else unknown is a 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, invalidPrefix) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// IsKnownCode reports whether the code's message is safe to show to clients.
func IsKnownCode(code string) bool {
	_, ok := ErrorCodeHTTPStatus[code]
	return ok || strings.HasPrefix(code, invalidPrefix)
}
