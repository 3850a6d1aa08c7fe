package errors

import "tradefood/internal/errors"

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "EMPTY_CART"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response is the envelope written by the HTTP error handler. It mirrors
// delivery/http/response.Response so clients see one shape.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// AsAppError extracts the AppError carried by err, if any.
func AsAppError(err error) (AppError, bool) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}
