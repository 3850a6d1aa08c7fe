// Package response writes the JSON envelope shared by every BFF endpoint.
package response

import (
	"net/http"

	domainerrors "tradefood/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// CodeInvalidInput marks a request body or query that could not be bound.
const CodeInvalidInput = "INVALID_INPUT"

// Response is the envelope of every BFF reply. Data is set on success, Error
// on failure.
type Response struct {
	Success bool                    `json:"success"`
	Code    int                     `json:"code"`
	Message string                  `json:"message"`
	Data    any                     `json:"data,omitempty"`
	Error   *domainerrors.ErrorInfo `json:"error,omitempty"`
}

// Success writes data with the given status.
func Success(c echo.Context, status int, data any, message string) error {
	return c.JSON(status, Response{
		Success: true,
		Code:    status,
		Message: orDefault(message, "Success"),
		Data:    data,
	})
}

func OK(c echo.Context, data any, message string) error {
	return Success(c, http.StatusOK, data, message)
}

func Created(c echo.Context, data any, message string) error {
	return Success(c, http.StatusCreated, data, message)
}

// Error writes a failure envelope. An empty message falls back to the
// status text.
func Error(c echo.Context, status int, code, message, details string) error {
	return c.JSON(status, Response{
		Code:    status,
		Message: orDefault(message, http.StatusText(status)),
		Error:   &domainerrors.ErrorInfo{Code: code, Details: details},
	})
}

// AppError renders an application error. Details of server-side failures
// stay in the logs.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	status := appErr.HTTPCode()
	details := appErr.Details()
	if status >= http.StatusInternalServerError {
		details = ""
	}

	return Error(c, status, appErr.ErrorCode(), appErr.Message(), details)
}

// InvalidInput answers 400 for a request echo could not bind.
func InvalidInput(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, CodeInvalidInput, message, "")
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}

	return s
}
