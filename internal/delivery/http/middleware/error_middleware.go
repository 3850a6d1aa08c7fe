package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "tradefood/internal/delivery/context"
	"tradefood/internal/delivery/http/response"
	domainerrors "tradefood/internal/domain/errors"
	"tradefood/internal/errors"

	"github.com/labstack/echo/v4"
)

const codeHTTPError = "HTTP_ERROR"

// ErrorMiddleware renders handler errors as the JSON envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	appErr := m.classify(err, c)
	if writeErr := response.AppError(c, appErr); writeErr != nil {
		m.logger.WarnContext(c.Request().Context(), "failed to write error response", slog.Any("error", writeErr))
	}
}

// classify maps err onto an application error, logging server-side failures
// on the request logger.
func (m *ErrorMiddleware) classify(err error, c echo.Context) domainerrors.AppError {
	req := c.Request()
	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)

	if appErr, ok := domainerrors.AsAppError(err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.ErrorContext(req.Context(), "request failed",
				slog.String("code", appErr.ErrorCode()),
				slog.String("path", req.URL.Path),
				slog.Any("error", err),
			)
		}

		return appErr
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return domainerrors.NewBaseError(httpErr.Code, codeHTTPError, httpMessage(httpErr), "")
	}

	logger.ErrorContext(req.Context(), "Unhandled error",
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Any("error", err),
	)

	return domainerrors.ErrInternalError
}

func httpMessage(httpErr *echo.HTTPError) string {
	switch msg := httpErr.Message.(type) {
	case nil:
		return http.StatusText(httpErr.Code)
	case string:
		return msg
	default:
		return fmt.Sprint(msg)
	}
}
