// Package handler contains the echo handlers of the storefront BFF.
package handler

import (
	"net/http"

	"tradefood/internal/delivery/http/response"
	deliverymiddleware "tradefood/internal/delivery/middleware"
	domainerrors "tradefood/internal/domain/errors"
	"tradefood/internal/domain/state"
	"tradefood/internal/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

func session(c echo.Context) (*state.Session, error) {
	sess, err := deliverymiddleware.GetSession(c)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return sess, nil
}

// pathID reads a numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	var id int64
	if err := echo.PathParamsBinder(c).MustInt64(name, &id).BindError(); err != nil || id <= 0 {
		return 0, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid " + name))
	}

	return id, nil
}

// optionalQueryID reads a numeric query parameter, nil when absent.
func optionalQueryID(c echo.Context, name string) (*int64, error) {
	if c.QueryParam(name) == "" {
		return nil, nil
	}

	var id int64
	if err := echo.QueryParamsBinder(c).Int64(name, &id).BindError(); err != nil || id <= 0 {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid " + name))
	}

	return &id, nil
}
