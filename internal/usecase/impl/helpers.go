// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"net/http"

	domainerrors "tradefood/internal/domain/errors"
	"tradefood/internal/domain/state"
	"tradefood/internal/errors"

	"github.com/go-playground/validator/v10"
)

//nolint:gochecknoglobals // validator caches struct metadata and is safe for concurrent use
var validate = validator.New(validator.WithRequiredStructEnabled())

// validateInput checks the validate tags of input.
func validateInput(input any) error {
	if err := validate.Struct(input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	return nil
}

// bind makes sure ctx carries sess, so backend calls attach its token.
func bind(ctx context.Context, sess *state.Session) context.Context {
	if current, ok := state.FromContext(ctx); ok && current == sess {
		return ctx
	}

	return state.NewContext(ctx, sess)
}

// backendStatus returns the HTTP status of a backend failure, 0 for anything else
// (including an unreachable backend).
func backendStatus(err error) int {
	var backendErr *domainerrors.BackendError
	if errors.As(err, &backendErr) {
		return backendErr.Status()
	}

	return 0
}

// isBackendRejection reports a 4xx answer: the backend understood and refused.
func isBackendRejection(err error) bool {
	status := backendStatus(err)

	return status >= http.StatusBadRequest && status < http.StatusInternalServerError
}

// isBackendUnavailable reports a network failure or a 5xx answer.
func isBackendUnavailable(err error) bool {
	var backendErr *domainerrors.BackendError
	if !errors.As(err, &backendErr) {
		return false
	}

	return backendErr.Unreachable() || backendErr.Status() >= http.StatusInternalServerError
}
