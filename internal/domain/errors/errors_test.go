package errors

import (
	"net/http"
	"testing"

	"tradefood/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := ErrEmptyCart.WithDetails("cart has 0 lines")

	assert.True(t, errors.Is(err, ErrEmptyCart))
	assert.False(t, errors.Is(err, ErrAddressRequired))
	assert.Equal(t, "Votre panier est vide: cart has 0 lines", err.Error())
	assert.Equal(t, "cart has 0 lines", err.Details())
}

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	err := ErrCheckoutBusy.WrapMessage("place order")

	appErr, ok := AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, "CHECKOUT_BUSY", appErr.ErrorCode())
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
}

func TestBackendError_HTTPCodeMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantHTTP int
		wantCode string
	}{
		{name: "unreachable", status: 0, wantHTTP: http.StatusServiceUnavailable, wantCode: "BACKEND_UNAVAILABLE"},
		{name: "unauthorized passes through", status: 401, wantHTTP: http.StatusUnauthorized, wantCode: "BACKEND_REJECTED"},
		{name: "not found passes through", status: 404, wantHTTP: http.StatusNotFound, wantCode: "BACKEND_REJECTED"},
		{name: "validation becomes bad request", status: 422, wantHTTP: http.StatusBadRequest, wantCode: "BACKEND_REJECTED"},
		{name: "server error becomes bad gateway", status: 500, wantHTTP: http.StatusBadGateway, wantCode: "BACKEND_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewBackendError(nil, tt.status, "", "boom")
			assert.Equal(t, tt.wantHTTP, err.HTTPCode())
			assert.Equal(t, tt.wantCode, err.ErrorCode())
		})
	}
}

func TestBackendError_MessageHidesServerFailures(t *testing.T) {
	rejected := NewBackendError(nil, http.StatusBadRequest, "INVALID_SIRET", "SIRET invalide")
	assert.Equal(t, "SIRET invalide", rejected.Message())
	assert.Equal(t, "INVALID_SIRET", rejected.ErrorCode())

	failed := NewBackendError(nil, http.StatusInternalServerError, "", "stack trace here")
	assert.NotContains(t, failed.Message(), "stack trace")

	cause := errors.New("dial tcp: connection refused")
	unreachable := NewBackendError(cause, 0, "", "")
	assert.True(t, unreachable.Unreachable())
	assert.True(t, errors.Is(unreachable, cause))
	assert.Contains(t, unreachable.Error(), "connection refused")
}
