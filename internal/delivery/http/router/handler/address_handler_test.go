package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tradefood/internal/domain/entity"
	domainerrors "tradefood/internal/domain/errors"
	mockUsecase "tradefood/internal/mocks/usecase"
	"tradefood/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAddressHandlerFixture(t *testing.T) (*mockUsecase.MockAddressUsecase, func(method, target, body string) *httptest.ResponseRecorder) {
	e, api := newTestEcho(t)
	uc := mockUsecase.NewMockAddressUsecase(t)
	h := NewAddressHandler(AddressHandlerParams{AddressUC: uc, Logger: discardLogger})

	api.GET("/addresses", h.ListAddresses)
	api.POST("/addresses", h.CreateAddress)
	api.GET("/addresses/gates", h.FormGates)
	api.PUT("/addresses/:id", h.UpdateAddress)
	api.DELETE("/addresses/:id", h.DeleteAddress)

	return uc, func(method, target, body string) *httptest.ResponseRecorder {
		return do(e, method, target, body)
	}
}

func clientIDIs(want int64) any {
	return mock.MatchedBy(func(id *int64) bool { return id != nil && *id == want })
}

const addressBody = `{
	"name": "Entrepôt Rungis",
	"addressLine1": "1 rue de la Tour",
	"postalCode": "94150",
	"city": "Rungis",
	"countryCode": "FR",
	"isDefaultAddress": true
}`

func TestAddressHandler_List(t *testing.T) {
	t.Run("own book", func(t *testing.T) {
		uc, call := newAddressHandlerFixture(t)
		uc.EXPECT().List(mock.Anything, inSession(), (*int64)(nil)).
			Return([]*entity.CompanyAddress{{ID: 1, Name: "Siège"}}, nil).Once()

		rec := call(http.MethodGet, "/api/addresses", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]*entity.CompanyAddress](t, rec).Data, 1)
	})

	t.Run("client book", func(t *testing.T) {
		uc, call := newAddressHandlerFixture(t)
		uc.EXPECT().List(mock.Anything, inSession(), clientIDIs(12)).Return([]*entity.CompanyAddress{}, nil).Once()

		rec := call(http.MethodGet, "/api/addresses?clientId=12", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad client id", func(t *testing.T) {
		_, call := newAddressHandlerFixture(t)

		rec := call(http.MethodGet, "/api/addresses?clientId=twelve", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAddressHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		uc, call := newAddressHandlerFixture(t)
		uc.EXPECT().Create(mock.Anything, inSession(), mock.MatchedBy(func(in usecase.AddressInput) bool {
			return in.City == "Rungis" && in.IsDefaultAddress
		})).Return(&entity.CompanyAddress{ID: 9, City: "Rungis", IsDefaultAddress: true}, nil).Once()

		rec := call(http.MethodPost, "/api/addresses", addressBody)

		assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	})

	t.Run("second default", func(t *testing.T) {
		uc, call := newAddressHandlerFixture(t)
		uc.EXPECT().Create(mock.Anything, inSession(), mock.Anything).Return(nil, domainerrors.ErrDefaultAddressExists).Once()

		rec := call(http.MethodPost, "/api/addresses", addressBody)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "DEFAULT_ADDRESS_EXISTS", decode[any](t, rec).Error.Code)
	})

	t.Run("three letter country", func(t *testing.T) {
		_, call := newAddressHandlerFixture(t)

		rec := call(http.MethodPost, "/api/addresses",
			`{"name":"x","addressLine1":"y","postalCode":"1","city":"z","countryCode":"FRA"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAddressHandler_UpdateAndDelete(t *testing.T) {
	uc, call := newAddressHandlerFixture(t)
	uc.EXPECT().Update(mock.Anything, inSession(), int64(9), mock.Anything).Return(&entity.CompanyAddress{ID: 9}, nil).Once()
	uc.EXPECT().Delete(mock.Anything, inSession(), clientIDIs(12), int64(9)).Return(nil).Once()

	assert.Equal(t, http.StatusOK, call(http.MethodPut, "/api/addresses/9", addressBody).Code)
	assert.Equal(t, http.StatusOK, call(http.MethodDelete, "/api/addresses/9?clientId=12", "").Code)
}

func TestAddressHandler_FormGates(t *testing.T) {
	uc, call := newAddressHandlerFixture(t)
	uc.EXPECT().FormGates(mock.Anything, inSession(), clientIDIs(12), int64(3), true).
		Return(&entity.AddressFormGates{CanMarkDefault: true, CanSetInvoicing: true, CanSetDelivery: true}, nil).Once()
	uc.EXPECT().FormGates(mock.Anything, inSession(), (*int64)(nil), int64(0), false).
		Return(&entity.AddressFormGates{CanMarkDefault: true}, nil).Once()

	rec := call(http.MethodGet, "/api/addresses/gates?clientId=12&editingId=3&default=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[*entity.AddressFormGates](t, rec).Data.CanSetDelivery)

	rec = call(http.MethodGet, "/api/addresses/gates", "")
	require.Equal(t, http.StatusOK, rec.Code)
	gates := decode[*entity.AddressFormGates](t, rec).Data
	assert.True(t, gates.CanMarkDefault)
	assert.False(t, gates.CanSetInvoicing)
}
