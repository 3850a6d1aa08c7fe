package impl

import (
	"context"
	"testing"

	"tradefood/internal/domain/entity"
	domainerrors "tradefood/internal/domain/errors"
	"tradefood/internal/domain/state"
	mockRepo "tradefood/internal/mocks/repository"
	mockUsecase "tradefood/internal/mocks/usecase"
	"tradefood/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAddressFixture(t *testing.T, user *entity.User) (usecase.AddressUsecase, *mockRepo.MockAddressRepository, *state.Session) {
	t.Helper()

	sess := newTestSession(t)
	loginAs(t, sess, user)
	auth := mockUsecase.NewMockAuthenticator(t)
	auth.EXPECT().EnsureAuthenticatedUser(mock.Anything, sess).Return(user, nil).Maybe()
	addresses := mockRepo.NewMockAddressRepository(t)

	return NewAddressService(auth, addresses, discardLogger()), addresses, sess
}

func addressInput() usecase.AddressInput {
	return usecase.AddressInput{
		Name:         "Entrepôt",
		AddressLine1: " 12 quai des Marchands ",
		PostalCode:   "69002",
		City:         "Lyon",
		CountryCode:  "fr",
	}
}

func TestAddressService_Create_DefaultRules(t *testing.T) {
	withDefault := []*entity.CompanyAddress{defaultAddress(1)}

	tests := []struct {
		name     string
		existing []*entity.CompanyAddress
		mutate   func(*usecase.AddressInput)
		wantErr  error
	}{
		{
			name:     "first default address",
			existing: nil,
			mutate:   func(in *usecase.AddressInput) { in.IsDefaultAddress, in.IsDeliveryAddress = true, true },
		},
		{
			name:     "second default address",
			existing: withDefault,
			mutate:   func(in *usecase.AddressInput) { in.IsDefaultAddress = true },
			wantErr:  domainerrors.ErrDefaultAddressExists,
		},
		{
			name:     "invoicing without default",
			existing: nil,
			mutate:   func(in *usecase.AddressInput) { in.IsInvoicingAddress = true },
			wantErr:  domainerrors.ErrDefaultAddressRequired,
		},
		{
			name:     "delivery once a default exists",
			existing: withDefault,
			mutate:   func(in *usecase.AddressInput) { in.IsDeliveryAddress = true },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, addresses, sess := newAddressFixture(t, customer)
			addresses.EXPECT().ListAddresses(mock.Anything, entity.UserScope()).Return(tt.existing, nil)
			input := addressInput()
			tt.mutate(&input)
			if tt.wantErr == nil {
				addresses.EXPECT().CreateAddress(mock.Anything, entity.UserScope(), mock.MatchedBy(func(a *entity.CompanyAddress) bool {
					return a.CountryCode == "FR" && a.AddressLine1 == "12 quai des Marchands"
				})).Return(&entity.CompanyAddress{ID: 2}, nil)
			}

			address, err := srv.Create(context.Background(), sess, input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(2), address.ID)
		})
	}
}

func TestAddressService_Create_Validation(t *testing.T) {
	srv, _, sess := newAddressFixture(t, customer)
	input := addressInput()
	input.CountryCode = "FRA"

	_, err := srv.Create(context.Background(), sess, input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAddressService_Update_KeepsOwnDefault(t *testing.T) {
	srv, addresses, sess := newAddressFixture(t, customer)
	addresses.EXPECT().ListAddresses(mock.Anything, entity.UserScope()).Return([]*entity.CompanyAddress{defaultAddress(1)}, nil)
	addresses.EXPECT().UpdateAddress(mock.Anything, entity.UserScope(), mock.MatchedBy(func(a *entity.CompanyAddress) bool {
		return a.ID == 1 && a.IsDefaultAddress
	})).Return(defaultAddress(1), nil)

	input := addressInput()
	input.IsDefaultAddress = true
	_, err := srv.Update(context.Background(), sess, 1, input)

	require.NoError(t, err)
}

func TestAddressService_Update_NotFound(t *testing.T) {
	srv, addresses, sess := newAddressFixture(t, customer)
	addresses.EXPECT().ListAddresses(mock.Anything, entity.UserScope()).Return([]*entity.CompanyAddress{defaultAddress(1)}, nil)

	_, err := srv.Update(context.Background(), sess, 5, addressInput())

	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}

func TestAddressService_Scope(t *testing.T) {
	ctx := context.Background()
	clientID := int64(9)

	srv, _, sess := newAddressFixture(t, customer)
	_, err := srv.List(ctx, sess, &clientID)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	srv, addresses, sess := newAddressFixture(t, agent)
	require.NoError(t, sess.Auth.SelectClient(ctx, &clientID))
	addresses.EXPECT().ListAddresses(mock.Anything, entity.ClientScope(clientID)).Return([]*entity.CompanyAddress{defaultAddress(3)}, nil)

	list, err := srv.List(ctx, sess, nil)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestAddressService_Delete_ClearsCheckoutSelection(t *testing.T) {
	ctx := context.Background()
	srv, addresses, sess := newAddressFixture(t, customer)
	addresses.EXPECT().DeleteAddress(mock.Anything, entity.UserScope(), int64(1)).Return(nil)

	checkout := paymentState()
	checkout.Step = entity.CheckoutStepShipping
	checkout.BillingAddressID = 2
	checkout.OrderCreated, checkout.OrderID, checkout.PaymentSheet = false, 0, nil
	require.NoError(t, sess.Checkout.Save(ctx, checkout))

	require.NoError(t, srv.Delete(ctx, sess, nil, 1))

	got, err := sess.Checkout.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.BillingAddressID)
	assert.Zero(t, got.DeliveryAddressID)
	assert.Empty(t, got.ShippingMethods)
	assert.Equal(t, entity.CheckoutStepAddresses, got.Step)
}

func TestAddressService_FormGates(t *testing.T) {
	srv, addresses, sess := newAddressFixture(t, customer)
	addresses.EXPECT().ListAddresses(mock.Anything, entity.UserScope()).Return([]*entity.CompanyAddress{defaultAddress(1)}, nil)

	gates, err := srv.FormGates(context.Background(), sess, nil, 0, false)

	require.NoError(t, err)
	assert.False(t, gates.CanMarkDefault)
	assert.True(t, gates.CanSetDelivery)
	assert.True(t, gates.CanSetInvoicing)
}
