package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "tradefood/internal/delivery/context"
	"tradefood/internal/domain/entity"
	domainerrors "tradefood/internal/domain/errors"
	"tradefood/internal/domain/repository"
	"tradefood/internal/domain/state"
	"tradefood/internal/errors"
	"tradefood/internal/usecase"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	auth        usecase.Authenticator
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(
	auth usecase.Authenticator,
	addressRepo repository.AddressRepository,
	logger *slog.Logger,
) usecase.AddressUsecase {
	return &addressService{
		auth:        auth,
		addressRepo: addressRepo,
		logger:      logger,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// scope resolves whose address book is addressed. Sales agents may target a
// client explicitly, else the selected client, else their own addresses.
func (srv *addressService) scope(ctx context.Context, sess *state.Session, clientID *int64) (entity.AddressScope, error) {
	user, err := srv.auth.EnsureAuthenticatedUser(ctx, sess)
	if err != nil {
		return entity.AddressScope{}, err
	}

	if !user.IsAgent() {
		if clientID != nil {
			return entity.AddressScope{}, errors.Wrap(domainerrors.ErrForbidden, "only sales agents manage client addresses")
		}

		return entity.UserScope(), nil
	}

	if clientID == nil {
		if clientID, err = sess.Auth.SelectedClientID(ctx); err != nil {
			return entity.AddressScope{}, errors.Wrap(err, "failed to read selected client")
		}
	}
	if clientID == nil {
		return entity.UserScope(), nil
	}

	return entity.ClientScope(*clientID), nil
}

func (srv *addressService) book(ctx context.Context, scope entity.AddressScope) (entity.AddressBook, error) {
	addresses, err := srv.addressRepo.ListAddresses(ctx, scope)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return entity.AddressBook(addresses), nil
}

// List implements usecase.AddressUsecase.
func (srv *addressService) List(ctx context.Context, sess *state.Session, clientID *int64) ([]*entity.CompanyAddress, error) {
	ctx = bind(ctx, sess)

	scope, err := srv.scope(ctx, sess, clientID)
	if err != nil {
		return nil, err
	}

	return srv.book(ctx, scope)
}

// Create implements usecase.AddressUsecase.
func (srv *addressService) Create(ctx context.Context, sess *state.Session, input usecase.AddressInput) (*entity.CompanyAddress, error) {
	ctx = bind(ctx, sess)

	if err := validateInput(input); err != nil {
		return nil, err
	}

	scope, err := srv.scope(ctx, sess, input.ClientID)
	if err != nil {
		return nil, err
	}

	book, err := srv.book(ctx, scope)
	if err != nil {
		return nil, err
	}
	if err := checkGates(book.FormGates(0, input.IsDefaultAddress), input); err != nil {
		return nil, err
	}

	address, err := srv.addressRepo.CreateAddress(ctx, scope, toAddress(0, input))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create address")
	}
	srv.log(ctx).Info("Address created", slog.Int64("address_id", address.ID), slog.Bool("client_scope", scope.IsClient()))

	return address, nil
}

// Update implements usecase.AddressUsecase.
func (srv *addressService) Update(ctx context.Context, sess *state.Session, id int64, input usecase.AddressInput) (*entity.CompanyAddress, error) {
	ctx = bind(ctx, sess)

	if err := validateInput(input); err != nil {
		return nil, err
	}

	scope, err := srv.scope(ctx, sess, input.ClientID)
	if err != nil {
		return nil, err
	}

	book, err := srv.book(ctx, scope)
	if err != nil {
		return nil, err
	}
	if _, ok := book.Find(id); !ok {
		return nil, errors.Wrapf(domainerrors.ErrAddressNotFound, "address %d", id)
	}
	if err := checkGates(book.FormGates(id, input.IsDefaultAddress), input); err != nil {
		return nil, err
	}

	address, err := srv.addressRepo.UpdateAddress(ctx, scope, toAddress(id, input))
	if err != nil {
		return nil, errors.Wrap(err, "failed to update address")
	}
	srv.log(ctx).Info("Address updated", slog.Int64("address_id", id))

	return address, nil
}

// Delete implements usecase.AddressUsecase. A checkout selection pointing at
// the deleted address is dropped.
func (srv *addressService) Delete(ctx context.Context, sess *state.Session, clientID *int64, id int64) error {
	ctx = bind(ctx, sess)

	scope, err := srv.scope(ctx, sess, clientID)
	if err != nil {
		return err
	}

	if err := srv.addressRepo.DeleteAddress(ctx, scope, id); err != nil {
		return errors.Wrap(err, "failed to delete address")
	}
	srv.log(ctx).Info("Address deleted", slog.Int64("address_id", id))

	checkout, err := sess.Checkout.Load(ctx)
	if err != nil || checkout.OrderCreated {
		return nil //nolint:nilerr // the address is gone either way
	}
	if checkout.BillingAddressID != id && checkout.DeliveryAddressID != id {
		return nil
	}
	if checkout.BillingAddressID == id {
		checkout.BillingAddressID = 0
	}
	if checkout.DeliveryAddressID == id {
		checkout.DeliveryAddressID = 0
		checkout.ClearShipping()
	}
	checkout.Step = entity.CheckoutStepAddresses
	if err := sess.Checkout.Save(ctx, checkout); err != nil {
		srv.log(ctx).Warn("Failed to update checkout after address deletion", slog.Any("error", err))
	}

	return nil
}

// FormGates implements usecase.AddressUsecase.
func (srv *addressService) FormGates(ctx context.Context, sess *state.Session, clientID *int64, editingID int64, markDefault bool) (*entity.AddressFormGates, error) {
	ctx = bind(ctx, sess)

	scope, err := srv.scope(ctx, sess, clientID)
	if err != nil {
		return nil, err
	}

	book, err := srv.book(ctx, scope)
	if err != nil {
		return nil, err
	}
	gates := book.FormGates(editingID, markDefault)

	return &gates, nil
}

// checkGates rejects an input the address form should not have allowed.
func checkGates(gates entity.AddressFormGates, input usecase.AddressInput) error {
	if input.IsDefaultAddress && !gates.CanMarkDefault {
		return errors.WithStack(domainerrors.ErrDefaultAddressExists)
	}
	if input.IsInvoicingAddress && !gates.CanSetInvoicing {
		return errors.WithStack(domainerrors.ErrDefaultAddressRequired)
	}
	if input.IsDeliveryAddress && !gates.CanSetDelivery {
		return errors.WithStack(domainerrors.ErrDefaultAddressRequired)
	}

	return nil
}

func toAddress(id int64, input usecase.AddressInput) *entity.CompanyAddress {
	return &entity.CompanyAddress{
		ID:                 id,
		Name:               strings.TrimSpace(input.Name),
		AddressLine1:       strings.TrimSpace(input.AddressLine1),
		AddressLine2:       strings.TrimSpace(input.AddressLine2),
		AddressLine3:       strings.TrimSpace(input.AddressLine3),
		AddressLine4:       strings.TrimSpace(input.AddressLine4),
		PostalCode:         strings.TrimSpace(input.PostalCode),
		City:               strings.TrimSpace(input.City),
		CountryCode:        strings.ToUpper(input.CountryCode),
		IsInvoicingAddress: input.IsInvoicingAddress,
		IsDeliveryAddress:  input.IsDeliveryAddress,
		IsDefaultAddress:   input.IsDefaultAddress,
	}
}
