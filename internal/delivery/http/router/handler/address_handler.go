package handler

import (
	"log/slog"

	"tradefood/internal/delivery/http/response"
	"tradefood/internal/errors"
	"tradefood/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Logger    *slog.Logger
}

// AddressHandler holds dependencies for address-book handlers.
// Sales agents pass clientId to work on a client's book.
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// ListAddresses handles retrieving the address book
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	sess, err := session(c)
	if err != nil {
		return err
	}

	clientID, err := optionalQueryID(c, "clientId")
	if err != nil {
		return err
	}

	addresses, err := h.addressUC.List(c.Request().Context(), sess, clientID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, addresses, "")
}

// CreateAddress handles creating an address
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	sess, err := session(c)
	if err != nil {
		return err
	}

	var req usecase.AddressInput
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "Invalid address input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	address, err := h.addressUC.Create(c.Request().Context(), sess, req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, address, "Address created")
}

// UpdateAddress handles updating an address
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	sess, err := session(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.AddressInput
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "Invalid address input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	address, err := h.addressUC.Update(c.Request().Context(), sess, id, req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, address, "Address updated")
}

// DeleteAddress handles deleting an address
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	sess, err := session(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	clientID, err := optionalQueryID(c, "clientId")
	if err != nil {
		return err
	}

	if err := h.addressUC.Delete(c.Request().Context(), sess, clientID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Address deleted")
}

// FormGates tells the address form which flags it may offer.
// Query: clientId, editingId (absent for a new address), default.
func (h *AddressHandler) FormGates(c echo.Context) error {
	sess, err := session(c)
	if err != nil {
		return err
	}

	clientID, err := optionalQueryID(c, "clientId")
	if err != nil {
		return err
	}
	editingID, err := optionalQueryID(c, "editingId")
	if err != nil {
		return err
	}

	var markDefault bool
	if err := echo.QueryParamsBinder(c).Bool("default", &markDefault).BindError(); err != nil {
		return response.InvalidInput(c, "Invalid default flag")
	}

	var editing int64
	if editingID != nil {
		editing = *editingID
	}

	gates, err := h.addressUC.FormGates(c.Request().Context(), sess, clientID, editing, markDefault)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, gates, "")
}
