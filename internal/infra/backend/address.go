package backend

import (
	"context"
	"net/http"
	"strconv"

	"tradefood/internal/domain/entity"
	"tradefood/internal/domain/repository"
)

var _ repository.AddressRepository = (*Client)(nil)

// addressDTO is the backend's snake_case representation of a company address.
type addressDTO struct {
	ID                 int64       `json:"id,omitempty"`
	Name               string      `json:"name"`
	AddressLine1       string      `json:"address_line_1"`
	AddressLine2       string      `json:"address_line_2,omitempty"`
	AddressLine3       string      `json:"address_line_3,omitempty"`
	AddressLine4       string      `json:"address_line_4,omitempty"`
	PostalCode         string      `json:"postal_code"`
	City               string      `json:"city"`
	CountryCode        string      `json:"country_code"`
	IsInvoicingAddress bool        `json:"is_invoicing_address"`
	IsDeliveryAddress  bool        `json:"is_delivery_address"`
	IsDefaultAddress   bool        `json:"is_default_address"`
	Geocode            *geocodeDTO `json:"geocode,omitempty"`
}

type geocodeDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (d *addressDTO) toEntity() *entity.CompanyAddress {
	address := &entity.CompanyAddress{
		ID:                 d.ID,
		Name:               d.Name,
		AddressLine1:       d.AddressLine1,
		AddressLine2:       d.AddressLine2,
		AddressLine3:       d.AddressLine3,
		AddressLine4:       d.AddressLine4,
		PostalCode:         d.PostalCode,
		City:               d.City,
		CountryCode:        d.CountryCode,
		IsInvoicingAddress: d.IsInvoicingAddress,
		IsDeliveryAddress:  d.IsDeliveryAddress,
		IsDefaultAddress:   d.IsDefaultAddress,
	}
	if d.Geocode != nil {
		address.Geocode = &entity.Geocode{Latitude: d.Geocode.Latitude, Longitude: d.Geocode.Longitude}
	}

	return address
}

// fromAddress builds the write payload. The id travels in the path, never in the body.
func fromAddress(a *entity.CompanyAddress) *addressDTO {
	dto := &addressDTO{
		Name:               a.Name,
		AddressLine1:       a.AddressLine1,
		AddressLine2:       a.AddressLine2,
		AddressLine3:       a.AddressLine3,
		AddressLine4:       a.AddressLine4,
		PostalCode:         a.PostalCode,
		City:               a.City,
		CountryCode:        a.CountryCode,
		IsInvoicingAddress: a.IsInvoicingAddress,
		IsDeliveryAddress:  a.IsDeliveryAddress,
		IsDefaultAddress:   a.IsDefaultAddress,
	}
	if a.Geocode != nil {
		dto.Geocode = &geocodeDTO{Latitude: a.Geocode.Latitude, Longitude: a.Geocode.Longitude}
	}

	return dto
}

func addressesPath(scope entity.AddressScope) string {
	if scope.IsClient() {
		return "/users/clients/" + strconv.FormatInt(*scope.ClientID, 10) + "/addresses"
	}

	return "/users/addresses"
}

func addressPath(scope entity.AddressScope, id int64) string {
	return addressesPath(scope) + "/" + strconv.FormatInt(id, 10)
}

// ListAddresses calls GET /users/addresses or GET /users/clients/{clientId}/addresses.
func (c *Client) ListAddresses(ctx context.Context, scope entity.AddressScope) ([]*entity.CompanyAddress, error) {
	var out []addressDTO
	if err := c.do(ctx, http.MethodGet, addressesPath(scope), nil, nil, &out); err != nil {
		return nil, err
	}

	addresses := make([]*entity.CompanyAddress, 0, len(out))
	for i := range out {
		addresses = append(addresses, out[i].toEntity())
	}

	return addresses, nil
}

// CreateAddress calls POST /users/addresses or POST /users/clients/{clientId}/addresses.
func (c *Client) CreateAddress(ctx context.Context, scope entity.AddressScope, address *entity.CompanyAddress) (*entity.CompanyAddress, error) {
	var out addressDTO
	if err := c.do(ctx, http.MethodPost, addressesPath(scope), nil, fromAddress(address), &out); err != nil {
		return nil, err
	}

	return out.toEntity(), nil
}

// UpdateAddress calls PUT /users/addresses/{id} or PUT /users/clients/{clientId}/addresses/{id}.
func (c *Client) UpdateAddress(ctx context.Context, scope entity.AddressScope, address *entity.CompanyAddress) (*entity.CompanyAddress, error) {
	var out addressDTO
	if err := c.do(ctx, http.MethodPut, addressPath(scope, address.ID), nil, fromAddress(address), &out); err != nil {
		return nil, err
	}
	if out.ID == 0 {
		out.ID = address.ID
	}

	return out.toEntity(), nil
}

// DeleteAddress calls DELETE /users/addresses/{id} or DELETE /users/clients/{clientId}/addresses/{id}.
func (c *Client) DeleteAddress(ctx context.Context, scope entity.AddressScope, id int64) error {
	return c.do(ctx, http.MethodDelete, addressPath(scope, id), nil, nil, nil)
}
