package usecase

import (
	"context"

	"tradefood/internal/domain/entity"
	"tradefood/internal/domain/state"
)

// AddressInput is the address form.
type AddressInput struct {
	ClientID           *int64 `json:"clientId,omitempty"` // Sales agents only; defaults to the selected client.
	Name               string `json:"name" validate:"required,max=100"`
	AddressLine1       string `json:"addressLine1" validate:"required,max=255"`
	AddressLine2       string `json:"addressLine2" validate:"max=255"`
	AddressLine3       string `json:"addressLine3" validate:"max=255"`
	AddressLine4       string `json:"addressLine4" validate:"max=255"`
	PostalCode         string `json:"postalCode" validate:"required,max=20"`
	City               string `json:"city" validate:"required,max=100"`
	CountryCode        string `json:"countryCode" validate:"required,len=2,alpha"`
	IsInvoicingAddress bool   `json:"isInvoicingAddress"`
	IsDeliveryAddress  bool   `json:"isDeliveryAddress"`
	IsDefaultAddress   bool   `json:"isDefaultAddress"`
}

// AddressUsecase manages the address book of the user or of a sales agent's client.
type AddressUsecase interface {
	List(ctx context.Context, sess *state.Session, clientID *int64) ([]*entity.CompanyAddress, error)
	Create(ctx context.Context, sess *state.Session, input AddressInput) (*entity.CompanyAddress, error)
	Update(ctx context.Context, sess *state.Session, id int64, input AddressInput) (*entity.CompanyAddress, error)
	Delete(ctx context.Context, sess *state.Session, clientID *int64, id int64) error

	// FormGates tells the address form which flags it may offer. editingID is 0
	// for a new address; markDefault is the current state of the default checkbox.
	FormGates(ctx context.Context, sess *state.Session, clientID *int64, editingID int64, markDefault bool) (*entity.AddressFormGates, error)
}
