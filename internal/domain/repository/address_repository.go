// Package repository defines the interfaces the use cases call to reach the
// TradeFood backend. The backend is the system of record; implementations are
// thin REST calls.
package repository

import (
	"context"

	"tradefood/internal/domain/entity"
)

// AddressRepository manages company addresses, either the user's own or,
// for sales agents, those of a client.
type AddressRepository interface {
	// ListAddresses returns every address of the scope.
	ListAddresses(ctx context.Context, scope entity.AddressScope) ([]*entity.CompanyAddress, error)

	// CreateAddress creates an address and returns it with its backend id.
	CreateAddress(ctx context.Context, scope entity.AddressScope, address *entity.CompanyAddress) (*entity.CompanyAddress, error)

	// UpdateAddress replaces the address identified by address.ID.
	UpdateAddress(ctx context.Context, scope entity.AddressScope, address *entity.CompanyAddress) (*entity.CompanyAddress, error)

	// DeleteAddress removes an address.
	DeleteAddress(ctx context.Context, scope entity.AddressScope, id int64) error
}
