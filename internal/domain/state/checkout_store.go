package state

import (
	"context"
	"time"

	"tradefood/internal/domain/entity"
	"tradefood/internal/domain/service"
	"tradefood/internal/errors"
)

// CheckoutStore persists the checkout wizard snapshot.
type CheckoutStore struct {
	storage service.LocalStorage
}

// Load returns the stored wizard, or a fresh one on step 1.
func (s *CheckoutStore) Load(ctx context.Context) (*entity.CheckoutState, error) {
	var checkout entity.CheckoutState
	found, err := loadJSON(ctx, s.storage, service.StorageKeyCheckout, &checkout)
	if err != nil {
		return nil, err
	}
	if !found || checkout.Step == 0 {
		return entity.NewCheckoutState(), nil
	}

	return &checkout, nil
}

// Save stores the wizard, stamping UpdatedAt.
func (s *CheckoutStore) Save(ctx context.Context, checkout *entity.CheckoutState) error {
	checkout.UpdatedAt = time.Now()

	return saveJSON(ctx, s.storage, service.StorageKeyCheckout, checkout)
}

// Reset forgets the wizard.
func (s *CheckoutStore) Reset(ctx context.Context) error {
	return errors.Wrap(s.storage.Delete(ctx, service.StorageKeyCheckout), "failed to reset checkout")
}
