package backend

import (
	"tradefood/internal/domain/repository"

	"go.uber.org/fx"
)

// Module provides the backend client as every remote repository.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		fx.Annotate(
			NewClient,
			fx.As(new(repository.AddressRepository)),
			fx.As(new(repository.ShippingRepository)),
			fx.As(new(repository.OrderRepository)),
			fx.As(new(repository.PaymentRepository)),
			fx.As(new(repository.AuthRepository)),
			fx.As(new(repository.UserRepository)),
			fx.As(new(repository.ProductRepository)),
			fx.As(new(repository.ReviewRepository)),
			fx.As(new(repository.FavoriteRepository)),
			fx.As(new(repository.QuoteRepository)),
			fx.As(new(repository.ChatRepository)),
		),
	),
)
