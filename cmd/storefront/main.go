package main

import (
	"context"
	"log/slog"
	"os"

	"tradefood/config"
	"tradefood/internal/delivery"
	"tradefood/internal/delivery/http"
	httpmiddleware "tradefood/internal/delivery/http/middleware"
	"tradefood/internal/delivery/http/router/handler"
	"tradefood/internal/delivery/middleware"
	"tradefood/internal/infra/auth"
	"tradefood/internal/infra/backend"
	logs "tradefood/internal/infra/log"
	"tradefood/internal/infra/payment"
	"tradefood/internal/infra/pubsub"
	"tradefood/internal/infra/storage"
	"tradefood/internal/usecase"
	"tradefood/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		storage.Module,
	)
}

func injectRepo() fx.Option {
	return backend.Module
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTInspector,
			payment.NewPaymentConfirmer,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				impl.NewSessionService,
				fx.As(new(usecase.SessionUsecase)),
				fx.As(new(usecase.Authenticator)),
			),
			impl.NewCartService,
			impl.NewAddressService,
			impl.NewCheckoutService,
			impl.NewFavoriteService,
			impl.NewCatalogService,
			impl.NewOrderService,
			impl.NewMarketplaceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
			httpmiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewCartHandler,
			handler.NewAddressHandler,
			handler.NewCheckoutHandler,
			handler.NewFavoriteHandler,
			handler.NewCatalogHandler,
			handler.NewOrderHandler,
			handler.NewMarketplaceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
