// Package router contains routing for the HTTP delivery.
package router

import (
	"tradefood/internal/delivery/http/middleware"
	"tradefood/internal/delivery/http/router/handler"
	deliverymiddleware "tradefood/internal/delivery/middleware"
	"tradefood/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler     *handler.SessionHandler
	CartHandler        *handler.CartHandler
	AddressHandler     *handler.AddressHandler
	CheckoutHandler    *handler.CheckoutHandler
	FavoriteHandler    *handler.FavoriteHandler
	CatalogHandler     *handler.CatalogHandler
	OrderHandler       *handler.OrderHandler
	MarketplaceHandler *handler.MarketplaceHandler
	AuthMiddleware     *middleware.AuthMiddleware
	SessionMiddleware  *deliverymiddleware.SessionMiddleware
}

// Router holds all the handlers that need to be registered.
type Router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *Router {
	return &Router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *Router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	e.GET("/health", handler.HealthCheck)

	// Every API route runs inside a browser session.
	api := e.Group("/api", p.SessionMiddleware.Process)
	authenticated := p.AuthMiddleware.Authenticate

	api.POST("/session", p.SessionHandler.CreateSession)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", p.SessionHandler.Login)
		authGroup.POST("/register", p.SessionHandler.Register)
		authGroup.POST("/logout", p.SessionHandler.Logout)
		authGroup.POST("/refresh", p.SessionHandler.Refresh)
	}
	api.GET("/me", p.SessionHandler.Me, authenticated)

	clientGroup := api.Group("/clients", authenticated, p.AuthMiddleware.RequireRole(entity.RoleAgent))
	{
		clientGroup.GET("", p.SessionHandler.ListClients)
		clientGroup.POST("/select", p.SessionHandler.SelectClient)
	}

	// The cart is available to guests.
	cartGroup := api.Group("/cart")
	{
		cartGroup.GET("", p.CartHandler.GetCart)
		cartGroup.DELETE("", p.CartHandler.ClearCart)
		cartGroup.POST("/items", p.CartHandler.AddItem)
		cartGroup.PUT("/items/:productId", p.CartHandler.UpdateItem)
		cartGroup.DELETE("/items/:productId", p.CartHandler.RemoveItem)
	}

	addressGroup := api.Group("/addresses", authenticated)
	{
		addressGroup.GET("", p.AddressHandler.ListAddresses)
		addressGroup.POST("", p.AddressHandler.CreateAddress)
		addressGroup.GET("/gates", p.AddressHandler.FormGates)
		addressGroup.PUT("/:id", p.AddressHandler.UpdateAddress)
		addressGroup.DELETE("/:id", p.AddressHandler.DeleteAddress)
	}

	checkoutGroup := api.Group("/checkout", authenticated)
	{
		checkoutGroup.GET("", p.CheckoutHandler.GetState)
		checkoutGroup.DELETE("", p.CheckoutHandler.Abandon)
		checkoutGroup.POST("/start", p.CheckoutHandler.Start)
		checkoutGroup.POST("/client", p.CheckoutHandler.SelectClient)
		checkoutGroup.POST("/billing-address", p.CheckoutHandler.SelectBillingAddress)
		checkoutGroup.POST("/delivery-address", p.CheckoutHandler.SelectDeliveryAddress)
		checkoutGroup.POST("/confirm-addresses", p.CheckoutHandler.ConfirmAddresses)
		checkoutGroup.POST("/shipping-method", p.CheckoutHandler.SelectShippingMethod)
		checkoutGroup.POST("/order", p.CheckoutHandler.PlaceOrder)
		checkoutGroup.POST("/payment", p.CheckoutHandler.PreparePayment)
		checkoutGroup.POST("/payment/confirm", p.CheckoutHandler.ConfirmPayment)
		checkoutGroup.POST("/payment/complete", p.CheckoutHandler.CompletePayment)
		checkoutGroup.POST("/back", p.CheckoutHandler.Back)
	}

	favoriteGroup := api.Group("/favorites", authenticated)
	{
		favoriteGroup.GET("", p.FavoriteHandler.ListFavorites)
		favoriteGroup.POST("", p.FavoriteHandler.AddFavorite)
		favoriteGroup.POST("/toggle", p.FavoriteHandler.ToggleFavorite)
		favoriteGroup.DELETE("/:type/:id", p.FavoriteHandler.RemoveFavorite)
	}

	productGroup := api.Group("/products")
	{
		productGroup.GET("", p.CatalogHandler.ListProducts)
		productGroup.GET("/search", p.CatalogHandler.Search)
		productGroup.GET("/:id", p.CatalogHandler.GetProduct)
		productGroup.GET("/:id/reviews", p.CatalogHandler.ListReviews)
		productGroup.POST("/:id/reviews", p.CatalogHandler.CreateReview, authenticated)
	}

	api.GET("/orders", p.OrderHandler.ListOrders, authenticated)

	quoteGroup := api.Group("/quotes", authenticated)
	{
		quoteGroup.GET("", p.MarketplaceHandler.ListQuotes)
		quoteGroup.POST("", p.MarketplaceHandler.RequestQuote)
	}

	chatGroup := api.Group("/chat/conversations", authenticated)
	{
		chatGroup.GET("", p.MarketplaceHandler.ListConversations)
		chatGroup.GET("/:id/messages", p.MarketplaceHandler.ListMessages)
		chatGroup.POST("/:id/messages", p.MarketplaceHandler.SendMessage)
	}
}
