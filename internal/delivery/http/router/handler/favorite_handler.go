package handler

import (
	"log/slog"

	"tradefood/internal/delivery/http/response"
	"tradefood/internal/domain/entity"
	"tradefood/internal/errors"
	"tradefood/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
	Logger     *slog.Logger
}

// FavoriteHandler holds dependencies for favorite-related handlers
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
	logger     *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: params.FavoriteUC,
		logger:     params.Logger,
	}
}

// FavoriteRequest describes the profile being favorited, as displayed on the card.
type FavoriteRequest struct {
	ID       int64   `json:"id" validate:"required,gt=0"`
	Type     string  `json:"type" validate:"required,oneof=establishment influencer agent"`
	Name     string  `json:"name" validate:"max=200"`
	Avatar   string  `json:"avatar" validate:"omitempty,url"`
	Rating   float64 `json:"rating" validate:"min=0,max=5"`
	Location string  `json:"location" validate:"max=200"`
}

func (r FavoriteRequest) favorite() entity.Favorite {
	return entity.Favorite{
		ID:       r.ID,
		Type:     entity.FavoriteType(r.Type),
		Name:     r.Name,
		Avatar:   r.Avatar,
		Rating:   r.Rating,
		Location: r.Location,
	}
}

// ToggleResponse reports the favorite state after a toggle.
type ToggleResponse struct {
	Favorite bool `json:"favorite"`
}

// ListFavorites handles retrieving favorites
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	sess, err := session(c)
	if err != nil {
		return err
	}

	favorites, err := h.favoriteUC.List(c.Request().Context(), sess)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, favorites, "")
}

// AddFavorite handles adding a favorite
func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	sess, err := session(c)
	if err != nil {
		return err
	}

	var req FavoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "Invalid favorite input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	favorites, err := h.favoriteUC.Add(c.Request().Context(), sess, req.favorite())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, favorites, "Added to favorites")
}

// ToggleFavorite adds the favorite when absent and removes it otherwise.
func (h *FavoriteHandler) ToggleFavorite(c echo.Context) error {
	sess, err := session(c)
	if err != nil {
		return err
	}

	var req FavoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "Invalid favorite input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	isFavorite, err := h.favoriteUC.Toggle(c.Request().Context(), sess, req.favorite())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, ToggleResponse{Favorite: isFavorite}, "")
}

// RemoveFavorite handles removing a favorite
func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	sess, err := session(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	key := entity.FavoriteKey{Type: entity.FavoriteType(c.Param("type")), ID: id}

	favorites, err := h.favoriteUC.Remove(c.Request().Context(), sess, key)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, favorites, "Removed from favorites")
}
