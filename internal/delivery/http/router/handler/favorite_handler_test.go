package handler

import (
	"net/http"
	"testing"

	"tradefood/internal/domain/entity"
	mockUsecase "tradefood/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFavoriteHandler(t *testing.T) {
	e, api := newTestEcho(t)
	uc := mockUsecase.NewMockFavoriteUsecase(t)
	h := NewFavoriteHandler(FavoriteHandlerParams{FavoriteUC: uc, Logger: discardLogger})
	api.GET("/favorites", h.ListFavorites)
	api.POST("/favorites", h.AddFavorite)
	api.POST("/favorites/toggle", h.ToggleFavorite)
	api.DELETE("/favorites/:type/:id", h.RemoveFavorite)

	ferme := entity.Favorite{ID: 4, Type: entity.FavoriteTypeEstablishment, Name: "Ferme du Bec", Rating: 4.5}

	t.Run("add", func(t *testing.T) {
		uc.EXPECT().Add(mock.Anything, inSession(), ferme).Return([]entity.Favorite{ferme}, nil).Once()

		rec := do(e, http.MethodPost, "/api/favorites", `{"id":4,"type":"establishment","name":"Ferme du Bec","rating":4.5}`)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, []entity.Favorite{ferme}, decode[[]entity.Favorite](t, rec).Data)
	})

	t.Run("unknown type", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/api/favorites", `{"id":4,"type":"restaurant"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("toggle", func(t *testing.T) {
		uc.EXPECT().Toggle(mock.Anything, inSession(), ferme).Return(false, nil).Once()

		rec := do(e, http.MethodPost, "/api/favorites/toggle", `{"id":4,"type":"establishment","name":"Ferme du Bec","rating":4.5}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, decode[ToggleResponse](t, rec).Data.Favorite)
	})

	t.Run("remove", func(t *testing.T) {
		key := entity.FavoriteKey{Type: entity.FavoriteTypeAgent, ID: 8}
		uc.EXPECT().Remove(mock.Anything, inSession(), key).Return([]entity.Favorite{}, nil).Once()

		rec := do(e, http.MethodDelete, "/api/favorites/agent/8", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("list", func(t *testing.T) {
		uc.EXPECT().List(mock.Anything, inSession()).Return([]entity.Favorite{ferme}, nil).Once()

		rec := do(e, http.MethodGet, "/api/favorites", "")

		assert.Len(t, decode[[]entity.Favorite](t, rec).Data, 1)
	})
}
