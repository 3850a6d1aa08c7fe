package handler

import (
	"net/http"
	"testing"

	"tradefood/internal/domain/entity"
	mockUsecase "tradefood/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMarketplaceHandler(t *testing.T) {
	e, api := newTestEcho(t)
	uc := mockUsecase.NewMockMarketplaceUsecase(t)
	h := NewMarketplaceHandler(MarketplaceHandlerParams{MarketplaceUC: uc, Logger: discardLogger})
	api.POST("/quotes", h.RequestQuote)
	api.GET("/chat/conversations/:id/messages", h.ListMessages)
	api.POST("/chat/conversations/:id/messages", h.SendMessage)

	t.Run("quote", func(t *testing.T) {
		uc.EXPECT().RequestQuote(mock.Anything, inSession(), mock.Anything).Return(&entity.Quote{ID: 3}, nil).Once()

		rec := do(e, http.MethodPost, "/api/quotes", `{"establishmentId":2,"message":"Prix pour 50 kg ?"}`)

		assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	})

	t.Run("quote without seller", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/api/quotes", `{"message":"Prix ?"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("messages", func(t *testing.T) {
		uc.EXPECT().ListMessages(mock.Anything, inSession(), int64(7)).Return([]*entity.ChatMessage{}, nil).Once()
		uc.EXPECT().SendMessage(mock.Anything, inSession(), int64(7), "Bonjour").Return(&entity.ChatMessage{ID: 1}, nil).Once()

		assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/api/chat/conversations/7/messages", "").Code)
		assert.Equal(t, http.StatusCreated, do(e, http.MethodPost, "/api/chat/conversations/7/messages", `{"body":"Bonjour"}`).Code)
		assert.Equal(t, http.StatusBadRequest, do(e, http.MethodPost, "/api/chat/conversations/7/messages", `{"body":""}`).Code)
	})
}
