package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tradefood/config"
	"tradefood/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.CheckoutEvent {
	return &service.CheckoutEvent{
		RequestID:  "req-1",
		EventID:    "evt-1",
		Type:       service.CheckoutEventOrderCreated,
		SessionID:  "sess-1",
		UserID:     7,
		OrderID:    501,
		Amount:     3990,
		OccurredAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PushesPubSubEnvelope(t *testing.T) {
	var push PubSubPushMessage
	var gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&push))
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	require.NoError(t, publisher.PublishCheckoutEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-1", gotRequestID)
	assert.Equal(t, "evt-1", push.Message.MessageID)
	assert.Equal(t, "order_created", push.Message.Attributes["event_type"])
	assert.Equal(t, "501", push.Message.Attributes["order_id"])
	assert.Equal(t, "sess-1", push.Message.OrderingKey)

	data, err := base64.StdEncoding.DecodeString(push.Message.Data)
	require.NoError(t, err)

	var event service.CheckoutEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, int64(3990), event.Amount)
	assert.Equal(t, "sess-1", event.SessionID)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())

	assert.Error(t, publisher.PublishCheckoutEvent(context.Background(), testEvent()))
}

func TestNewEventPublisher_Providers(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
		noop    bool
	}{
		{name: "not configured", cfg: nil, noop: true},
		{name: "empty provider", cfg: &config.PubSubConfig{}, noop: true},
		{name: "local", cfg: &config.PubSubConfig{Provider: config.PubSubProviderLocal, LocalEndpoint: "http://localhost:9"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: config.PubSubProviderLocal}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: config.PubSubProviderGoogle, TopicID: "t"}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: newDiscardLogger(),
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.NotNil(t, publisher)
			if tt.noop {
				assert.NoError(t, publisher.PublishCheckoutEvent(context.Background(), &service.CheckoutEvent{Type: service.CheckoutEventAbandoned}))
			}
		})
	}
}

func TestEncodeEvent_OmitsEmptyAttributes(t *testing.T) {
	msg, err := encodeEvent(&service.CheckoutEvent{EventID: "evt-2", Type: service.CheckoutEventAbandoned, SessionID: "sess-2"})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"event_id": "evt-2", "event_type": "checkout_abandoned"}, msg.attributes)
	assert.Equal(t, "sess-2", msg.orderingKey)
}
