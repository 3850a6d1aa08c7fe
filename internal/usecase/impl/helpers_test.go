package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"tradefood/internal/domain/entity"
	domainerrors "tradefood/internal/domain/errors"
	"tradefood/internal/domain/state"
	"tradefood/internal/errors"
	"tradefood/internal/infra/storage"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSession(t *testing.T) *state.Session {
	t.Helper()
	id := uuid.NewString()

	return state.NewSession(id, storage.Scoped(storage.NewMemoryStore(), id, time.Hour))
}

// loginAs stores a token and user as a successful login would.
func loginAs(t *testing.T, sess *state.Session, user *entity.User) {
	t.Helper()
	require.NoError(t, sess.Auth.SetSession(context.Background(), entity.AuthTokens{AccessToken: "access", RefreshToken: "refresh"}, user))
}

func testProduct(id int64, price string) entity.Product {
	return entity.Product{ID: id, Name: "product", Price: decimal.RequireFromString(price), Available: true}
}

func fillCart(t *testing.T, sess *state.Session, lines ...entity.CartItem) {
	t.Helper()
	for _, line := range lines {
		_, err := sess.Cart.Add(context.Background(), line.Product, line.Quantity)
		require.NoError(t, err)
	}
}

func unreachable() error {
	return domainerrors.NewBackendError(errors.New("dial tcp: connection refused"), 0, "", "")
}

func rejected(status int) error {
	return domainerrors.NewBackendError(nil, status, "", "rejected")
}

var (
	customer = &entity.User{ID: 7, Email: "buyer@example.com", FirstName: "Marie", LastName: "Curie", Role: entity.RoleCustomer}
	agent    = &entity.User{ID: 8, Email: "agent@example.com", Role: entity.RoleAgent}
)

func TestBackendErrorClassification(t *testing.T) {
	assert.True(t, isBackendUnavailable(unreachable()))
	assert.True(t, isBackendUnavailable(errors.Wrap(rejected(502), "calling")))
	assert.False(t, isBackendUnavailable(rejected(404)))
	assert.False(t, isBackendUnavailable(errors.New("plain")))

	assert.True(t, isBackendRejection(errors.Wrap(rejected(422), "calling")))
	assert.False(t, isBackendRejection(unreachable()))
	assert.Equal(t, 0, backendStatus(errors.New("plain")))
}

func TestBind(t *testing.T) {
	sess := newTestSession(t)
	ctx := bind(context.Background(), sess)

	got, ok := state.FromContext(ctx)
	require.True(t, ok)
	assert.Same(t, sess, got)
	assert.Equal(t, ctx, bind(ctx, sess))
}
