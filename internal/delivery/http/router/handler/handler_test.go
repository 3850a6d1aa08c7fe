package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tradefood/config"
	httpmiddleware "tradefood/internal/delivery/http/middleware"
	"tradefood/internal/delivery/http/validator"
	deliverymiddleware "tradefood/internal/delivery/middleware"
	domainerrors "tradefood/internal/domain/errors"
	"tradefood/internal/domain/state"
	"tradefood/internal/infra/storage"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const sessionHeader = "X-Session-Id"

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// envelope is the decoded response body with typed data.
type envelope[T any] struct {
	Success bool                    `json:"success"`
	Code    int                     `json:"code"`
	Message string                  `json:"message"`
	Data    T                       `json:"data"`
	Error   *domainerrors.ErrorInfo `json:"error"`
}

// newTestEcho returns an echo instance with the production error handler,
// validator and session middleware; routes are registered under /api.
func newTestEcho(t *testing.T) (*echo.Echo, *echo.Group) {
	t.Helper()

	cfg := &config.Config{
		Session: &config.SessionConfig{Header: sessionHeader},
		Storage: &config.StorageConfig{TTL: time.Hour},
	}
	store := storage.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(discardLogger).HandleHTTPError

	return e, e.Group("/api", deliverymiddleware.NewSessionMiddleware(store, cfg).Process)
}

// do sends a request with a fixed session id and returns the recorder.
func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(sessionHeader, testSessionID)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()

	var env envelope[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

var testSessionID = uuid.NewString()

// inSession matches the session resolved for testSessionID.
func inSession() any {
	return mock.MatchedBy(func(sess *state.Session) bool {
		return sess != nil && sess.ID == testSessionID
	})
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	e.GET("/health", HealthCheck)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode[map[string]string](t, rec)
	require.Equal(t, "ok", env.Data["status"])
}
