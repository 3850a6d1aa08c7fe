package middleware

import (
	"tradefood/config"
	deliverycontext "tradefood/internal/delivery/context"
	domainerrors "tradefood/internal/domain/errors"
	"tradefood/internal/domain/service"
	"tradefood/internal/domain/state"
	"tradefood/internal/errors"
	"tradefood/internal/infra/storage"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	keySession        = "session"
	keySessionCreated = "session_created"
)

// SessionMiddleware resolves the browser session of a request from its
// session header, opening a new one when the header is missing or invalid.
type SessionMiddleware struct {
	store  service.KeyValueStore
	header string
	cfg    *config.Config
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(store service.KeyValueStore, cfg *config.Config) *SessionMiddleware {
	return &SessionMiddleware{
		store:  store,
		header: cfg.Session.Header,
		cfg:    cfg,
	}
}

// Process attaches the session to the echo and request contexts and echoes its id back.
func (m *SessionMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID := c.Request().Header.Get(m.header)
		created := false
		if _, err := uuid.Parse(sessionID); err != nil {
			sessionID = uuid.New().String()
			created = true
		}

		sess := state.NewSession(sessionID, storage.Scoped(m.store, sessionID, m.cfg.Storage.TTL))
		c.Set(keySession, sess)
		c.Set(keySessionCreated, created)
		c.Response().Header().Set(m.header, sessionID)

		ctx := state.NewContext(c.Request().Context(), sess)
		ctx = deliverycontext.WithSessionID(ctx, sessionID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// GetSession returns the session resolved by SessionMiddleware.
func GetSession(c echo.Context) (*state.Session, error) {
	sess, ok := c.Get(keySession).(*state.Session)
	if !ok || sess == nil {
		return nil, errors.WithStack(domainerrors.ErrSessionRequired)
	}

	return sess, nil
}

// SessionCreated reports whether the session was opened by this request.
func SessionCreated(c echo.Context) bool {
	created, _ := c.Get(keySessionCreated).(bool)

	return created
}
