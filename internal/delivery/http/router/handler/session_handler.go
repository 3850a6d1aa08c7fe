package handler

import (
	"log/slog"
	"net/http"

	"tradefood/internal/delivery/http/middleware"
	"tradefood/internal/delivery/http/response"
	deliverymiddleware "tradefood/internal/delivery/middleware"
	"tradefood/internal/errors"
	"tradefood/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler serves the browser session, authentication and client selection.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// SessionResponse identifies the browser session.
type SessionResponse struct {
	SessionID string `json:"sessionId"`
	Created   bool   `json:"created"`
}

// SelectClientRequest picks the client a sales agent orders for; a null id clears it.
type SelectClientRequest struct {
	ClientID *int64 `json:"clientId" validate:"omitempty,gt=0"`
}

// CreateSession returns the session id, opening a session when the request carried none.
func (h *SessionHandler) CreateSession(c echo.Context) error {
	sess, err := session(c)
	if err != nil {
		return err
	}

	status := http.StatusOK
	created := deliverymiddleware.SessionCreated(c)
	if created {
		status = http.StatusCreated
	}

	return response.Success(c, status, SessionResponse{SessionID: sess.ID, Created: created}, "Session ready")
}

// Login handles user login
func (h *SessionHandler) Login(c echo.Context) error {
	sess, err := session(c)
	if err != nil {
		return err
	}

	var req usecase.LoginInput
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.sessionUC.Login(c.Request().Context(), sess, req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, user, "Login successful")
}

// Register opens a company account and logs it in.
func (h *SessionHandler) Register(c echo.Context) error {
	sess, err := session(c)
	if err != nil {
		return err
	}

	var req usecase.RegisterInput
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.sessionUC.Register(c.Request().Context(), sess, req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, user, "Account created")
}

// Logout always succeeds once the session is cleared.
func (h *SessionHandler) Logout(c echo.Context) error {
	sess, err := session(c)
	if err != nil {
		return err
	}

	if err := h.sessionUC.Logout(c.Request().Context(), sess); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Logged out")
}

// Refresh exchanges the refresh token of the session.
func (h *SessionHandler) Refresh(c echo.Context) error {
	sess, err := session(c)
	if err != nil {
		return err
	}

	if err := h.sessionUC.Refresh(c.Request().Context(), sess); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Token refreshed")
}

// Me returns the logged-in user.
func (h *SessionHandler) Me(c echo.Context) error {
	return response.OK(c, middleware.CurrentUser(c), "")
}

// ListClients returns the clients of the logged-in sales agent.
func (h *SessionHandler) ListClients(c echo.Context) error {
	sess, err := session(c)
	if err != nil {
		return err
	}

	clients, err := h.sessionUC.ListClients(c.Request().Context(), sess)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, clients, "")
}

// SelectClient sets the client the sales agent orders for.
func (h *SessionHandler) SelectClient(c echo.Context) error {
	sess, err := session(c)
	if err != nil {
		return err
	}

	var req SelectClientRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "Invalid client selection")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.sessionUC.SelectClient(c.Request().Context(), sess, req.ClientID); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, req, "Client selected")
}
