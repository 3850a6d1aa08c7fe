package middleware

import (
	deliverymiddleware "tradefood/internal/delivery/middleware"
	"tradefood/internal/domain/entity"
	domainerrors "tradefood/internal/domain/errors"
	"tradefood/internal/errors"
	"tradefood/internal/usecase"

	"github.com/labstack/echo/v4"
)

const keyUser = "user"

// AuthMiddleware guards routes that need a logged-in user. The user is
// resolved from the session, refreshing its token when needed.
type AuthMiddleware struct {
	auth usecase.Authenticator
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(auth usecase.Authenticator) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// Authenticate rejects the request unless its session holds a valid login.
// It must be used AFTER the session middleware.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := deliverymiddleware.GetSession(c)
		if err != nil {
			return err
		}

		user, err := m.auth.EnsureAuthenticatedUser(c.Request().Context(), sess)
		if err != nil {
			return errors.WithStack(err)
		}
		c.Set(keyUser, user)

		return next(c)
	}
}

// RequireRole checks the role of the authenticated user.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return errors.WithStack(domainerrors.ErrUnauthenticated)
			}
			if user.Role != requiredRole {
				return errors.WithStack(domainerrors.ErrForbidden.WithDetails("requires role " + requiredRole.String()))
			}

			return next(c)
		}
	}
}

// CurrentUser returns the user set by Authenticate, or nil.
func CurrentUser(c echo.Context) *entity.User {
	user, _ := c.Get(keyUser).(*entity.User)

	return user
}
