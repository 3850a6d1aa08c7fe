package impl

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"time"

	deliverycontext "tradefood/internal/delivery/context"
	"tradefood/internal/domain/entity"
	domainerrors "tradefood/internal/domain/errors"
	"tradefood/internal/domain/repository"
	"tradefood/internal/domain/service"
	"tradefood/internal/domain/state"
	"tradefood/internal/errors"
	"tradefood/internal/usecase"
)

// Access tokens expiring within this window are refreshed before use.
const tokenRefreshLeeway = 30 * time.Second

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	authRepo repository.AuthRepository
	userRepo repository.UserRepository
	tokens   service.TokenInspector
	logger   *slog.Logger
	now      func() time.Time
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	authRepo repository.AuthRepository,
	userRepo repository.UserRepository,
	tokens service.TokenInspector,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		authRepo: authRepo,
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
		now:      time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// EnsureAuthenticatedUser implements usecase.Authenticator.
func (srv *sessionService) EnsureAuthenticatedUser(ctx context.Context, sess *state.Session) (*entity.User, error) {
	ctx = bind(ctx, sess)

	token, err := sess.Auth.Token(ctx)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, err.Error())
	}
	if token == "" {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "no access token")
	}

	// The token is checked even when the user is cached.
	// Opaque tokens cannot be inspected; the backend will tell.
	if claims, err := srv.tokens.Inspect(token); err == nil && claims.Expired(srv.now(), tokenRefreshLeeway) {
		srv.log(ctx).Debug("Access token expired, refreshing")
		if err := srv.Refresh(ctx, sess); err != nil {
			return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "access token expired")
		}
	}

	user, err := sess.Auth.User(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to read cached user", slog.Any("error", err))
	}
	if user != nil {
		return user, nil
	}

	user, err = srv.userRepo.Me(ctx)
	if err != nil {
		if isBackendRejection(err) {
			srv.log(ctx).Info("Stored token rejected by backend, clearing session", slog.Any("error", err))
			if clearErr := sess.Auth.Clear(ctx); clearErr != nil {
				srv.log(ctx).Warn("Failed to clear rejected session", slog.Any("error", clearErr))
			}
		}

		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, err.Error())
	}

	if err := sess.Auth.SetUser(ctx, user); err != nil {
		srv.log(ctx).Warn("Failed to cache user", slog.Any("error", err))
	}

	return user, nil
}

// Login authenticates with the backend and opens the session.
func (srv *sessionService) Login(ctx context.Context, sess *state.Session, input usecase.LoginInput) (*entity.User, error) {
	ctx = bind(ctx, sess)
	srv.log(ctx).Info("Logging in", slog.String("email", input.Email))

	if err := validateInput(input); err != nil {
		return nil, err
	}

	result, err := srv.authRepo.Login(ctx, input.Email, input.Password)
	if err != nil {
		if status := backendStatus(err); status == http.StatusBadRequest || status == http.StatusUnauthorized {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login rejected")
		}

		return nil, errors.Wrap(err, "failed to login")
	}

	return srv.open(ctx, sess, result)
}

// Register creates the company account and opens the session.
func (srv *sessionService) Register(ctx context.Context, sess *state.Session, input usecase.RegisterInput) (*entity.User, error) {
	ctx = bind(ctx, sess)
	srv.log(ctx).Info("Registering account", slog.String("email", input.Email))

	if err := validateInput(input); err != nil {
		return nil, err
	}

	result, err := srv.authRepo.Register(ctx, &entity.Registration{
		Email:       input.Email,
		Password:    input.Password,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		CompanyName: input.CompanyName,
		Siret:       input.Siret,
		Phone:       input.Phone,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register")
	}

	return srv.open(ctx, sess, result)
}

// open stores a fresh login, loading the user when the backend did not return it.
func (srv *sessionService) open(ctx context.Context, sess *state.Session, result *entity.AuthResult) (*entity.User, error) {
	if result.Tokens.AccessToken == "" {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "backend returned no access token")
	}

	if err := sess.Auth.SetSession(ctx, result.Tokens, result.User); err != nil {
		return nil, errors.Wrap(err, "failed to store session")
	}
	// A previous user's wizard must not leak into this one.
	if err := sess.Checkout.Reset(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to reset checkout")
	}
	if err := sess.Favorites.Clear(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to reset favorites")
	}

	user, err := srv.EnsureAuthenticatedUser(ctx, sess)
	if err != nil {
		return nil, err
	}
	if !user.Role.IsValid() {
		if user, err = srv.roleFromToken(ctx, sess, result.Tokens.AccessToken, user); err != nil {
			return nil, err
		}
	}
	srv.log(ctx).Info("Session opened", slog.Int64("user_id", user.ID), slog.String("role", user.Role.String()))

	return user, nil
}

// roleFromToken fills in the role of a user profile that came back without
// one, using the roles claimed by the access token.
func (srv *sessionService) roleFromToken(ctx context.Context, sess *state.Session, token string, user *entity.User) (*entity.User, error) {
	var claimed []string
	if claims, err := srv.tokens.Inspect(token); err == nil {
		claimed = claims.Roles
	}

	withRole := *user
	withRole.Role = entity.ParseRoles(claimed).Primary()
	if err := sess.Auth.SetUser(ctx, &withRole); err != nil {
		return nil, errors.Wrap(err, "failed to store user")
	}

	return &withRole, nil
}

// Logout implements usecase.SessionUsecase.
func (srv *sessionService) Logout(ctx context.Context, sess *state.Session) error {
	ctx = bind(ctx, sess)

	token, err := sess.Auth.Token(ctx)
	if err == nil && token != "" {
		if err := srv.authRepo.Logout(ctx); err != nil {
			srv.log(ctx).Warn("Remote logout failed, clearing session anyway", slog.Any("error", err))
		}
	}

	if err := sess.Auth.Clear(ctx); err != nil {
		return errors.Wrap(err, "failed to clear session")
	}
	if err := sess.Checkout.Reset(ctx); err != nil {
		return errors.Wrap(err, "failed to reset checkout")
	}
	if err := sess.Favorites.Clear(ctx); err != nil {
		return errors.Wrap(err, "failed to reset favorites")
	}
	srv.log(ctx).Info("Logged out")

	return nil
}

// Refresh implements usecase.SessionUsecase.
func (srv *sessionService) Refresh(ctx context.Context, sess *state.Session) error {
	ctx = bind(ctx, sess)

	refreshToken, err := sess.Auth.RefreshToken(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to read refresh token")
	}
	if refreshToken == "" {
		return errors.Wrap(domainerrors.ErrUnauthenticated, "no refresh token")
	}

	tokens, err := srv.authRepo.Refresh(ctx, refreshToken)
	if err != nil {
		srv.log(ctx).Info("Token refresh failed", slog.Any("error", err))
		if isBackendRejection(err) {
			if clearErr := sess.Auth.Clear(ctx); clearErr != nil {
				srv.log(ctx).Warn("Failed to clear session", slog.Any("error", clearErr))
			}

			return errors.Wrap(domainerrors.ErrUnauthenticated, "refresh token rejected")
		}

		return errors.Wrap(err, "failed to refresh token")
	}
	if tokens.AccessToken == "" {
		return errors.Wrap(domainerrors.ErrUnauthenticated, "backend returned no access token")
	}

	return errors.Wrap(sess.Auth.SetTokens(ctx, *tokens), "failed to store tokens")
}

// ListClients implements usecase.SessionUsecase.
func (srv *sessionService) ListClients(ctx context.Context, sess *state.Session) ([]*entity.Client, error) {
	ctx = bind(ctx, sess)

	user, err := srv.EnsureAuthenticatedUser(ctx, sess)
	if err != nil {
		return nil, err
	}
	if !user.IsAgent() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only sales agents have clients")
	}

	clients, err := srv.userRepo.ListClients(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list clients")
	}

	return clients, nil
}

// SelectClient implements usecase.SessionUsecase.
func (srv *sessionService) SelectClient(ctx context.Context, sess *state.Session, clientID *int64) error {
	ctx = bind(ctx, sess)

	if clientID != nil {
		clients, err := srv.ListClients(ctx, sess)
		if err != nil {
			return err
		}
		if !slices.ContainsFunc(clients, func(c *entity.Client) bool { return c.ID == *clientID }) {
			return errors.Wrapf(domainerrors.ErrNotFound, "client %d", *clientID)
		}
	} else if _, err := srv.EnsureAuthenticatedUser(ctx, sess); err != nil {
		return err
	}

	srv.log(ctx).Info("Selecting client", slog.Any("client_id", clientID))

	return errors.Wrap(sess.Auth.SelectClient(ctx, clientID), "failed to select client")
}
