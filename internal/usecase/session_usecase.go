// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"tradefood/internal/domain/entity"
	"tradefood/internal/domain/state"
)

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput defines the data required to open a company account.
type RegisterInput struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	FirstName   string `json:"firstName" validate:"max=100"`
	LastName    string `json:"lastName" validate:"max=100"`
	CompanyName string `json:"companyName" validate:"required,max=200"`
	Siret       string `json:"siret" validate:"omitempty,numeric,len=14"`
	Phone       string `json:"phone" validate:"omitempty,max=20"`
}

// Authenticator resolves the logged-in user of a session.
type Authenticator interface {
	// EnsureAuthenticatedUser returns the cached user or, when only a token is
	// known, refreshes it if expired and loads the user from the backend.
	// Every failure is reported as domainerrors.ErrUnauthenticated.
	EnsureAuthenticatedUser(ctx context.Context, sess *state.Session) (*entity.User, error)
}

// SessionUsecase defines authentication and account-context operations.
type SessionUsecase interface {
	Authenticator

	Login(ctx context.Context, sess *state.Session, input LoginInput) (*entity.User, error)
	Register(ctx context.Context, sess *state.Session, input RegisterInput) (*entity.User, error)

	// Logout revokes the token remotely on a best-effort basis and always clears the session.
	Logout(ctx context.Context, sess *state.Session) error

	// Refresh exchanges the stored refresh token for a new token pair.
	Refresh(ctx context.Context, sess *state.Session) error

	// ListClients returns the clients of a sales agent.
	ListClients(ctx context.Context, sess *state.Session) ([]*entity.Client, error)

	// SelectClient sets (or, with nil, clears) the client a sales agent orders for.
	SelectClient(ctx context.Context, sess *state.Session, clientID *int64) error
}
