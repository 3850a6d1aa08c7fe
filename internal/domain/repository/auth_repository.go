package repository

import (
	"context"

	"tradefood/internal/domain/entity"
)

// AuthRepository handles backend authentication.
type AuthRepository interface {
	Login(ctx context.Context, email, password string) (*entity.AuthResult, error)
	Register(ctx context.Context, registration *entity.Registration) (*entity.AuthResult, error)

	// Refresh exchanges a refresh token for a new token pair.
	Refresh(ctx context.Context, refreshToken string) (*entity.AuthTokens, error)

	// Logout revokes the current token on the backend.
	Logout(ctx context.Context) error
}

// UserRepository reads the logged-in account.
type UserRepository interface {
	// Me returns the user the current token belongs to.
	Me(ctx context.Context) (*entity.User, error)

	// ListClients returns the clients a sales agent manages.
	ListClients(ctx context.Context) ([]*entity.Client, error)
}
