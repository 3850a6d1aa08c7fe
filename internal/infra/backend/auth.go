package backend

import (
	"context"
	"net/http"

	"tradefood/internal/domain/entity"
	"tradefood/internal/domain/repository"
)

var (
	_ repository.AuthRepository = (*Client)(nil)
	_ repository.UserRepository = (*Client)(nil)
)

type credentialsDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registrationDTO struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	CompanyName string `json:"companyName"`
	Siret       string `json:"siret,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

type refreshDTO struct {
	RefreshToken string `json:"refreshToken"`
}

// authResponseDTO accepts both "accessToken" and the older "token" field.
type authResponseDTO struct {
	AccessToken  string       `json:"accessToken"`
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken"`
	User         *entity.User `json:"user"`
}

func (d *authResponseDTO) tokens() entity.AuthTokens {
	access := d.AccessToken
	if access == "" {
		access = d.Token
	}

	return entity.AuthTokens{AccessToken: access, RefreshToken: d.RefreshToken}
}

// Login calls POST /auth/login.
func (c *Client) Login(ctx context.Context, email, password string) (*entity.AuthResult, error) {
	var out authResponseDTO
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, credentialsDTO{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}

	return &entity.AuthResult{Tokens: out.tokens(), User: out.User}, nil
}

// Register calls POST /auth/register.
func (c *Client) Register(ctx context.Context, registration *entity.Registration) (*entity.AuthResult, error) {
	body := registrationDTO{
		Email:       registration.Email,
		Password:    registration.Password,
		FirstName:   registration.FirstName,
		LastName:    registration.LastName,
		CompanyName: registration.CompanyName,
		Siret:       registration.Siret,
		Phone:       registration.Phone,
	}

	var out authResponseDTO
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, body, &out); err != nil {
		return nil, err
	}

	return &entity.AuthResult{Tokens: out.tokens(), User: out.User}, nil
}

// Refresh calls POST /auth/refresh.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*entity.AuthTokens, error) {
	var out authResponseDTO
	if err := c.do(ctx, http.MethodPost, "/auth/refresh", nil, refreshDTO{RefreshToken: refreshToken}, &out); err != nil {
		return nil, err
	}

	tokens := out.tokens()

	return &tokens, nil
}

// Logout calls POST /auth/logout.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

// Me calls GET /users/me.
func (c *Client) Me(ctx context.Context) (*entity.User, error) {
	var out entity.User
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ListClients calls GET /users/clients.
func (c *Client) ListClients(ctx context.Context) ([]*entity.Client, error) {
	var out []*entity.Client
	if err := c.do(ctx, http.MethodGet, "/users/clients", nil, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}
