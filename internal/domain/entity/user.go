package entity

import "strings"

// User is the logged-in account as returned by the backend.
type User struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
	Role        Role   `json:"role"`
}

// IsAgent reports whether the user orders on behalf of clients.
func (u *User) IsAgent() bool {
	return u != nil && u.Role == RoleAgent
}

// DisplayName is the name shown next to the user's contributions.
func (u *User) DisplayName() string {
	if name := strings.TrimSpace(u.FirstName + " " + u.LastName); name != "" {
		return name
	}
	if u.CompanyName != "" {
		return u.CompanyName
	}

	return u.Email
}

// Client is a company account a sales agent can order for.
type Client struct {
	ID          int64  `json:"id"`
	CompanyName string `json:"companyName"`
	Email       string `json:"email,omitempty"`
	City        string `json:"city,omitempty"`
}

// AuthTokens is the token pair issued by the backend.
type AuthTokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// AuthResult is the outcome of a login or registration.
type AuthResult struct {
	Tokens AuthTokens
	User   *User // May be nil when the backend only returns tokens.
}

// Registration holds the data of a new company account.
type Registration struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	CompanyName string
	Siret       string
	Phone       string
}
