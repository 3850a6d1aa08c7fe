// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	"tradefood/internal/domain/service"
	"tradefood/internal/errors"
)

// jwtInspector reads backend-issued JWTs without verifying their signature.
type jwtInspector struct {
	parser *jwt.Parser
}

// NewJWTInspector is the constructor for jwtInspector.
func NewJWTInspector() service.TokenInspector {
	return &jwtInspector{
		parser: jwt.NewParser(),
	}
}

// Inspect decodes the claims of token. The backend verifies the signature on
// every call; the storefront only needs the expiry and the roles.
func (s *jwtInspector) Inspect(token string) (*service.TokenClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := s.parser.ParseUnverified(token, claims); err != nil {
		return nil, errors.Wrap(err, "failed to parse access token")
	}

	result := &service.TokenClaims{
		Subject: subject(claims),
		Roles:   roles(claims),
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, errors.Wrap(err, "invalid exp claim")
	}
	if exp != nil {
		result.ExpiresAt = exp.Time
	}

	return result, nil
}

// subject accepts both string and numeric "sub" claims.
func subject(claims jwt.MapClaims) string {
	switch sub := claims["sub"].(type) {
	case string:
		return sub
	case float64:
		return strconv.FormatInt(int64(sub), 10)
	default:
		return ""
	}
}

// roles accepts a "roles" list or a single "role".
func roles(claims jwt.MapClaims) []string {
	var result []string
	if list, ok := claims["roles"].([]any); ok {
		for _, r := range list {
			if s, ok := r.(string); ok {
				result = append(result, s)
			}
		}
	}
	if role, ok := claims["role"].(string); ok && role != "" {
		result = append(result, role)
	}

	return result
}
