package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenService abstracts access-token validation. Credential issuance itself
// is an external collaborator; the storefront only validates bearer tokens to
// attach an owner to carts/orders and to guard the admin surface.
type TokenService interface {
	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
}
