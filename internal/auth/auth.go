package auth

import "github.com/golang-jwt/jwt/v5"

// Authenticator validates bearer tokens issued by the identity provider.
// The token subject is the provider's user id.
type Authenticator interface {
	GenerateToken(userID string) (string, error)
	ValidateToken(token string) (*jwt.Token, error)
}
