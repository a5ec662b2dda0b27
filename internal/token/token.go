// Package token issues and parses the signed access tokens that carry a
// user's identity claim between requests.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// Claims carried by an access token.
type Claims struct {
	Username             string `json:"username"` // Subject username
	Role                 string `json:"role"`     // Subject role
	jwt.RegisteredClaims        // Standard JWT claims
}

// Identity is the claim a parsed token resolves to. It names who the
// caller says they are; the guard still has to resolve it against the
// credential store.
type Identity struct {
	Username string // Claimed username
	Role     string // Claimed role
}

// Service signs and verifies HS256 tokens with a shared secret.
type Service struct {
	secret []byte        // HMAC signing secret
	ttl    time.Duration // Token lifetime
}

// NewService returns a token service using the given secret. Tokens
// expire after 24 hours.
func NewService(secret string) *Service {
	return &Service{secret: []byte(secret), ttl: 24 * time.Hour}
}

// Generate creates a signed token for the given identity.
func (s *Service) Generate(username, role string) (string, error) {
	claims := Claims{
		Username: username, // Custom claim for the username
		Role:     role,     // Custom claim for the role
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)), // Expiry
			IssuedAt:  jwt.NewNumericDate(time.Now()),            // Issued at current time
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString(s.secret)                        // Sign with the shared secret
}

// Parse validates a token string and returns the identity it claims.
// Any signature, expiry or claim failure is returned as-is; callers map
// it to their own error kind.
func (s *Service) Parse(tokenStr string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return s.secret, nil // Secret key for validation
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}
	if claims.Username == "" {
		return nil, errors.New("token has no username claim")
	}
	return &Identity{Username: claims.Username, Role: claims.Role}, nil
}
