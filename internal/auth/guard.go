// Package auth resolves access tokens to users and owns the credential
// flows (signup, login, user listing). Every domain operation goes through
// Guard.Resolve before any other work happens.
package auth

import (
	"context"
	"strings"

	"moneystats/internal/apperr"
	"moneystats/internal/domain"
	"moneystats/internal/store"
	"moneystats/internal/token"

	"github.com/sirupsen/logrus" // Logging library
)

// TokenParser turns a raw token string into the identity it claims.
// Implemented by token.Service.
type TokenParser interface {
	Parse(tokenStr string) (*token.Identity, error)
}

// Guard is the single authorization checkpoint. It validates the token
// shape, delegates decoding to the token service and resolves the claimed
// username against the credential store. The record it returns is the only
// source of "who is acting"; user ids from request bodies are never
// trusted.
type Guard struct {
	tokens TokenParser           // Decodes token strings
	creds  store.CredentialStore // Resolves usernames to users
	log    logrus.FieldLogger    // Injected logger
}

// NewGuard wires a Guard from its collaborators.
func NewGuard(tokens TokenParser, creds store.CredentialStore, log logrus.FieldLogger) *Guard {
	return &Guard{tokens: tokens, creds: creds, log: log}
}

// Resolve turns an access token into the owning user record.
//
// Failure kinds, in order of detection: TOKEN_REQUIRED for a blank token,
// INVALID_TOKEN for a structurally malformed one, UNAUTHORIZED when the
// token service rejects it, USER_NOT_FOUND when the claimed username has
// no credential record.
func (g *Guard) Resolve(ctx context.Context, accessToken string) (*domain.User, error) {
	if strings.TrimSpace(accessToken) == "" {
		return nil, apperr.New(apperr.CodeTokenRequired, "access token is required")
	}
	// A JWT is three dot-separated segments. Anything else is malformed
	// before we even try to verify it.
	if strings.Count(accessToken, ".") != 2 {
		return nil, apperr.New(apperr.CodeInvalidToken, "access token is malformed")
	}
	identity, err := g.tokens.Parse(accessToken)
	if err != nil {
		g.log.WithFields(logrus.Fields{"error": err.Error()}).Warn("Token rejected")
		return nil, apperr.Wrap(apperr.CodeUnauthorized, "access token rejected", err)
	}
	user, err := g.creds.FindByUsername(ctx, identity.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		g.log.WithFields(logrus.Fields{"username": identity.Username}).Error("Token subject has no credential record")
		return nil, apperr.New(apperr.CodeUserNotFound, "user not found")
	}
	return user, nil
}
