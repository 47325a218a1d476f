// Package auth reads the viewer identity out of the platform session
// token. Identity and session management themselves live on the
// managed backend; this gateway only decodes what the platform already
// issued.
package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"

	"turnroom/contract"
	"turnroom/domain"
	"turnroom/errors"
)

// sessionClaims is the subset of the platform token the engine reads.
type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenIdentity implements contract.IIdentityGateway over a session
// token string. The signature is the backend's to verify on every
// call; the client only needs the claims, so the token is parsed
// without local verification.
type TokenIdentity struct {
	token string
}

var _ contract.IIdentityGateway = (*TokenIdentity)(nil)

func NewTokenIdentity(token string) *TokenIdentity {
	return &TokenIdentity{token: token}
}

// CurrentUser decodes the token into the viewer id and email. An empty
// or undecodable token means the viewer is anonymous.
func (g *TokenIdentity) CurrentUser(_ context.Context) (domain.User, error) {
	if g.token == "" {
		return domain.User{}, errors.ErrAnonymous
	}

	claims := &sessionClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(g.token, claims); err != nil {
		return domain.User{}, errors.ErrInvalidToken
	}
	if claims.Subject == "" {
		return domain.User{}, errors.ErrAnonymous
	}
	return domain.User{ID: claims.Subject, Email: claims.Email}, nil
}
