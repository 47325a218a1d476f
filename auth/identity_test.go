package auth

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"turnroom/domain"
	"turnroom/errors"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestTokenIdentity_CurrentUser(t *testing.T) {
	tests := []struct {
		description string
		token       func(t *testing.T) string
		want        domain.User
		wantErr     error
	}{
		{
			description: "Subject and email become the viewer identity",
			token: func(t *testing.T) string {
				return signedToken(t, jwt.MapClaims{"sub": "user-42", "email": "me@example.com"})
			},
			want: domain.User{ID: "user-42", Email: "me@example.com"},
		},
		{
			description: "Missing email still yields an identity",
			token: func(t *testing.T) string {
				return signedToken(t, jwt.MapClaims{"sub": "user-42"})
			},
			want: domain.User{ID: "user-42"},
		},
		{
			description: "Empty token is anonymous",
			token:       func(*testing.T) string { return "" },
			wantErr:     errors.ErrAnonymous,
		},
		{
			description: "Token without a subject is anonymous",
			token: func(t *testing.T) string {
				return signedToken(t, jwt.MapClaims{"email": "me@example.com"})
			},
			wantErr: errors.ErrAnonymous,
		},
		{
			description: "Garbage token is invalid",
			token:       func(*testing.T) string { return "not.a.token" },
			wantErr:     errors.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			gateway := NewTokenIdentity(tt.token(t))

			user, err := gateway.CurrentUser(context.Background())
			if tt.wantErr != nil {
				req.ErrorIs(err, tt.wantErr)
				return
			}
			req.NoError(err)
			req.Equal(tt.want, user)
		})
	}
}
