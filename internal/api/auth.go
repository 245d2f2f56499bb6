// internal/api/auth.go
package api

import (
	"context"
	"net/http"
	"net/url"

	"afcare-client/internal/models"
)

// AuthService covers registration and login. Login is the one call on the
// whole API that is form-urlencoded rather than JSON.
type AuthService struct {
	c *Client
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	var user models.User
	if err := s.c.do(ctx, http.MethodPost, "/auth/users/", nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login exchanges credentials for a bearer token and stores it in the
// session, rearming the forced-logout guard.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.Token, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var token models.Token
	if err := s.c.do(ctx, http.MethodPost, "/auth/token", nil, form, &token); err != nil {
		return nil, err
	}

	if s.c.session != nil {
		if err := s.c.session.SetToken(ctx, token.AccessToken); err != nil {
			return nil, err
		}
	}

	return &token, nil
}

// Logout clears the local session. There is no server-side call; the token
// simply stops being presented.
func (s *AuthService) Logout(ctx context.Context) {
	if s.c.session != nil {
		s.c.session.Invalidate(ctx)
	}
}
