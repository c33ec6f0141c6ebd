// Package auth covers the email-only sign-in flow. There is no password
// and no real token exchange; the login endpoint only confirms whether the
// email belongs to a known user.
package auth

import (
	"context"

	"github.com/storefront-poc-v1/client/internal/shop/api"
	"github.com/storefront-poc-v1/client/internal/shop/model"
	"github.com/storefront-poc-v1/client/internal/shop/session"
	logx "github.com/storefront-poc-v1/client/pkg/logger"
)

type Service struct {
	api      *api.Client
	sessions *session.Store
}

func NewService(client *api.Client, sessions *session.Store) *Service {
	return &Service{api: client, sessions: sessions}
}

// Login checks the email against the API and, only on a positive match,
// persists the returned user as the current session. A negative match
// leaves the session untouched and is not an error.
func (s *Service) Login(ctx context.Context, email string) (*model.User, bool, error) {
	user, exists, err := s.api.CheckEmail(ctx, email)
	if err != nil {
		return nil, false, err
	}
	if !exists {
		return nil, false, nil
	}

	if err := s.sessions.Set(ctx, user); err != nil {
		return nil, false, err
	}
	logx.Info().Str("email", user.Email).Msg("signed in")
	return user, true, nil
}

// Logout clears the session. Also used for guest access, which starts from
// a clean slate.
func (s *Service) Logout(ctx context.Context) error {
	return s.sessions.Logout(ctx)
}
