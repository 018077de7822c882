package core

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/gharseva/provider-portal/internal/backend"
)

type authService struct {
	api    *backend.Client
	logger *zap.Logger
}

// NewAuthService creates the AuthService backed by the marketplace API.
func NewAuthService(api *backend.Client, logger *zap.Logger) AuthService {
	return &authService{api: api, logger: logger}
}

func (s *authService) Login(ctx context.Context, email, password string) (*backend.AuthResult, error) {
	return s.api.Login(ctx, email, password)
}

func (s *authService) Signup(ctx context.Context, name, email, password string) (*backend.AuthResult, error) {
	return s.api.Signup(ctx, name, email, password)
}

func (s *authService) Logout(ctx context.Context, cookies []*http.Cookie) error {
	return s.api.Logout(ctx, cookies)
}

func (s *authService) Probe(ctx context.Context, cookies []*http.Cookie) (*backend.Session, bool) {
	sess, err := s.api.Me(ctx, cookies)
	if err != nil {
		// Probe failure is "not authenticated", not an error condition.
		s.logger.Debug("session probe failed", zap.Error(err))
		return nil, false
	}
	return sess, true
}
