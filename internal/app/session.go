package app

import (
	"context"
	"strings"

	"github.com/sainath-666/pgstay/internal/domain"
)

// SessionService owns login/logout against the backend and the cached
// identity. Authentication itself (hashing, token issuance) is the
// backend's; the client only stores what it is handed.
type SessionService struct {
	api   domain.MarketClient
	creds domain.CredentialStore
}

func NewSessionService(api domain.MarketClient, creds domain.CredentialStore) *SessionService {
	return &SessionService{api: api, creds: creds}
}

func (s *SessionService) Login(ctx context.Context, emailOrPhone, password string) (domain.Identity, error) {
	if strings.TrimSpace(emailOrPhone) == "" || password == "" {
		return domain.Identity{}, &domain.ValidationError{Field: domain.FieldCredentialsRequired}
	}
	id, err := s.api.Login(ctx, emailOrPhone, password)
	if err != nil {
		return domain.Identity{}, err
	}
	if err := s.creds.Save(ctx, id); err != nil {
		return domain.Identity{}, err
	}
	return id, nil
}

func (s *SessionService) Logout(ctx context.Context) error {
	return s.creds.Clear(ctx)
}

// Current returns the cached identity snapshot, nil when logged out.
func (s *SessionService) Current(ctx context.Context) (*domain.Identity, error) {
	return s.creds.Identity(ctx)
}
