package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vinayak-mandal/finflow/internal/session"
	"github.com/vinayak-mandal/finflow/internal/user"
)

// ErrInvalidCredentials covers unknown ids, wrong passwords, and lookup
// failures alike, so the response never reveals which part was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Credentials is a presented id/password pair.
type Credentials struct {
	UserID   string
	Password string
}

// Service authenticates members and owns session issue and teardown.
type Service struct {
	users    user.Repository
	sessions session.Store
	logger   *slog.Logger
}

// NewService creates a new auth service.
func NewService(users user.Repository, sessions session.Store, logger *slog.Logger) *Service {
	return &Service{users: users, sessions: sessions, logger: logger}
}

// Login verifies the credentials, saves a session, and returns the identity
// with its session token.
func (s *Service) Login(ctx context.Context, creds Credentials) (user.Identity, string, error) {
	u, err := s.users.FindByID(ctx, creds.UserID)
	if err != nil {
		if !errors.Is(err, user.ErrNotFound) {
			s.logger.Warn("user lookup failed during login", slog.Any("error", err))
		}
		return user.Identity{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(creds.Password)); err != nil {
		return user.Identity{}, "", ErrInvalidCredentials
	}

	identity := u.Identity()
	token := uuid.NewString()
	if err := s.sessions.Save(ctx, token, identity); err != nil {
		return user.Identity{}, "", err
	}
	return identity, token, nil
}

// Logout destroys the session for token.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Clear(ctx, token)
}
