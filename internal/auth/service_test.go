package auth

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/vinayak-mandal/finflow/internal/logging"
	"github.com/vinayak-mandal/finflow/internal/session"
	"github.com/vinayak-mandal/finflow/internal/user"
)

type memorySessions struct {
	saved map[string]user.Identity
}

func newMemorySessions() *memorySessions {
	return &memorySessions{saved: make(map[string]user.Identity)}
}

func (m *memorySessions) Restore(_ context.Context, token string) (user.Identity, bool, error) {
	id, ok := m.saved[token]
	return id, ok, nil
}

func (m *memorySessions) Save(_ context.Context, token string, identity user.Identity) error {
	m.saved[token] = identity
	return nil
}

func (m *memorySessions) Clear(_ context.Context, token string) error {
	delete(m.saved, token)
	return nil
}

var _ session.Store = (*memorySessions)(nil)

func newTestService(t *testing.T) (*Service, user.Repository, *memorySessions) {
	t.Helper()
	repo := user.NewMemoryRepository()
	sessions := newMemorySessions()
	return NewService(repo, sessions, logging.Discard()), repo, sessions
}

func seed(t *testing.T, repo user.Repository, id, name, role, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := repo.Create(context.Background(), user.User{ID: id, Name: name, Role: role, PasswordHash: hash}); err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc, repo, sessions := newTestService(t)
	ctx := context.Background()
	seed(t, repo, "vm001", "Asha", user.RoleAdmin, "top-secret")

	identity, token, err := svc.Login(ctx, Credentials{UserID: "vm001", Password: "top-secret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if identity.Name != "Asha" || identity.Role != user.RoleAdmin {
		t.Fatalf("identity not populated: %+v", identity)
	}
	if token == "" {
		t.Fatalf("expected a session token")
	}
	if saved, ok := sessions.saved[token]; !ok || saved != identity {
		t.Fatalf("session not established for token")
	}
}

func TestLoginDefaultsBlankName(t *testing.T) {
	svc, repo, _ := newTestService(t)
	seed(t, repo, "vm002", "", user.RoleMember, "top-secret")

	identity, _, err := svc.Login(context.Background(), Credentials{UserID: "vm002", Password: "top-secret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if identity.Name != "User vm002" {
		t.Fatalf("expected default name, got %q", identity.Name)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()
	seed(t, repo, "vm001", "Asha", user.RoleMember, "top-secret")

	// Wrong password and unknown id must be indistinguishable.
	if _, _, err := svc.Login(ctx, Credentials{UserID: "vm001", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(ctx, Credentials{UserID: "nobody", Password: "top-secret"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown id: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogout(t *testing.T) {
	svc, repo, sessions := newTestService(t)
	ctx := context.Background()
	seed(t, repo, "vm001", "Asha", user.RoleMember, "top-secret")

	_, token, err := svc.Login(ctx, Credentials{UserID: "vm001", Password: "top-secret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := svc.Logout(ctx, token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok, _ := sessions.Restore(ctx, token); ok {
		t.Fatalf("session should be gone after logout")
	}
}
