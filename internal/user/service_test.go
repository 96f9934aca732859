package user

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func seedUser(t *testing.T, repo Repository, id, name, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := repo.Create(context.Background(), User{ID: id, Name: name, Role: RoleMember, PasswordHash: hash}); err != nil {
		t.Fatalf("seed user: %v", err)
	}
}

func TestUpdateName(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()
	seedUser(t, repo, "vm001", "Asha", "sekrit-1")

	u, err := svc.UpdateName(ctx, "vm001", "  Asha Patil  ")
	if err != nil {
		t.Fatalf("update name: %v", err)
	}
	if u.Name != "Asha Patil" {
		t.Fatalf("expected trimmed name, got %q", u.Name)
	}

	if _, err := svc.UpdateName(ctx, "vm001", "   "); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for blank name, got %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()
	seedUser(t, repo, "vm001", "Asha", "sekrit-1")

	if err := svc.ChangePassword(ctx, "vm001", "sekrit-1", "sekrit-2", "sekrit-2"); err != nil {
		t.Fatalf("change password: %v", err)
	}
	u, err := repo.FindByID(ctx, "vm001")
	if err != nil {
		t.Fatalf("find user: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte("sekrit-2")); err != nil {
		t.Fatalf("new password not stored: %v", err)
	}
}

func TestChangePasswordValidation(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()
	seedUser(t, repo, "vm001", "Asha", "sekrit-1")

	cases := []struct {
		name                   string
		current, next, confirm string
	}{
		{"mismatched confirmation", "sekrit-1", "sekrit-2", "sekrit-3"},
		{"too short", "sekrit-1", "abc", "abc"},
		{"wrong current password", "nope", "sekrit-2", "sekrit-2"},
	}
	for _, c := range cases {
		if err := svc.ChangePassword(ctx, "vm001", c.current, c.next, c.confirm); !errors.Is(err, ErrValidation) {
			t.Fatalf("%s: expected validation error, got %v", c.name, err)
		}
	}

	// Failed attempts must leave the stored password untouched.
	u, _ := repo.FindByID(ctx, "vm001")
	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte("sekrit-1")); err != nil {
		t.Fatalf("original password should still verify: %v", err)
	}
}

func TestIdentityDefaultName(t *testing.T) {
	u := User{ID: "vm007", Role: RoleMember}
	id := u.Identity()
	if id.Name != "User vm007" {
		t.Fatalf("expected default name, got %q", id.Name)
	}
	u.Name = "Ganesh"
	if u.Identity().Name != "Ganesh" {
		t.Fatalf("expected stored name to win")
	}
}
