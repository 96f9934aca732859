package user

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 6

// ErrValidation marks profile input rejected before any write.
var ErrValidation = fmt.Errorf("validation failed")

// Service manages member profiles.
type Service struct {
	repo Repository
}

// NewService creates a new profile service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the user for the given id.
func (s *Service) Get(ctx context.Context, id string) (User, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateName changes the display name. The name must be non-empty after trimming.
func (s *Service) UpdateName(ctx context.Context, id, name string) (User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return User{}, fmt.Errorf("%w: name must not be empty", ErrValidation)
	}
	if err := s.repo.UpdateName(ctx, id, name); err != nil {
		return User{}, err
	}
	return s.repo.FindByID(ctx, id)
}

// ChangePassword verifies the current password and stores a hash of the new
// one. All checks run before any write.
func (s *Service) ChangePassword(ctx context.Context, id, current, newPassword, confirm string) error {
	if newPassword != confirm {
		return fmt.Errorf("%w: passwords do not match", ErrValidation)
	}
	if len(newPassword) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLen)
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(current)); err != nil {
		return fmt.Errorf("%w: current password is incorrect", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePasswordHash(ctx, id, hash)
}
