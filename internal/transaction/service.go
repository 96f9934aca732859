package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vinayak-mandal/finflow/internal/money"
	"github.com/vinayak-mandal/finflow/internal/policy"
	"github.com/vinayak-mandal/finflow/internal/user"
)

var (
	// ErrValidation marks input rejected before any write was attempted.
	ErrValidation = errors.New("validation failed")

	// ErrForbidden indicates the caller may not touch the record.
	ErrForbidden = errors.New("forbidden")
)

// Service validates and authorizes transaction operations. The repository
// itself is unconditional; the owner-or-admin rule lives here.
type Service struct {
	repo Repository
}

// NewService builds a transaction service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput captures a new record submission.
type CreateInput struct {
	Kind   Kind
	Amount money.Paise
	Label  string
}

// Create validates and stores a new record owned by the caller.
func (s *Service) Create(ctx context.Context, identity user.Identity, input CreateInput) (Transaction, error) {
	label, err := validate(input.Amount, input.Label)
	if err != nil {
		return Transaction{}, err
	}

	tx := Transaction{
		ID:        uuid.NewString(),
		Kind:      input.Kind,
		Amount:    input.Amount,
		Label:     label,
		OwnerID:   identity.UserID,
		OwnerName: identity.Name,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, tx); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// List returns records of the given kind, newest first. Admins see every
// member's records, members only their own.
func (s *Service) List(ctx context.Context, identity user.Identity, kind Kind) ([]Transaction, error) {
	scope := ScopeOwnedBy(identity.UserID)
	if policy.CanViewAdminPanel(identity) {
		scope = ScopeAll()
	}
	return s.repo.List(ctx, kind, scope)
}

// Update patches amount and/or label of an existing record, subject to the
// owner-or-admin rule. Owner and created time are immutable.
func (s *Service) Update(ctx context.Context, identity user.Identity, kind Kind, id string, patch Patch) (Transaction, error) {
	existing, err := s.repo.Get(ctx, kind, id)
	if err != nil {
		return Transaction{}, err
	}
	if !policy.CanEdit(identity, existing.OwnerID) {
		return Transaction{}, ErrForbidden
	}

	amount := existing.Amount
	if patch.Amount != nil {
		amount = *patch.Amount
	}
	label := existing.Label
	if patch.Label != nil {
		label = *patch.Label
	}
	trimmed, err := validate(amount, label)
	if err != nil {
		return Transaction{}, err
	}
	if patch.Label != nil {
		patch.Label = &trimmed
	}

	if err := s.repo.Update(ctx, kind, id, patch); err != nil {
		return Transaction{}, err
	}
	return s.repo.Get(ctx, kind, id)
}

// Delete removes a record permanently, subject to the owner-or-admin rule.
func (s *Service) Delete(ctx context.Context, identity user.Identity, kind Kind, id string) error {
	existing, err := s.repo.Get(ctx, kind, id)
	if err != nil {
		return err
	}
	if !policy.CanEdit(identity, existing.OwnerID) {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, kind, id)
}

func validate(amount money.Paise, label string) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return "", fmt.Errorf("%w: label must not be empty", ErrValidation)
	}
	return label, nil
}
