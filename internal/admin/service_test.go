package admin

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/vinayak-mandal/finflow/internal/transaction"
	"github.com/vinayak-mandal/finflow/internal/user"
)

func TestOverviewMergesAndLimitsFeed(t *testing.T) {
	users := user.NewMemoryRepository()
	txs := transaction.NewMemoryRepository()
	ctx := context.Background()

	for _, u := range []user.User{
		{ID: "vm001", Name: "Asha", Role: user.RoleMember},
		{ID: "vm099", Name: "Admin", Role: user.RoleAdmin},
	} {
		if err := users.Create(ctx, u); err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 8; i++ {
		if err := txs.Create(ctx, transaction.Transaction{
			ID: fmt.Sprintf("inc-%d", i), Kind: transaction.KindIncome, Amount: 10000,
			Label: "Membership", OwnerID: "vm001", CreatedAt: base.Add(time.Duration(2*i) * time.Minute),
		}); err != nil {
			t.Fatalf("seed income: %v", err)
		}
		if err := txs.Create(ctx, transaction.Transaction{
			ID: fmt.Sprintf("exp-%d", i), Kind: transaction.KindExpense, Amount: 5000,
			Label: "Supplies", OwnerID: "vm001", CreatedAt: base.Add(time.Duration(2*i+1) * time.Minute),
		}); err != nil {
			t.Fatalf("seed expense: %v", err)
		}
	}

	overview, err := NewService(users, txs).Overview(ctx)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if len(overview.Users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(overview.Users))
	}
	if len(overview.Recent) != 10 {
		t.Fatalf("feed must be capped at 10, got %d", len(overview.Recent))
	}
	// Newest first across both kinds, alternating expense/income from the seed.
	if overview.Recent[0].ID != "exp-7" || overview.Recent[1].ID != "inc-7" {
		t.Fatalf("feed order wrong: %s then %s", overview.Recent[0].ID, overview.Recent[1].ID)
	}
	for i := 1; i < len(overview.Recent); i++ {
		if overview.Recent[i].CreatedAt.After(overview.Recent[i-1].CreatedAt) {
			t.Fatalf("feed not in descending time order at %d", i)
		}
	}
}
