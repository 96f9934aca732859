// Package admin assembles the admin panel view: the member directory and a
// feed of recent activity across both transaction kinds.
package admin

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/vinayak-mandal/finflow/internal/transaction"
	"github.com/vinayak-mandal/finflow/internal/user"
)

// feedLimit caps the recent-transactions feed.
const feedLimit = 10

// Overview is the admin panel payload.
type Overview struct {
	Users  []user.User
	Recent []transaction.Transaction
}

// Service fetches the admin overview.
type Service struct {
	users        user.Repository
	transactions transaction.Repository
}

// NewService builds an admin service.
func NewService(users user.Repository, transactions transaction.Repository) *Service {
	return &Service{users: users, transactions: transactions}
}

// Overview loads users, income, and expenses together and waits for all
// three before merging. The feed holds the newest records of either kind.
func (s *Service) Overview(ctx context.Context) (Overview, error) {
	var (
		users    []user.User
		incomes  []transaction.Transaction
		expenses []transaction.Transaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.users.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		incomes, err = s.transactions.List(gctx, transaction.KindIncome, transaction.ScopeAll())
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = s.transactions.List(gctx, transaction.KindExpense, transaction.ScopeAll())
		return err
	})
	if err := g.Wait(); err != nil {
		return Overview{}, err
	}

	recent := make([]transaction.Transaction, 0, len(incomes)+len(expenses))
	recent = append(recent, incomes...)
	recent = append(recent, expenses...)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > feedLimit {
		recent = recent[:feedLimit]
	}

	return Overview{Users: users, Recent: recent}, nil
}
