package analytics

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vinayak-mandal/finflow/internal/money"
	"github.com/vinayak-mandal/finflow/internal/transaction"
)

// Report is a period-scoped analytics view across all members.
type Report struct {
	Period       Period
	Buckets      []Bucket
	Totals       Totals
	IncomeCount  int
	ExpenseCount int
}

// Summary is the all-time dashboard overview.
type Summary struct {
	TotalIncome  money.Paise
	TotalExpense money.Paise
	Balance      money.Paise
}

// Health classifies the balance for the dashboard summary card.
func (s Summary) Health() string {
	switch {
	case s.Balance > 0:
		return "positive"
	case s.Balance < 0:
		return "deficit"
	default:
		return "balanced"
	}
}

// Service computes reports over the full transaction set. Reads degrade to
// empty collections on failure so a broken backend shows zero totals rather
// than an error page.
type Service struct {
	repo   transaction.Repository
	logger *slog.Logger
	clock  func() time.Time
}

// NewService builds an analytics service using the wall clock.
func NewService(repo transaction.Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger, clock: time.Now}
}

// WithClock overrides the time source; tests pin it to a fixed instant.
func (s *Service) WithClock(clock func() time.Time) *Service {
	s.clock = clock
	return s
}

// fetchAll loads income and expense records together and waits for both; a
// failed read is logged and degrades to an empty set.
func (s *Service) fetchAll(ctx context.Context) ([]transaction.Transaction, []transaction.Transaction) {
	var income, expenses []transaction.Transaction

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		txs, err := s.repo.List(gctx, transaction.KindIncome, transaction.ScopeAll())
		if err != nil {
			s.logger.Warn("income fetch failed, reporting empty set", slog.Any("error", err))
			return nil
		}
		income = txs
		return nil
	})
	g.Go(func() error {
		txs, err := s.repo.List(gctx, transaction.KindExpense, transaction.ScopeAll())
		if err != nil {
			s.logger.Warn("expense fetch failed, reporting empty set", slog.Any("error", err))
			return nil
		}
		expenses = txs
		return nil
	})
	_ = g.Wait()

	return income, expenses
}

// Report buckets the requested period for charting. Computation starts only
// after both collections have resolved.
func (s *Service) Report(ctx context.Context, period Period) Report {
	income, expenses := s.fetchAll(ctx)
	ref := s.clock()

	return Report{
		Period:       period,
		Buckets:      BucketTransactions(income, expenses, period, ref),
		Totals:       ComputeTotals(income, expenses, period, ref),
		IncomeCount:  len(FilterWindow(income, period, ref)),
		ExpenseCount: len(FilterWindow(expenses, period, ref)),
	}
}

// Summary computes the all-time dashboard totals and balance.
func (s *Service) Summary(ctx context.Context) Summary {
	income, expenses := s.fetchAll(ctx)

	var sum Summary
	for _, tx := range income {
		sum.TotalIncome += tx.Amount
	}
	for _, tx := range expenses {
		sum.TotalExpense += tx.Amount
	}
	sum.Balance = sum.TotalIncome - sum.TotalExpense
	return sum
}
