// Package analytics filters transactions to a period window and buckets them
// into time slots for charting.
package analytics

import (
	"fmt"
	"time"

	"github.com/jinzhu/now"

	"github.com/vinayak-mandal/finflow/internal/money"
	"github.com/vinayak-mandal/finflow/internal/transaction"
)

// Period selects both the filter window and the bucketing granularity.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// ParsePeriod validates a period string from the request.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodDay, PeriodWeek, PeriodMonth:
		return Period(s), nil
	default:
		return "", fmt.Errorf("unknown period %q", s)
	}
}

// Bucket is one chart slot holding summed income and expense.
type Bucket struct {
	Label   string
	Income  money.Paise
	Expense money.Paise
}

// Totals are whole-window sums, independent of bucket boundaries.
type Totals struct {
	Income  money.Paise
	Expense money.Paise
}

// noDataLabel is emitted when a day view has no activity in any hour.
const noDataLabel = "No Data"

// WindowStart returns the inclusive lower bound of the filter window.
// Day is calendar-aligned to local midnight; week and month are rolling
// offsets from now.
func WindowStart(period Period, ref time.Time) time.Time {
	switch period {
	case PeriodDay:
		return now.New(ref).BeginningOfDay()
	case PeriodWeek:
		return ref.AddDate(0, 0, -7)
	default:
		return ref.AddDate(0, -1, 0)
	}
}

// FilterWindow keeps transactions whose creation time falls within
// [WindowStart, ref], both ends inclusive.
func FilterWindow(txs []transaction.Transaction, period Period, ref time.Time) []transaction.Transaction {
	start := WindowStart(period, ref)
	kept := make([]transaction.Transaction, 0, len(txs))
	for _, tx := range txs {
		if !tx.CreatedAt.Before(start) && !tx.CreatedAt.After(ref) {
			kept = append(kept, tx)
		}
	}
	return kept
}

// BucketTransactions filters both sets to the period window and produces the
// ordered chart buckets. ref's location defines local time for hour and
// calendar-date matching.
func BucketTransactions(income, expenses []transaction.Transaction, period Period, ref time.Time) []Bucket {
	income = FilterWindow(income, period, ref)
	expenses = FilterWindow(expenses, period, ref)

	switch period {
	case PeriodDay:
		return bucketByHour(income, expenses, ref.Location())
	case PeriodWeek:
		return bucketByDay(income, expenses, ref)
	default:
		return bucketByWeek(income, expenses, ref)
	}
}

// ComputeTotals sums the filtered sets without regard to bucket boundaries.
func ComputeTotals(income, expenses []transaction.Transaction, period Period, ref time.Time) Totals {
	var t Totals
	for _, tx := range FilterWindow(income, period, ref) {
		t.Income += tx.Amount
	}
	for _, tx := range FilterWindow(expenses, period, ref) {
		t.Expense += tx.Amount
	}
	return t
}

// bucketByHour produces one bucket per hour of day ("00:00".."23:00"),
// dropping hours with no activity. A transaction lands in the bucket of its
// local hour whatever its calendar day inside the window. When every hour is
// empty a single placeholder bucket is returned.
func bucketByHour(income, expenses []transaction.Transaction, loc *time.Location) []Bucket {
	var incomeByHour, expenseByHour [24]money.Paise
	for _, tx := range income {
		incomeByHour[tx.CreatedAt.In(loc).Hour()] += tx.Amount
	}
	for _, tx := range expenses {
		expenseByHour[tx.CreatedAt.In(loc).Hour()] += tx.Amount
	}

	buckets := make([]Bucket, 0, 24)
	for h := 0; h < 24; h++ {
		if incomeByHour[h] == 0 && expenseByHour[h] == 0 {
			continue
		}
		buckets = append(buckets, Bucket{
			Label:   fmt.Sprintf("%02d:00", h),
			Income:  incomeByHour[h],
			Expense: expenseByHour[h],
		})
	}
	if len(buckets) == 0 {
		return []Bucket{{Label: noDataLabel}}
	}
	return buckets
}

// bucketByDay produces exactly 7 buckets for the last 7 calendar days
// including today, oldest first, labeled with short weekday names. Membership
// is by matching local calendar date; empty buckets stay in the output.
func bucketByDay(income, expenses []transaction.Transaction, ref time.Time) []Bucket {
	loc := ref.Location()
	buckets := make([]Bucket, 0, 7)
	for i := 6; i >= 0; i-- {
		day := ref.AddDate(0, 0, -i)
		b := Bucket{Label: day.Format("Mon")}
		for _, tx := range income {
			if sameDate(tx.CreatedAt.In(loc), day) {
				b.Income += tx.Amount
			}
		}
		for _, tx := range expenses {
			if sameDate(tx.CreatedAt.In(loc), day) {
				b.Expense += tx.Amount
			}
		}
		buckets = append(buckets, b)
	}
	return buckets
}

// bucketByWeek produces exactly 4 buckets "Week 1".."Week 4", oldest first.
// Bucket k covers the 7-day span ending (4-k)*7 days before ref, inclusive at
// both ends. Adjacent spans share a boundary instant; a transaction exactly
// on it counts in the earlier span, so spans are scanned oldest first and the
// first match wins.
func bucketByWeek(income, expenses []transaction.Transaction, ref time.Time) []Bucket {
	type span struct{ start, end time.Time }
	spans := make([]span, 4)
	buckets := make([]Bucket, 4)
	for k := 0; k < 4; k++ {
		end := ref.AddDate(0, 0, -(3-k)*7)
		spans[k] = span{start: end.AddDate(0, 0, -7), end: end}
		buckets[k] = Bucket{Label: fmt.Sprintf("Week %d", k+1)}
	}

	assign := func(ts time.Time) int {
		for k, s := range spans {
			if !ts.Before(s.start) && !ts.After(s.end) {
				return k
			}
		}
		return -1
	}

	for _, tx := range income {
		if k := assign(tx.CreatedAt); k >= 0 {
			buckets[k].Income += tx.Amount
		}
	}
	for _, tx := range expenses {
		if k := assign(tx.CreatedAt); k >= 0 {
			buckets[k].Expense += tx.Amount
		}
	}
	return buckets
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
