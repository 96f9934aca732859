package analytics

import (
	"testing"
	"time"

	"github.com/vinayak-mandal/finflow/internal/money"
	"github.com/vinayak-mandal/finflow/internal/transaction"
)

var ist = time.FixedZone("IST", 5*3600+1800)

// Wednesday afternoon, 2024-03-20 15:00 IST.
var ref = time.Date(2024, time.March, 20, 15, 0, 0, 0, ist)

func income(amount money.Paise, at time.Time) transaction.Transaction {
	return transaction.Transaction{Kind: transaction.KindIncome, Amount: amount, Label: "income", CreatedAt: at}
}

func expense(amount money.Paise, at time.Time) transaction.Transaction {
	return transaction.Transaction{Kind: transaction.KindExpense, Amount: amount, Label: "expense", CreatedAt: at}
}

func TestWindowStart(t *testing.T) {
	day := WindowStart(PeriodDay, ref)
	if !day.Equal(time.Date(2024, time.March, 20, 0, 0, 0, 0, ist)) {
		t.Fatalf("day window should start at local midnight, got %v", day)
	}
	if got := WindowStart(PeriodWeek, ref); !got.Equal(ref.AddDate(0, 0, -7)) {
		t.Fatalf("week window should be a rolling 7 days, got %v", got)
	}
	if got := WindowStart(PeriodMonth, ref); !got.Equal(ref.AddDate(0, -1, 0)) {
		t.Fatalf("month window should be one calendar month back, got %v", got)
	}
}

func TestDayBucketByLocalHour(t *testing.T) {
	incomes := []transaction.Transaction{
		income(500000, time.Date(2024, time.March, 20, 14, 30, 0, 0, ist)),
		income(100000, time.Date(2024, time.March, 20, 9, 5, 0, 0, ist)),
	}
	expenses := []transaction.Transaction{
		expense(120000, time.Date(2024, time.March, 20, 14, 59, 59, 0, ist)),
	}

	buckets := BucketTransactions(incomes, expenses, PeriodDay, ref)
	if len(buckets) != 2 {
		t.Fatalf("empty hours should be dropped, got %d buckets", len(buckets))
	}
	if buckets[0].Label != "09:00" || buckets[0].Income != 100000 {
		t.Fatalf("unexpected first bucket %+v", buckets[0])
	}
	if buckets[1].Label != "14:00" || buckets[1].Income != 500000 || buckets[1].Expense != 120000 {
		t.Fatalf("14:30 and 14:59 must land in the 14:00 bucket, got %+v", buckets[1])
	}
}

func TestDayBucketExcludesYesterday(t *testing.T) {
	incomes := []transaction.Transaction{
		income(500000, time.Date(2024, time.March, 19, 23, 0, 0, 0, ist)),
	}
	buckets := BucketTransactions(incomes, nil, PeriodDay, ref)
	if len(buckets) != 1 || buckets[0].Label != "No Data" {
		t.Fatalf("yesterday's record should be filtered out, got %+v", buckets)
	}
	if buckets[0].Income != 0 || buckets[0].Expense != 0 {
		t.Fatalf("placeholder bucket must be zero-valued, got %+v", buckets[0])
	}
}

func TestWeekBucketShape(t *testing.T) {
	buckets := BucketTransactions(nil, nil, PeriodWeek, ref)
	if len(buckets) != 7 {
		t.Fatalf("week view must always have 7 buckets, got %d", len(buckets))
	}
	// Oldest first: the Wednesday reference yields Thu..Wed.
	wantLabels := []string{"Thu", "Fri", "Sat", "Sun", "Mon", "Tue", "Wed"}
	for i, b := range buckets {
		if b.Label != wantLabels[i] {
			t.Fatalf("bucket %d labeled %q, want %q", i, b.Label, wantLabels[i])
		}
		if b.Income != 0 || b.Expense != 0 {
			t.Fatalf("empty bucket should still be emitted with zero sums, got %+v", b)
		}
	}
}

func TestWeekBucketByCalendarDate(t *testing.T) {
	incomes := []transaction.Transaction{
		income(500000, time.Date(2024, time.March, 18, 8, 0, 0, 0, ist)),  // Monday
		income(200000, time.Date(2024, time.March, 20, 10, 0, 0, 0, ist)), // today
	}
	expenses := []transaction.Transaction{
		expense(120000, time.Date(2024, time.March, 18, 22, 0, 0, 0, ist)), // Monday
	}

	buckets := BucketTransactions(incomes, expenses, PeriodWeek, ref)
	if buckets[4].Label != "Mon" || buckets[4].Income != 500000 || buckets[4].Expense != 120000 {
		t.Fatalf("monday bucket wrong: %+v", buckets[4])
	}
	if buckets[6].Label != "Wed" || buckets[6].Income != 200000 {
		t.Fatalf("today's bucket wrong: %+v", buckets[6])
	}
}

func TestWeekFilterExcludesJustOutsideWindow(t *testing.T) {
	tooOld := income(500000, ref.AddDate(0, 0, -7).Add(-time.Hour)) // 7 days + 1 hour ago
	kept := FilterWindow([]transaction.Transaction{tooOld}, PeriodWeek, ref)
	if len(kept) != 0 {
		t.Fatalf("record 7 days + 1 hour old must be excluded")
	}

	onEdge := income(500000, ref.AddDate(0, 0, -7))
	if kept := FilterWindow([]transaction.Transaction{onEdge}, PeriodWeek, ref); len(kept) != 1 {
		t.Fatalf("record exactly at the window start must be included")
	}
}

func TestMonthBucketShape(t *testing.T) {
	buckets := BucketTransactions(nil, nil, PeriodMonth, ref)
	if len(buckets) != 4 {
		t.Fatalf("month view must always have 4 buckets, got %d", len(buckets))
	}
	for i, b := range buckets {
		want := []string{"Week 1", "Week 2", "Week 3", "Week 4"}[i]
		if b.Label != want {
			t.Fatalf("bucket %d labeled %q, want %q", i, b.Label, want)
		}
	}
}

func TestMonthBucketSpans(t *testing.T) {
	incomes := []transaction.Transaction{
		income(100000, ref.Add(-time.Hour)),    // Week 4: within 7 days of now
		income(200000, ref.AddDate(0, 0, -8)),  // Week 3
		income(300000, ref.AddDate(0, 0, -22)), // Week 1
		income(400000, ref.AddDate(0, 0, -15)), // Week 2
	}
	buckets := BucketTransactions(incomes, nil, PeriodMonth, ref)
	want := []money.Paise{300000, 400000, 200000, 100000}
	for i, b := range buckets {
		if b.Income != want[i] {
			t.Fatalf("bucket %q sum %v, want %v", b.Label, b.Income, want[i])
		}
	}
}

func TestMonthBucketBoundaryGoesToEarlierSpan(t *testing.T) {
	// Exactly 21 days before now is both the end of Week 1's span and the
	// start of Week 2's; the inclusive rule counts it once, in Week 1.
	boundary := income(500000, ref.AddDate(0, 0, -21))
	buckets := BucketTransactions([]transaction.Transaction{boundary}, nil, PeriodMonth, ref)

	if buckets[0].Income != 500000 {
		t.Fatalf("boundary record must land in Week 1, got %+v", buckets)
	}
	var total money.Paise
	for _, b := range buckets {
		total += b.Income
	}
	if total != 500000 {
		t.Fatalf("boundary record double-counted: bucket total %v", total)
	}
}

func TestTotalsMatchBucketSums(t *testing.T) {
	incomes := []transaction.Transaction{
		income(500000, ref.Add(-2*time.Hour)),
		income(250000, ref.AddDate(0, 0, -3)),
		income(125000, ref.AddDate(0, 0, -10)),
	}
	expenses := []transaction.Transaction{
		expense(120000, ref.Add(-30*time.Minute)),
		expense(80000, ref.AddDate(0, 0, -5)),
		expense(40000, ref.AddDate(0, 0, -17)),
	}

	for _, period := range []Period{PeriodDay, PeriodWeek, PeriodMonth} {
		buckets := BucketTransactions(incomes, expenses, period, ref)
		totals := ComputeTotals(incomes, expenses, period, ref)

		var bucketIncome, bucketExpense money.Paise
		for _, b := range buckets {
			bucketIncome += b.Income
			bucketExpense += b.Expense
		}
		if bucketIncome != totals.Income {
			t.Fatalf("%s: bucket income %v != totals %v", period, bucketIncome, totals.Income)
		}
		if bucketExpense != totals.Expense {
			t.Fatalf("%s: bucket expense %v != totals %v", period, bucketExpense, totals.Expense)
		}
	}
}

func TestFutureRecordsExcluded(t *testing.T) {
	future := income(500000, ref.Add(time.Hour))
	for _, period := range []Period{PeriodDay, PeriodWeek, PeriodMonth} {
		if kept := FilterWindow([]transaction.Transaction{future}, period, ref); len(kept) != 0 {
			t.Fatalf("%s: records after now must be excluded", period)
		}
	}
}

func TestParsePeriod(t *testing.T) {
	for _, s := range []string{"day", "week", "month"} {
		if _, err := ParsePeriod(s); err != nil {
			t.Fatalf("ParsePeriod(%q): %v", s, err)
		}
	}
	if _, err := ParsePeriod("year"); err == nil {
		t.Fatalf("expected error for unsupported period")
	}
}
