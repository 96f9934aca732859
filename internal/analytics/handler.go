package analytics

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/vinayak-mandal/finflow/internal/money"
)

// Handler exposes the analytics and dashboard endpoints.
type Handler struct {
	svc *Service
}

// NewHandler builds an analytics HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type bucketResponse struct {
	Label   string `json:"label"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

// Report serves the period-scoped chart data. The requested period is echoed
// back so clients can discard responses that no longer match their selection.
func (h *Handler) Report(c *fiber.Ctx) error {
	period, err := ParsePeriod(c.Query("period", string(PeriodMonth)))
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	report := h.svc.Report(c.UserContext(), period)

	buckets := make([]bucketResponse, 0, len(report.Buckets))
	for _, b := range report.Buckets {
		buckets = append(buckets, bucketResponse{
			Label:   b.Label,
			Income:  b.Income.String(),
			Expense: b.Expense.String(),
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"period":  report.Period,
		"buckets": buckets,
		"totals": fiber.Map{
			"income":          report.Totals.Income.String(),
			"expense":         report.Totals.Expense.String(),
			"income_display":  money.FormatINR(report.Totals.Income),
			"expense_display": money.FormatINR(report.Totals.Expense),
			"income_count":    report.IncomeCount,
			"expense_count":   report.ExpenseCount,
		},
	})
}

// Dashboard serves the all-time summary cards.
func (h *Handler) Dashboard(c *fiber.Ctx) error {
	sum := h.svc.Summary(c.UserContext())
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"total_income":    sum.TotalIncome.String(),
		"total_expenses":  sum.TotalExpense.String(),
		"balance":         sum.Balance.String(),
		"income_display":  money.FormatINR(sum.TotalIncome),
		"expense_display": money.FormatINR(sum.TotalExpense),
		"balance_display": money.FormatINR(sum.Balance),
		"health":          sum.Health(),
	})
}
