package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vinayak-mandal/finflow/internal/analytics"
)

// RegisterAnalyticsRoutes wires the dashboard summary and period analytics.
func RegisterAnalyticsRoutes(r fiber.Router, h *analytics.Handler) {
	r.Get("/dashboard", h.Dashboard)
	r.Get("/analytics", h.Report)
}
