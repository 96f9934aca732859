package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vinayak-mandal/finflow/internal/transaction"
)

// RegisterTransactionRoutes wires income/expense record management.
func RegisterTransactionRoutes(r fiber.Router, h *transaction.Handler) {
	r.Post("/transactions", h.Create)
	r.Get("/transactions", h.List)
	r.Patch("/transactions/:kind/:id", h.Update)
	r.Delete("/transactions/:kind/:id", h.Delete)
}
