package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vinayak-mandal/finflow/internal/admin"
)

// RegisterAdminRoutes wires the admin panel. The caller attaches the admin
// guard to the group.
func RegisterAdminRoutes(r fiber.Router, h *admin.Handler) {
	r.Get("/overview", h.Overview)
}
