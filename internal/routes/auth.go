package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vinayak-mandal/finflow/internal/auth"
)

// RegisterAuthRoutes wires authentication endpoints. Login is the only
// unauthenticated operation in the API.
func RegisterAuthRoutes(r fiber.Router, h *auth.Handler, rateLimiter fiber.Handler) {
	group := r.Group("/auth")
	if rateLimiter != nil {
		group.Post("/login", rateLimiter, h.Login)
	} else {
		group.Post("/login", h.Login)
	}
	group.Post("/logout", h.Logout)
}
