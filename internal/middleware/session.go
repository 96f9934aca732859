package middleware

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/vinayak-mandal/finflow/internal/policy"
	"github.com/vinayak-mandal/finflow/internal/session"
	"github.com/vinayak-mandal/finflow/internal/user"
)

const identityLocal = "identity"

// BearerToken extracts the bearer token from the Authorization header, or ""
// when absent.
func BearerToken(c *fiber.Ctx) string {
	authz := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		return ""
	}
	return strings.TrimSpace(authz[len("Bearer "):])
}

// SessionAuth restores the identity for the presented bearer token. Requests
// without a live session are rejected; handlers past this guard can rely on
// Identity(c) being populated.
func SessionAuth(sessions session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := BearerToken(c)
		if token == "" {
			return fiber.NewError(http.StatusUnauthorized, "missing bearer token")
		}
		identity, ok, err := sessions.Restore(c.UserContext(), token)
		if err != nil {
			return fiber.NewError(http.StatusBadGateway, "session lookup failed")
		}
		if !ok {
			return fiber.NewError(http.StatusUnauthorized, "session expired or invalid")
		}
		c.Locals(identityLocal, identity)
		return c.Next()
	}
}

// RequireAdmin rejects non-admin identities. Must run after SessionAuth.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !policy.CanViewAdminPanel(Identity(c)) {
			return fiber.NewError(http.StatusForbidden, "admin access required")
		}
		return c.Next()
	}
}

// Identity returns the authenticated identity stored by SessionAuth. It is
// the zero Identity on unguarded routes.
func Identity(c *fiber.Ctx) user.Identity {
	identity, _ := c.Locals(identityLocal).(user.Identity)
	return identity
}
