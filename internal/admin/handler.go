package admin

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the admin overview endpoint. Route-level guards ensure only
// admins reach it.
type Handler struct {
	svc *Service
}

// NewHandler builds an admin HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type userEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type feedEntry struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Amount    string `json:"amount"`
	Label     string `json:"label"`
	OwnerName string `json:"owner_name"`
	CreatedAt string `json:"created_at"`
}

// Overview returns the member directory and recent activity feed.
func (h *Handler) Overview(c *fiber.Ctx) error {
	overview, err := h.svc.Overview(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusBadGateway, "could not load admin overview")
	}

	users := make([]userEntry, 0, len(overview.Users))
	for _, u := range overview.Users {
		users = append(users, userEntry{ID: u.ID, Name: u.Identity().Name, Role: u.Role})
	}
	feed := make([]feedEntry, 0, len(overview.Recent))
	for _, tx := range overview.Recent {
		feed = append(feed, feedEntry{
			ID:        tx.ID,
			Kind:      string(tx.Kind),
			Amount:    tx.Amount.String(),
			Label:     tx.Label,
			OwnerName: tx.OwnerName,
			CreatedAt: tx.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"users": users, "recent_transactions": feed})
}
