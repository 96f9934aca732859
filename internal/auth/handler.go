package auth

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/vinayak-mandal/finflow/internal/middleware"
	"github.com/vinayak-mandal/finflow/internal/user"
)

// Handler exposes login and logout endpoints.
type Handler struct {
	svc *Service
}

// NewHandler builds an auth HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type loginRequest struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string        `json:"token"`
	Identity user.Identity `json:"identity"`
}

// Login validates credentials and returns a session token.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "malformed request body")
	}
	identity, token, err := h.svc.Login(c.UserContext(), Credentials{UserID: req.UserID, Password: req.Password})
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return fiber.NewError(http.StatusUnauthorized, "invalid credentials")
		}
		return fiber.NewError(http.StatusBadGateway, "login failed, try again")
	}
	return c.Status(http.StatusOK).JSON(loginResponse{Token: token, Identity: identity})
}

// Logout clears the session presented by the bearer token.
func (h *Handler) Logout(c *fiber.Ctx) error {
	token := middleware.BearerToken(c)
	if token == "" {
		return fiber.NewError(http.StatusUnauthorized, "missing bearer token")
	}
	if err := h.svc.Logout(c.UserContext(), token); err != nil {
		return fiber.NewError(http.StatusBadGateway, "logout failed, try again")
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"status": "logged_out"})
}
