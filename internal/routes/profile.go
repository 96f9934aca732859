package routes

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/vinayak-mandal/finflow/internal/middleware"
	"github.com/vinayak-mandal/finflow/internal/user"
)

// RegisterProfileRoutes exposes the current member's profile: view, rename,
// and password change.
func RegisterProfileRoutes(r fiber.Router, users *user.Service) {
	r.Get("/me", func(c *fiber.Ctx) error {
		identity := middleware.Identity(c)
		u, err := users.Get(c.UserContext(), identity.UserID)
		if err != nil {
			return fiber.NewError(http.StatusBadGateway, "could not load profile")
		}
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"id":    u.ID,
			"name":  u.Identity().Name,
			"role":  u.Role,
			"photo": u.Photo,
		})
	})

	r.Patch("/me/name", func(c *fiber.Ctx) error {
		var req struct {
			Name string `json:"name"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(http.StatusBadRequest, "malformed request body")
		}
		identity := middleware.Identity(c)
		u, err := users.UpdateName(c.UserContext(), identity.UserID, req.Name)
		if err != nil {
			if errors.Is(err, user.ErrValidation) {
				return fiber.NewError(http.StatusBadRequest, err.Error())
			}
			return fiber.NewError(http.StatusBadGateway, "could not update profile, try again")
		}
		return c.Status(http.StatusOK).JSON(fiber.Map{"id": u.ID, "name": u.Name})
	})

	r.Post("/me/password", func(c *fiber.Ctx) error {
		var req struct {
			CurrentPassword string `json:"current_password"`
			NewPassword     string `json:"new_password"`
			ConfirmPassword string `json:"confirm_password"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(http.StatusBadRequest, "malformed request body")
		}
		identity := middleware.Identity(c)
		err := users.ChangePassword(c.UserContext(), identity.UserID,
			req.CurrentPassword, req.NewPassword, req.ConfirmPassword)
		if err != nil {
			if errors.Is(err, user.ErrValidation) {
				return fiber.NewError(http.StatusBadRequest, err.Error())
			}
			return fiber.NewError(http.StatusBadGateway, "could not change password, try again")
		}
		return c.Status(http.StatusOK).JSON(fiber.Map{"status": "password_changed"})
	})
}
