package transaction

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/vinayak-mandal/finflow/internal/middleware"
	"github.com/vinayak-mandal/finflow/internal/money"
)

// Handler exposes transaction HTTP endpoints.
type Handler struct {
	svc *Service
}

// NewHandler builds a transaction HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type createRequest struct {
	Kind   string `json:"kind"`
	Amount string `json:"amount"`
	Label  string `json:"label"`
}

type patchRequest struct {
	Amount *string `json:"amount"`
	Label  *string `json:"label"`
}

type transactionResponse struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Amount    string `json:"amount"`
	Label     string `json:"label"`
	OwnerID   string `json:"owner_id"`
	OwnerName string `json:"owner_name"`
	CreatedAt string `json:"created_at"`
}

func toResponse(tx Transaction) transactionResponse {
	return transactionResponse{
		ID:        tx.ID,
		Kind:      string(tx.Kind),
		Amount:    tx.Amount.String(),
		Label:     tx.Label,
		OwnerID:   tx.OwnerID,
		OwnerName: tx.OwnerName,
		CreatedAt: tx.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// Create records a new income or expense owned by the caller.
func (h *Handler) Create(c *fiber.Ctx) error {
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "malformed request body")
	}
	kind, err := ParseKind(req.Kind)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	amount, err := money.ParseAmount(req.Amount)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "amount must be a positive decimal value")
	}

	identity := middleware.Identity(c)
	tx, err := h.svc.Create(c.UserContext(), identity, CreateInput{Kind: kind, Amount: amount, Label: req.Label})
	if err != nil {
		return mapError(err)
	}
	return c.Status(http.StatusCreated).JSON(toResponse(tx))
}

// List returns the caller's records, or every member's for admins.
func (h *Handler) List(c *fiber.Ctx) error {
	kind, err := ParseKind(c.Query("kind", string(KindIncome)))
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	identity := middleware.Identity(c)
	txs, err := h.svc.List(c.UserContext(), identity, kind)
	if err != nil {
		return mapError(err)
	}
	out := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, toResponse(tx))
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"kind": kind, "transactions": out})
}

// Update patches an existing record.
func (h *Handler) Update(c *fiber.Ctx) error {
	kind, err := ParseKind(c.Params("kind"))
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	var req patchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "malformed request body")
	}

	var patch Patch
	if req.Amount != nil {
		amount, err := money.ParseAmount(*req.Amount)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, "amount must be a positive decimal value")
		}
		patch.Amount = &amount
	}
	patch.Label = req.Label

	identity := middleware.Identity(c)
	tx, err := h.svc.Update(c.UserContext(), identity, kind, c.Params("id"), patch)
	if err != nil {
		return mapError(err)
	}
	return c.Status(http.StatusOK).JSON(toResponse(tx))
}

// Delete removes a record permanently.
func (h *Handler) Delete(c *fiber.Ctx) error {
	kind, err := ParseKind(c.Params("kind"))
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	identity := middleware.Identity(c)
	if err := h.svc.Delete(c.UserContext(), identity, kind, c.Params("id")); err != nil {
		return mapError(err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"status": "deleted"})
}

func mapError(err error) error {
	switch {
	case errors.Is(err, ErrValidation):
		return fiber.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrForbidden):
		return fiber.NewError(http.StatusForbidden, "you may not modify this record")
	case errors.Is(err, ErrNotFound):
		return fiber.NewError(http.StatusNotFound, "record not found")
	default:
		return fiber.NewError(http.StatusBadGateway, "the operation failed, try again")
	}
}
