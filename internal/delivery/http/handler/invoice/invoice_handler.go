package invoice

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	invuc "github.com/rohithkumar4855/smartposBillingSystem/internal/usecase/invoice"
)

type Handler struct {
	uc *invuc.Usecase
}

func New(uc *invuc.Usecase) *Handler {
	return &Handler{uc: uc}
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var in invuc.CreateInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json")
	}

	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return mapErr(err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *Handler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("invoiceId"))
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(fiber.Map{"success": true, "invoice": out})
}

func (h *Handler) ListByStore(c *fiber.Ctx) error {
	out, err := h.uc.ListByStore(c.Context(), c.Params("storeId"))
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"count":    len(out),
		"invoices": out,
	})
}

func (h *Handler) UpdateStatus(c *fiber.Ctx) error {
	var in invuc.UpdateStatusInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json")
	}

	out, err := h.uc.UpdateStatus(c.Context(), c.Params("invoiceId"), in)
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(fiber.Map{"success": true, "data": out})
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, invuc.ErrInvalidInput),
		errors.Is(err, invuc.ErrInvalidStatus),
		errors.Is(err, invuc.ErrInsufficientStock):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, invuc.ErrProductNotFound),
		errors.Is(err, invuc.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
}
