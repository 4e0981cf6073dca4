package store

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/rohithkumar4855/smartposBillingSystem/internal/delivery/middleware"
	storeuc "github.com/rohithkumar4855/smartposBillingSystem/internal/usecase/store"
)

type Handler struct {
	uc *storeuc.Usecase
}

func New(uc *storeuc.Usecase) *Handler {
	return &Handler{uc: uc}
}

func (h *Handler) Register(c *fiber.Ctx) error {
	var in storeuc.RegisterInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json")
	}

	out, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return mapErr(err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"storeId": out.StoreID,
		"apiKey":  out.APIKey,
		"message": "Store registered successfully",
	})
}

func (h *Handler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(out)
}

func (h *Handler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("storeId"))
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(out)
}

// Me returns the profile of the store behind the JWT session.
func (h *Handler) Me(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), middleware.StoreID(c))
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(out)
}

func (h *Handler) Update(c *fiber.Ctx) error {
	var in storeuc.UpdateInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json")
	}

	if err := h.uc.Update(c.Context(), c.Params("storeId"), in); err != nil {
		return mapErr(err)
	}
	return c.JSON(fiber.Map{"status": "updated"})
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("storeId")); err != nil {
		return mapErr(err)
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, storeuc.ErrInvalidInput),
		errors.Is(err, storeuc.ErrInvalidPhone),
		errors.Is(err, storeuc.ErrInvalidGST),
		errors.Is(err, storeuc.ErrPhoneConflict):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, storeuc.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
}
