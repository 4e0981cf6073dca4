package product

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/rohithkumar4855/smartposBillingSystem/internal/delivery/middleware"
	productuc "github.com/rohithkumar4855/smartposBillingSystem/internal/usecase/product"
)

type Handler struct {
	uc *productuc.Usecase
}

func New(uc *productuc.Usecase) *Handler {
	return &Handler{uc: uc}
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var in productuc.CreateInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json")
	}

	id, err := h.uc.Create(c.Context(), middleware.StoreID(c), in)
	if err != nil {
		return mapErr(err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"productId": id,
		"message":   "Product added successfully",
	})
}

func (h *Handler) ListByStore(c *fiber.Ctx) error {
	storeID := c.Params("storeId")
	if storeID != middleware.StoreID(c) {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized: invalid api key or store")
	}

	out, err := h.uc.ListByStore(c.Context(), storeID)
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(out)
}

func (h *Handler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("productId"), middleware.StoreID(c))
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(out)
}

func (h *Handler) Update(c *fiber.Ctx) error {
	var in productuc.UpdateInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json")
	}

	if err := h.uc.Update(c.Context(), c.Params("productId"), middleware.StoreID(c), in); err != nil {
		return mapErr(err)
	}
	return c.JSON(fiber.Map{"status": "updated"})
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id"), middleware.StoreID(c)); err != nil {
		return mapErr(err)
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}

func (h *Handler) AdjustStock(c *fiber.Ctx) error {
	var in productuc.AdjustStockInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "quantityChange must be a number")
	}

	newQty, err := h.uc.AdjustStock(c.Context(), c.Params("productId"), middleware.StoreID(c), in)
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(fiber.Map{
		"productId":   c.Params("productId"),
		"newQuantity": newQty,
	})
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, productuc.ErrInvalidInput),
		errors.Is(err, productuc.ErrSKUConflict),
		errors.Is(err, productuc.ErrNegativeStock):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, productuc.ErrForbidden):
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	case errors.Is(err, productuc.ErrReferenced):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, productuc.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
}
