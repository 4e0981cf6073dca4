package analytics

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	analyticsuc "github.com/rohithkumar4855/smartposBillingSystem/internal/usecase/analytics"
)

type Handler struct {
	uc *analyticsuc.Usecase
}

func New(uc *analyticsuc.Usecase) *Handler {
	return &Handler{uc: uc}
}

func (h *Handler) ListCustomers(c *fiber.Ctx) error {
	storeID := c.Query("storeId")

	out, err := h.uc.ListCustomers(c.Context(), storeID)
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(fiber.Map{
		"storeId":        storeID,
		"totalCustomers": len(out),
		"customers":      out,
	})
}

func (h *Handler) RepeatCustomers(c *fiber.Ctx) error {
	storeID := c.Query("storeId")

	n, err := h.uc.RepeatCustomers(c.Context(), storeID)
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(fiber.Map{"storeId": storeID, "repeatCustomers": n})
}

func (h *Handler) NewCustomers(c *fiber.Ctx) error {
	storeID := c.Query("storeId")

	n, err := h.uc.NewCustomers(c.Context(), storeID)
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(fiber.Map{"storeId": storeID, "newCustomers": n})
}

func (h *Handler) AverageInvoiceValue(c *fiber.Ctx) error {
	storeID := c.Query("storeId")

	avg, err := h.uc.AverageInvoiceValue(c.Context(), storeID)
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(fiber.Map{"storeId": storeID, "avgInvoiceValue": avg})
}

func (h *Handler) SpendingTrends(c *fiber.Ctx) error {
	out, err := h.uc.SpendingTrends(c.Context(), c.Query("storeId"), c.Query("range", analyticsuc.RangeMonthly))
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(out)
}

func (h *Handler) TopCustomers(c *fiber.Ctx) error {
	storeID := c.Query("storeId")

	out, err := h.uc.TopCustomers(c.Context(), storeID, c.QueryInt("limit", 5))
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(fiber.Map{"storeId": storeID, "topCustomers": out})
}

func (h *Handler) LoyaltyInsights(c *fiber.Ctx) error {
	out, err := h.uc.LoyaltyInsights(c.Context(), c.Query("storeId"))
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(out)
}

func (h *Handler) CustomerDetails(c *fiber.Ctx) error {
	out, err := h.uc.CustomerDetails(c.Context(), c.Params("customerCode"))
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(out)
}

func (h *Handler) Export(c *fiber.Ctx) error {
	storeID := c.Query("storeId")

	data, err := h.uc.ExportCSV(c.Context(), storeID)
	if err != nil {
		return mapErr(err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=analytics_`+storeID+`.csv`)
	return c.Send(data)
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, analyticsuc.ErrInvalidInput):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, analyticsuc.ErrStoreNotFound),
		errors.Is(err, analyticsuc.ErrCustomerNotFound),
		errors.Is(err, analyticsuc.ErrNoData):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
}
