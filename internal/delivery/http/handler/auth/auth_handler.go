package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	authuc "github.com/rohithkumar4855/smartposBillingSystem/internal/usecase/auth"
)

type Handler struct {
	uc *authuc.Usecase
}

func New(uc *authuc.Usecase) *Handler {
	return &Handler{uc: uc}
}

type verifyPhoneRequest struct {
	Phone string `json:"phone"`
}

type loginRequest struct {
	Phone string `json:"phone"`
	OTP   string `json:"otp"`
}

func (h *Handler) VerifyPhone(c *fiber.Ctx) error {
	var req verifyPhoneRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json")
	}

	otp, err := h.uc.VerifyPhone(c.Context(), req.Phone)
	if err != nil {
		return mapErr(err)
	}

	// stub delivery: the OTP comes back in the response until SMS is wired
	return c.JSON(fiber.Map{
		"success": true,
		"message": "OTP sent successfully",
		"otp":     otp,
	})
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json")
	}

	out, err := h.uc.Login(c.Context(), req.Phone, req.OTP)
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(fiber.Map{
		"success":   true,
		"message":   "Login successful",
		"token":     out.Token,
		"storeId":   out.StoreID,
		"storeName": out.StoreName,
	})
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, authuc.ErrInvalidPhone):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, authuc.ErrInvalidOTP):
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, authuc.ErrStoreNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
}
