package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// RequireAdminToken checks the static platform-admin bearer token guarding
// the store-management endpoints.
func RequireAdminToken(token string) fiber.Handler {
	expected := []byte("Bearer " + token)

	return func(c *fiber.Ctx) error {
		got := []byte(c.Get("Authorization"))
		if token == "" || subtle.ConstantTimeCompare(got, expected) != 1 {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}
		return c.Next()
	}
}
