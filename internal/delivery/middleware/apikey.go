package middleware

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

// APIKeyResolver maps an opaque API key to the owning store.
type APIKeyResolver interface {
	FindIDByAPIKey(ctx context.Context, apiKey string) (string, error)
}

// RequireAPIKey resolves the Authorization header to a store and stashes the
// store id in locals for the catalog handlers.
func RequireAPIKey(resolver APIKeyResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		apiKey := c.Get("Authorization")
		if apiKey == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized: api key missing")
		}

		storeID, err := resolver.FindIDByAPIKey(c.Context(), apiKey)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fiber.NewError(fiber.StatusUnauthorized, "unauthorized: invalid api key")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "internal error")
		}

		c.Locals("store_id", storeID)
		return c.Next()
	}
}

// StoreID reads the store id a guard middleware left behind.
func StoreID(c *fiber.Ctx) string {
	id, _ := c.Locals("store_id").(string)
	return id
}
