package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func storeClaims(storeID string) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"sub": storeID,
		"typ": "store",
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	}
}

func newGuardedApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", RequireStoreJWT(JWTConfig{Secret: testSecret}), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"storeId": StoreID(c)})
	})
	return app
}

func TestRequireStoreJWT_ValidToken(t *testing.T) {
	app := newGuardedApp()

	token := signToken(t, testSecret, storeClaims("store-1"))
	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireStoreJWT_MissingHeader(t *testing.T) {
	app := newGuardedApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireStoreJWT_WrongSecret(t *testing.T) {
	app := newGuardedApp()

	token := signToken(t, "other-secret", storeClaims("store-1"))
	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireStoreJWT_WrongTokenType(t *testing.T) {
	app := newGuardedApp()

	claims := storeClaims("store-1")
	claims["typ"] = "admin"
	token := signToken(t, testSecret, claims)
	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireStoreJWT_Expired(t *testing.T) {
	app := newGuardedApp()

	claims := storeClaims("store-1")
	claims["exp"] = time.Now().Add(-time.Hour).Unix()
	token := signToken(t, testSecret, claims)
	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
