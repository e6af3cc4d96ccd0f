package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newProtectedApp(secret string) *fiber.App {
	app := fiber.New()
	app.Get("/me", JWTProtected(secret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": UserID(c),
			"name":    UserName(c),
			"role":    c.Locals("user_role"),
		})
	})
	return app
}

func TestJWTProtectedBindsClaims(t *testing.T) {
	app := newProtectedApp("secret")

	token := signedToken(t, "secret", jwt.MapClaims{
		"sub":  7,
		"role": "Professor",
		"name": "Carol Danes",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJWTProtectedRejectsMissingHeader(t *testing.T) {
	app := newProtectedApp("secret")

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTProtectedRejectsWrongSecret(t *testing.T) {
	app := newProtectedApp("secret")

	token := signedToken(t, "other-secret", jwt.MapClaims{"sub": 7, "exp": time.Now().Add(time.Hour).Unix()})
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTProtectedRejectsExpiredToken(t *testing.T) {
	app := newProtectedApp("secret")

	token := signedToken(t, "secret", jwt.MapClaims{"sub": 7, "exp": time.Now().Add(-time.Hour).Unix()})
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestNormalizeUserID(t *testing.T) {
	id, err := normalizeUserID(float64(7))
	require.NoError(t, err)
	require.Equal(t, uint(7), id)

	id, err = normalizeUserID("12")
	require.NoError(t, err)
	require.Equal(t, uint(12), id)

	_, err = normalizeUserID(float64(-1))
	require.Error(t, err)

	_, err = normalizeUserID(true)
	require.Error(t, err)
}
