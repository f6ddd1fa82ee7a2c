package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bims/config"
	"bims/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardedApp() *fiber.App {
	app := fiber.New()
	app.Get("/guarded", middleware.JWTMiddleware, func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "ok", fiber.Map{
			"accountId": c.Locals("accountId"),
		})
	})
	return app
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.AppConfig.JWTKey))
	require.NoError(t, err)
	return signed
}

func TestJWTMiddlewareAcceptsGeneratedToken(t *testing.T) {
	config.LoadConfig()
	app := newGuardedApp()

	token, err := middleware.GenerateJWT(7, "clerk1", "STAFF", "Maria Santos")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: middleware.TokenCookie, Value: token})

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJWTMiddlewareRejectsNonNumericAccountId(t *testing.T) {
	config.LoadConfig()
	app := newGuardedApp()

	// Validly signed, but accountId is a string instead of a number
	token := signToken(t, jwt.MapClaims{
		"accountId": "seven",
		"role":      "STAFF",
		"exp":       time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: middleware.TokenCookie, Value: token})

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareRejectsMissingAccountId(t *testing.T) {
	config.LoadConfig()
	app := newGuardedApp()

	token := signToken(t, jwt.MapClaims{
		"role": "STAFF",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: middleware.TokenCookie, Value: token})

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
