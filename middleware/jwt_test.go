package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"skilldev/config"
	"skilldev/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupJWTApp() *fiber.App {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	app := fiber.New()
	app.Get("/protected", middleware.JWTMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"userId": c.Locals("userId")})
	})
	return app
}

// signToken signs arbitrary claims with the configured key so the
// token passes signature validation.
func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.AppConfig.JWTKey))
	require.NoError(t, err)
	return signed
}

func getProtected(t *testing.T, app *fiber.App, authHeader string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest("GET", "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestJWTMiddleware_ValidToken(t *testing.T) {
	app := setupJWTApp()

	token := signToken(t, jwt.MapClaims{
		"userId": 42,
		"exp":    time.Now().Add(time.Hour).Unix(),
	})

	status, body := getProtected(t, app, "Bearer "+token)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(42), body["userId"])
}

func TestJWTMiddleware_NonNumericUserIDClaim(t *testing.T) {
	app := setupJWTApp()

	// Correctly signed but carrying a string userId. Must answer 401,
	// not crash the handler.
	token := signToken(t, jwt.MapClaims{
		"userId": "not-a-number",
		"exp":    time.Now().Add(time.Hour).Unix(),
	})

	status, body := getProtected(t, app, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid token payload", body["message"])
}

func TestJWTMiddleware_MissingUserIDClaim(t *testing.T) {
	app := setupJWTApp()

	token := signToken(t, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	status, _ := getProtected(t, app, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestJWTMiddleware_BadHeader(t *testing.T) {
	app := setupJWTApp()

	status, _ := getProtected(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = getProtected(t, app, "Token abc")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = getProtected(t, app, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, status)
}
