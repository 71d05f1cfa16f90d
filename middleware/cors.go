package middleware

import (
	"skilldev/config"

	"github.com/gofiber/fiber/v2"
)

// CORS echoes the caller's origin when it is on the configured
// allow-list and falls back to a wildcard otherwise. Preflight OPTIONS
// requests are answered with a bare 200 and empty body.
func CORS() fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin := c.Get(fiber.HeaderOrigin)

		allowed := "*"
		for _, o := range config.AppConfig.AllowedOrigins {
			if o == origin {
				allowed = origin
				break
			}
		}

		c.Set(fiber.HeaderAccessControlAllowOrigin, allowed)
		c.Set(fiber.HeaderAccessControlAllowCredentials, "true")
		c.Set(fiber.HeaderAccessControlAllowMethods, "POST, GET, OPTIONS")
		c.Set(fiber.HeaderAccessControlAllowHeaders, "Content-Type, Authorization, X-Requested-With")
		c.Set(fiber.HeaderAccessControlMaxAge, "3600")

		if c.Method() == fiber.MethodOptions {
			return c.Status(fiber.StatusOK).Send(nil)
		}

		return c.Next()
	}
}
