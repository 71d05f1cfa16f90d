package middleware

import "github.com/gofiber/fiber/v2"

// JsonResponse writes the common response envelope. Every endpoint
// emits exactly one JSON object with at least success and message;
// resource-specific fields are merged into the top level.
func JsonResponse(c *fiber.Ctx, statusCode int, success bool, message string, fields fiber.Map) error {
	body := fiber.Map{
		"success": success,
		"message": message,
	}
	for key, value := range fields {
		body[key] = value
	}
	return c.Status(statusCode).JSON(body)
}
