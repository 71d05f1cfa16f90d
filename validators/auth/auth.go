package authValidator

import (
	"regexp"
	"strings"

	"skilldev/middleware"

	"github.com/gofiber/fiber/v2"
)

// Helper to validate email format
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// LoginRequest is the parsed login body stashed in c.Locals.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid JSON data received", nil)
		}

		if strings.TrimSpace(reqData.Email) == "" || reqData.Password == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email and password are required", nil)
		}

		c.Locals("loginData", reqData)
		return c.Next()
	}
}

// RegisterRequest is the validated text portion of the multipart
// registration form. Files are staged by the controller.
type RegisterRequest struct {
	Username string
	Email    string
	Password string
}

// Register validator middleware. Text fields are checked before any
// file is touched so a bad request stages nothing to disk.
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := &RegisterRequest{
			Username: strings.TrimSpace(c.FormValue("username")),
			Email:    strings.TrimSpace(c.FormValue("email")),
			Password: c.FormValue("password"),
		}

		if reqData.Username == "" || reqData.Email == "" || reqData.Password == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Incomplete data provided", nil)
		}

		if !isValidEmail(reqData.Email) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid email format", nil)
		}

		c.Locals("registerData", reqData)
		return c.Next()
	}
}
