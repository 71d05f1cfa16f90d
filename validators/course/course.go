package courseValidator

import (
	"strconv"
	"strings"

	"skilldev/middleware"

	"github.com/gofiber/fiber/v2"
)

// CourseList validates the course listing query parameters.
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := strings.TrimSpace(c.Query("userId"))
		if userID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User ID is required", nil)
		}

		c.Locals("userId", userID)
		c.Locals("enrolledOnly", c.Query("enrolled") == "true")
		return c.Next()
	}
}

// ModuleList validates the chapter listing query parameters.
func ModuleList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Query("course_id"))
		userIDStr := strings.TrimSpace(c.Query("user_id"))

		if courseIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required", nil)
		}
		if userIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User ID is required", nil)
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID format", nil)
		}
		userID, err := strconv.Atoi(userIDStr)
		if err != nil || userID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID format", nil)
		}

		c.Locals("courseID", courseID)
		c.Locals("userID", userID)
		return c.Next()
	}
}

// ToggleModuleCompletion validates the completion toggle body.
func ToggleModuleCompletion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID   uint `json:"user_id"`
			ModuleID uint `json:"module_id"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing required parameters", nil)
		}

		if reqData.UserID == 0 || reqData.ModuleID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing required parameters", nil)
		}

		c.Locals("userID", int(reqData.UserID))
		c.Locals("moduleID", int(reqData.ModuleID))
		return c.Next()
	}
}

// CourseCompletionPost validates the course completion body. The
// optional action field selects the force-complete path.
func CourseCompletionPost() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID   uint   `json:"user_id"`
			CourseID uint   `json:"course_id"`
			Action   string `json:"action"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user_id or course_id", nil)
		}

		if reqData.UserID == 0 || reqData.CourseID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user_id or course_id", nil)
		}

		c.Locals("userID", int(reqData.UserID))
		c.Locals("courseID", int(reqData.CourseID))
		c.Locals("action", reqData.Action)
		return c.Next()
	}
}

// CourseCompletionGet validates the course completion status query.
func CourseCompletionGet() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := strconv.Atoi(strings.TrimSpace(c.Query("user_id")))
		if err != nil || userID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user_id or course_id", nil)
		}
		courseID, err := strconv.Atoi(strings.TrimSpace(c.Query("course_id")))
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user_id or course_id", nil)
		}

		c.Locals("userID", userID)
		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// Enroll validates the enrollment body.
func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID   uint `json:"user_id"`
			CourseID uint `json:"course_id"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing required fields", nil)
		}

		if reqData.UserID == 0 || reqData.CourseID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing required fields", nil)
		}

		c.Locals("userID", int(reqData.UserID))
		c.Locals("courseID", int(reqData.CourseID))
		return c.Next()
	}
}

// EnrollmentList validates the enrolled-courses query.
func EnrollmentList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := strings.TrimSpace(c.Query("user_id"))
		if userID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User ID is required", nil)
		}

		c.Locals("userId", userID)
		return c.Next()
	}
}

// Certificates validates the certificate listing query.
func Certificates() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := strings.TrimSpace(c.Query("userId"))
		if userID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User ID is required", nil)
		}

		c.Locals("userId", userID)
		return c.Next()
	}
}
