package chatValidator

import (
	"strings"

	"skilldev/middleware"

	"github.com/gofiber/fiber/v2"
)

// MessageList validates the chat history query.
func MessageList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := strings.TrimSpace(c.Query("user_id"))
		if userID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User ID is required", nil)
		}

		c.Locals("userId", userID)
		return c.Next()
	}
}

// SendMessageRequest is the parsed message body stashed in c.Locals.
type SendMessageRequest struct {
	SenderID uint   `json:"sender_id"`
	UserID   uint   `json:"user_id"`
	Message  string `json:"message"`
	ReplyTo  *uint  `json:"reply_to"`
}

// SendMessage validates a posted chat message.
func SendMessage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SendMessageRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing required fields", nil)
		}

		if reqData.SenderID == 0 || reqData.UserID == 0 || strings.TrimSpace(reqData.Message) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing required fields", nil)
		}

		c.Locals("messageData", reqData)
		return c.Next()
	}
}
