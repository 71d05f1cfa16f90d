package chatRoutes

import (
	chatController "skilldev/controllers/chat"
	notificationController "skilldev/controllers/notification"
	chatValidator "skilldev/validators/chat"

	"github.com/gofiber/fiber/v2"
)

// SetupChatRoutes sets up chat and notification routes
func SetupChatRoutes(app *fiber.App) {
	chatGroup := app.Group("/api")

	chatGroup.Get("/chat", chatValidator.MessageList(), chatController.GetMessages)
	chatGroup.Post("/chat", chatValidator.SendMessage(), chatController.SendMessage)

	chatGroup.Get("/notifications", notificationController.GetNotifications)
}
