package chatController

import (
	"log"

	"skilldev/database"
	"skilldev/middleware"
	"skilldev/models"
	chatValidator "skilldev/validators/chat"

	"github.com/gofiber/fiber/v2"
)

// GetMessages returns every message the user sent or received, oldest
// first. An empty history is a 200 with an empty list, not a 404.
func GetMessages(c *fiber.Ctx) error {
	userID := c.Locals("userId").(string)

	var messages []models.Message
	err := database.Database.Db.
		Where("user_id = ? OR sender_id = ?", userID, userID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		log.Printf("Error fetching messages: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Database error occurred", nil)
	}

	if len(messages) == 0 {
		return middleware.JsonResponse(c, fiber.StatusOK, false, "No messages found", fiber.Map{
			"messages": []models.Message{},
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "", fiber.Map{
		"messages": messages,
	})
}

// SendMessage appends one message to the log and echoes the stored row.
func SendMessage(c *fiber.Ctx) error {
	reqData := c.Locals("messageData").(*chatValidator.SendMessageRequest)

	message := models.Message{
		SenderID: reqData.SenderID,
		UserID:   reqData.UserID,
		Message:  reqData.Message,
		ReplyTo:  reqData.ReplyTo,
	}

	if err := database.Database.Db.Create(&message).Error; err != nil {
		log.Printf("Error saving message: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send message", nil)
	}

	createdAt := message.CreatedAt.Format("2006-01-02 15:04:05")

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Message sent successfully", fiber.Map{
		"message_data": fiber.Map{
			"id":         message.ID,
			"sender_id":  message.SenderID,
			"user_id":    message.UserID,
			"message":    message.Message,
			"reply_to":   message.ReplyTo,
			"created_at": createdAt,
			"timestamp":  createdAt,
		},
	})
}
