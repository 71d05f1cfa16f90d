package notificationController

import (
	"log"

	"skilldev/database"
	"skilldev/middleware"
	"skilldev/models"

	"github.com/gofiber/fiber/v2"
)

// GetNotifications lists all announcements, newest first. Empty results
// still answer 200.
func GetNotifications(c *fiber.Ctx) error {
	var announcements []models.Announcement
	err := database.Database.Db.Order("created_at DESC").Find(&announcements).Error
	if err != nil {
		log.Printf("Error fetching announcements: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Database error occurred", nil)
	}

	if len(announcements) == 0 {
		return middleware.JsonResponse(c, fiber.StatusOK, false, "No announcements found", fiber.Map{
			"notifications": []models.Announcement{},
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "", fiber.Map{
		"notifications": announcements,
	})
}
