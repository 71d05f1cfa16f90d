package settingsController

import (
	"errors"
	"log"

	"skilldev/database"
	"skilldev/middleware"
	"skilldev/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SaveSettings upserts the user's settings row: 201 when a row was
// created, 200 when an existing row was updated. The insert is
// conflict-tolerant, so when two first saves race the loser falls
// through to the update path instead of tripping the unique index.
func SaveSettings(c *fiber.Ctx) error {
	setting := c.Locals("settingsData").(*models.Setting)
	db := database.Database.Db

	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(setting)
	if res.Error != nil {
		log.Printf("Error saving settings for user %d: %v", setting.UserID, res.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Unable to save settings", nil)
	}
	if res.RowsAffected > 0 {
		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Settings saved successfully", nil)
	}

	err := db.Model(&models.Setting{}).
		Where("user_id = ?", setting.UserID).
		Updates(map[string]interface{}{
			"notificationsEnabled":      setting.NotificationsEnabled,
			"emailNotificationsEnabled": setting.EmailNotificationsEnabled,
			"darkModeEnabled":           setting.DarkModeEnabled,
			"selectedLanguage":          setting.SelectedLanguage,
			"textSize":                  setting.TextSize,
		}).Error
	if err != nil {
		log.Printf("Error saving settings for user %d: %v", setting.UserID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Unable to save settings", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Settings updated successfully", nil)
}

// GetSettings returns the stored settings row for a user.
func GetSettings(c *fiber.Ctx) error {
	userID := c.Locals("userId").(string)

	var setting models.Setting
	err := database.Database.Db.Where("user_id = ?", userID).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No settings found for the user", nil)
	}
	if err != nil {
		log.Printf("Error fetching settings: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Database error occurred", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "", fiber.Map{
		"settings": setting,
	})
}
