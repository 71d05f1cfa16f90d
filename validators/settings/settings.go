package settingsValidator

import (
	"strings"

	"skilldev/middleware"
	"skilldev/models"

	"github.com/gofiber/fiber/v2"
)

// SaveSettings validates the settings body and fills in the fixed
// defaults for any preference the request omits.
func SaveSettings() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID                    uint     `json:"userId"`
			NotificationsEnabled      *bool    `json:"notificationsEnabled"`
			EmailNotificationsEnabled *bool    `json:"emailNotificationsEnabled"`
			DarkModeEnabled           *bool    `json:"darkModeEnabled"`
			SelectedLanguage          *string  `json:"selectedLanguage"`
			TextSize                  *float64 `json:"textSize"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Incomplete data provided", nil)
		}

		if reqData.UserID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Incomplete data provided", nil)
		}

		setting := &models.Setting{
			UserID:                    reqData.UserID,
			NotificationsEnabled:      true,
			EmailNotificationsEnabled: true,
			DarkModeEnabled:           false,
			SelectedLanguage:          "English",
			TextSize:                  1.0,
		}
		if reqData.NotificationsEnabled != nil {
			setting.NotificationsEnabled = *reqData.NotificationsEnabled
		}
		if reqData.EmailNotificationsEnabled != nil {
			setting.EmailNotificationsEnabled = *reqData.EmailNotificationsEnabled
		}
		if reqData.DarkModeEnabled != nil {
			setting.DarkModeEnabled = *reqData.DarkModeEnabled
		}
		if reqData.SelectedLanguage != nil && strings.TrimSpace(*reqData.SelectedLanguage) != "" {
			setting.SelectedLanguage = *reqData.SelectedLanguage
		}
		if reqData.TextSize != nil {
			setting.TextSize = *reqData.TextSize
		}

		c.Locals("settingsData", setting)
		return c.Next()
	}
}

// GetSettings validates the settings read query.
func GetSettings() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := strings.TrimSpace(c.Query("userId"))
		if userID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User ID is required", nil)
		}

		c.Locals("userId", userID)
		return c.Next()
	}
}
