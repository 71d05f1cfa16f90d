package settingsRoutes

import (
	settingsController "skilldev/controllers/settings"
	settingsValidator "skilldev/validators/settings"

	"github.com/gofiber/fiber/v2"
)

// SetupSettingsRoutes sets up per-user settings routes
func SetupSettingsRoutes(app *fiber.App) {
	settingsGroup := app.Group("/api")

	settingsGroup.Post("/settings", settingsValidator.SaveSettings(), settingsController.SaveSettings)
	settingsGroup.Get("/settings", settingsValidator.GetSettings(), settingsController.GetSettings)
}
