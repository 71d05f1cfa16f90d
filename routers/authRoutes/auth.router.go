package authRoutes

import (
	authController "skilldev/controllers/auth"
	"skilldev/middleware"
	authValidator "skilldev/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up login and registration routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api")

	authGroup.Post("/login", authValidator.Login(), authController.Login)
	authGroup.Post("/register", authValidator.Register(), authController.Register)
	authGroup.Get("/me", middleware.JWTMiddleware, authController.Me)
}
