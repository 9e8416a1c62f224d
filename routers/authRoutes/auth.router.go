package authRoutes

import (
	authController "paydash/controllers/auth"
	"paydash/gateway"
	"paydash/middleware"
	authValidator "paydash/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/log-in", authValidator.Login(), authController.Login)
	authGroup.Post("/log-out", middleware.SessionMiddleware(gateway.Sessions), authController.Logout)
	authGroup.Get("/me", middleware.SessionMiddleware(gateway.Sessions), authController.CurrentUser)
}
