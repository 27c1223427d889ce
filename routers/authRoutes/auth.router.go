package authRoutes

import (
	authControllers "morya/controllers/auth"
	authValidators "morya/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
}
