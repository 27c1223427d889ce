package authValidator

import (
	"morya/middleware"

	"github.com/gofiber/fiber/v2"
)

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		// Missing credentials are a client error; a wrong email or
		// password must not be, so those checks stay in the controller.
		if reqData.Email == "" || reqData.Password == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email and password are required!", nil)
		}

		return c.Next()
	}
}
