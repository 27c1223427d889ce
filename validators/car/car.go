package carValidator

import (
	"morya/middleware"

	"github.com/gofiber/fiber/v2"
)

// MakeLive validator middleware
func MakeLive() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			LivePrice float64 `json:"live_price"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.LivePrice <= 0 {
			errors["live_price"] = "Live price must be greater than zero!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

// UpdatePayment validator middleware
func UpdatePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(map[string]interface{})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		return c.Next()
	}
}
