package expenditureValidator

import (
	"morya/middleware"

	"github.com/gofiber/fiber/v2"
)

// AddExpenditure validator middleware
func AddExpenditure() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CarID uint `json:"car_id"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.CarID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "car_id is required!", nil)
		}

		return c.Next()
	}
}
