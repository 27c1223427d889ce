package expenditureRoutes

import (
	expenditureControllers "morya/controllers/expenditure"
	"morya/middleware"
	expenditureValidators "morya/validators/expenditure"

	"github.com/gofiber/fiber/v2"
)

func SetupExpenditureRoutes(app *fiber.App) {
	expenditureGroup := app.Group("/api/expenditure")

	expenditureGroup.Post("/add", middleware.JWTMiddleware, expenditureValidators.AddExpenditure(), expenditureControllers.AddExpenditure)
	expenditureGroup.Get("/:car_id", expenditureControllers.GetExpenditureByCarId)
}
