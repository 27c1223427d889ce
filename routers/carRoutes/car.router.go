package carRoutes

import (
	carControllers "morya/controllers/car"
	expenditureControllers "morya/controllers/expenditure"
	"morya/middleware"
	carValidators "morya/validators/car"

	"github.com/gofiber/fiber/v2"
)

func SetupCarRoutes(app *fiber.App) {
	carGroup := app.Group("/api/cars")

	carGroup.Get("/search", carControllers.SearchCars)
	carGroup.Get("/list", carControllers.GetCars)
	carGroup.Get("/available", carControllers.GetAvailableCars)
	carGroup.Get("/sold", carControllers.GetSoldCars)
	carGroup.Get("/live", carControllers.GetLiveCars)
	carGroup.Get("/", carControllers.GetAllCars)

	carGroup.Post("/add", middleware.JWTMiddleware, carControllers.AddCar)

	carGroup.Put("/:id/live", middleware.JWTMiddleware, carValidators.MakeLive(), carControllers.MakeCarLive)
	carGroup.Put("/:id/sell", middleware.JWTMiddleware, carControllers.SellLiveCar)
	carGroup.Put("/:id/sell-direct", middleware.JWTMiddleware, carControllers.SellCar)
	carGroup.Put("/:id/payment", middleware.JWTMiddleware, carValidators.UpdatePayment(), carControllers.UpdatePayment)

	// Convenience alias for the expenditure endpoint.
	carGroup.Get("/:id/expenditures", expenditureControllers.GetExpenditureByCarId)

	// Registered last so the static paths above win.
	carGroup.Get("/:id", carControllers.GetCarById)
}
