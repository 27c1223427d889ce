package carController

import (
	"log"
	"morya/database"
	"morya/middleware"
	"morya/models"
	"morya/utils"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

// liveCarRow is the live listing joined with its car record.
type liveCarRow struct {
	models.Car
	LivePrice float64   `json:"livePrice"`
	LiveStart time.Time `json:"liveStart"`
}

// GetLiveCars lists every car currently offered for sale. The base price
// is overridden by the listing price.
func GetLiveCars(c *fiber.Ctx) error {
	var rows []liveCarRow
	if err := database.Database.Db.Table("live_cars").
		Select("cars.*, live_cars.live_price, live_cars.live_start").
		Joins("JOIN cars ON cars.id = live_cars.car_id").
		Scan(&rows).Error; err != nil {
		log.Printf("Error fetching live cars: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch live cars!", nil)
	}

	for i := range rows {
		utils.NormalizeCar(&rows[i].Car, c.BaseURL(), true)
		rows[i].Price = strconv.FormatFloat(rows[i].LivePrice, 'f', -1, 64)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Live cars fetched!", fiber.Map{"cars": rows})
}

// MakeCarLive puts a car on sale at the given price. Calling it again
// for the same car overwrites the price; there is never more than one
// listing per car.
func MakeCarLive(c *fiber.Ctx) error {
	carID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid car id!", nil)
	}

	reqData := new(struct {
		LivePrice float64 `json:"live_price"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	if err := db.First(&models.Car{}, carID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Car not found!", nil)
	}

	listing := models.LiveCar{CarID: uint(carID), LivePrice: reqData.LivePrice}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "car_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"live_price"}),
	}).Create(&listing).Error; err != nil {
		log.Printf("Error making car live: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to make car live!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Car is now live.", nil)
}
