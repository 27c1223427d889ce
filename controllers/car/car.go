package carController

import (
	"errors"
	"log"
	"morya/database"
	"morya/middleware"
	"morya/models"
	"morya/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// listColumns is the listing projection: everything a table view needs,
// without the photo blob. The photos column is appended only when the
// client asks for it.
var listColumns = []string{
	"id", "created_at", "brand", "model", "variant", "year",
	"manufacturing_month", "number_of_owners", "colour", "fuel_type",
	"transmission", "registration_number", "registration_place", "price",
	"kilometers_driven", "insurance_type", "documents",
	"form29_front", "form29_back", "form28_front", "form28_back", "form30_front",
	"sold", "sale_price",
}

// carWithLivePrice carries the LEFT JOIN projection of a car and its
// live listing price, when one exists.
type carWithLivePrice struct {
	models.Car
	LivePrice *float64 `json:"livePrice,omitempty"`
}

func listCars(c *fiber.Ctx, onlyUnsold bool) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 50)
	includePhotos := c.Query("includePhotos") == "true"

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}
	offset := (page - 1) * limit

	db := database.Database.Db
	query := db.Model(&models.Car{})
	if onlyUnsold {
		query = query.Where("sold = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("Error counting cars: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch cars!", nil)
	}

	columns := listColumns
	if includePhotos {
		columns = append(append([]string{}, listColumns...), "photos")
	}

	var cars []models.Car
	if err := query.
		Select(columns).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&cars).Error; err != nil {
		log.Printf("Error fetching cars: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch cars!", nil)
	}

	utils.NormalizeCars(cars, c.BaseURL(), includePhotos)

	totalPages := (total + int64(limit) - 1) / int64(limit)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cars fetched!", fiber.Map{
		"cars": cars,
		"pagination": fiber.Map{
			"page":       page,
			"limit":      limit,
			"total":      total,
			"totalPages": totalPages,
			"hasNext":    int64(page) < totalPages,
			"hasPrev":    page > 1,
		},
	})
}

// GetAllCars returns a page of all cars, most recent first
func GetAllCars(c *fiber.Ctx) error {
	return listCars(c, false)
}

// GetAvailableCars returns a page of unsold cars, most recent first
func GetAvailableCars(c *fiber.Ctx) error {
	return listCars(c, true)
}

// GetCars returns every car without pagination
func GetCars(c *fiber.Ctx) error {
	var cars []models.Car
	if err := database.Database.Db.Order("created_at DESC").Find(&cars).Error; err != nil {
		log.Printf("Error fetching cars: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch cars!", nil)
	}

	utils.NormalizeCars(cars, c.BaseURL(), true)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cars fetched!", fiber.Map{"cars": cars})
}

// GetSoldCars returns every sold car
func GetSoldCars(c *fiber.Ctx) error {
	var cars []models.Car
	if err := database.Database.Db.Where("sold = ?", true).
		Order("created_at DESC").
		Find(&cars).Error; err != nil {
		log.Printf("Error fetching sold cars: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch sold cars!", nil)
	}

	utils.NormalizeCars(cars, c.BaseURL(), true)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sold cars fetched!", fiber.Map{"cars": cars})
}

// SearchCars matches a case-insensitive substring against the car's
// identifying text fields
func SearchCars(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Search query is required!", nil)
	}

	pattern := "%" + strings.ToLower(query) + "%"

	var cars []models.Car
	if err := database.Database.Db.Where(
		"LOWER(registration_number) LIKE ? OR LOWER(brand) LIKE ? OR LOWER(model) LIKE ? OR LOWER(variant) LIKE ? OR LOWER(colour) LIKE ? OR LOWER(fuel_type) LIKE ?",
		pattern, pattern, pattern, pattern, pattern, pattern,
	).Find(&cars).Error; err != nil {
		log.Printf("Error searching cars: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to search cars!", nil)
	}

	utils.NormalizeCars(cars, c.BaseURL(), true)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Search results fetched!", fiber.Map{"cars": cars})
}

// GetCarById returns one normalized car, merged with its live listing
// price when the car is currently live
func GetCarById(c *fiber.Ctx) error {
	carID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid car id!", nil)
	}

	var row carWithLivePrice
	result := database.Database.Db.Model(&models.Car{}).
		Select("cars.*, live_cars.live_price").
		Joins("LEFT JOIN live_cars ON live_cars.car_id = cars.id").
		Where("cars.id = ?", carID).
		Limit(1).
		Scan(&row)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Car not found!", nil)
		}
		log.Printf("Error fetching car by id: %v", result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch car!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Car not found!", nil)
	}

	utils.NormalizeCar(&row.Car, c.BaseURL(), true)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Car fetched!", row)
}
