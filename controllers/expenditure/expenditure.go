package expenditureController

import (
	"errors"
	"log"
	"morya/database"
	"morya/middleware"
	"morya/models"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AddExpenditure appends a cost entry for a car. Absent categories
// default to 0.
func AddExpenditure(c *fiber.Ctx) error {
	reqData := new(struct {
		CarID       uint    `json:"car_id"`
		Maintenance float64 `json:"maintenance"`
		Denting     float64 `json:"denting"`
		Painting    float64 `json:"painting"`
		Accessories float64 `json:"accessories"`
		Machine     float64 `json:"machine"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.CarID == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "car_id is required!", nil)
	}

	expenditure := models.Expenditure{
		CarID:       reqData.CarID,
		Maintenance: reqData.Maintenance,
		Denting:     reqData.Denting,
		Painting:    reqData.Painting,
		Accessories: reqData.Accessories,
		Machine:     reqData.Machine,
	}

	if err := database.Database.Db.Create(&expenditure).Error; err != nil {
		log.Printf("Error adding expenditure: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add expenditure!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Expenditure added.", fiber.Map{
		"id": expenditure.ID,
	})
}

// GetExpenditureByCarId returns the most recent expenditure entry for a
// car, or an empty object when none exists.
func GetExpenditureByCarId(c *fiber.Ctx) error {
	param := c.Params("car_id")
	if param == "" {
		param = c.Params("id")
	}
	carID, err := strconv.Atoi(param)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid car id!", nil)
	}

	var expenditure models.Expenditure
	result := database.Database.Db.Where("car_id = ?", carID).
		Order("created_at DESC").
		First(&expenditure)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "No expenditure recorded.", fiber.Map{})
		}
		log.Printf("Error fetching expenditure: %v", result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch expenditure!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Expenditure fetched!", expenditure)
}
