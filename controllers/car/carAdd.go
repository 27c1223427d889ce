package carController

import (
	"encoding/json"
	"log"
	"morya/database"
	"morya/middleware"
	"morya/models"
	"morya/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// documentKeys is the fixed key set of the documents JSON column.
// Missing uploads are stored as null so the column shape stays stable.
var documentKeys = []string{"aadhaarCard", "panCard", "rcBook", "insurancePapers"}

func optional(uploads map[string]string, field string) *string {
	if name, ok := uploads[field]; ok {
		return &name
	}
	return nil
}

// AddCar persists a new inventory record from a multipart intake form:
// scalar attributes from the form values, photos and documents from the
// uploaded files.
func AddCar(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid multipart form!", nil)
	}

	photos, uploads, err := utils.SaveCarIntakeFiles(form)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}

	documents := map[string]interface{}{}
	for _, key := range documentKeys {
		if name, ok := uploads[key]; ok {
			documents[key] = name
		} else {
			documents[key] = nil
		}
	}

	photosJSON, _ := json.Marshal(photos)
	documentsJSON, _ := json.Marshal(documents)

	car := models.Car{
		Brand:              c.FormValue("brand"),
		Model:              c.FormValue("model"),
		Variant:            c.FormValue("variant"),
		Year:               c.FormValue("year"),
		ManufacturingMonth: c.FormValue("manufacturingMonth"),
		NumberOfOwners:     c.FormValue("numberOfOwners"),
		Colour:             c.FormValue("colour"),
		FuelType:           c.FormValue("fuelType"),
		Transmission:       c.FormValue("transmission"),
		RegistrationNumber: c.FormValue("registrationNumber"),
		RegistrationPlace:  c.FormValue("registrationPlace"),
		Price:              c.FormValue("price"),
		KilometersDriven:   c.FormValue("kilometersDriven"),
		InsuranceType:      c.FormValue("insuranceType"),
		EngineNumber:       c.FormValue("engineNumber"),
		ChassisNumber:      c.FormValue("chassisNumber"),
		ClientMobile:       c.FormValue("clientMobile"),
		Photos:             datatypes.JSON(photosJSON),
		Documents:          datatypes.JSON(documentsJSON),
		Form29Front:        optional(uploads, "form29Front"),
		Form29Back:         optional(uploads, "form29Back"),
		Form28Front:        optional(uploads, "form28Front"),
		Form28Back:         optional(uploads, "form28Back"),
		Form30Front:        optional(uploads, "form30Front"),
	}

	if err := database.Database.Db.Create(&car).Error; err != nil {
		log.Printf("Error adding car: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add car!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Car added successfully.", fiber.Map{
		"carId": car.ID,
	})
}
