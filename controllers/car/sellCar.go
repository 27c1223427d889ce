package carController

import (
	"encoding/json"
	"errors"
	"log"
	"morya/database"
	"morya/middleware"
	"morya/models"
	"morya/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// toNullIfEmpty maps an empty form value to NULL instead of storing the
// empty string.
func toNullIfEmpty(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// newOwnerDocumentKeys is the fixed key set of the new_owner_documents
// JSON column.
var newOwnerDocumentKeys = []string{"deliveryPhoto", "aadhaarCard", "panCard", "rcBook", "loanNoc"}

func parseSaleDate(raw string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Now()
}

// buildSaleUpdates collects the sale column values from the multipart
// form. Every money and payment-type field follows the empty→NULL rule.
func buildSaleUpdates(c *fiber.Ctx, uploads map[string]string) map[string]interface{} {
	saleDate := parseSaleDate(c.FormValue("soldAt"))

	var documentsJSON interface{}
	if len(uploads) > 0 {
		documents := map[string]interface{}{}
		for _, key := range newOwnerDocumentKeys {
			if path, ok := uploads[key]; ok {
				documents[key] = path
			} else {
				documents[key] = nil
			}
		}
		raw, _ := json.Marshal(documents)
		documentsJSON = raw
	}

	return map[string]interface{}{
		"sold":                     true,
		"sale_price":               toNullIfEmpty(c.FormValue("salePrice")),
		"token_amount":             toNullIfEmpty(c.FormValue("tokenAmount")),
		"token_payment_type":       toNullIfEmpty(c.FormValue("tokenPaymentType")),
		"first_amount":             toNullIfEmpty(c.FormValue("firstAmount")),
		"first_payment_type":       toNullIfEmpty(c.FormValue("firstPaymentType")),
		"transferred_amount":       toNullIfEmpty(c.FormValue("transferredAmount")),
		"transferred_payment_type": toNullIfEmpty(c.FormValue("transferredPaymentType")),
		"loan_amount":              toNullIfEmpty(c.FormValue("loanAmount")),
		"total_amount":             toNullIfEmpty(c.FormValue("totalAmount")),
		"remaining_amount":         toNullIfEmpty(c.FormValue("remainingAmount")),
		"new_owner_name":           toNullIfEmpty(c.FormValue("newOwnerName")),
		"new_owner_phone":          toNullIfEmpty(c.FormValue("newOwnerPhone")),
		"new_owner_phone2":         toNullIfEmpty(c.FormValue("newOwnerPhone2")),
		"new_owner_email":          toNullIfEmpty(c.FormValue("newOwnerEmail")),
		"new_owner_address":        toNullIfEmpty(c.FormValue("newOwnerAddress")),
		"new_owner_documents":      documentsJSON,
		"sale_date":                saleDate,
	}
}

func saveSaleDocuments(c *fiber.Ctx) (map[string]string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		// A sale without documents may arrive without a multipart body.
		return map[string]string{}, nil
	}
	return utils.SaveSoldCarFiles(form)
}

// sellCar marks a car sold with its full sale details. For a live car
// the listing removal and the sale update commit in one transaction, so
// a failed update never leaves the car unlisted but unsold.
func sellCar(c *fiber.Ctx, removeListing bool) error {
	carID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid car id!", nil)
	}

	uploads, err := saveSaleDocuments(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}

	updates := buildSaleUpdates(c, uploads)

	err = database.Database.Db.Transaction(func(tx *gorm.DB) error {
		// MySQL reports changed rows, not matched rows, so existence is
		// checked up front rather than via RowsAffected.
		if err := tx.First(&models.Car{}, carID).Error; err != nil {
			return err
		}
		if removeListing {
			if err := tx.Where("car_id = ?", carID).Delete(&models.LiveCar{}).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.Car{}).Where("id = ?", carID).Updates(updates).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Car not found!", nil)
		}
		log.Printf("Error marking car %d as sold: %v", carID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark car as sold!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Car sold.", nil)
}

// SellLiveCar retracts the live listing and records the sale
func SellLiveCar(c *fiber.Ctx) error {
	return sellCar(c, true)
}

// SellCar records the sale of a car that was never listed live
func SellCar(c *fiber.Ctx) error {
	return sellCar(c, false)
}

// UpdatePayment overwrites only the payment-breakdown fields of a car
func UpdatePayment(c *fiber.Ctx) error {
	carID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid car id!", nil)
	}

	reqData := new(struct {
		TokenAmount            string `json:"tokenAmount"`
		TokenPaymentType       string `json:"tokenPaymentType"`
		FirstAmount            string `json:"firstAmount"`
		FirstPaymentType       string `json:"firstPaymentType"`
		TransferredAmount      string `json:"transferredAmount"`
		TransferredPaymentType string `json:"transferredPaymentType"`
		LoanAmount             string `json:"loanAmount"`
		TotalAmount            string `json:"totalAmount"`
		RemainingAmount        string `json:"remainingAmount"`
		SalePrice              string `json:"salePrice"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	updates := map[string]interface{}{
		"token_amount":             toNullIfEmpty(reqData.TokenAmount),
		"token_payment_type":       toNullIfEmpty(reqData.TokenPaymentType),
		"first_amount":             toNullIfEmpty(reqData.FirstAmount),
		"first_payment_type":       toNullIfEmpty(reqData.FirstPaymentType),
		"transferred_amount":       toNullIfEmpty(reqData.TransferredAmount),
		"transferred_payment_type": toNullIfEmpty(reqData.TransferredPaymentType),
		"loan_amount":              toNullIfEmpty(reqData.LoanAmount),
		"total_amount":             toNullIfEmpty(reqData.TotalAmount),
		"remaining_amount":         toNullIfEmpty(reqData.RemainingAmount),
		"sale_price":               toNullIfEmpty(reqData.SalePrice),
	}

	db := database.Database.Db
	if err := db.First(&models.Car{}, carID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Car not found!", nil)
	}

	if err := db.Model(&models.Car{}).Where("id = ?", carID).Updates(updates).Error; err != nil {
		log.Printf("Error updating payment details: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update payment details!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment details updated.", nil)
}
