package expenditureController_test

import (
	"bytes"
	"encoding/json"
	"io"
	"morya/config"
	"morya/database"
	"morya/middleware"
	"morya/models"
	expenditureRoutes "morya/routers/expenditureRoutes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	config.AppConfig = &config.Config{JWTKey: "test-secret", AdminEmail: "admin@gmail.com"}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Car{}, &models.LiveCar{}, &models.Expenditure{}))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	expenditureRoutes.SetupExpenditureRoutes(app)
	return app
}

func postExpenditure(t *testing.T, app *fiber.App, payload interface{}) *http.Response {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "http://example.com/api/expenditure/add", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	token, err := middleware.GenerateJWT(config.AppConfig.AdminEmail)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAddExpenditure(t *testing.T) {
	app := setupApp(t)

	t.Run("car_id is required", func(t *testing.T) {
		resp := postExpenditure(t, app, fiber.Map{"maintenance": 2000})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("absent categories default to zero", func(t *testing.T) {
		resp := postExpenditure(t, app, fiber.Map{"car_id": 7, "maintenance": 2000})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)

		var entry models.Expenditure
		require.NoError(t, database.Database.Db.First(&entry).Error)
		assert.Equal(t, uint(7), entry.CarID)
		assert.Equal(t, 2000.0, entry.Maintenance)
		assert.Zero(t, entry.Denting)
		assert.Zero(t, entry.Painting)
		assert.Zero(t, entry.Accessories)
		assert.Zero(t, entry.Machine)
	})
}

func TestGetExpenditureByCarId(t *testing.T) {
	app := setupApp(t)

	t.Run("no rows yields an empty object, not an error", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "http://example.com/api/expenditure/5", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		var parsed map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &parsed))
		assert.Empty(t, parsed["data"].(map[string]interface{}))
	})

	t.Run("returns the most recent entry", func(t *testing.T) {
		db := database.Database.Db
		older := models.Expenditure{CarID: 5, Maintenance: 1000}
		older.CreatedAt = time.Now().Add(-time.Hour)
		require.NoError(t, db.Create(&older).Error)
		newer := models.Expenditure{CarID: 5, Maintenance: 3000, Denting: 500}
		require.NoError(t, db.Create(&newer).Error)

		resp, err := app.Test(httptest.NewRequest("GET", "http://example.com/api/expenditure/5", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		var parsed map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &parsed))
		data := parsed["data"].(map[string]interface{})
		assert.Equal(t, 3000.0, data["maintenance"])
		assert.Equal(t, 500.0, data["denting"])
	})
}
