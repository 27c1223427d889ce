package authController

import (
	"log"
	"morya/config"
	"morya/middleware"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// checkPassword compares against the configured bcrypt hash when one is
// set, otherwise against the plaintext fallback.
func checkPassword(plain string) bool {
	if config.AppConfig.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword(
			[]byte(config.AppConfig.AdminPasswordHash), []byte(plain)) == nil
	}
	if config.AppConfig.AdminPassword == "" {
		return false
	}
	return plain == config.AppConfig.AdminPassword
}

// Login authenticates the single configured admin. A wrong email and a
// wrong password produce the same response so the two cannot be told
// apart.
func Login(c *fiber.Ctx) error {
	reqData := new(struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
	}

	if reqData.Email == "" || reqData.Password == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email and password are required!", nil)
	}

	if reqData.Email != config.AppConfig.AdminEmail || !checkPassword(reqData.Password) {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	token, err := middleware.GenerateJWT(reqData.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"token": token,
		"user":  fiber.Map{"email": reqData.Email},
	})
}
