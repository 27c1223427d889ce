package main

import (
	"log"
	"morya/config"
	"morya/database"
	"morya/middleware"
	authRoutes "morya/routers/authRoutes"
	carRoutes "morya/routers/carRoutes"
	expenditureRoutes "morya/routers/expenditureRoutes"
	"morya/utils"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // multipart intake carries up to ten photos
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Uploaded photos and documents are served read-only
	app.Static("/uploads", "./uploads")

	app.Get("/", func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Server is running.", nil)
	})

	app.Get("/api/health", func(c *fiber.Ctx) error {
		sqlDB, err := database.Database.Db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			log.Printf("Database health check failed: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Database connection failed!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Database connection healthy.", fiber.Map{
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	authRoutes.SetupAuthRoutes(app)
	carRoutes.SetupCarRoutes(app)
	expenditureRoutes.SetupExpenditureRoutes(app)

	utils.StartLiveCarScheduler()

	// Graceful shutdown on SIGINT/SIGTERM
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Println("Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
		if sqlDB, err := database.Database.Db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		log.Fatal(err)
	}
}
