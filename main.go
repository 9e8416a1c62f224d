package main

import (
	"paydash/config"
	"paydash/database"
	"paydash/gateway"
	authRoutes "paydash/routers/authRoutes"
	bulkRoutes "paydash/routers/bulkRoutes"
	payoutRoutes "paydash/routers/payoutRoutes"
	"paydash/session"
	"paydash/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"log"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	gateway.Init(&session.GormStore{Db: database.Database.Db})

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	payoutRoutes.SetupPayoutRoutes(app)
	bulkRoutes.SetupBulkPaymentRoutes(app)

	// Re-check pending payout orders in the background
	utils.InitializeStatusPoller()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
