// @title Community Assistance API
// @version 1.0
// @description Backend for submitting and browsing community help requests.
// @host localhost:3000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"os"
	"time"

	_ "assist-backend/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"assist-backend/bootstrap"
	"assist-backend/config"
	"assist-backend/database"
	"assist-backend/internal/controllers"
	"assist-backend/internal/middleware"
	"assist-backend/internal/repository"
	"assist-backend/internal/routes"
	"assist-backend/internal/services"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	client := database.ConnectMongo(cfg.MongoURI, cfg.MongoDB)
	defer client.Disconnect(context.Background())
	db := client.Database(cfg.MongoDB)

	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes failed")
	}

	// Optional broker for request lifecycle events
	var events services.EventPublisher
	if cfg.AMQPURL != "" {
		publisher, err := services.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize AMQP publisher")
		}
		defer publisher.Close()
		events = publisher
	} else {
		log.Warn().Msg("AMQP_URL not set - request events will not be published")
	}

	userRepo := repository.NewUserRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	notifier := services.NewMongoNotifier(db)

	requestService := services.NewRequestService(userRepo, requestRepo, notifier, events)
	profileService := services.NewProfileService(userRepo)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/docs/*", swagger.HandlerDefault)

	// Health
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	authHandler := controllers.NewAuthHandler(userRepo, []byte(cfg.JWTSecret))
	routes.SetupAuth(app, authHandler)

	app.Use(middleware.JWTUidOnly(cfg.JWTSecret))

	routes.SetupRequests(app, controllers.NewRequestHandler(requestService, requestRepo))
	routes.SetupProfile(app, controllers.NewProfileHandler(profileService))
	routes.SetupNotifications(app, controllers.NewNotificationHandler(db))

	log.Fatal().Err(app.Listen(":" + cfg.Port)).Msg("server stopped")
}
