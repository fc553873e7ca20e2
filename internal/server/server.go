package server

import (
	"errors"
	"time"

	_ "gamestore-backend/docs"
	"gamestore-backend/internal/config"
	"gamestore-backend/internal/database"
	"gamestore-backend/internal/handlers"
	"gamestore-backend/internal/repository"
	"gamestore-backend/internal/routes"
	"gamestore-backend/internal/services"
	"gamestore-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

// New wires repositories, services and handlers around db and returns a
// ready-to-listen fiber app.
func New(cfg *config.Config, db *database.Database, log *logrus.Logger) *fiber.App {
	consoleRepo := repository.NewConsoleRepository(db)
	gameRepo := repository.NewGameRepository(db)

	consoleService := services.NewConsoleService(consoleRepo, log)
	gameService := services.NewGameService(gameRepo, consoleRepo, log)

	consoleHandler := handlers.NewConsoleHandler(consoleService, log)
	gameHandler := handlers.NewGameHandler(gameService, log)

	app := fiber.New(fiber.Config{
		AppName:               "Gamestore API",
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		IdleTimeout:           120 * time.Second,
		DisableStartupMessage: cfg.Env == "test",
		ErrorHandler:          customErrorHandler(log),
	})

	setupMiddleware(app, cfg)

	app.Get("/health", healthCheckHandler(db))
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	routes.Setup(app, consoleHandler, gameHandler)

	return app
}

func setupMiddleware(app *fiber.App, cfg *config.Config) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: cfg.IsDevelopment(),
	}))

	if cfg.Env != "test" {
		app.Use(logger.New(logger.Config{
			Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
			TimeFormat: "15:04:05",
			TimeZone:   "Local",
		}))
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: false,
		MaxAge:           86400,
	}))
}

func healthCheckHandler(db *database.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbStatus := "healthy"
		if err := db.HealthCheck(c.UserContext()); err != nil {
			dbStatus = "unhealthy"
		}

		return c.JSON(fiber.Map{
			"status":    "ok",
			"service":   "gamestore-backend",
			"database":  dbStatus,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func customErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}

		entry := log.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
			"status": code,
		})
		if code >= fiber.StatusInternalServerError {
			entry.Error("Request error")
		} else {
			entry.Debug("Request error")
		}

		return utils.ErrorResponse(c, code, message)
	}
}
