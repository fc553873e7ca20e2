package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gamestore-backend/internal/config"
	"gamestore-backend/internal/database"
	"gamestore-backend/internal/server"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// @title Gamestore API
// @version 1.0
// @description CRUD API for game consoles and the games released on them

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /
// @schemes http https

func main() {
	rootCmd := &cobra.Command{
		Use:   "gamestore",
		Short: "Consoles and games CRUD service",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			loadEnvFile()
		},
	}

	rootCmd.AddCommand(serveCmd(), migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			log := setupLogger(cfg)

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			db, err := database.Connect(cfg.Database)
			if err != nil {
				return err
			}
			defer func() {
				if err := db.Close(); err != nil {
					log.Errorf("Error closing database connection: %v", err)
				}
			}()

			app := server.New(cfg, db, log)

			go gracefulShutdown(app, log)

			log.Infof("Gamestore API starting on port %s", cfg.Server.Port)
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				return fmt.Errorf("failed to start HTTP server: %w", err)
			}
			return nil
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the consoles and games tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			setupLogger(cfg)

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			cfg.Database.AutoMigrate = false
			db, err := database.Connect(cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			return db.Migrate()
		},
	}
}

func setupLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	if cfg.IsDevelopment() {
		log.SetLevel(logrus.DebugLevel)
	}

	// database.Connect logs through the standard logger.
	logrus.SetFormatter(log.Formatter)
	logrus.SetLevel(log.GetLevel())

	return log
}

func gracefulShutdown(app *fiber.App, log *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Errorf("Error during shutdown: %v", err)
	}

	log.Info("Server shutdown complete")
}

func loadEnvFile() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})
	log.SetOutput(os.Stdout)

	_, _ = config.LoadEnvFile("", log)
}
