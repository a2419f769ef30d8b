// main.go
package main

import (
	"context"
	"log"
	"time"

	"coffee-booking/cmd"
	"coffee-booking/internal/cart"
	"coffee-booking/internal/data/repository"
	"coffee-booking/internal/wire"
	"coffee-booking/pkg/database"
	"coffee-booking/pkg/realtime"
	"coffee-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Apply schema migrations
	if err := database.Migrate(config.Database, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Change-notification bus for the admin live views
	var notifier realtime.Notifier
	redisNotifier, err := realtime.NewRedisNotifier(config.Redis, logger)
	if err != nil {
		logger.Warn("Redis unavailable, falling back to in-process notifier", zap.Error(err))
		notifier = realtime.NewMemoryNotifier(logger)
	} else {
		notifier = redisNotifier
	}
	defer notifier.Close()

	// Cart storage (Redis-backed when available)
	carts := cart.NewManager(cartPersistence(config, logger), config.Cart.KeyPrefix, logger)

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Hourly sweep of expired session rows
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := repos.Session.CleanExpiredSessions(context.Background()); err != nil {
				logger.Error("Failed to clean expired sessions", zap.Error(err))
			}
		}
	}()

	// Wire all dependencies
	app := wire.Wiring(repos, carts, notifier, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}

func cartPersistence(config *utils.Config, logger *zap.Logger) cart.Persistence {
	persist, err := cart.NewRedisPersistence(config.Redis)
	if err != nil {
		logger.Warn("Redis unavailable for cart storage, carts will not survive restarts", zap.Error(err))
		return cart.NewMemoryPersistence()
	}
	return persist
}
