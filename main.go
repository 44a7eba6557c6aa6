// main.go
package main

import (
	"log"

	"tourism-booking/cmd"
	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/wire"
	"tourism-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("store", config.Store.Driver),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect the booking store
	store, closeStore, err := wire.OpenStore(config, logger)
	if err != nil {
		logger.Fatal("Failed to open booking store", zap.Error(err))
	}
	defer closeStore()

	repos := repository.NewRepository(store)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	if err := cmd.APIServer(app.Router, config, logger); err != nil {
		logger.Error("Server exited with error", zap.Error(err))
	}
}
