// main.go
package main

import (
	"context"
	"log"

	"wedding-portal/cmd"
	"wedding-portal/internal/data/repository"
	"wedding-portal/internal/state"
	"wedding-portal/internal/wire"
	"wedding-portal/pkg/database"
	"wedding-portal/pkg/utils"

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

	// Local snapshot store backs the offline fallback in both modes
	snap, err := database.OpenSnapshotStore(config.Snapshot.Path)
	if err != nil {
		logger.Fatal("Failed to open snapshot store", zap.Error(err))
	}
	defer snap.Close()

	// Storage mode is decided exactly once, here. If the database
	// settings are blank or still carry placeholder values the portal
	// runs on the local snapshot alone.
	remote := config.Database.RemoteConfigured()

	var repo *repository.Repository
	if remote {
		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Warn("Database unreachable, falling back to local snapshot mode", zap.Error(err))
			remote = false
		} else {
			defer db.Close()
			logger.Info("Database connected successfully")
			repo = repository.NewPostgresRepository(db, logger)
		}
	}
	if !remote {
		logger.Info("Running in local snapshot mode",
			zap.String("path", config.Snapshot.Path))
		repo = repository.NewSnapshotRepository(snap, logger)
	}

	// Build the in-memory state and pull the initial dataset
	manager := state.NewManager(repo, snap, remote, config, logger)
	if warning, err := manager.Refresh(context.Background()); err != nil {
		logger.Fatal("Failed to load initial state", zap.Error(err))
	} else if warning != "" {
		logger.Warn("Initial load used fallback data", zap.String("warning", warning))
	}
	defer manager.FlushPendingWrites()

	// Wire all dependencies
	app := wire.Wiring(manager, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
