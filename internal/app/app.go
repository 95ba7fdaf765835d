package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/skyplan/skyplan/internal/controllers/restserver"
	"github.com/skyplan/skyplan/internal/log"
	"github.com/skyplan/skyplan/internal/managers"
	"github.com/skyplan/skyplan/pkg/config"
	"github.com/skyplan/skyplan/pkg/profile"
	"go.uber.org/zap"
)

// App represents the main application
type App struct {
	configProvider config.Provider
	logger         *zap.SugaredLogger
}

// New creates a new application instance
func New(configProvider config.Provider, logger *zap.SugaredLogger) *App {
	return &App{
		configProvider: configProvider,
		logger:         logger,
	}
}

// Run starts the application and blocks until shutdown
func (a *App) Run(ctx context.Context) error {
	var wg sync.WaitGroup

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cfg, err := a.configProvider.LoadConfig()
	if err != nil {
		return fmt.Errorf("could not load configuration: %w", err)
	}

	// Open the aircraft profile store
	dbPath := cfg.ProfileDB
	if dbPath == "" {
		dbPath = "skyplan.db"
	}
	profiles, err := profile.Open(dbPath)
	if err != nil {
		return fmt.Errorf("could not open profile store %s: %w", dbPath, err)
	}
	defer profiles.Close()

	// Initialize the storage manager
	storageManager, err := managers.NewStorageManager(ctx, &wg, a.configProvider)
	if err != nil {
		return err
	}

	// Initialize the REST server controller
	rest, err := restserver.NewController(ctx, &wg, cfg.HTTP, profiles, storageManager.RecordDistributor, a.logger)
	if err != nil {
		return err
	}
	if err := rest.StartController(); err != nil {
		return err
	}

	log.Info("Application started successfully")

	// Set up signal handling
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	// Wait for shutdown signal
	select {
	case <-sigs:
		log.Info("shutdown signal received, initiating graceful shutdown...")
	case <-ctx.Done():
		log.Info("context cancelled, shutting down...")
	}

	// Cancel context to signal all goroutines to stop
	cancel()

	// Wait for all workers to terminate
	log.Info("waiting for all workers to terminate...")
	wg.Wait()
	log.Info("shutdown complete")

	return nil
}
