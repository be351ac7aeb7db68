// Package setup bootstraps the application: configuration, logging and the
// persistent state holder, bundled into one App value that main hands to the
// bot and workers.
package setup

import (
	"log"

	"go.uber.org/zap"

	"github.com/genvault/genvault/internal/setup/config"
	"github.com/genvault/genvault/internal/setup/logging"
	"github.com/genvault/genvault/internal/state"
)

// App bundles all core dependencies needed by the application.
type App struct {
	Config     *config.Config   // Application configuration
	Logger     *zap.Logger      // Main application logger
	State      *state.State     // Persistent runtime state
	LogManager *logging.Manager // Log session management
}

// InitializeApp bootstraps all application dependencies in order, ensuring
// each component has its required dependencies available.
func InitializeApp(logDir, configDir string) (*App, error) {
	cfg, usedConfigDir, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, err
	}

	// Logging comes up next to capture setup issues
	logManager := logging.NewManager(logDir, &cfg.Debug)

	logger, err := logManager.MainLogger()
	if err != nil {
		return nil, err
	}

	logger.Info("Configuration loaded", zap.String("configDir", usedConfigDir))

	st, err := state.New(cfg.Data.Dir, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		Config:     cfg,
		Logger:     logger,
		State:      st,
		LogManager: logManager,
	}, nil
}

// Cleanup flushes buffered logs on shutdown. Errors are logged but never
// propagated so every component gets a cleanup attempt.
func (a *App) Cleanup() {
	if err := a.Logger.Sync(); err != nil {
		log.Printf("Failed to sync logger: %v", err)
	}
}
