// Package logging manages per-session log directories and the zap loggers
// written into them. Each program run gets a timestamped session directory;
// old sessions are pruned on startup.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/genvault/genvault/internal/setup/config"
)

// Manager handles the creation and management of log files and directories.
type Manager struct {
	logDir        string // Base directory for all logs
	sessionDir    string // Path to the current session's log directory
	level         string // Logging level (debug, info, warn, error)
	maxLogsToKeep int    // Maximum number of log sessions to retain
	maxLogLines   int    // Maximum number of lines to keep in each log file
}

// NewManager creates a log manager rooted at logDir.
func NewManager(logDir string, debugCfg *config.Debug) *Manager {
	return &Manager{
		logDir:        logDir,
		level:         debugCfg.LogLevel,
		maxLogsToKeep: debugCfg.MaxLogsToKeep,
		maxLogLines:   debugCfg.MaxLogLines,
	}
}

// MainLogger initializes the session directory and returns the main
// application logger writing to main.log inside it.
func (lm *Manager) MainLogger() (*zap.Logger, error) {
	if err := lm.setupSessionDir(); err != nil {
		return nil, err
	}

	logger, err := lm.initLogger(filepath.Join(lm.sessionDir, "main.log"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize main logger: %w", err)
	}

	return logger, nil
}

// WorkerLogger creates a logger for a background worker. Each worker gets its
// own log file in the session directory.
func (lm *Manager) WorkerLogger(name string) *zap.Logger {
	logger, err := lm.initLogger(filepath.Join(lm.currentSessionDir(), name+".log"))
	if err != nil {
		return zap.NewNop()
	}

	return logger
}

// SessionDir returns the current session directory.
func (lm *Manager) SessionDir() string {
	return lm.currentSessionDir()
}

// setupSessionDir creates the base directory, prunes old sessions and creates
// a fresh timestamped session directory.
func (lm *Manager) setupSessionDir() error {
	if err := os.MkdirAll(lm.logDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	if err := lm.pruneSessions(); err != nil {
		return fmt.Errorf("failed to prune log sessions: %w", err)
	}

	lm.sessionDir = filepath.Join(lm.logDir, time.Now().Format("2006-01-02_15-04-05"))
	if err := os.MkdirAll(lm.sessionDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	return nil
}

// currentSessionDir returns the session directory, creating one if MainLogger
// has not run yet. Falls back to the base log directory on failure.
func (lm *Manager) currentSessionDir() string {
	if lm.sessionDir != "" {
		return lm.sessionDir
	}

	sessionDir := filepath.Join(lm.logDir, time.Now().Format("2006-01-02_15-04-05"))
	if err := os.MkdirAll(sessionDir, os.ModePerm); err != nil {
		return lm.logDir
	}

	lm.sessionDir = sessionDir

	return sessionDir
}

// initLogger creates a zap logger writing line-capped output to path.
func (lm *Manager) initLogger(path string) (*zap.Logger, error) {
	zapLevel, err := zapcore.ParseLevel(lm.level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file %s: %w", path, err)
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(NewLineCapWriter(file, lm.maxLogLines, path)),
		zapLevel,
	)

	return zap.New(
		core,
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
		zap.Development(),
	), nil
}

// pruneSessions removes the oldest session directories so at most
// maxLogsToKeep remain.
func (lm *Manager) pruneSessions() error {
	sessions, err := filepath.Glob(filepath.Join(lm.logDir, "*"))
	if err != nil {
		return err
	}

	if len(sessions) <= lm.maxLogsToKeep {
		return nil
	}

	sort.Slice(sessions, func(i, j int) bool {
		iInfo, _ := os.Stat(sessions[i])
		jInfo, _ := os.Stat(sessions[j])

		return iInfo.ModTime().Before(jInfo.ModTime())
	})

	toDelete := len(sessions) - lm.maxLogsToKeep
	for i := range toDelete {
		if err := os.RemoveAll(sessions[i]); err != nil {
			return err
		}
	}

	return nil
}
