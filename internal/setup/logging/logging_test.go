package logging_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genvault/genvault/internal/setup/config"
	"github.com/genvault/genvault/internal/setup/logging"
)

func TestManagerCreatesSessionLogs(t *testing.T) {
	t.Parallel()

	logDir := t.TempDir()
	manager := logging.NewManager(logDir, &config.Debug{
		LogLevel:      "info",
		MaxLogsToKeep: 3,
		MaxLogLines:   100,
	})

	logger, err := manager.MainLogger()
	require.NoError(t, err)
	require.NotNil(t, logger)

	logger.Info("hello")
	require.NoError(t, logger.Sync())

	sessionDir := manager.SessionDir()
	require.NotEmpty(t, sessionDir)

	data, err := os.ReadFile(filepath.Join(sessionDir, "main.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestWorkerLoggerNeverNil(t *testing.T) {
	t.Parallel()

	manager := logging.NewManager(t.TempDir(), &config.Debug{
		LogLevel:      "debug",
		MaxLogsToKeep: 3,
		MaxLogLines:   100,
	})

	_, err := manager.MainLogger()
	require.NoError(t, err)

	logger := manager.WorkerLogger("presence")
	require.NotNil(t, logger)
	logger.Info("worker line")
}

func TestLineCapWriterUnderCap(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "test.log")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)

	writer := logging.NewLineCapWriter(file, 3, path)
	_, err = writer.Write([]byte("one\n"))
	require.NoError(t, err)
	_, err = writer.Write([]byte("two\n"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(data))
}

func TestLineCapWriterRewritesAtTwiceCap(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "test.log")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)

	writer := logging.NewLineCapWriter(file, 3, path)
	for _, line := range []string{"1", "2", "3", "4", "5", "6"} {
		_, err := writer.Write([]byte(line + "\n"))
		require.NoError(t, err)
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"4", "5", "6"}, strings.Fields(string(data)))

	// Writes keep working against the reopened file
	_, err = writer.Write([]byte("7\n"))
	require.NoError(t, err)

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"4", "5", "6", "7"}, strings.Fields(string(data)))
}
