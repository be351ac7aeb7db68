package state

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// Snapshot file names inside the data directory.
const (
	settingsFile = "config.json"
	servicesFile = "services.json"
	statsFile    = "stats.json"
	giveawayFile = "giveaway.json"
)

// Store persists state snapshots as whole-file JSON documents. Every mutation
// rewrites the affected document in full; there are no partial writes and no
// transactions across documents.
type Store struct {
	dataDir string
	logger  *zap.Logger
}

// NewStore creates the data directory if needed and returns a store rooted at it.
func NewStore(dataDir string, logger *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &Store{
		dataDir: dataDir,
		logger:  logger.Named("store"),
	}, nil
}

// SaveSettings rewrites the settings snapshot.
func (st *Store) SaveSettings(settings Settings) {
	st.write(settingsFile, settings)
}

// LoadSettings reads the settings snapshot. A missing file yields ok=false.
func (st *Store) LoadSettings() (Settings, bool) {
	var settings Settings
	ok := st.read(settingsFile, &settings)
	return settings, ok
}

// SaveServices rewrites the services snapshot keyed by service id.
func (st *Store) SaveServices(services map[string]*Service) {
	st.write(servicesFile, services)
}

// LoadServices reads the services snapshot. A missing file yields ok=false.
func (st *Store) LoadServices() (map[string]*Service, bool) {
	services := make(map[string]*Service)
	ok := st.read(servicesFile, &services)
	return services, ok
}

// SaveStats rewrites the user stats snapshot keyed by user id.
func (st *Store) SaveStats(stats map[string]*UserStats) {
	st.write(statsFile, stats)
}

// LoadStats reads the user stats snapshot. A missing file yields ok=false.
func (st *Store) LoadStats() (map[string]*UserStats, bool) {
	stats := make(map[string]*UserStats)
	ok := st.read(statsFile, &stats)
	return stats, ok
}

// SaveGiveawayHistory rewrites the append-only giveaway history snapshot.
func (st *Store) SaveGiveawayHistory(history []GiveawayEntry) {
	st.write(giveawayFile, history)
}

// LoadGiveawayHistory reads the giveaway history snapshot.
func (st *Store) LoadGiveawayHistory() ([]GiveawayEntry, bool) {
	var history []GiveawayEntry
	ok := st.read(giveawayFile, &history)
	return history, ok
}

// write marshals v and rewrites the named snapshot file. Failures are retried
// briefly and then logged; the in-memory state remains authoritative.
func (st *Store) write(name string, v any) {
	data, err := sonic.ConfigDefault.MarshalIndent(v, "", "  ")
	if err != nil {
		st.logger.Error("Failed to marshal snapshot",
			zap.String("file", name),
			zap.Error(err))
		return
	}

	path := filepath.Join(st.dataDir, name)
	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(50*time.Millisecond), 2)

	err = backoff.Retry(func() error {
		return os.WriteFile(path, data, 0o644)
	}, policy)
	if err != nil {
		st.logger.Error("Failed to write snapshot",
			zap.String("file", name),
			zap.Error(err))
	}
}

// read unmarshals the named snapshot file into v. Returns false when the file
// is absent or unreadable; a corrupt file is logged and treated as absent.
func (st *Store) read(name string, v any) bool {
	path := filepath.Join(st.dataDir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			st.logger.Error("Failed to read snapshot",
				zap.String("file", name),
				zap.Error(err))
		}
		return false
	}

	if err := sonic.Unmarshal(data, v); err != nil {
		st.logger.Error("Failed to unmarshal snapshot",
			zap.String("file", name),
			zap.Error(err))
		return false
	}

	return true
}
