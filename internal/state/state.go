// Package state implements the in-process allocation and ledger core: the
// account inventory per service, one-time redemption codes, cooldown
// enforcement, ticket lifetime tracking, activity counters and the giveaway
// engine. All shared state lives behind one holder that is constructed
// explicitly and passed to every handler.
package state

import (
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

// State is the process-wide mutable state holder. A single mutex guards all
// maps so that compound operations like claiming an account are atomic with
// respect to concurrent handler invocations.
type State struct {
	mu sync.RWMutex

	settings Settings

	services     map[string]*Service
	serviceOrder []string

	codes map[string]*RedemptionCode

	tickets map[string]*Ticket

	ticketCooldowns map[string]time.Time
	genCooldowns    map[string]time.Time

	stats      map[string]*UserStats
	statsOrder []string

	history []GiveawayEntry

	panels map[string]string // gen panel message id -> channel id

	store  *Store
	logger *zap.Logger
}

// New constructs a state holder backed by JSON snapshots under dataDir and
// loads any existing snapshots.
func New(dataDir string, logger *zap.Logger) (*State, error) {
	store, err := NewStore(dataDir, logger)
	if err != nil {
		return nil, err
	}

	s := &State{
		settings:        DefaultSettings(),
		services:        make(map[string]*Service),
		codes:           make(map[string]*RedemptionCode),
		tickets:         make(map[string]*Ticket),
		ticketCooldowns: make(map[string]time.Time),
		genCooldowns:    make(map[string]time.Time),
		stats:           make(map[string]*UserStats),
		panels:          make(map[string]string),
		store:           store,
		logger:          logger.Named("state"),
	}
	s.load()

	return s, nil
}

// load replaces in-memory state with the persisted snapshots. Missing or
// corrupt snapshot files leave the built-in defaults in place.
func (s *State) load() {
	if loaded, ok := s.store.LoadSettings(); ok {
		s.settings = mergeSettings(DefaultSettings(), loaded)
	}

	if services, ok := s.store.LoadServices(); ok {
		s.services = services
		s.serviceOrder = sortedKeys(services)
	}

	if stats, ok := s.store.LoadStats(); ok {
		s.stats = stats
		s.statsOrder = sortedKeys(stats)
	}

	if history, ok := s.store.LoadGiveawayHistory(); ok {
		s.history = history
	}

	s.logger.Info("State loaded",
		zap.Int("services", len(s.services)),
		zap.Int("trackedUsers", len(s.stats)),
		zap.Int("giveaways", len(s.history)))
}

// sortedKeys rebuilds a deterministic iteration order after a snapshot load.
// Service and stats ids embed their creation timestamps, so lexicographic
// order matches insertion order for freshly created entries.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// saveSettings persists the settings snapshot. Callers must hold s.mu.
func (s *State) saveSettings() {
	s.store.SaveSettings(s.settings)
}

// saveServices persists the services snapshot. Callers must hold s.mu.
func (s *State) saveServices() {
	s.store.SaveServices(s.services)
}

// saveStats persists the stats snapshot. Callers must hold s.mu.
func (s *State) saveStats() {
	s.store.SaveStats(s.stats)
}

// saveHistory persists the giveaway history snapshot. Callers must hold s.mu.
func (s *State) saveHistory() {
	s.store.SaveGiveawayHistory(s.history)
}

// AddPanelMessage tracks a generator panel message for later refresh.
// Panel tracking is memory-only and does not survive restarts.
func (s *State) AddPanelMessage(messageID, channelID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.panels[messageID] = channelID
}

// RemovePanelMessage stops tracking a generator panel message.
func (s *State) RemovePanelMessage(messageID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.panels, messageID)
}

// PanelMessages returns the tracked generator panel messages as a map of
// message id to channel id.
func (s *State) PanelMessages() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	panels := make(map[string]string, len(s.panels))
	for messageID, channelID := range s.panels {
		panels[messageID] = channelID
	}
	return panels
}
