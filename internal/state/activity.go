package state

import (
	"sort"
	"time"
)

// IncrementMessageCount bumps the user's message counter and timestamp. The
// stats snapshot is rewritten synchronously on every call.
func (s *State) IncrementMessageCount(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC().Format(time.RFC3339)

	stats, exists := s.stats[userID]
	if exists {
		stats.MessageCount++
		stats.LastMessageDate = now
	} else {
		s.stats[userID] = &UserStats{
			UserID:          userID,
			MessageCount:    1,
			LastMessageDate: now,
		}
		s.statsOrder = append(s.statsOrder, userID)
	}
	s.saveStats()
}

// UserStats returns a copy of the stats for a user.
func (s *State) UserStats(userID string) (*UserStats, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats, exists := s.stats[userID]
	if !exists {
		return nil, false
	}
	c := *stats
	return &c, true
}

// TopUsers returns up to limit users with at least minMessages messages,
// ordered by descending message count. Ties keep tracking order so repeated
// draws over the same data are deterministic.
func (s *State) TopUsers(minMessages, limit int) []*UserStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.topUsersLocked(minMessages, limit)
}

// topUsersLocked implements TopUsers. Callers must hold s.mu.
func (s *State) topUsersLocked(minMessages, limit int) []*UserStats {
	eligible := make([]*UserStats, 0, len(s.statsOrder))
	for _, userID := range s.statsOrder {
		stats, exists := s.stats[userID]
		if exists && stats.MessageCount >= minMessages {
			c := *stats
			eligible = append(eligible, &c)
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].MessageCount > eligible[j].MessageCount
	})

	if limit >= 0 && len(eligible) > limit {
		eligible = eligible[:limit]
	}
	return eligible
}

// ResetStats clears all tracked activity.
func (s *State) ResetStats() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats = make(map[string]*UserStats)
	s.statsOrder = nil
	s.saveStats()
}
