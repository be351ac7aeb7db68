package state

import "time"

// SetTicketCooldown stamps the user's last ticket creation time.
func (s *State) SetTicketCooldown(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ticketCooldowns[userID] = time.Now()
}

// TicketCooldownRemaining returns how long the user must still wait before
// opening another ticket. The duration is read from the live settings at call
// time, so admin changes apply to future checks only.
func (s *State) TicketCooldownRemaining(userID string, isVIP bool) time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return remaining(s.ticketCooldowns, userID, s.settings.TicketCooldownFor(isVIP))
}

// SetGenCooldown stamps the user's last account generation time.
func (s *State) SetGenCooldown(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.genCooldowns[userID] = time.Now()
}

// GenCooldownRemaining returns how long the user must still wait before
// generating another account.
func (s *State) GenCooldownRemaining(userID string, isVIP bool) time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return remaining(s.genCooldowns, userID, s.settings.GenCooldownFor(isVIP))
}

// remaining computes the leftover wait, floored at zero. No record means no
// cooldown is active.
func remaining(stamps map[string]time.Time, userID string, duration time.Duration) time.Duration {
	stamp, exists := stamps[userID]
	if !exists {
		return 0
	}

	left := duration - time.Since(stamp)
	if left < 0 {
		return 0
	}
	return left
}
