package state

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ExecuteGiveaway runs one draw: it selects the top eligible users by message
// count and allocates random eligible accounts to each. The whole draw runs
// under the state lock so concurrent redemptions can never race it for stock.
//
// Winners may receive fewer accounts than configured when stock runs out;
// partial grants are not an error. A draw in which nobody receives anything
// fails with ErrNothingDistributed — accounts consumed by partial attempts
// before the failure are deliberately not returned to the pool, matching the
// historical behavior of the distribution ledger.
//
// The random source is supplied by the caller so draws are reproducible.
func (s *State) ExecuteGiveaway(rng *rand.Rand) (*GiveawayResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := s.settings.Giveaway

	if !cfg.Enabled {
		return nil, ErrGiveawayDisabled
	}
	if len(cfg.ServiceIDs) == 0 {
		return nil, ErrNoServicesSelected
	}

	topUsers := s.topUsersLocked(cfg.MinMessages, cfg.NumberOfWinners)
	if len(topUsers) == 0 {
		return nil, ErrNoEligibleUsers
	}

	var (
		winners      []GiveawayWinner
		accountsSent int
	)

	for _, userStats := range topUsers {
		var grants []GrantedAccount

		for i := 0; i < cfg.NumberOfAccounts; i++ {
			eligible := s.eligibleServicesLocked(cfg)
			if len(eligible) == 0 {
				s.logger.Debug("No eligible services left for winner",
					zap.String("userId", userStats.UserID),
					zap.Int("granted", i),
					zap.Int("entitled", cfg.NumberOfAccounts))
				break
			}

			service := eligible[rng.Intn(len(eligible))]
			account := s.claimLocked(service, userStats.UserID)
			if account == nil {
				continue
			}

			grants = append(grants, GrantedAccount{
				ServiceID:   service.ID,
				ServiceName: service.Name,
				Email:       account.Email,
				Password:    account.Password,
			})
			accountsSent++
		}

		// Winners with nothing granted are dropped from the record but
		// still consumed a draw slot.
		if len(grants) > 0 {
			winners = append(winners, GiveawayWinner{
				UserID:           userStats.UserID,
				MessageCount:     userStats.MessageCount,
				AccountsReceived: grants,
			})
		}
	}

	if len(winners) == 0 || accountsSent == 0 {
		return nil, ErrNothingDistributed
	}

	now := time.Now().UTC().Format(time.RFC3339)
	entry := GiveawayEntry{
		ID:      uuid.NewString(),
		Date:    now,
		Winners: winners,
		Config:  cfg,
	}
	entry.Config.ServiceIDs = append([]string(nil), cfg.ServiceIDs...)

	s.history = append(s.history, entry)
	s.saveHistory()

	s.settings.Giveaway.LastGiveawayDate = now
	s.saveSettings()

	s.logger.Info("Giveaway executed",
		zap.Int("winners", len(winners)),
		zap.Int("accountsSent", accountsSent))

	return &GiveawayResult{
		Winners:      winners,
		AccountsSent: accountsSent,
	}, nil
}

// eligibleServicesLocked returns the configured services whose VIP tier
// matches the account type filter and that still have stock, in configured
// order. Callers must hold s.mu.
func (s *State) eligibleServicesLocked(cfg GiveawayConfig) []*Service {
	var eligible []*Service

	for _, id := range cfg.ServiceIDs {
		service, exists := s.services[id]
		if !exists {
			continue
		}
		if cfg.AccountType == AccountTypeVIP && !service.IsVIPOnly {
			continue
		}
		if cfg.AccountType == AccountTypeFree && service.IsVIPOnly {
			continue
		}
		if s.availableCountLocked(id) == 0 {
			continue
		}
		eligible = append(eligible, service)
	}

	return eligible
}

// claimLocked reserves the first unused account of a service for a user.
// Callers must hold s.mu.
func (s *State) claimLocked(service *Service, userID string) *Account {
	for _, account := range service.Accounts {
		if account.IsUsed {
			continue
		}
		account.IsUsed = true
		account.UsedBy = userID
		account.UsedAt = time.Now().UTC().Format(time.RFC3339)
		s.saveServices()

		c := *account
		return &c
	}
	return nil
}

// GiveawayHistory returns a copy of the append-only draw log.
func (s *State) GiveawayHistory() []GiveawayEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]GiveawayEntry(nil), s.history...)
}
