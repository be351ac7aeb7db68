package state

import (
	"time"
)

// Default cooldown durations in milliseconds.
const (
	defaultTicketCooldown    = 300000
	defaultTicketCooldownVIP = 60000
	defaultGenCooldown       = 300000
	defaultGenCooldownVIP    = 300000
)

// GiveawayConfig controls the periodic activity-based giveaway.
type GiveawayConfig struct {
	Enabled          bool        `json:"enabled"`
	MinMessages      int         `json:"minMessages"`
	NumberOfWinners  int         `json:"numberOfWinners"`
	NumberOfAccounts int         `json:"numberOfAccounts"`
	AccountType      AccountType `json:"accountType"`
	ServiceIDs       []string    `json:"serviceIds"`
	GuildID          string      `json:"guildId"`
	LastGiveawayDate string      `json:"lastGiveawayDate,omitempty"`
}

// Settings holds the runtime configuration persisted to the config snapshot.
// Cooldown values are stored as integer milliseconds to keep the snapshot
// format compatible with pre-existing data files.
type Settings struct {
	StatusText         string         `json:"statusText"`
	RequiredRoleID     string         `json:"requiredRoleId"`
	VIPRoleID          string         `json:"vipRoleId"`
	AdminRoleID        string         `json:"adminRoleId"`
	SupplierRoleID     string         `json:"supplierRoleId"`
	VerificationRoleID string         `json:"verificationRoleId"`
	GenChannelID       string         `json:"genChannelId"`
	TicketChannelID    string         `json:"ticketChannelId"`
	LogChannelID       string         `json:"logChannelId"`
	RestockChannelID   string         `json:"restockChannelId"`
	RestockPingRoleID  string         `json:"restockPingRoleId"`
	NormalCooldown     int64          `json:"normalCooldown"`
	VIPCooldown        int64          `json:"vipCooldown"`
	NormalGenCooldown  int64          `json:"normalGenCooldown"`
	VIPGenCooldown     int64          `json:"vipGenCooldown"`
	Giveaway           GiveawayConfig `json:"giveawayConfig"`
}

// DefaultSettings returns the built-in settings used before any admin
// configuration and as the merge base when loading a snapshot.
func DefaultSettings() Settings {
	return Settings{
		NormalCooldown:    defaultTicketCooldown,
		VIPCooldown:       defaultTicketCooldownVIP,
		NormalGenCooldown: defaultGenCooldown,
		VIPGenCooldown:    defaultGenCooldownVIP,
		Giveaway: GiveawayConfig{
			Enabled:          false,
			MinMessages:      100,
			NumberOfWinners:  5,
			NumberOfAccounts: 1,
			AccountType:      AccountTypeFree,
			ServiceIDs:       []string{},
		},
	}
}

// TicketCooldownFor returns the ticket cooldown duration for the given tier.
func (s *Settings) TicketCooldownFor(isVIP bool) time.Duration {
	if isVIP {
		return time.Duration(s.VIPCooldown) * time.Millisecond
	}
	return time.Duration(s.NormalCooldown) * time.Millisecond
}

// GenCooldownFor returns the generation cooldown duration for the given tier.
func (s *Settings) GenCooldownFor(isVIP bool) time.Duration {
	if isVIP {
		return time.Duration(s.VIPGenCooldown) * time.Millisecond
	}
	return time.Duration(s.NormalGenCooldown) * time.Millisecond
}

// clone returns a deep copy so callers never alias the live settings.
func (s *Settings) clone() Settings {
	c := *s
	c.Giveaway.ServiceIDs = append([]string(nil), s.Giveaway.ServiceIDs...)
	return c
}

// Settings returns a copy of the current runtime settings.
func (s *State) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.settings.clone()
}

// GiveawaySettings returns a copy of the current giveaway configuration.
func (s *State) GiveawaySettings() GiveawayConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g := s.settings.Giveaway
	g.ServiceIDs = append([]string(nil), g.ServiceIDs...)
	return g
}

// ResetSettings restores the built-in defaults and persists them.
func (s *State) ResetSettings() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = DefaultSettings()
	s.saveSettings()
}

// SetStatusRule configures the presence status text and the role granted to
// members advertising it.
func (s *State) SetStatusRule(statusText, requiredRoleID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.StatusText = statusText
	s.settings.RequiredRoleID = requiredRoleID
	s.saveSettings()
}

// SetCooldowns updates the four cooldown durations. Changes apply to future
// cooldown checks only, never retroactively to stamped records.
func (s *State) SetCooldowns(ticketNormal, ticketVIP, genNormal, genVIP time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.NormalCooldown = ticketNormal.Milliseconds()
	s.settings.VIPCooldown = ticketVIP.Milliseconds()
	s.settings.NormalGenCooldown = genNormal.Milliseconds()
	s.settings.VIPGenCooldown = genVIP.Milliseconds()
	s.saveSettings()
}

// SetRoles updates the VIP, supplier and verification role ids. Empty values
// leave the corresponding role unchanged.
func (s *State) SetRoles(vipRoleID, supplierRoleID, verificationRoleID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if vipRoleID != "" {
		s.settings.VIPRoleID = vipRoleID
	}
	if supplierRoleID != "" {
		s.settings.SupplierRoleID = supplierRoleID
	}
	if verificationRoleID != "" {
		s.settings.VerificationRoleID = verificationRoleID
	}
	s.saveSettings()
}

// SetRestock configures the restock announcement channel and ping role.
func (s *State) SetRestock(channelID, pingRoleID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.RestockChannelID = channelID
	s.settings.RestockPingRoleID = pingRoleID
	s.saveSettings()
}

// SetLogChannel configures the channel receiving redemption log entries.
func (s *State) SetLogChannel(channelID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.LogChannelID = channelID
	s.saveSettings()
}

// SetGiveawayEnabled toggles the automatic giveaway and returns the new value.
func (s *State) SetGiveawayEnabled(enabled bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.Giveaway.Enabled = enabled
	s.saveSettings()
	return s.settings.Giveaway.Enabled
}

// SetGiveawayParameters updates the draw parameters.
func (s *State) SetGiveawayParameters(minMessages, winners, accounts int, accountType AccountType) error {
	if minMessages < 0 || winners <= 0 || accounts <= 0 {
		return ErrInvalidInput
	}
	if !accountType.IsValid() {
		return ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.Giveaway.MinMessages = minMessages
	s.settings.Giveaway.NumberOfWinners = winners
	s.settings.Giveaway.NumberOfAccounts = accounts
	s.settings.Giveaway.AccountType = accountType
	s.saveSettings()
	return nil
}

// SetGiveawayServices replaces the set of services eligible for giveaways.
func (s *State) SetGiveawayServices(serviceIDs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.Giveaway.ServiceIDs = append([]string(nil), serviceIDs...)
	s.saveSettings()
}

// SetGiveawayGuild records the guild the giveaway draws winners from. The
// first tracked guild message fixes this when unset.
func (s *State) SetGiveawayGuild(guildID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.Giveaway.GuildID = guildID
	s.saveSettings()
}

// mergeSettings overlays a loaded snapshot onto the defaults. Zero values in
// the snapshot fall back to defaults for the cooldown durations so a
// hand-edited file cannot disable cooldown enforcement by accident.
func mergeSettings(defaults, loaded Settings) Settings {
	merged := loaded
	if merged.NormalCooldown == 0 {
		merged.NormalCooldown = defaults.NormalCooldown
	}
	if merged.VIPCooldown == 0 {
		merged.VIPCooldown = defaults.VIPCooldown
	}
	if merged.NormalGenCooldown == 0 {
		merged.NormalGenCooldown = defaults.NormalGenCooldown
	}
	if merged.VIPGenCooldown == 0 {
		merged.VIPGenCooldown = defaults.VIPGenCooldown
	}
	if merged.Giveaway.MinMessages == 0 {
		merged.Giveaway.MinMessages = defaults.Giveaway.MinMessages
	}
	if merged.Giveaway.NumberOfWinners == 0 {
		merged.Giveaway.NumberOfWinners = defaults.Giveaway.NumberOfWinners
	}
	if merged.Giveaway.NumberOfAccounts == 0 {
		merged.Giveaway.NumberOfAccounts = defaults.Giveaway.NumberOfAccounts
	}
	if !merged.Giveaway.AccountType.IsValid() {
		merged.Giveaway.AccountType = defaults.Giveaway.AccountType
	}
	if merged.Giveaway.ServiceIDs == nil {
		merged.Giveaway.ServiceIDs = []string{}
	}
	return merged
}
