package state

import (
	"time"
)

// Ticket tracks one open support channel. The auto-close timer is owned by
// the ticket and cancelled as part of its removal.
type Ticket struct {
	ChannelID string
	UserID    string
	CreatedAt time.Time

	autoClose *time.Timer
}

// AddTicket registers an open ticket for a user. Callers are expected to have
// gated creation on TicketByUser; the registry itself does not enforce
// uniqueness. The timer may be nil when no auto-close is scheduled.
func (s *State) AddTicket(channelID, userID string, autoClose *time.Timer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tickets[channelID] = &Ticket{
		ChannelID: channelID,
		UserID:    userID,
		CreatedAt: time.Now(),
		autoClose: autoClose,
	}
}

// RemoveTicket cancels the pending auto-close and deletes the ticket record.
// It must be called on every path that destroys the underlying channel so no
// timer fires against a channel that no longer exists.
func (s *State) RemoveTicket(channelID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ticket, exists := s.tickets[channelID]; exists {
		if ticket.autoClose != nil {
			ticket.autoClose.Stop()
		}
		delete(s.tickets, channelID)
	}
}

// Ticket returns the ticket registered for a channel.
func (s *State) Ticket(channelID string) (*Ticket, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ticket, exists := s.tickets[channelID]
	if !exists {
		return nil, false
	}
	c := *ticket
	return &c, true
}

// TicketByUser returns the user's open ticket, if any. This is the uniqueness
// gate checked before ticket creation.
func (s *State) TicketByUser(userID string) (*Ticket, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, ticket := range s.tickets {
		if ticket.UserID == userID {
			c := *ticket
			return &c, true
		}
	}
	return nil, false
}
