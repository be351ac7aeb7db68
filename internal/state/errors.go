package state

import "errors"

var (
	// ErrServiceNotFound indicates the referenced service does not exist.
	ErrServiceNotFound = errors.New("service not found")
	// ErrAccountNotFound indicates the referenced account does not exist.
	ErrAccountNotFound = errors.New("account not found")
	// ErrNoStock indicates a service has no unused accounts left.
	ErrNoStock = errors.New("no accounts available")

	// ErrCodeNotFound indicates the redemption code does not exist.
	ErrCodeNotFound = errors.New("code not found")
	// ErrCodeUsed indicates the redemption code was already consumed.
	ErrCodeUsed = errors.New("code already used")
	// ErrCodeOwnerMismatch indicates the code belongs to another user.
	ErrCodeOwnerMismatch = errors.New("code belongs to another user")

	// ErrTicketNotFound indicates the channel is not a registered ticket.
	ErrTicketNotFound = errors.New("ticket not found")
	// ErrTicketOwnerMismatch indicates the ticket belongs to another user.
	ErrTicketOwnerMismatch = errors.New("ticket belongs to another user")
	// ErrTicketExists indicates the user already has an open ticket.
	ErrTicketExists = errors.New("user already has an open ticket")

	// ErrInvalidInput indicates a malformed or out-of-range parameter.
	ErrInvalidInput = errors.New("invalid input")

	// ErrGiveawayDisabled indicates the giveaway system is turned off.
	ErrGiveawayDisabled = errors.New("giveaways are disabled")
	// ErrNoServicesSelected indicates no services are configured for giveaways.
	ErrNoServicesSelected = errors.New("no services selected for giveaway")
	// ErrNoEligibleUsers indicates no user meets the message threshold.
	ErrNoEligibleUsers = errors.New("no users meet the message threshold")
	// ErrNothingDistributed indicates a draw completed without a single grant.
	ErrNothingDistributed = errors.New("no accounts could be distributed")
)
