// Package handlers routes Discord interactions and gateway events to the
// shared application state.
package handlers

import (
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
	"go.uber.org/zap"

	"github.com/genvault/genvault/internal/bot/notify"
	"github.com/genvault/genvault/internal/state"
)

// Handler dispatches interactions against the shared state. One instance
// serves all events; handler methods run on the gateway dispatch goroutines.
type Handler struct {
	state    *state.State
	notifier *notify.Notifier
	logger   *zap.Logger
	guildID  string
}

// New creates a Handler. guildID is the guild presence checks operate on and
// may be empty when presence enforcement is not configured.
func New(s *state.State, notifier *notify.Notifier, logger *zap.Logger, guildID string) *Handler {
	return &Handler{
		state:    s,
		notifier: notifier,
		logger:   logger.Named("handlers"),
		guildID:  guildID,
	}
}

// replier is satisfied by every interaction create event.
type replier interface {
	CreateMessage(messageCreate discord.MessageCreate, opts ...rest.RequestOpt) error
}

// deferredEvent is satisfied by interaction events after DeferCreateMessage.
type deferredEvent interface {
	Client() bot.Client
	ApplicationID() snowflake.ID
	Token() string
}

// replyEphemeral answers an interaction with a message only the invoker sees.
func (h *Handler) replyEphemeral(event replier, content string) {
	err := event.CreateMessage(discord.NewMessageCreateBuilder().
		SetContent(content).
		SetEphemeral(true).
		Build())
	if err != nil {
		h.logger.Error("Failed to send interaction reply", zap.Error(err))
	}
}

// editDeferred replaces a deferred interaction response with content.
func (h *Handler) editDeferred(event deferredEvent, content string) {
	_, err := event.Client().Rest().UpdateInteractionResponse(
		event.ApplicationID(),
		event.Token(),
		discord.NewMessageUpdateBuilder().SetContent(content).Build())
	if err != nil {
		h.logger.Error("Failed to update deferred response", zap.Error(err))
	}
}

// hasRole reports whether the member carries the role. An unparsable id never
// matches.
func hasRole(member *discord.ResolvedMember, roleID string) bool {
	if member == nil || roleID == "" {
		return false
	}
	id, err := snowflake.Parse(roleID)
	if err != nil {
		return false
	}
	for _, r := range member.RoleIDs {
		if r == id {
			return true
		}
	}
	return false
}

// isAdmin reports whether the member has the administrator permission.
func isAdmin(member *discord.ResolvedMember) bool {
	return member != nil && member.Permissions.Has(discord.PermissionAdministrator)
}
