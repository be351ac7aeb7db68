package handlers

import (
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/snowflake/v2"
	"go.uber.org/zap"
)

// OnReady logs the connected bot identity.
func (h *Handler) OnReady(event *events.Ready) {
	h.logger.Info("Gateway connected",
		zap.String("username", event.User.Username),
		zap.String("userID", event.User.ID.String()))
}

// OnGuildMessageCreate counts member messages for giveaway eligibility. The
// first observed guild becomes the giveaway guild when none is configured.
func (h *Handler) OnGuildMessageCreate(event *events.GuildMessageCreate) {
	if event.Message.Author.Bot || event.Message.Author.System {
		return
	}

	if h.state.GiveawaySettings().GuildID == "" {
		h.state.SetGiveawayGuild(event.GuildID.String())
	}

	h.state.IncrementMessageCount(event.Message.Author.ID.String())
}

// OnPresenceUpdate reconciles the status role for the member whose presence
// changed. Only the configured guild is watched.
func (h *Handler) OnPresenceUpdate(event *events.PresenceUpdate) {
	settings := h.state.Settings()
	if settings.StatusText == "" || settings.RequiredRoleID == "" {
		return
	}
	if h.guildID != "" && event.GuildID.String() != h.guildID {
		return
	}

	roleID, err := snowflake.Parse(settings.RequiredRoleID)
	if err != nil {
		return
	}

	client := event.Client()
	userID := event.PresenceUser.ID
	member, err := client.Rest().GetMember(event.GuildID, userID)
	if err != nil {
		h.logger.Debug("Failed to fetch member for presence sync",
			zap.String("userID", userID.String()),
			zap.Error(err))
		return
	}
	if member.User.Bot {
		return
	}

	hasStatus := StatusMatches(event.Activities, settings.StatusText)
	hasRole := false
	for _, r := range member.RoleIDs {
		if r == roleID {
			hasRole = true
			break
		}
	}

	switch {
	case hasStatus && !hasRole:
		if err := client.Rest().AddMemberRole(event.GuildID, userID, roleID); err != nil {
			h.logger.Warn("Failed to grant status role",
				zap.String("userID", userID.String()),
				zap.Error(err))
		}
	case !hasStatus && hasRole:
		if err := client.Rest().RemoveMemberRole(event.GuildID, userID, roleID); err != nil {
			h.logger.Warn("Failed to revoke status role",
				zap.String("userID", userID.String()),
				zap.Error(err))
		}
	}
}

// OnGuildChannelDelete drops the ticket bound to a deleted channel so a
// manual channel removal cannot leave a stale ticket behind.
func (h *Handler) OnGuildChannelDelete(event *events.GuildChannelDelete) {
	h.state.RemoveTicket(event.ChannelID.String())
}

// OnGuildJoin resets the configuration when the bot lands in a new guild.
func (h *Handler) OnGuildJoin(event *events.GuildJoin) {
	h.logger.Info("Joined guild",
		zap.String("guildID", event.Guild.ID.String()),
		zap.String("name", event.Guild.Name))
	h.state.ResetSettings()
}

// StatusMatches reports whether any activity carries the required status
// text, either in a custom status or an activity name.
func StatusMatches(activities []discord.Activity, statusText string) bool {
	for _, activity := range activities {
		if activity.State != nil && strings.Contains(*activity.State, statusText) {
			return true
		}
		if strings.Contains(activity.Name, statusText) {
			return true
		}
	}
	return false
}
