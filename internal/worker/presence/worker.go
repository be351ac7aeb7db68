// Package presence enforces the status role: members advertising the
// configured status text in their Discord presence hold the role, everyone
// else loses it.
package presence

import (
	"context"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/snowflake/v2"
	"go.uber.org/zap"

	"github.com/genvault/genvault/internal/bot/handlers"
	"github.com/genvault/genvault/internal/state"
	"github.com/genvault/genvault/pkg/utils"
)

const memberPageSize = 1000

// Worker periodically sweeps the configured guild and reconciles the status
// role for every member.
type Worker struct {
	client   bot.Client
	state    *state.State
	guildID  string
	interval time.Duration
	logger   *zap.Logger
}

// New creates a presence worker.
func New(client bot.Client, appState *state.State, guildID string, interval time.Duration, logger *zap.Logger) *Worker {
	return &Worker{
		client:   client,
		state:    appState,
		guildID:  guildID,
		interval: interval,
		logger:   logger,
	}
}

// Start begins the sweep loop and blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Presence worker started", zap.Duration("interval", w.interval))

	for {
		if !utils.IntervalSleep(ctx, w.interval, w.logger, "presence worker") {
			return
		}
		w.sweep(ctx)
	}
}

func (w *Worker) sweep(ctx context.Context) {
	settings := w.state.Settings()
	if settings.StatusText == "" || settings.RequiredRoleID == "" || w.guildID == "" {
		return
	}

	guildID, err := snowflake.Parse(w.guildID)
	if err != nil {
		w.logger.Warn("Invalid guild id", zap.String("guildID", w.guildID))
		return
	}
	roleID, err := snowflake.Parse(settings.RequiredRoleID)
	if err != nil {
		w.logger.Warn("Invalid status role id", zap.String("roleID", settings.RequiredRoleID))
		return
	}

	if !w.roleExists(guildID, roleID) {
		w.logger.Warn("Status role no longer exists, skipping sweep",
			zap.String("roleID", settings.RequiredRoleID))
		return
	}

	granted, revoked := 0, 0
	var after snowflake.ID

	for {
		if utils.ContextGuardWithLog(ctx, w.logger, "Context cancelled, stopping presence sweep") {
			return
		}

		members, err := w.client.Rest().GetMembers(guildID, memberPageSize, after)
		if err != nil {
			w.logger.Error("Failed to fetch guild members", zap.Error(err))
			return
		}
		if len(members) == 0 {
			break
		}

		for _, member := range members {
			if member.User.Bot {
				continue
			}

			added, removed := w.reconcileMember(guildID, roleID, member.User.ID, member.RoleIDs, settings.StatusText)
			if added {
				granted++
			}
			if removed {
				revoked++
			}
		}

		after = members[len(members)-1].User.ID
		if len(members) < memberPageSize {
			break
		}
	}

	if granted > 0 || revoked > 0 {
		w.logger.Info("Presence sweep finished",
			zap.Int("granted", granted),
			zap.Int("revoked", revoked))
	}
}

// reconcileMember grants or revokes the status role for one member based on
// the cached presence. Members without a cached presence are treated as not
// matching.
func (w *Worker) reconcileMember(guildID, roleID, userID snowflake.ID, roleIDs []snowflake.ID, statusText string) (added, removed bool) {
	hasRole := false
	for _, r := range roleIDs {
		if r == roleID {
			hasRole = true
			break
		}
	}

	hasStatus := false
	if presence, ok := w.client.Caches().Presence(guildID, userID); ok {
		hasStatus = handlers.StatusMatches(presence.Activities, statusText)
	}

	switch {
	case hasStatus && !hasRole:
		if err := w.client.Rest().AddMemberRole(guildID, userID, roleID); err != nil {
			w.logger.Warn("Failed to grant status role",
				zap.String("userID", userID.String()),
				zap.Error(err))
			return false, false
		}
		return true, false
	case !hasStatus && hasRole:
		if err := w.client.Rest().RemoveMemberRole(guildID, userID, roleID); err != nil {
			w.logger.Warn("Failed to revoke status role",
				zap.String("userID", userID.String()),
				zap.Error(err))
			return false, false
		}
		return false, true
	}
	return false, false
}

func (w *Worker) roleExists(guildID, roleID snowflake.ID) bool {
	roles, err := w.client.Rest().GetRoles(guildID)
	if err != nil {
		w.logger.Error("Failed to fetch guild roles", zap.Error(err))
		return false
	}
	for _, role := range roles {
		if role.ID == roleID {
			return true
		}
	}
	return false
}
