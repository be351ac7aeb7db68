// Package notify posts best-effort announcements to configured channels and
// delivers giveaway prizes over DM. Failures are logged and never bubble up
// into the interaction that triggered them.
package notify

import (
	"context"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/genvault/genvault/internal/bot/builders"
	"github.com/genvault/genvault/internal/state"
	"github.com/genvault/genvault/pkg/utils"
)

// Notifier sends out-of-band messages on behalf of the bot.
type Notifier struct {
	state  *state.State
	logger *zap.Logger
}

// New creates a Notifier.
func New(s *state.State, logger *zap.Logger) *Notifier {
	return &Notifier{
		state:  s,
		logger: logger.Named("notify"),
	}
}

// Restock announces new stock in the configured restock channel.
func (n *Notifier) Restock(client bot.Client, serviceName string, count int, isVIPOnly bool) {
	settings := n.state.Settings()
	if settings.RestockChannelID == "" {
		return
	}

	channelID, err := snowflake.Parse(settings.RestockChannelID)
	if err != nil {
		n.logger.Warn("Invalid restock channel id",
			zap.String("channelID", settings.RestockChannelID))
		return
	}

	message := builders.NewRestockBuilder(serviceName, count, isVIPOnly, settings.RestockPingRoleID).Build()
	if _, err := client.Rest().CreateMessage(channelID, message); err != nil {
		n.logger.Warn("Failed to send restock announcement",
			zap.String("service", serviceName),
			zap.Error(err))
	}
}

// RedemptionLog records a successful account redemption in the log channel.
func (n *Notifier) RedemptionLog(client bot.Client, userID, serviceName string) {
	settings := n.state.Settings()
	if settings.LogChannelID == "" {
		return
	}

	channelID, err := snowflake.Parse(settings.LogChannelID)
	if err != nil {
		n.logger.Warn("Invalid log channel id",
			zap.String("channelID", settings.LogChannelID))
		return
	}

	message := builders.NewRedemptionLogBuilder(userID, serviceName).Build()
	if _, err := client.Rest().CreateMessage(channelID, message); err != nil {
		n.logger.Warn("Failed to send redemption log",
			zap.String("userID", userID),
			zap.Error(err))
	}
}

// NotifyWinners delivers giveaway prizes to each winner over DM.
// Returns the number of winners successfully notified.
func (n *Notifier) NotifyWinners(client bot.Client, winners []state.GiveawayWinner) int {
	p := pool.New().WithMaxGoroutines(4)
	results := make([]bool, len(winners))

	for i, winner := range winners {
		p.Go(func() {
			results[i] = n.notifyWinner(client, winner)
		})
	}
	p.Wait()

	notified := 0
	for _, ok := range results {
		if ok {
			notified++
		}
	}
	return notified
}

func (n *Notifier) notifyWinner(client bot.Client, winner state.GiveawayWinner) bool {
	userID, err := snowflake.Parse(winner.UserID)
	if err != nil {
		n.logger.Warn("Invalid winner user id", zap.String("userID", winner.UserID))
		return false
	}

	// Prize DMs must not get lost to a transient REST hiccup
	retryOpts := utils.GetDeliveryRetryOptions()

	channel, err := utils.WithRetry(context.Background(), func() (*discord.DMChannel, error) {
		return client.Rest().CreateDMChannel(userID)
	}, retryOpts)
	if err != nil {
		n.logger.Warn("Failed to open DM channel",
			zap.String("userID", winner.UserID),
			zap.Error(err))
		return false
	}

	message := builders.NewWinnerDMBuilder(winner).Build()
	_, err = utils.WithRetry(context.Background(), func() (*discord.Message, error) {
		return client.Rest().CreateMessage(channel.ID(), message)
	}, retryOpts)
	if err != nil {
		n.logger.Warn("Failed to deliver prize DM",
			zap.String("userID", winner.UserID),
			zap.Error(err))
		return false
	}

	n.logger.Info("Delivered giveaway prize",
		zap.String("userID", winner.UserID),
		zap.Int("accounts", len(winner.AccountsReceived)))
	return true
}
