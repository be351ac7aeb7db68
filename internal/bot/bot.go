// Package bot owns the Discord client, its gateway intents and the event
// dispatch into the handler layer.
package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/cache"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/gateway"
	"go.uber.org/zap"

	"github.com/genvault/genvault/internal/bot/handlers"
	"github.com/genvault/genvault/internal/bot/notify"
	"github.com/genvault/genvault/internal/state"
)

// Bot wires the Discord client to the handler layer. Interactions are
// processed concurrently; the shared state carries its own locking.
type Bot struct {
	client  bot.Client
	handler *handlers.Handler
	logger  *zap.Logger
	started time.Time
}

// New configures the Discord client with the gateway intents and event
// listeners the bot needs.
func New(token, guildID string, appState *state.State, logger *zap.Logger) (*Bot, error) {
	notifier := notify.New(appState, logger)
	handler := handlers.New(appState, notifier, logger, guildID)

	b := &Bot{
		handler: handler,
		logger:  logger,
	}

	client, err := disgo.New(token,
		bot.WithGatewayConfigOpts(
			gateway.WithIntents(
				gateway.IntentGuilds,
				gateway.IntentGuildMessages,
				gateway.IntentGuildMembers,
				gateway.IntentGuildPresences,
				gateway.IntentMessageContent,
			),
		),
		bot.WithCacheConfigOpts(
			cache.WithCaches(cache.FlagGuilds | cache.FlagPresences),
		),
		bot.WithEventListeners(&events.ListenerAdapter{
			OnApplicationCommandInteraction: b.handleApplicationCommand,
			OnComponentInteraction:          b.handleComponent,
			OnModalSubmit:                   b.handleModalSubmit,
			OnGuildMessageCreate:            handler.OnGuildMessageCreate,
			OnPresenceUpdate:                handler.OnPresenceUpdate,
			OnGuildChannelDelete:            handler.OnGuildChannelDelete,
			OnGuildJoin:                     handler.OnGuildJoin,
			OnReady:                         handler.OnReady,
		}),
	)
	if err != nil {
		return nil, err
	}

	b.client = client
	return b, nil
}

// Start registers the global commands and opens the gateway connection.
func (b *Bot) Start() error {
	b.logger.Info("Registering commands")

	_, err := b.client.Rest().SetGlobalCommands(b.client.ApplicationID(), handlers.Commands())
	if err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	b.logger.Info("Starting bot")
	b.started = time.Now()
	return b.client.OpenGateway(context.Background())
}

// Close gracefully shuts down the gateway connection.
func (b *Bot) Close() {
	b.logger.Info("Closing bot")
	b.client.Close(context.Background())
}

// Client exposes the Discord client to the background workers.
func (b *Bot) Client() bot.Client {
	return b.client
}

// Tag returns the connected bot account's username, or empty before the
// ready event arrives.
func (b *Bot) Tag() string {
	if user, ok := b.client.Caches().SelfUser(); ok {
		return user.Username
	}
	return ""
}

// Connected reports whether the gateway connection is open.
func (b *Bot) Connected() bool {
	return b.client.Gateway().Status() == gateway.StatusReady
}

// Uptime is how long the gateway has been running.
func (b *Bot) Uptime() time.Duration {
	if b.started.IsZero() {
		return 0
	}
	return time.Since(b.started)
}

// handleApplicationCommand processes slash commands in a goroutine so slow
// REST calls never block the gateway dispatch loop.
func (b *Bot) handleApplicationCommand(event *events.ApplicationCommandInteractionCreate) {
	go func() {
		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				b.logger.Error("Panic in application command handler", zap.Any("panic", r))
			}
			b.logger.Debug("Application command handled",
				zap.String("command", event.SlashCommandInteractionData().CommandName()),
				zap.Duration("duration", time.Since(start)))
		}()

		b.handler.OnApplicationCommand(event)
	}()
}

func (b *Bot) handleComponent(event *events.ComponentInteractionCreate) {
	go func() {
		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				b.logger.Error("Panic in component handler", zap.Any("panic", r))
			}
			b.logger.Debug("Component interaction handled",
				zap.String("custom_id", event.Data.CustomID()),
				zap.Duration("duration", time.Since(start)))
		}()

		b.handler.OnComponent(event)
	}()
}

func (b *Bot) handleModalSubmit(event *events.ModalSubmitInteractionCreate) {
	go func() {
		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				b.logger.Error("Panic in modal submit handler", zap.Any("panic", r))
			}
			b.logger.Debug("Modal submission handled",
				zap.String("custom_id", event.Data.CustomID),
				zap.Duration("duration", time.Since(start)))
		}()

		b.handler.OnModalSubmit(event)
	}()
}
