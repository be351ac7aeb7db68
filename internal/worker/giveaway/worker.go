// Package giveaway runs the scheduled weekly draw.
package giveaway

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/disgoorg/disgo/bot"
	"go.uber.org/zap"

	"github.com/genvault/genvault/internal/bot/notify"
	"github.com/genvault/genvault/internal/state"
	"github.com/genvault/genvault/pkg/utils"
)

// drawInterval is how much time must pass since the last draw before the
// worker runs another one.
const drawInterval = 7 * 24 * time.Hour

// Worker periodically checks whether a weekly giveaway is due and executes
// it, delivering the prizes over DM.
type Worker struct {
	client   bot.Client
	state    *state.State
	notifier *notify.Notifier
	interval time.Duration
	logger   *zap.Logger
}

// New creates a giveaway worker.
func New(client bot.Client, appState *state.State, interval time.Duration, logger *zap.Logger) *Worker {
	return &Worker{
		client:   client,
		state:    appState,
		notifier: notify.New(appState, logger),
		interval: interval,
		logger:   logger,
	}
}

// Start begins the check loop and blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Giveaway worker started", zap.Duration("interval", w.interval))

	for {
		if !utils.IntervalSleep(ctx, w.interval, w.logger, "giveaway worker") {
			return
		}
		w.check()
	}
}

func (w *Worker) check() {
	config := w.state.GiveawaySettings()
	if !config.Enabled || config.GuildID == "" {
		return
	}
	if !w.drawDue(config.LastGiveawayDate) {
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	result, err := w.state.ExecuteGiveaway(rng)
	if err != nil {
		if errors.Is(err, state.ErrNoEligibleUsers) || errors.Is(err, state.ErrNothingDistributed) {
			w.logger.Info("Scheduled giveaway skipped", zap.Error(err))
		} else {
			w.logger.Warn("Scheduled giveaway failed", zap.Error(err))
		}
		return
	}

	notified := w.notifier.NotifyWinners(w.client, result.Winners)
	w.logger.Info("Scheduled giveaway executed",
		zap.Int("winners", len(result.Winners)),
		zap.Int("accountsSent", result.AccountsSent),
		zap.Int("notified", notified))
}

// drawDue reports whether enough time has passed since the last draw. A
// missing or unparsable date counts as due.
func (w *Worker) drawDue(lastDate string) bool {
	if lastDate == "" {
		return true
	}
	last, err := time.Parse(time.RFC3339, lastDate)
	if err != nil {
		return true
	}
	return time.Since(last) >= drawInterval
}
