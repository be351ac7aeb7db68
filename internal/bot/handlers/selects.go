package handlers

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"go.uber.org/zap"

	"github.com/genvault/genvault/internal/bot/builders"
	"github.com/genvault/genvault/internal/bot/constants"
)

func (h *Handler) handleSelect(event *events.ComponentInteractionCreate, data discord.StringSelectMenuInteractionData) {
	if len(data.Values) == 0 {
		return
	}

	switch data.CustomID() {
	case constants.ServiceDeleteSelectCustomID:
		h.handleServiceDelete(event, data.Values[0])
	case constants.ServiceAddStockSelectCustomID:
		h.showStockModal(event, constants.AddStockModalPrefix, data.Values[0])
	case constants.ServiceRemoveStockSelectCustomID:
		h.showStockModal(event, constants.RemoveStockModalPrefix, data.Values[0])
	case constants.GiveawayActionSelectCustomID:
		h.handleGiveawayAction(event, data.Values[0])
	case constants.GiveawayServicesSelectCustomID:
		h.handleGiveawayServices(event, data.Values)
	}
}

func (h *Handler) handleServiceDelete(event *events.ComponentInteractionCreate, serviceID string) {
	service, ok := h.state.Service(serviceID)
	if !ok {
		h.replyEphemeral(event, "This service no longer exists.")
		return
	}

	if err := h.state.RemoveService(serviceID); err != nil {
		h.replyEphemeral(event, "Failed to delete the service.")
		return
	}

	h.logger.Info("Deleted service",
		zap.String("serviceID", serviceID),
		zap.String("name", service.Name))

	h.replyEphemeral(event, fmt.Sprintf("Service **%s** deleted.", service.Name))
	h.RefreshGenPanels(event.Client())
}

func (h *Handler) showStockModal(event *events.ComponentInteractionCreate, prefix, serviceID string) {
	service, ok := h.state.Service(serviceID)
	if !ok {
		h.replyEphemeral(event, "This service no longer exists.")
		return
	}
	h.showModal(event, stockModal(prefix, service))
}

func (h *Handler) handleGiveawayAction(event *events.ComponentInteractionCreate, action string) {
	switch action {
	case constants.GiveawayActionToggle:
		enabled := h.state.SetGiveawayEnabled(!h.state.GiveawaySettings().Enabled)
		if enabled {
			h.replyEphemeral(event, "Giveaways are now **enabled**.")
		} else {
			h.replyEphemeral(event, "Giveaways are now **disabled**.")
		}

	case constants.GiveawayActionSettings:
		h.showGiveawaySettingsModal(event)

	case constants.GiveawayActionServices:
		stock := h.genStock()
		if len(stock) == 0 {
			h.replyEphemeral(event, "No services are configured.")
			return
		}
		selected := h.state.GiveawaySettings().ServiceIDs
		message := builders.NewGiveawayServicesBuilder(stock, selected).Build()
		if err := event.CreateMessage(message); err != nil {
			h.logger.Error("Failed to send giveaway services select", zap.Error(err))
		}

	case constants.GiveawayActionStats:
		config := h.state.GiveawaySettings()
		topUsers := h.state.TopUsers(config.MinMessages, 20)
		if len(topUsers) == 0 {
			h.replyEphemeral(event, fmt.Sprintf(
				"No users have reached %d messages yet.", config.MinMessages))
			return
		}
		message := builders.NewGiveawayStatsBuilder(topUsers, config.MinMessages).Build()
		if err := event.CreateMessage(message); err != nil {
			h.logger.Error("Failed to send giveaway stats", zap.Error(err))
		}

	case constants.GiveawayActionRun:
		h.runManualGiveaway(event)

	case constants.GiveawayActionHistory:
		history := h.state.GiveawayHistory()
		if len(history) == 0 {
			h.replyEphemeral(event, "No giveaways have been run yet.")
			return
		}
		message := builders.NewGiveawayHistoryBuilder(history).Build()
		if err := event.CreateMessage(message); err != nil {
			h.logger.Error("Failed to send giveaway history", zap.Error(err))
		}
	}
}

// runManualGiveaway executes a draw immediately and DMs the winners.
func (h *Handler) runManualGiveaway(event *events.ComponentInteractionCreate) {
	if err := event.DeferCreateMessage(true); err != nil {
		h.logger.Error("Failed to defer manual giveaway", zap.Error(err))
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	result, err := h.state.ExecuteGiveaway(rng)
	if err != nil {
		h.editDeferred(event, fmt.Sprintf("Giveaway failed: %s.", err))
		return
	}

	notified := h.notifier.NotifyWinners(event.Client(), result.Winners)
	h.logger.Info("Manual giveaway executed",
		zap.Int("winners", len(result.Winners)),
		zap.Int("accountsSent", result.AccountsSent),
		zap.Int("notified", notified))

	h.editDeferred(event, fmt.Sprintf(
		"Giveaway complete: **%d** winner(s), **%d** account(s) distributed, %d DM(s) delivered.",
		len(result.Winners), result.AccountsSent, notified))
	h.RefreshGenPanels(event.Client())
}

func (h *Handler) handleGiveawayServices(event *events.ComponentInteractionCreate, serviceIDs []string) {
	h.state.SetGiveawayServices(serviceIDs)
	h.replyEphemeral(event, fmt.Sprintf(
		"Giveaways will now distribute **%d** service(s).", len(serviceIDs)))
}

func (h *Handler) showGiveawaySettingsModal(event *events.ComponentInteractionCreate) {
	config := h.state.GiveawaySettings()
	h.showModal(event, discord.NewModalCreateBuilder().
		SetCustomID(constants.GiveawaySettingsModalCustomID).
		SetTitle("Giveaway settings").
		AddActionRow(discord.NewTextInput(constants.MinMessagesInputCustomID,
			discord.TextInputStyleShort, "Minimum messages to qualify").
			WithRequired(true).
			WithValue(fmt.Sprintf("%d", config.MinMessages))).
		AddActionRow(discord.NewTextInput(constants.NumberOfWinnersInputCustomID,
			discord.TextInputStyleShort, "Number of winners").
			WithRequired(true).
			WithValue(fmt.Sprintf("%d", config.NumberOfWinners))).
		AddActionRow(discord.NewTextInput(constants.NumberOfAccountsInputCustomID,
			discord.TextInputStyleShort, "Accounts per winner").
			WithRequired(true).
			WithValue(fmt.Sprintf("%d", config.NumberOfAccounts))).
		AddActionRow(discord.NewTextInput(constants.AccountTypeInputCustomID,
			discord.TextInputStyleShort, "Account type (vip/free/both)").
			WithRequired(true).
			WithValue(string(config.AccountType))).
		Build())
}
