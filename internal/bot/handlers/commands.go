package handlers

import (
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"go.uber.org/zap"

	"github.com/genvault/genvault/internal/bot/builders"
	"github.com/genvault/genvault/internal/bot/constants"
)

// OnApplicationCommand routes slash commands to their panel handlers.
func (h *Handler) OnApplicationCommand(event *events.ApplicationCommandInteractionCreate) {
	data := event.SlashCommandInteractionData()

	switch data.CommandName() {
	case constants.AdminPanelCommandName:
		h.handleAdminPanelCommand(event)
	case constants.GenPanelCommandName:
		h.handleGenPanelCommand(event)
	case constants.TicketPanelCommandName:
		h.handleTicketPanelCommand(event)
	}
}

// handleAdminPanelCommand posts the management panel in the current channel.
// Administrators get the full panel, suppliers a stock-only variant.
func (h *Handler) handleAdminPanelCommand(event *events.ApplicationCommandInteractionCreate) {
	member := event.Member()
	settings := h.state.Settings()

	admin := isAdmin(member)
	supplier := settings.SupplierRoleID != "" && hasRole(member, settings.SupplierRoleID)
	if !admin && !supplier {
		h.replyEphemeral(event, "You do not have permission to use this command.")
		return
	}

	if err := event.DeferCreateMessage(true); err != nil {
		h.logger.Error("Failed to defer admin panel command", zap.Error(err))
		return
	}

	panel := builders.NewAdminPanelBuilder(!admin).Build()
	if _, err := event.Client().Rest().CreateMessage(event.Channel().ID(), panel); err != nil {
		h.logger.Error("Failed to post admin panel", zap.Error(err))
		h.editDeferred(event, "Failed to post the admin panel.")
		return
	}

	h.editDeferred(event, "Admin panel posted in this channel.")
}

// handleGenPanelCommand posts the generator panel and registers its message
// for stock refreshes.
func (h *Handler) handleGenPanelCommand(event *events.ApplicationCommandInteractionCreate) {
	if !isAdmin(event.Member()) {
		h.replyEphemeral(event, "You do not have permission to use this command.")
		return
	}

	if err := event.DeferCreateMessage(true); err != nil {
		h.logger.Error("Failed to defer gen panel command", zap.Error(err))
		return
	}

	panel := builders.NewGenPanelBuilder(h.genStock()).Build()
	message, err := event.Client().Rest().CreateMessage(event.Channel().ID(), panel)
	if err != nil {
		h.logger.Error("Failed to post generator panel", zap.Error(err))
		h.editDeferred(event, "Failed to post the generator panel.")
		return
	}

	h.state.AddPanelMessage(message.ID.String(), event.Channel().ID().String())
	h.editDeferred(event, "Generator panel posted in this channel.")
}

// handleTicketPanelCommand posts the ticket panel in the current channel.
func (h *Handler) handleTicketPanelCommand(event *events.ApplicationCommandInteractionCreate) {
	if !isAdmin(event.Member()) {
		h.replyEphemeral(event, "You do not have permission to use this command.")
		return
	}

	if err := event.DeferCreateMessage(true); err != nil {
		h.logger.Error("Failed to defer ticket panel command", zap.Error(err))
		return
	}

	panel := builders.NewTicketPanelBuilder().Build()
	if _, err := event.Client().Rest().CreateMessage(event.Channel().ID(), panel); err != nil {
		h.logger.Error("Failed to post ticket panel", zap.Error(err))
		h.editDeferred(event, "Failed to post the ticket panel.")
		return
	}

	h.editDeferred(event, "Ticket panel posted in this channel.")
}

// Commands returns the application commands registered on startup.
func Commands() []discord.ApplicationCommandCreate {
	return []discord.ApplicationCommandCreate{
		discord.SlashCommandCreate{
			Name:        constants.AdminPanelCommandName,
			Description: "Post the service management panel",
		},
		discord.SlashCommandCreate{
			Name:        constants.GenPanelCommandName,
			Description: "Post the account generator panel",
		},
		discord.SlashCommandCreate{
			Name:        constants.TicketPanelCommandName,
			Description: "Post the code redemption ticket panel",
		},
	}
}
