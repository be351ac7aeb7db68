package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"go.uber.org/zap"

	"github.com/genvault/genvault/internal/bot/builders"
	"github.com/genvault/genvault/internal/bot/constants"
	"github.com/genvault/genvault/internal/state"
	"github.com/genvault/genvault/pkg/utils"
)

// OnComponent routes button presses and select menu choices.
func (h *Handler) OnComponent(event *events.ComponentInteractionCreate) {
	switch data := event.Data.(type) {
	case discord.ButtonInteractionData:
		h.handleButton(event, data.CustomID())
	case discord.StringSelectMenuInteractionData:
		h.handleSelect(event, data)
	}
}

func (h *Handler) handleButton(event *events.ComponentInteractionCreate, customID string) {
	if serviceID, ok := strings.CutPrefix(customID, constants.GenServiceButtonPrefix); ok {
		h.handleGenService(event, serviceID)
		return
	}

	switch customID {
	case constants.AdminSetupStatusButtonCustomID:
		h.showSetupStatusModal(event)
	case constants.AdminCooldownButtonCustomID:
		h.showCooldownModal(event)
	case constants.AdminAddServiceButtonCustomID:
		h.showAddServiceModal(event)
	case constants.AdminRemoveServiceButtonCustomID:
		h.showServiceSelect(event, constants.ServiceDeleteSelectCustomID,
			"Select the service to delete")
	case constants.AdminEditRestockButtonCustomID:
		h.showEditRestockModal(event)
	case constants.AdminLogChannelButtonCustomID:
		h.showLogChannelModal(event)
	case constants.AdminConfigRolesButtonCustomID:
		h.showConfigRolesModal(event)
	case constants.AdminAddStockButtonCustomID:
		h.showServiceSelect(event, constants.ServiceAddStockSelectCustomID,
			"Select the service to stock")
	case constants.AdminRemoveStockButtonCustomID:
		h.showServiceSelect(event, constants.ServiceRemoveStockSelectCustomID,
			"Select the service to remove stock from")
	case constants.AdminGiveawayButtonCustomID:
		h.showGiveawayMenu(event)
	case constants.TicketCreateButtonCustomID:
		h.handleTicketCreate(event)
	case constants.TicketCloseButtonCustomID:
		h.handleTicketClose(event)
	case constants.TicketSubmitCodeButtonCustomID:
		h.showSubmitCodeModal(event)
	}
}

// handleGenService claims an account for the pressed service and hands the
// user a one-time redemption code.
func (h *Handler) handleGenService(event *events.ComponentInteractionCreate, serviceID string) {
	service, ok := h.state.Service(serviceID)
	if !ok {
		h.replyEphemeral(event, "This service no longer exists.")
		return
	}

	member := event.Member()
	userID := event.User().ID.String()
	settings := h.state.Settings()

	if settings.RequiredRoleID != "" && !hasRole(member, settings.RequiredRoleID) {
		h.replyEphemeral(event, fmt.Sprintf(
			"You must have `%s` in your Discord status to generate accounts.",
			settings.StatusText))
		return
	}

	vip := settings.VIPRoleID != "" && hasRole(member, settings.VIPRoleID)
	if service.IsVIPOnly && !vip {
		h.replyEphemeral(event, "This service is reserved for VIP members.")
		return
	}

	if remaining := h.state.GenCooldownRemaining(userID, vip); remaining > 0 {
		h.replyEphemeral(event, fmt.Sprintf(
			"You must wait **%s** before generating again.",
			utils.FormatDuration(remaining)))
		return
	}

	account, err := h.state.ClaimAccount(serviceID, userID)
	if err != nil {
		h.replyEphemeral(event, fmt.Sprintf("No accounts available for **%s**.", service.Name))
		return
	}

	code := h.state.GenerateCode(serviceID, userID, account.ID)
	h.state.SetGenCooldown(userID)

	h.logger.Info("Issued redemption code",
		zap.String("userID", userID),
		zap.String("serviceID", serviceID))

	h.replyEphemeral(event, fmt.Sprintf(
		"Your code for **%s**:\n```%s```\nOpen a ticket and submit this code to receive your account.",
		service.Name, code))

	h.RefreshGenPanels(event.Client())
}

// handleTicketCreate opens a private ticket channel for the user with an
// auto-close timer.
func (h *Handler) handleTicketCreate(event *events.ComponentInteractionCreate) {
	member := event.Member()
	user := event.User()
	userID := user.ID.String()
	guildID := event.GuildID()
	if guildID == nil {
		return
	}

	if ticket, ok := h.state.TicketByUser(userID); ok {
		h.replyEphemeral(event, fmt.Sprintf("You already have an open ticket: <#%s>", ticket.ChannelID))
		return
	}

	settings := h.state.Settings()
	vip := settings.VIPRoleID != "" && hasRole(member, settings.VIPRoleID)
	if remaining := h.state.TicketCooldownRemaining(userID, vip); remaining > 0 {
		h.replyEphemeral(event, fmt.Sprintf(
			"You must wait **%s** before opening another ticket.",
			utils.FormatDuration(remaining)))
		return
	}

	if err := event.DeferCreateMessage(true); err != nil {
		h.logger.Error("Failed to defer ticket creation", zap.Error(err))
		return
	}

	client := event.Client()
	channel, err := client.Rest().CreateGuildChannel(*guildID, discord.GuildTextChannelCreate{
		Name: "ticket-" + user.Username,
		PermissionOverwrites: []discord.PermissionOverwrite{
			discord.RolePermissionOverwrite{
				RoleID: *guildID, // @everyone
				Deny:   discord.PermissionViewChannel,
			},
			discord.MemberPermissionOverwrite{
				UserID: user.ID,
				Allow:  discord.PermissionViewChannel | discord.PermissionSendMessages,
			},
		},
	})
	if err != nil {
		h.logger.Error("Failed to create ticket channel", zap.Error(err))
		h.editDeferred(event, "Failed to create your ticket channel.")
		return
	}

	welcome := builders.NewTicketWelcomeBuilder(userID).Build()
	if _, err := client.Rest().CreateMessage(channel.ID(), welcome); err != nil {
		h.logger.Error("Failed to send ticket welcome message", zap.Error(err))
	}

	channelID := channel.ID()
	timer := time.AfterFunc(constants.TicketAutoCloseDelay, func() {
		h.state.RemoveTicket(channelID.String())
		if err := client.Rest().DeleteChannel(channelID); err != nil {
			h.logger.Warn("Failed to auto-close ticket channel",
				zap.String("channelID", channelID.String()),
				zap.Error(err))
		}
	})

	h.state.AddTicket(channelID.String(), userID, timer)
	h.state.SetTicketCooldown(userID)

	h.logger.Info("Opened ticket",
		zap.String("userID", userID),
		zap.String("channelID", channelID.String()))

	h.editDeferred(event, fmt.Sprintf("Your ticket is ready: <#%s>", channelID))
}

// handleTicketClose removes the ticket and deletes its channel after a short
// delay so the confirmation renders.
func (h *Handler) handleTicketClose(event *events.ComponentInteractionCreate) {
	channelID := event.Channel().ID()
	ticket, ok := h.state.Ticket(channelID.String())
	if !ok {
		h.replyEphemeral(event, "This channel is not a ticket.")
		return
	}

	userID := event.User().ID.String()
	if ticket.UserID != userID {
		h.replyEphemeral(event, "Only the ticket owner can close it.")
		return
	}

	err := event.CreateMessage(discord.NewMessageCreateBuilder().
		SetContent("Closing the ticket...").
		Build())
	if err != nil {
		h.logger.Error("Failed to acknowledge ticket close", zap.Error(err))
	}

	h.state.RemoveTicket(channelID.String())

	client := event.Client()
	time.AfterFunc(constants.TicketCloseDelay, func() {
		if err := client.Rest().DeleteChannel(channelID); err != nil {
			h.logger.Warn("Failed to delete ticket channel",
				zap.String("channelID", channelID.String()),
				zap.Error(err))
		}
	})
}

// showServiceSelect answers with an ephemeral service picker, or a notice
// when no services exist.
func (h *Handler) showServiceSelect(event *events.ComponentInteractionCreate, customID, placeholder string) {
	services := h.state.Services()
	if len(services) == 0 {
		h.replyEphemeral(event, "No services are configured.")
		return
	}

	options := make([]discord.StringSelectMenuOption, 0, len(services))
	for _, service := range services {
		tier := "Normal"
		if service.IsVIPOnly {
			tier = "VIP"
		}
		options = append(options, discord.NewStringSelectMenuOption(service.Name, service.ID).
			WithDescription(fmt.Sprintf("%s, %d account(s) available",
				tier, h.state.AvailableAccountCount(service.ID))))
	}

	err := event.CreateMessage(discord.NewMessageCreateBuilder().
		SetContent(placeholder + ":").
		SetEphemeral(true).
		AddActionRow(discord.NewStringSelectMenu(customID, placeholder, options...)).
		Build())
	if err != nil {
		h.logger.Error("Failed to send service select", zap.Error(err))
	}
}

func (h *Handler) showGiveawayMenu(event *events.ComponentInteractionCreate) {
	menu := builders.NewGiveawayMenuBuilder(h.state.GiveawaySettings()).Build()
	if err := event.CreateMessage(menu); err != nil {
		h.logger.Error("Failed to send giveaway menu", zap.Error(err))
	}
}

func (h *Handler) showSetupStatusModal(event *events.ComponentInteractionCreate) {
	h.showModal(event, discord.NewModalCreateBuilder().
		SetCustomID(constants.SetupStatusModalCustomID).
		SetTitle("Configure the status check").
		AddActionRow(discord.NewTextInput(constants.StatusTextInputCustomID,
			discord.TextInputStyleShort, "Text required in member statuses").
			WithRequired(true).
			WithPlaceholder("discord.gg/yourserver")).
		AddActionRow(discord.NewTextInput(constants.StatusRoleInputCustomID,
			discord.TextInputStyleShort, "Role granted while the status matches").
			WithRequired(true).
			WithPlaceholder("Role ID")).
		Build())
}

func (h *Handler) showCooldownModal(event *events.ComponentInteractionCreate) {
	h.showModal(event, discord.NewModalCreateBuilder().
		SetCustomID(constants.CooldownModalCustomID).
		SetTitle("Configure cooldowns").
		AddActionRow(discord.NewTextInput(constants.NormalCooldownInputCustomID,
			discord.TextInputStyleShort, "Ticket cooldown (normal)").
			WithRequired(true).
			WithPlaceholder("10m, 2h, 1j")).
		AddActionRow(discord.NewTextInput(constants.VIPCooldownInputCustomID,
			discord.TextInputStyleShort, "Ticket cooldown (VIP)").
			WithRequired(true).
			WithPlaceholder("5m")).
		AddActionRow(discord.NewTextInput(constants.NormalGenCooldownInputCustomID,
			discord.TextInputStyleShort, "Generation cooldown (normal)").
			WithRequired(true).
			WithPlaceholder("1h")).
		AddActionRow(discord.NewTextInput(constants.VIPGenCooldownInputCustomID,
			discord.TextInputStyleShort, "Generation cooldown (VIP)").
			WithRequired(true).
			WithPlaceholder("30m")).
		Build())
}

func (h *Handler) showAddServiceModal(event *events.ComponentInteractionCreate) {
	h.showModal(event, discord.NewModalCreateBuilder().
		SetCustomID(constants.AddServiceModalCustomID).
		SetTitle("Add a service").
		AddActionRow(discord.NewTextInput(constants.ServiceNameInputCustomID,
			discord.TextInputStyleShort, "Service name").
			WithRequired(true).
			WithPlaceholder("Netflix")).
		AddActionRow(discord.NewTextInput(constants.ServiceVIPInputCustomID,
			discord.TextInputStyleShort, "VIP only? (yes/no)").
			WithRequired(true).
			WithPlaceholder("no")).
		AddActionRow(discord.NewTextInput(constants.ServiceEmojiInputCustomID,
			discord.TextInputStyleShort, "Button emoji (optional)").
			WithRequired(false).
			WithPlaceholder("🎬 or <:name:id>")).
		Build())
}

func (h *Handler) showEditRestockModal(event *events.ComponentInteractionCreate) {
	h.showModal(event, discord.NewModalCreateBuilder().
		SetCustomID(constants.EditRestockModalCustomID).
		SetTitle("Configure restock announcements").
		AddActionRow(discord.NewTextInput(constants.RestockChannelInputCustomID,
			discord.TextInputStyleShort, "Announcement channel").
			WithRequired(true).
			WithPlaceholder("Channel ID")).
		AddActionRow(discord.NewTextInput(constants.RestockPingInputCustomID,
			discord.TextInputStyleShort, "Role to ping (optional)").
			WithRequired(false).
			WithPlaceholder("Role ID")).
		Build())
}

func (h *Handler) showLogChannelModal(event *events.ComponentInteractionCreate) {
	h.showModal(event, discord.NewModalCreateBuilder().
		SetCustomID(constants.LogChannelModalCustomID).
		SetTitle("Configure the log channel").
		AddActionRow(discord.NewTextInput(constants.LogChannelInputCustomID,
			discord.TextInputStyleShort, "Channel receiving generation logs").
			WithRequired(true).
			WithPlaceholder("Channel ID")).
		Build())
}

func (h *Handler) showConfigRolesModal(event *events.ComponentInteractionCreate) {
	h.showModal(event, discord.NewModalCreateBuilder().
		SetCustomID(constants.ConfigRolesModalCustomID).
		SetTitle("Configure roles").
		AddActionRow(discord.NewTextInput(constants.VIPRoleInputCustomID,
			discord.TextInputStyleShort, "VIP role (empty to keep)").
			WithRequired(false).
			WithPlaceholder("Role ID")).
		AddActionRow(discord.NewTextInput(constants.SupplierRoleInputCustomID,
			discord.TextInputStyleShort, "Supplier role (empty to keep)").
			WithRequired(false).
			WithPlaceholder("Role ID")).
		AddActionRow(discord.NewTextInput(constants.VerificationRoleInputCustomID,
			discord.TextInputStyleShort, "Verification role (empty to keep)").
			WithRequired(false).
			WithPlaceholder("Role ID")).
		Build())
}

func (h *Handler) showSubmitCodeModal(event *events.ComponentInteractionCreate) {
	h.showModal(event, discord.NewModalCreateBuilder().
		SetCustomID(constants.SubmitCodeModalCustomID).
		SetTitle("Submit your code").
		AddActionRow(discord.NewTextInput(constants.CodeInputCustomID,
			discord.TextInputStyleShort, "Redemption code").
			WithRequired(true).
			WithMinLength(constants.CodeLength).
			WithMaxLength(constants.CodeLength)).
		Build())
}

func (h *Handler) showModal(event *events.ComponentInteractionCreate, modal discord.ModalCreate) {
	if err := event.Modal(modal); err != nil {
		h.logger.Error("Failed to open modal",
			zap.String("customID", modal.CustomID),
			zap.Error(err))
	}
}

// stockModal builds the add or remove stock modal for a service.
func stockModal(prefix string, service *state.Service) discord.ModalCreate {
	if prefix == constants.AddStockModalPrefix {
		return discord.NewModalCreateBuilder().
			SetCustomID(prefix + service.ID).
			SetTitle("Add stock: " + service.Name).
			AddActionRow(discord.NewTextInput(constants.AccountsTextInputCustomID,
				discord.TextInputStyleParagraph, "Accounts (email:password per line)").
				WithRequired(true).
				WithPlaceholder("user@mail.com:password")).
			Build()
	}
	return discord.NewModalCreateBuilder().
		SetCustomID(prefix + service.ID).
		SetTitle("Remove stock: " + service.Name).
		AddActionRow(discord.NewTextInput(constants.RemoveCountInputCustomID,
			discord.TextInputStyleShort, "Number of accounts to remove").
			WithRequired(true).
			WithPlaceholder("5")).
		Build()
}
