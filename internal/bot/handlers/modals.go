package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"go.uber.org/zap"

	"github.com/genvault/genvault/internal/bot/constants"
	"github.com/genvault/genvault/internal/state"
	"github.com/genvault/genvault/pkg/utils"
)

// OnModalSubmit routes modal submissions.
func (h *Handler) OnModalSubmit(event *events.ModalSubmitInteractionCreate) {
	customID := event.Data.CustomID

	if serviceID, ok := strings.CutPrefix(customID, constants.AddStockModalPrefix); ok {
		h.handleAddStock(event, serviceID)
		return
	}
	if serviceID, ok := strings.CutPrefix(customID, constants.RemoveStockModalPrefix); ok {
		h.handleRemoveStock(event, serviceID)
		return
	}

	switch customID {
	case constants.SetupStatusModalCustomID:
		h.handleSetupStatus(event)
	case constants.CooldownModalCustomID:
		h.handleCooldowns(event)
	case constants.AddServiceModalCustomID:
		h.handleAddService(event)
	case constants.EditRestockModalCustomID:
		h.handleEditRestock(event)
	case constants.LogChannelModalCustomID:
		h.handleLogChannel(event)
	case constants.ConfigRolesModalCustomID:
		h.handleConfigRoles(event)
	case constants.SubmitCodeModalCustomID:
		h.handleSubmitCode(event)
	case constants.GiveawaySettingsModalCustomID:
		h.handleGiveawaySettings(event)
	}
}

func (h *Handler) handleSetupStatus(event *events.ModalSubmitInteractionCreate) {
	statusText := strings.TrimSpace(event.Data.Text(constants.StatusTextInputCustomID))
	roleID := strings.TrimSpace(event.Data.Text(constants.StatusRoleInputCustomID))
	if statusText == "" || roleID == "" {
		h.replyEphemeral(event, "Both the status text and the role are required.")
		return
	}

	h.state.SetStatusRule(statusText, roleID)
	h.replyEphemeral(event, fmt.Sprintf(
		"Members with `%s` in their status now receive <@&%s>.", statusText, roleID))
}

func (h *Handler) handleCooldowns(event *events.ModalSubmitInteractionCreate) {
	inputs := []string{
		constants.NormalCooldownInputCustomID,
		constants.VIPCooldownInputCustomID,
		constants.NormalGenCooldownInputCustomID,
		constants.VIPGenCooldownInputCustomID,
	}

	values := make([]time.Duration, len(inputs))
	for i, input := range inputs {
		d, err := utils.ParseCooldown(strings.TrimSpace(event.Data.Text(input)))
		if err != nil {
			h.replyEphemeral(event, "Invalid cooldown format. Use values like `30s`, `10m`, `2h` or `1j`.")
			return
		}
		values[i] = d
	}

	h.state.SetCooldowns(values[0], values[1], values[2], values[3])
	h.replyEphemeral(event, fmt.Sprintf(
		"Cooldowns updated.\nTickets: **%s** (VIP **%s**)\nGeneration: **%s** (VIP **%s**)",
		utils.FormatDuration(values[0]), utils.FormatDuration(values[1]),
		utils.FormatDuration(values[2]), utils.FormatDuration(values[3])))
}

func (h *Handler) handleAddService(event *events.ModalSubmitInteractionCreate) {
	name := strings.TrimSpace(event.Data.Text(constants.ServiceNameInputCustomID))
	if name == "" {
		h.replyEphemeral(event, "The service name is required.")
		return
	}

	vipAnswer := strings.ToLower(strings.TrimSpace(event.Data.Text(constants.ServiceVIPInputCustomID)))
	vip := vipAnswer == "yes" || vipAnswer == "y" || vipAnswer == "oui"
	emoji := strings.TrimSpace(event.Data.Text(constants.ServiceEmojiInputCustomID))

	serviceID := state.NewServiceID()
	h.state.AddService(serviceID, name, vip, emoji)

	h.logger.Info("Added service",
		zap.String("serviceID", serviceID),
		zap.String("name", name),
		zap.Bool("vipOnly", vip))

	tier := "normal"
	if vip {
		tier = "VIP only"
	}
	h.replyEphemeral(event, fmt.Sprintf("Service **%s** added (%s).", name, tier))
	h.RefreshGenPanels(event.Client())
}

func (h *Handler) handleEditRestock(event *events.ModalSubmitInteractionCreate) {
	channelID := strings.TrimSpace(event.Data.Text(constants.RestockChannelInputCustomID))
	pingRoleID := strings.TrimSpace(event.Data.Text(constants.RestockPingInputCustomID))
	if channelID == "" {
		h.replyEphemeral(event, "The announcement channel is required.")
		return
	}

	h.state.SetRestock(channelID, pingRoleID)
	h.replyEphemeral(event, fmt.Sprintf("Restock announcements will go to <#%s>.", channelID))
}

func (h *Handler) handleLogChannel(event *events.ModalSubmitInteractionCreate) {
	channelID := strings.TrimSpace(event.Data.Text(constants.LogChannelInputCustomID))
	if channelID == "" {
		h.replyEphemeral(event, "The log channel is required.")
		return
	}

	h.state.SetLogChannel(channelID)
	h.replyEphemeral(event, fmt.Sprintf("Generation logs will go to <#%s>.", channelID))
}

func (h *Handler) handleConfigRoles(event *events.ModalSubmitInteractionCreate) {
	vip := strings.TrimSpace(event.Data.Text(constants.VIPRoleInputCustomID))
	supplier := strings.TrimSpace(event.Data.Text(constants.SupplierRoleInputCustomID))
	verification := strings.TrimSpace(event.Data.Text(constants.VerificationRoleInputCustomID))

	if vip == "" && supplier == "" && verification == "" {
		h.replyEphemeral(event, "No roles changed.")
		return
	}

	h.state.SetRoles(vip, supplier, verification)

	var updated []string
	if vip != "" {
		updated = append(updated, fmt.Sprintf("VIP: <@&%s>", vip))
	}
	if supplier != "" {
		updated = append(updated, fmt.Sprintf("Supplier: <@&%s>", supplier))
	}
	if verification != "" {
		updated = append(updated, fmt.Sprintf("Verification: <@&%s>", verification))
	}
	h.replyEphemeral(event, "Roles updated.\n"+strings.Join(updated, "\n"))
}

func (h *Handler) handleAddStock(event *events.ModalSubmitInteractionCreate, serviceID string) {
	service, ok := h.state.Service(serviceID)
	if !ok {
		h.replyEphemeral(event, "This service no longer exists.")
		return
	}

	accounts := state.ParseAccountList(event.Data.Text(constants.AccountsTextInputCustomID))
	if len(accounts) == 0 {
		h.replyEphemeral(event, "No valid accounts found. Use one `email:password` per line.")
		return
	}

	if err := h.state.AddAccounts(serviceID, accounts); err != nil {
		h.replyEphemeral(event, "Failed to add the accounts.")
		return
	}

	h.logger.Info("Added stock",
		zap.String("serviceID", serviceID),
		zap.Int("count", len(accounts)))

	h.replyEphemeral(event, fmt.Sprintf(
		"Added **%d** account(s) to **%s**.", len(accounts), service.Name))

	h.notifier.Restock(event.Client(), service.Name, len(accounts), service.IsVIPOnly)
	h.RefreshGenPanels(event.Client())
}

func (h *Handler) handleRemoveStock(event *events.ModalSubmitInteractionCreate, serviceID string) {
	service, ok := h.state.Service(serviceID)
	if !ok {
		h.replyEphemeral(event, "This service no longer exists.")
		return
	}

	count, err := strconv.Atoi(strings.TrimSpace(event.Data.Text(constants.RemoveCountInputCustomID)))
	if err != nil || count <= 0 {
		h.replyEphemeral(event, "Invalid number.")
		return
	}

	removed, err := h.state.RemoveAccounts(serviceID, count)
	if err != nil {
		h.replyEphemeral(event, "Failed to remove the accounts.")
		return
	}

	h.replyEphemeral(event, fmt.Sprintf(
		"Removed **%d** account(s) from **%s**.", removed, service.Name))
	h.RefreshGenPanels(event.Client())
}

// handleSubmitCode redeems a code inside the submitter's own ticket and
// reveals the credentials in the private channel.
func (h *Handler) handleSubmitCode(event *events.ModalSubmitInteractionCreate) {
	channelID := event.Channel().ID().String()
	userID := event.User().ID.String()

	ticket, ok := h.state.Ticket(channelID)
	if !ok {
		h.replyEphemeral(event, "Codes can only be submitted inside a ticket.")
		return
	}
	if ticket.UserID != userID {
		h.replyEphemeral(event, "Only the ticket owner can submit a code here.")
		return
	}

	code := strings.TrimSpace(event.Data.Text(constants.CodeInputCustomID))
	grant, err := h.state.RedeemCode(code, userID)
	if err != nil {
		h.replyEphemeral(event, redeemErrorMessage(err))
		return
	}

	embed := discord.NewEmbedBuilder().
		SetTitle("Account delivered").
		SetDescription(fmt.Sprintf("Here is your **%s** account:", grant.ServiceName)).
		SetColor(constants.DefaultEmbedColor).
		AddField("Email", fmt.Sprintf("`%s`", grant.Email), false).
		AddField("Password", fmt.Sprintf("`%s`", grant.Password), false).
		SetTimestamp(time.Now()).
		Build()

	sendErr := event.CreateMessage(discord.NewMessageCreateBuilder().
		SetEmbeds(embed).
		Build())
	if sendErr != nil {
		h.logger.Error("Failed to deliver account credentials", zap.Error(sendErr))
	}

	h.logger.Info("Redeemed code",
		zap.String("userID", userID),
		zap.String("serviceID", grant.ServiceID))

	h.notifier.RedemptionLog(event.Client(), userID, grant.ServiceName)
}

func (h *Handler) handleGiveawaySettings(event *events.ModalSubmitInteractionCreate) {
	fields := []string{
		constants.MinMessagesInputCustomID,
		constants.NumberOfWinnersInputCustomID,
		constants.NumberOfAccountsInputCustomID,
	}

	values := make([]int, len(fields))
	for i, field := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(event.Data.Text(field)))
		if err != nil || n <= 0 {
			h.replyEphemeral(event, "All numeric settings must be positive whole numbers.")
			return
		}
		values[i] = n
	}

	accountType := state.AccountType(strings.ToLower(strings.TrimSpace(
		event.Data.Text(constants.AccountTypeInputCustomID))))

	if err := h.state.SetGiveawayParameters(values[0], values[1], values[2], accountType); err != nil {
		h.replyEphemeral(event, "Invalid settings. The account type must be `vip`, `free` or `both`.")
		return
	}

	h.replyEphemeral(event, fmt.Sprintf(
		"Giveaway settings updated.\nMinimum messages: **%d**\nWinners: **%d**\nAccounts per winner: **%d**\nAccount type: **%s**",
		values[0], values[1], values[2], accountType))
}

func redeemErrorMessage(err error) string {
	switch {
	case errors.Is(err, state.ErrCodeNotFound):
		return "Invalid code."
	case errors.Is(err, state.ErrCodeUsed):
		return "This code was already used."
	case errors.Is(err, state.ErrCodeOwnerMismatch):
		return "This code belongs to another user."
	case errors.Is(err, state.ErrServiceNotFound), errors.Is(err, state.ErrAccountNotFound):
		return "The account tied to this code is no longer available."
	default:
		return "Failed to redeem the code."
	}
}
