// Package builders creates the visual layouts the handlers send to Discord.
// Builders hold plain data gathered by the caller and only produce message
// payloads, never touching shared state themselves.
package builders

import (
	"github.com/disgoorg/disgo/discord"

	"github.com/genvault/genvault/internal/bot/constants"
)

// AdminPanelBuilder creates the visual layout for the admin configuration
// panel. Suppliers without administrator permission get a reduced panel with
// only the stock buttons.
type AdminPanelBuilder struct {
	supplierOnly bool
}

// NewAdminPanelBuilder creates a new admin panel builder.
func NewAdminPanelBuilder(supplierOnly bool) *AdminPanelBuilder {
	return &AdminPanelBuilder{supplierOnly: supplierOnly}
}

// Build creates the panel message.
func (b *AdminPanelBuilder) Build() discord.MessageCreate {
	if b.supplierOnly {
		embed := discord.NewEmbedBuilder().
			SetTitle("Supplier Panel").
			SetDescription("Manage the stock of existing services.").
			SetColor(constants.DefaultEmbedColor).
			AddField("Add stock", "Add accounts to a service", false).
			AddField("Remove stock", "Remove accounts from a service", false).
			Build()

		return discord.NewMessageCreateBuilder().
			SetEmbeds(embed).
			AddActionRow(
				discord.NewPrimaryButton("Add stock", constants.AdminAddStockButtonCustomID),
				discord.NewDangerButton("Remove stock", constants.AdminRemoveStockButtonCustomID),
			).
			Build()
	}

	embed := discord.NewEmbedBuilder().
		SetTitle("Admin Panel").
		SetColor(constants.DefaultEmbedColor).
		AddField("Setup Status", "Configure the required status text and the role to grant", false).
		AddField("Cooldown", "Change cooldown durations (s = second / m = minute / h = hour / j = day)", false).
		AddField("Add Service / Remove Service", "Manage the distributable services", false).
		AddField("Edit Restock", "Configure the restock announcement channel and ping role", false).
		AddField("Generation Logs", "Configure the redemption log channel", false).
		AddField("Configure Roles", "Configure the VIP, supplier and verification roles", false).
		AddField("Add / Remove stock", "Manage account stock per service", false).
		AddField("Giveaway", "Configure the automatic weekly giveaway rewarding the most active users", false).
		Build()

	return discord.NewMessageCreateBuilder().
		SetEmbeds(embed).
		AddActionRow(
			discord.NewPrimaryButton("Setup Status", constants.AdminSetupStatusButtonCustomID),
			discord.NewSecondaryButton("Cooldown", constants.AdminCooldownButtonCustomID),
			discord.NewSuccessButton("Add Service", constants.AdminAddServiceButtonCustomID),
			discord.NewDangerButton("Remove Service", constants.AdminRemoveServiceButtonCustomID),
		).
		AddActionRow(
			discord.NewSecondaryButton("Edit Restock", constants.AdminEditRestockButtonCustomID),
			discord.NewSecondaryButton("Generation Logs", constants.AdminLogChannelButtonCustomID),
			discord.NewPrimaryButton("Configure Roles", constants.AdminConfigRolesButtonCustomID),
		).
		AddActionRow(
			discord.NewPrimaryButton("Add stock", constants.AdminAddStockButtonCustomID),
			discord.NewDangerButton("Remove stock", constants.AdminRemoveStockButtonCustomID),
			discord.NewPrimaryButton("Giveaway", constants.AdminGiveawayButtonCustomID),
		).
		Build()
}
