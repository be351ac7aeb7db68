package builders

import (
	"fmt"
	"time"

	"github.com/disgoorg/disgo/discord"

	"github.com/genvault/genvault/internal/bot/constants"
	"github.com/genvault/genvault/internal/state"
)

// GiveawayMenuBuilder creates the giveaway configuration overview with its
// action select menu.
type GiveawayMenuBuilder struct {
	config state.GiveawayConfig
}

// NewGiveawayMenuBuilder creates a new giveaway menu builder.
func NewGiveawayMenuBuilder(config state.GiveawayConfig) *GiveawayMenuBuilder {
	return &GiveawayMenuBuilder{config: config}
}

// Build creates the menu message.
func (b *GiveawayMenuBuilder) Build() discord.MessageCreate {
	status := "Inactive"
	if b.config.Enabled {
		status = "Active"
	}

	embed := discord.NewEmbedBuilder().
		SetTitle("Giveaway configuration").
		SetDescription("Status: **"+status+"**").
		SetColor(constants.DefaultEmbedColor).
		AddField("Minimum messages", fmt.Sprintf("%d", b.config.MinMessages), true).
		AddField("Winners", fmt.Sprintf("%d", b.config.NumberOfWinners), true).
		AddField("Accounts per winner", fmt.Sprintf("%d", b.config.NumberOfAccounts), true).
		AddField("Account type", accountTypeLabel(b.config.AccountType), true).
		AddField("Selected services", fmt.Sprintf("%d", len(b.config.ServiceIDs)), true).
		Build()

	return discord.NewMessageCreateBuilder().
		SetEmbeds(embed).
		SetEphemeral(true).
		AddActionRow(discord.NewStringSelectMenu(
			constants.GiveawayActionSelectCustomID,
			"Select an action",
			discord.NewStringSelectMenuOption("Enable/disable giveaways", constants.GiveawayActionToggle).
				WithDescription("Toggle the automatic giveaway system"),
			discord.NewStringSelectMenuOption("Configure parameters", constants.GiveawayActionSettings).
				WithDescription("Minimum messages, winner count, accounts per winner"),
			discord.NewStringSelectMenuOption("Select services", constants.GiveawayActionServices).
				WithDescription("Choose which services get distributed"),
			discord.NewStringSelectMenuOption("View statistics", constants.GiveawayActionStats).
				WithDescription("See the most active users"),
			discord.NewStringSelectMenuOption("Run a manual giveaway", constants.GiveawayActionRun).
				WithDescription("Execute a giveaway immediately"),
			discord.NewStringSelectMenuOption("Giveaway history", constants.GiveawayActionHistory).
				WithDescription("See past giveaways"),
		)).
		Build()
}

// GiveawayServicesBuilder creates the multi-select menu for choosing the
// services distributed by giveaways.
type GiveawayServicesBuilder struct {
	services []ServiceStock
	selected map[string]bool
}

// NewGiveawayServicesBuilder creates a new service selection builder.
func NewGiveawayServicesBuilder(services []ServiceStock, selectedIDs []string) *GiveawayServicesBuilder {
	selected := make(map[string]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[id] = true
	}
	return &GiveawayServicesBuilder{services: services, selected: selected}
}

// Build creates the selection message.
func (b *GiveawayServicesBuilder) Build() discord.MessageCreate {
	options := make([]discord.StringSelectMenuOption, 0, len(b.services))
	for _, s := range b.services {
		tier := "(Normal)"
		if s.Service.IsVIPOnly {
			tier = "(VIP)"
		}

		options = append(options,
			discord.NewStringSelectMenuOption(s.Service.Name+" "+tier, s.Service.ID).
				WithDescription(fmt.Sprintf("%d accounts in stock", s.Available)).
				WithDefault(b.selected[s.Service.ID]))
	}

	menu := discord.NewStringSelectMenu(
		constants.GiveawayServicesSelectCustomID,
		"Select the giveaway services",
		options...,
	).WithMinValues(1).WithMaxValues(len(options))

	return discord.NewMessageCreateBuilder().
		SetContent("Select the services distributed by the giveaway:").
		SetEphemeral(true).
		AddActionRow(menu).
		Build()
}

// GiveawayStatsBuilder creates the activity leaderboard embed.
type GiveawayStatsBuilder struct {
	topUsers    []*state.UserStats
	minMessages int
}

// NewGiveawayStatsBuilder creates a new stats builder.
func NewGiveawayStatsBuilder(topUsers []*state.UserStats, minMessages int) *GiveawayStatsBuilder {
	return &GiveawayStatsBuilder{topUsers: topUsers, minMessages: minMessages}
}

// Build creates the stats message.
func (b *GiveawayStatsBuilder) Build() discord.MessageCreate {
	var description string
	for i, user := range b.topUsers {
		if i >= 10 {
			break
		}
		description += fmt.Sprintf("%d. <@%s> - **%d** messages\n", i+1, user.UserID, user.MessageCount)
	}

	embed := discord.NewEmbedBuilder().
		SetTitle("User statistics").
		SetDescription(fmt.Sprintf("Top %d users with at least %d messages", len(b.topUsers), b.minMessages)).
		SetColor(constants.DefaultEmbedColor).
		AddField("Most active users", description, false).
		SetTimestamp(time.Now()).
		Build()

	return discord.NewMessageCreateBuilder().SetEmbeds(embed).SetEphemeral(true).Build()
}

// GiveawayHistoryBuilder creates the embed listing the most recent draws.
type GiveawayHistoryBuilder struct {
	history []state.GiveawayEntry
}

// NewGiveawayHistoryBuilder creates a new history builder.
func NewGiveawayHistoryBuilder(history []state.GiveawayEntry) *GiveawayHistoryBuilder {
	return &GiveawayHistoryBuilder{history: history}
}

// Build creates the history message showing the last five draws, most recent
// first.
func (b *GiveawayHistoryBuilder) Build() discord.MessageCreate {
	builder := discord.NewEmbedBuilder().
		SetTitle("Giveaway history").
		SetColor(constants.DefaultEmbedColor).
		SetTimestamp(time.Now())

	start := max(len(b.history)-5, 0)
	for i := len(b.history) - 1; i >= start; i-- {
		entry := b.history[i]

		var winners string
		for _, w := range entry.Winners {
			winners += fmt.Sprintf("<@%s> (%d msgs)\n", w.UserID, w.MessageCount)
		}

		builder.AddField(entry.Date,
			fmt.Sprintf("%d winner(s):\n%s", len(entry.Winners), winners), false)
	}

	return discord.NewMessageCreateBuilder().SetEmbeds(builder.Build()).SetEphemeral(true).Build()
}

// WinnerDMBuilder creates the direct message delivering a winner's accounts.
type WinnerDMBuilder struct {
	winner state.GiveawayWinner
}

// NewWinnerDMBuilder creates a new winner DM builder.
func NewWinnerDMBuilder(winner state.GiveawayWinner) *WinnerDMBuilder {
	return &WinnerDMBuilder{winner: winner}
}

// Build creates the DM message.
func (b *WinnerDMBuilder) Build() discord.MessageCreate {
	builder := discord.NewEmbedBuilder().
		SetTitle("Congratulations! You won the giveaway!").
		SetDescription(fmt.Sprintf(
			"You were selected among the most active users with **%d** messages!",
			b.winner.MessageCount)).
		SetColor(constants.DefaultEmbedColor).
		SetTimestamp(time.Now())

	for _, grant := range b.winner.AccountsReceived {
		builder.AddField(grant.ServiceName,
			fmt.Sprintf("Email: `%s`\nPassword: `%s`", grant.Email, grant.Password), false)
	}

	return discord.NewMessageCreateBuilder().SetEmbeds(builder.Build()).Build()
}

func accountTypeLabel(t state.AccountType) string {
	switch t {
	case state.AccountTypeVIP:
		return "VIP only"
	case state.AccountTypeFree:
		return "Free only"
	default:
		return "VIP and free"
	}
}
