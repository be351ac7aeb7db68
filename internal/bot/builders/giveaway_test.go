package builders_test

import (
	"testing"

	"github.com/disgoorg/disgo/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genvault/genvault/internal/bot/builders"
	"github.com/genvault/genvault/internal/bot/constants"
	"github.com/genvault/genvault/internal/state"
)

func TestGiveawayMenuActions(t *testing.T) {
	t.Parallel()

	message := builders.NewGiveawayMenuBuilder(state.GiveawayConfig{
		Enabled:          true,
		MinMessages:      100,
		NumberOfWinners:  2,
		NumberOfAccounts: 1,
		AccountType:      state.AccountTypeBoth,
	}).Build()

	assert.True(t, message.Flags.Has(discord.MessageFlagEphemeral))
	require.Len(t, message.Components, 1)

	row := message.Components[0].(discord.ActionRowComponent)
	menu, ok := row[0].(discord.StringSelectMenuComponent)
	require.True(t, ok)
	assert.Equal(t, constants.GiveawayActionSelectCustomID, menu.CustomID)
	require.Len(t, menu.Options, 6)
	assert.Equal(t, constants.GiveawayActionToggle, menu.Options[0].Value)
	assert.Equal(t, constants.GiveawayActionHistory, menu.Options[5].Value)
}

func TestGiveawayServicesPreselectsCurrent(t *testing.T) {
	t.Parallel()

	message := builders.NewGiveawayServicesBuilder([]builders.ServiceStock{
		stockEntry("service_1", "Netflix", false, 3),
		stockEntry("service_2", "Spotify", true, 1),
	}, []string{"service_2"}).Build()

	row := message.Components[0].(discord.ActionRowComponent)
	menu := row[0].(discord.StringSelectMenuComponent)
	require.Len(t, menu.Options, 2)
	assert.False(t, menu.Options[0].Default)
	assert.True(t, menu.Options[1].Default)
	assert.Equal(t, 2, menu.MaxValues)
}

func TestWinnerDMListsAccounts(t *testing.T) {
	t.Parallel()

	message := builders.NewWinnerDMBuilder(state.GiveawayWinner{
		UserID:       "42",
		MessageCount: 250,
		AccountsReceived: []state.GrantedAccount{
			{ServiceName: "Netflix", Email: "a@b.c", Password: "hunter2"},
			{ServiceName: "Spotify", Email: "d@e.f", Password: "hunter3"},
		},
	}).Build()

	require.Len(t, message.Embeds, 1)
	embed := message.Embeds[0]
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "Netflix", embed.Fields[0].Name)
	assert.Contains(t, embed.Fields[0].Value, "a@b.c")
	assert.Contains(t, embed.Fields[1].Value, "hunter3")
}

func TestRestockAnnouncement(t *testing.T) {
	t.Parallel()

	message := builders.NewRestockBuilder("Netflix", 5, true, "987").Build()

	assert.Equal(t, "<@&987>", message.Content)
	require.Len(t, message.Embeds, 1)
	require.Len(t, message.Embeds[0].Fields, 3)
	assert.Equal(t, "VIP only", message.Embeds[0].Fields[2].Value)

	silent := builders.NewRestockBuilder("Netflix", 5, false, "").Build()
	assert.Empty(t, silent.Content)
	assert.Equal(t, "Free", silent.Embeds[0].Fields[2].Value)
}

func TestGiveawayHistoryShowsLatestFirst(t *testing.T) {
	t.Parallel()

	message := builders.NewGiveawayHistoryBuilder([]state.GiveawayEntry{
		{ID: "1", Date: "2026-01-01T00:00:00Z"},
		{ID: "2", Date: "2026-02-01T00:00:00Z"},
	}).Build()

	require.Len(t, message.Embeds, 1)
	fields := message.Embeds[0].Fields
	require.Len(t, fields, 2)
	assert.Equal(t, "2026-02-01T00:00:00Z", fields[0].Name)
}
