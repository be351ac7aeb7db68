package builders_test

import (
	"testing"

	"github.com/disgoorg/disgo/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genvault/genvault/internal/bot/builders"
	"github.com/genvault/genvault/internal/bot/constants"
)

func TestAdminPanelFull(t *testing.T) {
	t.Parallel()

	message := builders.NewAdminPanelBuilder(false).Build()

	require.Len(t, message.Embeds, 1)
	assert.Equal(t, "Admin Panel", message.Embeds[0].Title)
	require.Len(t, message.Components, 3)

	firstRow, ok := message.Components[0].(discord.ActionRowComponent)
	require.True(t, ok)
	require.Len(t, firstRow, 4)
	assert.Equal(t, constants.AdminSetupStatusButtonCustomID,
		firstRow[0].(discord.ButtonComponent).CustomID)

	lastRow := message.Components[2].(discord.ActionRowComponent)
	require.Len(t, lastRow, 3)
	assert.Equal(t, constants.AdminGiveawayButtonCustomID,
		lastRow[2].(discord.ButtonComponent).CustomID)
}

func TestAdminPanelSupplierOnly(t *testing.T) {
	t.Parallel()

	message := builders.NewAdminPanelBuilder(true).Build()

	require.Len(t, message.Embeds, 1)
	assert.Equal(t, "Supplier Panel", message.Embeds[0].Title)
	require.Len(t, message.Components, 1)

	row, ok := message.Components[0].(discord.ActionRowComponent)
	require.True(t, ok)
	require.Len(t, row, 2)
	assert.Equal(t, constants.AdminAddStockButtonCustomID,
		row[0].(discord.ButtonComponent).CustomID)
	assert.Equal(t, constants.AdminRemoveStockButtonCustomID,
		row[1].(discord.ButtonComponent).CustomID)
}

func TestTicketPanelButton(t *testing.T) {
	t.Parallel()

	message := builders.NewTicketPanelBuilder().Build()

	require.Len(t, message.Components, 1)
	row := message.Components[0].(discord.ActionRowComponent)
	require.Len(t, row, 1)
	assert.Equal(t, constants.TicketCreateButtonCustomID,
		row[0].(discord.ButtonComponent).CustomID)
}

func TestTicketWelcomeMentionsOwner(t *testing.T) {
	t.Parallel()

	message := builders.NewTicketWelcomeBuilder("123456").Build()

	assert.Equal(t, "<@123456>", message.Content)
	require.Len(t, message.Components, 1)

	row := message.Components[0].(discord.ActionRowComponent)
	require.Len(t, row, 2)
	assert.Equal(t, constants.TicketSubmitCodeButtonCustomID,
		row[0].(discord.ButtonComponent).CustomID)
	assert.Equal(t, constants.TicketCloseButtonCustomID,
		row[1].(discord.ButtonComponent).CustomID)
}
