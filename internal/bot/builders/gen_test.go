package builders_test

import (
	"fmt"
	"testing"

	"github.com/disgoorg/disgo/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genvault/genvault/internal/bot/builders"
	"github.com/genvault/genvault/internal/bot/constants"
	"github.com/genvault/genvault/internal/state"
)

func stockEntry(id, name string, vip bool, available int) builders.ServiceStock {
	return builders.ServiceStock{
		Service:   &state.Service{ID: id, Name: name, IsVIPOnly: vip},
		Available: available,
	}
}

func TestGenPanelEmpty(t *testing.T) {
	t.Parallel()

	message := builders.NewGenPanelBuilder(nil).Build()

	require.Len(t, message.Embeds, 1)
	assert.Equal(t, "No services available right now", message.Embeds[0].Description)
	assert.Empty(t, message.Components)
}

func TestGenPanelButtonStyles(t *testing.T) {
	t.Parallel()

	message := builders.NewGenPanelBuilder([]builders.ServiceStock{
		stockEntry("service_1", "Netflix", false, 3),
		stockEntry("service_2", "Spotify", false, 0),
		stockEntry("service_3", "Crunchyroll", true, 2),
	}).Build()

	// Free services first, VIP on their own row
	require.Len(t, message.Components, 2)

	freeRow, ok := message.Components[0].(discord.ActionRowComponent)
	require.True(t, ok)
	require.Len(t, freeRow, 2)

	netflix, ok := freeRow[0].(discord.ButtonComponent)
	require.True(t, ok)
	assert.Equal(t, "Netflix (3)", netflix.Label)
	assert.Equal(t, constants.GenServiceButtonPrefix+"service_1", netflix.CustomID)
	assert.Equal(t, discord.ButtonStyleSuccess, netflix.Style)
	assert.False(t, netflix.Disabled)

	spotify, ok := freeRow[1].(discord.ButtonComponent)
	require.True(t, ok)
	assert.Equal(t, "Spotify (0)", spotify.Label)
	assert.Equal(t, discord.ButtonStyleDanger, spotify.Style)
	assert.True(t, spotify.Disabled)

	vipRow, ok := message.Components[1].(discord.ActionRowComponent)
	require.True(t, ok)
	require.Len(t, vipRow, 1)

	crunchy, ok := vipRow[0].(discord.ButtonComponent)
	require.True(t, ok)
	assert.Equal(t, discord.ButtonStylePrimary, crunchy.Style)
}

func TestGenPanelChunksRowsOfFive(t *testing.T) {
	t.Parallel()

	var stock []builders.ServiceStock
	for i := range 7 {
		stock = append(stock, stockEntry(
			fmt.Sprintf("service_%d", i), fmt.Sprintf("Service %d", i), false, 1))
	}

	message := builders.NewGenPanelBuilder(stock).Build()

	require.Len(t, message.Components, 2)
	assert.Len(t, message.Components[0].(discord.ActionRowComponent), 5)
	assert.Len(t, message.Components[1].(discord.ActionRowComponent), 2)
}

func TestGenPanelEmoji(t *testing.T) {
	t.Parallel()

	withUnicode := stockEntry("service_1", "Netflix", false, 1)
	withUnicode.Service.Emoji = "🎬"
	withCustom := stockEntry("service_2", "Spotify", false, 1)
	withCustom.Service.Emoji = "<:spot:123456789>"

	message := builders.NewGenPanelBuilder([]builders.ServiceStock{withUnicode, withCustom}).Build()

	row := message.Components[0].(discord.ActionRowComponent)
	first := row[0].(discord.ButtonComponent)
	require.NotNil(t, first.Emoji)
	assert.Equal(t, "🎬", first.Emoji.Name)

	second := row[1].(discord.ButtonComponent)
	require.NotNil(t, second.Emoji)
	assert.Equal(t, "spot", second.Emoji.Name)
	assert.Equal(t, "123456789", second.Emoji.ID.String())
}

func TestGenPanelBuildUpdateCarriesComponents(t *testing.T) {
	t.Parallel()

	update := builders.NewGenPanelBuilder([]builders.ServiceStock{
		stockEntry("service_1", "Netflix", false, 3),
	}).BuildUpdate()

	require.NotNil(t, update.Embeds)
	require.NotNil(t, update.Components)
	assert.Len(t, *update.Components, 1)
}
