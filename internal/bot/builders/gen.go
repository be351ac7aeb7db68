package builders

import (
	"fmt"
	"regexp"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"

	"github.com/genvault/genvault/internal/bot/constants"
	"github.com/genvault/genvault/internal/state"
)

// customEmojiPattern matches Discord custom emoji references like
// <:name:123456789> or <a:name:123456789>.
var customEmojiPattern = regexp.MustCompile(`<a?:(\w+):(\d+)>`)

// ServiceStock pairs a service with its current available account count.
type ServiceStock struct {
	Service   *state.Service
	Available int
}

// GenPanelBuilder creates the visual layout for the account generator panel:
// one button per service labeled with its live stock count, free services
// first, VIP services after.
type GenPanelBuilder struct {
	services []ServiceStock
}

// NewGenPanelBuilder creates a new generator panel builder.
func NewGenPanelBuilder(services []ServiceStock) *GenPanelBuilder {
	return &GenPanelBuilder{services: services}
}

// Build creates the panel message.
func (b *GenPanelBuilder) Build() discord.MessageCreate {
	builder := discord.NewMessageCreateBuilder().
		SetEmbeds(b.embed())

	for _, row := range b.buttonRows() {
		builder.AddActionRow(row...)
	}

	return builder.Build()
}

// BuildUpdate creates the payload used to refresh an existing panel message.
func (b *GenPanelBuilder) BuildUpdate() discord.MessageUpdate {
	builder := discord.NewMessageUpdateBuilder().
		SetEmbeds(b.embed())

	rows := b.buttonRows()
	components := make([]discord.ContainerComponent, 0, len(rows))
	for _, row := range rows {
		components = append(components, discord.NewActionRow(row...))
	}
	builder.SetContainerComponents(components...)

	return builder.Build()
}

func (b *GenPanelBuilder) embed() discord.Embed {
	builder := discord.NewEmbedBuilder().
		SetTitle("Account Generator").
		SetColor(constants.DefaultEmbedColor)

	if len(b.services) == 0 {
		builder.SetDescription("No services available right now")
		return builder.Build()
	}

	var free, vip int
	for _, s := range b.services {
		if s.Service.IsVIPOnly {
			vip++
		} else {
			free++
		}
	}

	builder.SetDescription(fmt.Sprintf(
		"Pick a service below to generate an account.\n\n**Free services:** %d\n**VIP services:** %d",
		free, vip))

	return builder.Build()
}

// buttonRows lays out the service buttons, free section first, in rows of at
// most five.
func (b *GenPanelBuilder) buttonRows() [][]discord.InteractiveComponent {
	var free, vip []discord.InteractiveComponent

	for _, s := range b.services {
		hasStock := s.Available > 0
		label := fmt.Sprintf("%s (%d)", s.Service.Name, s.Available)

		var button discord.ButtonComponent
		switch {
		case !hasStock:
			button = discord.NewDangerButton(label, constants.GenServiceButtonPrefix+s.Service.ID).
				WithDisabled(true)
		case s.Service.IsVIPOnly:
			button = discord.NewPrimaryButton(label, constants.GenServiceButtonPrefix+s.Service.ID)
		default:
			button = discord.NewSuccessButton(label, constants.GenServiceButtonPrefix+s.Service.ID)
		}

		if emoji := parseEmoji(s.Service.Emoji); emoji != nil {
			button = button.WithEmoji(*emoji)
		}

		if s.Service.IsVIPOnly {
			vip = append(vip, button)
		} else {
			free = append(free, button)
		}
	}

	var rows [][]discord.InteractiveComponent
	rows = append(rows, chunkButtons(free)...)
	rows = append(rows, chunkButtons(vip)...)
	return rows
}

// chunkButtons splits buttons into rows of at most five.
func chunkButtons(buttons []discord.InteractiveComponent) [][]discord.InteractiveComponent {
	var rows [][]discord.InteractiveComponent
	for len(buttons) > 0 {
		n := min(len(buttons), 5)
		rows = append(rows, buttons[:n])
		buttons = buttons[n:]
	}
	return rows
}

// parseEmoji turns a service emoji string into a component emoji. Custom
// server emoji references resolve to their id, anything else is treated as a
// unicode emoji. Empty input yields nil.
func parseEmoji(raw string) *discord.ComponentEmoji {
	if raw == "" {
		return nil
	}

	if match := customEmojiPattern.FindStringSubmatch(raw); match != nil {
		id, err := snowflake.Parse(match[2])
		if err != nil {
			return nil
		}
		return &discord.ComponentEmoji{ID: id, Name: match[1]}
	}

	return &discord.ComponentEmoji{Name: raw}
}
