package builders

import (
	"fmt"

	"github.com/disgoorg/disgo/discord"

	"github.com/genvault/genvault/internal/bot/constants"
)

// TicketPanelBuilder creates the visual layout for the ticket creation panel.
type TicketPanelBuilder struct{}

// NewTicketPanelBuilder creates a new ticket panel builder.
func NewTicketPanelBuilder() *TicketPanelBuilder {
	return &TicketPanelBuilder{}
}

// Build creates the panel message.
func (b *TicketPanelBuilder) Build() discord.MessageCreate {
	embed := discord.NewEmbedBuilder().
		SetTitle("Open a ticket").
		SetDescription("**Limit:** 1 active ticket per user\n"+
			"**Cooldown:** 5 minutes (1 minute for VIP)\n\n"+
			"Click the button below to open a ticket.").
		SetColor(constants.DefaultEmbedColor).
		Build()

	return discord.NewMessageCreateBuilder().
		SetEmbeds(embed).
		AddActionRow(
			discord.NewPrimaryButton("Open a ticket", constants.TicketCreateButtonCustomID),
		).
		Build()
}

// TicketWelcomeBuilder creates the first message posted inside a freshly
// created ticket channel.
type TicketWelcomeBuilder struct {
	userID string
}

// NewTicketWelcomeBuilder creates a new ticket welcome builder.
func NewTicketWelcomeBuilder(userID string) *TicketWelcomeBuilder {
	return &TicketWelcomeBuilder{userID: userID}
}

// Build creates the welcome message.
func (b *TicketWelcomeBuilder) Build() discord.MessageCreate {
	embed := discord.NewEmbedBuilder().
		SetTitle("Code validation").
		SetDescription(fmt.Sprintf(
			"Enter the code you received when generating your account (%d characters).",
			constants.CodeLength)).
		SetColor(constants.DefaultEmbedColor).
		Build()

	return discord.NewMessageCreateBuilder().
		SetContent(fmt.Sprintf("<@%s>", b.userID)).
		SetEmbeds(embed).
		AddActionRow(
			discord.NewPrimaryButton("Submit code", constants.TicketSubmitCodeButtonCustomID),
			discord.NewDangerButton("Close ticket", constants.TicketCloseButtonCustomID),
		).
		Build()
}
