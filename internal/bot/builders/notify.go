package builders

import (
	"fmt"
	"time"

	"github.com/disgoorg/disgo/discord"

	"github.com/genvault/genvault/internal/bot/constants"
)

// RestockBuilder creates the announcement posted when a service receives new
// stock.
type RestockBuilder struct {
	serviceName string
	count       int
	isVIPOnly   bool
	pingRoleID  string
}

// NewRestockBuilder creates a new restock announcement builder.
func NewRestockBuilder(serviceName string, count int, isVIPOnly bool, pingRoleID string) *RestockBuilder {
	return &RestockBuilder{
		serviceName: serviceName,
		count:       count,
		isVIPOnly:   isVIPOnly,
		pingRoleID:  pingRoleID,
	}
}

// Build creates the announcement message.
func (b *RestockBuilder) Build() discord.MessageCreate {
	tier := "Free"
	if b.isVIPOnly {
		tier = "VIP only"
	}

	embed := discord.NewEmbedBuilder().
		SetTitle("New stock available").
		SetColor(constants.DefaultEmbedColor).
		AddField("Service", b.serviceName, true).
		AddField("Quantity", fmt.Sprintf("%d accounts", b.count), true).
		AddField("Type", tier, true).
		SetTimestamp(time.Now()).
		Build()

	builder := discord.NewMessageCreateBuilder().SetEmbeds(embed)
	if b.pingRoleID != "" {
		builder.SetContent(fmt.Sprintf("<@&%s>", b.pingRoleID))
	}

	return builder.Build()
}

// RedemptionLogBuilder creates the log entry posted after a successful code
// redemption.
type RedemptionLogBuilder struct {
	userID      string
	serviceName string
}

// NewRedemptionLogBuilder creates a new redemption log builder.
func NewRedemptionLogBuilder(userID, serviceName string) *RedemptionLogBuilder {
	return &RedemptionLogBuilder{userID: userID, serviceName: serviceName}
}

// Build creates the log message.
func (b *RedemptionLogBuilder) Build() discord.MessageCreate {
	embed := discord.NewEmbedBuilder().
		SetTitle("Account generated").
		SetColor(constants.DefaultEmbedColor).
		AddField("User", fmt.Sprintf("<@%s>", b.userID), true).
		AddField("Service", b.serviceName, true).
		SetTimestamp(time.Now()).
		Build()

	return discord.NewMessageCreateBuilder().SetEmbeds(embed).Build()
}
