package handlers

import (
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/snowflake/v2"
	"go.uber.org/zap"

	"github.com/genvault/genvault/internal/bot/builders"
)

// genStock snapshots every service with its available account count, in the
// order the services were added.
func (h *Handler) genStock() []builders.ServiceStock {
	services := h.state.Services()
	stock := make([]builders.ServiceStock, 0, len(services))
	for _, service := range services {
		stock = append(stock, builders.ServiceStock{
			Service:   service,
			Available: h.state.AvailableAccountCount(service.ID),
		})
	}
	return stock
}

// RefreshGenPanels rewrites every registered generator panel with current
// stock counts. Panels whose message is gone are dropped from the registry.
func (h *Handler) RefreshGenPanels(client bot.Client) {
	panels := h.state.PanelMessages()
	if len(panels) == 0 {
		return
	}

	update := builders.NewGenPanelBuilder(h.genStock()).BuildUpdate()
	for messageID, channelID := range panels {
		mid, err := snowflake.Parse(messageID)
		if err != nil {
			h.state.RemovePanelMessage(messageID)
			continue
		}
		cid, err := snowflake.Parse(channelID)
		if err != nil {
			h.state.RemovePanelMessage(messageID)
			continue
		}

		if _, err := client.Rest().UpdateMessage(cid, mid, update); err != nil {
			h.logger.Debug("Dropping unreachable generator panel",
				zap.String("messageID", messageID),
				zap.Error(err))
			h.state.RemovePanelMessage(messageID)
		}
	}
}
