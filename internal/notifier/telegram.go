package notifier

import (
	"html"
	"log/slog"

	"github.com/kettari/weather-station/internal/entity"
)

// Telegram forwards notifications to the configured chats under a channel name
type Telegram struct {
	name string
	bot  entity.MessageDispatcher
}

var _ entity.Observer = (*Telegram)(nil)

func NewTelegram(name string, bot entity.MessageDispatcher) *Telegram {
	return &Telegram{name: name, bot: bot}
}

func (t *Telegram) Update(notification string) {
	slog.Info("weather update event fired", "channel", t.name, "weather", notification)
	// Messages are sent in HTML parse mode
	text := entity.FormatNotification(html.EscapeString(t.name), html.EscapeString(notification))
	if err := t.bot.Send([]string{text}); err != nil {
		slog.Error("weather update event error", "channel", t.name, "error", err)
	}
}
