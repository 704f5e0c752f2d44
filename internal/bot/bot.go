package bot

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	tele "gopkg.in/telebot.v4"

	"github.com/kettari/weather-station/internal/entity"
)

type sender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

type Bot struct {
	bot         sender
	destination []Recipient
}

type Recipient struct {
	User     tele.User
	ThreadID int
}

// CreateBot returns [entity.MessageDispatcher] object to send notifications
//   - recipients is a string "chat_id1,thread_id1;chat_id2,thread_id2"
func CreateBot(token, recipients string) (entity.MessageDispatcher, error) {
	destination, err := prepareDestination(recipients)
	if err != nil {
		return nil, err
	}
	pref := tele.Settings{
		Token: token,
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		slog.Error("unable to create bot processor object", "error", err)
		return nil, errors.Wrap(err, "unable to create bot")
	}
	return &Bot{
		bot:         b,
		destination: destination,
	}, nil
}

// prepareDestination parses the recipients list into [gopkg.in/telebot.v4.User] values.
// Thread ID may be omitted.
func prepareDestination(recipients string) ([]Recipient, error) {
	result := make([]Recipient, 0)
	for _, pair := range strings.Split(recipients, ";") {
		pair = strings.TrimSpace(pair)
		if len(pair) == 0 {
			continue
		}
		dst := strings.Split(pair, ",")
		chatID, err := strconv.ParseInt(strings.TrimSpace(dst[0]), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid chat id in %q", pair)
		}
		threadID := 0
		if len(dst) > 1 {
			if threadID, err = strconv.Atoi(strings.TrimSpace(dst[1])); err != nil {
				return nil, errors.Wrapf(err, "invalid thread id in %q", pair)
			}
		}
		result = append(result, Recipient{User: tele.User{ID: chatID}, ThreadID: threadID})
	}
	if len(result) == 0 {
		return nil, errors.New("no notification recipients")
	}
	slog.Debug("recipients prepared", "recipients", result)
	return result, nil
}

// Send notification to all prepared recipients
func (b *Bot) Send(notification []string) (err error) {
	for _, dest := range b.destination {
		for _, txt := range notification {
			if _, err = b.bot.Send(&dest.User, txt, &tele.SendOptions{
				ParseMode: tele.ModeHTML, ThreadID: dest.ThreadID, DisableWebPagePreview: true}); err != nil {
				slog.Error("failed to send notification", "chat_id", dest.User.ID, "thread_id", dest.ThreadID, "notification", txt, "error", err)
				return errors.Wrapf(err, "unable to send notification to chat %d", dest.User.ID)
			}
		}
		slog.Debug("notification sent", "chat_id", dest.User.ID, "thread_id", dest.ThreadID, "parts_count", len(notification))
	}
	return nil
}
