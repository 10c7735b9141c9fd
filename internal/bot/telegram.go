package bot

import (
	"context"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/biovozrast/bioage-bot/internal/metrics"
	"github.com/biovozrast/bioage-bot/internal/quiz"
)

// Bot is the Telegram presentation adapter: it normalizes updates into engine
// events and renders the engine's outbound instructions as chat messages.
type Bot struct {
	api    *tgbotapi.BotAPI
	engine *quiz.Engine
	log    *logrus.Entry
	m      *metrics.Metrics
}

func New(token string, engine *quiz.Engine, log *logrus.Entry, m *metrics.Metrics) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{api: api, engine: engine, log: log, m: m}, nil
}

// Run long-polls for updates until ctx is cancelled. Each message is handled
// in its own goroutine; the engine serializes per-user state internally, so a
// slow send to one chat never blocks another user's quiz.
func (b *Bot) Run(ctx context.Context) {
	b.log.WithField("account", b.api.Self.UserName).Info("telegram bot authorized")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil {
				continue
			}
			go b.handleMessage(update.Message)
		}
	}
}

func (b *Bot) handleMessage(m *tgbotapi.Message) {
	uid := strconv.FormatInt(m.Chat.ID, 10)

	var ev quiz.Event
	switch m.Command() {
	case quiz.CmdStart, quiz.CmdTest, quiz.CmdHelp:
		ev = quiz.Command{UserID: uid, Name: m.Command()}
	default:
		// Unregistered slash commands fall through as plain text, same as
		// any other message.
		ev = quiz.Text{UserID: uid, Content: strings.TrimSpace(m.Text)}
	}

	for _, out := range b.engine.Handle(ev) {
		if out.Delay > 0 {
			time.Sleep(out.Delay)
		}
		b.send(m.Chat.ID, out)
	}
}

func (b *Bot) send(chatID int64, out quiz.Outbound) {
	msg := tgbotapi.NewMessage(chatID, out.Body)
	switch {
	case len(out.Options) > 0:
		rows := make([][]tgbotapi.KeyboardButton, 0, len(out.Options))
		for _, o := range out.Options {
			rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(o)))
		}
		kb := tgbotapi.NewOneTimeReplyKeyboard(rows...)
		msg.ReplyMarkup = kb
	case out.Clear:
		msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(false)
	}

	// A failed send is logged and dropped: the session has already advanced
	// and the user recovers by interacting again (/test).
	if _, err := b.api.Send(msg); err != nil {
		if b.m != nil {
			b.m.SendErrors.WithLabelValues("telegram").Inc()
		}
		b.log.WithError(err).WithField("chat_id", chatID).Error("send message")
	}
}
