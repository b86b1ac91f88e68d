package notifierimpl

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/tumblr-likes-archiver/internal/domain"
	"github.com/orgball2608/tumblr-likes-archiver/internal/notifier"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/errors"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/formatter"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/logger"
)

// Sender is the part of tgbotapi.BotAPI the notifier uses.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramImpl struct {
	TgBot   Sender
	Channel string
	Logger  logger.Logger
}

func NewTelegram(opts Opts) (*TelegramImpl, error) {
	tgBot, err := tgbotapi.NewBotAPI(opts.Config.Telegram.Token)
	if err != nil {
		opts.Logger.Error("Error creating bot", "Error", err)
		return nil, err
	}

	return &TelegramImpl{
		TgBot:   tgBot,
		Channel: "@" + opts.Config.Telegram.Channel,
		Logger:  opts.Logger.WithComponent("TelegramNotifier"),
	}, nil
}

var _ notifier.Client = (*TelegramImpl)(nil)

// Notify sends the message text to the channel, headed by the sender name in bold.
func (tg *TelegramImpl) Notify(_ context.Context, msg *domain.Message) error {
	if msg == nil {
		return nil
	}

	newMsg := tgbotapi.NewMessageToChannel(tg.Channel, renderTelegram(msg))
	newMsg.ParseMode = tgbotapi.ModeMarkdownV2

	if _, err := tg.TgBot.Send(newMsg); err != nil {
		tg.Logger.Error("Error sending message to channel",
			"channel", tg.Channel,
			"error", err)
		return errors.Notification(err, "error sending telegram message")
	}

	tg.Logger.Debug("Message sent to channel", "channel", tg.Channel)
	return nil
}

func renderTelegram(msg *domain.Message) string {
	if msg.Username == "" {
		return formatter.EscapeMarkdownV2(msg.Text)
	}
	return fmt.Sprintf("*%s*\n%s", formatter.EscapeMarkdownV2(msg.Username), formatter.EscapeMarkdownV2(msg.Text))
}
