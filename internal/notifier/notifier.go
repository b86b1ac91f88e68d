package notifier

import (
	"context"

	"github.com/orgball2608/tumblr-likes-archiver/internal/domain"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/config"
)

//go:generate go run go.uber.org/mock/mockgen -source=notifier.go -destination=mocks/mock.go
type Client interface {
	// Notify posts msg to the chat channel. A nil msg is a no-op.
	Notify(ctx context.Context, msg *domain.Message) error
}

// MessageTemplate stamps the chat identity on message texts.
type MessageTemplate struct {
	IconURL  string
	Username string
	Channel  string
	Disabled bool
}

func NewMessageTemplate(cfg *config.Config) MessageTemplate {
	return MessageTemplate{
		IconURL:  cfg.Slack.IconURL,
		Username: cfg.Slack.Username,
		Channel:  cfg.Slack.Channel,
		Disabled: cfg.Notify.Backend == config.NotifyNone,
	}
}

// Build returns nil when notifications are disabled.
func (t MessageTemplate) Build(text string) *domain.Message {
	if t.Disabled {
		return nil
	}
	return &domain.Message{
		IconURL:  t.IconURL,
		Username: t.Username,
		Channel:  t.Channel,
		Text:     text,
	}
}
