package notifierimpl

import (
	"context"
	"net/http"

	"github.com/orgball2608/tumblr-likes-archiver/internal/domain"
	"github.com/orgball2608/tumblr-likes-archiver/internal/notifier"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/config"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/errors"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/logger"
	"github.com/slack-go/slack"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

// SlackImpl posts messages to an incoming webhook.
type SlackImpl struct {
	webhookURL string
	httpClient *http.Client
	logger     logger.Logger
}

func NewSlack(opts Opts) *SlackImpl {
	return &SlackImpl{
		webhookURL: opts.Config.Slack.WebhookURL,
		httpClient: &http.Client{},
		logger:     opts.Logger.WithComponent("SlackNotifier"),
	}
}

var _ notifier.Client = (*SlackImpl)(nil)

// Notify posts msg as is. slack-go also sends replace_original and
// delete_original, both false, which incoming webhooks ignore.
func (s *SlackImpl) Notify(ctx context.Context, msg *domain.Message) error {
	if msg == nil {
		return nil
	}

	payload := &slack.WebhookMessage{
		IconURL:  msg.IconURL,
		Username: msg.Username,
		Channel:  msg.Channel,
		Text:     msg.Text,
	}

	if err := slack.PostWebhookCustomHTTPContext(ctx, s.webhookURL, s.httpClient, payload); err != nil {
		s.logger.Error("Error posting to slack", "channel", msg.Channel, "error", err)
		return errors.Notification(err, "error posting slack")
	}

	s.logger.Debug("Message posted to slack", "channel", msg.Channel)
	return nil
}
