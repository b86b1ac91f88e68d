package notifierimpl

import (
	"github.com/orgball2608/tumblr-likes-archiver/internal/notifier"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/config"
	"go.uber.org/fx"
)

// Module provides the notifier.Client selected by NOTIFY_BACKEND.
func Module(cfg *config.Config) fx.Option {
	var client any
	switch cfg.Notify.Backend {
	case config.NotifyTelegram:
		client = NewTelegram
	case config.NotifyNone:
		client = func() Nop { return Nop{} }
	default:
		client = NewSlack
	}

	return fx.Module("notifier",
		fx.Provide(
			notifier.NewMessageTemplate,
			fx.Annotate(client, fx.As(new(notifier.Client))),
		),
	)
}
