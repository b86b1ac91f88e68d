package logger

import (
	"context"
	"time"

	"go.uber.org/fx"
)

// FxOption hands the process logger to the graph and flushes Sentry on stop.
func FxOption(log *Impl) fx.Option {
	return fx.Options(
		fx.Provide(func() Logger { return log }),
		fx.Invoke(func(lc fx.Lifecycle) {
			lc.Append(fx.Hook{
				OnStop: func(context.Context) error {
					log.Flush(2 * time.Second)
					return nil
				},
			})
		}),
	)
}
