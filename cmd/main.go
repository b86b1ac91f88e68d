package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/orgball2608/tumblr-likes-archiver/internal/app"
	"github.com/orgball2608/tumblr-likes-archiver/internal/archiver"
	"github.com/orgball2608/tumblr-likes-archiver/internal/domain"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/config"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/logger"
	"go.uber.org/fx"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(logger.Opts{Env: cfg.App.Env, SentryDSN: cfg.App.SentryUrl})

	var client archiver.Client
	application := fx.New(
		fx.Logger(log),
		logger.FxOption(log),
		app.Module(cfg),
		fx.Populate(&client),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Start the application
	if err := application.Start(ctx); err != nil {
		log.Error("Failed to start application", "error", err)
		os.Exit(1)
	}

	code := 0
	if cfg.App.Schedule != "" {
		if err := client.ScheduleRuns(ctx); err != nil {
			log.Error("Failed to schedule runs", "error", err)
			code = 1
		} else {
			<-ctx.Done()
		}
	} else {
		code = runOnce(ctx, log, cfg, client)
	}

	if err := application.Stop(context.Background()); err != nil {
		log.Error("Failed to stop application", "error", err)
		code = 1
	}
	if code != 0 {
		log.Flush(2 * time.Second)
		os.Exit(code)
	}
}

func runOnce(ctx context.Context, log logger.Logger, cfg *config.Config, client archiver.Client) int {
	event, err := domain.ParseEvent(cfg.App.Event)
	if err != nil {
		log.Error("Invalid APP_EVENT", "error", err)
		return 1
	}

	summary, err := client.Handle(ctx, event)
	if err != nil {
		log.Error("Run finished with errors", "summary", summary, "error", err)
		return 1
	}
	log.Info("Run finished", "summary", summary)
	return 0
}
