package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/orgball2608/tumblr-likes-archiver/internal/archiver"
	"github.com/orgball2608/tumblr-likes-archiver/internal/archiver/archiverimpl"
	"github.com/orgball2608/tumblr-likes-archiver/internal/fetcher"
	"github.com/orgball2608/tumblr-likes-archiver/internal/fetcher/fetcherimpl"
	"github.com/orgball2608/tumblr-likes-archiver/internal/notifier/notifierimpl"
	"github.com/orgball2608/tumblr-likes-archiver/internal/repositories/ledger"
	"github.com/orgball2608/tumblr-likes-archiver/internal/resolver"
	"github.com/orgball2608/tumblr-likes-archiver/internal/storage/storageimpl"
	"github.com/orgball2608/tumblr-likes-archiver/internal/tumblr"
	"github.com/orgball2608/tumblr-likes-archiver/internal/tumblr/tumblrimpl"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/config"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/logger"
	"go.uber.org/fx"
)

// Module wires the pipeline for cfg. Backends are picked from the config;
// the health endpoint is only served when runs are scheduled.
func Module(cfg *config.Config) fx.Option {
	opts := []fx.Option{
		fx.Supply(cfg),
		fx.Provide(
			resolver.New,
			fx.Annotate(
				tumblrimpl.New,
				fx.As(new(tumblr.Client)),
			),
			fx.Annotate(
				fetcherimpl.New,
				fx.As(new(fetcher.Client)),
			),
			fx.Annotate(
				archiverimpl.New,
				fx.As(new(archiver.Client)),
			),
		),
		storageimpl.Module(cfg),
		notifierimpl.Module(cfg),
		ledger.Module(cfg),
	}

	if cfg.App.Schedule != "" {
		opts = append(opts, fx.Invoke(startHttpServer))
	}

	return fx.Options(opts...)
}

func startHttpServer(lc fx.Lifecycle, log logger.Logger, cfg *config.Config) {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		healthCheckHandler(w, r, log)
	})
	srv := &http.Server{Addr: fmt.Sprintf(":%d", cfg.App.Port), Handler: mux}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", srv.Addr, err)
			}
			log.Info(fmt.Sprintf("Starting server on :%d", cfg.App.Port))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("Server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request, logger logger.Logger) {
	logger.Debug("Health check request received", "Method", r.Method, "URL", r.URL.String())
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Error("Failed to write response", "Error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
