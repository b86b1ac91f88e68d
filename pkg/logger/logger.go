package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
	slogzerolog "github.com/samber/slog-zerolog/v2"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	With(args ...any) Logger
	WithComponent(name string) Logger

	// Printf lets the logger serve as fx.Printer.
	Printf(format string, args ...any)
}

type Opts struct {
	Env       string
	SentryDSN string
	// Writer defaults to os.Stdout.
	Writer io.Writer
}

type Impl struct {
	log    *slog.Logger
	sentry bool
}

var _ Logger = (*Impl)(nil)

func New(opts Opts) *Impl {
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}

	level := slog.LevelInfo
	var zl zerolog.Logger
	if opts.Env == "" || opts.Env == "development" {
		level = slog.LevelDebug
		zl = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339})
	} else {
		zl = zerolog.New(w)
	}
	zl = zl.With().Timestamp().Logger()

	handlers := []slog.Handler{
		slogzerolog.Option{Level: level, Logger: &zl}.NewZerologHandler(),
	}

	impl := &Impl{}
	if opts.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         opts.SentryDSN,
			Environment: opts.Env,
		})
		if err == nil {
			impl.sentry = true
			handlers = append(handlers, slogsentry.Option{Level: slog.LevelError}.NewSentryHandler())
		} else {
			fmt.Fprintf(w, "sentry init failed: %v\n", err)
		}
	}

	impl.log = slog.New(slogmulti.Fanout(handlers...))
	return impl
}

// NewNop discards every record.
func NewNop() *Impl {
	return New(Opts{Env: "test", Writer: io.Discard})
}

func (l *Impl) Debug(msg string, args ...any) { l.log.Debug(msg, args...) }
func (l *Impl) Info(msg string, args ...any)  { l.log.Info(msg, args...) }
func (l *Impl) Warn(msg string, args ...any)  { l.log.Warn(msg, args...) }
func (l *Impl) Error(msg string, args ...any) { l.log.Error(msg, args...) }

func (l *Impl) With(args ...any) Logger {
	return &Impl{log: l.log.With(args...), sentry: l.sentry}
}

func (l *Impl) WithComponent(name string) Logger {
	return l.With("component", name)
}

func (l *Impl) Printf(format string, args ...any) {
	l.log.Log(context.Background(), slog.LevelDebug, fmt.Sprintf(format, args...))
}

// Flush waits for buffered Sentry events.
func (l *Impl) Flush(timeout time.Duration) {
	if l.sentry {
		sentry.Flush(timeout)
	}
}
