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
	WithComponent(component string) Logger
}

type Opts struct {
	Env       string
	Debug     bool
	SentryDSN string
	Output    io.Writer
}

type Impl struct {
	log    *slog.Logger
	sentry bool
}

// New builds a slog logger that writes human readable output through zerolog
// and forwards errors to Sentry when a DSN is configured.
func New(opts Opts) *Impl {
	out, noColor := opts.Output, true
	if out == nil {
		out, noColor = os.Stderr, false
	}

	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}

	zl := zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: noColor, TimeFormat: time.TimeOnly}).With().Timestamp().Logger()
	handlers := []slog.Handler{
		slogzerolog.Option{Level: level, Logger: &zl}.NewZerologHandler(),
	}

	useSentry := false
	if opts.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         opts.SentryDSN,
			Environment: opts.Env,
		})
		if err != nil {
			fmt.Fprintf(out, "sentry init failed: %v\n", err)
		} else {
			useSentry = true
			handlers = append(handlers, slogsentry.Option{Level: slog.LevelError}.NewSentryHandler())
		}
	}

	return &Impl{
		log:    slog.New(slogmulti.Fanout(handlers...)),
		sentry: useSentry,
	}
}

// Nop discards everything. Used by tests.
func Nop() *Impl {
	return &Impl{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func (l *Impl) Debug(msg string, args ...any) {
	l.log.Debug(msg, args...)
}

func (l *Impl) Info(msg string, args ...any) {
	l.log.Info(msg, args...)
}

func (l *Impl) Warn(msg string, args ...any) {
	l.log.Warn(msg, args...)
}

func (l *Impl) Error(msg string, args ...any) {
	l.log.Error(msg, args...)
}

func (l *Impl) WithComponent(component string) Logger {
	return &Impl{
		log:    l.log.With("component", component),
		sentry: l.sentry,
	}
}

// Printf lets the logger serve as an fx.Printer.
func (l *Impl) Printf(format string, args ...any) {
	l.log.Debug(fmt.Sprintf(format, args...))
}

// Flush waits for buffered Sentry events.
func (l *Impl) Flush(ctx context.Context) {
	if !l.sentry {
		return
	}
	timeout := 2 * time.Second
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	sentry.Flush(timeout)
}
