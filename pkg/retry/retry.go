package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/orgball2608/fb-post-importer/pkg/logger"
)

type Config struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
	// IsPermanent stops the retries early for errors it accepts. Nil retries
	// everything except errors wrapped with Permanent.
	IsPermanent func(error) bool
}

func DefaultConfig() Config {
	return Config{
		MaxRetries:      3,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		Multiplier:      1.5,
	}
}

// Permanent marks err as not worth retrying.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

// Do runs operation until it succeeds, fails permanently, runs out of
// retries or ctx is done. The last operation error is returned.
func Do(ctx context.Context, log logger.Logger, operationName string, operation func() error, cfg Config) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = cfg.InitialInterval
	bo.MaxInterval = cfg.MaxInterval
	bo.Multiplier = cfg.Multiplier
	bo.MaxElapsedTime = 0
	bo.Reset()

	attempt := 0
	op := func() error {
		attempt++
		err := operation()
		if err != nil && cfg.IsPermanent != nil && cfg.IsPermanent(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, next time.Duration) {
		log.Warn("Operation failed, retrying",
			"operation", operationName,
			"attempt", attempt,
			"error", err,
			"next_attempt_in", next.Round(time.Millisecond).String(),
		)
	}

	b := backoff.WithContext(backoff.WithMaxRetries(bo, cfg.MaxRetries), ctx)
	return backoff.RetryNotify(op, b, notify)
}
