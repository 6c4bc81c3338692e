package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/masarify/authsvc/internal/pkg/logger"
)

// Operation is a unit of work that may be attempted more than once
type Operation func(ctx context.Context) error

// Config holds retry configuration
type Config struct {
	MaxRetries int           // Attempts after the first one
	BaseDelay  time.Duration // Delay before the first retry
	MaxDelay   time.Duration // Upper bound for a single delay
	Multiplier float64       // Exponential backoff multiplier
	Jitter     bool          // Adds up to 10% random delay
	Retryable  func(error) bool
}

// DefaultConfig returns the backoff used while waiting for the auth store at startup
func DefaultConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  500 * time.Millisecond,
		MaxDelay:   10 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
		Retryable: func(error) bool {
			return true
		},
	}
}

// Retrier runs an operation with exponential backoff
type Retrier struct {
	name   string
	config Config
	sleep  func(ctx context.Context, d time.Duration) error
}

// New creates a retrier. name identifies the operation in logs.
func New(name string, config Config) *Retrier {
	if config.Multiplier < 1 {
		config.Multiplier = 1
	}
	if config.Retryable == nil {
		config.Retryable = func(error) bool { return true }
	}
	return &Retrier{name: name, config: config, sleep: sleepCtx}
}

// Execute runs fn until it succeeds, returns a non-retryable error, or the retries are spent
func (r *Retrier) Execute(ctx context.Context, fn Operation) error {
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn(ctx)
		if err == nil {
			if attempt > 0 {
				logger.InfoCtx(ctx, "Operation succeeded after retries",
					logger.String("operation", r.name),
					logger.Int("attempts", attempt+1))
			}
			return nil
		}
		lastErr = err

		if !r.config.Retryable(err) {
			logger.DebugCtx(ctx, "Error is not retryable",
				logger.String("operation", r.name),
				logger.Int("attempt", attempt+1),
				logger.ErrorField(err))
			return err
		}

		if attempt == r.config.MaxRetries {
			break
		}

		delay := r.delay(attempt)
		logger.WarnCtx(ctx, "Operation failed, retrying",
			logger.String("operation", r.name),
			logger.Int("attempt", attempt+1),
			logger.Int("max_retries", r.config.MaxRetries),
			logger.Duration("delay", delay),
			logger.ErrorField(err))

		if err := r.sleep(ctx, delay); err != nil {
			return err
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", r.name, r.config.MaxRetries+1, lastErr)
}

func (r *Retrier) delay(attempt int) time.Duration {
	delay := float64(r.config.BaseDelay) * math.Pow(r.config.Multiplier, float64(attempt))
	if r.config.MaxDelay > 0 && delay > float64(r.config.MaxDelay) {
		delay = float64(r.config.MaxDelay)
	}
	if r.config.Jitter {
		delay += delay * 0.1 * rand.Float64()
	}
	return time.Duration(delay)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
