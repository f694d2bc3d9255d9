package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

// NotifyFunc is called after every failed attempt with the delay before the next one.
type NotifyFunc func(err error, next time.Duration)

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// nil retries every error, otherwise only errors for which it returns true
	ShouldRetry ShouldRetryFunc
	Notify      NotifyFunc
}

// ConnectConfig is the schedule used when dialing infrastructure at startup.
func ConnectConfig() Config {
	return Config{
		InitialInterval: time.Second,
		MaxInterval:     30 * time.Second,
		MaxElapsedTime:  2 * time.Minute,
		Randomization:   0.5,
		Multiplier:      2,
	}
}
