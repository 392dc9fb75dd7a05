package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

// NotifyFunc вызывается перед каждой повторной попыткой.
type NotifyFunc func(err error, next time.Duration)

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// 0 - без ограничения по числу попыток, только MaxElapsedTime
	MaxRetries uint64

	// Если nil - ретраятся все ошибки, если не nil - только те где функция вернула true
	ShouldRetry ShouldRetryFunc

	Notify NotifyFunc
}

// WithMaxAttempts ограничивает общее число вызовов fn. При n <= 1 повторов нет вовсе,
// нулевой MaxRetries здесь не означает "без ограничения".
func (c Config) WithMaxAttempts(n int) Config {
	if n <= 1 {
		c.MaxRetries = 0
		c.ShouldRetry = func(error) bool { return false }
		return c
	}
	c.MaxRetries = uint64(n - 1)
	return c
}
