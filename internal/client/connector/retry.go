package connector

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryConfig ограничивает повторы временных ошибок
type RetryConfig struct {
	InitialInterval time.Duration `mapstructure:"initial_interval"`
	MaxInterval     time.Duration `mapstructure:"max_interval"`
	// MaxRetryAfter ограничивает задержку из Retry-After; 0 без ограничения
	MaxRetryAfter       time.Duration `mapstructure:"max_retry_after"`
	Multiplier          float64       `mapstructure:"multiplier"`
	RandomizationFactor float64       `mapstructure:"randomization_factor"`
	// MaxAttempts общее число попыток, включая первую
	MaxAttempts int `mapstructure:"max_attempts"`
}

// DefaultRetryConfig returns 4 attempts with delays 200ms, 400ms, 800ms (±10%), capped at 5s.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:         4,
		InitialInterval:     200 * time.Millisecond,
		MaxInterval:         5 * time.Second,
		Multiplier:          2.0,
		RandomizationFactor: 0.1,
		MaxRetryAfter:       30 * time.Second,
	}
}

func (c RetryConfig) withDefaults() RetryConfig {
	d := DefaultRetryConfig()
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = d.MaxAttempts
	}
	if c.InitialInterval <= 0 {
		c.InitialInterval = d.InitialInterval
	}
	if c.MaxInterval <= 0 {
		c.MaxInterval = d.MaxInterval
	}
	if c.Multiplier < 1 {
		c.Multiplier = d.Multiplier
	}
	if c.RandomizationFactor < 0 || c.RandomizationFactor >= 1 {
		c.RandomizationFactor = d.RandomizationFactor
	}
	return c
}

// newBackOff собирает политику: экспонента, лимит попыток, Retry-After, контекст.
// WithContext должен быть внешним, иначе RetryNotify не увидит контекст.
func (c RetryConfig) newBackOff(ctx context.Context) (backoff.BackOff, *retryAfterBackOff) {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.InitialInterval
	exp.MaxInterval = c.MaxInterval
	exp.Multiplier = c.Multiplier
	exp.RandomizationFactor = c.RandomizationFactor
	exp.MaxElapsedTime = 0

	ra := &retryAfterBackOff{
		BackOff: backoff.WithMaxRetries(exp, uint64(c.MaxAttempts-1)),
		limit:   c.MaxRetryAfter,
	}
	return backoff.WithContext(ra, ctx), ra
}

// retryAfterBackOff подменяет очередную задержку значением из Retry-After
type retryAfterBackOff struct {
	backoff.BackOff
	mu    sync.Mutex
	next  time.Duration
	limit time.Duration
}

// Override задает задержку перед следующей попыткой
func (b *retryAfterBackOff) Override(d time.Duration) {
	if d <= 0 {
		return
	}
	if b.limit > 0 && d > b.limit {
		d = b.limit
	}
	b.mu.Lock()
	b.next = d
	b.mu.Unlock()
}

// NextBackOff keeps the attempt limit of the wrapped policy and only replaces the delay.
func (b *retryAfterBackOff) NextBackOff() time.Duration {
	d := b.BackOff.NextBackOff()
	if d == backoff.Stop {
		return d
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.next > 0 {
		d, b.next = b.next, 0
	}
	return d
}

// Reset сбрасывает состояние вместе с вложенной политикой
func (b *retryAfterBackOff) Reset() {
	b.BackOff.Reset()
	b.mu.Lock()
	b.next = 0
	b.mu.Unlock()
}
