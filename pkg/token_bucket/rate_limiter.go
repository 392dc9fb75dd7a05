package token_bucket

import (
	"sync"
	"time"
)

// Limiter решает, пропустить запрос или отклонить.
type Limiter interface {
	Allow() bool
}

// TokenBucket хранит дробное число токенов, поэтому медленное пополнение не теряется на округлении.
type TokenBucket struct {
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
	now        func() time.Time
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return newTokenBucket(capacity, refillRate, time.Now)
}

func newTokenBucket(capacity int, refillRate float64, now func() time.Time) *TokenBucket {
	return &TokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		lastRefill: now(),
		now:        now,
	}
}

func (t *TokenBucket) Allow() bool {
	return t.AllowN(1)
}

// AllowN забирает n токенов разом или не забирает ни одного.
func (t *TokenBucket) AllowN(n int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if n <= 0 {
		return true
	}
	if t.tokens >= float64(n) {
		t.tokens -= float64(n)
		return true
	}
	return false
}

func (t *TokenBucket) refill() {
	now := t.now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	t.tokens = min(t.capacity, t.tokens+elapsed*t.refillRate)
	t.lastRefill = now
}
