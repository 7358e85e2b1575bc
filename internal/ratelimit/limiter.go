// Package ratelimit paces outbound partner calls; each provider gets its
// own token bucket so one slow partner cannot starve the others' budget.
package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

type Limit struct {
	RequestsPerSecond float64
	Burst             int
}

// DefaultLimit applies to providers without an explicit entry.
func DefaultLimit() Limit {
	return Limit{RequestsPerSecond: 10, Burst: 20}
}

type ProviderLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	defaults Limit
}

// NewProviderLimiter builds a limiter with per-provider overrides; any
// provider missing from limits falls back to the default budget.
func NewProviderLimiter(defaults Limit, limits map[string]Limit) *ProviderLimiter {
	p := &ProviderLimiter{
		limiters: make(map[string]*rate.Limiter, len(limits)),
		defaults: defaults,
	}
	for provider, l := range limits {
		p.limiters[provider] = rate.NewLimiter(rate.Limit(l.RequestsPerSecond), l.Burst)
	}
	return p
}

func (p *ProviderLimiter) limiterFor(provider string) *rate.Limiter {
	p.mu.RLock()
	limiter, exists := p.limiters[provider]
	p.mu.RUnlock()

	if exists {
		return limiter
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if limiter, exists = p.limiters[provider]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(p.defaults.RequestsPerSecond), p.defaults.Burst)
	p.limiters[provider] = limiter
	return limiter
}

// Wait blocks until the provider's bucket grants a token or the context
// ends.
func (p *ProviderLimiter) Wait(ctx context.Context, provider string) error {
	return p.limiterFor(provider).Wait(ctx)
}

// Allow reports whether a token is available right now without blocking.
func (p *ProviderLimiter) Allow(provider string) bool {
	return p.limiterFor(provider).Allow()
}
