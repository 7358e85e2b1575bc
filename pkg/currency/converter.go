// Package currency converts and formats money amounts for display.
// Rates are approximate fallbacks; a live-rate feed can overwrite them
// through SetRate without changing any call site.
package currency

import (
	"fmt"
	"strings"
	"sync"
)

// fallbackRates expresses one USD in each currency. Cross rates derive
// through USD, so USD->EUR is 0.92 and EUR->USD is 1/0.92.
var fallbackRates = map[string]float64{
	"USD": 1,
	"EUR": 0.92,
	"GBP": 0.79,
	"JPY": 149.5,
	"AUD": 1.52,
	"CAD": 1.36,
	"CHF": 0.88,
	"SGD": 1.34,
	"INR": 83.2,
	"THB": 35.8,
	"MXN": 17.1,
	"IDR": 15600,
	"KRW": 1330,
	"VND": 24500,
}

// UnknownRatePairError reports a conversion with no cached and no fallback
// rate. Callers must not treat it as a 1:1 conversion.
type UnknownRatePairError struct {
	From string
	To   string
}

func (e *UnknownRatePairError) Error() string {
	return fmt.Sprintf("no exchange rate for %s->%s", e.From, e.To)
}

type pairKey struct {
	from string
	to   string
}

// Converter owns a process-scoped rate cache. Safe for concurrent use;
// concurrent lookups of the same pair last-writer-win on an identical value.
type Converter struct {
	mu    sync.RWMutex
	cache map[pairKey]float64
}

func NewConverter() *Converter {
	return &Converter{cache: make(map[pairKey]float64)}
}

// Convert resolves a rate from the cache, falling back to the static table
// and caching the result. Identical currencies convert as identity.
func (c *Converter) Convert(amount float64, from, to string) (float64, error) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)
	if from == to {
		return amount, nil
	}

	key := pairKey{from, to}
	c.mu.RLock()
	rate, ok := c.cache[key]
	c.mu.RUnlock()
	if ok {
		return amount * rate, nil
	}

	fromUSD, okFrom := fallbackRates[from]
	toUSD, okTo := fallbackRates[to]
	if !okFrom || !okTo {
		return 0, &UnknownRatePairError{From: from, To: to}
	}
	rate = toUSD / fromUSD

	c.mu.Lock()
	c.cache[key] = rate
	c.mu.Unlock()

	return amount * rate, nil
}

// ConvertAt applies a caller-supplied rate. The rate is not cached. A
// same-currency conversion returns the amount unchanged regardless of rate.
func (c *Converter) ConvertAt(amount float64, from, to string, rate float64) float64 {
	if strings.EqualFold(from, to) {
		return amount
	}
	return amount * rate
}

// CachedRate reports the cached rate for a pair without performing any
// lookup. Identical currencies always resolve to 1 and never occupy a
// cache entry.
func (c *Converter) CachedRate(from, to string) (float64, bool) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)
	if from == to {
		return 1, true
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	rate, ok := c.cache[pairKey{from, to}]
	return rate, ok
}

// SetRate stores a resolved rate, overriding the fallback table for the
// pair. Intended for callers holding live exchange-rate data.
func (c *Converter) SetRate(from, to string, rate float64) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)
	if from == to || rate <= 0 {
		return
	}
	c.mu.Lock()
	c.cache[pairKey{from, to}] = rate
	c.mu.Unlock()
}

func (c *Converter) ClearCache() {
	c.mu.Lock()
	c.cache = make(map[pairKey]float64)
	c.mu.Unlock()
}
