// Package aggregator fans a search out to every provider serving the
// requested vertical and merges the results.
package aggregator

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/faredeck/faredeck/internal/models"
	"github.com/faredeck/faredeck/internal/providers"
	"github.com/faredeck/faredeck/internal/ratelimit"
)

type Config struct {
	Timeout     time.Duration
	MaxRetries  int
	RetryDelays []time.Duration
	RateLimiter *ratelimit.ProviderLimiter
}

type Aggregator struct {
	providers []providers.Provider
	config    Config
	log       *zap.Logger
}

type Result struct {
	Offers             []models.Offer
	ProvidersQueried   int
	ProvidersSucceeded int
	ProvidersFailed    int
	FailedProviders    []string
}

func NewAggregator(providerList []providers.Provider, config Config, log *zap.Logger) *Aggregator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Aggregator{
		providers: providerList,
		config:    config,
		log:       log,
	}
}

func (a *Aggregator) Search(ctx context.Context, req models.SearchRequest) (*Result, error) {
	searchCtx, cancel := context.WithTimeout(ctx, a.config.Timeout)
	defer cancel()

	matching := a.providersFor(req.Vertical)

	result := &Result{
		Offers:           make([]models.Offer, 0),
		ProvidersQueried: len(matching),
	}

	type providerResult struct {
		provider string
		offers   []models.Offer
		err      error
	}

	resultCh := make(chan providerResult, len(matching))
	var wg sync.WaitGroup

	for _, p := range matching {
		wg.Add(1)
		go func(provider providers.Provider) {
			defer wg.Done()

			if a.config.RateLimiter != nil {
				if err := a.config.RateLimiter.Wait(searchCtx, provider.Name()); err != nil {
					resultCh <- providerResult{
						provider: provider.Name(),
						err:      err,
					}
					return
				}
			}

			offers, err := a.searchWithRetry(searchCtx, provider, req)
			resultCh <- providerResult{
				provider: provider.Name(),
				offers:   offers,
				err:      err,
			}
		}(p)
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	for pr := range resultCh {
		if pr.err != nil {
			a.log.Warn("provider failed",
				zap.String("provider", pr.provider),
				zap.Error(pr.err))
			result.ProvidersFailed++
			result.FailedProviders = append(result.FailedProviders, pr.provider)
		} else {
			result.ProvidersSucceeded++
			result.Offers = append(result.Offers, pr.offers...)
		}
	}

	return result, nil
}

func (a *Aggregator) providersFor(vertical models.Vertical) []providers.Provider {
	matching := make([]providers.Provider, 0, len(a.providers))
	for _, p := range a.providers {
		if p.Vertical() == vertical {
			matching = append(matching, p)
		}
	}
	return matching
}

func (a *Aggregator) searchWithRetry(ctx context.Context, provider providers.Provider, req models.SearchRequest) ([]models.Offer, error) {
	var lastErr error

	for attempt := 0; attempt <= a.config.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if attempt > 0 {
			delayIdx := attempt - 1
			if delayIdx >= len(a.config.RetryDelays) {
				delayIdx = len(a.config.RetryDelays) - 1
			}
			delay := a.config.RetryDelays[delayIdx]

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		offers, err := provider.Search(ctx, req)
		if err == nil {
			return offers, nil
		}

		lastErr = err
		a.log.Debug("provider attempt failed",
			zap.String("provider", provider.Name()),
			zap.Int("attempt", attempt+1),
			zap.Error(err))
	}

	return nil, lastErr
}
