package main

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/faredeck/faredeck/internal/aggregator"
	"github.com/faredeck/faredeck/internal/cache"
	"github.com/faredeck/faredeck/internal/config"
	"github.com/faredeck/faredeck/internal/handler"
	"github.com/faredeck/faredeck/internal/logger"
	"github.com/faredeck/faredeck/internal/providers"
	"github.com/faredeck/faredeck/internal/ratelimit"
	"github.com/faredeck/faredeck/internal/tracking"
	"github.com/faredeck/faredeck/internal/upsell"
	"github.com/faredeck/faredeck/pkg/currency"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync() //nolint:errcheck

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	providerList, err := initializeProviders()
	if err != nil {
		log.Fatal("failed to initialize providers", zap.Error(err))
	}
	log.Info("initialized offer providers", zap.Int("count", len(providerList)))

	rateLimiter := ratelimit.NewProviderLimiter(ratelimit.DefaultLimit(), map[string]ratelimit.Limit{
		"skyway":  {RequestsPerSecond: 20, Burst: 30},
		"nestico": {RequestsPerSecond: 15, Burst: 25},
		"gearup":  {RequestsPerSecond: 10, Burst: 20},
	})

	agg := aggregator.NewAggregator(providerList, aggregator.Config{
		Timeout:    cfg.ProviderTimeout,
		MaxRetries: cfg.MaxRetries,
		RetryDelays: []time.Duration{
			100 * time.Millisecond,
			200 * time.Millisecond,
			400 * time.Millisecond,
		},
		RateLimiter: rateLimiter,
	}, log)

	var offerCache cache.Cache
	if cfg.CacheEnabled {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Host: cfg.RedisHost,
			Port: cfg.RedisPort,
			TTL:  cfg.RedisTTL,
		})
		if err != nil {
			log.Fatal("failed to connect to redis", zap.Error(err))
		}
		offerCache = redisCache
		log.Info("redis cache enabled",
			zap.String("host", cfg.RedisHost),
			zap.String("port", cfg.RedisPort),
			zap.Duration("ttl", cfg.RedisTTL))
	} else {
		offerCache = cache.NewNoOpCache()
		log.Info("cache disabled")
	}

	engine := upsell.NewEngine(upsell.Config{
		HighValueThreshold: cfg.HighValueThreshold,
		DomesticCountry:    cfg.DomesticCountry,
	})
	beacon := tracking.NewBeacon(cfg.TrackingEndpoint, log)

	h := handler.New(agg, offerCache, currency.NewConverter(), engine, beacon, log)

	api := e.Group("/api/v1")
	api.POST("/offers/search", h.Search)
	api.POST("/packages", h.CreatePackage)
	api.POST("/upsell", h.Upsell)
	api.GET("/out", h.Redirect)
	e.GET("/health", h.Health)

	log.Info("starting metasearch server", zap.String("port", cfg.Port))

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func initializeProviders() ([]providers.Provider, error) {
	var providerList []providers.Provider

	skyway, err := providers.NewSkywayProvider()
	if err != nil {
		return nil, err
	}
	providerList = append(providerList, skyway)

	nestico, err := providers.NewNesticoProvider()
	if err != nil {
		return nil, err
	}
	providerList = append(providerList, nestico)

	gearup, err := providers.NewGearupProvider()
	if err != nil {
		return nil, err
	}
	providerList = append(providerList, gearup)

	return providerList, nil
}
