// Package config loads service settings from the environment with sane
// defaults, so the binary runs with no configuration at all.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port      string
	LogLevel  string
	LogFormat string

	CacheEnabled bool
	RedisHost    string
	RedisPort    string
	RedisTTL     time.Duration

	ProviderTimeout time.Duration
	MaxRetries      int

	TrackingEndpoint   string
	DomesticCountry    string
	HighValueThreshold float64
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("cache_enabled", true)
	v.SetDefault("redis_host", "localhost")
	v.SetDefault("redis_port", "6379")
	v.SetDefault("redis_ttl", 5*time.Minute)
	v.SetDefault("provider_timeout", 2*time.Second)
	v.SetDefault("max_retries", 3)
	v.SetDefault("tracking_endpoint", "")
	v.SetDefault("domestic_country", "US")
	v.SetDefault("high_value_threshold", 2000.0)

	cfg := &Config{
		Port:               v.GetString("port"),
		LogLevel:           v.GetString("log_level"),
		LogFormat:          v.GetString("log_format"),
		CacheEnabled:       v.GetBool("cache_enabled"),
		RedisHost:          v.GetString("redis_host"),
		RedisPort:          v.GetString("redis_port"),
		RedisTTL:           v.GetDuration("redis_ttl"),
		ProviderTimeout:    v.GetDuration("provider_timeout"),
		MaxRetries:         v.GetInt("max_retries"),
		TrackingEndpoint:   v.GetString("tracking_endpoint"),
		DomesticCountry:    v.GetString("domestic_country"),
		HighValueThreshold: v.GetFloat64("high_value_threshold"),
	}

	if cfg.RedisTTL <= 0 {
		cfg.RedisTTL = 5 * time.Minute
	}
	if cfg.ProviderTimeout <= 0 {
		cfg.ProviderTimeout = 2 * time.Second
	}

	return cfg, nil
}
