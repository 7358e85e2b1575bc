package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faredeck/faredeck/internal/models"
)

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	host, port, ok := strings.Cut(srv.Addr(), ":")
	require.True(t, ok)

	c, err := NewRedisCache(RedisConfig{Host: host, Port: port, TTL: time.Minute})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return c, srv
}

func cacheReq() models.SearchRequest {
	return models.SearchRequest{
		Vertical:    models.VerticalStays,
		Destination: "Paris",
		StartDate:   "2026-09-10",
		EndDate:     "2026-09-13",
		Passengers:  2,
	}
}

func cacheOffers() []models.Offer {
	return []models.Offer{
		{ID: "a", Provider: "nestico", Vertical: models.VerticalStays, TotalPrice: 604.8, Currency: "EUR"},
		{ID: "b", Provider: "nestico", Vertical: models.VerticalStays, TotalPrice: 322.56, Currency: "EUR"},
	}
}

func TestRedisCacheRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	_, found := c.Get(ctx, cacheReq())
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, cacheReq(), cacheOffers()))

	got, found := c.Get(ctx, cacheReq())
	require.True(t, found)
	assert.Equal(t, cacheOffers(), got)
}

func TestRedisCacheKeyDiscriminates(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, cacheReq(), cacheOffers()))

	other := cacheReq()
	other.Destination = "Tokyo"
	_, found := c.Get(ctx, other)
	assert.False(t, found)

	// Filters and sort do not take part in the key.
	sorted := cacheReq()
	sorted.SortBy = "rating"
	sorted.Filters = &models.OfferFilters{RefundableOnly: true}
	_, found = c.Get(ctx, sorted)
	assert.True(t, found)
}

func TestRedisCacheMissAfterFlush(t *testing.T) {
	c, srv := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, cacheReq(), cacheOffers()))
	srv.FlushAll()

	_, found := c.Get(ctx, cacheReq())
	assert.False(t, found)
}

func TestNoOpCache(t *testing.T) {
	c := NewNoOpCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, cacheReq(), cacheOffers()))
	_, found := c.Get(ctx, cacheReq())
	assert.False(t, found)
	assert.NoError(t, c.Close())
}
