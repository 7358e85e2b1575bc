package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitWithinBurst(t *testing.T) {
	p := NewProviderLimiter(DefaultLimit(), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	for i := 0; i < 5; i++ {
		require.NoError(t, p.Wait(ctx, "skyway"))
	}
}

func TestPerProviderOverride(t *testing.T) {
	p := NewProviderLimiter(DefaultLimit(), map[string]Limit{
		"tight": {RequestsPerSecond: 1, Burst: 1},
	})

	assert.True(t, p.Allow("tight"))
	assert.False(t, p.Allow("tight"))

	// Another provider has its own bucket.
	assert.True(t, p.Allow("loose"))
}

func TestWaitHonorsContext(t *testing.T) {
	p := NewProviderLimiter(Limit{RequestsPerSecond: 1, Burst: 1}, nil)

	require.NoError(t, p.Wait(context.Background(), "skyway"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := p.Wait(ctx, "skyway")
	assert.Error(t, err)
}
