package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateClickIDIsValid(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := GenerateClickID()
		assert.True(t, ValidClickID(id), "generated id %q must validate", id)
	}
}

func TestGenerateClickIDNoCollisions(t *testing.T) {
	const draws = 10000

	seen := make(map[string]struct{}, draws)
	for i := 0; i < draws; i++ {
		id := GenerateClickID()
		_, dup := seen[id]
		require.False(t, dup, "collision after %d draws: %s", i, id)
		seen[id] = struct{}{}
	}
}

func TestValidClickID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"canonical v4", "a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d", true},
		{"uppercase hex", "A1B2C3D4-E5F6-4A7B-9C9D-0E1F2A3B4C5D", true},
		{"empty", "", false},
		{"garbage", "not-a-uuid", false},
		{"wrong version nibble", "a1b2c3d4-e5f6-1a7b-8c9d-0e1f2a3b4c5d", false},
		{"wrong variant nibble", "a1b2c3d4-e5f6-4a7b-7c9d-0e1f2a3b4c5d", false},
		{"braced form rejected", "{a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d}", false},
		{"urn form rejected", "urn:uuid:a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d", false},
		{"missing hyphens", "a1b2c3d4e5f64a7b8c9d0e1f2a3b4c5d", false},
		{"truncated", "a1b2c3d4-e5f6-4a7b-8c9d", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidClickID(tt.input))
		})
	}
}
