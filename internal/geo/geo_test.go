package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountryForCity(t *testing.T) {
	country, ok := CountryForCity("Paris")
	assert.True(t, ok)
	assert.Equal(t, "FR", country)

	country, ok = CountryForCity("  new YORK ")
	assert.True(t, ok)
	assert.Equal(t, "US", country)

	_, ok = CountryForCity("Atlantis")
	assert.False(t, ok)
}

func TestIsInternational(t *testing.T) {
	tests := []struct {
		name        string
		origin      string
		destination string
		domestic    string
		want        bool
	}{
		{"cross border", "New York", "Paris", "US", true},
		{"same country", "New York", "Los Angeles", "US", false},
		{"no origin foreign destination", "", "Tokyo", "US", true},
		{"no origin domestic destination", "", "Chicago", "US", false},
		{"no origin no domestic set", "", "Tokyo", "", false},
		{"unknown destination", "New York", "Atlantis", "US", false},
		{"unknown origin", "Atlantis", "Paris", "US", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsInternational(tt.origin, tt.destination, tt.domestic))
		})
	}
}
