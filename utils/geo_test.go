package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithinEpsilon(t *testing.T) {
	assert.True(t, WithinEpsilon(48.85, 2.35, 48.85, 2.35))
	assert.True(t, WithinEpsilon(48.85, 2.35, 48.85005, 2.35005))
	// either axis past the epsilon counts as a move
	assert.False(t, WithinEpsilon(48.85, 2.35, 48.8502, 2.35))
	assert.False(t, WithinEpsilon(48.85, 2.35, 48.85, 2.3502))
}

func TestHaversineKm(t *testing.T) {
	// one degree of latitude is about 111.2 km
	assert.InDelta(t, 111.2, HaversineKm(0, 0, 1, 0), 0.5)
	assert.InDelta(t, 0, HaversineKm(48.85, 2.35, 48.85, 2.35), 0.0001)
	// symmetric
	assert.InDelta(t,
		HaversineKm(48.85, 2.35, 51.5, -0.12),
		HaversineKm(51.5, -0.12, 48.85, 2.35), 0.0001)
}
