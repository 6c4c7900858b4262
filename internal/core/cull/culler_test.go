package cull

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/spacedrift/internal/core/space"
)

func TestShouldDespawn(t *testing.T) {
	c, err := New(DefaultThreshold)
	require.NoError(t, err)
	assert.Equal(t, 8.0, c.Threshold())

	asteroid := &space.Trajectory{Kind: space.KindAsteroid}
	tests := []struct {
		z    float64
		want bool
	}{
		{-1_000_000, false},
		{0, false},
		{8, false},
		{8.0001, true},
		{500_000, true},
	}
	for _, tt := range tests {
		tr := space.NewTransform(mgl64.Vec3{0, 0, tt.z})
		assert.Equal(t, tt.want, c.ShouldDespawn(asteroid, tr), "z %v", tt.z)
	}
}

func TestKindOverride(t *testing.T) {
	c, err := New(DefaultThreshold)
	require.NoError(t, err)

	astronaut := &space.Trajectory{Kind: space.KindAstronaut, MaxTravelled: 1.5, Travelled: 2}
	far := space.NewTransform(mgl64.Vec3{0, 0, -1_000_000})
	assert.True(t, c.ShouldDespawn(astronaut, far))

	astronaut.Travelled = 1
	assert.False(t, c.ShouldDespawn(astronaut, far))
}

func TestNewRejectsNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := New(v)
		assert.ErrorIs(t, err, space.ErrConfiguration)
	}
}
