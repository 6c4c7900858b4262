package schedule

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/spacedrift/internal/core/space"
)

func TestReferenceIsDue(t *testing.T) {
	tests := []struct {
		elapsed float64
		due     bool
	}{
		{0, true},
		{0.03, true},
		{0.031, false},
		{1.0, false},
		{2.49, false},
		{2.5, true},
		{2.51, true},
		{2.55, false},
		{5.0, true},
		{-1, false},
		{math.NaN(), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.due, Reference.IsDue(tt.elapsed), "elapsed %v", tt.elapsed)
	}
}

func TestIsDueStateless(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.True(t, Reference.IsDue(2.51))
		assert.False(t, Reference.IsDue(2.55))
	}
}

func TestPreset(t *testing.T) {
	for name, want := range map[string]Scheduler{"": Reference, "reference": Reference, "relaxed": Relaxed} {
		got, err := Preset(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.True(t, Relaxed.IsDue(3.02))
	assert.False(t, Relaxed.IsDue(3.05))

	_, err := Preset("eager")
	assert.ErrorIs(t, err, space.ErrConfiguration)
}

func TestNewValidates(t *testing.T) {
	s, err := New(1, 0.1)
	require.NoError(t, err)
	assert.True(t, s.IsDue(3.05))

	for _, bad := range [][2]float64{{0, 0}, {-1, 0}, {1, 1}, {1, -0.1}, {math.Inf(1), 0}, {1, math.NaN()}} {
		_, err = New(bad[0], bad[1])
		assert.ErrorIs(t, err, space.ErrConfiguration, "interval %v window %v", bad[0], bad[1])
	}
}
