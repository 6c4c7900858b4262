// Package cull holds the despawn rule.
package cull

import (
	"fmt"
	"math"

	"github.com/zeusync/spacedrift/internal/core/space"
)

// DefaultThreshold is the near plane in world units. It does not scale with fov.
const DefaultThreshold = 8.0

// Culler decides when an object has left the view.
type Culler struct {
	threshold float64
}

// New returns a culler removing objects whose translation z exceeds threshold.
func New(threshold float64) (*Culler, error) {
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		return nil, fmt.Errorf("%w: cull threshold must be finite, got %v", space.ErrConfiguration, threshold)
	}
	return &Culler{threshold: threshold}, nil
}

func (c *Culler) Threshold() float64 { return c.threshold }

// ShouldDespawn is the kind override OR translation.z > threshold.
func (c *Culler) ShouldDespawn(t *space.Trajectory, tr space.Transform) bool {
	return t.DespawnOverride() || tr.Translation.Z() > c.threshold
}
