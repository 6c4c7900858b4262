// Package trajectory turns spawn descriptors into moving transforms.
package trajectory

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/zeusync/spacedrift/internal/core/space"
)

// Projection constants. The target radius is scaled by fov*RadiusFOVFactor + scale*RadiusScaleFactor.
const (
	ScaleFactor       = 0.05
	RadiusFOVFactor   = 0.75
	RadiusScaleFactor = 2.0
)

// Engine performs projection setup and the per-tick update.
// It holds no per-object state.
type Engine struct{}

func New() *Engine {
	return &Engine{}
}

// Project consumes d and computes its trajectory and initial transform for field of view fov.
// The returned transform sits at the spawn point with uniform scale.
func (e *Engine) Project(d *space.Descriptor, fov float64) (*space.Trajectory, space.Transform, error) {
	if d == nil {
		return nil, space.Transform{}, fmt.Errorf("%w: nil descriptor", space.ErrDomain)
	}
	if !(fov > 0) || math.IsInf(fov, 1) {
		return nil, space.Transform{}, fmt.Errorf("%w: fov must be positive and finite, got %v", space.ErrDomain, fov)
	}
	if err := d.Consume(); err != nil {
		return nil, space.Transform{}, err
	}

	spawnAt := mgl64.Vec3{0, 0, -fov}

	// distance is taken against the unconverted spherical triple
	speed := spawnAt.Sub(d.GoingTo.Raw()).Len() * d.Speed / fov

	scale := d.Size * fov * ScaleFactor

	target := d.GoingTo
	target.Radius *= fov*RadiusFOVFactor + scale*RadiusScaleFactor

	t := &space.Trajectory{
		Kind:          d.Kind,
		Size:          d.Size,
		SpawnAt:       spawnAt,
		GoingTo:       target.Cartesian(),
		Speed:         speed,
		RotationAxis:  d.RotationAxis,
		RotationSpeed: d.RotationSpeed,
		Scale:         scale,
		MaxTravelled:  d.MaxTravelled,
	}

	return t, space.NewTransform(spawnAt).WithScale(scale), nil
}

// UpdateOrientation spins tr about X, then Y, by the object's axis angles scaled by dt.
func (e *Engine) UpdateOrientation(t *space.Trajectory, dt float64, tr *space.Transform) {
	dt = clampDelta(dt)
	tr.RotateX(t.RotationAxis[0] * dt * t.RotationSpeed)
	tr.RotateY(t.RotationAxis[1] * dt * t.RotationSpeed)
}

// UpdateLocation advances travelled and moves tr along the unclamped spawn→target line.
func (e *Engine) UpdateLocation(t *space.Trajectory, dt float64, tr *space.Transform) {
	t.Travelled += t.Speed * clampDelta(dt)
	tr.Translation = t.Position()
}

// Update runs UpdateOrientation then UpdateLocation.
func (e *Engine) Update(t *space.Trajectory, dt float64, tr *space.Transform) {
	e.UpdateOrientation(t, dt, tr)
	e.UpdateLocation(t, dt, tr)
}

func clampDelta(dt float64) float64 {
	if dt < 0 || math.IsNaN(dt) {
		return 0
	}
	return dt
}
