package space

import "github.com/go-gl/mathgl/mgl64"

// Trajectory is the per-object state after projection setup.
type Trajectory struct {
	Kind          Kind
	Size          float64
	SpawnAt       mgl64.Vec3
	GoingTo       mgl64.Vec3
	Speed         float64
	RotationAxis  mgl64.Vec2
	RotationSpeed float64
	Travelled     float64
	Scale         float64
	MaxTravelled  float64
}

// Position returns the point at the current interpolation parameter.
func (t *Trajectory) Position() mgl64.Vec3 {
	return Lerp(t.SpawnAt, t.GoingTo, t.Travelled)
}

// DespawnOverride is the kind-specific part of the despawn predicate.
func (t *Trajectory) DespawnOverride() bool {
	switch t.Kind {
	case KindAsteroid:
		return false
	case KindAstronaut:
		return t.MaxTravelled > 0 && t.Travelled > t.MaxTravelled
	default:
		return false
	}
}
