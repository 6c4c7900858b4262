package space

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Spherical is a direction and distance: azimuth θ, polar φ and radius r.
type Spherical struct {
	Azimuth float64 `json:"azimuth"`
	Polar   float64 `json:"polar"`
	Radius  float64 `json:"radius"`
}

// Raw returns the triple as a point without conversion.
// Speed rescaling measures distance against this raw point.
func (s Spherical) Raw() mgl64.Vec3 {
	return mgl64.Vec3{s.Azimuth, s.Polar, s.Radius}
}

// Cartesian converts to x = r sinφ cosθ, y = r sinφ sinθ, z = r cosφ.
func (s Spherical) Cartesian() mgl64.Vec3 {
	sinPolar, cosPolar := math.Sincos(s.Polar)
	sinAz, cosAz := math.Sincos(s.Azimuth)
	return mgl64.Vec3{
		s.Radius * sinPolar * cosAz,
		s.Radius * sinPolar * sinAz,
		s.Radius * cosPolar,
	}
}

// Descriptor is the randomized state of an object before projection setup.
// It is consumed exactly once, producing a Trajectory.
type Descriptor struct {
	Kind          Kind
	Size          float64
	Speed         float64
	SpawnAt       mgl64.Vec3
	GoingTo       Spherical
	RotationAxis  mgl64.Vec2
	RotationSpeed float64
	MaxTravelled  float64

	consumed bool
}

// NewDescriptor builds a descriptor from already drawn values.
func NewDescriptor(kind Kind, size, speed, azimuth float64, axis mgl64.Vec2, rotationSpeed float64) *Descriptor {
	return &Descriptor{
		Kind:          kind,
		Size:          size,
		Speed:         speed,
		GoingTo:       Spherical{Azimuth: azimuth, Polar: math.Pi / 2, Radius: size},
		RotationAxis:  axis,
		RotationSpeed: rotationSpeed,
	}
}

// Consume marks the descriptor as projected. A second call fails.
func (d *Descriptor) Consume() error {
	if d.consumed {
		return ErrDescriptorConsumed
	}
	d.consumed = true
	return nil
}

func (d *Descriptor) Consumed() bool { return d.consumed }
