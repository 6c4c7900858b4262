package factory

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/zeusync/spacedrift/internal/core/space"
)

// Factory draws spawn descriptors from per-kind profiles.
type Factory struct {
	profiles space.Profiles
	src      Source
}

// New validates every profile and returns a factory drawing from src.
// src is wrapped in a LockedSource so the factory can be shared between goroutines.
func New(profiles space.Profiles, src Source) (*Factory, error) {
	if profiles == nil {
		profiles = space.DefaultProfiles()
	}
	if err := profiles.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil randomness source", space.ErrConfiguration)
	}
	if _, ok := src.(*LockedSource); !ok {
		src = NewLockedSource(src)
	}
	return &Factory{profiles: profiles, src: src}, nil
}

// Profile returns the bounds used for kind.
func (f *Factory) Profile(kind space.Kind) (space.Profile, bool) {
	p, ok := f.profiles[kind]
	return p, ok
}

// Create draws a descriptor for kind from the factory's own source.
func (f *Factory) Create(kind space.Kind) (*space.Descriptor, error) {
	return f.CreateFrom(kind, f.src)
}

// CreateFrom draws a descriptor for kind from rng.
func (f *Factory) CreateFrom(kind space.Kind, rng Source) (*space.Descriptor, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %s", space.ErrUnknownKind, kind)
	}
	p, ok := f.profiles[kind]
	if !ok {
		return nil, fmt.Errorf("%w: no profile for %s", space.ErrConfiguration, kind)
	}
	return Create(kind, p, rng)
}

// Create draws a descriptor for kind using profile p.
// Values are drawn in a fixed order: size, speed, azimuth, both spin angles, spin rate.
func Create(kind space.Kind, p space.Profile, rng Source) (*space.Descriptor, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	size := uniform(rng, p.Size)
	speed := uniform(rng, p.Speed)
	theta := uniform(rng, p.Azimuth)
	axis := mgl64.Vec2{
		uniform(rng, p.RotationAxis),
		uniform(rng, p.RotationAxis),
	}
	rotationSpeed := uniform(rng, p.RotationSpeed)

	d := space.NewDescriptor(kind, size, speed, theta, axis, rotationSpeed)
	d.MaxTravelled = p.MaxTravelled
	return d, nil
}

// uniform maps a [0, 1) draw onto r. Draws outside [0, 1) count as 0.
func uniform(rng Source, r space.Range) float64 {
	u := rng.Float64()
	if !(u >= 0 && u < 1) {
		u = 0
	}
	v := r.Min + (r.Max-r.Min)*u
	if v >= r.Max {
		v = r.Min
	}
	return v
}
