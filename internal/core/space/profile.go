package space

import (
	"fmt"
	"math"
)

// Range is a half-open uniform interval [Min, Max).
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Validate fails with ErrConfiguration when the range is empty, inverted or not finite.
func (r Range) Validate(name string) error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) || math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) {
		return fmt.Errorf("%w: range %s [%v, %v) is not finite", ErrConfiguration, name, r.Min, r.Max)
	}
	if r.Min >= r.Max {
		return fmt.Errorf("%w: range %s [%v, %v) is empty or inverted", ErrConfiguration, name, r.Min, r.Max)
	}
	return nil
}

// Contains reports whether v lies in [Min, Max).
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v < r.Max
}

// FullTurn is the [0, 2π) range used for azimuth and spin angles.
var FullTurn = Range{Min: 0, Max: 2 * math.Pi}

// Profile holds the randomized-parameter bounds for one kind.
type Profile struct {
	Size          Range `json:"size" yaml:"size"`
	Speed         Range `json:"speed" yaml:"speed"`
	Azimuth       Range `json:"azimuth" yaml:"azimuth"`
	RotationAxis  Range `json:"rotation_axis" yaml:"rotation_axis"`
	RotationSpeed Range `json:"rotation_speed" yaml:"rotation_speed"`

	// MaxTravelled bounds the interpolation parameter for kinds that despawn on
	// progress as well as on distance. Zero disables the override.
	MaxTravelled float64 `json:"max_travelled" yaml:"max_travelled"`
}

// Validate checks every range of the profile.
func (p Profile) Validate() error {
	checks := []struct {
		name string
		r    Range
	}{
		{"size", p.Size},
		{"speed", p.Speed},
		{"azimuth", p.Azimuth},
		{"rotation_axis", p.RotationAxis},
		{"rotation_speed", p.RotationSpeed},
	}
	for _, c := range checks {
		if err := c.r.Validate(c.name); err != nil {
			return err
		}
	}
	if p.MaxTravelled < 0 || math.IsNaN(p.MaxTravelled) {
		return fmt.Errorf("%w: max_travelled %v is negative", ErrConfiguration, p.MaxTravelled)
	}
	return nil
}

// DefaultProfile returns the built-in bounds for a kind.
func DefaultProfile(kind Kind) (Profile, error) {
	switch kind {
	case KindAsteroid:
		return Profile{
			Size:          Range{Min: 0.10, Max: 0.24},
			Speed:         Range{Min: 0.165, Max: 0.250},
			Azimuth:       FullTurn,
			RotationAxis:  FullTurn,
			RotationSpeed: Range{Min: 0, Max: 0.25},
		}, nil
	case KindAstronaut:
		return Profile{
			Size:          Range{Min: 0.05, Max: 0.09},
			Speed:         Range{Min: 0.12, Max: 0.18},
			Azimuth:       FullTurn,
			RotationAxis:  FullTurn,
			RotationSpeed: Range{Min: 0.10, Max: 0.50},
			MaxTravelled:  1.5,
		}, nil
	default:
		return Profile{}, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}

// Profiles maps every kind to its bounds.
type Profiles map[Kind]Profile

// DefaultProfiles returns the built-in profile of every kind.
func DefaultProfiles() Profiles {
	out := make(Profiles, len(Kinds()))
	for _, k := range Kinds() {
		p, _ := DefaultProfile(k)
		out[k] = p
	}
	return out
}

// Validate checks that every kind has a valid profile.
func (ps Profiles) Validate() error {
	for _, k := range Kinds() {
		p, ok := ps[k]
		if !ok {
			return fmt.Errorf("%w: no profile for %s", ErrConfiguration, k)
		}
		if err := p.Validate(); err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
	}
	for k := range ps {
		if !k.Valid() {
			return fmt.Errorf("%w: %s", ErrUnknownKind, k)
		}
	}
	return nil
}
