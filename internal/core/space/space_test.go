package space

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestKind(t *testing.T) {
	for _, k := range Kinds() {
		assert.True(t, k.Valid())
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	assert.False(t, Kind(0).Valid())
	assert.Equal(t, "kind(9)", Kind(9).String())

	_, err := ParseKind("comet")
	assert.ErrorIs(t, err, ErrUnknownKind)

	k, err := ParseKind("  Astronaut ")
	require.NoError(t, err)
	assert.Equal(t, KindAstronaut, k)
}

func TestKindJSON(t *testing.T) {
	raw, err := json.Marshal(struct{ K Kind }{KindAsteroid})
	require.NoError(t, err)
	assert.JSONEq(t, `{"K":"asteroid"}`, string(raw))

	var out struct{ K Kind }
	require.NoError(t, json.Unmarshal([]byte(`{"K":"astronaut"}`), &out))
	assert.Equal(t, KindAstronaut, out.K)

	_, err = json.Marshal(struct{ K Kind }{Kind(42)})
	assert.Error(t, err)
}

func TestRangeValidate(t *testing.T) {
	tests := []struct {
		name string
		r    Range
		ok   bool
	}{
		{"half open", Range{Min: 0.1, Max: 0.24}, true},
		{"empty", Range{Min: 1, Max: 1}, false},
		{"inverted", Range{Min: 2, Max: 1}, false},
		{"nan", Range{Min: math.NaN(), Max: 1}, false},
		{"inf", Range{Min: 0, Max: math.Inf(1)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.Validate("size")
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrConfiguration)
			}
		})
	}

	r := Range{Min: 0, Max: 1}
	assert.True(t, r.Contains(0))
	assert.False(t, r.Contains(1))
}

func TestDefaultProfiles(t *testing.T) {
	ps := DefaultProfiles()
	require.NoError(t, ps.Validate())
	assert.Len(t, ps, len(Kinds()))

	asteroid := ps[KindAsteroid]
	assert.Equal(t, Range{Min: 0.10, Max: 0.24}, asteroid.Size)
	assert.Equal(t, Range{Min: 0.165, Max: 0.250}, asteroid.Speed)
	assert.Equal(t, Range{Min: 0, Max: 0.25}, asteroid.RotationSpeed)
	assert.Equal(t, FullTurn, asteroid.Azimuth)
	assert.Zero(t, asteroid.MaxTravelled)

	_, err := DefaultProfile(Kind(0))
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestProfilesValidate(t *testing.T) {
	ps := DefaultProfiles()
	delete(ps, KindAstronaut)
	assert.ErrorIs(t, ps.Validate(), ErrConfiguration)

	ps = DefaultProfiles()
	p := ps[KindAsteroid]
	p.Speed = Range{Min: 0.3, Max: 0.2}
	ps[KindAsteroid] = p
	assert.ErrorIs(t, ps.Validate(), ErrConfiguration)

	ps = DefaultProfiles()
	ps[Kind(7)] = ps[KindAsteroid]
	assert.ErrorIs(t, ps.Validate(), ErrUnknownKind)

	p = DefaultProfiles()[KindAstronaut]
	p.MaxTravelled = -1
	assert.ErrorIs(t, p.Validate(), ErrConfiguration)
}

func TestSphericalCartesian(t *testing.T) {
	p := Spherical{Azimuth: 0, Polar: math.Pi / 2, Radius: 2}.Cartesian()
	assert.InDelta(t, 2, p.X(), eps)
	assert.InDelta(t, 0, p.Y(), eps)
	assert.InDelta(t, 0, p.Z(), eps)

	p = Spherical{Azimuth: math.Pi / 2, Polar: math.Pi / 2, Radius: 3}.Cartesian()
	assert.InDelta(t, 0, p.X(), eps)
	assert.InDelta(t, 3, p.Y(), eps)

	p = Spherical{Azimuth: 1, Polar: 0, Radius: 5}.Cartesian()
	assert.InDelta(t, 5, p.Z(), eps)

	assert.Equal(t, mgl64.Vec3{1, 2, 3}, Spherical{Azimuth: 1, Polar: 2, Radius: 3}.Raw())
}

func TestDescriptorConsume(t *testing.T) {
	d := NewDescriptor(KindAsteroid, 0.2, 0.2, 1.5, mgl64.Vec2{0.1, 0.2}, 0.1)
	assert.Equal(t, Spherical{Azimuth: 1.5, Polar: math.Pi / 2, Radius: 0.2}, d.GoingTo)
	assert.False(t, d.Consumed())

	require.NoError(t, d.Consume())
	assert.True(t, d.Consumed())
	assert.ErrorIs(t, d.Consume(), ErrDescriptorConsumed)
}

func TestLerpUnclamped(t *testing.T) {
	a := mgl64.Vec3{0, 0, -10}
	b := mgl64.Vec3{10, 0, 0}

	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))
	assert.True(t, Lerp(a, b, 2).ApproxEqual(mgl64.Vec3{20, 0, 10}))
}

func TestRotateInWorldSpace(t *testing.T) {
	tr := NewTransform(mgl64.Vec3{})
	tr.RotateX(math.Pi / 2)
	tr.RotateY(math.Pi / 2)

	// X first: up goes to +Z, then Y carries +Z to +X.
	got := tr.Rotation.Rotate(mgl64.Vec3{0, 1, 0})
	assert.True(t, got.ApproxEqualThreshold(mgl64.Vec3{1, 0, 0}, 1e-9), "got %v", got)
	assert.InDelta(t, 1, tr.Rotation.Len(), eps)
}

func TestTransformDefaults(t *testing.T) {
	tr := NewTransform(mgl64.Vec3{1, 2, 3}).WithScale(4)
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, tr.Translation)
	assert.Equal(t, mgl64.QuatIdent(), tr.Rotation)
	assert.Equal(t, mgl64.Vec3{4, 4, 4}, tr.Scale)
}

func TestDespawnOverride(t *testing.T) {
	asteroid := &Trajectory{Kind: KindAsteroid, Travelled: 100}
	assert.False(t, asteroid.DespawnOverride())

	astronaut := &Trajectory{Kind: KindAstronaut, MaxTravelled: 1.5, Travelled: 1.4}
	assert.False(t, astronaut.DespawnOverride())
	astronaut.Travelled = 1.6
	assert.True(t, astronaut.DespawnOverride())

	astronaut.MaxTravelled = 0
	assert.False(t, astronaut.DespawnOverride())
}
