package space

import "github.com/go-gl/mathgl/mgl64"

var (
	AxisX = mgl64.Vec3{1, 0, 0}
	AxisY = mgl64.Vec3{0, 1, 0}
	AxisZ = mgl64.Vec3{0, 0, 1}
)

// Transform is the render-side sidecar of an object: translation, orientation and scale.
// The renderer owns it; the core reads and writes it every tick.
type Transform struct {
	Translation mgl64.Vec3 `json:"translation"`
	Rotation    mgl64.Quat `json:"rotation"`
	Scale       mgl64.Vec3 `json:"scale"`
}

// NewTransform creates an identity transform at the given point.
func NewTransform(at mgl64.Vec3) Transform {
	return Transform{
		Translation: at,
		Rotation:    mgl64.QuatIdent(),
		Scale:       mgl64.Vec3{1, 1, 1},
	}
}

// WithScale returns a copy with a uniform scale.
func (t Transform) WithScale(s float64) Transform {
	t.Scale = mgl64.Vec3{s, s, s}
	return t
}

// Rotate applies rotation q in world space.
func (t *Transform) Rotate(q mgl64.Quat) {
	t.Rotation = q.Mul(t.Rotation).Normalize()
}

// RotateX rotates around the world X axis by angle radians.
func (t *Transform) RotateX(angle float64) {
	t.Rotate(mgl64.QuatRotate(angle, AxisX))
}

// RotateY rotates around the world Y axis by angle radians.
func (t *Transform) RotateY(angle float64) {
	t.Rotate(mgl64.QuatRotate(angle, AxisY))
}

// Lerp interpolates componentwise between a and b at t without clamping.
func Lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
