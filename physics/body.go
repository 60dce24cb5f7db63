package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RigidBody is the simulated drone state. One instance lives in the
// World; copies of it act as last-known-good snapshots for divergence
// recovery.
type RigidBody struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3

	// Rotation holds pitch (X), yaw (Y), roll (Z) in radians
	Rotation   mgl64.Vec3
	AngularVel mgl64.Vec3

	Mass float64
}

// Forward returns the body's forward unit vector (world Z-forward
// rotated by yaw/pitch)
func (b *RigidBody) Forward() mgl64.Vec3 {
	pitch, yaw := b.Rotation.X(), b.Rotation.Y()
	cosPitch := math.Cos(pitch)
	return mgl64.Vec3{
		math.Sin(yaw) * cosPitch,
		-math.Sin(pitch),
		math.Cos(yaw) * cosPitch,
	}
}

// diverged reports whether any state component is NaN or infinite
func (b *RigidBody) diverged() bool {
	for _, v := range []mgl64.Vec3{b.Position, b.Velocity, b.Rotation, b.AngularVel} {
		for i := 0; i < 3; i++ {
			if math.IsNaN(v[i]) || math.IsInf(v[i], 0) {
				return true
			}
		}
	}
	return false
}
