package camera

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/amitu/bhumi/parameter"
	"github.com/amitu/bhumi/physics"
)

// Mode selects how the camera derives its pose each tick
type Mode int

const (
	// FirstPerson places the camera at the drone, looking along its
	// forward vector
	FirstPerson Mode = iota

	// ThirdPerson follows behind and above the drone, clamped so the
	// camera never ends up behind room geometry
	ThirdPerson

	// FreeCam detaches from the drone and flies on its own velocity
	FreeCam
)

func (m Mode) String() string {
	switch m {
	case FirstPerson:
		return "first-person"
	case ThirdPerson:
		return "third-person"
	case FreeCam:
		return "free-cam"
	}
	return "unknown"
}

// ConfigError reports an invalid projection parameter at construction.
// Construction fails instead of silently clamping.
type ConfigError struct {
	Field string
	Value float64
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("camera config: invalid %s %g", e.Field, e.Value)
}

// followClearance keeps the third-person camera this far off any wall
const followClearance = 0.2

// Camera holds pose and projection state. In FirstPerson and
// ThirdPerson the pose is slaved to the drone through UpdateFromBody;
// only FreeCam integrates its own motion.
type Camera struct {
	Position mgl64.Vec3

	target mgl64.Vec3
	up     mgl64.Vec3
	mode   Mode

	fovDeg float64
	aspect float64
	near   float64
	far    float64

	// FreeCam state
	freeVel     mgl64.Vec3
	freeForward mgl64.Vec3
	freeAccel   mgl64.Vec3
}

// New creates a camera with the standard projection (60° vertical FOV,
// 4:3 aspect, 0.1–100 m planes) in third-person mode.
func New() *Camera {
	cam, err := NewWithProjection(
		parameter.FOVDegrees,
		float64(parameter.BufferWidth)/float64(parameter.BufferHeight),
		parameter.NearPlane,
		parameter.FarPlane,
	)
	if err != nil {
		// Standard parameters are compile-time constants; they cannot
		// fail validation
		panic(err)
	}
	return cam
}

// NewWithProjection validates the projection parameters and returns a
// configured camera. FOV must lie in (0, 180) degrees, planes must
// satisfy 0 < near < far.
func NewWithProjection(fovDeg, aspect, near, far float64) (*Camera, error) {
	if fovDeg <= 0 || fovDeg >= 180 {
		return nil, &ConfigError{Field: "fov", Value: fovDeg}
	}
	if near <= 0 {
		return nil, &ConfigError{Field: "near", Value: near}
	}
	if far <= near {
		return nil, &ConfigError{Field: "far", Value: far}
	}
	if aspect <= 0 {
		return nil, &ConfigError{Field: "aspect", Value: aspect}
	}

	return &Camera{
		Position: mgl64.Vec3{0, 2, -3},
		target:   mgl64.Vec3{0, 2, 0},
		up:       mgl64.Vec3{0, 1, 0},
		mode:     ThirdPerson,
		fovDeg:   fovDeg,
		aspect:   aspect,
		near:     near,
		far:      far,
	}, nil
}

// LookAt pins the camera to an explicit pose, independent of any
// body. FreeCam flight continues from here.
func (c *Camera) LookAt(eye, center mgl64.Vec3) {
	c.Position = eye
	c.target = center
	c.up = mgl64.Vec3{0, 1, 0}
	if d := center.Sub(eye); d.Len() > 1e-9 {
		c.freeForward = d.Normalize()
	}
}

// Mode returns the active camera mode
func (c *Camera) Mode() Mode {
	return c.mode
}

// SetMode switches modes instantly; the new pose takes effect on the
// next UpdateFromBody / Tick
func (c *Camera) SetMode(m Mode) {
	if m == FreeCam && c.mode != FreeCam {
		// Carry the current view direction into free flight
		c.freeForward = c.target.Sub(c.Position).Normalize()
		c.freeVel = mgl64.Vec3{}
	}
	c.mode = m
}

// UpdateFromBody slaves the camera pose to the drone for the dependent
// modes. FreeCam ignores the body entirely.
func (c *Camera) UpdateFromBody(w *physics.World) {
	drone := &w.Drone

	switch c.mode {
	case FirstPerson:
		c.Position = drone.Position
		c.target = drone.Position.Add(drone.Forward())
		c.up = mgl64.Vec3{0, 1, 0}

	case ThirdPerson:
		offset := thirdPersonOffset(drone)
		c.Position = w.ClearanceAlong(drone.Position, offset, followClearance)
		c.target = drone.Position
		c.up = mgl64.Vec3{0, 1, 0}
	}
}

// thirdPersonOffset is the documented behind-and-above follow vector,
// expressed in world space from the drone's yaw-aligned frame
func thirdPersonOffset(drone *physics.RigidBody) mgl64.Vec3 {
	fwd := drone.Forward()
	back := mgl64.Vec3{-fwd.X(), 0, -fwd.Z()}
	if l := back.Len(); l > 1e-9 {
		back = back.Mul(parameter.ThirdPersonBack / l)
	} else {
		back = mgl64.Vec3{0, 0, -parameter.ThirdPersonBack}
	}
	return back.Add(mgl64.Vec3{0, parameter.ThirdPersonUp, 0})
}

// Fly queues free-roam acceleration for the current tick. Directional
// input maps onto the camera's own frame: forward/backward along the
// view direction, left/right across it, up/down on world Y. No-op
// outside FreeCam.
func (c *Camera) Fly(dir physics.Direction) {
	if c.mode != FreeCam {
		return
	}

	right := c.freeForward.Cross(mgl64.Vec3{0, 1, 0})
	if l := right.Len(); l > 1e-9 {
		right = right.Mul(1 / l)
	}

	switch dir {
	case physics.DirForward:
		c.freeAccel = c.freeAccel.Add(c.freeForward.Mul(parameter.FreeCamAccel))
	case physics.DirBackward:
		c.freeAccel = c.freeAccel.Sub(c.freeForward.Mul(parameter.FreeCamAccel))
	case physics.DirRight:
		c.freeAccel = c.freeAccel.Add(right.Mul(parameter.FreeCamAccel))
	case physics.DirLeft:
		c.freeAccel = c.freeAccel.Sub(right.Mul(parameter.FreeCamAccel))
	case physics.DirUp:
		c.freeAccel[1] += parameter.FreeCamAccel
	case physics.DirDown:
		c.freeAccel[1] -= parameter.FreeCamAccel
	}
}

// Tick integrates FreeCam motion by one fixed step; the other modes
// carry no independent physics
func (c *Camera) Tick(dt float64) {
	if c.mode != FreeCam {
		return
	}

	c.freeVel = c.freeVel.Add(c.freeAccel.Mul(dt))
	c.freeVel = c.freeVel.Mul(1.0 / (1.0 + parameter.FreeCamDamping*dt))
	c.Position = c.Position.Add(c.freeVel.Mul(dt))
	c.target = c.Position.Add(c.freeForward)
	c.freeAccel = mgl64.Vec3{}
}

// ViewMatrix maps world space to view space (right-handed, Y-up)
func (c *Camera) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.target, c.up)
}

// ProjectionMatrix maps view space to clip space with the configured
// perspective
func (c *Camera) ProjectionMatrix() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.fovDeg), c.aspect, c.near, c.far)
}

// ViewProjection returns the combined world→clip transform
func (c *Camera) ViewProjection() mgl64.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}
