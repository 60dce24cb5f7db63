package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/amitu/bhumi/core"
	"github.com/amitu/bhumi/logger"
	"github.com/amitu/bhumi/parameter"
)

// Direction selects one of the six world-axis thrust inputs
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	DirForward
	DirBackward
)

// World owns the static room, the drone rigid body, and the physics
// clock. It advances only through Step, in fixed increments, so two
// runs fed the same input sequence produce identical state.
type World struct {
	Room  []Box
	Drone RigidBody

	// Force accumulated for the current tick, cleared by Step
	force mgl64.Vec3

	// Thrust magnitude applied during the last completed tick (status)
	lastThrust float64

	lastGood RigidBody
	simTime  float64
	steps    uint64

	spawn mgl64.Vec3
}

// NewWorld constructs the standard room (10×10×6 m interior, floor at
// y=0) with the drone at spawn. Slab construction order is the contact
// resolution order: floor, ceiling, -X, +X, -Z, +Z.
func NewWorld() *World {
	const (
		hw    = parameter.RoomWidth / 2
		hd    = parameter.RoomDepth / 2
		h     = parameter.RoomHeight
		thick = 0.5
	)

	room := []Box{
		{Name: "floor", Min: mgl64.Vec3{-hw, -thick, -hd}, Max: mgl64.Vec3{hw, 0, hd}, Color: core.RGBA{R: 70, G: 70, B: 80, A: 255}},
		{Name: "ceiling", Min: mgl64.Vec3{-hw, h, -hd}, Max: mgl64.Vec3{hw, h + thick, hd}, Color: core.RGBA{R: 40, G: 40, B: 50, A: 255}},
		{Name: "wall-west", Min: mgl64.Vec3{-hw - thick, 0, -hd}, Max: mgl64.Vec3{-hw, h, hd}, Color: core.RGBA{R: 60, G: 45, B: 45, A: 255}},
		{Name: "wall-east", Min: mgl64.Vec3{hw, 0, -hd}, Max: mgl64.Vec3{hw + thick, h, hd}, Color: core.RGBA{R: 45, G: 60, B: 45, A: 255}},
		{Name: "wall-north", Min: mgl64.Vec3{-hw, 0, -hd - thick}, Max: mgl64.Vec3{hw, h, -hd}, Color: core.RGBA{R: 45, G: 45, B: 60, A: 255}},
		{Name: "wall-south", Min: mgl64.Vec3{-hw, 0, hd}, Max: mgl64.Vec3{hw, h, hd + thick}, Color: core.RGBA{R: 55, G: 55, B: 45, A: 255}},
	}

	spawn := mgl64.Vec3{parameter.SpawnX, parameter.SpawnY, parameter.SpawnZ}
	drone := RigidBody{
		Position: spawn,
		Mass:     parameter.DroneMass,
	}

	return &World{
		Room:     room,
		Drone:    drone,
		lastGood: drone,
		spawn:    spawn,
	}
}

// ApplyThrust accumulates the fixed-magnitude force for one direction
// onto the current tick. Multiple calls per tick stack.
func (w *World) ApplyThrust(dir Direction) {
	switch dir {
	case DirUp:
		w.force[1] += parameter.ThrustForceVertical
	case DirDown:
		w.force[1] -= parameter.ThrustForceVertical
	case DirLeft:
		w.force[0] -= parameter.ThrustForce
	case DirRight:
		w.force[0] += parameter.ThrustForce
	case DirForward:
		w.force[2] += parameter.ThrustForce
	case DirBackward:
		w.force[2] -= parameter.ThrustForce
	}
}

// Step advances the simulation by exactly one fixed timestep:
// semi-implicit Euler integration, then contact resolution against the
// room slabs in construction order, then the divergence guard.
func (w *World) Step() {
	const dt = parameter.FixedStep

	thrust := w.force
	w.lastThrust = thrust.Len()

	// Forces → velocity (gravity is an acceleration, thrust a force)
	accel := thrust.Mul(1.0 / w.Drone.Mass)
	accel[1] -= parameter.Gravity
	w.Drone.Velocity = w.Drone.Velocity.Add(accel.Mul(dt))

	// Linear damping, applied implicitly so any dt stays stable
	w.Drone.Velocity = w.Drone.Velocity.Mul(1.0 / (1.0 + parameter.LinearDamping*dt))

	// Velocity → position
	w.Drone.Position = w.Drone.Position.Add(w.Drone.Velocity.Mul(dt))

	w.integrateTilt(thrust, dt)
	w.resolveContacts()

	// Thrust applies for this tick only
	w.force = mgl64.Vec3{}
	w.simTime += dt
	w.steps++

	if w.Drone.diverged() {
		logger.Log.WithField("step", w.steps).Warn("physics divergence, restoring last good body state")
		w.Drone = w.lastGood
		return
	}
	w.lastGood = w.Drone
}

// integrateTilt relaxes the visual tilt toward the attitude implied by
// the applied thrust (bank into lateral motion, pitch into surge)
func (w *World) integrateTilt(thrust mgl64.Vec3, dt float64) {
	targetPitch := clamp(thrust.Z()/parameter.ThrustForce, -1, 1) * parameter.TiltMax
	targetRoll := clamp(-thrust.X()/parameter.ThrustForce, -1, 1) * parameter.TiltMax

	w.Drone.AngularVel = mgl64.Vec3{
		(targetPitch - w.Drone.Rotation.X()) * parameter.TiltRate,
		0,
		(targetRoll - w.Drone.Rotation.Z()) * parameter.TiltRate,
	}
	w.Drone.AngularVel = w.Drone.AngularVel.Mul(1.0 / (1.0 + parameter.AngularDamping*dt))
	w.Drone.Rotation = w.Drone.Rotation.Add(w.Drone.AngularVel.Mul(dt))
}

// resolveContacts runs the narrow phase against every room slab in
// insertion order and resolves each contact immediately: positional
// correction along the normal, then velocity projection removing the
// inward component (scaled by restitution if modeled).
func (w *World) resolveContacts() {
	for i, box := range w.Room {
		contact, hit := sphereBoxContact(i, box, w.Drone.Position, parameter.DroneRadius)
		if !hit {
			continue
		}

		w.Drone.Position = w.Drone.Position.Add(contact.Normal.Mul(contact.Penetration))

		vn := w.Drone.Velocity.Dot(contact.Normal)
		if vn < 0 {
			w.Drone.Velocity = w.Drone.Velocity.Sub(contact.Normal.Mul((1 + parameter.Restitution) * vn))
		}
	}
}

// Reset teleports the drone back to spawn with all motion zeroed
func (w *World) Reset() {
	w.Drone.Position = w.spawn
	w.Drone.Velocity = mgl64.Vec3{}
	w.Drone.Rotation = mgl64.Vec3{}
	w.Drone.AngularVel = mgl64.Vec3{}
	w.lastGood = w.Drone
}

// StopMotion zeroes drone velocities without moving it
func (w *World) StopMotion() {
	w.Drone.Velocity = mgl64.Vec3{}
	w.Drone.AngularVel = mgl64.Vec3{}
}

// SimTime returns elapsed simulation time in seconds
func (w *World) SimTime() float64 {
	return w.simTime
}

// LastThrust returns the thrust magnitude applied during the most
// recent tick, in newtons
func (w *World) LastThrust() float64 {
	return w.lastThrust
}

// MinSeparation returns the smallest surface distance between the
// drone's bounding sphere and any room slab; negative means
// penetration
func (w *World) MinSeparation() float64 {
	min := parameter.FarPlane
	for _, box := range w.Room {
		if d := box.Distance(w.Drone.Position, parameter.DroneRadius); d < min {
			min = d
		}
	}
	return min
}

// ClearanceAlong casts the segment target → target+offset against the
// room slabs and returns the farthest point on it that stays clearance
// short of the first surface hit. Used to keep the third-person camera
// out of walls.
func (w *World) ClearanceAlong(target, offset mgl64.Vec3, clearance float64) mgl64.Vec3 {
	length := offset.Len()
	if length == 0 {
		return target
	}

	tMax := 1.0
	for _, box := range w.Room {
		if tHit, hit := rayBoxEntry(target, offset, box); hit {
			if t := tHit - clearance/length; t < tMax {
				tMax = t
			}
		}
	}
	if tMax < 0 {
		tMax = 0
	}
	return target.Add(offset.Mul(tMax))
}
