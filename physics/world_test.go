package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/amitu/bhumi/parameter"
)

// script drives a world with a deterministic thrust pattern
func script(w *World, steps int) {
	for i := 0; i < steps; i++ {
		switch {
		case i%7 == 0:
			w.ApplyThrust(DirUp)
		case i%5 == 0:
			w.ApplyThrust(DirForward)
			w.ApplyThrust(DirLeft)
		case i%3 == 0:
			w.ApplyThrust(DirBackward)
		}
		w.Step()
	}
}

func TestDeterministicIntegration(t *testing.T) {
	a := NewWorld()
	b := NewWorld()

	script(a, 600)
	script(b, 600)

	if a.Drone.Position != b.Drone.Position {
		t.Errorf("Positions diverged: %v vs %v", a.Drone.Position, b.Drone.Position)
	}
	if a.Drone.Velocity != b.Drone.Velocity {
		t.Errorf("Velocities diverged: %v vs %v", a.Drone.Velocity, b.Drone.Velocity)
	}
	if a.SimTime() != b.SimTime() {
		t.Errorf("Sim clocks diverged: %v vs %v", a.SimTime(), b.SimTime())
	}
}

func TestFreeFallSettlesOnFloor(t *testing.T) {
	w := NewWorld()
	w.Drone.Position = mgl64.Vec3{0, 5, 0}
	w.Drone.Velocity = mgl64.Vec3{}

	// 5 seconds of fixed steps under gravity, no thrust
	for i := 0; i < 300; i++ {
		w.Step()
	}

	restY := w.Drone.Position.Y()
	if math.Abs(restY-parameter.DroneRadius) > 0.05 {
		t.Fatalf("Expected rest height near drone radius %.3f, got %.3f", parameter.DroneRadius, restY)
	}

	// Stays at rest for a further second
	for i := 0; i < 60; i++ {
		w.Step()
		if math.Abs(w.Drone.Position.Y()-restY) > 0.01 {
			t.Fatalf("Drone left rest height at step %d: %.4f", i, w.Drone.Position.Y())
		}
	}
}

func TestNoPenetrationAtRest(t *testing.T) {
	w := NewWorld()

	// Ram a wall, then release thrust and settle
	for i := 0; i < 240; i++ {
		w.ApplyThrust(DirLeft)
		w.ApplyThrust(DirDown)
		w.Step()
	}
	for i := 0; i < 360; i++ {
		w.Step()
	}

	if sep := w.MinSeparation(); sep < -1e-9 {
		t.Errorf("Expected non-negative separation at rest, got %g", sep)
	}
}

func TestDroneStaysInsideRoom(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 600; i++ {
		w.ApplyThrust(DirLeft)
		w.ApplyThrust(DirForward)
		w.ApplyThrust(DirUp)
		w.Step()
	}

	p := w.Drone.Position
	hw, hd := parameter.RoomWidth/2, parameter.RoomDepth/2
	if p.X() < -hw || p.X() > hw || p.Z() < -hd || p.Z() > hd ||
		p.Y() < 0 || p.Y() > parameter.RoomHeight {
		t.Errorf("Drone escaped the room: %v", p)
	}
}

func TestDivergenceRecovery(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 10; i++ {
		w.Step()
	}
	good := w.Drone

	w.Drone.Velocity = mgl64.Vec3{math.NaN(), 0, 0}
	w.Step()

	if w.Drone.diverged() {
		t.Fatal("Expected divergence guard to restore a finite body")
	}
	if w.Drone.Position != good.Position {
		t.Errorf("Expected last-good position %v, got %v", good.Position, w.Drone.Position)
	}
}

func TestThrustAccumulatesWithinTick(t *testing.T) {
	single := NewWorld()
	single.ApplyThrust(DirUp)
	single.Step()

	double := NewWorld()
	double.ApplyThrust(DirUp)
	double.ApplyThrust(DirUp)
	double.Step()

	if double.Drone.Velocity.Y() <= single.Drone.Velocity.Y() {
		t.Errorf("Expected stacked thrust to climb faster: %g vs %g",
			double.Drone.Velocity.Y(), single.Drone.Velocity.Y())
	}

	// Thrust applies for one tick only
	v := single.Drone.Velocity.Y()
	single.Step()
	if single.Drone.Velocity.Y() >= v {
		t.Error("Expected thrust to decay after its tick")
	}
}

func TestResetAndStop(t *testing.T) {
	w := NewWorld()
	spawn := w.Drone.Position

	for i := 0; i < 60; i++ {
		w.ApplyThrust(DirForward)
		w.Step()
	}
	if w.Drone.Position == spawn {
		t.Fatal("Expected drone to have moved")
	}

	w.StopMotion()
	if w.Drone.Velocity != (mgl64.Vec3{}) {
		t.Error("Expected StopMotion to zero velocity")
	}

	w.Reset()
	if w.Drone.Position != spawn {
		t.Errorf("Expected Reset to return drone to spawn, got %v", w.Drone.Position)
	}
}

func TestClearanceAlongStopsAtWall(t *testing.T) {
	w := NewWorld()

	target := mgl64.Vec3{0, 2, 0}
	// Offset long enough to poke through the west wall
	offset := mgl64.Vec3{-20, 0, 0}

	p := w.ClearanceAlong(target, offset, 0.2)
	if p.X() < -parameter.RoomWidth/2 {
		t.Errorf("Expected clamped point inside the room, got %v", p)
	}
	if p == target {
		t.Error("Expected some offset to survive clamping")
	}
}
