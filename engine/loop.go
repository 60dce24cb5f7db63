package engine

import (
	"time"

	"github.com/amitu/bhumi/backend"
	"github.com/amitu/bhumi/camera"
	"github.com/amitu/bhumi/core"
	"github.com/amitu/bhumi/event"
	"github.com/amitu/bhumi/logger"
	"github.com/amitu/bhumi/parameter"
	"github.com/amitu/bhumi/physics"
	"github.com/amitu/bhumi/render"
)

// ThrustSound receives the applied thrust magnitude once per frame.
// The audio package implements it; a nil sink disables sound.
type ThrustSound interface {
	SetThrust(newtons float64)
}

// FrameLoop owns the simulation clock and orchestrates one session:
// poll input → apply to world/camera → fixed physics steps → rasterize
// → present. Single-threaded; the backend's input goroutines hand
// events over through PollInput.
type FrameLoop struct {
	world *physics.World
	cam   *camera.Camera
	rend  *render.Renderer
	buf   *core.PixelBuffer
	be    backend.Backend

	sound ThrustSound

	// Fixed-timestep accumulator state
	accumulator float64

	exiting bool
}

// New wires a frame loop around a presentation backend
func New(be backend.Backend) *FrameLoop {
	return &FrameLoop{
		world: physics.NewWorld(),
		cam:   camera.New(),
		rend:  render.New(),
		buf:   core.NewPixelBuffer(),
		be:    be,
	}
}

// SetSound attaches an optional thrust sound sink
func (l *FrameLoop) SetSound(s ThrustSound) {
	l.sound = s
}

// World exposes the simulation for inspection (headless tools, tests)
func (l *FrameLoop) World() *physics.World {
	return l.world
}

// Camera exposes the active camera
func (l *FrameLoop) Camera() *camera.Camera {
	return l.cam
}

// Run paces the loop at the presentation frame interval until the
// backend requests exit, an Exit event arrives, or presenting fails
// past its retry budget.
func (l *FrameLoop) Run() error {
	last := time.Now()
	for {
		now := time.Now()
		elapsed := now.Sub(last).Seconds()
		last = now

		done, err := l.Tick(elapsed)
		if err != nil {
			return err
		}
		if done {
			return nil
		}

		// Pacing is the loop's only suspension point
		if spare := parameter.FrameInterval - time.Since(now); spare > 0 {
			time.Sleep(spare)
		}
	}
}

// Tick runs exactly one frame with the given wall-clock elapsed time
// in seconds. Returns done=true when the session should end. Split out
// from Run so tests can drive the loop deterministically.
func (l *FrameLoop) Tick(elapsed float64) (done bool, err error) {
	l.applyInputs(l.be.PollInput())

	if l.be.ShouldExit() || l.exiting {
		return true, nil
	}

	// Fixed-timestep accumulator: leftover time carries across
	// frames; steps are capped so a stall cannot snowball, and time
	// beyond the cap is dropped.
	l.accumulator += elapsed
	for steps := 0; l.accumulator >= parameter.FixedStep && steps < parameter.MaxCatchUpSteps; steps++ {
		l.world.Step()
		l.cam.Tick(parameter.FixedStep)
		l.accumulator -= parameter.FixedStep
	}
	if l.accumulator > parameter.FixedStep {
		l.accumulator = parameter.FixedStep
	}

	l.cam.UpdateFromBody(l.world)
	l.rend.Render(l.world, l.cam, l.buf)

	if l.sound != nil {
		l.sound.SetThrust(l.world.LastThrust())
	}

	return false, l.present()
}

// applyInputs routes events in arrival order. Directional input drives
// the drone, except in FreeCam where it flies the camera instead.
func (l *FrameLoop) applyInputs(events []event.InputEvent) {
	for _, ev := range events {
		switch ev.Type {
		case event.ThrustUp:
			l.thrust(physics.DirUp)
		case event.ThrustDown:
			l.thrust(physics.DirDown)
		case event.ThrustLeft:
			l.thrust(physics.DirLeft)
		case event.ThrustRight:
			l.thrust(physics.DirRight)
		case event.ThrustForward:
			l.thrust(physics.DirForward)
		case event.ThrustBackward:
			l.thrust(physics.DirBackward)
		case event.CameraMode:
			l.cam.SetMode(cameraMode(ev.Mode))
		case event.Reset:
			l.world.Reset()
		case event.Stop:
			l.world.StopMotion()
		case event.Exit:
			l.exiting = true
		}
	}
}

func (l *FrameLoop) thrust(dir physics.Direction) {
	if l.cam.Mode() == camera.FreeCam {
		l.cam.Fly(dir)
		return
	}
	l.world.ApplyThrust(dir)
}

func cameraMode(m event.Mode) camera.Mode {
	switch m {
	case event.ModeFirstPerson:
		return camera.FirstPerson
	case event.ModeFreeCam:
		return camera.FreeCam
	}
	return camera.ThirdPerson
}

// present hands the frame to the backend, retrying once before giving
// up. A backend that cannot display frames ends the session.
func (l *FrameLoop) present() error {
	status := core.Status{
		X:          l.world.Drone.Position.X(),
		Y:          l.world.Drone.Position.Y(),
		Z:          l.world.Drone.Position.Z(),
		Thrust:     l.world.LastThrust(),
		SimTime:    l.world.SimTime(),
		CameraMode: l.cam.Mode().String(),
	}

	var err error
	for attempt := 0; attempt <= parameter.PresentRetries; attempt++ {
		if err = l.be.Present(l.buf, status); err == nil {
			return nil
		}
		logger.Log.WithError(err).Warn("present failed")
	}
	return err
}
