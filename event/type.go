package event

// Type identifies an input event
type Type int

const (
	// Translation thrust on the drone's world axes
	ThrustUp Type = iota
	ThrustDown
	ThrustLeft
	ThrustRight
	ThrustForward
	ThrustBackward

	// CameraMode switches the active camera mode; Mode carries the target
	CameraMode

	// Reset teleports the drone back to spawn and zeroes velocities
	Reset

	// Stop zeroes drone velocities in place
	Stop

	// Exit requests engine shutdown; the sole cancellation signal
	Exit
)

// Mode mirrors camera.Mode for CameraMode events without importing the
// camera package
type Mode int

const (
	ModeFirstPerson Mode = iota
	ModeThirdPerson
	ModeFreeCam
)

// InputEvent is a single input occurrence produced by a backend and
// consumed once by the frame loop
type InputEvent struct {
	Type Type
	Mode Mode // valid only for CameraMode events
}

// String returns the event name for logs
func (t Type) String() string {
	switch t {
	case ThrustUp:
		return "ThrustUp"
	case ThrustDown:
		return "ThrustDown"
	case ThrustLeft:
		return "ThrustLeft"
	case ThrustRight:
		return "ThrustRight"
	case ThrustForward:
		return "ThrustForward"
	case ThrustBackward:
		return "ThrustBackward"
	case CameraMode:
		return "CameraMode"
	case Reset:
		return "Reset"
	case Stop:
		return "Stop"
	case Exit:
		return "Exit"
	}
	return "Unknown"
}
