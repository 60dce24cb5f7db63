package core

// Status is the per-frame telemetry side-channel accompanying the
// pixel buffer. It stays structured so text backends can render it as
// text instead of reading it back out of pixels.
type Status struct {
	// Drone position in meters
	X, Y, Z float64

	// Thrust magnitude applied during the last tick, in newtons
	Thrust float64

	// Elapsed simulation time in seconds
	SimTime float64

	// Active camera mode name
	CameraMode string
}
