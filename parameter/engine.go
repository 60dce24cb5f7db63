package parameter

import "time"

// Frame Loop & Timing
const (
	// FixedStep is the physics integration timestep (60 Hz)
	FixedStep = 1.0 / 60.0

	// FrameInterval is the target presentation frame interval (~30 FPS)
	FrameInterval = 33 * time.Millisecond

	// MaxCatchUpSteps caps physics steps per rendered frame so a stalled
	// presentation cannot trigger a runaway catch-up spiral
	MaxCatchUpSteps = 5

	// PresentRetries is how many times a failed present is retried
	// before the loop gives up and exits
	PresentRetries = 1
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the input event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)
