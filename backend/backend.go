// Package backend defines the contract between the engine and any
// presentation device. The engine depends only on this interface;
// terminal, window, and headless devices live behind it.
package backend

import (
	"github.com/amitu/bhumi/core"
	"github.com/amitu/bhumi/event"
)

// Backend is a presentation device. A backend owns its display
// resource for its own lifetime: it acquires it in its constructor (or
// Init, if it has one) and releases it in Close, and must tolerate
// being constructed, ticked indefinitely, and torn down without
// leaking that resource.
type Backend interface {
	// Present pushes a completed frame for display along with the
	// structured status overlay. The buffer is immutable until the
	// call returns. An error means the output device cannot display
	// frames anymore (terminal gone, window closed).
	Present(buf *core.PixelBuffer, status core.Status) error

	// PollInput returns the input events accumulated since the last
	// poll, in arrival order, without blocking. It may return nil.
	PollInput() []event.InputEvent

	// ShouldExit reports whether the device has requested shutdown.
	// Sticky: once true it stays true.
	ShouldExit() bool

	// Close releases the display resource. Safe to call more than
	// once.
	Close()
}
