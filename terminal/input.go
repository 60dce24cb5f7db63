package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/amitu/bhumi/event"
)

// mapKey translates a keystroke into an input event. Unbound keys are
// dropped.
func mapKey(ev *tcell.EventKey) (event.InputEvent, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return event.InputEvent{Type: event.Exit}, true
	case tcell.KeyUp:
		return event.InputEvent{Type: event.ThrustForward}, true
	case tcell.KeyDown:
		return event.InputEvent{Type: event.ThrustBackward}, true
	case tcell.KeyLeft:
		return event.InputEvent{Type: event.ThrustLeft}, true
	case tcell.KeyRight:
		return event.InputEvent{Type: event.ThrustRight}, true
	}

	if ev.Key() != tcell.KeyRune {
		return event.InputEvent{}, false
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return event.InputEvent{Type: event.Exit}, true
	case 'w', 'W':
		return event.InputEvent{Type: event.ThrustForward}, true
	case 's', 'S':
		return event.InputEvent{Type: event.ThrustBackward}, true
	case 'a', 'A':
		return event.InputEvent{Type: event.ThrustLeft}, true
	case 'd', 'D':
		return event.InputEvent{Type: event.ThrustRight}, true
	case ' ':
		return event.InputEvent{Type: event.ThrustUp}, true
	case 'c', 'C':
		return event.InputEvent{Type: event.ThrustDown}, true
	case '0':
		return event.InputEvent{Type: event.Reset}, true
	case 'x', 'X':
		return event.InputEvent{Type: event.Stop}, true
	case '1':
		return event.InputEvent{Type: event.CameraMode, Mode: event.ModeFirstPerson}, true
	case '2':
		return event.InputEvent{Type: event.CameraMode, Mode: event.ModeThirdPerson}, true
	case '3':
		return event.InputEvent{Type: event.CameraMode, Mode: event.ModeFreeCam}, true
	}
	return event.InputEvent{}, false
}
