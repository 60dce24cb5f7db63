package terminal

import (
	"io"
	"os"
)

// Escape sequences for crash recovery, written raw because tcell's
// state is unknown mid-panic
var (
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiSGR0          = []byte("\x1b[0m")
	csiAutoWrapOn    = []byte("\x1b[?7h")
)

// EmergencyReset restores the terminal to a usable state after a
// panic, when the device's own Close can no longer be trusted to run
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
