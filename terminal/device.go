// Package terminal is the reference presentation device: it renders
// the engine's pixel buffer into character cells with tcell and turns
// keystrokes into input events. The engine itself never imports this
// package; it sees only the backend interface.
package terminal

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/amitu/bhumi/core"
	"github.com/amitu/bhumi/event"
)

// ErrClosed is returned by Present after the device released the
// terminal
var ErrClosed = errors.New("terminal: device closed")

// upper half block; foreground paints the top pixel of a cell,
// background the bottom one
const halfBlock = '▀'

// Device owns the terminal for its lifetime: raw mode and the
// alternate screen are acquired in New and released in Close.
type Device struct {
	screen tcell.Screen
	queue  *event.Queue

	exit   atomic.Bool
	closed atomic.Bool
	fini   sync.Once
	done   chan struct{}
}

// New acquires the process terminal
func New() (*Device, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	return newDevice(screen)
}

// NewWithScreen wraps an existing tcell screen, used with simulation
// screens in tests
func NewWithScreen(screen tcell.Screen) (*Device, error) {
	return newDevice(screen)
}

func newDevice(screen tcell.Screen) (*Device, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	d := &Device{
		screen: screen,
		queue:  event.NewQueue(),
		done:   make(chan struct{}),
	}
	go d.readInput()
	return d, nil
}

// readInput feeds the event queue until the screen is finalized
func (d *Device) readInput() {
	defer close(d.done)

	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}

		switch tev := ev.(type) {
		case *tcell.EventKey:
			if ie, ok := mapKey(tev); ok {
				if ie.Type == event.Exit {
					d.exit.Store(true)
				}
				d.queue.Push(ie)
			}
		case *tcell.EventResize:
			d.screen.Sync()
		}
	}
}

// PollInput drains the events accumulated since the last call
func (d *Device) PollInput() []event.InputEvent {
	return d.queue.Consume()
}

// ShouldExit reports a pending quit; sticky once set
func (d *Device) ShouldExit() bool {
	return d.exit.Load()
}

// Present draws the frame centered on the terminal, two pixels per
// cell via half blocks, with the status overlay formatted on the
// bottom row.
func (d *Device) Present(buf *core.PixelBuffer, status core.Status) error {
	if d.closed.Load() {
		return ErrClosed
	}

	termW, termH := d.screen.Size()
	if termH < 2 || termW < 8 {
		// Nothing sensible fits; keep the session alive for a resize
		d.screen.Show()
		return nil
	}

	d.screen.Fill(' ', tcell.StyleDefault)

	gridW, gridH := fitGrid(buf, termW, termH-1)
	left := (termW - gridW) / 2
	top := (termH - 1 - gridH) / 2

	for cy := 0; cy < gridH; cy++ {
		for cx := 0; cx < gridW; cx++ {
			px := cx * buf.Width() / gridW
			pyTop := (cy * 2) * buf.Height() / (gridH * 2)
			pyBot := (cy*2 + 1) * buf.Height() / (gridH * 2)

			topC, _ := buf.Get(px, pyTop)
			botC, _ := buf.Get(px, pyBot)

			style := tcell.StyleDefault.
				Foreground(toTcell(topC)).
				Background(toTcell(botC))
			d.screen.SetContent(left+cx, top+cy, halfBlock, nil, style)
		}
	}

	d.drawStatus(status, termW, termH-1)
	d.screen.Show()
	return nil
}

// fitGrid scales the buffer into the available cell area, preserving
// aspect ratio; each cell covers one pixel column and two pixel rows
func fitGrid(buf *core.PixelBuffer, availW, availH int) (int, int) {
	gridW := buf.Width()
	gridH := buf.Height() / 2

	if gridW > availW {
		gridH = gridH * availW / gridW
		gridW = availW
	}
	if gridH > availH {
		gridW = gridW * availH / gridH
		gridH = availH
	}
	if gridW < 1 {
		gridW = 1
	}
	if gridH < 1 {
		gridH = 1
	}
	return gridW, gridH
}

func (d *Device) drawStatus(status core.Status, termW, row int) {
	line := fmt.Sprintf(
		"pos %6.2f %6.2f %6.2f  thrust %5.1fN  t %7.2fs  cam %-12s  wasd/space/c thrust  1/2/3 cam  0 reset  x stop  q quit",
		status.X, status.Y, status.Z, status.Thrust, status.SimTime, status.CameraMode,
	)

	style := tcell.StyleDefault.
		Foreground(tcell.ColorWhite).
		Background(tcell.ColorDarkSlateGray)
	for x := 0; x < termW; x++ {
		r := ' '
		if x < len(line) {
			r = rune(line[x])
		}
		d.screen.SetContent(x, row, r, nil, style)
	}
}

func toTcell(c core.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Close releases the terminal; safe to call repeatedly
func (d *Device) Close() {
	d.fini.Do(func() {
		d.closed.Store(true)
		d.screen.Fini()
		<-d.done
	})
}
