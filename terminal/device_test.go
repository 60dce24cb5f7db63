package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/amitu/bhumi/core"
	"github.com/amitu/bhumi/event"
)

func newSimDevice(t *testing.T) (*Device, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	d, err := NewWithScreen(sim)
	if err != nil {
		t.Fatalf("Device init failed: %v", err)
	}
	sim.SetSize(100, 40)
	t.Cleanup(d.Close)
	return d, sim
}

// waitInput polls until the device delivers events or the deadline
// passes; key delivery crosses the input goroutine
func waitInput(t *testing.T, d *Device) []event.InputEvent {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if evs := d.PollInput(); len(evs) > 0 {
			return evs
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("Timed out waiting for input events")
	return nil
}

func TestKeyMappingProducesEvents(t *testing.T) {
	d, sim := newSimDevice(t)

	sim.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)
	evs := waitInput(t, d)
	if evs[0].Type != event.ThrustForward {
		t.Errorf("Expected ThrustForward from 'w', got %v", evs[0].Type)
	}

	sim.InjectKey(tcell.KeyRune, '3', tcell.ModNone)
	evs = waitInput(t, d)
	if evs[0].Type != event.CameraMode || evs[0].Mode != event.ModeFreeCam {
		t.Errorf("Expected FreeCam switch from '3', got %+v", evs[0])
	}

	// Unbound keys are dropped, not queued
	sim.InjectKey(tcell.KeyRune, 'z', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	evs = waitInput(t, d)
	if len(evs) != 1 || evs[0].Type != event.ThrustUp {
		t.Errorf("Expected only ThrustUp, got %+v", evs)
	}
}

func TestExitKeyIsSticky(t *testing.T) {
	d, sim := newSimDevice(t)

	if d.ShouldExit() {
		t.Fatal("Expected no exit before input")
	}

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	evs := waitInput(t, d)
	if evs[0].Type != event.Exit {
		t.Errorf("Expected Exit event, got %v", evs[0].Type)
	}
	if !d.ShouldExit() {
		t.Error("Expected ShouldExit after quit key")
	}
	if !d.ShouldExit() {
		t.Error("Expected ShouldExit to stay set")
	}
}

func TestPresentDrawsCells(t *testing.T) {
	d, sim := newSimDevice(t)

	buf := core.NewPixelBuffer()
	buf.Clear(core.RGBA{R: 200, G: 40, B: 40, A: 255})

	if err := d.Present(buf, core.Status{CameraMode: "third-person"}); err != nil {
		t.Fatalf("Present failed: %v", err)
	}

	cells, w, h := sim.GetContents()
	found := false
	for _, c := range cells {
		if len(c.Runes) > 0 && c.Runes[0] == halfBlock {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Expected half-block cells on a %dx%d screen", w, h)
	}
}

func TestPresentAfterCloseFails(t *testing.T) {
	d, _ := newSimDevice(t)
	d.Close()
	d.Close() // idempotent

	if err := d.Present(core.NewPixelBuffer(), core.Status{}); err == nil {
		t.Error("Expected Present to fail once the device is closed")
	}
}
