package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/amitu/bhumi/core"
	"github.com/amitu/bhumi/engine"
	"github.com/amitu/bhumi/event"
	"github.com/amitu/bhumi/logger"
	"github.com/amitu/bhumi/parameter"
)

var (
	frameFlag = flag.Int("frames", 120, "Number of frames to simulate")
	dumpFlag  = flag.Int("dump", 30, "Dump a braille frame every N frames, 0 disables")
	lumaFlag  = flag.Float64("luma", 0.25, "Brightness threshold for braille dots")
	hoverFlag = flag.Int("hover", 20, "Frames of vertical thrust before flying forward")
)

// recorder drives the loop without a terminal: it feeds a scripted
// flight and keeps the most recent frame for dumping
type recorder struct {
	frame  int
	last   *core.PixelBuffer
	status core.Status
}

func (r *recorder) Present(buf *core.PixelBuffer, status core.Status) error {
	r.last = buf
	r.status = status
	return nil
}

func (r *recorder) PollInput() []event.InputEvent {
	r.frame++
	switch {
	case r.frame == 1:
		return []event.InputEvent{{Type: event.CameraMode, Mode: event.ModeThirdPerson}}
	case r.frame <= *hoverFlag:
		return []event.InputEvent{{Type: event.ThrustUp}}
	default:
		return []event.InputEvent{{Type: event.ThrustForward}}
	}
}

func (r *recorder) ShouldExit() bool { return false }

func (r *recorder) Close() {}

func main() {
	flag.Parse()
	logger.Init(false)

	rec := &recorder{}
	loop := engine.New(rec)

	for i := 0; i < *frameFlag; i++ {
		done, err := loop.Tick(parameter.FixedStep)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Frame loop failed: %v\n", err)
			os.Exit(1)
		}
		if done {
			break
		}

		d := loop.World().Drone
		fmt.Printf("frame %3d t=%6.3fs pos=(%+.2f %+.2f %+.2f) vel=(%+.2f %+.2f %+.2f)\n",
			i+1, loop.World().SimTime(),
			d.Position.X(), d.Position.Y(), d.Position.Z(),
			d.Velocity.X(), d.Velocity.Y(), d.Velocity.Z())

		if *dumpFlag > 0 && (i+1)%*dumpFlag == 0 && rec.last != nil {
			dumpBraille(os.Stdout, rec.last, *lumaFlag)
		}
	}
}

// dumpBraille renders the pixel buffer as braille cells, one character
// per 2x4 pixel block
func dumpBraille(w *os.File, buf *core.PixelBuffer, threshold float64) {
	var sb strings.Builder
	for cy := 0; cy < buf.Height(); cy += 4 {
		for cx := 0; cx < buf.Width(); cx += 2 {
			var bits rune
			for dx := 0; dx < 2; dx++ {
				for dy := 0; dy < 4; dy++ {
					px, ok := buf.Get(cx+dx, cy+dy)
					if !ok || px.Luma() <= threshold {
						continue
					}
					bits |= brailleDot(dx, dy)
				}
			}
			sb.WriteRune(0x2800 + bits)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprint(w, sb.String())
}

func brailleDot(dx, dy int) rune {
	if dy == 3 {
		if dx == 0 {
			return 0x40
		}
		return 0x80
	}
	shift := uint(dy)
	if dx == 1 {
		shift += 3
	}
	return 1 << shift
}
