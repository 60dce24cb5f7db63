package audio

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/amitu/bhumi/parameter"
)

// Hum is the rotor sound: a continuous sine voice whose pitch and
// gain follow the thrust applied each frame. Failure to open the
// speaker is non-fatal; the engine runs silent.
type Hum struct {
	// float64 bits of the normalized thrust target, written by the
	// frame loop and read by the audio goroutine
	thrustBits atomic.Uint64

	muted   atomic.Bool
	started bool
}

// NewHum opens the speaker and starts the hum voice at zero gain
func NewHum() (*Hum, error) {
	sr := beep.SampleRate(parameter.AudioSampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, err
	}

	h := &Hum{}
	speaker.Play(&humStreamer{hum: h, sampleRate: float64(sr)})
	h.started = true
	return h, nil
}

// SetThrust feeds the thrust magnitude for the last tick, in newtons.
// Implements engine.ThrustSound. Safe to call from the frame loop
// while the speaker goroutine streams.
func (h *Hum) SetThrust(newtons float64) {
	norm := newtons / (2 * parameter.ThrustForceVertical)
	if norm > 1 {
		norm = 1
	}
	h.thrustBits.Store(math.Float64bits(norm))
}

// SetMuted silences the hum without stopping the speaker
func (h *Hum) SetMuted(m bool) {
	h.muted.Store(m)
}

// Stop releases the speaker
func (h *Hum) Stop() {
	if h.started {
		speaker.Clear()
		speaker.Close()
		h.started = false
	}
}

// humStreamer generates the hum samples. Gain eases toward its target
// to avoid clicks when thrust starts and stops.
type humStreamer struct {
	hum        *Hum
	sampleRate float64
	phase      float64
	gain       float64
}

func (s *humStreamer) Stream(samples [][2]float64) (int, bool) {
	thrust := math.Float64frombits(s.hum.thrustBits.Load())

	targetGain := parameter.HumGain * thrust
	if s.hum.muted.Load() {
		targetGain = 0
	}
	freq := parameter.HumBaseFrequency + parameter.HumThrustFrequency*thrust
	step := freq / s.sampleRate

	for i := range samples {
		s.gain += (targetGain - s.gain) * 0.0005
		v := math.Sin(2 * math.Pi * s.phase) * s.gain
		samples[i][0] = v
		samples[i][1] = v

		s.phase += step
		if s.phase >= 1 {
			s.phase -= 1
		}
	}
	return len(samples), true
}

func (s *humStreamer) Err() error {
	return nil
}
