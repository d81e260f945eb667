// Package audio synthesises the tick click played as drag feedback.
package audio

import (
	"log/slog"
	"math"
	"sync"

	"github.com/gordonklaus/portaudio"
)

const (
	SampleRate = 44100
	BufferSize = 256

	// DecayTime is how long a click takes to fall to about -60 dB.
	DecayTime = 0.03
)

// Click is a short decaying tone retriggered on every Pulse. It satisfies
// ruler.Feedback.
type Click struct {
	Stream *portaudio.Stream

	Frequency float64
	Volume    float64

	mu     sync.Mutex
	env    float64
	decay  float64
	phase  float64
	filter [2]float64
	pulses int
	Active bool
}

func NewClick(frequency, volume float64) *Click {
	return &Click{
		Frequency: frequency,
		Volume:    math.Min(math.Max(volume, 0), 1),
		// exp(ln(0.001) / samples) reaches -60 dB after DecayTime
		decay: math.Exp(math.Log(0.001) / (DecayTime * SampleRate)),
	}
}

func (c *Click) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}

	// output only, stereo
	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, c.ProcessAudio)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}
	slog.Debug("audio feedback started", "rate", SampleRate, "buffer", BufferSize)

	c.Stream = stream
	c.Active = true
	return nil
}

func (c *Click) Stop() {
	if c.Stream != nil {
		c.Stream.Stop()
		c.Stream.Close()
		c.Stream = nil
	}
	if c.Active {
		portaudio.Terminate()
	}
	c.Active = false
}

// Pulse retriggers the click envelope.
func (c *Click) Pulse() {
	c.mu.Lock()
	c.env = 1
	c.pulses++
	c.mu.Unlock()
}

// Pulses is the number of clicks triggered so far.
func (c *Click) Pulses() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pulses
}

// one-pole low pass, softens the attack
func lpf(sample, cutoff, dt, state float64) float64 {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	return state + alpha*(sample-state)
}

// ProcessAudio is the portaudio callback.
func (c *Click) ProcessAudio(in []float32, out [][]float32) {
	c.Render(out)
}

// Render fills every channel of out with the current click tail.
func (c *Click) Render(out [][]float32) {
	if len(out) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	dt := 1.0 / float64(SampleRate)
	cutoff := c.Frequency * 4
	for i := range out[0] {
		s := 0.0
		if c.env > 1e-4 {
			s = math.Sin(2*math.Pi*c.phase) * c.env * c.Volume
			c.phase += c.Frequency * dt
			c.phase -= math.Floor(c.phase)
			c.env *= c.decay
		} else {
			c.env = 0
			c.phase = 0
		}
		for ch := range out {
			if i >= len(out[ch]) {
				continue
			}
			idx := ch % len(c.filter)
			c.filter[idx] = lpf(s, cutoff, dt, c.filter[idx])
			out[ch][i] = float32(c.filter[idx])
		}
	}
}
