package audio

import (
	"math"
	"testing"
)

func buffers(n int) [][]float32 {
	return [][]float32{make([]float32, n), make([]float32, n)}
}

func peak(buf []float32) float64 {
	p := 0.0
	for _, v := range buf {
		p = math.Max(p, math.Abs(float64(v)))
	}
	return p
}

func TestRenderSilentWithoutPulse(t *testing.T) {
	c := NewClick(2200, 0.5)
	out := buffers(BufferSize)
	c.Render(out)

	if p := peak(out[0]); p != 0 {
		t.Errorf("expected silence, got peak %f", p)
	}
}

func TestRenderPulse(t *testing.T) {
	c := NewClick(2200, 0.5)
	c.Pulse()

	out := buffers(BufferSize)
	c.Render(out)

	p := peak(out[0])
	if p == 0 {
		t.Fatal("expected a click after Pulse")
	}
	if p > 0.5 {
		t.Errorf("expected peak within volume 0.5, got %f", p)
	}
	for i := range out[0] {
		if out[0][i] != out[1][i] {
			t.Fatalf("expected identical channels at sample %d", i)
		}
	}
}

func TestRenderDecays(t *testing.T) {
	c := NewClick(2200, 1)
	c.Pulse()

	first := buffers(BufferSize)
	c.Render(first)
	// DecayTime is 30ms, about 1300 samples
	for i := 0; i < 8; i++ {
		c.Render(buffers(BufferSize))
	}
	late := buffers(BufferSize)
	c.Render(late)

	if peak(late[0]) >= peak(first[0])/100 {
		t.Errorf("expected the click to decay, first %f late %f", peak(first[0]), peak(late[0]))
	}
}

func TestPulses(t *testing.T) {
	c := NewClick(2200, 0.2)
	for i := 0; i < 3; i++ {
		c.Pulse()
	}
	if c.Pulses() != 3 {
		t.Errorf("expected 3 pulses, got %d", c.Pulses())
	}
}

func TestVolumeClamped(t *testing.T) {
	if v := NewClick(1000, 4).Volume; v != 1 {
		t.Errorf("expected volume clamped to 1, got %f", v)
	}
	if v := NewClick(1000, -1).Volume; v != 0 {
		t.Errorf("expected volume clamped to 0, got %f", v)
	}
}
