package export

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/rulerpick/internal/automation"
	"github.com/san-kum/rulerpick/internal/geometry"
)

func centredLayout() []geometry.Mark {
	return geometry.Layout(geometry.Params{
		Value: 0, Minimum: -100, Maximum: 100, Tick: 1,
		Width: 200, Height: 60, MarkCount: 20, MarkWidth: 2, MarkRadius: 1,
	})
}

func TestLayoutToSVG(t *testing.T) {
	svg := LayoutToSVG(centredLayout(), 200, 60, "#ffffff", "#000000")

	if !strings.HasPrefix(svg, "<?xml") {
		t.Error("expected xml header")
	}
	if got := strings.Count(svg, `rx="1.00"`); got != 21 {
		t.Errorf("expected 21 marks, got %d", got)
	}
	if !strings.Contains(svg, `fill-opacity="1.000"`) {
		t.Error("expected a fully opaque centre mark")
	}
}

func TestLayoutToSVGSkipsHidden(t *testing.T) {
	marks := geometry.Layout(geometry.Params{
		Value: 0, Minimum: 0, Maximum: 100, Tick: 1,
		Width: 200, Height: 60, MarkCount: 20, MarkWidth: 2, MarkRadius: 1,
	})
	hidden := 0
	for _, m := range marks {
		if m.Hidden() {
			hidden++
		}
	}
	if hidden == 0 {
		t.Fatal("expected boundary gap at the minimum")
	}

	svg := LayoutToSVG(marks, 200, 60, "#ffffff", "#000000")
	if got := strings.Count(svg, "<rect x="); got != len(marks)-hidden {
		t.Errorf("expected %d painted marks, got %d", len(marks)-hidden, got)
	}
}

func TestTraceToSVG(t *testing.T) {
	samples := []automation.Sample{
		{T: 0, Value: 0},
		{T: 0.1, Value: 4.6},
		{T: 0.2, Value: 5},
	}
	svg := TraceToSVG(samples, 300, 100, "#00ff88")
	if !strings.Contains(svg, `stroke="#00ff88"`) {
		t.Error("expected stroke colour")
	}
	if got := strings.Count(svg, " L"); got != 2 {
		t.Errorf("expected 2 line segments, got %d", got)
	}
	if TraceToSVG(samples[:1], 300, 100, "#fff") != "" {
		t.Error("expected empty output for a single sample")
	}
}

func TestRasterizeLayout(t *testing.T) {
	white, _ := colorful.Hex("#ffffff")
	black, _ := colorful.Hex("#000000")
	img := RasterizeLayout(centredLayout(), 200, 60, white, black)

	// centre mark spans x in [99, 101]
	c := img.RGBAAt(100, 30)
	if c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("expected white centre mark, got %v", c)
	}
	gap := img.RGBAAt(105, 30)
	if gap.R != 0 || gap.G != 0 || gap.B != 0 {
		t.Errorf("expected background between marks, got %v", gap)
	}
	// edge marks are drawn at the opacity floor
	edge := img.RGBAAt(10, 30)
	if edge.R == 0 || edge.R == 255 {
		t.Errorf("expected a faded edge mark, got %v", edge)
	}
}

func TestLayoutToPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := LayoutToPNG(&buf, centredLayout(), 200, 60, "#ffffff", "#101010"); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 60 {
		t.Errorf("expected 200x60, got %dx%d", b.Dx(), b.Dy())
	}

	if err := LayoutToPNG(&buf, nil, 10, 10, "white", "#000000"); err == nil {
		t.Error("expected error for a non-hex colour")
	}
}
