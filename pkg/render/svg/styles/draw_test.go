package styles

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/orgflow/pkg/geom"
)

func TestRenderGrid(t *testing.T) {
	var buf bytes.Buffer
	RenderGrid(&buf, 800, 600, "#eee")
	output := buf.String()

	expected := []string{
		`<pattern id="grid" width="20" height="20"`,
		`patternUnits="userSpaceOnUse"`,
		`stroke="#eee"`,
		`fill="url(#grid)"`,
		`width="800.0" height="600.0"`,
	}
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("RenderGrid() output missing %q\nGot: %s", want, output)
		}
	}
}

func TestRenderArrowhead(t *testing.T) {
	tests := []struct {
		name     string
		kind     Arrow
		angle    float64
		contains string
	}{
		{
			name:     "chevron pointing down",
			kind:     ArrowChevron,
			angle:    90,
			contains: `d="M-8,-5 L0,0 L-8,5" transform="translate(100.00,200.00) rotate(90)"`,
		},
		{
			name:     "bar pointing left",
			kind:     ArrowBar,
			angle:    180,
			contains: `d="M-4,-6 L-4,6" transform="translate(100.00,200.00) rotate(180)"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			RenderArrowhead(&buf, geom.Point{X: 100, Y: 200}, tt.angle, tt.kind, "#333")
			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("RenderArrowhead() output missing %q\nGot: %s", tt.contains, buf.String())
			}
		})
	}
}

func TestRenderArrowheadNone(t *testing.T) {
	var buf bytes.Buffer
	RenderArrowhead(&buf, geom.Point{X: 1, Y: 2}, 0, ArrowNone, "#333")

	if buf.Len() != 0 {
		t.Errorf("RenderArrowhead() wrote %d bytes for ArrowNone, want 0", buf.Len())
	}
}

func TestPolylinePoints(t *testing.T) {
	got := PolylinePoints([]geom.Point{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 81.5}})
	want := "0.00,0.00 50.00,0.00 50.00,81.50"
	if got != want {
		t.Errorf("PolylinePoints() = %q, want %q", got, want)
	}
}
