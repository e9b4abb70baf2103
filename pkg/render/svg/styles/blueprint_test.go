package styles

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/orgflow/pkg/geom"
)

func TestBlueprintRenderCanvas(t *testing.T) {
	s := Blueprint{}

	var buf bytes.Buffer
	s.RenderCanvas(&buf, 800, 600, false)
	output := buf.String()

	if !strings.Contains(output, `fill="#0a3055"`) {
		t.Errorf("RenderCanvas() missing blueprint background\nGot: %s", output)
	}
	// The blueprint grid is part of the look and drawn even when the
	// grid flag is off.
	if !strings.Contains(output, `<pattern id="grid"`) {
		t.Errorf("RenderCanvas() missing grid pattern\nGot: %s", output)
	}
}

func TestBlueprintRenderBox(t *testing.T) {
	s := Blueprint{}

	var buf bytes.Buffer
	s.RenderBox(&buf, BoxView{ID: "ceo", X: 10, Y: 20, W: 140, H: 50, CX: 80, CY: 45})
	output := buf.String()

	expected := []string{
		`id="box-ceo"`,
		`fill="#0a3055"`,
		`stroke="#dce9f7"`,
	}
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("RenderBox() output missing %q\nGot: %s", want, output)
		}
	}
	// Blueprint boxes have square corners.
	if strings.Contains(output, "rx=") {
		t.Errorf("RenderBox() blueprint boxes should not be rounded\nGot: %s", output)
	}
}

func TestBlueprintRenderText(t *testing.T) {
	s := Blueprint{}

	var buf bytes.Buffer
	s.RenderText(&buf, TextView{ID: "ceo", Text: "CEO", CX: 80, CY: 45, W: 140, H: 50})
	output := buf.String()

	if !strings.Contains(output, "Menlo") {
		t.Errorf("RenderText() should use the monospace stack\nGot: %s", output)
	}
	if !strings.Contains(output, `fill="#dce9f7"`) {
		t.Errorf("RenderText() should use blueprint ink\nGot: %s", output)
	}
}

func TestBlueprintRenderConnector(t *testing.T) {
	s := Blueprint{}

	var buf bytes.Buffer
	s.RenderConnector(&buf, ConnectorView{
		ID:       "c1",
		Points:   []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 40}},
		EndArrow: ArrowBar,
		EndAngle: 90,
	})
	output := buf.String()

	if !strings.Contains(output, `stroke="#dce9f7"`) {
		t.Errorf("RenderConnector() should use blueprint ink\nGot: %s", output)
	}
	if !strings.Contains(output, `d="M-4,-6 L-4,6"`) {
		t.Errorf("RenderConnector() missing bar arrowhead\nGot: %s", output)
	}
}

func TestBlueprintImplementsStyle(t *testing.T) {
	// Compile-time check that Blueprint implements Style
	var _ Style = Blueprint{}
}
