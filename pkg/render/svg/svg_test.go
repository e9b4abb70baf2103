package svg

import (
	"strings"
	"testing"

	"github.com/matzehuels/orgflow/pkg/chart"
	"github.com/matzehuels/orgflow/pkg/geom"
	"github.com/matzehuels/orgflow/pkg/render/svg/styles"
)

func testChart() *chart.Chart {
	c := chart.New()
	c.Name = "test"
	c.Shapes = []chart.Shape{
		{Type: chart.TypeRectangle, ID: "a", X: 100, Y: 100, Width: 140, Height: 50, Text: "CEO"},
		{Type: chart.TypeRectangle, ID: "b", X: 300, Y: 300, Width: 140, Height: 50, Text: "VP"},
		{
			Type:           chart.TypeConnector,
			ID:             "c1",
			Start:          &chart.Binding{BoxID: "a", Side: chart.SideBottom},
			End:            &chart.Binding{BoxID: "b", Side: chart.SideTop},
			StartPoint:     &geom.Point{X: 170, Y: 150},
			EndPoint:       &geom.Point{X: 370, Y: 300},
			StartDirection: chart.DirectionVertical,
			EndArrow:       chart.ArrowArrow,
		},
	}
	return c
}

func TestRender(t *testing.T) {
	out := string(Render(testChart()))

	expected := []string{
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 800.0 600.0" width="800" height="600">`,
		`id="box-a"`,
		`id="box-b"`,
		`>CEO</text>`,
		`>VP</text>`,
		`id="conn-c1"`,
		`class="connector"`,
		// Vertical elbow into the top side: the arrowhead points down.
		`rotate(90)`,
		`</svg>`,
	}
	for _, want := range expected {
		if !strings.Contains(out, want) {
			t.Errorf("Render() output missing %q", want)
		}
	}
}

func TestRenderZOrder(t *testing.T) {
	out := string(Render(testChart()))

	// Shapes draw in document order: a, then b, then the connector.
	ia := strings.Index(out, `id="box-a"`)
	ib := strings.Index(out, `id="box-b"`)
	ic := strings.Index(out, `id="conn-c1"`)
	if ia < 0 || ib < 0 || ic < 0 {
		t.Fatal("Render() output missing shapes")
	}
	if !(ia < ib && ib < ic) {
		t.Errorf("Render() z-order wrong: box-a at %d, box-b at %d, conn-c1 at %d", ia, ib, ic)
	}
}

func TestRenderGridOption(t *testing.T) {
	c := testChart()

	plain := string(Render(c))
	if strings.Contains(plain, `url(#grid)`) {
		t.Error("Render() without WithGrid should not draw the grid")
	}

	grid := string(Render(c, WithGrid()))
	if !strings.Contains(grid, `url(#grid)`) {
		t.Error("Render(WithGrid()) should draw the grid")
	}
}

func TestRenderBlueprintStyle(t *testing.T) {
	out := string(Render(testChart(), WithStyle(styles.Blueprint{})))

	if !strings.Contains(out, `fill="#0a3055"`) {
		t.Error("Render() with Blueprint should use the blueprint canvas")
	}
	if strings.Contains(out, `fill="white"`) {
		t.Error("Render() with Blueprint should not fall back to the simple palette")
	}
}

func TestRenderEmptyChart(t *testing.T) {
	out := string(Render(chart.New()))

	if !strings.HasPrefix(out, "<svg ") || !strings.HasSuffix(out, "</svg>\n") {
		t.Errorf("Render() of empty chart should still be a complete document\nGot: %s", out)
	}
}

func TestRenderDeterministic(t *testing.T) {
	a := Render(testChart())
	b := Render(testChart())
	if string(a) != string(b) {
		t.Error("Render() is not deterministic")
	}
}

func TestRenderEllipseAndLabel(t *testing.T) {
	c := chart.New()
	c.Shapes = []chart.Shape{
		{Type: chart.TypeEllipse, ID: "ops", X: 10, Y: 10, Width: 100, Height: 50, Text: "Ops"},
		{Type: chart.TypeText, ID: "note", X: 200, Y: 10, Width: 120, Height: 30, Text: "Q3 draft", FontSize: 12},
		{Type: chart.TypeTriangle, ID: "warn", X: 400, Y: 10, Width: 40, Height: 40},
	}
	out := string(Render(c))

	expected := []string{
		`<ellipse id="box-ops"`,
		`>Q3 draft</text>`,
		`font-size="12.0"`,
		`id="shape-warn"`,
	}
	for _, want := range expected {
		if !strings.Contains(out, want) {
			t.Errorf("Render() output missing %q", want)
		}
	}
}
