// Package term renders charts as Unicode box-drawing text for terminal
// display.
//
// The renderer maps chart pixels onto a character grid (one cell stands
// for 8x16 px, roughly a terminal glyph) and draws boxes, triangles,
// labels, and routed connectors with box-drawing runes. Output backs the
// txt artifact format and the CLI chart viewer; it is lossy by nature and
// makes no attempt at sub-cell precision.
//
// Shapes are drawn in document order. Connectors always draw last so that
// arrowheads stay visible where they land on box borders.
package term

import (
	"math"
	"strings"

	"github.com/matzehuels/orgflow/pkg/geom"
	"github.com/matzehuels/orgflow/pkg/route"
	"github.com/matzehuels/orgflow/pkg/shapes"
)

const (
	cellW = 8.0
	cellH = 16.0

	// margin is the blank border around the content, in cells.
	margin = 1

	// Degenerate coordinates are clipped rather than allocated.
	maxCols = 1024
	maxRows = 512
)

// Render draws the shape list as a text grid. Connector geometry comes
// from the router, so charts should be resolved (or fully laid out)
// first. Returns the empty string for an empty list.
func Render(list []shapes.Shape) string {
	boxes := shapes.BoxIndex(list)
	conns := shapes.ConnectorsOf(list)
	paths := make([][]geom.Point, len(conns))
	for i, c := range conns {
		paths[i] = route.Path(c, boxes)
	}

	cv := newCanvas(list, paths)
	if cv == nil {
		return ""
	}

	for _, s := range list {
		switch v := s.(type) {
		case *shapes.Box:
			drawBox(cv, v)
			drawBoxText(cv, v)
		case *shapes.Triangle:
			drawTriangle(cv, v)
		case *shapes.Label:
			drawLabel(cv, v)
		}
	}
	for i, c := range conns {
		drawConnector(cv, c, paths[i])
	}

	return cv.String()
}

// =============================================================================
// Canvas
// =============================================================================

type canvas struct {
	cells            [][]rune
	originX, originY float64 // chart-space position of cell (0, 0)
}

// newCanvas sizes a grid to the extent of the shapes and the routed
// connector paths. Paths can overshoot the shape bounds (spine jogs and
// exit stubs), so they are measured directly rather than through
// connector bounds. Returns nil when there is nothing to draw.
func newCanvas(list []shapes.Shape, paths [][]geom.Point) *canvas {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	expand := func(x, y float64) {
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}

	for _, s := range list {
		if _, ok := s.(*shapes.Connector); ok {
			continue // measured via the routed paths below
		}
		r := s.Bounds()
		expand(r.X, r.Y)
		expand(r.X+r.W, r.Y+r.H)
	}
	for _, path := range paths {
		for _, p := range path {
			expand(p.X, p.Y)
		}
	}
	if minX > maxX {
		return nil
	}

	cv := &canvas{
		originX: minX - margin*cellW,
		originY: minY - margin*cellH,
	}
	cols := int(math.Ceil((maxX-cv.originX)/cellW)) + 1 + margin
	rows := int(math.Ceil((maxY-cv.originY)/cellH)) + 1 + margin
	cols = min(max(cols, 1), maxCols)
	rows = min(max(rows, 1), maxRows)

	cv.cells = make([][]rune, rows)
	for i := range cv.cells {
		row := make([]rune, cols)
		for j := range row {
			row[j] = ' '
		}
		cv.cells[i] = row
	}
	return cv
}

func (cv *canvas) col(x float64) int { return int(math.Round((x - cv.originX) / cellW)) }
func (cv *canvas) row(y float64) int { return int(math.Round((y - cv.originY) / cellH)) }

// set places a rune, silently dropping out-of-grid writes.
func (cv *canvas) set(col, row int, r rune) {
	if row < 0 || row >= len(cv.cells) || col < 0 || col >= len(cv.cells[row]) {
		return
	}
	cv.cells[row][col] = r
}

// String joins the grid into lines, trimming trailing spaces and trailing
// blank rows. The result ends with a newline.
func (cv *canvas) String() string {
	last := len(cv.cells) - 1
	for last >= 0 && blankRow(cv.cells[last]) {
		last--
	}

	var b strings.Builder
	for _, row := range cv.cells[:last+1] {
		b.WriteString(strings.TrimRight(string(row), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

func blankRow(row []rune) bool {
	for _, r := range row {
		if r != ' ' {
			return false
		}
	}
	return true
}

// =============================================================================
// Solid Shapes
// =============================================================================

// boxSpan maps a box onto grid coordinates. Boxes never collapse below
// 2x2 cells, so the border always closes.
func (cv *canvas) boxSpan(b *shapes.Box) (c0, r0, w, h int) {
	c0, r0 = cv.col(b.X), cv.row(b.Y)
	w = max(2, int(math.Round(b.Width/cellW)))
	h = max(2, int(math.Round(b.Height/cellH)))
	return c0, r0, w, h
}

func drawBox(cv *canvas, b *shapes.Box) {
	c0, r0, w, h := cv.boxSpan(b)
	c1, r1 := c0+w-1, r0+h-1

	tl, tr, bl, br := '┌', '┐', '└', '┘'
	if b.Kind == shapes.BoxKindEllipse {
		tl, tr, bl, br = '╭', '╮', '╰', '╯'
	}

	for r := r0 + 1; r < r1; r++ {
		for c := c0 + 1; c < c1; c++ {
			cv.set(c, r, ' ')
		}
	}
	for c := c0 + 1; c < c1; c++ {
		cv.set(c, r0, '─')
		cv.set(c, r1, '─')
	}
	for r := r0 + 1; r < r1; r++ {
		cv.set(c0, r, '│')
		cv.set(c1, r, '│')
	}
	cv.set(c0, r0, tl)
	cv.set(c1, r0, tr)
	cv.set(c0, r1, bl)
	cv.set(c1, r1, br)
}

func drawBoxText(cv *canvas, b *shapes.Box) {
	if b.Label == "" {
		return
	}
	c0, r0, w, h := cv.boxSpan(b)
	inner := w - 2
	if h < 3 || inner < 1 {
		return // no interior row to write into
	}

	text := []rune(b.Label)
	if len(text) > inner {
		text = text[:inner]
	}
	row := r0 + h/2
	col := c0 + 1 + (inner-len(text))/2
	for i, r := range text {
		cv.set(col+i, row, r)
	}
}

func drawTriangle(cv *canvas, t *shapes.Triangle) {
	c0, r0 := cv.col(t.X), cv.row(t.Y)
	w := int(math.Round(t.Width / cellW))
	h := int(math.Round(t.Height / cellH))
	if w < 2 || h < 2 {
		cv.set(c0, r0, '▲')
		return
	}

	for r := 0; r < h; r++ {
		frac := float64(r) / float64(h-1)
		half := frac * (float64(w)/2 - 1)
		left := c0 + w/2 - 1 - int(math.Round(half))
		right := c0 + w/2 + int(math.Round(half))
		if r == h-1 {
			for c := left + 1; c < right; c++ {
				cv.set(c, r0+r, '─')
			}
		}
		cv.set(left, r0+r, '╱')
		cv.set(right, r0+r, '╲')
	}
}

func drawLabel(cv *canvas, l *shapes.Label) {
	if l.Text == "" {
		return
	}

	maxLen := 0
	if l.Width > 0 {
		maxLen = int(math.Round(l.Width / cellW))
	}

	row := cv.row(l.Y + l.Height/2)
	col := cv.col(l.X)
	for j, line := range strings.Split(l.Text, "\n") {
		text := []rune(line)
		if maxLen >= 1 && len(text) > maxLen {
			text = text[:maxLen]
		}
		for i, r := range text {
			cv.set(col+i, row+j, r)
		}
	}
}

// =============================================================================
// Connectors
// =============================================================================

type gridPoint struct{ col, row int }

func drawConnector(cv *canvas, c *shapes.Connector, path []geom.Point) {
	if len(path) < 2 {
		return
	}

	pts := make([]gridPoint, 0, len(path))
	for _, p := range path {
		pt := gridPoint{cv.col(p.X), cv.row(p.Y)}
		if n := len(pts); n > 0 && pts[n-1] == pt {
			continue
		}
		pts = append(pts, pt)
	}
	if len(pts) < 2 {
		return // collapsed to a single cell
	}

	// Lines, then bend corners, then arrowheads: each layer overwrites
	// the one beneath so ends and bends come out crisp.
	for i := 1; i < len(pts); i++ {
		drawSegment(cv, pts[i-1], pts[i])
	}
	for i := 1; i < len(pts)-1; i++ {
		in := cellHeading(pts[i-1], pts[i])
		out := cellHeading(pts[i], pts[i+1])
		if r := cornerRune(in, out); r != 0 {
			cv.set(pts[i].col, pts[i].row, r)
		}
	}

	start, end := route.ApproachHeadings(path)
	if r := arrowRune(c.StartArrow, start); r != 0 {
		cv.set(pts[0].col, pts[0].row, r)
	}
	if r := arrowRune(c.EndArrow, end); r != 0 {
		cv.set(pts[len(pts)-1].col, pts[len(pts)-1].row, r)
	}
}

func drawSegment(cv *canvas, a, b gridPoint) {
	switch {
	case a.row == b.row:
		for c := min(a.col, b.col); c <= max(a.col, b.col); c++ {
			cv.set(c, a.row, '─')
		}
	case a.col == b.col:
		for r := min(a.row, b.row); r <= max(a.row, b.row); r++ {
			cv.set(a.col, r, '│')
		}
	}
}

// cellHeading classifies a grid segment's direction. Horizontal movement
// wins should rounding ever produce a diagonal.
func cellHeading(a, b gridPoint) route.Heading {
	switch {
	case b.col > a.col:
		return route.HeadingRight
	case b.col < a.col:
		return route.HeadingLeft
	case b.row > a.row:
		return route.HeadingDown
	default:
		return route.HeadingUp
	}
}

// cornerRune picks the box-drawing elbow joining the incoming and
// outgoing travel directions, or 0 for straight-through points.
func cornerRune(in, out route.Heading) rune {
	switch {
	case in == route.HeadingRight && out == route.HeadingDown,
		in == route.HeadingUp && out == route.HeadingLeft:
		return '┐'
	case in == route.HeadingRight && out == route.HeadingUp,
		in == route.HeadingDown && out == route.HeadingLeft:
		return '┘'
	case in == route.HeadingLeft && out == route.HeadingDown,
		in == route.HeadingUp && out == route.HeadingRight:
		return '┌'
	case in == route.HeadingLeft && out == route.HeadingUp,
		in == route.HeadingDown && out == route.HeadingRight:
		return '└'
	}
	return 0
}

// arrowRune picks the terminal decoration for an arrow kind facing the
// given heading. Bars merge the line and the tick into one rune.
func arrowRune(kind shapes.ArrowKind, h route.Heading) rune {
	switch kind {
	case shapes.ArrowKindArrow:
		switch h {
		case route.HeadingDown:
			return '▼'
		case route.HeadingLeft:
			return '◀'
		case route.HeadingUp:
			return '▲'
		default:
			return '▶'
		}
	case shapes.ArrowKindBar:
		switch h {
		case route.HeadingDown:
			return '┴'
		case route.HeadingLeft:
			return '├'
		case route.HeadingUp:
			return '┬'
		default:
			return '┤'
		}
	}
	return 0
}
