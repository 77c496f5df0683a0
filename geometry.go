package mazepath

// Point is a viewport-pixel coordinate, as supplied by a click or tap on
// the visualization layer.
type Point struct {
	X, Y float64
}

// Square is a filled-rectangle marker in viewport pixel coordinates.
type Square struct {
	X, Y, W, H float64
}

// Segment is a line between two viewport-pixel points.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// Projector maps logical and doubled grid coordinates into a viewport of
// size (W, H), derived from the maze's logical dimensions.
type Projector struct {
	baseCellSize   float64
	squareSize     float64
	scaleX, scaleY float64
}

// NewProjector derives the viewport scaling factors from the viewport size
// and a grid's logical dimensions. A zero-dimension grid yields a
// Projector whose operations all return empty results.
func NewProjector(w, h float64, grid *Grid) *Projector {
	p := &Projector{}
	if grid.Empty() {
		return p
	}

	c, r := float64(grid.LogicalCols()), float64(grid.LogicalRows())
	p.baseCellSize = min(w/c, h/r)
	p.squareSize = p.baseCellSize / 4
	p.scaleX = w / (p.baseCellSize * c)
	p.scaleY = h / (p.baseCellSize * r)
	return p
}

// center returns the viewport-pixel center of logical cell (c, r).
func (p *Projector) center(c, r int) (float64, float64) {
	centerX := (float64(c) + 0.5) * p.baseCellSize * p.scaleX
	centerY := (float64(r) + 0.5) * p.baseCellSize * p.scaleY
	return centerX, centerY
}

// Marker returns the filled square centered on cell, in logical space. It
// returns false if cell is unset or the projector has no dimensions.
func (p *Projector) Marker(cell Cell) (Square, bool) {
	if cell.IsUnset() || p.baseCellSize == 0 {
		return Square{}, false
	}
	cx, cy := p.center(cell.Col, cell.Row)
	half := p.squareSize / 2
	return Square{
		X: cx - half,
		Y: cy - half,
		W: p.squareSize,
		H: p.squareSize,
	}, true
}

// Segment returns the line between the centers of two doubled-grid cells.
// Each doubled cell is collapsed onto its logical coordinate by integer
// division before projecting — intermediate wall cells fall onto the
// adjacent logical cell's center, which is intentional: successive
// doubled-grid path steps alternate between a logical cell and its
// adjacent wall cell, so collapsing both onto logical centers produces a
// continuous polyline rather than one that zigzags through wall cells.
func (p *Projector) Segment(doubledA, doubledB Cell) Segment {
	a := doubledA.Logical()
	b := doubledB.Logical()
	x1, y1 := p.center(a.Col, a.Row)
	x2, y2 := p.center(b.Col, b.Row)
	return Segment{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// PathRenderConfig is the render-ready geometric description consumed by
// a visualization layer: marker squares for the start/end points, and
// polyline segments along the resolved path.
type PathRenderConfig struct {
	Points []Square
	Path   []Segment
}

// ViewportToLogical converts a viewport-pixel point to a logical cell
// using the supplied per-axis ratios, matching the engine's
// set_start/set_end projection: col = floor(x/wRatio), row = floor(y/hRatio).
func ViewportToLogical(p Point, wRatio, hRatio float64) Cell {
	return Cell{
		Col: int(p.X / wRatio),
		Row: int(p.Y / hRatio),
	}
}
