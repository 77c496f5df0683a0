package mazepath

// Cell is a coordinate pair in either logical or doubled grid space,
// depending on context.
type Cell struct {
	Col int
	Row int
}

// UnsetCell is the sentinel value for "no coordinate".
var UnsetCell = Cell{Col: -1, Row: -1}

// IsUnset reports whether c is the unset sentinel.
func (c Cell) IsUnset() bool {
	return c == UnsetCell
}

// Doubled projects a logical cell into doubled-grid space.
func (c Cell) Doubled() Cell {
	return Cell{Col: c.Col * 2, Row: c.Row * 2}
}

// Logical projects a doubled cell back into logical space by integer
// division. Intermediate wall cells collapse onto the adjacent logical
// cell; this is intentional, see geometry.go.
func (c Cell) Logical() Cell {
	return Cell{Col: c.Col / 2, Row: c.Row / 2}
}

func (c Cell) add(d delta) Cell {
	return Cell{Col: c.Col + d.dCol, Row: c.Row + d.dRow}
}

// Action is one of the four cardinal moves available in the doubled-grid
// coordinate space.
type Action int

const (
	Left Action = iota
	Up
	Right
	Down
)

type delta struct{ dCol, dRow int }

// actionOrder fixes the neighbor scan order (Left, Up, Right, Down) that
// the A* searcher and the Q-Learning trainer both rely on for deterministic
// behavior.
var actionOrder = [4]delta{
	Left:  {dCol: -1, dRow: 0},
	Up:    {dCol: 0, dRow: -1},
	Right: {dCol: 1, dRow: 0},
	Down:  {dCol: 0, dRow: 1},
}

// numActions is the size of the action alphabet; QActions is sized to match.
const numActions = len(actionOrder)

// Grid is a doubled-form maze: a rectangular grid of bytes where '0'
// denotes a passage and any other byte denotes a wall. It owns its cell
// data, matching the "transferred by move" semantics of the upstream
// collaborator that builds it.
type Grid struct {
	cols int
	rows int
	data []byte
}

// NewGrid builds a Grid from doubled-dimension row strings. Every row must
// have the same length; rows/cols are inferred from the input.
func NewGrid(rows []string) *Grid {
	if len(rows) == 0 {
		return &Grid{}
	}
	r := len(rows)
	c := len(rows[0])
	data := make([]byte, r*c)
	for i, row := range rows {
		copy(data[i*c:i*c+c], row)
	}
	return &Grid{cols: c, rows: r, data: data}
}

// Cols returns the doubled column count.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the doubled row count.
func (g *Grid) Rows() int { return g.rows }

// LogicalCols returns the logical (undoubled) column count.
func (g *Grid) LogicalCols() int { return g.cols / 2 }

// LogicalRows returns the logical (undoubled) row count.
func (g *Grid) LogicalRows() int { return g.rows / 2 }

// Empty reports whether the grid has zero dimensions.
func (g *Grid) Empty() bool {
	return g == nil || g.cols == 0 || g.rows == 0
}

// IsPassage reports whether a doubled coordinate is in range and marked as
// a passage ('0'). Out-of-range coordinates are treated as walls.
func (g *Grid) IsPassage(c Cell) bool {
	if g == nil || c.Col < 0 || c.Col >= g.cols || c.Row < 0 || c.Row >= g.rows {
		return false
	}
	return g.data[c.Row*g.cols+c.Col] == '0'
}
