package mazepath

import (
	"context"
	"errors"
	"math/rand"
)

// EngineState names the facade's state machine position.
type EngineState int

const (
	StateIdle EngineState = iota
	StateOneEndpoint
	StateBothEndpointsPathed
	StateBothEndpointsFailed
)

// OpResult is the outcome of a facade operation that can fail with a
// fixed, user-visible message.
type OpResult struct {
	OK      bool
	Message string
}

func okResult() OpResult            { return OpResult{OK: true} }
func failResult(err error) OpResult { return OpResult{OK: false, Message: err.Error()} }

// Engine is the synchronous facade that owns a maze, its start/end
// endpoints, and the resulting path. It dispatches A* whenever both
// endpoints are set and restores the prior endpoint on failure, so that a
// caller always observes a consistent (start, end, path) triple.
type Engine struct {
	grid  *Grid
	start Cell
	end   Cell
	path  []Cell
	state EngineState
}

// NewEngine returns an Engine with no maze and both endpoints unset.
func NewEngine() *Engine {
	return &Engine{start: UnsetCell, end: UnsetCell, state: StateIdle}
}

// SetMaze transfers ownership of grid to the engine and resets start, end,
// and path to unset/empty.
func (e *Engine) SetMaze(grid *Grid) {
	e.grid = grid
	e.start = UnsetCell
	e.end = UnsetCell
	e.path = nil
	e.state = StateIdle
}

// SetStart converts a viewport point to a logical cell and updates start.
// If end is already set, A* runs immediately; on PathNotFound, start is
// restored to its previous value and the error is re-raised.
func (e *Engine) SetStart(point Point, wRatio, hRatio float64) error {
	return e.setEndpoint(&e.start, point, wRatio, hRatio)
}

// SetEnd is symmetric to SetStart.
func (e *Engine) SetEnd(point Point, wRatio, hRatio float64) error {
	return e.setEndpoint(&e.end, point, wRatio, hRatio)
}

func (e *Engine) setEndpoint(slot *Cell, point Point, wRatio, hRatio float64) error {
	if e.grid.Empty() {
		return nil
	}

	previous := *slot
	*slot = ViewportToLogical(point, wRatio, hRatio)

	if e.start.IsUnset() || e.end.IsUnset() {
		e.state = StateOneEndpoint
		return nil
	}

	path, err := Search(e.grid, e.start, e.end)
	if err != nil {
		*slot = previous
		e.state = StateBothEndpointsFailed
		return err
	}

	e.path = path
	e.state = StateBothEndpointsPathed
	return nil
}

// QFind runs the Q-Learning trainer and greedy rollout from logical start
// to logical goal, storing the result path on success.
func (e *Engine) QFind(ctx context.Context, start, goal Cell, rng *rand.Rand) OpResult {
	if e.grid.Empty() {
		return okResult()
	}

	path, err := Train(ctx, e.grid, start, goal, rng)
	if err != nil {
		if errors.Is(err, ErrIncorrectPoint) {
			return failResult(ErrIncorrectPoint)
		}
		e.state = StateBothEndpointsFailed
		return failResult(ErrPathNotFound)
	}

	e.start = start
	e.end = goal
	e.path = path
	e.state = StateBothEndpointsPathed
	return okResult()
}

// Path returns the engine's current resolved path in doubled coordinates,
// goal-first, start-last. It is empty until a successful search.
func (e *Engine) Path() []Cell {
	return e.path
}

// Render projects the engine's current endpoints and path into viewport
// pixel geometry. It returns an empty config if either endpoint exceeds
// the maze's logical dimensions.
func (e *Engine) Render(w, h float64) PathRenderConfig {
	if e.grid.Empty() {
		return PathRenderConfig{}
	}
	if outOfLogicalBounds(e.grid, e.start) || outOfLogicalBounds(e.grid, e.end) {
		return PathRenderConfig{}
	}

	p := NewProjector(w, h, e.grid)

	var cfg PathRenderConfig
	if marker, ok := p.Marker(e.start); ok {
		cfg.Points = append(cfg.Points, marker)
	}
	if marker, ok := p.Marker(e.end); ok {
		cfg.Points = append(cfg.Points, marker)
	}

	for i := 0; i+1 < len(e.path); i++ {
		cfg.Path = append(cfg.Path, p.Segment(e.path[i], e.path[i+1]))
	}

	return cfg
}

func outOfLogicalBounds(grid *Grid, c Cell) bool {
	if c.IsUnset() {
		return false
	}
	return c.Col >= grid.LogicalCols() || c.Row >= grid.LogicalRows()
}
