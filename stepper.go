package mazepath

import (
	"container/heap"

	"github.com/kmanley/mazepath/internal"
)

// StepSnapshot exposes the per-iteration state of a Stepper-driven search,
// for a caller that wants to animate the frontier rather than block for
// the full result.
type StepSnapshot struct {
	Current   Cell
	Open      map[Cell]bool
	Closed    map[Cell]bool
	Done      bool
	Found     bool
	Path      []Cell
	StepIndex int
}

// Stepper advances an A* search one node expansion at a time, in doubled
// coordinates, for progressive visualization. It runs the same algorithm
// as Search: the upstream library this engine is adapted from drove
// Stepper expansion with a goroutine worker pool, but parallel search is
// explicitly out of scope here, so each Step call expands neighbors
// in-line instead of dispatching them to workers.
type Stepper struct {
	grid  *Grid
	start Cell
	goal  Cell

	open       cellQueue
	discovered map[Cell]bool
	parent     map[internal.Cell]internal.Cell

	stepCount int
	done      bool
	found     bool
}

// NewStepper creates a Stepper for a search from logical start to logical
// goal over grid's doubled-grid passages.
func NewStepper(grid *Grid, start, goal Cell) *Stepper {
	doubledStart := start.Doubled()
	doubledGoal := goal.Doubled()

	s := &Stepper{
		grid:       grid,
		start:      doubledStart,
		goal:       doubledGoal,
		discovered: map[Cell]bool{doubledStart: true},
		parent:     make(map[internal.Cell]internal.Cell),
	}
	heap.Init(&s.open)
	heap.Push(&s.open, &pqItem{cell: doubledStart, f: heuristic(doubledStart, doubledGoal)})
	return s
}

// Step expands one node from the open set and returns a snapshot of the
// search frontier after the expansion. Once the goal is popped or the open
// set is exhausted, Done is true on every subsequent call.
func (s *Stepper) Step() StepSnapshot {
	if s.done || s.open.Len() == 0 {
		s.done = true
		return s.snapshot(UnsetCell, nil)
	}

	s.stepCount++
	current := heap.Pop(&s.open).(*pqItem).cell

	if current == s.goal {
		s.done = true
		s.found = true
		path := reconstructCells(s.parent, s.start, s.goal)
		return s.snapshot(current, path)
	}

	for _, d := range actionOrder {
		next := current.add(d)
		if s.discovered[next] || !s.grid.IsPassage(next) {
			continue
		}

		gNew := axisDistance(current, next) + axisDistance(s.start, current)
		fNew := gNew + heuristic(next, s.goal)

		heap.Push(&s.open, &pqItem{cell: next, f: fNew})
		s.discovered[next] = true
		s.parent[internal.Cell(next)] = internal.Cell(current)
	}

	return s.snapshot(current, nil)
}

func (s *Stepper) snapshot(current Cell, path []Cell) StepSnapshot {
	open := make(map[Cell]bool, s.open.Len())
	for _, item := range s.open {
		open[item.cell] = true
	}
	closed := make(map[Cell]bool, len(s.discovered))
	for c := range s.discovered {
		if !open[c] {
			closed[c] = true
		}
	}
	return StepSnapshot{
		Current:   current,
		Open:      open,
		Closed:    closed,
		Done:      s.done,
		Found:     s.found,
		Path:      path,
		StepIndex: s.stepCount,
	}
}
