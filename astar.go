package mazepath

import (
	"container/heap"
	"errors"

	"github.com/kmanley/mazepath/internal"
)

// ErrPathNotFound is raised when the A* open set exhausts without reaching
// the goal, or when a Q-Learning greedy rollout exceeds its step budget.
// Its text is the single fixed user-visible message for both cases.
var ErrPathNotFound = errors.New("Path not found. Probably the labyrinth has isolated study areas")

// Search runs a deterministic A* search from logical start to logical goal
// over grid's doubled-grid passages. It returns the path in doubled-grid
// coordinates, goal-first, start-last.
//
// The g-score accumulator intentionally approximates path length as
// g(current,next) + g(start,current) — the axis-aligned distance from the
// current cell to its neighbor, plus the axis-aligned distance from the
// current cell straight back to the start — rather than a true running
// sum of step costs, so g is not monotonic along the path. Because the
// discovered set blocks re-enqueue, the first path found is returned even
// when it is not strictly optimal; a cell is never re-opened once
// discovered.
func Search(grid *Grid, start, goal Cell) ([]Cell, error) {
	doubledStart := start.Doubled()
	doubledGoal := goal.Doubled()

	open := &cellQueue{}
	heap.Init(open)
	heap.Push(open, &pqItem{cell: doubledStart, f: heuristic(doubledStart, doubledGoal)})

	discovered := map[Cell]bool{doubledStart: true}
	parent := make(map[internal.Cell]internal.Cell)

	for open.Len() > 0 {
		current := heap.Pop(open).(*pqItem).cell

		if current == doubledGoal {
			return reconstructCells(parent, doubledStart, doubledGoal), nil
		}

		for _, d := range actionOrder {
			next := current.add(d)
			if discovered[next] || !grid.IsPassage(next) {
				continue
			}

			gNew := axisDistance(current, next) + axisDistance(doubledStart, current)
			fNew := gNew + heuristic(next, doubledGoal)

			heap.Push(open, &pqItem{cell: next, f: fNew})
			discovered[next] = true
			parent[internal.Cell(next)] = internal.Cell(current)
		}
	}

	return nil, ErrPathNotFound
}

// heuristic is the Manhattan-distance estimate from a cell to the goal.
func heuristic(c, goal Cell) int {
	return internal.Manhattan(internal.Cell(c), internal.Cell(goal))
}

// axisDistance is the step-cost function g(a,b): axis-aligned distance
// between two cells, or zero if a and b share neither row nor column. It
// is deliberately not full Manhattan distance — preserving this quirk is
// what makes the g-score accumulator in Search non-monotonic.
func axisDistance(a, b Cell) int {
	if a.Col == b.Col {
		return absInt(a.Row - b.Row)
	}
	if a.Row == b.Row {
		return absInt(a.Col - b.Col)
	}
	return 0
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func reconstructCells(parent map[internal.Cell]internal.Cell, start, goal Cell) []Cell {
	raw := internal.ReconstructPath(parent, internal.Cell(start), internal.Cell(goal))
	cells := make([]Cell, len(raw))
	for i, c := range raw {
		cells[i] = Cell(c)
	}
	return cells
}
