package mazepath

import (
	"context"
	"errors"
	"math"
	"math/rand"

	"github.com/kmanley/mazepath/internal"
)

// ErrIncorrectPoint is raised when a Q-Learning endpoint lies outside the
// maze's logical bounds.
var ErrIncorrectPoint = errors.New("Incorrect point")

// QActions holds one Q-value per action, indexed by Action.
type QActions [numActions]float64

// Fixed Q-Learning hyperparameters, matching the upstream algorithm's own
// hard-coded values. Not exposed for tuning.
const (
	qAlpha      = 0.9
	qGamma      = 0.98
	qEpsilon0   = 1.0
	qLambda     = 0.01
	qRolloutCap = 40000
)

// Train runs tabular Q-Learning from logical start to logical goal over
// grid's doubled-grid passages, and extracts the greedy-rollout path. rng
// must be non-nil and is seeded once by the caller, not re-seeded per
// action: constructing fresh entropy inside the action-selection loop
// would make two runs with the same seed diverge after the first call,
// since each draw would reset the stream instead of advancing it.
//
// ctx is checked once per episode so a caller can bound wall-clock time on
// a large maze; there is no concurrent cancellation inside a single
// episode, since the trainer is deliberately single-threaded.
func Train(ctx context.Context, grid *Grid, start, goal Cell, rng *rand.Rand) ([]Cell, error) {
	if grid.Empty() {
		return nil, nil
	}
	if !inLogicalBounds(grid, start) || !inLogicalBounds(grid, goal) {
		return nil, ErrIncorrectPoint
	}

	doubledStart := start.Doubled()
	doubledGoal := goal.Doubled()

	table := make(map[Cell]*QActions)
	rowFor := func(c Cell) *QActions {
		row, ok := table[c]
		if !ok {
			row = &QActions{}
			table[c] = row
		}
		return row
	}

	episodes := episodeBudget(grid)
	// epsilon starts unset (0.0) rather than at qEpsilon0: the decay is
	// applied at the end of each episode's loop body, for the *next*
	// episode, so episode 0 runs fully greedy over the all-zero Q-table.
	epsilon := 0.0

	for episode := 0; episode < episodes; episode++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		current := doubledStart
		done := false
		for !done {
			action := selectAction(rowFor(current), epsilon, rng)
			next := current.add(actionOrder[action])

			var reward float64
			switch {
			case next == doubledGoal:
				reward = 10.0
				done = true
			case !grid.IsPassage(next):
				reward = -10.0
				done = true
				next = current
			default:
				reward = -0.1
			}

			updateQ(rowFor(current), rowFor(next), action, reward)
			current = next
		}

		epsilon = qEpsilon0 * math.Exp(-qLambda*float64(episode))
	}

	return extractGreedyPath(table, doubledStart, doubledGoal)
}

func inLogicalBounds(grid *Grid, c Cell) bool {
	return c.Col >= 0 && c.Col < grid.LogicalCols() && c.Row >= 0 && c.Row < grid.LogicalRows()
}

// episodeBudget implements the fixed schedule keyed on M = max(R, C) of
// the grid's logical dimensions.
func episodeBudget(grid *Grid) int {
	m := grid.LogicalRows()
	if grid.LogicalCols() > m {
		m = grid.LogicalCols()
	}
	switch {
	case m <= 30:
		return int(float64(m) * 1.55 * 100)
	case m > 40:
		return m*200 + 500
	default:
		return m * 200
	}
}

// selectAction is ε-greedy: uniform-random over the four actions with
// probability epsilon, otherwise the greedy action over row, breaking ties
// by first occurrence.
func selectAction(row *QActions, epsilon float64, rng *rand.Rand) Action {
	if rng.Float64() < epsilon {
		return Action(rng.Intn(numActions))
	}
	return argmax(row)
}

func argmax(row *QActions) Action {
	best := Action(0)
	for a := 1; a < numActions; a++ {
		if row[a] > row[best] {
			best = Action(a)
		}
	}
	return best
}

// updateQ applies the one-step Q-Learning update for the transition
// (current, action) -> next, using next's row for the bootstrap term.
func updateQ(currentRow, nextRow *QActions, action Action, reward float64) {
	maxNext := nextRow[0]
	for a := 1; a < numActions; a++ {
		if nextRow[a] > maxNext {
			maxNext = nextRow[a]
		}
	}
	currentRow[action] += qAlpha * (reward + qGamma*maxNext - currentRow[action])
}

// extractGreedyPath rolls out the learned policy greedily from start,
// recording parents, until goal is reached or the step budget is
// exhausted.
func extractGreedyPath(table map[Cell]*QActions, start, goal Cell) ([]Cell, error) {
	parent := make(map[internal.Cell]internal.Cell)
	current := start
	for steps := 0; steps < qRolloutCap; steps++ {
		if current == goal {
			return reconstructCells(parent, start, goal), nil
		}
		row, ok := table[current]
		if !ok {
			row = &QActions{}
		}
		action := argmax(row)
		next := current.add(actionOrder[action])
		parent[internal.Cell(next)] = internal.Cell(current)
		current = next
	}
	return nil, ErrPathNotFound
}
