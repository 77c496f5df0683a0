package internal

import "testing"

func TestReconstructPathGoalFirst(t *testing.T) {
	start := Cell{Col: 0, Row: 0}
	mid := Cell{Col: 1, Row: 0}
	goal := Cell{Col: 2, Row: 0}
	parent := map[Cell]Cell{
		mid:  start,
		goal: mid,
	}

	path := ReconstructPath(parent, start, goal)
	want := []Cell{goal, mid, start}
	if len(path) != len(want) {
		t.Fatalf("len(path) = %d, want %d", len(path), len(want))
	}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("path[%d] = %v, want %v", i, path[i], want[i])
		}
	}
}

func TestReconstructPathSilentTruncation(t *testing.T) {
	start := Cell{Col: 0, Row: 0}
	goal := Cell{Col: 5, Row: 5}
	unreachableMid := Cell{Col: 2, Row: 2}
	parent := map[Cell]Cell{
		goal: unreachableMid,
		// no entry for unreachableMid -> start is missing
	}

	path := ReconstructPath(parent, start, goal)
	want := []Cell{goal}
	if len(path) != len(want) {
		t.Fatalf("len(path) = %d, want %d (truncated before reaching start)", len(path), len(want))
	}
	if path[0] != goal {
		t.Errorf("path[0] = %v, want %v", path[0], goal)
	}
}

func TestManhattan(t *testing.T) {
	a := Cell{Col: 1, Row: 2}
	b := Cell{Col: 4, Row: -1}
	if got := Manhattan(a, b); got != 6 {
		t.Errorf("Manhattan(%v, %v) = %d, want 6", a, b, got)
	}
}
