package mazepath

import (
	"errors"
	"testing"
)

func fullyOpenGrid(logicalRows, logicalCols int) *Grid {
	doubledRows := logicalRows * 2
	doubledCols := logicalCols * 2
	rows := make([]string, doubledRows)
	for r := 0; r < doubledRows; r++ {
		row := make([]byte, doubledCols)
		for c := range row {
			row[c] = '0'
		}
		rows[r] = string(row)
	}
	return NewGrid(rows)
}

func TestSearchTrivialCorridor(t *testing.T) {
	grid := fullyOpenGrid(3, 3)
	path, err := Search(grid, Cell{Col: 0, Row: 0}, Cell{Col: 2, Row: 2})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(path) != 5 {
		t.Fatalf("len(path) = %d, want 5", len(path))
	}
	if path[0] != (Cell{Col: 4, Row: 4}) {
		t.Errorf("path[0] (goal-first) = %v, want doubled end {4 4}", path[0])
	}
	if path[len(path)-1] != (Cell{Col: 0, Row: 0}) {
		t.Errorf("path[last] = %v, want doubled start {0 0}", path[len(path)-1])
	}
	for _, c := range path {
		if !grid.IsPassage(c) {
			t.Errorf("cell %v on path is not a passage", c)
		}
	}
}

func TestSearchBlockedByWall(t *testing.T) {
	// Doubled column 3 (the wall strip between logical columns 1 and 2) is
	// entirely blocked, isolating logical columns {0,1} from {2,3}.
	rows := make([]string, 8)
	for r := range rows {
		row := make([]byte, 8)
		for c := range row {
			if c == 3 {
				row[c] = '#'
			} else {
				row[c] = '0'
			}
		}
		rows[r] = string(row)
	}
	grid := NewGrid(rows)

	_, err := Search(grid, Cell{Col: 0, Row: 0}, Cell{Col: 2, Row: 2})
	if !errors.Is(err, ErrPathNotFound) {
		t.Fatalf("Search error = %v, want ErrPathNotFound", err)
	}
	if err.Error() != "Path not found. Probably the labyrinth has isolated study areas" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestSearchNeighborOrderIsDeterministic(t *testing.T) {
	grid := fullyOpenGrid(4, 4)
	start, goal := Cell{Col: 0, Row: 0}, Cell{Col: 3, Row: 3}

	first, err := Search(grid, start, goal)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	second, err := Search(grid, start, goal)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("repeated Search produced different length paths")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("repeated Search diverged at index %d: %v != %v", i, first[i], second[i])
		}
	}
}

func TestAxisDistanceQuirk(t *testing.T) {
	// Same row: axis-aligned distance.
	if got := axisDistance(Cell{Col: 0, Row: 2}, Cell{Col: 5, Row: 2}); got != 5 {
		t.Errorf("axisDistance same row = %d, want 5", got)
	}
	// Same col: axis-aligned distance.
	if got := axisDistance(Cell{Col: 3, Row: 0}, Cell{Col: 3, Row: 5}); got != 5 {
		t.Errorf("axisDistance same col = %d, want 5", got)
	}
	// Neither shared: the deliberate non-Manhattan quirk returns 0.
	if got := axisDistance(Cell{Col: 0, Row: 0}, Cell{Col: 3, Row: 4}); got != 0 {
		t.Errorf("axisDistance diagonal = %d, want 0 (non-monotonic g quirk)", got)
	}
}
