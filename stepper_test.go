package mazepath

import "testing"

func TestStepperMatchesSearch(t *testing.T) {
	grid := fullyOpenGrid(4, 4)
	start, goal := Cell{Col: 0, Row: 0}, Cell{Col: 3, Row: 3}

	want, err := Search(grid, start, goal)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	s := NewStepper(grid, start, goal)
	var snap StepSnapshot
	for i := 0; i < 1000; i++ {
		snap = s.Step()
		if snap.Done {
			break
		}
	}

	if !snap.Done || !snap.Found {
		t.Fatalf("stepper did not converge: %+v", snap)
	}
	if len(snap.Path) != len(want) {
		t.Fatalf("len(snap.Path) = %d, want %d", len(snap.Path), len(want))
	}
	for i := range want {
		if snap.Path[i] != want[i] {
			t.Errorf("snap.Path[%d] = %v, want %v", i, snap.Path[i], want[i])
		}
	}
}

func TestStepperUnreachableGoalExhaustsOpenSet(t *testing.T) {
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

	s := NewStepper(grid, Cell{Col: 0, Row: 0}, Cell{Col: 2, Row: 2})
	var snap StepSnapshot
	for i := 0; i < 1000; i++ {
		snap = s.Step()
		if snap.Done {
			break
		}
	}
	if !snap.Done || snap.Found {
		t.Fatalf("stepper should exhaust without finding the goal: %+v", snap)
	}
}
