package board

import (
	"testing"

	"github.com/hailam/sokosolve/internal/geometry"
)

func grid(rows ...string) [][]byte {
	g := make([][]byte, len(rows))
	for i, row := range rows {
		g[i] = []byte(row)
	}
	return g
}

func TestNewRejectsUnwalledBorder(t *testing.T) {
	t.Run("open top row", func(t *testing.T) {
		_, err := New(grid(
			"     ",
			"#   #",
			"#####",
		))
		if err == nil {
			t.Fatal("expected error for unwalled border")
		}
	})

	t.Run("ragged rows", func(t *testing.T) {
		_, err := New(grid(
			"#####",
			"#  #",
			"#####",
		))
		if err == nil {
			t.Fatal("expected error for mismatched row length")
		}
	})

	t.Run("invalid character", func(t *testing.T) {
		_, err := New(grid(
			"#####",
			"#%  #",
			"#####",
		))
		if err == nil {
			t.Fatal("expected error for invalid map character")
		}
	})
}

func TestDeadSquaresCorridor(t *testing.T) {
	// A two-row room with the goal at (1,2): every pull onto the goal would
	// need the pusher to stand inside a wall (below row 2, left of column 1,
	// right of column 3), so the goal is the only live cell.
	b, err := New(grid(
		"#####",
		"# . #",
		"#   #",
		"#####",
	))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	goal := geometry.Cell{Row: 1, Col: 2}
	for r := 1; r <= 2; r++ {
		for c := 1; c <= 3; c++ {
			cell := geometry.Cell{Row: r, Col: c}
			if want := cell != goal; b.IsDead(cell) != want {
				t.Errorf("cell %v: IsDead = %v, want %v", cell, b.IsDead(cell), want)
			}
		}
	}
}

func TestDeadSquaresCorner(t *testing.T) {
	// The top-left floor cell is a corner with no adjacent goal reachable by
	// a straight pull in either axis: it must be dead relative to the single
	// goal placed away from it.
	b, err := New(grid(
		"######",
		"#    #",
		"#    #",
		"#   .#",
		"######",
	))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if b.IsDead(geometry.Cell{Row: 3, Col: 4}) {
		t.Fatal("goal cell must never be dead")
	}
	if !b.IsDead(geometry.Cell{Row: 1, Col: 1}) {
		t.Fatal("expected far corner to be dead: no pull path reaches it")
	}
}

func TestRoomLabelingSingleRoom(t *testing.T) {
	b, err := New(grid(
		"#####",
		"# . #",
		"#   #",
		"#####",
	))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if b.NumRooms() != 1 {
		t.Fatalf("expected 1 room, got %d", b.NumRooms())
	}
	if b.GoalsInRoom(0) != 1 {
		t.Fatalf("expected 1 goal in room 0, got %d", b.GoalsInRoom(0))
	}
}

func TestRoomLabelingTwoRooms(t *testing.T) {
	b, err := New(grid(
		"#######",
		"# . # #",
		"##### #",
		"#   . #",
		"#######",
	))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if b.NumRooms() != 2 {
		t.Fatalf("expected 2 disconnected rooms, got %d", b.NumRooms())
	}
	total := 0
	for i := 0; i < b.NumRooms(); i++ {
		total += b.GoalsInRoom(i)
	}
	if total != 2 {
		t.Fatalf("expected 2 goals total across rooms, got %d", total)
	}
}

func TestFingerprintStableAndDistinct(t *testing.T) {
	a, err := New(grid("#####", "# . #", "#   #", "#####"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b, err := New(grid("#####", "# . #", "#   #", "#####"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("identical boards must have identical fingerprints")
	}

	c, err := New(grid("#####", "#.  #", "#   #", "#####"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if a.Fingerprint() == c.Fingerprint() {
		t.Error("boards with different goal placement must have different fingerprints")
	}
}
