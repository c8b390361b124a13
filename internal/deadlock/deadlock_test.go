package deadlock

import (
	"testing"

	"github.com/hailam/sokosolve/internal/board"
	"github.com/hailam/sokosolve/internal/geometry"
	"github.com/hailam/sokosolve/internal/state"
)

func grid(rows ...string) [][]byte {
	g := make([][]byte, len(rows))
	for i, row := range rows {
		g[i] = []byte(row)
	}
	return g
}

func TestDetectSimpleCorner(t *testing.T) {
	b, err := board.New(grid(
		"#####",
		"#   #",
		"#  .#",
		"#####",
	))
	if err != nil {
		t.Fatalf("board.New: %v", err)
	}
	// (1,1) is a non-goal corner: walls above and to the left.
	s := &state.State{Crates: state.NewCrateSet([]geometry.Cell{{Row: 1, Col: 1}})}
	if !Detect(b, s) {
		t.Fatal("expected corner crate to be flagged dead")
	}
}

func TestDetectGoalCornerIsNeverFlaggedByCornerRule(t *testing.T) {
	b, err := board.New(grid(
		"#####",
		"#.  #",
		"#   #",
		"#####",
	))
	if err != nil {
		t.Fatalf("board.New: %v", err)
	}
	s := &state.State{Crates: state.NewCrateSet([]geometry.Cell{{Row: 1, Col: 1}})}
	if Detect(b, s) {
		t.Fatal("a crate sitting on a goal must never be flagged dead")
	}
}

func TestDetectFrozenAgainstWallWithNeighborCrate(t *testing.T) {
	b, err := board.New(grid(
		"#######",
		"#.   .#",
		"#  .  #",
		"#######",
	))
	if err != nil {
		t.Fatalf("board.New: %v", err)
	}
	// Three crates in the top row (wall above), all on live cells, none in a
	// corner, and no more crates than goals. The middle crate (1,3) has a
	// crate on each side, so it is frozen against the top wall; no other
	// rule fires.
	s := &state.State{Crates: state.NewCrateSet([]geometry.Cell{{Row: 1, Col: 2}, {Row: 1, Col: 3}, {Row: 1, Col: 4}})}
	if !Detect(b, s) {
		t.Fatal("expected crates frozen against the top wall to be flagged")
	}
}

func TestDetectClusterRequiresNonGoalMember(t *testing.T) {
	// All four cluster cells are goals: never a deadlock.
	allGoals, err := board.New(grid(
		"######",
		"#....#",
		"#....#",
		"######",
	))
	if err != nil {
		t.Fatalf("board.New: %v", err)
	}
	s := &state.State{Crates: state.NewCrateSet([]geometry.Cell{
		{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
	})}
	if Detect(allGoals, s) {
		t.Fatal("a 2x2 cluster fully on goals must not be flagged")
	}

	// Same shape with only one member on a goal: a true deadlock.
	mixed, err := board.New(grid(
		"######",
		"#.   #",
		"#    #",
		"######",
	))
	if err != nil {
		t.Fatalf("board.New: %v", err)
	}
	s2 := &state.State{Crates: state.NewCrateSet([]geometry.Cell{
		{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
	})}
	if !Detect(mixed, s2) {
		t.Fatal("expected 2x2 cluster with a non-goal member to be flagged")
	}
}

func TestDetectRoomOverCapacity(t *testing.T) {
	b, err := board.New(grid(
		"#########",
		"#  .  # #",
		"#     # #",
		"#     #.#",
		"#########",
	))
	if err != nil {
		t.Fatalf("board.New: %v", err)
	}
	if b.NumRooms() != 2 {
		t.Fatalf("expected 2 disconnected rooms, got %d", b.NumRooms())
	}
	// Two crates crammed into the single-goal left room, away from any wall
	// or corner so only the room-capacity check can flag them.
	s := &state.State{Crates: state.NewCrateSet([]geometry.Cell{{Row: 2, Col: 2}, {Row: 2, Col: 4}})}
	if !Detect(b, s) {
		t.Fatal("expected room over-capacity to be flagged")
	}
}
