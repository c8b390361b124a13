// Package deadlock implements the compound unsolvability predicate applied
// to every candidate successor: static dead-square lookup, simple-corner,
// frozen-against-wall, 2x2 crate cluster, and per-room capacity checks
// (spec §4.4).
package deadlock

import (
	"github.com/hailam/sokosolve/internal/board"
	"github.com/hailam/sokosolve/internal/geometry"
	"github.com/hailam/sokosolve/internal/state"
)

// Detect reports true iff s can never be solved, per the precedence order
// in spec §4.4: for each crate, evaluate checks 1-4 and stop at the first
// that triggers; only if no crate triggers 1-4 is the global room check
// (5) evaluated.
func Detect(b *board.Board, s *state.State) bool {
	for _, crate := range s.Crates {
		if isStaticDead(b, crate) {
			return true
		}
		if isSimpleCorner(b, crate) {
			return true
		}
		if isFrozenAgainstWall(b, s, crate) {
			return true
		}
		if isClusterTopLeft(b, s, crate) {
			return true
		}
	}
	return roomOverCapacity(b, s)
}

func isStaticDead(b *board.Board, x geometry.Cell) bool {
	return b.IsDead(x)
}

// isSimpleCorner reports whether x (not on a goal) has a wall on one
// vertical neighbor and a wall on one horizontal neighbor, making it
// immovable in both axes forever.
func isSimpleCorner(b *board.Board, x geometry.Cell) bool {
	if b.IsGoal(x) {
		return false
	}
	vertWall := wallAt(b, x, geometry.Up) || wallAt(b, x, geometry.Down)
	horizWall := wallAt(b, x, geometry.Left) || wallAt(b, x, geometry.Right)
	return vertWall && horizWall
}

// isFrozenAgainstWall reports whether x (not on a goal) is pinned against a
// wall on one axis while both neighbors on the other axis are each a wall
// or another crate, so no push can ever move it off that axis either.
func isFrozenAgainstWall(b *board.Board, s *state.State, x geometry.Cell) bool {
	if b.IsGoal(x) {
		return false
	}
	wallVert := wallAt(b, x, geometry.Up) || wallAt(b, x, geometry.Down)
	if wallVert && isWallOrCrate(b, s, x, geometry.Left) && isWallOrCrate(b, s, x, geometry.Right) {
		return true
	}
	wallHoriz := wallAt(b, x, geometry.Left) || wallAt(b, x, geometry.Right)
	if wallHoriz && isWallOrCrate(b, s, x, geometry.Up) && isWallOrCrate(b, s, x, geometry.Down) {
		return true
	}
	return false
}

// isClusterTopLeft reports whether x is the top-left corner of a 2x2 block
// of crates with at least one member off a goal. Checking only from the
// top-left corner suffices: the search visits every orientation's top-left
// cell as it explores crate positions.
func isClusterTopLeft(b *board.Board, s *state.State, x geometry.Cell) bool {
	right := x.Neighbor(geometry.Right)
	down := x.Neighbor(geometry.Down)
	downRight := down.Neighbor(geometry.Right)

	if !b.InBounds(right) || !b.InBounds(down) || !b.InBounds(downRight) {
		return false
	}
	if !s.Crates.Has(right) || !s.Crates.Has(down) || !s.Crates.Has(downRight) {
		return false
	}
	return !b.IsGoal(x) || !b.IsGoal(right) || !b.IsGoal(down) || !b.IsGoal(downRight)
}

// roomOverCapacity reports whether any room holds more crates than it has
// goal cells, a true invariant violation since crates cannot cross walls.
func roomOverCapacity(b *board.Board, s *state.State) bool {
	if b.NumRooms() == 0 {
		return false
	}
	counts := make([]int, b.NumRooms())
	for _, crate := range s.Crates {
		room := b.RoomID(crate)
		if room < 0 {
			continue
		}
		counts[room]++
	}
	for room, count := range counts {
		if count > b.GoalsInRoom(room) {
			return true
		}
	}
	return false
}

func wallAt(b *board.Board, x geometry.Cell, d geometry.Direction) bool {
	n := x.Neighbor(d)
	return !b.InBounds(n) || b.IsWall(n)
}

func isWallOrCrate(b *board.Board, s *state.State, x geometry.Cell, d geometry.Direction) bool {
	n := x.Neighbor(d)
	if !b.InBounds(n) || b.IsWall(n) {
		return true
	}
	return s.Crates.Has(n)
}
