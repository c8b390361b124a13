package search

import (
	"github.com/hailam/sokosolve/internal/board"
	"github.com/hailam/sokosolve/internal/geometry"
	"github.com/hailam/sokosolve/internal/heuristic"
	"github.com/hailam/sokosolve/internal/state"
	"github.com/hailam/sokosolve/internal/zobrist"
)

// goalCells is a small cache of the board's goals as a slice, rebuilt once
// per solve since heuristic.Estimate wants a slice, not a map.
type goalCells []geometry.Cell

func newGoalCells(b *board.Board) goalCells {
	gc := make(goalCells, 0, b.NumGoals())
	for g := range b.Goals() {
		gc = append(gc, g)
	}
	return gc
}

// step computes the candidate successor of s in direction d, or reports
// ok=false if the move is illegal (spec §4.5).
func step(b *board.Board, z *zobrist.Table, goals goalCells, s *state.State, d geometry.Direction) (*state.State, bool) {
	next := s.Pusher.Neighbor(d)
	if !b.InBounds(next) || b.IsWall(next) {
		return nil, false
	}

	if s.Crates.Has(next) {
		beyond := next.Neighbor(d)
		if !b.InBounds(beyond) || b.IsWall(beyond) || s.Crates.Has(beyond) {
			return nil, false
		}
		h := s.Hash
		h = z.Toggle(h, s.Pusher.Row, s.Pusher.Col, zobrist.Pusher)
		h = z.Toggle(h, next.Row, next.Col, zobrist.Pusher)
		h = z.Toggle(h, next.Row, next.Col, zobrist.Crate)
		h = z.Toggle(h, beyond.Row, beyond.Col, zobrist.Crate)

		crates := s.Crates.Replace(next, beyond)
		return &state.State{
			Pusher:    next,
			Crates:    crates,
			Path:      s.Path + string(d.Symbol),
			Hash:      h,
			Heuristic: heuristic.Estimate(crates, goals),
		}, true
	}

	h := s.Hash
	h = z.Toggle(h, s.Pusher.Row, s.Pusher.Col, zobrist.Pusher)
	h = z.Toggle(h, next.Row, next.Col, zobrist.Pusher)
	return &state.State{
		Pusher: next,
		// Walk moves leave the crate configuration unchanged, so the
		// successor shares its parent's CrateSet storage verbatim.
		Crates: s.Crates,
		Path:   s.Path + string(d.Symbol),
		Hash:   h,
		// The heuristic depends only on crate positions: reused as-is
		// across pusher-only moves (spec §4.5 design note).
		Heuristic: s.Heuristic,
	}, true
}
