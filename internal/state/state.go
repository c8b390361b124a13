package state

import "github.com/hailam/sokosolve/internal/geometry"

// State is a snapshot of the dynamic puzzle configuration. Once built and
// placed on the frontier it is read-only; a "successor" is always a freshly
// constructed State, though its CrateSet slice may structurally share
// storage with its parent (see CrateSet.Replace).
type State struct {
	Pusher    geometry.Cell
	Crates    CrateSet
	Path      string
	Hash      uint64
	Heuristic int
}

// IsGoal reports whether every crate sits on a goal cell. The crate
// multiset equals the goal set exactly when the crate count matches the
// goal count and every crate is itself a goal (spec §4.6).
func (s *State) IsGoal(goals map[geometry.Cell]bool) bool {
	if len(s.Crates) != len(goals) {
		return false
	}
	return s.Crates.SubsetOfGoals(goals)
}
