// Package state defines the dynamic Sokoban configuration: pusher
// position, crate multiset, accumulated move path, incremental hash and
// cached heuristic.
package state

import (
	"sort"

	"github.com/hailam/sokosolve/internal/geometry"
)

// CrateSet is a compact, sorted (by row then column) slice of crate cells.
// Sorted order gives O(log k) membership tests and a simple O(k) equality
// and copy, satisfying the allocation discipline in spec §5: a pusher-only
// successor may share its parent's CrateSet verbatim, and only a push
// allocates a new one.
type CrateSet []geometry.Cell

func less(a, b geometry.Cell) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}

// NewCrateSet builds a sorted CrateSet from an arbitrary slice of cells.
func NewCrateSet(cells []geometry.Cell) CrateSet {
	cs := make(CrateSet, len(cells))
	copy(cs, cells)
	sort.Slice(cs, func(i, j int) bool { return less(cs[i], cs[j]) })
	return cs
}

// Has reports whether c is present in the set.
func (cs CrateSet) Has(c geometry.Cell) bool {
	i := sort.Search(len(cs), func(i int) bool { return !less(cs[i], c) })
	return i < len(cs) && cs[i] == c
}

// Equal reports whether two crate sets contain exactly the same cells.
func (cs CrateSet) Equal(other CrateSet) bool {
	if len(cs) != len(other) {
		return false
	}
	for i := range cs {
		if cs[i] != other[i] {
			return false
		}
	}
	return true
}

// Replace returns a new, sorted CrateSet with "from" removed and "to"
// inserted. It never mutates the receiver, so the parent's CrateSet
// remains valid for any other successor built from the same parent.
func (cs CrateSet) Replace(from, to geometry.Cell) CrateSet {
	next := make(CrateSet, 0, len(cs))
	for _, c := range cs {
		if c == from {
			continue
		}
		next = append(next, c)
	}
	i := sort.Search(len(next), func(i int) bool { return !less(next[i], to) })
	next = append(next, geometry.Cell{})
	copy(next[i+1:], next[i:])
	next[i] = to
	return next
}

// SubsetOfGoals reports whether every crate in the set sits on a goal.
// Combined with a crate-count invariant equal to the goal count, this is
// the state machine's goal test (spec §4.6).
func (cs CrateSet) SubsetOfGoals(goals map[geometry.Cell]bool) bool {
	for _, c := range cs {
		if !goals[c] {
			return false
		}
	}
	return true
}
