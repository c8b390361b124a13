// Package heuristic estimates the remaining cost of a Sokoban state via a
// greedy crate-to-goal assignment on Manhattan distances. The estimate is
// not guaranteed admissible; the search engine it feeds is best-first, not
// A*, so overestimation is acceptable (spec §4.3).
package heuristic

import "github.com/hailam/sokosolve/internal/geometry"

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func manhattan(a, b geometry.Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// Estimate greedily pairs crates with goals: each round it picks the
// unassigned crate/goal pair with the smallest Manhattan distance, adds
// that distance and removes both, until the crate pool is exhausted.
// Returns 0 iff every crate already occupies a goal. Runs in
// O(|crates|^2*|goals|) time.
func Estimate(crates []geometry.Cell, goals []geometry.Cell) int {
	if len(crates) == 0 {
		return 0
	}
	used := make([]bool, len(goals))
	assigned := make([]bool, len(crates))
	total := 0
	for range crates {
		bestCrate, bestGoal, bestDist := -1, -1, 0
		for ci, crate := range crates {
			if assigned[ci] {
				continue
			}
			for gi, g := range goals {
				if used[gi] {
					continue
				}
				if d := manhattan(crate, g); bestGoal == -1 || d < bestDist {
					bestCrate, bestGoal, bestDist = ci, gi, d
				}
			}
		}
		if bestGoal == -1 {
			// More crates than goals: should not occur on well-formed
			// inputs (spec §4.3); the extras contribute nothing.
			break
		}
		assigned[bestCrate] = true
		used[bestGoal] = true
		total += bestDist
	}
	return total
}
