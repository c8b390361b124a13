package heuristic

import (
	"testing"

	"github.com/hailam/sokosolve/internal/geometry"
)

func TestEstimateZeroWhenSolved(t *testing.T) {
	goals := []geometry.Cell{{Row: 1, Col: 1}, {Row: 2, Col: 2}}
	crates := []geometry.Cell{{Row: 2, Col: 2}, {Row: 1, Col: 1}}
	if got := Estimate(crates, goals); got != 0 {
		t.Fatalf("Estimate() = %d, want 0", got)
	}
}

func TestEstimateNonNegativeAndGreedy(t *testing.T) {
	goals := []geometry.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 10}}
	crates := []geometry.Cell{{Row: 0, Col: 1}, {Row: 0, Col: 9}}
	got := Estimate(crates, goals)
	if got < 0 {
		t.Fatalf("Estimate() = %d, want non-negative", got)
	}
	// crate at col 1 -> goal at col 0 (dist 1), crate at col 9 -> goal at col 10 (dist 1)
	if got != 2 {
		t.Fatalf("Estimate() = %d, want 2", got)
	}
}

func TestEstimateMoreCratesThanGoalsIgnoresExtras(t *testing.T) {
	goals := []geometry.Cell{{Row: 0, Col: 0}}
	crates := []geometry.Cell{{Row: 0, Col: 1}, {Row: 5, Col: 5}}
	got := Estimate(crates, goals)
	if got != 1 {
		t.Fatalf("Estimate() = %d, want 1 (extra crate contributes nothing)", got)
	}
}

func TestEstimateEmptyCrates(t *testing.T) {
	if got := Estimate(nil, []geometry.Cell{{Row: 0, Col: 0}}); got != 0 {
		t.Fatalf("Estimate() = %d, want 0", got)
	}
}
