package bench

import (
	"testing"
	"time"
)

func TestRunSolvesBuiltinCorpus(t *testing.T) {
	reports := Run(5 * time.Second)
	if len(reports) != len(Levels()) {
		t.Fatalf("got %d reports, want %d", len(reports), len(Levels()))
	}
	for _, r := range reports {
		if r.Name == "room-over-capacity" {
			if r.Solved {
				t.Errorf("%s: expected no solution, got one", r.Name)
			}
			continue
		}
		if !r.Solved {
			t.Errorf("%s: expected a solution within the timeout", r.Name)
		}
	}
}
