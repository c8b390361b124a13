// Package bench replays a small fixed corpus of levels through the solver
// and reports, per level, whether it was solved, the solution and the
// elapsed time; expansion counts are not reported. Grounded on the
// teacher's SearchInfo/TranspositionTable statistics conventions
// (Nodes, HitRate) used to characterize search behavior.
package bench

import (
	"time"

	"github.com/hailam/sokosolve/internal/solver"
)

// Level is a single named benchmark puzzle.
type Level struct {
	Name      string
	MapData   [][]byte
	ItemsData [][]byte
}

// Report is the outcome of benchmarking a single level.
type Report struct {
	Name     string
	Solved   bool
	Elapsed  time.Duration
	Solution string
}

// builtinLevels is a small, fixed corpus: a single push, a long walk before
// a single push (the pusher-only heuristic-reuse path), and a room holding
// more crates than goals (the room over-capacity prune).
var builtinLevels = []Level{
	{
		Name: "trivial-corridor",
		MapData: [][]byte{
			[]byte("#####"),
			[]byte("# . #"),
			[]byte("#   #"),
			[]byte("#   #"),
			[]byte("#####"),
		},
		ItemsData: [][]byte{
			[]byte("     "),
			[]byte("     "),
			[]byte("  $  "),
			[]byte("  @  "),
			[]byte("     "),
		},
	},
	{
		Name: "long-walk-single-push",
		MapData: [][]byte{
			[]byte("###########"),
			[]byte("#         #"),
			[]byte("#        .#"),
			[]byte("#         #"),
			[]byte("###########"),
		},
		ItemsData: [][]byte{
			[]byte("           "),
			[]byte(" @         "),
			[]byte("        $  "),
			[]byte("           "),
			[]byte("           "),
		},
	},
	{
		Name: "room-over-capacity",
		MapData: [][]byte{
			[]byte("#########"),
			[]byte("#  .  # #"),
			[]byte("#     # #"),
			[]byte("#     #.#"),
			[]byte("#########"),
		},
		ItemsData: [][]byte{
			[]byte("         "),
			[]byte("         "),
			[]byte("  $@$    "),
			[]byte("         "),
			[]byte("         "),
		},
	},
}

// Levels returns the built-in benchmark corpus.
func Levels() []Level {
	return builtinLevels
}

// Run solves every level in the corpus under the given per-level timeout
// and returns one Report per level, in corpus order.
func Run(timeout time.Duration) []Report {
	levels := Levels()
	reports := make([]Report, len(levels))
	for i, lvl := range levels {
		height := len(lvl.MapData)
		width := 0
		if height > 0 {
			width = len(lvl.MapData[0])
		}
		start := time.Now()
		moves, err := solver.Solve(width, height, lvl.MapData, lvl.ItemsData, solver.WithTimeout(timeout))
		reports[i] = Report{
			Name:     lvl.Name,
			Solved:   err == nil && moves != "",
			Elapsed:  time.Since(start),
			Solution: moves,
		}
	}
	return reports
}
