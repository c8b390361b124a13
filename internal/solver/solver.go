// Package solver assembles the board, hash table and search engine into
// the single external operation the host program calls: Solve.
package solver

import (
	"fmt"
	"time"

	"github.com/hailam/sokosolve/internal/analysis"
	"github.com/hailam/sokosolve/internal/board"
	"github.com/hailam/sokosolve/internal/geometry"
	"github.com/hailam/sokosolve/internal/search"
	"github.com/hailam/sokosolve/internal/state"
	"github.com/hailam/sokosolve/internal/zobrist"
)

// InputError is the distinguished input-validation failure category from
// spec §7: malformed shape, multiple pushers, a crate or pusher on a wall,
// or a missing border. It is never returned for planning failure.
type InputError struct {
	msg string
}

func (e *InputError) Error() string { return "solver: " + e.msg }

func inputError(format string, args ...interface{}) *InputError {
	return &InputError{msg: fmt.Sprintf(format, args...)}
}

// DefaultTimeout is the conventional soft wall-clock budget from spec §6.
const DefaultTimeout = 15 * time.Second

// Option configures a Solve call.
type Option func(*config)

type config struct {
	deadline time.Time
	progress func(search.Progress)
	store    *analysis.Store
}

// WithDeadline bounds the search to a specific wall-clock instant.
func WithDeadline(deadline time.Time) Option {
	return func(c *config) { c.deadline = deadline }
}

// WithTimeout bounds the search to d from now. Equivalent to
// WithDeadline(time.Now().Add(d)).
func WithTimeout(d time.Duration) Option {
	return func(c *config) { c.deadline = time.Now().Add(d) }
}

// WithProgress installs a periodic progress callback (see search.Progress).
func WithProgress(fn func(search.Progress)) Option {
	return func(c *config) { c.progress = fn }
}

// WithAnalysisCache enables the optional persisted board-analysis and
// solve-history cache described in SPEC_FULL.md. It never changes the
// value Solve returns; it records the board layout and solve statistics,
// and does not skip board preprocessing.
func WithAnalysisCache(store *analysis.Store) Option {
	return func(c *config) { c.store = store }
}

// Solve runs the solver core end to end. mapData and itemsData must have
// identical shape height x width. mapData[r][c] is one of '#', '.', ' ';
// itemsData[r][c] is one of '@', '$', ' '. Returns the move string on
// success, "" on no-solution-found-within-budget, or an *InputError for
// malformed input (spec §6-7).
func Solve(width, height int, mapData, itemsData [][]byte, opts ...Option) (string, error) {
	cfg := config{deadline: time.Now().Add(DefaultTimeout)}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validateShape(width, height, mapData, itemsData); err != nil {
		return "", err
	}

	b, err := board.New(mapData)
	if err != nil {
		return "", inputError("%v", err)
	}

	pusher, crates, err := parseItems(b, itemsData)
	if err != nil {
		return "", err
	}

	if cfg.store != nil {
		if cached, ok, _ := cfg.store.LoadBoardAnalysis(b.Fingerprint()); ok {
			_ = cached // board recomputation is cheap relative to search; the
			// cache's primary value is the solve-history ledger below, but a
			// hit still confirms this exact layout was seen before.
		}
	}

	z := zobrist.NewTable(height, width)
	eng := search.New(b, z)
	eng.SetDeadline(cfg.deadline)
	if cfg.progress != nil {
		eng.OnProgress(cfg.progress)
	}

	root := eng.InitialState(pusher, crates)
	started := time.Now()
	result := eng.Run(root)

	if cfg.store != nil {
		_ = cfg.store.RecordSolve(analysis.SolveRecord{
			BoardFingerprint: b.Fingerprint(),
			Solved:           result.Outcome == search.Solved,
			Expanded:         result.Expanded,
			Elapsed:          time.Since(started),
			SolutionLength:   len(result.Path),
		})
		_ = cfg.store.SaveBoardAnalysis(b.Fingerprint(), &analysis.CachedAnalysis{
			Width:  b.Width,
			Height: b.Height,
		})
	}

	if result.Outcome == search.Solved {
		return result.Path, nil
	}
	return "", nil
}

func validateShape(width, height int, mapData, itemsData [][]byte) error {
	if height <= 0 || width <= 0 {
		return inputError("non-positive dimensions %dx%d", width, height)
	}
	if len(mapData) != height || len(itemsData) != height {
		return inputError("grid height mismatch: mapData=%d itemsData=%d want=%d", len(mapData), len(itemsData), height)
	}
	for r := 0; r < height; r++ {
		if len(mapData[r]) != width {
			return inputError("mapData row %d has width %d, want %d", r, len(mapData[r]), width)
		}
		if len(itemsData[r]) != width {
			return inputError("itemsData row %d has width %d, want %d", r, len(itemsData[r]), width)
		}
	}
	return nil
}

func parseItems(b *board.Board, itemsData [][]byte) (geometry.Cell, state.CrateSet, error) {
	var pusher geometry.Cell
	havePusher := false
	var crates []geometry.Cell

	for r := 0; r < b.Height; r++ {
		for c := 0; c < b.Width; c++ {
			cell := geometry.Cell{Row: r, Col: c}
			switch itemsData[r][c] {
			case ' ':
			case '@':
				if havePusher {
					return geometry.Cell{}, nil, inputError("multiple pushers: second found at %v", cell)
				}
				if b.IsWall(cell) {
					return geometry.Cell{}, nil, inputError("pusher on wall cell %v", cell)
				}
				pusher = cell
				havePusher = true
			case '$':
				if b.IsWall(cell) {
					return geometry.Cell{}, nil, inputError("crate on wall cell %v", cell)
				}
				crates = append(crates, cell)
			default:
				return geometry.Cell{}, nil, inputError("invalid items character %q at %v", itemsData[r][c], cell)
			}
		}
	}

	if !havePusher {
		return geometry.Cell{}, nil, inputError("no pusher found")
	}
	return pusher, state.NewCrateSet(crates), nil
}
