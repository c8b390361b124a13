// Package search implements the priority-ordered best-first frontier,
// closed-set deduplication and successor generation described in spec
// §4.5-4.6: the core of the Sokoban solver.
package search

import (
	"time"

	"github.com/hailam/sokosolve/internal/board"
	"github.com/hailam/sokosolve/internal/deadlock"
	"github.com/hailam/sokosolve/internal/geometry"
	"github.com/hailam/sokosolve/internal/heuristic"
	"github.com/hailam/sokosolve/internal/state"
	"github.com/hailam/sokosolve/internal/zobrist"
)

// Outcome distinguishes why a search terminated, mirroring the teacher's
// SearchInfo reporting without any protocol coupling.
type Outcome int

const (
	Solved Outcome = iota
	NoSolution
	TimedOut
)

// Progress is reported periodically through an optional callback so a
// caller can observe search health without the engine depending on any
// particular output sink (grounded on Engine.OnInfo in the teacher).
type Progress struct {
	Expanded      int
	FrontierLen   int
	ClosedLen     int
	BestHeuristic int
	Elapsed       time.Duration
}

// progressInterval controls how often the callback fires, in expansions.
const progressInterval = 2048

// Result is the outcome of a single Run call.
type Result struct {
	Outcome  Outcome
	Path     string
	Expanded int
}

// Engine runs the best-first search described in spec §4.6 over a single
// Board and Zobrist Table, both owned and read-only for the engine's
// lifetime.
type Engine struct {
	board    *board.Board
	zobrist  *zobrist.Table
	goals    goalCells
	onInfo   func(Progress)
	deadline time.Time
}

// New builds an Engine bound to the given static board and hash table.
func New(b *board.Board, z *zobrist.Table) *Engine {
	return &Engine{board: b, zobrist: z, goals: newGoalCells(b)}
}

// OnProgress installs a callback invoked roughly every progressInterval
// expansions. Passing nil disables progress reporting (the default).
func (e *Engine) OnProgress(fn func(Progress)) {
	e.onInfo = fn
}

// SetDeadline bounds the search's wall-clock budget. The engine checks the
// deadline at least once per expanded state (spec §5).
func (e *Engine) SetDeadline(deadline time.Time) {
	e.deadline = deadline
}

// InitialState builds the root State for a pusher position and crate set,
// with hash and heuristic precomputed.
func (e *Engine) InitialState(pusher geometry.Cell, crates state.CrateSet) *state.State {
	var h uint64
	h = e.zobrist.Toggle(h, pusher.Row, pusher.Col, zobrist.Pusher)
	for _, c := range crates {
		h = e.zobrist.Toggle(h, c.Row, c.Col, zobrist.Crate)
	}
	return &state.State{
		Pusher:    pusher,
		Crates:    crates,
		Hash:      h,
		Heuristic: heuristic.Estimate(crates, e.goals),
	}
}

// Run executes the search state machine from root until a solution is
// found, the frontier is exhausted, or the deadline expires.
func (e *Engine) Run(root *state.State) Result {
	start := time.Now()
	f := newFrontier()
	f.push(root)
	closed := make(map[uint64]struct{})

	expanded := 0
	for {
		s := f.pop()
		if s == nil {
			return Result{Outcome: NoSolution, Expanded: expanded}
		}

		if s.IsGoal(e.board.Goals()) {
			return Result{Outcome: Solved, Path: s.Path, Expanded: expanded}
		}

		if _, seen := closed[s.Hash]; seen {
			continue
		}
		closed[s.Hash] = struct{}{}
		expanded++

		if !e.deadline.IsZero() && time.Now().After(e.deadline) {
			return Result{Outcome: TimedOut, Expanded: expanded}
		}

		if e.onInfo != nil && expanded%progressInterval == 0 {
			e.onInfo(Progress{
				Expanded:      expanded,
				FrontierLen:   f.len(),
				ClosedLen:     len(closed),
				BestHeuristic: s.Heuristic,
				Elapsed:       time.Since(start),
			})
		}

		for _, d := range geometry.All {
			succ, ok := step(e.board, e.zobrist, e.goals, s, d)
			if !ok {
				continue
			}
			if _, seen := closed[succ.Hash]; seen {
				continue
			}
			if deadlock.Detect(e.board, succ) {
				continue
			}
			f.push(succ)
		}
	}
}
