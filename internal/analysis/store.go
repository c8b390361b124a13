// Package analysis provides an optional BadgerDB-backed cache of static
// board analyses and aggregate solve statistics, grounded on the teacher
// codebase's internal/storage package (BadgerDB-backed preferences and
// game stats, JSON-encoded values, View/Update transactions). It never
// participates in what Solve returns; it records which board layouts were
// seen and keeps a history ledger, matching SPEC_FULL.md. It does not speed
// up board preprocessing.
package analysis

import (
	"encoding/binary"
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const keyHistory = "history"

// CachedAnalysis is the board-only record stored per fingerprint: just the
// board's width and height. The dead mask and room labels are not stored;
// they are recomputed on every solve.
type CachedAnalysis struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// SolveRecord is a single observation appended to the history ledger.
type SolveRecord struct {
	BoardFingerprint uint64
	Solved           bool
	Expanded         int
	Elapsed          time.Duration
	SolutionLength   int
}

// History aggregates statistics across recorded solves, mirroring the
// teacher's GameStats/GetWinRate shape.
type History struct {
	Attempts        int           `json:"attempts"`
	Solved          int           `json:"solved"`
	TotalExpanded   int64         `json:"total_expanded"`
	TotalElapsed    time.Duration `json:"total_elapsed"`
	LongestSolution int           `json:"longest_solution"`
}

// SolveRate returns the percentage of recorded attempts that found a
// solution, in the range [0, 100].
func (h *History) SolveRate() float64 {
	if h.Attempts == 0 {
		return 0
	}
	return float64(h.Solved) / float64(h.Attempts) * 100
}

// AverageExpanded returns the mean number of expanded states per attempt.
func (h *History) AverageExpanded() float64 {
	if h.Attempts == 0 {
		return 0
	}
	return float64(h.TotalExpanded) / float64(h.Attempts)
}

// Store wraps a BadgerDB handle used to persist board analyses and solve
// history between process runs.
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) a BadgerDB database rooted at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // the engine already reports progress via its own callback
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func analysisKey(fp uint64) []byte {
	key := make([]byte, len("analysis:")+8)
	copy(key, "analysis:")
	binary.BigEndian.PutUint64(key[len("analysis:"):], fp)
	return key
}

// LoadBoardAnalysis returns a previously cached analysis for the given
// board fingerprint, if any.
func (s *Store) LoadBoardAnalysis(fp uint64) (*CachedAnalysis, bool, error) {
	var out *CachedAnalysis
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(analysisKey(fp))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var a CachedAnalysis
			if err := json.Unmarshal(val, &a); err != nil {
				return err
			}
			out = &a
			return nil
		})
	})
	if err != nil {
		return nil, false, err
	}
	return out, out != nil, nil
}

// SaveBoardAnalysis persists a's analysis under the board's fingerprint.
func (s *Store) SaveBoardAnalysis(fp uint64, a *CachedAnalysis) error {
	data, err := json.Marshal(a)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(analysisKey(fp), data)
	})
}

// LoadHistory loads the aggregate solve-history ledger, returning an empty
// History if none has been recorded yet.
func (s *Store) LoadHistory() (*History, error) {
	h := &History{}
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyHistory))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, h)
		})
	})
	return h, err
}

func (s *Store) saveHistory(h *History) error {
	data, err := json.Marshal(h)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyHistory), data)
	})
}

// RecordSolve folds a SolveRecord into the persisted history ledger.
func (s *Store) RecordSolve(rec SolveRecord) error {
	h, err := s.LoadHistory()
	if err != nil {
		return err
	}
	h.Attempts++
	h.TotalExpanded += int64(rec.Expanded)
	h.TotalElapsed += rec.Elapsed
	if rec.Solved {
		h.Solved++
		if rec.SolutionLength > h.LongestSolution {
			h.LongestSolution = rec.SolutionLength
		}
	}
	return s.saveHistory(h)
}
