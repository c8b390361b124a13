// Package zobrist provides the incremental positional hash table used to
// key the search engine's closed set. Keys are derived from a seeded
// pseudo-random generator so hashes are reproducible across runs.
package zobrist

// Kind distinguishes the piece type a hash entry is toggled for.
type Kind int

const (
	Pusher Kind = iota
	Crate
	numKinds
)

// seed is a fixed compile-time constant: the same board dimensions always
// produce the same table, which keeps the sequence of hashes popped by the
// search engine deterministic across runs (spec §8, Determinism).
const seed uint64 = 0x98F107A2BEEF1234

// prng is a xorshift64* generator, the same construction the teacher codebase
// uses for its own Zobrist keys.
type prng struct {
	state uint64
}

func newPRNG(s uint64) *prng {
	if s == 0 {
		s = 1
	}
	return &prng{state: s}
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

// Table is a table of random 64-bit values indexed by (row, column, kind).
// It is immutable after construction and safe for concurrent read-only use.
type Table struct {
	height, width int
	keys          [][][numKinds]uint64
}

// NewTable builds a hash table sized for a board of the given dimensions.
func NewTable(height, width int) *Table {
	rng := newPRNG(seed)
	keys := make([][][numKinds]uint64, height)
	for r := range keys {
		keys[r] = make([][numKinds]uint64, width)
		for c := range keys[r] {
			for k := Kind(0); k < numKinds; k++ {
				keys[r][c][k] = rng.next()
			}
		}
	}
	return &Table{height: height, width: width, keys: keys}
}

// Toggle XORs the key for (row, col, kind) into h and returns the result.
// The XOR is its own inverse: toggling the same (cell, kind) twice restores
// the original hash.
func (t *Table) Toggle(h uint64, row, col int, kind Kind) uint64 {
	return h ^ t.keys[row][col][kind]
}
