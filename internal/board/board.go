// Package board owns the immutable static Sokoban grid: tile layout,
// goal cells, the dead-square mask derived by reverse reachability from
// the goals, and room labels used for per-room crate-capacity pruning.
package board

import (
	"fmt"
	"hash/fnv"

	"github.com/hailam/sokosolve/internal/geometry"
)

// Tile is the static content of a single cell.
type Tile uint8

const (
	Wall Tile = iota
	Floor
	Goal
)

// Board is immutable after construction. All of its derived fields (Dead,
// RoomID, GoalsPerRoom) are pure functions of the static grid.
type Board struct {
	Width, Height int
	tile          [][]Tile
	goals         map[geometry.Cell]bool
	dead          [][]bool
	roomID        [][]int
	goalsPerRoom  []int
}

// New parses a static map grid and derives the dead-square mask and room
// labeling. mapData[r][c] must be one of '#' (wall), '.' (goal) or ' '
// (floor); any other byte is an input error. The outer border must be
// fully walled so no in-bounds neighbor query ever escapes the grid.
func New(mapData [][]byte) (*Board, error) {
	height := len(mapData)
	if height == 0 {
		return nil, fmt.Errorf("board: empty map")
	}
	width := len(mapData[0])
	for r, row := range mapData {
		if len(row) != width {
			return nil, fmt.Errorf("board: row %d has length %d, want %d", r, len(row), width)
		}
	}

	b := &Board{
		Width:  width,
		Height: height,
		tile:   make([][]Tile, height),
		goals:  make(map[geometry.Cell]bool),
	}
	for r, row := range mapData {
		b.tile[r] = make([]Tile, width)
		for c, ch := range row {
			switch ch {
			case '#':
				b.tile[r][c] = Wall
			case '.':
				b.tile[r][c] = Goal
				b.goals[geometry.Cell{Row: r, Col: c}] = true
			case ' ':
				b.tile[r][c] = Floor
			default:
				return nil, fmt.Errorf("board: invalid map character %q at (%d,%d)", ch, r, c)
			}
		}
	}

	if err := b.checkWalledBorder(); err != nil {
		return nil, err
	}

	b.computeDeadSquares()
	b.labelRooms()
	return b, nil
}

func (b *Board) checkWalledBorder() error {
	for c := 0; c < b.Width; c++ {
		if b.tile[0][c] != Wall || b.tile[b.Height-1][c] != Wall {
			return fmt.Errorf("board: top/bottom border not fully walled at column %d", c)
		}
	}
	for r := 0; r < b.Height; r++ {
		if b.tile[r][0] != Wall || b.tile[r][b.Width-1] != Wall {
			return fmt.Errorf("board: left/right border not fully walled at row %d", r)
		}
	}
	return nil
}

// Tile returns the static content at c. c must be in bounds.
func (b *Board) Tile(c geometry.Cell) Tile {
	return b.tile[c.Row][c.Col]
}

// InBounds reports whether c lies within the board.
func (b *Board) InBounds(c geometry.Cell) bool {
	return c.InBounds(b.Height, b.Width)
}

// IsWall reports whether c is a wall cell.
func (b *Board) IsWall(c geometry.Cell) bool {
	return b.tile[c.Row][c.Col] == Wall
}

// IsGoal reports whether c is a goal cell.
func (b *Board) IsGoal(c geometry.Cell) bool {
	return b.tile[c.Row][c.Col] == Goal
}

// IsDead reports whether c is a dead square: a non-wall cell from which no
// sequence of legal pushes can ever deliver a crate to a goal.
func (b *Board) IsDead(c geometry.Cell) bool {
	return b.dead[c.Row][c.Col]
}

// RoomID returns the connected-component index of c, or -1 if c is a wall.
func (b *Board) RoomID(c geometry.Cell) int {
	return b.roomID[c.Row][c.Col]
}

// GoalsInRoom returns the number of goal cells in the given room.
func (b *Board) GoalsInRoom(room int) int {
	if room < 0 || room >= len(b.goalsPerRoom) {
		return 0
	}
	return b.goalsPerRoom[room]
}

// NumRooms returns the number of distinct rooms found on the board.
func (b *Board) NumRooms() int {
	return len(b.goalsPerRoom)
}

// Goals returns the set of goal cells. The returned map must not be mutated.
func (b *Board) Goals() map[geometry.Cell]bool {
	return b.goals
}

// NumGoals returns the number of goal cells on the board.
func (b *Board) NumGoals() int {
	return len(b.goals)
}

// Fingerprint is a stable hash of the static grid, used to key the optional
// analysis cache (see internal/analysis). It depends only on Width, Height
// and tile content, never on the dynamic pusher/crate configuration.
func (b *Board) Fingerprint() uint64 {
	h := fnv.New64a()
	var buf [2]byte
	buf[0] = byte(b.Width)
	buf[1] = byte(b.Width >> 8)
	h.Write(buf[:])
	buf[0] = byte(b.Height)
	buf[1] = byte(b.Height >> 8)
	h.Write(buf[:])
	row := make([]byte, b.Width)
	for r := 0; r < b.Height; r++ {
		for c := 0; c < b.Width; c++ {
			row[c] = byte(b.tile[r][c])
		}
		h.Write(row)
	}
	return h.Sum64()
}
