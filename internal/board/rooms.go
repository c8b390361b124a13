package board

import "github.com/hailam/sokosolve/internal/geometry"

// labelRooms assigns a connected-component index to every non-wall cell
// under 4-connectivity and counts the goals in each room. A room with more
// crates than goals can never be solved, since crates cannot cross walls
// (spec §4.1).
func (b *Board) labelRooms() {
	b.roomID = make([][]int, b.Height)
	for r := range b.roomID {
		b.roomID[r] = make([]int, b.Width)
		for c := range b.roomID[r] {
			b.roomID[r][c] = -1
		}
	}

	b.goalsPerRoom = nil
	var stack []geometry.Cell

	for r := 0; r < b.Height; r++ {
		for c := 0; c < b.Width; c++ {
			start := geometry.Cell{Row: r, Col: c}
			if b.IsWall(start) || b.roomID[r][c] != -1 {
				continue
			}
			room := len(b.goalsPerRoom)
			b.goalsPerRoom = append(b.goalsPerRoom, 0)

			stack = stack[:0]
			stack = append(stack, start)
			b.roomID[r][c] = room
			for len(stack) > 0 {
				cur := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if b.IsGoal(cur) {
					b.goalsPerRoom[room]++
				}
				for _, d := range geometry.All {
					next := cur.Neighbor(d)
					if !b.InBounds(next) || b.IsWall(next) {
						continue
					}
					if b.roomID[next.Row][next.Col] != -1 {
						continue
					}
					b.roomID[next.Row][next.Col] = room
					stack = append(stack, next)
				}
			}
		}
	}
}
