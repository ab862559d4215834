package battleship

import "fmt"

// Position is a 0-based (row, column) coordinate on a board.
// Bounds are checked by the board, not here.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewPosition(row, col int) Position {
	return Position{Row: row, Col: col}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Returns the position `steps` cells away in direction d.
func (p Position) move(d Direction, steps int) Position {
	dRow, dCol := d.step()
	return Position{Row: p.Row + dRow*steps, Col: p.Col + dCol*steps}
}
