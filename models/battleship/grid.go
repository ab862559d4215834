package battleship

const (
	// Cells hold the 1-based index of the owning ship,
	// so the zero value means the cell is free.
	PositionStateEmpty int = 0
)

// Largest width or height a board may have.
const MaxBoardSide int = 256

const (
	RenderMarker rune = 'S'
	RenderFill   rune = '.'
)

type Grid [][]int

// Creates a new grid of `height` rows and `width` columns.
// All indexes are zero/PositionStateEmpty
func NewGrid(width, height int) Grid {
	grid := make(Grid, height)

	for i := 0; i < height; i++ {
		grid[i] = make([]int, width)
	}
	return grid
}

func (g Grid) contains(p Position) bool {
	return p.Row >= 0 && p.Row < len(g) && p.Col >= 0 && p.Col < len(g[p.Row])
}

func (g Grid) isEmpty(p Position) bool {
	return g[p.Row][p.Col] == PositionStateEmpty
}
