package battleship

import (
	"strings"
	"sync"

	"github.com/saeidalz13/battleship-placement/internal"
	cerr "github.com/saeidalz13/battleship-placement/internal/error"
)

// GameBoard is a fixed size grid of ships. It only ever
// grows by AddShip; every ship on it is in bounds and no
// two ships share a cell.
type GameBoard struct {
	uuid   string
	width  int
	height int
	ships  []Ship
	grid   Grid
	mu     sync.RWMutex
}

func NewGameBoard(width, height int) (*GameBoard, error) {
	return newGameBoard(width, height, internal.NewShortUuid(internal.BoardUuidSize))
}

func newGameBoard(width, height int, boardUuid string) (*GameBoard, error) {
	if width <= 0 || height <= 0 || width > MaxBoardSide || height > MaxBoardSide {
		return nil, cerr.ErrBoardSizeInvalid(width, height, MaxBoardSide)
	}

	return &GameBoard{
		uuid:   boardUuid,
		width:  width,
		height: height,
		ships:  make([]Ship, 0),
		grid:   NewGrid(width, height),
	}, nil
}

// Validates the whole ship before touching the board, so a
// failed placement leaves the board as it was.
func (gb *GameBoard) AddShip(ship Ship) error {
	_, err := gb.PlaceShip(ship)
	return err
}

// Same as AddShip but returns the cells the ship now covers.
func (gb *GameBoard) PlaceShip(ship Ship) ([]Position, error) {
	if err := ship.validate(); err != nil {
		return nil, err
	}

	gb.mu.Lock()
	defer gb.mu.Unlock()

	// Cells lie on one line, so checking both ends covers them
	// all. The length check keeps the last cell from overflowing
	// and bounds the cell slice by the board size.
	if !gb.grid.contains(ship.anchor) {
		return nil, cerr.ErrCellOutOfBounds(ship.anchor.Row, ship.anchor.Col, gb.width, gb.height)
	}
	if ship.length > gb.sideAlong(ship.direction) {
		last := ship.anchor.move(ship.direction, gb.sideAlong(ship.direction))
		return nil, cerr.ErrCellOutOfBounds(last.Row, last.Col, gb.width, gb.height)
	}
	if last := ship.anchor.move(ship.direction, ship.length-1); !gb.grid.contains(last) {
		return nil, cerr.ErrCellOutOfBounds(last.Row, last.Col, gb.width, gb.height)
	}

	cells, err := ship.OccupiedCells()
	if err != nil {
		return nil, err
	}

	for _, cell := range cells {
		if !gb.grid.isEmpty(cell) {
			return nil, cerr.ErrCellOccupied(cell.Row, cell.Col)
		}
	}

	gb.ships = append(gb.ships, ship)
	shipCode := len(gb.ships)
	for _, cell := range cells {
		gb.grid[cell.Row][cell.Col] = shipCode
	}

	return cells, nil
}

func (gb *GameBoard) sideAlong(d Direction) int {
	if d == DirectionLeft || d == DirectionRight {
		return gb.width
	}
	return gb.height
}

// Returns the ship covering pos, if any.
func (gb *GameBoard) ShipAt(pos Position) (Ship, bool) {
	gb.mu.RLock()
	defer gb.mu.RUnlock()

	if !gb.grid.contains(pos) || gb.grid.isEmpty(pos) {
		return Ship{}, false
	}
	return gb.ships[gb.grid[pos.Row][pos.Col]-1], true
}

// Renders the board as `height` lines of `width` characters.
func (gb *GameBoard) Render(marker, fill rune) string {
	gb.mu.RLock()
	defer gb.mu.RUnlock()

	var sb strings.Builder
	sb.Grow(gb.height * (gb.width + 1))

	for row := 0; row < gb.height; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < gb.width; col++ {
			if gb.grid[row][col] == PositionStateEmpty {
				sb.WriteRune(fill)
			} else {
				sb.WriteRune(marker)
			}
		}
	}
	return sb.String()
}

func (gb *GameBoard) String() string {
	return gb.Render(RenderMarker, RenderFill)
}

// Same as String but split into rows.
func (gb *GameBoard) Rows() []string {
	return strings.Split(gb.String(), "\n")
}

func (gb *GameBoard) Uuid() string {
	return gb.uuid
}

func (gb *GameBoard) Width() int {
	return gb.width
}

func (gb *GameBoard) Height() int {
	return gb.height
}

func (gb *GameBoard) ShipCount() int {
	gb.mu.RLock()
	defer gb.mu.RUnlock()
	return len(gb.ships)
}

// Returns a copy of the ships in the order they were added.
func (gb *GameBoard) Ships() []Ship {
	gb.mu.RLock()
	defer gb.mu.RUnlock()

	ships := make([]Ship, len(gb.ships))
	copy(ships, gb.ships)
	return ships
}
