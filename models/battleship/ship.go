package battleship

import (
	"fmt"

	cerr "github.com/saeidalz13/battleship-placement/internal/error"
)

// Ship is immutable once created. It is anchored at one cell
// and extends `length` cells in its direction, anchor included.
type Ship struct {
	anchor    Position
	direction Direction
	length    int
}

func NewShip(anchor Position, direction Direction, length int) (Ship, error) {
	ship := Ship{
		anchor:    anchor,
		direction: direction,
		length:    length,
	}
	if err := ship.validate(); err != nil {
		return Ship{}, err
	}
	return ship, nil
}

func (sh Ship) validate() error {
	if sh.length <= 0 {
		return cerr.ErrShipLengthInvalid(sh.length)
	}
	if !sh.direction.IsValid() {
		return cerr.ErrDirectionInvalid(sh.direction.String())
	}
	return nil
}

// Returns the cells the ship covers, starting at the anchor.
// A zero value Ship fails the same way NewShip would.
func (sh Ship) OccupiedCells() ([]Position, error) {
	if err := sh.validate(); err != nil {
		return nil, err
	}
	// No board is longer than MaxBoardSide
	if sh.length > MaxBoardSide {
		return nil, cerr.ErrShipTooLong(sh.length, MaxBoardSide)
	}

	cells := make([]Position, 0, sh.length)
	for i := 0; i < sh.length; i++ {
		cells = append(cells, sh.anchor.move(sh.direction, i))
	}
	return cells, nil
}

func (sh Ship) Anchor() Position {
	return sh.anchor
}

func (sh Ship) Direction() Direction {
	return sh.direction
}

func (sh Ship) Length() int {
	return sh.length
}

func (sh Ship) String() string {
	return fmt.Sprintf("Ship{anchor: %s, direction: %s, length: %d}", sh.anchor, sh.direction, sh.length)
}
