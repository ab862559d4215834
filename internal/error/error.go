package error

import (
	"errors"
	"fmt"
)

const (
	ConstErrAddShipFailed = "add ship operation failed"
)

// Placement error kinds. Every constructor below wraps one of
// these, so callers can match with errors.Is.
var (
	ErrInvalidShip      = errors.New("invalid ship")
	ErrOutOfBounds      = errors.New("ship out of board bounds")
	ErrOverlap          = errors.New("ship overlaps another ship")
	ErrInvalidBoardSize = errors.New("invalid board size")
	ErrNotFound         = errors.New("not found")
)

func ErrShipLengthInvalid(length int) error {
	return fmt.Errorf("%w: length must be positive, got: %d", ErrInvalidShip, length)
}

func ErrDirectionInvalid(direction string) error {
	return fmt.Errorf("%w: direction must be one of Up, Down, Left, Right, got: %q", ErrInvalidShip, direction)
}

func ErrCellOutOfBounds(row, col, width, height int) error {
	return fmt.Errorf("%w: cell (%d, %d) outside %dx%d board", ErrOutOfBounds, row, col, width, height)
}

func ErrShipTooLong(length, maxSide int) error {
	return fmt.Errorf("%w: length %d exceeds the largest board side %d", ErrOutOfBounds, length, maxSide)
}

func ErrCellOccupied(row, col int) error {
	return fmt.Errorf("%w: cell (%d, %d) already occupied", ErrOverlap, row, col)
}

func ErrBoardSizeInvalid(width, height, maxSide int) error {
	return fmt.Errorf("%w: width and height must be in [1, %d]\twidth: %d\theight: %d", ErrInvalidBoardSize, maxSide, width, height)
}

func ErrBoardNotExists(boardUuid string) error {
	return fmt.Errorf("%w: board with this uuid does not exist, uuid: %s", ErrNotFound, boardUuid)
}

func ErrBoardIsNil(boardUuid string) error {
	return fmt.Errorf("board with this uuid is nil, uuid: %s", boardUuid)
}

func ErrSessionNotFound(sessionId string) error {
	return fmt.Errorf("%w: session with this id does not exist, id: %s", ErrNotFound, sessionId)
}

func ErrSessionIsNil(sessionId string) error {
	return fmt.Errorf("session with this id is nil, id: %s", sessionId)
}

func ErrNilPayload() error {
	return fmt.Errorf("the payload is nil and is not of type map")
}
