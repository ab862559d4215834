package battleship

import (
	"sync"

	"github.com/saeidalz13/battleship-placement/internal"
	cerr "github.com/saeidalz13/battleship-placement/internal/error"
)

type BoardManager interface {
	CreateBoard(width, height int) (*GameBoard, error)
	GetBoard(boardUuid string) (*GameBoard, error)
	TerminateBoard(boardUuid string)
	BoardCount() int
}

type BattleshipBoardManager struct {
	boards map[string]*GameBoard
	mu     sync.RWMutex
}

var _ BoardManager = (*BattleshipBoardManager)(nil)

func NewBattleshipBoardManager() *BattleshipBoardManager {
	return &BattleshipBoardManager{
		boards: make(map[string]*GameBoard, 10),
	}
}

func (bbm *BattleshipBoardManager) CreateBoard(width, height int) (*GameBoard, error) {
	bbm.mu.Lock()
	defer bbm.mu.Unlock()

	// Short uuids can collide; draw again until free
	boardUuid := internal.NewShortUuid(internal.BoardUuidSize)
	for {
		if _, prs := bbm.boards[boardUuid]; !prs {
			break
		}
		boardUuid = internal.NewShortUuid(internal.BoardUuidSize)
	}

	board, err := newGameBoard(width, height, boardUuid)
	if err != nil {
		return nil, err
	}

	bbm.boards[boardUuid] = board
	return board, nil
}

func (bbm *BattleshipBoardManager) GetBoard(boardUuid string) (*GameBoard, error) {
	bbm.mu.RLock()
	board, prs := bbm.boards[boardUuid]
	bbm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrBoardNotExists(boardUuid)
	}

	if board == nil {
		return nil, cerr.ErrBoardIsNil(boardUuid)
	}

	return board, nil
}

func (bbm *BattleshipBoardManager) TerminateBoard(boardUuid string) {
	bbm.mu.Lock()
	delete(bbm.boards, boardUuid)
	bbm.mu.Unlock()
}

func (bbm *BattleshipBoardManager) BoardCount() int {
	bbm.mu.RLock()
	defer bbm.mu.RUnlock()
	return len(bbm.boards)
}
