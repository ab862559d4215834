package battleship

import (
	"errors"
	"testing"

	cerr "github.com/saeidalz13/battleship-placement/internal/error"
)

func TestBoardManager(t *testing.T) {
	bbm := NewBattleshipBoardManager()

	board, err := bbm.CreateBoard(6, 4)
	if err != nil {
		t.Fatal(err)
	}

	found, err := bbm.GetBoard(board.Uuid())
	if err != nil {
		t.Fatal(err)
	}
	if found != board {
		t.Fatal("expected the same board instance")
	}

	if _, err := bbm.CreateBoard(0, 4); !errors.Is(err, cerr.ErrInvalidBoardSize) {
		t.Fatalf("expected invalid board size error, got: %v", err)
	}
	if bbm.BoardCount() != 1 {
		t.Fatalf("expected boards: 1\t got: %d", bbm.BoardCount())
	}

	bbm.TerminateBoard(board.Uuid())
	if _, err := bbm.GetBoard(board.Uuid()); !errors.Is(err, cerr.ErrNotFound) {
		t.Fatalf("expected not found error, got: %v", err)
	}
	if bbm.BoardCount() != 0 {
		t.Fatalf("expected boards: 0\t got: %d", bbm.BoardCount())
	}
}

func TestBoardManagerUniqueUuids(t *testing.T) {
	bbm := NewBattleshipBoardManager()

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		board, err := bbm.CreateBoard(3, 3)
		if err != nil {
			t.Fatal(err)
		}
		if seen[board.Uuid()] {
			t.Fatalf("duplicate board uuid: %s", board.Uuid())
		}
		seen[board.Uuid()] = true
	}
}
