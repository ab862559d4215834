package api

import (
	"fmt"
	"strings"
	"testing"

	cerr "github.com/saeidalz13/battleship-placement/internal/error"
	mb "github.com/saeidalz13/battleship-placement/models/battleship"
)

func TestServerOptions(t *testing.T) {
	tests := []struct {
		name      string
		opts      []Option
		expectErr bool
	}{
		{name: "defaults"},
		{name: "prod stage", opts: []Option{WithStage(StageProd), WithPort(8000)}},
		{name: "invalid stage", opts: []Option{WithStage("staging")}, expectErr: true},
		{name: "invalid port", opts: []Option{WithPort(70000)}, expectErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			server, err := NewServer(test.opts...)
			if (err != nil) != test.expectErr {
				t.Fatalf("expected error: %t\t got: %v", test.expectErr, err)
			}
			if err != nil {
				return
			}
			if server.SessionManager == nil || server.BoardManager == nil || server.Handler() == nil {
				t.Fatal("expected managers and handler to be set")
			}
		})
	}
}

func TestHandlersWithoutPayload(t *testing.T) {
	bbm := mb.NewBattleshipBoardManager()
	req := NewRequest()

	if board, msg := req.HandleCreateBoard(bbm); board != nil || msg.Error == nil {
		t.Fatal("expected create board to fail without payload")
	}
	if msg := req.HandleAddShip(bbm); msg.Error == nil {
		t.Fatal("expected add ship to fail without payload")
	}
	if msg := req.HandleRenderBoard(bbm); msg.Error == nil {
		t.Fatal("expected render to fail without payload")
	}
	if msg := req.HandleShipAt(bbm); msg.Error == nil {
		t.Fatal("expected ship lookup to fail without payload")
	}
}

func TestHandleAddShipErrorKinds(t *testing.T) {
	bbm := mb.NewBattleshipBoardManager()
	board, err := bbm.CreateBoard(3, 3)
	if err != nil {
		t.Fatal(err)
	}

	ship, err := mb.NewShip(mb.NewPosition(1, 0), mb.DirectionRight, 3)
	if err != nil {
		t.Fatal(err)
	}
	if err := board.AddShip(ship); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		payload  string
		expected error
	}{
		{name: "overlap", payload: `{"code":3,"payload":{"board_uuid":"%s","row":0,"col":1,"direction":"Down","length":2}}`, expected: cerr.ErrOverlap},
		{name: "out of bounds", payload: `{"code":3,"payload":{"board_uuid":"%s","row":2,"col":2,"direction":"Right","length":2}}`, expected: cerr.ErrOutOfBounds},
		{name: "invalid ship", payload: `{"code":3,"payload":{"board_uuid":"%s","row":0,"col":0,"direction":"Sideways","length":2}}`, expected: cerr.ErrInvalidShip},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			payload := []byte(fmt.Sprintf(test.payload, board.Uuid()))
			msg := NewRequest(payload).HandleAddShip(bbm)
			if msg.Error == nil {
				t.Fatal("expected an error")
			}

			// The error details carry the kind's text
			if !strings.Contains(msg.Error.ErrorDetails, test.expected.Error()) {
				t.Fatalf("expected details to mention %q, got: %s", test.expected.Error(), msg.Error.ErrorDetails)
			}
		})
	}

	if board.ShipCount() != 1 {
		t.Fatalf("expected ships: 1\t got: %d", board.ShipCount())
	}
}
