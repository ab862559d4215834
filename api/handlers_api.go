package api

import (
	"encoding/json"

	"github.com/charmbracelet/log"

	cerr "github.com/saeidalz13/battleship-placement/internal/error"
	mb "github.com/saeidalz13/battleship-placement/models/battleship"
	mc "github.com/saeidalz13/battleship-placement/models/connection"
)

const (
	errMsgInvalidPayload = "invalid payload"
	errMsgCreateBoard    = "create board operation failed"
	errMsgRenderBoard    = "render board operation failed"
	errMsgShipAt         = "ship lookup failed"
)

type RequestHandler interface {
	HandleCreateBoard(bm mb.BoardManager) (*mb.GameBoard, mc.Message[mc.RespCreateBoard])
	HandleAddShip(bm mb.BoardManager) mc.Message[mc.RespAddShip]
	HandleRenderBoard(bm mb.BoardManager) mc.Message[mc.RespRenderBoard]
	HandleShipAt(bm mb.BoardManager) mc.Message[mc.RespShipAt]
}

// Every incoming valid request will have this structure.
// Handlers never fail; errors travel in the response message.
type Request struct {
	payload []byte
}

var _ RequestHandler = (*Request)(nil)

func NewRequest(payload ...[]byte) Request {
	if len(payload) == 0 {
		return Request{}
	}
	return Request{payload: payload[0]}
}

func decodePayload[T any](payload []byte) (T, error) {
	var msg mc.Message[T]
	if len(payload) == 0 {
		return msg.Payload, cerr.ErrNilPayload()
	}
	if err := json.Unmarshal(payload, &msg); err != nil {
		return msg.Payload, err
	}
	return msg.Payload, nil
}

func (r Request) HandleCreateBoard(bm mb.BoardManager) (*mb.GameBoard, mc.Message[mc.RespCreateBoard]) {
	resp := mc.NewMessage[mc.RespCreateBoard](mc.CodeCreateBoard)

	req, err := decodePayload[mc.ReqCreateBoard](r.payload)
	if err != nil {
		resp.AddError(err.Error(), errMsgInvalidPayload)
		return nil, resp
	}

	board, err := bm.CreateBoard(req.Width, req.Height)
	if err != nil {
		resp.AddError(err.Error(), errMsgCreateBoard)
		return nil, resp
	}

	log.Debug("board created", "board", board.Uuid(), "width", board.Width(), "height", board.Height())
	resp.AddPayload(mc.RespCreateBoard{
		BoardUuid: board.Uuid(),
		Width:     board.Width(),
		Height:    board.Height(),
	})
	return board, resp
}

func (r Request) HandleAddShip(bm mb.BoardManager) mc.Message[mc.RespAddShip] {
	resp := mc.NewMessage[mc.RespAddShip](mc.CodeAddShip)

	req, err := decodePayload[mc.ReqAddShip](r.payload)
	if err != nil {
		resp.AddError(err.Error(), errMsgInvalidPayload)
		return resp
	}

	board, err := bm.GetBoard(req.BoardUuid)
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrAddShipFailed)
		return resp
	}

	direction, err := mb.ParseDirection(req.Direction)
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrAddShipFailed)
		return resp
	}

	ship, err := mb.NewShip(mb.NewPosition(req.Row, req.Col), direction, req.Length)
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrAddShipFailed)
		return resp
	}

	cells, err := board.PlaceShip(ship)
	if err != nil {
		log.Debug("ship rejected", "board", board.Uuid(), "ship", ship, "err", err)
		resp.AddError(err.Error(), cerr.ConstErrAddShipFailed)
		return resp
	}

	resp.AddPayload(mc.RespAddShip{ShipCount: board.ShipCount(), Cells: cells})
	return resp
}

func (r Request) HandleRenderBoard(bm mb.BoardManager) mc.Message[mc.RespRenderBoard] {
	resp := mc.NewMessage[mc.RespRenderBoard](mc.CodeRenderBoard)

	req, err := decodePayload[mc.ReqRenderBoard](r.payload)
	if err != nil {
		resp.AddError(err.Error(), errMsgInvalidPayload)
		return resp
	}

	board, err := bm.GetBoard(req.BoardUuid)
	if err != nil {
		resp.AddError(err.Error(), errMsgRenderBoard)
		return resp
	}

	resp.AddPayload(mc.RespRenderBoard{Rows: board.Rows()})
	return resp
}

func (r Request) HandleShipAt(bm mb.BoardManager) mc.Message[mc.RespShipAt] {
	resp := mc.NewMessage[mc.RespShipAt](mc.CodeShipAt)

	req, err := decodePayload[mc.ReqShipAt](r.payload)
	if err != nil {
		resp.AddError(err.Error(), errMsgInvalidPayload)
		return resp
	}

	board, err := bm.GetBoard(req.BoardUuid)
	if err != nil {
		resp.AddError(err.Error(), errMsgShipAt)
		return resp
	}

	ship, found := board.ShipAt(mb.NewPosition(req.Row, req.Col))
	if !found {
		resp.AddPayload(mc.RespShipAt{Found: false})
		return resp
	}

	anchor := ship.Anchor()
	direction := ship.Direction()
	resp.AddPayload(mc.RespShipAt{
		Found:     true,
		Anchor:    &anchor,
		Direction: &direction,
		Length:    ship.Length(),
	})
	return resp
}
