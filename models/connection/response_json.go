package connection

import (
	mb "github.com/saeidalz13/battleship-placement/models/battleship"
)

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

type RespCreateBoard struct {
	BoardUuid string `json:"board_uuid"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

type RespAddShip struct {
	ShipCount int           `json:"ship_count"`
	Cells     []mb.Position `json:"cells,omitempty"`
}

type RespRenderBoard struct {
	Rows []string `json:"rows"`
}

type RespShipAt struct {
	Found     bool          `json:"found"`
	Anchor    *mb.Position  `json:"anchor,omitempty"`
	Direction *mb.Direction `json:"direction,omitempty"`
	Length    int           `json:"length,omitempty"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
