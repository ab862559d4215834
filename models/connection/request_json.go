package connection

type ReqCreateBoard struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Direction is kept as text here; the handler parses it so an
// unknown value is reported as an invalid ship.
type ReqAddShip struct {
	BoardUuid string `json:"board_uuid"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Direction string `json:"direction"`
	Length    int    `json:"length"`
}

type ReqRenderBoard struct {
	BoardUuid string `json:"board_uuid"`
}

type ReqShipAt struct {
	BoardUuid string `json:"board_uuid"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
}
