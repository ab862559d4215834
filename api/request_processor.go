package api

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/sqlc-dev/pqtype"

	"github.com/saeidalz13/battleship-placement/db/sqlc"
	mb "github.com/saeidalz13/battleship-placement/models/battleship"
	mc "github.com/saeidalz13/battleship-placement/models/connection"
)

const (
	URLQuerySessionIDKeyword string = "sessionID"
)

var (
	upgrader = websocket.Upgrader{
		// good average time since this is not a high-latency operation such as video streaming
		HandshakeTimeout: time.Second * 5,

		ReadBufferSize:  2048,
		WriteBufferSize: 2048,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}
)

type RequestProcessor struct {
	sessionManager mc.SessionManager
	boardManager   mb.BoardManager
	analytics      *sqlc.AnalyticsManager
	ipnet          net.IPNet
}

// analytics may be nil, in which case no counters are kept.
func NewRequestProcessor(
	sessionManager mc.SessionManager,
	boardManager mb.BoardManager,
	analytics *sqlc.AnalyticsManager,
) RequestProcessor {
	return RequestProcessor{
		sessionManager: sessionManager,
		boardManager:   boardManager,
		analytics:      analytics,
		ipnet:          getServerIpNet(),
	}
}

// First IPv4 address of an interface that is up and not a
// loopback. Falls back to 127.0.0.1/32 on hosts without one.
func getServerIpNet() net.IPNet {
	loopback := net.IPNet{IP: net.IPv4(127, 0, 0, 1).To4(), Mask: net.CIDRMask(32, 32)}

	ifaces, err := net.Interfaces()
	if err != nil {
		log.Warn("could not list network interfaces", "err", err)
		return loopback
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, addr := range addrs {
			ipnet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			if ip := ipnet.IP.To4(); ip != nil && !ip.IsLoopback() {
				return net.IPNet{IP: ip, Mask: net.CIDRMask(32, 32)}
			}
		}
	}

	return loopback
}

// Expose this method to use it in testing
func (rp RequestProcessor) GetIpNet() net.IPNet {
	return rp.ipnet
}

func (rp RequestProcessor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("could not upgrade connection", "err", err)
		return
	}

	sessionIdQuery := r.URL.Query().Get(URLQuerySessionIDKeyword)
	switch sessionIdQuery {
	case "":
		log.Info("a new connection established", "remote_addr", conn.RemoteAddr().String())
		rp.processSessionRequests(rp.sessionManager.GenerateNewSession(conn))

	default:
		// The original session loop picks the new conn up
		if err := rp.sessionManager.ReconnectSession(sessionIdQuery, conn); err != nil {
			log.Warn("reconnection rejected", "session", sessionIdQuery, "err", err)
			_ = conn.WriteJSON(mc.NewMessage[mc.NoPayload](mc.CodeReceivedInvalidSessionID))
			conn.Close()
		}
	}
}

func (rp RequestProcessor) incrementAnalytics(increment func(context.Context, pqtype.Inet) error) {
	if rp.analytics == nil {
		return
	}

	ctx, cancel := sqlc.NewQuerierContext(context.Background())
	defer cancel()

	// for now not killing the session for it
	if err := increment(ctx, pqtype.Inet{IPNet: rp.ipnet, Valid: true}); err != nil {
		log.Error("analytics update failed", "err", err)
	}
}

func (rp RequestProcessor) processSessionRequests(session *mc.Session) {
	var (
		sessionBoards = make([]string, 0)
		sessionId     = session.Id()
	)

	// Boards live as long as the session that created them
	defer func() {
		for _, boardUuid := range sessionBoards {
			rp.boardManager.TerminateBoard(boardUuid)
		}
		if conn := session.Conn(); conn != nil {
			conn.Close()
		}
		rp.sessionManager.TerminateSession(sessionId)
		log.Info("session terminated", "session", sessionId, "boards", len(sessionBoards))
	}()

	resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
	resp.AddPayload(mc.RespSessionId{SessionID: sessionId})
	if err := rp.sessionManager.WriteToSessionConn(session, resp, mc.MessageTypeJSON); err != nil {
		return
	}

sessionLoop:
	for {
		_, payload, err := rp.sessionManager.ReadFromSessionConn(session)
		if err != nil {
			// Retries already happened; the connection is gone
			break sessionLoop
		}

		code, err := rp.sessionManager.FetchCodeFromMsg(payload)
		if err != nil {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeSignalAbsent)
			msg.AddError(err.Error(), "incoming req payload must contain 'code' field")
			if err = rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		var respMsg interface{}

		switch code {
		case mc.CodeCreateBoard:
			board, msg := NewRequest(payload).HandleCreateBoard(rp.boardManager)
			if msg.Error == nil {
				sessionBoards = append(sessionBoards, board.Uuid())
				rp.incrementAnalytics(rp.analytics.IncrementBoardsCreatedCount)
			}
			respMsg = msg

		case mc.CodeAddShip:
			msg := NewRequest(payload).HandleAddShip(rp.boardManager)
			if msg.Error == nil {
				rp.incrementAnalytics(rp.analytics.IncrementShipsPlacedCount)
			}
			respMsg = msg

		case mc.CodeRenderBoard:
			respMsg = NewRequest(payload).HandleRenderBoard(rp.boardManager)

		case mc.CodeShipAt:
			respMsg = NewRequest(payload).HandleShipAt(rp.boardManager)

		default:
			msg := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
			msg.AddError("", "invalid code in the incoming payload")
			respMsg = msg
		}

		if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
			break sessionLoop
		}
	}
}
