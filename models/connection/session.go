package connection

import (
	"errors"
	"net"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

const (
	maxWriteWsRetries uint8 = 2
	backOffFactor     uint8 = 2
)

const (
	MessageTypeBytes uint8 = iota
	MessageTypeJSON
)

type ConnectionHandler interface {
	reconnect(conn *websocket.Conn)
	waitForReconnection(gracePeriod time.Duration) bool
	writeToConnWithRetry(msg interface{}, msgType uint8) error
	onConnErr(err error) uint8
}

type Session struct {
	id                     string
	conn                   *websocket.Conn
	reconnectionSignalChan chan struct{}
	createdAt              time.Time
	lastActiveAt           time.Time
	mu                     sync.Mutex
}

var _ ConnectionHandler = (*Session)(nil)

func NewSession(id string, conn *websocket.Conn) *Session {
	now := time.Now()
	return &Session{
		id:                     id,
		conn:                   conn,
		reconnectionSignalChan: make(chan struct{}),
		createdAt:              now,
		lastActiveAt:           now,
	}
}

func (s *Session) Id() string {
	return s.id
}

func (s *Session) Conn() *websocket.Conn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn
}

func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// Last time a message went through the session's connection,
// or the client reconnected.
func (s *Session) LastActiveAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActiveAt
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastActiveAt = time.Now()
	s.mu.Unlock()
}

// Closes the current connection, which ends any read loop
// blocked on it.
func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		_ = s.conn.Close()
	}
}

func (s *Session) onConnErr(err error) uint8 {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		log.Warn("timeout error", "session", s.id, "err", err)
		return ConnLoopRetry
	}

	if websocket.IsCloseError(err, websocket.CloseTryAgainLater) {
		log.Warn("high server load/traffic error", "session", s.id, "err", err)
		return ConnLoopRetry
	}

	// Client dropped without a close frame, e.g. a backgrounded app
	if websocket.IsCloseError(err, websocket.CloseAbnormalClosure) {
		log.Warn("abnormal closure error", "session", s.id, "err", err)
		return ConnLoopAbnormalClosureRetry
	}

	if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
		log.Info("close error", "session", s.id, "err", err)
		return ConnLoopBreak
	}

	if websocket.IsCloseError(err, websocket.CloseProtocolError, websocket.CloseInternalServerErr, websocket.CloseTLSHandshake, websocket.CloseMandatoryExtension) {
		log.Error("critical error", "session", s.id, "err", err)
		return ConnLoopBreak
	}

	// Likely not one of our clients (binary frames, bad utf-8, ...).
	// Break rather than keep reading invalid payloads.
	if websocket.IsCloseError(err, websocket.CloseInvalidFramePayloadData, websocket.CloseUnsupportedData, websocket.CloseMessageTooBig, websocket.ClosePolicyViolation, websocket.CloseServiceRestart, websocket.CloseNoStatusReceived) {
		log.Warn("non-critical error", "session", s.id, "err", err)
		return ConnLoopBreak
	}

	log.Error("unexpected error", "session", s.id, "err", err)
	return ConnLoopBreak
}

// Writes to the connection of that session. Timeouts and
// "try again later" closes are retried with a linear backoff.
func (s *Session) writeToConnWithRetry(msg interface{}, msgType uint8) error {
	var retries uint8

	for {
		conn := s.Conn()
		var err error

		switch msgType {
		case MessageTypeJSON:
			err = conn.WriteJSON(msg)

		case MessageTypeBytes:
			respBytes, ok := msg.([]byte)
			if !ok {
				return NewConnErr(ConnInvalidMsgType).AddDesc("msg type expected: []byte got invalid")
			}
			err = conn.WriteMessage(websocket.TextMessage, respBytes)

		default:
			return NewConnErr(ConnInvalidMsgType).AddDesc("invalid message type to write with retry")
		}

		if err == nil {
			s.touch()
			return nil
		}

		switch s.onConnErr(err) {
		case ConnLoopRetry:
			if retries >= maxWriteWsRetries {
				log.Error("max retries reached for writing to ws", "session", s.id, "err", err)
				return NewConnErr(ConnLoopBreak).AddDesc("max write retries reached").WithCause(err)
			}
			retries++
			log.Warn("writing to ws failed; retrying...", "session", s.id, "retry", retries)
			time.Sleep(time.Duration(retries*backOffFactor) * time.Second)

		case ConnLoopAbnormalClosureRetry:
			return NewConnErr(ConnLoopAbnormalClosureRetry).WithCause(err)

		default:
			return NewConnErr(ConnLoopBreak).AddDesc("breaking write loop").WithCause(err)
		}
	}
}

// Swaps in the new connection and wakes up whoever waits in
// waitForReconnection.
func (s *Session) reconnect(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	close(s.reconnectionSignalChan)
	if s.conn != nil {
		_ = s.conn.Close()
	}
	s.conn = conn
	s.reconnectionSignalChan = make(chan struct{})
	s.lastActiveAt = time.Now()
}

// Blocks until the client reconnects or the grace period is over.
func (s *Session) waitForReconnection(gracePeriod time.Duration) bool {
	s.mu.Lock()
	signal := s.reconnectionSignalChan
	s.mu.Unlock()

	timer := time.NewTimer(gracePeriod)
	defer timer.Stop()

	select {
	case <-timer.C:
		return false
	case <-signal:
		return true
	}
}
