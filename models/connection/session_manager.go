package connection

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	cerr "github.com/saeidalz13/battleship-placement/internal/error"
)

const (
	defaultCleanupInterval = time.Minute * 20
	defaultGracePeriod     = time.Minute * 2
)

type SessionManager interface {
	GenerateNewSession(conn *websocket.Conn) *Session
	CleanupPeriodically(ctx context.Context)

	FindSession(sessionId string) (*Session, error)
	TerminateSession(sessionId string)
	ReconnectSession(sessionId string, conn *websocket.Conn) error
	WriteToSessionConn(session *Session, msg interface{}, msgType uint8) error
	ReadFromSessionConn(session *Session) (int, []byte, error)
	FetchCodeFromMsg(payload []byte) (uint8, error)
	SessionCount() int
}

type BattleshipSessionManager struct {
	cleanupInterval time.Duration
	gracePeriod     time.Duration
	sessions        map[string]*Session
	mu              sync.RWMutex
}

var _ SessionManager = (*BattleshipSessionManager)(nil)

type SessionManagerOption func(*BattleshipSessionManager)

func WithCleanupInterval(d time.Duration) SessionManagerOption {
	return func(bsm *BattleshipSessionManager) {
		bsm.cleanupInterval = d
	}
}

func WithGracePeriod(d time.Duration) SessionManagerOption {
	return func(bsm *BattleshipSessionManager) {
		bsm.gracePeriod = d
	}
}

func NewBattleshipSessionManager(opts ...SessionManagerOption) *BattleshipSessionManager {
	initMapSize := 10

	bsm := &BattleshipSessionManager{
		sessions:        make(map[string]*Session, initMapSize),
		cleanupInterval: defaultCleanupInterval,
		gracePeriod:     defaultGracePeriod,
	}
	for _, opt := range opts {
		opt(bsm)
	}
	return bsm
}

func (bsm *BattleshipSessionManager) GenerateNewSession(conn *websocket.Conn) *Session {
	// URL compatible so clients can pass it back as a query param
	sessionId := base64.RawURLEncoding.EncodeToString([]byte(uuid.New().String()))
	session := NewSession(sessionId, conn)

	bsm.mu.Lock()
	bsm.sessions[sessionId] = session
	bsm.mu.Unlock()

	return session
}

func (bsm *BattleshipSessionManager) FindSession(sessionId string) (*Session, error) {
	bsm.mu.RLock()
	defer bsm.mu.RUnlock()

	session, prs := bsm.sessions[sessionId]
	if !prs {
		return nil, cerr.ErrSessionNotFound(sessionId)
	}

	if session == nil {
		return nil, cerr.ErrSessionIsNil(sessionId)
	}

	return session, nil
}

func (bsm *BattleshipSessionManager) TerminateSession(sessionId string) {
	bsm.mu.Lock()
	delete(bsm.sessions, sessionId)
	bsm.mu.Unlock()
}

func (bsm *BattleshipSessionManager) ReconnectSession(sessionId string, conn *websocket.Conn) error {
	session, err := bsm.FindSession(sessionId)
	if err != nil {
		return err
	}

	session.reconnect(conn)
	log.Info("session reconnected", "session", sessionId)
	return nil
}

func (bsm *BattleshipSessionManager) SessionCount() int {
	bsm.mu.RLock()
	defer bsm.mu.RUnlock()
	return len(bsm.sessions)
}

// To ensure that there is no dangling connections, sessions
// idle for longer than the cleanup interval are deleted and
// their connections closed.
func (bsm *BattleshipSessionManager) CleanupPeriodically(ctx context.Context) {
	ticker := time.NewTicker(bsm.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			bsm.removeStaleSessions()
		}
	}
}

func (bsm *BattleshipSessionManager) removeStaleSessions() []string {
	assumedClosedConns := 10
	toDelete := make([]string, 0, assumedClosedConns)

	bsm.mu.Lock()
	defer bsm.mu.Unlock()

	for id, session := range bsm.sessions {
		if session == nil || time.Since(session.LastActiveAt()) > bsm.cleanupInterval {
			toDelete = append(toDelete, id)
		}
	}

	for _, id := range toDelete {
		if session := bsm.sessions[id]; session != nil {
			session.close()
		}
		delete(bsm.sessions, id)
		log.Debug("removed stale session", "session", id)
	}
	if len(toDelete) > 0 {
		log.Info("cleaned up sessions", "count", len(toDelete))
	}
	return toDelete
}

// An abnormal closure keeps the session alive for the grace
// period so the client can come back with its session id.
func (bsm *BattleshipSessionManager) handleAbnormalClosure(session *Session) error {
	log.Info("waiting for reconnection", "session", session.Id(), "grace_period", bsm.gracePeriod)

	if !session.waitForReconnection(bsm.gracePeriod) {
		return NewConnErr(ConnLoopBreak).AddDesc("grace period is over for session: " + session.Id())
	}
	return nil
}

func (bsm *BattleshipSessionManager) WriteToSessionConn(session *Session, msg interface{}, msgType uint8) error {
	err := session.writeToConnWithRetry(msg, msgType)
	if err == nil {
		return nil
	}

	var connErr ConnErr
	if !errors.As(err, &connErr) {
		return err
	}

	if connErr.Code() != ConnLoopAbnormalClosureRetry {
		return connErr
	}

	if err := bsm.handleAbnormalClosure(session); err != nil {
		return err
	}
	return session.writeToConnWithRetry(msg, msgType)
}

func (bsm *BattleshipSessionManager) ReadFromSessionConn(session *Session) (int, []byte, error) {
	for {
		conn := session.Conn()
		messageType, payload, err := conn.ReadMessage()
		if err == nil {
			session.touch()
			return messageType, payload, nil
		}

		// Client already came back on a new connection
		if session.Conn() != conn {
			continue
		}

		// A failed gorilla conn never recovers, so only a new
		// connection from the client can continue the session.
		if session.onConnErr(err) != ConnLoopAbnormalClosureRetry {
			return -1, []byte{}, err
		}

		if err := bsm.handleAbnormalClosure(session); err != nil {
			return -1, []byte{}, err
		}
	}
}

func (bsm *BattleshipSessionManager) FetchCodeFromMsg(payload []byte) (uint8, error) {
	var signal Signal
	const randomInvalidCode uint8 = 255

	if err := json.Unmarshal(payload, &signal); err != nil {
		return randomInvalidCode, err
	}

	return signal.Code, nil
}
