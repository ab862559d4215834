package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/saeidalz13/battleship-placement/db/sqlc"
	mb "github.com/saeidalz13/battleship-placement/models/battleship"
	mc "github.com/saeidalz13/battleship-placement/models/connection"
)

const (
	StageProd = "prod"
	StageDev  = "dev"

	RouteBattleship = "GET /battleship"

	shutdownTimeout = time.Second * 10
)

var (
	defaultPort = 9191
)

type Server struct {
	port           int
	stage          string
	analytics      *sqlc.AnalyticsManager
	SessionManager *mc.BattleshipSessionManager
	BoardManager   *mb.BattleshipBoardManager
}

type Option func(*Server) error

func NewServer(optFuncs ...Option) (*Server, error) {
	server := Server{
		port:  defaultPort,
		stage: StageDev,
	}
	for _, opt := range optFuncs {
		if err := opt(&server); err != nil {
			return nil, err
		}
	}

	server.SessionManager = mc.NewBattleshipSessionManager()
	server.BoardManager = mb.NewBattleshipBoardManager()

	return &server, nil
}

func WithPort(port int) Option {
	return func(s *Server) error {
		if port <= 0 || port > 65535 {
			return fmt.Errorf("invalid port: %d", port)
		}
		s.port = port
		return nil
	}
}

func WithStage(stage string) Option {
	return func(s *Server) error {
		if stage != StageProd && stage != StageDev {
			return fmt.Errorf("invalid type of development stage: %s", stage)
		}
		s.stage = stage
		return nil
	}
}

func WithAnalytics(analytics *sqlc.AnalyticsManager) Option {
	return func(s *Server) error {
		s.analytics = analytics
		return nil
	}
}

func (s *Server) Stage() string {
	return s.stage
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(RouteBattleship, NewRequestProcessor(s.SessionManager, s.BoardManager, s.analytics))
	return mux
}

// Serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	go s.SessionManager.CleanupPeriodically(ctx)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf("0.0.0.0:%d", s.port),
		Handler: s.Handler(),
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info("listening", "port", s.port, "stage", s.stage)
		errChan <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		return err

	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		log.Info("shutting down")
		if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
