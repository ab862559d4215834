package sqlc

import (
	"context"
	"time"
)

const (
	QuerierCtxTimeout = time.Second * 10
)

type DbManager struct {
	Analytics *AnalyticsManager
}

func NewDbManager(queries Querier) DbManager {
	return DbManager{
		Analytics: NewAnalyticsManager(queries),
	}
}

// Every query gets at most QuerierCtxTimeout, no matter how
// long the parent lives.
func NewQuerierContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, QuerierCtxTimeout)
}
