package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"
)

type AnalyticsManager struct {
	queries Querier
}

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

func (a *AnalyticsManager) IncrementBoardsCreatedCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.AnalyticsIncrementBoardsCreatedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) IncrementShipsPlacedCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.AnalyticsIncrementShipsPlacedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetBoardsCreatedCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.AnalyticsGetBoardsCreatedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetShipsPlacedCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.AnalyticsGetShipsPlacedCount(ctx, serverIpNet)
}
