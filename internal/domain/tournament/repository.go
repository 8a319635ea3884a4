package tournament

import (
	"context"
	"time"
)

type Repository interface {
	ListBySeason(ctx context.Context, seasonID string) ([]Tournament, error)
	GetByID(ctx context.Context, tournamentID string) (Tournament, bool, error)
	MarkFinalized(ctx context.Context, tournamentID string, at time.Time) error
}
