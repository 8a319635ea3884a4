package tier

import "context"

type Repository interface {
	ListBySeason(ctx context.Context, seasonID string) ([]Tier, error)
	GetByID(ctx context.Context, tierID string) (Tier, bool, error)
}
