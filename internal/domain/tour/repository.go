package tour

import "context"

type Repository interface {
	ListBySeason(ctx context.Context, seasonID string) ([]Tour, error)
	GetByID(ctx context.Context, tourID string) (Tour, bool, error)
}
