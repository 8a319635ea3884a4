package member

import "context"

type Repository interface {
	GetByID(ctx context.Context, memberID string) (Member, bool, error)
	List(ctx context.Context) ([]Member, error)
	Create(ctx context.Context, m Member) error
	Update(ctx context.Context, m Member) error
	// AdjustAccount adds delta to the balance atomically and returns the
	// new balance.
	AdjustAccount(ctx context.Context, memberID string, delta float64) (float64, error)
}
