package tourcard

import (
	"context"
	"errors"
)

// ErrAlreadyExists is returned by Create when the member already holds a
// card for the season.
var ErrAlreadyExists = errors.New("tour card already exists for season")

type Repository interface {
	ListBySeason(ctx context.Context, seasonID string) ([]TourCard, error)
	GetByMemberAndSeason(ctx context.Context, memberID, seasonID string) (TourCard, bool, error)
	Create(ctx context.Context, c TourCard) error
	UpdateTotals(ctx context.Context, totals []Totals) error
}
