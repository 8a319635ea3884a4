package golfer

import "context"

type Repository interface {
	ListByTournament(ctx context.Context, tournamentID string) ([]Golfer, error)
}
