package team

import "context"

type Repository interface {
	ListByTournament(ctx context.Context, tournamentID string) ([]Team, error)
	GetByTourCard(ctx context.Context, tournamentID, tourCardID string) (Team, bool, error)
	Upsert(ctx context.Context, t Team) error
	UpdateResults(ctx context.Context, tournamentID string, results []Result) error
}
