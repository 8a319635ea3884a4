package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fantasy-golf/internal/domain/golfer"
	qb "github.com/riskibarqy/fantasy-golf/internal/platform/querybuilder"
)

type GolferRepository struct {
	db *sqlx.DB
}

func NewGolferRepository(db *sqlx.DB) *GolferRepository {
	return &GolferRepository{db: db}
}

func (r *GolferRepository) ListByTournament(ctx context.Context, tournamentID string) ([]golfer.Golfer, error) {
	query, args, err := qb.Select("*").From("golfers").
		Where(qb.Eq("tournament_public_id", tournamentID)).
		OrderBy("draft_group", "world_rank NULLS LAST", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list golfers query: %w", err)
	}

	var rows []golferTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list golfers: %w", err)
	}
	out := make([]golfer.Golfer, 0, len(rows))
	for _, row := range rows {
		out = append(out, golfer.Golfer{
			ID:           row.PublicID,
			APIID:        row.APIID,
			TournamentID: row.TournamentID,
			Name:         row.Name,
			Country:      row.Country,
			Position:     row.Position,
			PosChange:    row.PosChange,
			Score:        nullableInt(row.Score),
			Today:        nullableInt(row.Today),
			Thru:         nullableInt(row.Thru),
			Round:        nullableInt(row.Round),
			Group:        row.Group,
			WorldRank:    nullableInt(row.WorldRank),
			RoundScores:  intsFromArray(row.RoundScores),
		})
	}
	return out, nil
}
