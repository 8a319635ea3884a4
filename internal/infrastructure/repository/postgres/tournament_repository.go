package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fantasy-golf/internal/domain/tournament"
	qb "github.com/riskibarqy/fantasy-golf/internal/platform/querybuilder"
)

type TournamentRepository struct {
	db *sqlx.DB
}

func NewTournamentRepository(db *sqlx.DB) *TournamentRepository {
	return &TournamentRepository{db: db}
}

func (r *TournamentRepository) ListBySeason(ctx context.Context, seasonID string) ([]tournament.Tournament, error) {
	query, args, err := qb.Select("*").From("tournaments").
		Where(qb.Eq("season_public_id", seasonID)).
		OrderBy("start_date", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list tournaments query: %w", err)
	}

	var rows []tournamentTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}
	out := make([]tournament.Tournament, 0, len(rows))
	for _, row := range rows {
		out = append(out, tournamentFromRow(row))
	}
	return out, nil
}

func (r *TournamentRepository) GetByID(ctx context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	query, args, err := qb.Select("*").From("tournaments").Where(qb.Eq("public_id", tournamentID)).ToSQL()
	if err != nil {
		return tournament.Tournament{}, false, fmt.Errorf("build get tournament query: %w", err)
	}

	var row tournamentTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return tournament.Tournament{}, false, nil
		}
		return tournament.Tournament{}, false, fmt.Errorf("get tournament: %w", err)
	}
	return tournamentFromRow(row), true, nil
}

func (r *TournamentRepository) MarkFinalized(ctx context.Context, tournamentID string, at time.Time) error {
	query, args, err := qb.Update("tournaments").
		Set("finalized_at", at.UTC()).
		Set("live_play", false).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", tournamentID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build finalize tournament query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("finalize tournament: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("tournament not found: %s", tournamentID)
	}
	return nil
}

func tournamentFromRow(row tournamentTableModel) tournament.Tournament {
	return tournament.Tournament{
		ID:           row.PublicID,
		SeasonID:     row.SeasonID,
		TierID:       row.TierID,
		Name:         row.Name,
		StartDate:    row.StartDate,
		EndDate:      row.EndDate,
		CurrentRound: row.CurrentRound,
		LivePlay:     row.LivePlay,
		FinalizedAt:  row.FinalizedAt,
	}
}
