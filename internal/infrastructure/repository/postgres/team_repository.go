package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/riskibarqy/fantasy-golf/internal/domain/team"
	qb "github.com/riskibarqy/fantasy-golf/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) ListByTournament(ctx context.Context, tournamentID string) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("tournament_public_id", tournamentID), qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}
	return out, nil
}

func (r *TeamRepository) GetByTourCard(ctx context.Context, tournamentID, tourCardID string) (team.Team, bool, error) {
	row, exists, err := getTeamByTourCard(ctx, r.db, tournamentID, tourCardID)
	if err != nil || !exists {
		return team.Team{}, exists, err
	}
	return teamFromRow(row), true, nil
}

// Upsert keys on (tournament, tour card). The unique index is partial so
// the existing row is looked up inside the transaction instead of relying
// on ON CONFLICT.
func (r *TeamRepository) Upsert(ctx context.Context, t team.Team) error {
	return withTx(ctx, r.db, "upsert team", func(tx *sqlx.Tx) error {
		_, exists, err := getTeamByTourCard(ctx, tx, t.TournamentID, t.TourCardID)
		if err != nil {
			return err
		}

		if exists {
			query, args, err := qb.Update("teams").
				Set("golfer_ids", pq.StringArray(t.GolferIDs)).
				Set("position", t.Position).
				Set("past_position", t.PastPosition).
				Set("score", nullableInt64(t.Score)).
				Set("today", nullableInt64(t.Today)).
				Set("thru", nullableInt64(t.Thru)).
				Set("round", nullableInt64(t.Round)).
				SetExpr("updated_at", "NOW()").
				Where(
					qb.Eq("tournament_public_id", t.TournamentID),
					qb.Eq("tour_card_public_id", t.TourCardID),
					qb.IsNull("deleted_at"),
				).
				ToSQL()
			if err != nil {
				return fmt.Errorf("build update team query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("update team: %w", err)
			}
			return nil
		}

		insert, err := qb.InsertModel("teams", teamUpsertModel{
			PublicID:     t.ID,
			TournamentID: t.TournamentID,
			TourCardID:   t.TourCardID,
			GolferIDs:    pq.StringArray(t.GolferIDs),
			Position:     t.Position,
			PastPosition: t.PastPosition,
			Score:        nullableInt64(t.Score),
			Today:        nullableInt64(t.Today),
			Thru:         nullableInt64(t.Thru),
			Round:        nullableInt64(t.Round),
		})
		if err != nil {
			return fmt.Errorf("build insert team query: %w", err)
		}
		query, args, err := insert.ToSQL()
		if err != nil {
			return fmt.Errorf("build insert team query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert team: %w", err)
		}
		return nil
	})
}

// UpdateResults writes every result or none of them.
func (r *TeamRepository) UpdateResults(ctx context.Context, tournamentID string, results []team.Result) error {
	if len(results) == 0 {
		return nil
	}
	return withTx(ctx, r.db, "update team results", func(tx *sqlx.Tx) error {
		for _, res := range results {
			query, args, err := qb.Update("teams").
				Set("position", res.Position).
				Set("points", res.Points).
				Set("earnings", res.Earnings).
				SetExpr("updated_at", "NOW()").
				Where(
					qb.Eq("public_id", res.TeamID),
					qb.Eq("tournament_public_id", tournamentID),
					qb.IsNull("deleted_at"),
				).
				ToSQL()
			if err != nil {
				return fmt.Errorf("build update team result query: %w", err)
			}

			out, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return fmt.Errorf("update team result %s: %w", res.TeamID, err)
			}
			if n, err := out.RowsAffected(); err == nil && n == 0 {
				return fmt.Errorf("team %s not found in tournament %s", res.TeamID, tournamentID)
			}
		}
		return nil
	})
}

func getTeamByTourCard(ctx context.Context, q sqlx.QueryerContext, tournamentID, tourCardID string) (teamTableModel, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(
			qb.Eq("tournament_public_id", tournamentID),
			qb.Eq("tour_card_public_id", tourCardID),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return teamTableModel{}, false, fmt.Errorf("build get team query: %w", err)
	}

	var row teamTableModel
	if err := sqlx.GetContext(ctx, q, &row, query, args...); err != nil {
		if isNotFound(err) {
			return teamTableModel{}, false, nil
		}
		return teamTableModel{}, false, fmt.Errorf("get team: %w", err)
	}
	return row, true, nil
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:           row.PublicID,
		TournamentID: row.TournamentID,
		TourCardID:   row.TourCardID,
		GolferIDs:    append([]string(nil), row.GolferIDs...),
		Position:     row.Position,
		PastPosition: row.PastPosition,
		Score:        nullableInt(row.Score),
		Today:        nullableInt(row.Today),
		Thru:         nullableInt(row.Thru),
		Round:        nullableInt(row.Round),
		Points:       row.Points,
		Earnings:     row.Earnings,
		UpdatedAt:    row.UpdatedAt,
	}
}
