package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fantasy-golf/internal/domain/tourcard"
	qb "github.com/riskibarqy/fantasy-golf/internal/platform/querybuilder"
)

type TourCardRepository struct {
	db *sqlx.DB
}

func NewTourCardRepository(db *sqlx.DB) *TourCardRepository {
	return &TourCardRepository{db: db}
}

func (r *TourCardRepository) ListBySeason(ctx context.Context, seasonID string) ([]tourcard.TourCard, error) {
	query, args, err := qb.Select("*").From("tour_cards").
		Where(qb.Eq("season_public_id", seasonID), qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list tour cards query: %w", err)
	}

	var rows []tourCardTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list tour cards: %w", err)
	}
	out := make([]tourcard.TourCard, 0, len(rows))
	for _, row := range rows {
		out = append(out, tourCardFromRow(row))
	}
	return out, nil
}

func (r *TourCardRepository) GetByMemberAndSeason(ctx context.Context, memberID, seasonID string) (tourcard.TourCard, bool, error) {
	query, args, err := qb.Select("*").From("tour_cards").
		Where(
			qb.Eq("member_public_id", memberID),
			qb.Eq("season_public_id", seasonID),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return tourcard.TourCard{}, false, fmt.Errorf("build get tour card query: %w", err)
	}

	var row tourCardTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return tourcard.TourCard{}, false, nil
		}
		return tourcard.TourCard{}, false, fmt.Errorf("get tour card: %w", err)
	}
	return tourCardFromRow(row), true, nil
}

func (r *TourCardRepository) Create(ctx context.Context, c tourcard.TourCard) error {
	insert, err := qb.InsertModel("tour_cards", tourCardInsertModel{
		PublicID:    c.ID,
		MemberID:    c.MemberID,
		TourID:      c.TourID,
		SeasonID:    c.SeasonID,
		DisplayName: c.DisplayName,
	})
	if err != nil {
		return fmt.Errorf("build create tour card query: %w", err)
	}
	query, args, err := insert.ToSQL()
	if err != nil {
		return fmt.Errorf("build create tour card query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: member %s season %s", tourcard.ErrAlreadyExists, c.MemberID, c.SeasonID)
		}
		return fmt.Errorf("create tour card: %w", err)
	}
	return nil
}

func (r *TourCardRepository) UpdateTotals(ctx context.Context, totals []tourcard.Totals) error {
	if len(totals) == 0 {
		return nil
	}
	return withTx(ctx, r.db, "update tour card totals", func(tx *sqlx.Tx) error {
		for _, t := range totals {
			query, args, err := qb.Update("tour_cards").
				Set("points", t.Points).
				Set("earnings", t.Earnings).
				Set("position", t.Position).
				Set("playoff", t.Playoff).
				Set("wins", t.Wins).
				Set("top_ten", t.TopTen).
				Set("appearances", t.Appearances).
				Set("made_cut", t.MadeCut).
				SetExpr("updated_at", "NOW()").
				Where(qb.Eq("public_id", t.TourCardID), qb.IsNull("deleted_at")).
				ToSQL()
			if err != nil {
				return fmt.Errorf("build update tour card totals query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("update tour card totals %s: %w", t.TourCardID, err)
			}
		}
		return nil
	})
}

func tourCardFromRow(row tourCardTableModel) tourcard.TourCard {
	return tourcard.TourCard{
		ID:          row.PublicID,
		MemberID:    row.MemberID,
		TourID:      row.TourID,
		SeasonID:    row.SeasonID,
		DisplayName: row.DisplayName,
		Points:      row.Points,
		Earnings:    row.Earnings,
		Position:    row.Position,
		Playoff:     row.Playoff,
		Wins:        row.Wins,
		TopTen:      row.TopTen,
		Appearances: row.Appearances,
		MadeCut:     row.MadeCut,
		CreatedAt:   row.CreatedAt,
	}
}
