package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fantasy-golf/internal/domain/tier"
	qb "github.com/riskibarqy/fantasy-golf/internal/platform/querybuilder"
)

type TierRepository struct {
	db *sqlx.DB
}

func NewTierRepository(db *sqlx.DB) *TierRepository {
	return &TierRepository{db: db}
}

func (r *TierRepository) ListBySeason(ctx context.Context, seasonID string) ([]tier.Tier, error) {
	query, args, err := qb.Select("*").From("tiers").
		Where(qb.Eq("season_public_id", seasonID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list tiers query: %w", err)
	}

	var rows []tierTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list tiers: %w", err)
	}
	out := make([]tier.Tier, 0, len(rows))
	for _, row := range rows {
		out = append(out, tierFromRow(row))
	}
	return out, nil
}

func (r *TierRepository) GetByID(ctx context.Context, tierID string) (tier.Tier, bool, error) {
	query, args, err := qb.Select("*").From("tiers").Where(qb.Eq("public_id", tierID)).ToSQL()
	if err != nil {
		return tier.Tier{}, false, fmt.Errorf("build get tier query: %w", err)
	}

	var row tierTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return tier.Tier{}, false, nil
		}
		return tier.Tier{}, false, fmt.Errorf("get tier: %w", err)
	}
	return tierFromRow(row), true, nil
}

func tierFromRow(row tierTableModel) tier.Tier {
	return tier.Tier{
		ID:       row.PublicID,
		SeasonID: row.SeasonID,
		Name:     row.Name,
		Payouts:  append([]float64(nil), row.Payouts...),
		Points:   append([]float64(nil), row.Points...),
	}
}
