package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/riskibarqy/fantasy-golf/internal/infrastructure/repository/memory"
	qb "github.com/riskibarqy/fantasy-golf/internal/platform/querybuilder"
)

// SeedResult counts the rows a seed run inserted; rows that already
// existed by public id are skipped.
type SeedResult struct {
	Inserted int
	Skipped  int
}

// Seed loads a dataset into an empty or partially seeded database in one
// transaction. Existing rows are left untouched.
func Seed(ctx context.Context, db *sqlx.DB, ds memory.Dataset) (SeedResult, error) {
	if err := ds.Validate(); err != nil {
		return SeedResult{}, fmt.Errorf("validate dataset: %w", err)
	}

	var inserts []*qb.InsertBuilder
	for _, s := range ds.Seasons {
		inserts = append(inserts, qb.InsertInto("seasons").
			Columns("public_id", "year", "number").
			Values(s.ID, s.Year, s.Number))
	}
	for _, t := range ds.Tiers {
		inserts = append(inserts, qb.InsertInto("tiers").
			Columns("public_id", "season_public_id", "name", "payouts", "points").
			Values(t.ID, t.SeasonID, t.Name, pq.Float64Array(t.Payouts), pq.Float64Array(t.Points)))
	}
	for _, t := range ds.Tours {
		inserts = append(inserts, qb.InsertInto("tours").
			Columns("public_id", "season_public_id", "name", "short_form", "logo_url", "buy_in", "playoff_spots").
			Values(t.ID, t.SeasonID, t.Name, t.ShortForm, t.LogoURL, t.BuyIn, arrayFromInts(t.PlayoffSpots)))
	}
	for _, t := range ds.Tournaments {
		inserts = append(inserts, qb.InsertInto("tournaments").
			Columns("public_id", "season_public_id", "tier_public_id", "name", "start_date", "end_date", "current_round", "live_play", "finalized_at").
			Values(t.ID, t.SeasonID, t.TierID, t.Name, t.StartDate, t.EndDate, t.CurrentRound, t.LivePlay, t.FinalizedAt))
	}
	for _, m := range ds.Members {
		b, err := qb.InsertModel("members", memberInsertModel{
			PublicID:  m.ID,
			Email:     m.Email,
			FirstName: m.FirstName,
			LastName:  m.LastName,
			Role:      string(m.Role),
			Account:   m.Account,
		})
		if err != nil {
			return SeedResult{}, fmt.Errorf("build seed member %s: %w", m.ID, err)
		}
		inserts = append(inserts, b)
	}
	for _, c := range ds.TourCards {
		inserts = append(inserts, qb.InsertInto("tour_cards").
			Columns("public_id", "member_public_id", "tour_public_id", "season_public_id", "display_name",
				"points", "earnings", "position", "playoff", "wins", "top_ten", "appearances", "made_cut").
			Values(c.ID, c.MemberID, c.TourID, c.SeasonID, c.DisplayName,
				c.Points, c.Earnings, c.Position, c.Playoff, c.Wins, c.TopTen, c.Appearances, c.MadeCut))
	}
	for _, g := range ds.Golfers {
		inserts = append(inserts, qb.InsertInto("golfers").
			Columns("public_id", "api_id", "tournament_public_id", "name", "country", "position", "pos_change",
				"score", "today", "thru", "round", "draft_group", "world_rank", "round_scores").
			Values(g.ID, g.APIID, g.TournamentID, g.Name, g.Country, g.Position, g.PosChange,
				nullableInt64(g.Score), nullableInt64(g.Today), nullableInt64(g.Thru), nullableInt64(g.Round),
				g.Group, nullableInt64(g.WorldRank), arrayFromInts(g.RoundScores)))
	}
	for _, t := range ds.Teams {
		inserts = append(inserts, qb.InsertInto("teams").
			Columns("public_id", "tournament_public_id", "tour_card_public_id", "golfer_ids", "position", "past_position",
				"score", "today", "thru", "round", "points", "earnings").
			Values(t.ID, t.TournamentID, t.TourCardID, pq.StringArray(t.GolferIDs), t.Position, t.PastPosition,
				nullableInt64(t.Score), nullableInt64(t.Today), nullableInt64(t.Thru), nullableInt64(t.Round),
				t.Points, t.Earnings))
	}

	var result SeedResult
	err := withTx(ctx, db, "seed", func(tx *sqlx.Tx) error {
		for _, b := range inserts {
			query, args, err := b.OnConflict("public_id").DoNothing().ToSQL()
			if err != nil {
				return fmt.Errorf("build seed query: %w", err)
			}
			res, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			if n, err := res.RowsAffected(); err == nil && n > 0 {
				result.Inserted++
			} else {
				result.Skipped++
			}
		}
		return nil
	})
	if err != nil {
		return SeedResult{}, err
	}
	return result, nil
}
