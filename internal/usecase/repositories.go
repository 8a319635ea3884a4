package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/fantasy-golf/internal/domain/golfer"
	"github.com/riskibarqy/fantasy-golf/internal/domain/member"
	"github.com/riskibarqy/fantasy-golf/internal/domain/season"
	"github.com/riskibarqy/fantasy-golf/internal/domain/team"
	"github.com/riskibarqy/fantasy-golf/internal/domain/tier"
	"github.com/riskibarqy/fantasy-golf/internal/domain/tour"
	"github.com/riskibarqy/fantasy-golf/internal/domain/tourcard"
	"github.com/riskibarqy/fantasy-golf/internal/domain/tournament"
)

// Repositories is the storage a league deployment is built from. The
// memory and postgres backends both fill every field.
type Repositories struct {
	Seasons     season.Repository
	Tiers       tier.Repository
	Tours       tour.Repository
	Tournaments tournament.Repository
	Members     member.Repository
	TourCards   tourcard.Repository
	Golfers     golfer.Repository
	Teams       team.Repository
}

type seasonSnapshot struct {
	season      season.Season
	tours       []tour.Tour
	tiers       []tier.Tier
	tournaments []tournament.Tournament
	cards       []tourcard.TourCard
}

// loadSeason reads a season and its tours, tiers, tournaments and tour
// cards. The four lists are fetched concurrently and every fetch runs to
// completion before errors are reported.
func loadSeason(ctx context.Context, repos Repositories, seasonID string) (seasonSnapshot, error) {
	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return seasonSnapshot{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	s, exists, err := repos.Seasons.GetByID(ctx, seasonID)
	if err != nil {
		return seasonSnapshot{}, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return seasonSnapshot{}, fmt.Errorf("%w: season=%s", ErrNotFound, seasonID)
	}

	snap := seasonSnapshot{season: s}
	p := pool.New().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		items, err := repos.Tours.ListBySeason(ctx, seasonID)
		if err != nil {
			return fmt.Errorf("list tours: %w", err)
		}
		snap.tours = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := repos.Tiers.ListBySeason(ctx, seasonID)
		if err != nil {
			return fmt.Errorf("list tiers: %w", err)
		}
		snap.tiers = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := repos.Tournaments.ListBySeason(ctx, seasonID)
		if err != nil {
			return fmt.Errorf("list tournaments: %w", err)
		}
		snap.tournaments = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := repos.TourCards.ListBySeason(ctx, seasonID)
		if err != nil {
			return fmt.Errorf("list tour cards: %w", err)
		}
		snap.cards = items
		return nil
	})
	if err := p.Wait(); err != nil {
		return seasonSnapshot{}, err
	}
	return snap, nil
}

// lastFinalized is the finalized tournament with the latest end date.
func (s seasonSnapshot) lastFinalized() (tournament.Tournament, bool) {
	var (
		last  tournament.Tournament
		found bool
	)
	for _, t := range s.tournaments {
		if !t.Finalized() {
			continue
		}
		if !found || t.EndDate.After(last.EndDate) {
			last, found = t, true
		}
	}
	return last, found
}

func (s seasonSnapshot) tier(tierID string) (tier.Tier, bool) {
	for _, t := range s.tiers {
		if t.ID == tierID {
			return t, true
		}
	}
	return tier.Tier{}, false
}

func (s seasonSnapshot) cardTours() map[string]string {
	out := make(map[string]string, len(s.cards))
	for _, c := range s.cards {
		out[c.ID] = c.TourID
	}
	return out
}
