package cache

import (
	"context"
	"slices"

	"github.com/riskibarqy/fantasy-golf/internal/domain/season"
	"github.com/riskibarqy/fantasy-golf/internal/domain/tier"
	"github.com/riskibarqy/fantasy-golf/internal/domain/tour"
	basecache "github.com/riskibarqy/fantasy-golf/internal/platform/cache"
)

// Seasons, tours and tiers change only through migrations or seeds, so
// their decorators never invalidate.

type SeasonRepository struct {
	next  season.Repository
	cache *basecache.Store
}

func NewSeasonRepository(next season.Repository, cache *basecache.Store) *SeasonRepository {
	return &SeasonRepository{next: next, cache: cache}
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	v, err := r.cache.GetOrLoad(ctx, "season:list", func(ctx context.Context) (any, error) {
		return r.next.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	items, _ := v.([]season.Season)
	return slices.Clone(items), nil
}

func (r *SeasonRepository) GetByID(ctx context.Context, seasonID string) (season.Season, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, "season:id:"+seasonID, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, seasonID)
		if err != nil {
			return nil, err
		}
		return cached[season.Season]{value: item, exists: exists}, nil
	})
	if err != nil {
		return season.Season{}, false, err
	}
	c, _ := v.(cached[season.Season])
	return c.value, c.exists, nil
}

type TourRepository struct {
	next  tour.Repository
	cache *basecache.Store
}

func NewTourRepository(next tour.Repository, cache *basecache.Store) *TourRepository {
	return &TourRepository{next: next, cache: cache}
}

func (r *TourRepository) ListBySeason(ctx context.Context, seasonID string) ([]tour.Tour, error) {
	v, err := r.cache.GetOrLoad(ctx, "tour:season:"+seasonID, func(ctx context.Context) (any, error) {
		return r.next.ListBySeason(ctx, seasonID)
	})
	if err != nil {
		return nil, err
	}
	items, _ := v.([]tour.Tour)
	out := make([]tour.Tour, len(items))
	for i, t := range items {
		t.PlayoffSpots = slices.Clone(t.PlayoffSpots)
		out[i] = t
	}
	return out, nil
}

func (r *TourRepository) GetByID(ctx context.Context, tourID string) (tour.Tour, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, "tour:id:"+tourID, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, tourID)
		if err != nil {
			return nil, err
		}
		return cached[tour.Tour]{value: item, exists: exists}, nil
	})
	if err != nil {
		return tour.Tour{}, false, err
	}
	c, _ := v.(cached[tour.Tour])
	c.value.PlayoffSpots = slices.Clone(c.value.PlayoffSpots)
	return c.value, c.exists, nil
}

type TierRepository struct {
	next  tier.Repository
	cache *basecache.Store
}

func NewTierRepository(next tier.Repository, cache *basecache.Store) *TierRepository {
	return &TierRepository{next: next, cache: cache}
}

func (r *TierRepository) ListBySeason(ctx context.Context, seasonID string) ([]tier.Tier, error) {
	v, err := r.cache.GetOrLoad(ctx, "tier:season:"+seasonID, func(ctx context.Context) (any, error) {
		return r.next.ListBySeason(ctx, seasonID)
	})
	if err != nil {
		return nil, err
	}
	items, _ := v.([]tier.Tier)
	out := make([]tier.Tier, len(items))
	for i, t := range items {
		out[i] = cloneTier(t)
	}
	return out, nil
}

func (r *TierRepository) GetByID(ctx context.Context, tierID string) (tier.Tier, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, "tier:id:"+tierID, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, tierID)
		if err != nil {
			return nil, err
		}
		return cached[tier.Tier]{value: item, exists: exists}, nil
	})
	if err != nil {
		return tier.Tier{}, false, err
	}
	c, _ := v.(cached[tier.Tier])
	return cloneTier(c.value), c.exists, nil
}

// cached remembers misses as well as hits.
type cached[T any] struct {
	value  T
	exists bool
}

func cloneTier(t tier.Tier) tier.Tier {
	t.Payouts = slices.Clone(t.Payouts)
	t.Points = slices.Clone(t.Points)
	return t
}
