package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/riskibarqy/fantasy-golf/internal/domain/tier"
)

type TierRepository struct {
	mu     sync.RWMutex
	items  map[string]tier.Tier
	orders []string
}

func NewTierRepository(tiers []tier.Tier) *TierRepository {
	r := &TierRepository{items: make(map[string]tier.Tier, len(tiers))}
	for _, t := range tiers {
		r.items[t.ID] = cloneTier(t)
		r.orders = append(r.orders, t.ID)
	}
	return r
}

func (r *TierRepository) ListBySeason(_ context.Context, seasonID string) ([]tier.Tier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]tier.Tier, 0)
	for _, id := range r.orders {
		if t := r.items[id]; t.SeasonID == seasonID {
			out = append(out, cloneTier(t))
		}
	}
	return out, nil
}

func (r *TierRepository) GetByID(_ context.Context, tierID string) (tier.Tier, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[tierID]
	if !ok {
		return tier.Tier{}, false, nil
	}
	return cloneTier(t), true, nil
}

func cloneTier(t tier.Tier) tier.Tier {
	t.Payouts = slices.Clone(t.Payouts)
	t.Points = slices.Clone(t.Points)
	return t
}
