package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/riskibarqy/fantasy-golf/internal/domain/tour"
)

type TourRepository struct {
	mu     sync.RWMutex
	items  map[string]tour.Tour
	orders []string
}

func NewTourRepository(tours []tour.Tour) *TourRepository {
	r := &TourRepository{items: make(map[string]tour.Tour, len(tours))}
	for _, t := range tours {
		r.items[t.ID] = cloneTour(t)
		r.orders = append(r.orders, t.ID)
	}
	return r
}

func (r *TourRepository) ListBySeason(_ context.Context, seasonID string) ([]tour.Tour, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]tour.Tour, 0)
	for _, id := range r.orders {
		if t := r.items[id]; t.SeasonID == seasonID {
			out = append(out, cloneTour(t))
		}
	}
	return out, nil
}

func (r *TourRepository) GetByID(_ context.Context, tourID string) (tour.Tour, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[tourID]
	if !ok {
		return tour.Tour{}, false, nil
	}
	return cloneTour(t), true, nil
}

func cloneTour(t tour.Tour) tour.Tour {
	t.PlayoffSpots = slices.Clone(t.PlayoffSpots)
	return t
}
