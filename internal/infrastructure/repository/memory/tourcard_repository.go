package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/fantasy-golf/internal/domain/tourcard"
)

type TourCardRepository struct {
	mu     sync.RWMutex
	items  map[string]tourcard.TourCard
	orders []string
}

func NewTourCardRepository(cards []tourcard.TourCard) *TourCardRepository {
	r := &TourCardRepository{items: make(map[string]tourcard.TourCard, len(cards))}
	for _, c := range cards {
		r.items[c.ID] = c
		r.orders = append(r.orders, c.ID)
	}
	return r
}

func (r *TourCardRepository) ListBySeason(_ context.Context, seasonID string) ([]tourcard.TourCard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]tourcard.TourCard, 0)
	for _, id := range r.orders {
		if c := r.items[id]; c.SeasonID == seasonID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *TourCardRepository) GetByMemberAndSeason(_ context.Context, memberID, seasonID string) (tourcard.TourCard, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.orders {
		if c := r.items[id]; c.MemberID == memberID && c.SeasonID == seasonID {
			return c, true, nil
		}
	}
	return tourcard.TourCard{}, false, nil
}

func (r *TourCardRepository) Create(_ context.Context, c tourcard.TourCard) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.orders {
		if existing := r.items[id]; existing.MemberID == c.MemberID && existing.SeasonID == c.SeasonID {
			return fmt.Errorf("%w: member=%s season=%s", tourcard.ErrAlreadyExists, c.MemberID, c.SeasonID)
		}
	}
	if _, exists := r.items[c.ID]; exists {
		return fmt.Errorf("%w: id=%s", tourcard.ErrAlreadyExists, c.ID)
	}
	r.items[c.ID] = c
	r.orders = append(r.orders, c.ID)
	return nil
}

func (r *TourCardRepository) UpdateTotals(_ context.Context, totals []tourcard.Totals) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range totals {
		if _, ok := r.items[t.TourCardID]; !ok {
			return fmt.Errorf("tour card not found: %s", t.TourCardID)
		}
	}
	for _, t := range totals {
		c := r.items[t.TourCardID]
		c.Points = t.Points
		c.Earnings = t.Earnings
		c.Position = t.Position
		c.Playoff = t.Playoff
		c.Wins = t.Wins
		c.TopTen = t.TopTen
		c.Appearances = t.Appearances
		c.MadeCut = t.MadeCut
		r.items[t.TourCardID] = c
	}
	return nil
}
