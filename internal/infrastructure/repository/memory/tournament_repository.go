package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/riskibarqy/fantasy-golf/internal/domain/tournament"
)

type TournamentRepository struct {
	mu     sync.RWMutex
	items  map[string]tournament.Tournament
	orders []string
}

func NewTournamentRepository(tournaments []tournament.Tournament) *TournamentRepository {
	r := &TournamentRepository{items: make(map[string]tournament.Tournament, len(tournaments))}
	for _, t := range tournaments {
		r.items[t.ID] = cloneTournament(t)
		r.orders = append(r.orders, t.ID)
	}
	return r
}

func (r *TournamentRepository) ListBySeason(_ context.Context, seasonID string) ([]tournament.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]tournament.Tournament, 0)
	for _, id := range r.orders {
		if t := r.items[id]; t.SeasonID == seasonID {
			out = append(out, cloneTournament(t))
		}
	}
	return out, nil
}

func (r *TournamentRepository) GetByID(_ context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[tournamentID]
	if !ok {
		return tournament.Tournament{}, false, nil
	}
	return cloneTournament(t), true, nil
}

func (r *TournamentRepository) MarkFinalized(_ context.Context, tournamentID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.items[tournamentID]
	if !ok {
		return fmt.Errorf("tournament not found: %s", tournamentID)
	}
	at = at.UTC()
	t.FinalizedAt = &at
	t.LivePlay = false
	r.items[tournamentID] = t
	return nil
}

func cloneTournament(t tournament.Tournament) tournament.Tournament {
	if t.FinalizedAt != nil {
		at := *t.FinalizedAt
		t.FinalizedAt = &at
	}
	return t
}
