package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/riskibarqy/fantasy-golf/internal/domain/golfer"
)

type GolferRepository struct {
	mu           sync.RWMutex
	byTournament map[string][]golfer.Golfer
}

func NewGolferRepository(golfers []golfer.Golfer) *GolferRepository {
	r := &GolferRepository{byTournament: make(map[string][]golfer.Golfer)}
	for _, g := range golfers {
		r.byTournament[g.TournamentID] = append(r.byTournament[g.TournamentID], g)
	}
	return r
}

func (r *GolferRepository) ListByTournament(_ context.Context, tournamentID string) ([]golfer.Golfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.byTournament[tournamentID]
	out := make([]golfer.Golfer, len(items))
	for i, g := range items {
		g.RoundScores = slices.Clone(g.RoundScores)
		out[i] = g
	}
	return out, nil
}
