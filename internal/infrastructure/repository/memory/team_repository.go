package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/riskibarqy/fantasy-golf/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	items map[string]team.Team
	// orders keeps insertion order per tournament.
	orders map[string][]string
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	r := &TeamRepository{
		items:  make(map[string]team.Team, len(teams)),
		orders: make(map[string][]string),
	}
	for _, t := range teams {
		r.put(t)
	}
	return r
}

func (r *TeamRepository) ListByTournament(_ context.Context, tournamentID string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.orders[tournamentID]
	out := make([]team.Team, 0, len(ids))
	for _, id := range ids {
		out = append(out, cloneTeam(r.items[id]))
	}
	return out, nil
}

func (r *TeamRepository) GetByTourCard(_ context.Context, tournamentID, tourCardID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.orders[tournamentID] {
		if t := r.items[id]; t.TourCardID == tourCardID {
			return cloneTeam(t), true, nil
		}
	}
	return team.Team{}, false, nil
}

func (r *TeamRepository) Upsert(_ context.Context, t team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.put(t)
	return nil
}

func (r *TeamRepository) UpdateResults(_ context.Context, tournamentID string, results []team.Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, res := range results {
		t, ok := r.items[res.TeamID]
		if !ok || t.TournamentID != tournamentID {
			return fmt.Errorf("team %s not found in tournament %s", res.TeamID, tournamentID)
		}
	}
	for _, res := range results {
		t := r.items[res.TeamID]
		t.Position = res.Position
		t.Points = res.Points
		t.Earnings = res.Earnings
		r.items[res.TeamID] = t
	}
	return nil
}

// put must be called with the write lock held.
func (r *TeamRepository) put(t team.Team) {
	if _, exists := r.items[t.ID]; !exists {
		r.orders[t.TournamentID] = append(r.orders[t.TournamentID], t.ID)
	}
	r.items[t.ID] = cloneTeam(t)
}

func cloneTeam(t team.Team) team.Team {
	t.GolferIDs = slices.Clone(t.GolferIDs)
	return t
}
