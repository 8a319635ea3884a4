package golfer

import (
	"fmt"

	"github.com/riskibarqy/fantasy-golf/internal/domain/standings"
)

// Groups are the draft buckets a field is split into, 1 being the
// strongest.
const (
	MinGroup = 1
	MaxGroup = 5
)

// Golfer is one player's live line inside a single tournament field.
type Golfer struct {
	ID           string
	APIID        int
	TournamentID string
	Name         string
	Country      string
	Position     string
	PosChange    int
	Score        *int
	Today        *int
	Thru         *int
	Round        *int
	Group        int
	WorldRank    *int
	RoundScores  []int
}

func (g Golfer) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("golfer id is required")
	}
	if g.TournamentID == "" {
		return fmt.Errorf("golfer tournament id is required")
	}
	if g.Group < 0 || g.Group > MaxGroup {
		return fmt.Errorf("golfer group out of range: %d", g.Group)
	}
	return nil
}

// Competitor adapts the golfer for the ranking engine.
func (g Golfer) Competitor() standings.Competitor {
	return standings.Competitor{
		ID:       g.ID,
		GroupID:  g.TournamentID,
		Position: g.Position,
		Score:    g.Score,
		Today:    g.Today,
		Thru:     g.Thru,
		Round:    g.Round,
		Group:    g.Group,
	}
}
