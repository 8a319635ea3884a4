package team

import (
	"fmt"
	"time"

	"github.com/riskibarqy/fantasy-golf/internal/domain/standings"
)

// Team is one tour card's roster for one tournament, with the live line
// aggregated from its golfers.
type Team struct {
	ID           string
	TournamentID string
	TourCardID   string
	GolferIDs    []string
	Position     string
	PastPosition string
	Score        *int
	Today        *int
	Thru         *int
	Round        *int
	Points       float64
	Earnings     float64
	UpdatedAt    time.Time
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.TournamentID == "" {
		return fmt.Errorf("team tournament id is required")
	}
	if t.TourCardID == "" {
		return fmt.Errorf("team tour card id is required")
	}
	return nil
}

// Competitor adapts the team for the ranking engine. tourID groups teams
// into one leaderboard per tour.
func (t Team) Competitor(tourID string) standings.Competitor {
	return standings.Competitor{
		ID:       t.ID,
		GroupID:  tourID,
		Position: t.Position,
		Previous: t.PastPosition,
		Score:    t.Score,
		Today:    t.Today,
		Thru:     t.Thru,
		Round:    t.Round,
	}
}

// Result is the final line written when a tournament is finalized.
type Result struct {
	TeamID   string
	Position string
	Points   float64
	Earnings float64
}
