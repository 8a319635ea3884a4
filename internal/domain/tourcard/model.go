package tourcard

import (
	"fmt"
	"time"

	"github.com/riskibarqy/fantasy-golf/internal/domain/standings"
)

// TourCard is a member's entry into one tour for one season. It carries
// the season totals standings are ranked on.
type TourCard struct {
	ID          string
	MemberID    string
	TourID      string
	SeasonID    string
	DisplayName string
	Points      float64
	Earnings    float64
	Position    string
	// Playoff is the bracket the card qualified for: 0 none, 1 gold,
	// 2 silver.
	Playoff     int
	Wins        int
	TopTen      int
	Appearances int
	MadeCut     int
	CreatedAt   time.Time
}

func (c TourCard) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("tour card id is required")
	}
	if c.MemberID == "" {
		return fmt.Errorf("tour card member id is required")
	}
	if c.TourID == "" || c.SeasonID == "" {
		return fmt.Errorf("tour card tour and season are required")
	}
	if c.Playoff < 0 || c.Playoff > standings.PlayoffSilver {
		return fmt.Errorf("tour card playoff level out of range: %d", c.Playoff)
	}
	return nil
}

// Entry adapts the card for points ranking within its tour.
func (c TourCard) Entry() standings.Entry {
	return standings.Entry{ID: c.ID, GroupID: c.TourID, Points: c.Points}
}

// Totals is the recomputed season line written after a finalize.
type Totals struct {
	TourCardID  string
	Points      float64
	Earnings    float64
	Position    string
	Playoff     int
	Wins        int
	TopTen      int
	Appearances int
	MadeCut     int
}
