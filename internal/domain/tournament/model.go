package tournament

import (
	"fmt"
	"time"
)

// FinalRound is the last scheduled round of a stroke-play event.
const FinalRound = 4

type Tournament struct {
	ID           string
	SeasonID     string
	TierID       string
	Name         string
	StartDate    time.Time
	EndDate      time.Time
	CurrentRound int
	LivePlay     bool
	FinalizedAt  *time.Time
}

func (t Tournament) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("tournament id is required")
	}
	if t.SeasonID == "" {
		return fmt.Errorf("tournament season id is required")
	}
	if t.TierID == "" {
		return fmt.Errorf("tournament tier id is required")
	}
	if t.StartDate.IsZero() || t.EndDate.IsZero() {
		return fmt.Errorf("tournament dates are required")
	}
	if t.EndDate.Before(t.StartDate) {
		return fmt.Errorf("tournament end date is before start date")
	}
	return nil
}

// Started is true once the first tee time has passed; team edits lock then.
func (t Tournament) Started(now time.Time) bool {
	return !now.Before(t.StartDate)
}

// Completed is true when play is over: the end date has passed or the
// final round finished without live play.
func (t Tournament) Completed(now time.Time) bool {
	if t.LivePlay {
		return false
	}
	return now.After(t.EndDate) || t.CurrentRound > FinalRound
}

func (t Tournament) Finalized() bool {
	return t.FinalizedAt != nil
}
