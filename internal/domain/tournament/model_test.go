package tournament

import (
	"testing"
	"time"
)

func TestTournament_Lifecycle(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 4, 9, 12, 0, 0, 0, time.UTC)
	tr := Tournament{ID: "masters", SeasonID: "2026", TierID: "major", StartDate: start, EndDate: start.Add(96 * time.Hour), CurrentRound: 1}
	if err := tr.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	tests := []struct {
		name          string
		now           time.Time
		live          bool
		round         int
		wantStarted   bool
		wantCompleted bool
	}{
		{name: "before start", now: start.Add(-time.Hour), round: 1},
		{name: "during play", now: start.Add(30 * time.Hour), live: true, round: 2, wantStarted: true},
		{name: "final round done early", now: start.Add(80 * time.Hour), round: 5, wantStarted: true, wantCompleted: true},
		{name: "past end date", now: start.Add(100 * time.Hour), round: 4, wantStarted: true, wantCompleted: true},
		{name: "live past end date", now: start.Add(100 * time.Hour), live: true, round: 4, wantStarted: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cur := tr
			cur.LivePlay = tc.live
			cur.CurrentRound = tc.round
			if got := cur.Started(tc.now); got != tc.wantStarted {
				t.Fatalf("Started = %t, want %t", got, tc.wantStarted)
			}
			if got := cur.Completed(tc.now); got != tc.wantCompleted {
				t.Fatalf("Completed = %t, want %t", got, tc.wantCompleted)
			}
		})
	}
}

func TestTournament_ValidateRejectsInvertedDates(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 4, 9, 0, 0, 0, 0, time.UTC)
	tr := Tournament{ID: "x", SeasonID: "s", TierID: "t", StartDate: start, EndDate: start.Add(-time.Hour)}
	if err := tr.Validate(); err == nil {
		t.Fatalf("expected inverted dates to fail validation")
	}
}
