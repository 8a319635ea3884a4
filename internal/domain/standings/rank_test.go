package standings

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRankByPoints_TiesShareRank(t *testing.T) {
	t.Parallel()

	got := RankByPoints([]Entry{
		{ID: "C", Points: 30},
		{ID: "A", Points: 50},
		{ID: "B", Points: 50},
	})

	want := []RankedEntry{
		{Entry: Entry{ID: "A", Points: 50}, Rank: Rank{Position: 1, Ties: 2, Display: "T1"}},
		{Entry: Entry{ID: "B", Points: 50}, Rank: Rank{Position: 1, Ties: 2, Display: "T1"}},
		{Entry: Entry{ID: "C", Points: 30}, Rank: Rank{Position: 3, Ties: 1, Display: "3"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected ranking (-want +got):\n%s", diff)
	}
}

func TestAssignRanks_Empty(t *testing.T) {
	t.Parallel()

	if got := AssignRanks(0, func(int, int) bool { return true }); len(got) != 0 {
		t.Fatalf("expected no ranks, got %d", len(got))
	}
}

func TestAssignRanks_NextDistinctValueSkipsTiedPlaces(t *testing.T) {
	t.Parallel()

	values := []int{10, 10, 10, 8, 7, 7, 1}
	ranks := AssignRanks(len(values), func(i, j int) bool { return values[i] == values[j] })

	got := make([]string, len(ranks))
	for i, r := range ranks {
		got[i] = r.Display
	}
	want := []string{"T1", "T1", "T1", "4", "T5", "T5", "7"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected displays (-want +got):\n%s", diff)
	}
}

func TestRankByScore_PenalisedDisplayStatus(t *testing.T) {
	t.Parallel()

	got := RankByScore([]Competitor{
		{ID: "cut", Position: "CUT", Score: intPtr(3)},
		{ID: "a", Score: intPtr(-4)},
		{ID: "b", Score: intPtr(-4)},
		{ID: "c", Score: intPtr(-1)},
	})

	displays := make([]string, len(got))
	for i, r := range got {
		displays[i] = r.ID + ":" + r.Rank.Display
	}
	want := []string{"a:T1", "b:T1", "c:3", "cut:CUT"}
	if diff := cmp.Diff(want, displays); diff != "" {
		t.Fatalf("unexpected ranks (-want +got):\n%s", diff)
	}
}
