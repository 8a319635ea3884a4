package standings

import (
	"math"
	"strconv"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
)

func TestCalculateChanges(t *testing.T) {
	t.Parallel()

	current := []ChangeInput{
		{ID: "c1", GroupID: "tour-a", Points: 100, Position: "1"},
		{ID: "c2", GroupID: "tour-a", Points: 90, Position: "2"},
		{ID: "c3", GroupID: "tour-a", Points: 80, Position: "3"},
		{ID: "d1", GroupID: "tour-b", Points: 95, Position: "1"},
	}
	lastPeriod := map[string]float64{"c1": 30, "c3": 50, "d1": 10}

	got := CalculateChanges(current, lastPeriod)
	want := []Change{
		{ID: "c1", PastPoints: 70, PastPosition: 2, PastPositionOverall: 3, CurrentPositionOverall: 1, Change: 1, ChangeOverall: 2},
		{ID: "c2", PastPoints: 90, PastPosition: 1, PastPositionOverall: 1, CurrentPositionOverall: 3, Change: -1, ChangeOverall: -2},
		{ID: "c3", PastPoints: 30, PastPosition: 3, PastPositionOverall: 4, CurrentPositionOverall: 4, Change: 0, ChangeOverall: 0},
		{ID: "d1", PastPoints: 85, PastPosition: 1, PastPositionOverall: 2, CurrentPositionOverall: 2, Change: 0, ChangeOverall: 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected changes (-want +got):\n%s", diff)
	}
}

func TestCalculateChanges_UnparseablePositionHasNoChange(t *testing.T) {
	t.Parallel()

	got := CalculateChanges([]ChangeInput{
		{ID: "x", GroupID: "g", Points: 10, Position: "CUT"},
		{ID: "y", GroupID: "g", Points: 20, Position: ""},
	}, nil)

	for _, c := range got {
		if c.Change != 0 {
			t.Fatalf("expected no change for %s, got %d", c.ID, c.Change)
		}
	}
}

func TestCalculateChanges_NonFinitePointsDegradeToZero(t *testing.T) {
	t.Parallel()

	got := CalculateChanges([]ChangeInput{
		{ID: "nan", GroupID: "g", Points: math.NaN(), Position: "2"},
		{ID: "ok", GroupID: "g", Points: 5, Position: "1"},
	}, map[string]float64{"nan": math.NaN()})

	if got[0].PastPoints != 0 {
		t.Fatalf("expected NaN past points to degrade to 0, got %v", got[0].PastPoints)
	}
	if got[0].CurrentPositionOverall != 2 || got[0].Change != 0 {
		t.Fatalf("unexpected movement for NaN row: %+v", got[0])
	}
}

func TestCalculateChanges_Idempotent(t *testing.T) {
	t.Parallel()

	current := randomChangeInputs(gofakeit.New(3), 120)
	last := map[string]float64{current[0].ID: 12, current[5].ID: 40}

	first := CalculateChanges(current, last)
	second := CalculateChanges(current, last)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("expected identical results (-first +second):\n%s", diff)
	}
}

func TestCalculateChanges_MatchesQuadraticCount(t *testing.T) {
	t.Parallel()

	faker := gofakeit.New(11)
	current := randomChangeInputs(faker, 150)
	last := make(map[string]float64)
	for _, row := range current {
		if faker.Bool() {
			last[row.ID] = float64(faker.Number(0, 40))
		}
	}

	got := CalculateChanges(current, last)
	for i, row := range current {
		past := row.Points - last[row.ID]
		wantGroup, wantAll, wantCurrent := 1, 1, 1
		for _, other := range current {
			otherPast := other.Points - last[other.ID]
			if otherPast > past {
				wantAll++
				if other.GroupID == row.GroupID {
					wantGroup++
				}
			}
			if other.Points > row.Points {
				wantCurrent++
			}
		}
		if got[i].PastPosition != wantGroup || got[i].PastPositionOverall != wantAll || got[i].CurrentPositionOverall != wantCurrent {
			t.Fatalf("row %s: got %+v, want group=%d overall=%d current=%d", row.ID, got[i], wantGroup, wantAll, wantCurrent)
		}
	}
}

func TestPlaceChange(t *testing.T) {
	t.Parallel()

	if got := PlaceChange("T8", "3"); got != 5 {
		t.Fatalf("expected +5, got %d", got)
	}
	if got := PlaceChange("", "3"); got != 0 {
		t.Fatalf("expected no change without a previous place, got %d", got)
	}
	if got := PlaceChange("2", "CUT"); got != 0 {
		t.Fatalf("expected no change for unranked current place, got %d", got)
	}
}

func randomChangeInputs(faker *gofakeit.Faker, n int) []ChangeInput {
	out := make([]ChangeInput, n)
	for i := range out {
		out[i] = ChangeInput{
			ID:       "card-" + strconv.Itoa(i),
			GroupID:  faker.RandomString([]string{"tour-a", "tour-b", "tour-c"}),
			Points:   float64(faker.Number(0, 500)),
			Position: faker.Numerify("T##"),
		}
	}
	return out
}
