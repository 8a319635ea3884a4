package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/fantasy-golf/internal/domain/standings"
	"github.com/riskibarqy/fantasy-golf/internal/domain/tourcard"
	tourcardmock "github.com/riskibarqy/fantasy-golf/internal/mocks/domain/tourcard"
	"github.com/riskibarqy/fantasy-golf/internal/platform/cache"
)

func boardSummary(rows []standings.StandingRow) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = fmt.Sprintf("%s:%s:%d:%s", row.ID, row.Rank.Display, row.Change.Change, row.Band)
	}
	return out
}

func TestStandingsService_GetSeasonStandings(t *testing.T) {
	t.Parallel()

	obs := &recordingObserver{}
	svc := NewStandingsService(seededRepositories(t), cache.NewStore(time.Minute), obs, StandingsConfig{}, testLogger())

	got, err := svc.GetSeasonStandings(context.Background(), "2026")
	if err != nil {
		t.Fatalf("GetSeasonStandings error: %v", err)
	}
	if got.LastTournament == nil || got.LastTournament.ID != "masters-2026" {
		t.Fatalf("expected masters as last finalized tournament, got %+v", got.LastTournament)
	}
	if len(got.Tours) != 2 {
		t.Fatalf("expected 2 tours, got %d", len(got.Tours))
	}

	// Everyone scored only at the masters so every past place is T1.
	wantDbyD := []string{
		"card-001:1:0:gold",
		"card-002:2:-1:gold",
		"card-003:3:-2:gold",
	}
	if diff := cmp.Diff(wantDbyD, boardSummary(got.Tours[0].Board.Rows)); diff != "" {
		t.Fatalf("unexpected dbyd board (-want +got):\n%s", diff)
	}
	wantCCG := []string{
		"card-004:T1:0:gold",
		"card-005:T1:0:gold",
		"card-006:3:-2:gold",
	}
	if diff := cmp.Diff(wantCCG, boardSummary(got.Tours[1].Board.Rows)); diff != "" {
		t.Fatalf("unexpected ccg board (-want +got):\n%s", diff)
	}
	if got.Cards["card-004"].DisplayName != "D. Park" {
		t.Fatalf("expected card lookup to carry display names")
	}
}

func TestStandingsService_MemoizesIdenticalBoards(t *testing.T) {
	t.Parallel()

	obs := &recordingObserver{}
	svc := NewStandingsService(seededRepositories(t), cache.NewStore(time.Minute), obs, StandingsConfig{}, testLogger())

	for range 3 {
		if _, err := svc.GetSeasonStandings(context.Background(), "2026"); err != nil {
			t.Fatalf("GetSeasonStandings error: %v", err)
		}
	}
	if obs.misses != 1 || obs.hits != 2 {
		t.Fatalf("expected 1 miss and 2 hits, got %d/%d", obs.misses, obs.hits)
	}
}

func TestStandingsService_GetSeasonStandings_Errors(t *testing.T) {
	t.Parallel()

	svc := NewStandingsService(seededRepositories(t), nil, nil, StandingsConfig{}, testLogger())
	if _, err := svc.GetSeasonStandings(context.Background(), " "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.GetSeasonStandings(context.Background(), "1999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStandingsService_PropagatesRepositoryFailure(t *testing.T) {
	t.Parallel()

	repos := seededRepositories(t)
	cards := tourcardmock.NewRepository(t)
	boom := errors.New("connection reset")
	cards.On("ListBySeason", mock.Anything, "2026").Return([]tourcard.TourCard(nil), boom).Once()
	repos.TourCards = cards

	svc := NewStandingsService(repos, nil, nil, StandingsConfig{}, testLogger())
	_, err := svc.GetSeasonStandings(context.Background(), "2026")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
}

func TestStandingsService_GetPlayoffStandings(t *testing.T) {
	t.Parallel()

	obs := &recordingObserver{}
	svc := NewStandingsService(seededRepositories(t), cache.NewStore(time.Minute), obs, StandingsConfig{}, testLogger())

	got, err := svc.GetPlayoffStandings(context.Background(), "2026")
	if err != nil {
		t.Fatalf("GetPlayoffStandings error: %v", err)
	}

	summary := func(rows []standings.PlayoffRow) []string {
		out := make([]string, len(rows))
		for i, row := range rows {
			out[i] = fmt.Sprintf("%s:%s:%v:%v", row.ID, row.Rank.Display, row.StartingStrokes, row.HasStrokes)
		}
		return out
	}

	// card-005 and card-006 sit in the gold band of the season standings,
	// but their stored levels put them in silver and out of the playoffs.
	wantGold := []string{
		"card-001:1:-10:true",
		"card-004:2:-8:true",
		"card-002:3:-7:true",
		"card-003:4:-6:true",
	}
	if diff := cmp.Diff(wantGold, summary(got.Brackets.Gold)); diff != "" {
		t.Fatalf("unexpected gold bracket (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"card-005:1:-10:true"}, summary(got.Brackets.Silver)); diff != "" {
		t.Fatalf("unexpected silver bracket (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"card-006:1:0:false"}, summary(got.Brackets.Bumped)); diff != "" {
		t.Fatalf("unexpected bumped bracket (-want +got):\n%s", diff)
	}
	if len(got.Cards) != 6 {
		t.Fatalf("expected all six cards indexed, got %d", len(got.Cards))
	}
	if diff := cmp.Diff([]string{"playoff"}, obs.boards); diff != "" {
		t.Fatalf("unexpected board observations (-want +got):\n%s", diff)
	}
}

func TestStandingsService_GetPlayoffStandingsUsesStoredLevel(t *testing.T) {
	t.Parallel()

	repos := seededRepositories(t)
	cards := tourcardmock.NewRepository(t)
	cards.On("ListBySeason", mock.Anything, "2026").Return([]tourcard.TourCard{
		{ID: "lead", TourID: "tour-dbyd-2026", SeasonID: "2026", Points: 900, Position: "1", Playoff: 0},
		{ID: "trail", TourID: "tour-dbyd-2026", SeasonID: "2026", Points: 10, Position: "2", Playoff: standings.PlayoffGold},
	}, nil)
	repos.TourCards = cards

	svc := NewStandingsService(repos, nil, nil, StandingsConfig{}, testLogger())
	got, err := svc.GetPlayoffStandings(context.Background(), "2026")
	if err != nil {
		t.Fatalf("GetPlayoffStandings error: %v", err)
	}
	if len(got.Brackets.Gold) != 1 || got.Brackets.Gold[0].ID != "trail" {
		t.Fatalf("expected only the card stored as gold in gold, got %+v", got.Brackets.Gold)
	}
	if len(got.Brackets.Bumped) != 1 || got.Brackets.Bumped[0].ID != "lead" {
		t.Fatalf("expected the unassigned leader to be bumped, got %+v", got.Brackets.Bumped)
	}
}
