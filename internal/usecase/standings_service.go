package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/fantasy-golf/internal/domain/season"
	"github.com/riskibarqy/fantasy-golf/internal/domain/standings"
	"github.com/riskibarqy/fantasy-golf/internal/domain/tour"
	"github.com/riskibarqy/fantasy-golf/internal/domain/tourcard"
	"github.com/riskibarqy/fantasy-golf/internal/domain/tournament"
	"github.com/riskibarqy/fantasy-golf/internal/platform/cache"
	"github.com/riskibarqy/fantasy-golf/internal/platform/logging"
	"github.com/riskibarqy/fantasy-golf/internal/platform/memo"
)

type StandingsConfig struct {
	Strokes standings.StrokeTables
}

type TourStandings struct {
	Tour  tour.Tour
	Board standings.GroupStandings
}

type SeasonStandings struct {
	Season season.Season
	// LastTournament is the finalized tournament changes are measured
	// against; nil before the first one.
	LastTournament *tournament.Tournament
	Tours          []TourStandings
	Cards          map[string]tourcard.TourCard
}

type PlayoffStandings struct {
	Season   season.Season
	Brackets standings.PlayoffGroups[standings.PlayoffRow]
	Cards    map[string]tourcard.TourCard
}

type StandingsService struct {
	repos    Repositories
	board    *memo.Func[standings.StandingsInput, []standings.GroupStandings]
	strokes  standings.StrokeTables
	observer EngineObserver
	logger   *logging.Logger
}

// NewStandingsService memoizes the standings board in store. Results handed
// out are shared between callers and must not be modified.
func NewStandingsService(repos Repositories, store *cache.Store, observer EngineObserver, cfg StandingsConfig, logger *logging.Logger) *StandingsService {
	if observer == nil {
		observer = noopObserver{}
	}
	if logger == nil {
		logger = logging.Default()
	}
	if len(cfg.Strokes.Gold) == 0 && len(cfg.Strokes.Silver) == 0 {
		cfg.Strokes = standings.DefaultStrokeTables
	}
	return &StandingsService{
		repos:    repos,
		board:    memo.New("standings", store, standings.BuildStandings, observer),
		strokes:  cfg.Strokes,
		observer: observer,
		logger:   logger.Named("standings"),
	}
}

func (s *StandingsService) GetSeasonStandings(ctx context.Context, seasonID string) (SeasonStandings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.GetSeasonStandings")
	defer span.End()

	snap, err := loadSeason(ctx, s.repos, seasonID)
	if err != nil {
		return SeasonStandings{}, err
	}
	return s.build(ctx, snap)
}

// GetPlayoffStandings places every card in the bracket recorded on the card
// and ranks the brackets across tours. Cards without a level are bumped.
func (s *StandingsService) GetPlayoffStandings(ctx context.Context, seasonID string) (PlayoffStandings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.GetPlayoffStandings")
	defer span.End()

	snap, err := loadSeason(ctx, s.repos, seasonID)
	if err != nil {
		return PlayoffStandings{}, err
	}
	cards := make(map[string]tourcard.TourCard, len(snap.cards))
	for _, c := range snap.cards {
		cards[c.ID] = c
	}

	started := time.Now()
	entries := make([]standings.PlayoffEntry, 0, len(snap.cards))
	for _, c := range snap.cards {
		entries = append(entries, standings.PlayoffEntry{Entry: c.Entry(), Level: c.Playoff})
	}
	brackets := standings.BuildPlayoff(entries, s.strokes)
	s.observer.ObserveBoard("playoff", len(entries), time.Since(started))

	return PlayoffStandings{Season: snap.season, Brackets: brackets, Cards: cards}, nil
}

func (s *StandingsService) build(ctx context.Context, snap seasonSnapshot) (SeasonStandings, error) {
	out := SeasonStandings{
		Season: snap.season,
		Tours:  make([]TourStandings, 0, len(snap.tours)),
		Cards:  make(map[string]tourcard.TourCard, len(snap.cards)),
	}
	for _, c := range snap.cards {
		out.Cards[c.ID] = c
	}

	input := standings.StandingsInput{
		Entries:      make([]standings.Entry, 0, len(snap.cards)),
		LastPeriod:   map[string]float64{},
		GroupCutoffs: make(map[string]standings.Cutoffs, len(snap.tours)),
	}
	for _, t := range snap.tours {
		input.GroupCutoffs[t.ID] = tourCutoffs(t)
	}
	for _, c := range snap.cards {
		input.Entries = append(input.Entries, c.Entry())
	}

	if last, ok := snap.lastFinalized(); ok {
		out.LastTournament = &last
		teams, err := s.repos.Teams.ListByTournament(ctx, last.ID)
		if err != nil {
			return SeasonStandings{}, fmt.Errorf("list teams of last tournament: %w", err)
		}
		for _, t := range teams {
			input.LastPeriod[t.TourCardID] = t.Points
		}
	}

	started := time.Now()
	groups := s.board.Call(ctx, input)
	s.observer.ObserveBoard("standings", len(input.Entries), time.Since(started))

	byTour := make(map[string]standings.GroupStandings, len(groups))
	for _, g := range groups {
		byTour[g.GroupID] = g
	}
	for _, t := range snap.tours {
		board, ok := byTour[t.ID]
		if !ok {
			board = standings.GroupStandings{GroupID: t.ID}
		}
		out.Tours = append(out.Tours, TourStandings{Tour: t, Board: board})
	}

	s.logger.DebugContext(ctx, "season standings built",
		"season_id", snap.season.ID,
		"cards", len(snap.cards),
		"tours", len(snap.tours),
	)
	return out, nil
}

// tourCutoffs turns a tour's playoff spots into band cutoffs. Tours without
// spots use the default bands.
func tourCutoffs(t tour.Tour) standings.Cutoffs {
	gold := t.GoldSpots()
	if gold <= 0 {
		return standings.DefaultCutoffs
	}
	return standings.Cutoffs{Gold: gold, Silver: gold + t.SilverSpots()}
}

func playoffLevel(band standings.Band) int {
	switch band {
	case standings.BandGold:
		return standings.PlayoffGold
	case standings.BandSilver:
		return standings.PlayoffSilver
	default:
		return 0
	}
}
