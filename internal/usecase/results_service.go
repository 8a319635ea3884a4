package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/fantasy-golf/internal/domain/standings"
	"github.com/riskibarqy/fantasy-golf/internal/domain/team"
	"github.com/riskibarqy/fantasy-golf/internal/domain/tier"
	"github.com/riskibarqy/fantasy-golf/internal/domain/tourcard"
	"github.com/riskibarqy/fantasy-golf/internal/platform/logging"
)

const (
	finalizeOutcomeOK      = "ok"
	finalizeOutcomeError   = "error"
	finalizeOutcomeSkipped = "skipped"

	defaultResultsWorkers = 4
	topTenPosition        = 10
)

type ResultsConfig struct {
	Workers int
}

type FinalizeResult struct {
	TournamentID string    `json:"tournament_id"`
	Teams        int       `json:"teams"`
	Cards        int       `json:"cards"`
	FinalizedAt  time.Time `json:"finalized_at"`
}

// ResultsService writes final tournament results and season totals. Runs
// are serialized so two finalizations never interleave their totals.
type ResultsService struct {
	repos    Repositories
	cfg      ResultsConfig
	observer ResultsObserver
	logger   *logging.Logger
	now      func() time.Time
	mu       sync.Mutex
}

func NewResultsService(repos Repositories, cfg ResultsConfig, observer ResultsObserver, logger *logging.Logger) *ResultsService {
	if cfg.Workers <= 0 {
		cfg.Workers = defaultResultsWorkers
	}
	if observer == nil {
		observer = noopObserver{}
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ResultsService{
		repos:    repos,
		cfg:      cfg,
		observer: observer,
		logger:   logger.Named("results"),
		now:      time.Now,
	}
}

// FinalizeTournament writes every team's final place, points and earnings,
// recomputes the season totals of all tour cards and marks the tournament
// finalized. A failed run leaves the tournament unfinalized and can be
// retried.
func (s *ResultsService) FinalizeTournament(ctx context.Context, tournamentID string) (FinalizeResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultsService.FinalizeTournament")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.finalize(ctx, tournamentID, s.now().UTC())
	if err != nil {
		s.observer.ObserveFinalize(finalizeOutcomeError)
		return FinalizeResult{}, err
	}
	s.observer.ObserveFinalize(finalizeOutcomeOK)
	return result, nil
}

// FinalizeDue finalizes every completed, unfinalized tournament of every
// season. One failing tournament does not stop the others; the first error
// is returned after all were attempted.
func (s *ResultsService) FinalizeDue(ctx context.Context, now time.Time) ([]FinalizeResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultsService.FinalizeDue")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	seasons, err := s.repos.Seasons.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	var (
		out      []FinalizeResult
		firstErr error
	)
	for _, se := range seasons {
		tournaments, err := s.repos.Tournaments.ListBySeason(ctx, se.ID)
		if err != nil {
			return out, fmt.Errorf("list tournaments: %w", err)
		}
		for _, t := range tournaments {
			if t.Finalized() || !t.Completed(now) {
				continue
			}
			result, err := s.finalize(ctx, t.ID, now.UTC())
			if err != nil {
				s.observer.ObserveFinalize(finalizeOutcomeError)
				s.logger.ErrorContext(ctx, "finalize due tournament failed", "tournament_id", t.ID, "error", err)
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			s.observer.ObserveFinalize(finalizeOutcomeOK)
			out = append(out, result)
		}
	}
	if len(out) == 0 && firstErr == nil {
		s.observer.ObserveFinalize(finalizeOutcomeSkipped)
	}
	return out, firstErr
}

func (s *ResultsService) finalize(ctx context.Context, tournamentID string, now time.Time) (FinalizeResult, error) {
	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return FinalizeResult{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	t, exists, err := s.repos.Tournaments.GetByID(ctx, tournamentID)
	if err != nil {
		return FinalizeResult{}, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return FinalizeResult{}, fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}
	if t.Finalized() {
		return FinalizeResult{}, fmt.Errorf("%w: tournament %s is already finalized", ErrConflict, t.ID)
	}
	if !t.Completed(now) {
		return FinalizeResult{}, fmt.Errorf("%w: tournament %s is still in play", ErrConflict, t.ID)
	}

	snap, err := loadSeason(ctx, s.repos, t.SeasonID)
	if err != nil {
		return FinalizeResult{}, err
	}
	tr, ok := snap.tier(t.TierID)
	if !ok {
		return FinalizeResult{}, fmt.Errorf("%w: tier=%s", ErrNotFound, t.TierID)
	}

	teams, err := s.repos.Teams.ListByTournament(ctx, t.ID)
	if err != nil {
		return FinalizeResult{}, fmt.Errorf("list teams: %w", err)
	}

	results, err := s.scoreTours(ctx, snap, tr, teams)
	if err != nil {
		return FinalizeResult{}, err
	}
	if err := s.repos.Teams.UpdateResults(ctx, t.ID, results); err != nil {
		return FinalizeResult{}, fmt.Errorf("update team results: %w", err)
	}

	totals, err := s.seasonTotals(ctx, snap, t.ID)
	if err != nil {
		return FinalizeResult{}, err
	}
	if err := s.repos.TourCards.UpdateTotals(ctx, totals); err != nil {
		return FinalizeResult{}, fmt.Errorf("update tour card totals: %w", err)
	}

	if err := s.repos.Tournaments.MarkFinalized(ctx, t.ID, now); err != nil {
		return FinalizeResult{}, fmt.Errorf("mark tournament finalized: %w", err)
	}

	s.logger.InfoContext(ctx, "tournament finalized",
		"tournament_id", t.ID,
		"teams", len(results),
		"cards", len(totals),
	)
	return FinalizeResult{TournamentID: t.ID, Teams: len(results), Cards: len(totals), FinalizedAt: now}, nil
}

// scoreTours ranks each tour's teams on the worker pool and prices every
// place from the tier tables.
func (s *ResultsService) scoreTours(ctx context.Context, snap seasonSnapshot, tr tier.Tier, teams []team.Team) ([]team.Result, error) {
	cardTour := snap.cardTours()
	byTour := make(map[string][]standings.Competitor, len(snap.tours))
	for _, tm := range teams {
		tourID, ok := cardTour[tm.TourCardID]
		if !ok {
			s.logger.WarnContext(ctx, "team without season tour card skipped", "team_id", tm.ID, "tour_card_id", tm.TourCardID)
			continue
		}
		byTour[tourID] = append(byTour[tourID], tm.Competitor(tourID))
	}

	pool, err := ants.NewPool(s.cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	perTour := make([][]team.Result, len(snap.tours))
	var workers sync.WaitGroup
	for i, tu := range snap.tours {
		competitors := byTour[tu.ID]
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			perTour[i] = priceTour(competitors, tr)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit tour %s to worker pool: %w", tu.ID, err)
		}
		s.observer.SetPoolWaiting(pool.Waiting())
	}
	workers.Wait()
	s.observer.SetPoolWaiting(0)

	out := make([]team.Result, 0, len(teams))
	for _, rows := range perTour {
		out = append(out, rows...)
	}
	return out, nil
}

func priceTour(competitors []standings.Competitor, tr tier.Tier) []team.Result {
	rows := standings.BuildLeaderboard(standings.LeaderboardInput{
		Competitors: competitors,
		Payouts:     tr.Payouts,
		Points:      tr.Points,
	})
	out := make([]team.Result, len(rows))
	for i, row := range rows {
		out[i] = team.Result{
			TeamID:   row.ID,
			Position: row.Rank.Display,
			Points:   row.Points,
			Earnings: row.Earnings,
		}
	}
	return out
}

type cardTotals struct {
	tourcard.Totals
	order int
}

// seasonTotals sums every finalized tournament of the season, counting
// current as finalized, into per-card totals ranked within each tour.
func (s *ResultsService) seasonTotals(ctx context.Context, snap seasonSnapshot, current string) ([]tourcard.Totals, error) {
	byCard := make(map[string]*cardTotals, len(snap.cards))
	for i, c := range snap.cards {
		byCard[c.ID] = &cardTotals{Totals: tourcard.Totals{TourCardID: c.ID}, order: i}
	}

	for _, t := range snap.tournaments {
		if !t.Finalized() && t.ID != current {
			continue
		}
		teams, err := s.repos.Teams.ListByTournament(ctx, t.ID)
		if err != nil {
			return nil, fmt.Errorf("list teams of %s: %w", t.ID, err)
		}
		for _, tm := range teams {
			acc, ok := byCard[tm.TourCardID]
			if !ok {
				continue
			}
			addTeamResult(&acc.Totals, tm)
		}
	}

	entries := make([]standings.Entry, len(snap.cards))
	for i, c := range snap.cards {
		entries[i] = standings.Entry{ID: c.ID, GroupID: c.TourID, Points: byCard[c.ID].Points}
	}
	cutoffs := make(map[string]standings.Cutoffs, len(snap.tours))
	for _, tu := range snap.tours {
		cutoffs[tu.ID] = tourCutoffs(tu)
	}

	out := make([]tourcard.Totals, len(snap.cards))
	for _, group := range standings.BuildStandings(standings.StandingsInput{Entries: entries, GroupCutoffs: cutoffs}) {
		for _, row := range group.Rows {
			acc := byCard[row.ID]
			acc.Position = row.Rank.Display
			acc.Playoff = playoffLevel(row.Band)
			out[acc.order] = acc.Totals
		}
	}
	return out, nil
}

func addTeamResult(t *tourcard.Totals, tm team.Team) {
	t.Appearances++
	t.Points = standings.Round1(t.Points + tm.Points)
	t.Earnings = standings.Round1(t.Earnings + tm.Earnings)

	if !standings.StatusOf(tm.Position).Active() {
		return
	}
	place := standings.ParsePosition(tm.Position)
	if place == standings.Unranked {
		return
	}
	t.MadeCut++
	if place == 1 {
		t.Wins++
	}
	if place <= topTenPosition {
		t.TopTen++
	}
}
