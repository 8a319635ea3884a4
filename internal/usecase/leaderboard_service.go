package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/fantasy-golf/internal/domain/golfer"
	"github.com/riskibarqy/fantasy-golf/internal/domain/standings"
	"github.com/riskibarqy/fantasy-golf/internal/domain/team"
	"github.com/riskibarqy/fantasy-golf/internal/domain/tier"
	"github.com/riskibarqy/fantasy-golf/internal/domain/tour"
	"github.com/riskibarqy/fantasy-golf/internal/domain/tourcard"
	"github.com/riskibarqy/fantasy-golf/internal/domain/tournament"
	"github.com/riskibarqy/fantasy-golf/internal/platform/cache"
	"github.com/riskibarqy/fantasy-golf/internal/platform/logging"
	"github.com/riskibarqy/fantasy-golf/internal/platform/memo"
)

type TourLeaderboard struct {
	Tour tour.Tour
	Rows []standings.LeaderboardRow
}

type Leaderboard struct {
	Tournament tournament.Tournament
	Tier       tier.Tier
	Tours      []TourLeaderboard
	Golfers    []standings.RankedCompetitor
	Cards      map[string]tourcard.TourCard
	Teams      map[string]team.Team
	Field      map[string]golfer.Golfer
}

type LeaderboardService struct {
	repos    Repositories
	board    *memo.Func[standings.LeaderboardInput, []standings.LeaderboardRow]
	observer EngineObserver
	logger   *logging.Logger
}

func NewLeaderboardService(repos Repositories, store *cache.Store, observer EngineObserver, logger *logging.Logger) *LeaderboardService {
	if observer == nil {
		observer = noopObserver{}
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &LeaderboardService{
		repos:    repos,
		board:    memo.New("leaderboard", store, standings.BuildLeaderboard, observer),
		observer: observer,
		logger:   logger.Named("leaderboard"),
	}
}

// GetLeaderboard ranks the teams of one tour, or of every tour when tourID
// is empty, with earnings and points projected from the tournament tier.
func (s *LeaderboardService) GetLeaderboard(ctx context.Context, tournamentID, tourID string) (Leaderboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.GetLeaderboard")
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)
	tourID = strings.TrimSpace(tourID)
	if tournamentID == "" {
		return Leaderboard{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	t, exists, err := s.repos.Tournaments.GetByID(ctx, tournamentID)
	if err != nil {
		return Leaderboard{}, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return Leaderboard{}, fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}

	var (
		tr      tier.Tier
		tierOK  bool
		tours   []tour.Tour
		cards   []tourcard.TourCard
		teams   []team.Team
		golfers []golfer.Golfer
	)
	p := pool.New().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		var err error
		tr, tierOK, err = s.repos.Tiers.GetByID(ctx, t.TierID)
		if err != nil {
			return fmt.Errorf("get tier: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		if tours, err = s.repos.Tours.ListBySeason(ctx, t.SeasonID); err != nil {
			return fmt.Errorf("list tours: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		if cards, err = s.repos.TourCards.ListBySeason(ctx, t.SeasonID); err != nil {
			return fmt.Errorf("list tour cards: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		if teams, err = s.repos.Teams.ListByTournament(ctx, t.ID); err != nil {
			return fmt.Errorf("list teams: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		if golfers, err = s.repos.Golfers.ListByTournament(ctx, t.ID); err != nil {
			return fmt.Errorf("list golfers: %w", err)
		}
		return nil
	})
	if err := p.Wait(); err != nil {
		return Leaderboard{}, err
	}
	if !tierOK {
		return Leaderboard{}, fmt.Errorf("%w: tier=%s", ErrNotFound, t.TierID)
	}

	selected := tours
	if tourID != "" {
		selected = nil
		for _, candidate := range tours {
			if candidate.ID == tourID {
				selected = []tour.Tour{candidate}
				break
			}
		}
		if len(selected) == 0 {
			return Leaderboard{}, fmt.Errorf("%w: tour=%s", ErrNotFound, tourID)
		}
	}

	out := Leaderboard{
		Tournament: t,
		Tier:       tr,
		Tours:      make([]TourLeaderboard, 0, len(selected)),
		Cards:      make(map[string]tourcard.TourCard, len(cards)),
		Teams:      make(map[string]team.Team, len(teams)),
		Field:      make(map[string]golfer.Golfer, len(golfers)),
	}
	for _, c := range cards {
		out.Cards[c.ID] = c
	}
	for _, tm := range teams {
		out.Teams[tm.ID] = tm
	}

	started := time.Now()
	for _, tu := range selected {
		competitors := make([]standings.Competitor, 0)
		for _, tm := range teams {
			if out.Cards[tm.TourCardID].TourID == tu.ID {
				competitors = append(competitors, tm.Competitor(tu.ID))
			}
		}
		rows := s.board.Call(ctx, standings.LeaderboardInput{
			Competitors: competitors,
			Payouts:     out.Tier.Payouts,
			Points:      out.Tier.Points,
		})
		out.Tours = append(out.Tours, TourLeaderboard{Tour: tu, Rows: rows})
	}

	field := make([]standings.Competitor, 0, len(golfers))
	for _, g := range golfers {
		out.Field[g.ID] = g
		field = append(field, g.Competitor())
	}
	out.Golfers = standings.RankByScore(field)
	s.observer.ObserveBoard("leaderboard", len(teams)+len(golfers), time.Since(started))

	s.logger.DebugContext(ctx, "leaderboard built",
		"tournament_id", t.ID,
		"tours", len(out.Tours),
		"teams", len(teams),
		"golfers", len(golfers),
	)

	return out, nil
}
