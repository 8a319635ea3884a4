package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-golf/internal/domain/team"
	"github.com/riskibarqy/fantasy-golf/internal/platform/id"
	"github.com/riskibarqy/fantasy-golf/internal/platform/logging"
)

type TeamService struct {
	repos  Repositories
	ids    id.Generator
	rules  team.Rules
	logger *logging.Logger
	now    func() time.Time
}

func NewTeamService(repos Repositories, ids id.Generator, rules team.Rules, logger *logging.Logger) *TeamService {
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	if rules.Size <= 0 {
		rules = team.DefaultRules()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamService{
		repos:  repos,
		ids:    ids,
		rules:  rules,
		logger: logger.Named("team"),
		now:    time.Now,
	}
}

// SaveTeam creates or replaces the member's roster for a tournament that
// has not started yet.
func (s *TeamService) SaveTeam(ctx context.Context, memberID, tournamentID string, golferIDs []string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.SaveTeam")
	defer span.End()

	memberID = strings.TrimSpace(memberID)
	tournamentID = strings.TrimSpace(tournamentID)
	if memberID == "" || tournamentID == "" {
		return team.Team{}, fmt.Errorf("%w: member id and tournament id are required", ErrInvalidInput)
	}

	t, exists, err := s.repos.Tournaments.GetByID(ctx, tournamentID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}
	if t.Started(s.now()) {
		return team.Team{}, fmt.Errorf("%w: %w", ErrConflict, team.ErrTeamLocked)
	}

	card, exists, err := s.repos.TourCards.GetByMemberAndSeason(ctx, memberID, t.SeasonID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get tour card: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: member %s has no tour card for season %s", ErrForbidden, memberID, t.SeasonID)
	}

	field, err := s.repos.Golfers.ListByTournament(ctx, t.ID)
	if err != nil {
		return team.Team{}, fmt.Errorf("list golfers: %w", err)
	}
	roster := make([]string, len(golferIDs))
	for i, gid := range golferIDs {
		roster[i] = strings.TrimSpace(gid)
	}
	if err := team.ValidateRoster(roster, field, s.rules); err != nil {
		return team.Team{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	current, exists, err := s.repos.Teams.GetByTourCard(ctx, t.ID, card.ID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		newID, err := s.ids.NewID()
		if err != nil {
			return team.Team{}, fmt.Errorf("generate team id: %w", err)
		}
		current = team.Team{ID: newID, TournamentID: t.ID, TourCardID: card.ID}
	}
	current.GolferIDs = roster
	current.UpdatedAt = s.now().UTC()
	if err := current.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := s.repos.Teams.Upsert(ctx, current); err != nil {
		return team.Team{}, fmt.Errorf("save team: %w", err)
	}

	s.logger.InfoContext(ctx, "team saved",
		"team_id", current.ID,
		"tournament_id", t.ID,
		"tour_card_id", card.ID,
		"created", !exists,
	)
	return current, nil
}
