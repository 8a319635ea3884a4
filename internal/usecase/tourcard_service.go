package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-golf/internal/domain/tourcard"
	"github.com/riskibarqy/fantasy-golf/internal/platform/id"
	"github.com/riskibarqy/fantasy-golf/internal/platform/logging"
)

type JoinTourResult struct {
	TourCard tourcard.TourCard
	Balance  float64
}

type TourCardService struct {
	repos  Repositories
	ids    id.Generator
	logger *logging.Logger
	now    func() time.Time
}

func NewTourCardService(repos Repositories, ids id.Generator, logger *logging.Logger) *TourCardService {
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &TourCardService{
		repos:  repos,
		ids:    ids,
		logger: logger.Named("tourcard"),
		now:    time.Now,
	}
}

// JoinTour issues the member a tour card and debits the buy-in. A member
// holds one card per season. The balance may go negative; it is settled
// outside the app. The buy-in is debited first and refunded when the card
// cannot be stored.
func (s *TourCardService) JoinTour(ctx context.Context, memberID, tourID string) (JoinTourResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TourCardService.JoinTour")
	defer span.End()

	memberID = strings.TrimSpace(memberID)
	tourID = strings.TrimSpace(tourID)
	if memberID == "" || tourID == "" {
		return JoinTourResult{}, fmt.Errorf("%w: member id and tour id are required", ErrInvalidInput)
	}

	m, exists, err := s.repos.Members.GetByID(ctx, memberID)
	if err != nil {
		return JoinTourResult{}, fmt.Errorf("get member: %w", err)
	}
	if !exists {
		return JoinTourResult{}, fmt.Errorf("%w: member=%s", ErrNotFound, memberID)
	}

	t, exists, err := s.repos.Tours.GetByID(ctx, tourID)
	if err != nil {
		return JoinTourResult{}, fmt.Errorf("get tour: %w", err)
	}
	if !exists {
		return JoinTourResult{}, fmt.Errorf("%w: tour=%s", ErrNotFound, tourID)
	}

	if _, exists, err := s.repos.TourCards.GetByMemberAndSeason(ctx, m.ID, t.SeasonID); err != nil {
		return JoinTourResult{}, fmt.Errorf("get tour card: %w", err)
	} else if exists {
		return JoinTourResult{}, fmt.Errorf("%w: member %s already holds a card for season %s", ErrConflict, m.ID, t.SeasonID)
	}

	cardID, err := s.ids.NewID()
	if err != nil {
		return JoinTourResult{}, fmt.Errorf("generate tour card id: %w", err)
	}
	card := tourcard.TourCard{
		ID:          cardID,
		MemberID:    m.ID,
		TourID:      t.ID,
		SeasonID:    t.SeasonID,
		DisplayName: m.DisplayName(),
		CreatedAt:   s.now().UTC(),
	}
	if err := card.Validate(); err != nil {
		return JoinTourResult{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	balance, err := s.repos.Members.AdjustAccount(ctx, m.ID, -t.BuyIn)
	if err != nil {
		return JoinTourResult{}, fmt.Errorf("debit buy-in: %w", err)
	}
	if err := s.repos.TourCards.Create(ctx, card); err != nil {
		s.refundBuyIn(ctx, m.ID, t.BuyIn)
		if errors.Is(err, tourcard.ErrAlreadyExists) {
			return JoinTourResult{}, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		return JoinTourResult{}, fmt.Errorf("create tour card: %w", err)
	}

	s.logger.InfoContext(ctx, "tour joined",
		"member_id", m.ID,
		"tour_id", t.ID,
		"tour_card_id", card.ID,
		"balance", balance,
	)
	return JoinTourResult{TourCard: card, Balance: balance}, nil
}

func (s *TourCardService) refundBuyIn(ctx context.Context, memberID string, buyIn float64) {
	if _, err := s.repos.Members.AdjustAccount(ctx, memberID, buyIn); err != nil {
		s.logger.ErrorContext(ctx, "buy-in debited but refund failed",
			"member_id", memberID,
			"buy_in", buyIn,
			"error", err,
		)
	}
}
