package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-golf/internal/domain/member"
	"github.com/riskibarqy/fantasy-golf/internal/domain/user"
	"github.com/riskibarqy/fantasy-golf/internal/platform/logging"
)

type UpdateProfileInput struct {
	FirstName string
	LastName  string
	Email     string
}

type MemberService struct {
	repo   member.Repository
	logger *logging.Logger
	now    func() time.Time
}

func NewMemberService(repo member.Repository, logger *logging.Logger) *MemberService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MemberService{repo: repo, logger: logger.Named("member"), now: time.Now}
}

// Get returns the caller's member record, creating a regular member from
// the identity principal on first sight.
func (s *MemberService) Get(ctx context.Context, principal user.Principal) (member.Member, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MemberService.Get")
	defer span.End()

	userID := strings.TrimSpace(principal.UserID)
	if userID == "" {
		return member.Member{}, fmt.Errorf("%w: principal has no user id", ErrUnauthorized)
	}

	m, exists, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return member.Member{}, fmt.Errorf("get member: %w", err)
	}
	if exists {
		return m, nil
	}

	now := s.now().UTC()
	m = member.Member{
		ID:        userID,
		Email:     strings.TrimSpace(principal.Email),
		Role:      member.RoleRegular,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return member.Member{}, fmt.Errorf("create member: %w", err)
	}
	s.logger.InfoContext(ctx, "member created on first sign in", "member_id", m.ID)
	return m, nil
}

func (s *MemberService) UpdateProfile(ctx context.Context, memberID string, input UpdateProfileInput) (member.Member, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MemberService.UpdateProfile")
	defer span.End()

	m, err := s.mustGet(ctx, memberID)
	if err != nil {
		return member.Member{}, err
	}

	first := strings.TrimSpace(input.FirstName)
	last := strings.TrimSpace(input.LastName)
	if first == "" || last == "" {
		return member.Member{}, fmt.Errorf("%w: first and last name are required", ErrInvalidInput)
	}
	m.FirstName = first
	m.LastName = last
	if email := strings.TrimSpace(input.Email); email != "" {
		m.Email = email
	}
	m.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, m); err != nil {
		return member.Member{}, fmt.Errorf("update member: %w", err)
	}
	return m, nil
}

func (s *MemberService) List(ctx context.Context, actorID string) ([]member.Member, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MemberService.List")
	defer span.End()

	if _, err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return items, nil
}

// UpdateRole changes another member's role. Admins cannot demote
// themselves so the league always keeps one.
func (s *MemberService) UpdateRole(ctx context.Context, actorID, memberID, role string) (member.Member, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MemberService.UpdateRole")
	defer span.End()

	actor, err := s.requireAdmin(ctx, actorID)
	if err != nil {
		return member.Member{}, err
	}
	parsed, err := member.ParseRole(role)
	if err != nil {
		return member.Member{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	m, err := s.mustGet(ctx, memberID)
	if err != nil {
		return member.Member{}, err
	}
	if m.ID == actor.ID && parsed != member.RoleAdmin {
		return member.Member{}, fmt.Errorf("%w: admins cannot demote themselves", ErrConflict)
	}
	if m.Role == parsed {
		return m, nil
	}

	m.Role = parsed
	m.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, m); err != nil {
		return member.Member{}, fmt.Errorf("update member role: %w", err)
	}
	s.logger.InfoContext(ctx, "member role updated", "member_id", m.ID, "role", string(parsed), "actor_id", actor.ID)
	return m, nil
}

// AdjustAccount credits (positive delta) or debits a member balance.
func (s *MemberService) AdjustAccount(ctx context.Context, actorID, memberID string, delta float64) (float64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MemberService.AdjustAccount")
	defer span.End()

	actor, err := s.requireAdmin(ctx, actorID)
	if err != nil {
		return 0, err
	}
	if delta == 0 || math.IsNaN(delta) || math.IsInf(delta, 0) {
		return 0, fmt.Errorf("%w: amount must be a non-zero number", ErrInvalidInput)
	}
	if _, err := s.mustGet(ctx, memberID); err != nil {
		return 0, err
	}

	balance, err := s.repo.AdjustAccount(ctx, strings.TrimSpace(memberID), delta)
	if err != nil {
		return 0, fmt.Errorf("adjust account: %w", err)
	}
	s.logger.InfoContext(ctx, "member account adjusted",
		"member_id", memberID,
		"delta", delta,
		"balance", balance,
		"actor_id", actor.ID,
	)
	return balance, nil
}

func (s *MemberService) mustGet(ctx context.Context, memberID string) (member.Member, error) {
	memberID = strings.TrimSpace(memberID)
	if memberID == "" {
		return member.Member{}, fmt.Errorf("%w: member id is required", ErrInvalidInput)
	}
	m, exists, err := s.repo.GetByID(ctx, memberID)
	if err != nil {
		return member.Member{}, fmt.Errorf("get member: %w", err)
	}
	if !exists {
		return member.Member{}, fmt.Errorf("%w: member=%s", ErrNotFound, memberID)
	}
	return m, nil
}

func (s *MemberService) requireAdmin(ctx context.Context, actorID string) (member.Member, error) {
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return member.Member{}, fmt.Errorf("%w: actor is required", ErrUnauthorized)
	}
	actor, exists, err := s.repo.GetByID(ctx, actorID)
	if err != nil {
		return member.Member{}, fmt.Errorf("get actor: %w", err)
	}
	if !exists || !actor.IsAdmin() {
		return member.Member{}, fmt.Errorf("%w: admin role required", ErrForbidden)
	}
	return actor, nil
}

// RequireAdmin reports ErrForbidden unless actorID is an admin member.
func (s *MemberService) RequireAdmin(ctx context.Context, actorID string) error {
	_, err := s.requireAdmin(ctx, actorID)
	return err
}
