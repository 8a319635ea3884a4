package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/fantasy-golf/internal/domain/member"
)

type MemberRepository struct {
	mu     sync.RWMutex
	items  map[string]member.Member
	orders []string
}

func NewMemberRepository(members []member.Member) *MemberRepository {
	r := &MemberRepository{items: make(map[string]member.Member, len(members))}
	for _, m := range members {
		r.items[m.ID] = m
		r.orders = append(r.orders, m.ID)
	}
	return r
}

func (r *MemberRepository) GetByID(_ context.Context, memberID string) (member.Member, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.items[memberID]
	return m, ok, nil
}

func (r *MemberRepository) List(_ context.Context) ([]member.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]member.Member, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *MemberRepository) Create(_ context.Context, m member.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[m.ID]; exists {
		return fmt.Errorf("member already exists: %s", m.ID)
	}
	r.items[m.ID] = m
	r.orders = append(r.orders, m.ID)
	return nil
}

func (r *MemberRepository) Update(_ context.Context, m member.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[m.ID]; !exists {
		return fmt.Errorf("member not found: %s", m.ID)
	}
	r.items[m.ID] = m
	return nil
}

func (r *MemberRepository) AdjustAccount(_ context.Context, memberID string, delta float64) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, exists := r.items[memberID]
	if !exists {
		return 0, fmt.Errorf("member not found: %s", memberID)
	}
	m.Account += delta
	r.items[memberID] = m
	return m.Account, nil
}
