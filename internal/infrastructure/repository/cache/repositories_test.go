package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/fantasy-golf/internal/domain/tier"
	"github.com/riskibarqy/fantasy-golf/internal/domain/tour"
	basecache "github.com/riskibarqy/fantasy-golf/internal/platform/cache"
)

type tourRepoMock struct {
	mock.Mock
}

func (m *tourRepoMock) ListBySeason(ctx context.Context, seasonID string) ([]tour.Tour, error) {
	args := m.Called(ctx, seasonID)
	items, _ := args.Get(0).([]tour.Tour)
	return items, args.Error(1)
}

func (m *tourRepoMock) GetByID(ctx context.Context, tourID string) (tour.Tour, bool, error) {
	args := m.Called(ctx, tourID)
	return args.Get(0).(tour.Tour), args.Bool(1), args.Error(2)
}

type tierRepoMock struct {
	mock.Mock
}

func (m *tierRepoMock) ListBySeason(ctx context.Context, seasonID string) ([]tier.Tier, error) {
	args := m.Called(ctx, seasonID)
	items, _ := args.Get(0).([]tier.Tier)
	return items, args.Error(1)
}

func (m *tierRepoMock) GetByID(ctx context.Context, tierID string) (tier.Tier, bool, error) {
	args := m.Called(ctx, tierID)
	return args.Get(0).(tier.Tier), args.Bool(1), args.Error(2)
}

func TestTourRepository_CachesListAndMisses(t *testing.T) {
	t.Parallel()

	next := &tourRepoMock{}
	next.On("ListBySeason", mock.Anything, "2026").
		Return([]tour.Tour{{ID: "dbyd", SeasonID: "2026", PlayoffSpots: []int{15, 20}}}, nil).Once()
	next.On("GetByID", mock.Anything, "ghost").Return(tour.Tour{}, false, nil).Once()

	repo := NewTourRepository(next, basecache.NewStore(time.Minute))
	ctx := context.Background()

	first, err := repo.ListBySeason(ctx, "2026")
	if err != nil {
		t.Fatalf("ListBySeason: %v", err)
	}
	first[0].PlayoffSpots[0] = 99
	second, _ := repo.ListBySeason(ctx, "2026")
	if second[0].PlayoffSpots[0] != 15 {
		t.Fatalf("expected cached value to be isolated from callers")
	}

	for i := 0; i < 2; i++ {
		if _, ok, err := repo.GetByID(ctx, "ghost"); ok || err != nil {
			t.Fatalf("expected cached miss, got ok=%t err=%v", ok, err)
		}
	}
	next.AssertExpectations(t)
}

func TestTierRepository_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("db down")
	next := &tierRepoMock{}
	next.On("GetByID", mock.Anything, "major").Return(tier.Tier{}, false, boom).Once()
	next.On("GetByID", mock.Anything, "major").Return(tier.Tier{ID: "major", Points: []float64{500}}, true, nil).Once()

	repo := NewTierRepository(next, basecache.NewStore(time.Minute))
	if _, _, err := repo.GetByID(context.Background(), "major"); !errors.Is(err, boom) {
		t.Fatalf("expected loader error, got %v", err)
	}
	got, ok, err := repo.GetByID(context.Background(), "major")
	if err != nil || !ok || got.Points[0] != 500 {
		t.Fatalf("expected reload after error, got %+v ok=%t err=%v", got, ok, err)
	}
	next.AssertExpectations(t)
}
