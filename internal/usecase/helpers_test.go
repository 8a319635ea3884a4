package usecase

import (
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-golf/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-golf/internal/platform/logging"
)

var (
	beforeTourChampionship = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	afterOpen              = time.Date(2026, 7, 20, 9, 0, 0, 0, time.UTC)
)

func seededRepositories(t *testing.T) Repositories {
	t.Helper()

	ds, err := memory.DefaultDataset()
	if err != nil {
		t.Fatalf("DefaultDataset: %v", err)
	}
	r := memory.NewRepositories(ds)
	return Repositories{
		Seasons:     r.Seasons,
		Tiers:       r.Tiers,
		Tours:       r.Tours,
		Tournaments: r.Tournaments,
		Members:     r.Members,
		TourCards:   r.TourCards,
		Golfers:     r.Golfers,
		Teams:       r.Teams,
	}
}

func testLogger() *logging.Logger {
	return logging.NewNop()
}

type recordingObserver struct {
	mu       sync.Mutex
	hits     int
	misses   int
	boards   []string
	finalize []string
	waiting  []int
}

func (o *recordingObserver) MemoHit(string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.hits++
}

func (o *recordingObserver) MemoMiss(string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.misses++
}

func (o *recordingObserver) ObserveBoard(board string, _ int, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.boards = append(o.boards, board)
}

func (o *recordingObserver) ObserveFinalize(outcome string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.finalize = append(o.finalize, outcome)
}

func (o *recordingObserver) SetPoolWaiting(n int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.waiting = append(o.waiting, n)
}
