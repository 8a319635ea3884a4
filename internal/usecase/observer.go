package usecase

import (
	"time"

	"github.com/riskibarqy/fantasy-golf/internal/platform/memo"
)

// EngineObserver receives board build and memo notifications;
// *metrics.Metrics satisfies it.
type EngineObserver interface {
	memo.Observer
	ObserveBoard(board string, rows int, elapsed time.Duration)
}

// ResultsObserver receives finalize outcomes and pool backlog.
type ResultsObserver interface {
	ObserveFinalize(outcome string)
	SetPoolWaiting(n int)
}

type noopObserver struct{}

func (noopObserver) MemoHit(string) {}
func (noopObserver) MemoMiss(string) {}
func (noopObserver) ObserveBoard(string, int, time.Duration) {}
func (noopObserver) ObserveFinalize(string) {}
func (noopObserver) SetPoolWaiting(int) {}
