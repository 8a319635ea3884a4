package memo

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-golf/internal/platform/cache"
)

type counter struct {
	hits, misses atomic.Int32
}

func (c *counter) MemoHit(string)  { c.hits.Add(1) }
func (c *counter) MemoMiss(string) { c.misses.Add(1) }

type input struct {
	Points map[string]float64
	Cutoff int
}

func TestFunc_CachesIdenticalInputs(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	obs := &counter{}
	sum := New("sum", cache.NewStore(time.Minute), func(in input) float64 {
		calls.Add(1)
		total := 0.0
		for _, v := range in.Points {
			total += v
		}
		return total
	}, obs)

	ctx := context.Background()
	a := sum.Call(ctx, input{Points: map[string]float64{"x": 1, "y": 2, "z": 3}})
	b := sum.Call(ctx, input{Points: map[string]float64{"z": 3, "y": 2, "x": 1}})
	c := sum.Call(ctx, input{Points: map[string]float64{"x": 1}, Cutoff: 1})

	if a != 6 || b != 6 || c != 1 {
		t.Fatalf("unexpected results %v %v %v", a, b, c)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected 2 computations, got %d", got)
	}
	if obs.hits.Load() != 1 || obs.misses.Load() != 2 {
		t.Fatalf("unexpected hit/miss counts %d/%d", obs.hits.Load(), obs.misses.Load())
	}

	sum.Forget(ctx)
	sum.Call(ctx, input{Points: map[string]float64{"x": 1}, Cutoff: 1})
	if got := calls.Load(); got != 3 {
		t.Fatalf("expected recompute after Forget, got %d calls", got)
	}
}

func TestFunc_UnencodableInputIsComputed(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	f := New("chan", cache.NewStore(0), func(ch chan int) int {
		calls.Add(1)
		return cap(ch)
	}, nil)

	ch := make(chan int, 3)
	f.Call(context.Background(), ch)
	f.Call(context.Background(), ch)
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected direct computation each time, got %d", got)
	}
}

func TestKey_IsStable(t *testing.T) {
	t.Parallel()

	k1, err := Key("standings", map[string]int{"b": 2, "a": 1})
	if err != nil {
		t.Fatalf("Key: %v", err)
	}
	k2, _ := Key("standings", map[string]int{"a": 1, "b": 2})
	if k1 != k2 {
		t.Fatalf("expected stable key, got %q and %q", k1, k2)
	}
	if len(k1) != len("standings:")+16 {
		t.Fatalf("unexpected key shape %q", k1)
	}
}
