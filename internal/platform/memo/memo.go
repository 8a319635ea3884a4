// Package memo caches the results of pure functions keyed by a hash of
// their input.
package memo

import (
	"context"
	"encoding/hex"
	"hash/fnv"

	"github.com/bytedance/sonic"

	"github.com/riskibarqy/fantasy-golf/internal/platform/cache"
)

// Observer receives hit and miss notifications; *metrics.Metrics
// satisfies it.
type Observer interface {
	MemoHit(name string)
	MemoMiss(name string)
}

type Func[In, Out any] struct {
	name     string
	store    *cache.Store
	fn       func(In) Out
	observer Observer
}

// New wraps fn. The input must encode to JSON deterministically; map keys
// are sorted before hashing.
func New[In, Out any](name string, store *cache.Store, fn func(In) Out, observer Observer) *Func[In, Out] {
	return &Func[In, Out]{name: name, store: store, fn: fn, observer: observer}
}

// Call returns fn(in), reusing a stored result for an identical input.
// Inputs that fail to encode are computed directly.
func (f *Func[In, Out]) Call(ctx context.Context, in In) Out {
	if f.store == nil {
		return f.fn(in)
	}
	key, err := Key(f.name, in)
	if err != nil {
		return f.fn(in)
	}

	if v, ok := f.store.Get(ctx, key); ok {
		if out, ok := v.(Out); ok {
			f.hit()
			return out
		}
	}

	v, err := f.store.GetOrLoad(ctx, key, func(context.Context) (any, error) {
		f.miss()
		return f.fn(in), nil
	})
	if err != nil {
		return f.fn(in)
	}
	out, ok := v.(Out)
	if !ok {
		return f.fn(in)
	}
	return out
}

// Forget drops every stored result of this function.
func (f *Func[In, Out]) Forget(ctx context.Context) {
	if f.store != nil {
		f.store.DeletePrefix(ctx, f.name+":")
	}
}

// Key is "<name>:<fnv64a of the encoded input>".
func Key(name string, in any) (string, error) {
	raw, err := sonic.ConfigStd.Marshal(in)
	if err != nil {
		return "", err
	}
	h := fnv.New64a()
	_, _ = h.Write(raw)
	return name + ":" + hex.EncodeToString(h.Sum(nil)), nil
}

func (f *Func[In, Out]) hit() {
	if f.observer != nil {
		f.observer.MemoHit(f.name)
	}
}

func (f *Func[In, Out]) miss() {
	if f.observer != nil {
		f.observer.MemoMiss(f.name)
	}
}
