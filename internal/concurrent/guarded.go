// Package concurrent provides an exclusive-access wrapper for a host that
// wants to share one interner across goroutines, for example to
// parallelize checks across files. The core packages (typeset, subtype,
// instantiate) stay single-threaded and lock-free; this package is the
// opt-in adapter, using an errgroup-based fan-out.
package concurrent

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/tszsolve/tszsolve/internal/resolver"
	"github.com/tszsolve/tszsolve/internal/subtype"
	"github.com/tszsolve/tszsolve/internal/typeset"
)

// Guarded serializes access to one *typeset.Interner behind a mutex so
// multiple goroutines can share a single compilation unit's arena. Every
// method takes the lock for its entire body; callers that need several
// constructor calls to be atomic together should use Do.
type Guarded struct {
	mu sync.Mutex
	in *typeset.Interner
}

// NewGuarded wraps an existing interner. The caller must not use in
// directly once it is wrapped.
func NewGuarded(in *typeset.Interner) *Guarded {
	return &Guarded{in: in}
}

// Do runs fn with the interner locked, letting a caller batch several
// constructor calls into one critical section.
func (g *Guarded) Do(fn func(in *typeset.Interner)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(g.in)
}

// Query is a single assignability check to run against the shared
// interner, used by CheckAll.
type Query struct {
	Source, Target typeset.TypeID
	Options        subtype.Options
}

// CheckAll runs every query on its own goroutine (at most GOMAXPROCS at a
// time, via errgroup's limit) and returns one bool per query in input
// order. The assignability relation can intern new types while it runs
// (key domains, mapped-type instantiation, conditional branch unions), so
// each query holds the mutex for its whole check and the checks
// themselves run one at a time against the shared interner.
func (g *Guarded) CheckAll(ctx context.Context, res resolver.Resolver, queries []Query) ([]bool, error) {
	results := make([]bool, len(queries))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))
	for i, q := range queries {
		i, q := i, q
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			g.mu.Lock()
			defer g.mu.Unlock()
			results[i] = subtype.IsAssignable(g.in, res, q.Source, q.Target, q.Options)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
