package ratelimiter

import (
	"context"
	"sync"
	"time"
)

type Decision struct {
	Allowed bool `json:"allowed"`
}

// Limiter answers whether the caller behind key may perform another write.
// Check must be atomic per key across concurrent callers. Implementations
// backed by a shared counter service satisfy the same contract, so the
// concrete policy is swappable without touching submission logic.
type Limiter interface {
	Check(ctx context.Context, key string) (Decision, error)
}

// SlidingWindow allows at most limit accepted actions per key within the
// trailing window. The window ends at evaluation time rather than on fixed
// calendar buckets, so a burst cannot double its rate by straddling a
// bucket boundary. Denied attempts do not consume quota.
type SlidingWindow struct {
	limit  int
	window time.Duration
	mu     sync.Mutex
	hits   map[string][]time.Time
	now    func() time.Time
}

func NewSlidingWindow(limit int, window time.Duration) *SlidingWindow {
	return &SlidingWindow{
		limit:  limit,
		window: window,
		hits:   map[string][]time.Time{},
		now:    time.Now,
	}
}

func (sw *SlidingWindow) Check(ctx context.Context, key string) (Decision, error) {
	now := sw.now()

	sw.mu.Lock()
	defer sw.mu.Unlock()

	recent := pruneBefore(sw.hits[key], now.Add(-sw.window))
	if len(recent) >= sw.limit {
		sw.hits[key] = recent
		return Decision{Allowed: false}, nil
	}
	sw.hits[key] = append(recent, now)
	return Decision{Allowed: true}, nil
}

func pruneBefore(hits []time.Time, cutoff time.Time) []time.Time {
	pruned := hits[:0]
	for _, hit := range hits {
		if hit.After(cutoff) {
			pruned = append(pruned, hit)
		}
	}
	return pruned
}
