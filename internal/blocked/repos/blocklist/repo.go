package blocklist

import (
	"sync"
	"sync/atomic"

	"github.com/haukened/blockedservers/internal/blocked/common/clock"
	"github.com/haukened/blockedservers/internal/blocked/common/log"
	"github.com/haukened/blockedservers/internal/blocked/common/utils"
	"github.com/haukened/blockedservers/internal/blocked/domain"
	"github.com/haukened/blockedservers/internal/blocked/services/matcher"
)

// Options configures a Repository.
type Options struct {
	Cache   DecisionCache // nil disables decision caching
	Factory BloomFactory  // nil disables the Bloom gate
	FPRate  float64       // target false-positive rate for the Bloom gate
	Clock   clock.Clock
	Logger  log.Logger
}

// snapshot is an immutable view of one fetched list.
type snapshot struct {
	matcher *matcher.Matcher
	entries int
}

// repository implements Repository by composing a matcher over a Bloom-gated
// hash set with a DecisionCache. Reads go cache → matcher; Update swaps the
// snapshot atomically and purges the cache.
type repository struct {
	mu         sync.RWMutex // orders cache writes against snapshot swaps
	current    atomic.Pointer[snapshot]
	cache      DecisionCache
	factory    BloomFactory
	fpRate     float64
	clock      clock.Clock
	logger     log.Logger
	updates    atomic.Uint64
	lastUpdate atomic.Int64
}

// NewRepository constructs a Repository with an empty snapshot. Until the
// first Update every address is allowed.
func NewRepository(opts Options) Repository {
	r := &repository{
		cache:   opts.Cache,
		factory: opts.Factory,
		fpRate:  opts.FPRate,
		clock:   opts.Clock,
		logger:  opts.Logger,
	}
	if r.cache == nil {
		r.cache = disabledCache{}
	}
	if r.clock == nil {
		r.clock = clock.RealClock{}
	}
	if r.logger == nil {
		r.logger = log.NewNoopLogger()
	}
	r.current.Store(&snapshot{matcher: matcher.New(domain.NewHashSet(nil))})
	return r
}

// Decide returns a BlockDecision for address as given. The address is used
// verbatim as the cache key since any normalization would change matching.
func (r *repository) Decide(address string) domain.BlockDecision {
	if d, ok := r.cache.Get(address); ok {
		return d
	}
	snap := r.current.Load()
	dec := snap.matcher.Decide(address)
	if dec.Blocked {
		r.logger.Debug(map[string]any{
			"address": address,
			"pattern": dec.Pattern,
			"kind":    dec.Kind.String(),
			"apex":    utils.ApexOf(address),
		}, "blocked_server_match")
	}
	// Only cache if the snapshot was not swapped underneath us.
	r.mu.RLock()
	if r.current.Load() == snap {
		r.cache.Put(address, dec)
	}
	r.mu.RUnlock()
	return dec
}

// Update swaps in set as the current snapshot, rebuilding the Bloom gate and
// purging cached decisions.
func (r *repository) Update(set domain.HashSet) {
	snap := &snapshot{
		matcher: matcher.New(newGatedIndex(set, r.factory, r.fpRate)),
		entries: set.Len(),
	}
	r.mu.Lock()
	r.current.Store(snap)
	r.cache.Purge()
	r.mu.Unlock()

	now := r.clock.Now().Unix()
	r.lastUpdate.Store(now)
	n := r.updates.Add(1)
	r.logger.Info(map[string]any{
		"entries": snap.entries,
		"update":  n,
		"bloom":   r.factory != nil,
	}, "blocked_servers_updated")
}

// Stats returns snapshot and cache counters.
func (r *repository) Stats() RepoStats {
	return RepoStats{
		Entries:    r.current.Load().entries,
		Updates:    r.updates.Load(),
		LastUpdate: r.lastUpdate.Load(),
		Cache:      r.cache.Stats(),
	}
}

// disabledCache is used when no DecisionCache is configured.
type disabledCache struct{}

func (disabledCache) Get(string) (domain.BlockDecision, bool) { return domain.EmptyDecision(), false }
func (disabledCache) Put(string, domain.BlockDecision)        {}
func (disabledCache) Len() int                                { return 0 }
func (disabledCache) Purge()                                  {}
func (disabledCache) Stats() CacheStats                       { return CacheStats{} }

var _ matcher.HashIndex = (*gatedIndex)(nil)
var _ DecisionCache = disabledCache{}
