package blocklist

import "github.com/haukened/blockedservers/internal/blocked/domain"

// BloomSizer computes Bloom filter parameters from capacity (n) and target FP rate (p).
// It returns m (number of bits) and k (number of hash functions).
type BloomSizer interface {
	Size(n uint64, p float64) (m uint64, k uint8)
}

// BloomFilter is the minimal interface the repository needs from Bloom filters.
type BloomFilter interface {
	Add(key []byte)
	MightContain(key []byte) bool
}

// BloomFactory builds filters sized for a snapshot.
type BloomFactory interface {
	New(capacity uint64, fpRate float64) BloomFilter
}

// DecisionCache caches block decisions by address with basic metrics.
type DecisionCache interface {
	Get(address string) (domain.BlockDecision, bool)
	Put(address string, d domain.BlockDecision)
	Len() int
	Purge()
	Stats() CacheStats
}

// Repository holds the current blocked servers snapshot.
// Decide answers against the latest snapshot; Update swaps in a new one.
type Repository interface {
	Decide(address string) domain.BlockDecision
	Update(set domain.HashSet)
	Stats() RepoStats
}
