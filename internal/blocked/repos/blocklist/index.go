package blocklist

import "github.com/haukened/blockedservers/internal/blocked/domain"

// gatedIndex answers digest membership, consulting the Bloom filter first.
// A negative from the filter is definitive; a positive is confirmed against the set.
type gatedIndex struct {
	bloom BloomFilter
	set   domain.HashSet
}

func newGatedIndex(set domain.HashSet, factory BloomFactory, fpRate float64) *gatedIndex {
	idx := &gatedIndex{set: set}
	if factory == nil {
		return idx
	}
	bf := factory.New(uint64(set.Len()), fpRate)
	set.Digests(func(d domain.Digest) {
		bf.Add([]byte(d))
	})
	idx.bloom = bf
	return idx
}

func (g *gatedIndex) Contains(d domain.Digest) bool {
	if g.bloom != nil && !g.bloom.MightContain([]byte(d)) {
		return false
	}
	return g.set.Contains(d)
}
