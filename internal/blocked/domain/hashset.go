package domain

// HashSet is the immutable blocked servers list.
//
// The entries passed to NewHashSet are kept unchanged and in order. Lookups
// go through an index of normalized digests, so comparison ignores hex case.
// A HashSet is safe for concurrent use once constructed.
type HashSet struct {
	hashes []string
	index  map[Digest]struct{}
}

// NewHashSet copies hashes into a new HashSet.
func NewHashSet(hashes []string) HashSet {
	s := HashSet{
		hashes: make([]string, len(hashes)),
		index:  make(map[Digest]struct{}, len(hashes)),
	}
	copy(s.hashes, hashes)
	for _, h := range hashes {
		s.index[NormalizeDigest(h)] = struct{}{}
	}
	return s
}

// Contains reports whether d is in the set.
func (s HashSet) Contains(d Digest) bool {
	_, ok := s.index[d]
	return ok
}

// Len returns the number of entries, duplicates included.
func (s HashSet) Len() int { return len(s.hashes) }

// Hashes returns a copy of the entries as they were supplied.
func (s HashSet) Hashes() []string {
	out := make([]string, len(s.hashes))
	copy(out, s.hashes)
	return out
}

// Digests calls visit once for every distinct normalized digest.
func (s HashSet) Digests(visit func(Digest)) {
	for d := range s.index {
		visit(d)
	}
}
