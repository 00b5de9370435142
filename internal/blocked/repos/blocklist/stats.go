package blocklist

// CacheStats reports lightweight cache metrics.
// All fields are best-effort snapshots and may be updated concurrently.
type CacheStats struct {
	Capacity  int    // configured capacity (0 for disabled cache)
	Size      int    // current number of entries
	Hits      uint64 // total cache hits since construction
	Misses    uint64 // total cache misses since construction
	Evictions uint64 // total evictions since construction
}

// RepoStats exposes repository-level counters.
type RepoStats struct {
	Entries    int   // entries in the current snapshot, duplicates included
	Updates    uint64
	LastUpdate int64 // seconds since epoch, 0 before the first update
	Cache      CacheStats
}
