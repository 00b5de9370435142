package blockedservers

import (
	"context"
	"fmt"

	"github.com/haukened/blockedservers/internal/blocked/common/utils"
	"github.com/haukened/blockedservers/internal/blocked/domain"
	"github.com/haukened/blockedservers/internal/blocked/gateways/mojang"
	"github.com/haukened/blockedservers/internal/blocked/repos/blocklist"
	"github.com/haukened/blockedservers/internal/blocked/repos/blocklist/bloom"
	"github.com/haukened/blockedservers/internal/blocked/repos/blocklist/lru"
)

// Decision is the outcome of checking one address.
type Decision struct {
	Blocked bool
	Pattern string // matched pattern, empty when not blocked
	Kind    string // "exact", "ipv4_wildcard" or "hostname_wildcard"; empty when not blocked
	Apex    string // registrable domain of a blocked hostname; empty for IPv4 or when unknown
}

// Stats reports Blocklist counters.
type Stats = blocklist.RepoStats

// fetcher is the part of the mojang client a Blocklist depends on.
type fetcher interface {
	Fetch(ctx context.Context) (domain.HashSet, error)
}

// Blocklist is a long-lived, refreshable blocked servers list for services
// that check many addresses. Every Refresh performs a new fetch; nothing is
// persisted between fetches.
type Blocklist struct {
	repo    blocklist.Repository
	fetcher fetcher
}

// NewBlocklist builds an empty Blocklist from BLOCKED_* configuration. Call
// Refresh before the first Decide; until then every address is allowed.
func NewBlocklist() (*Blocklist, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return NewBlocklistWithConfig(cfg)
}

// NewBlocklistWithConfig builds an empty Blocklist from cfg.
func NewBlocklistWithConfig(cfg *Config) (*Blocklist, error) {
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	client, err := newClient(cfg, logger)
	if err != nil {
		return nil, err
	}
	cache, err := lru.New(cfg.Cache.Size)
	if err != nil {
		return nil, fmt.Errorf("create decision cache: %w", err)
	}
	opts := blocklist.Options{
		Cache:  cache,
		FPRate: cfg.Bloom.FPRate,
		Logger: logger,
	}
	if cfg.Bloom.Enabled {
		opts.Factory = bloom.NewFactory()
	}
	logger.Debug(map[string]any{
		"url":        client.URL(),
		"timeout":    cfg.Source.Timeout.String(),
		"cache_size": cfg.Cache.Size,
		"bloom":      cfg.Bloom.Enabled,
	}, "blocklist_configured")
	return &Blocklist{repo: blocklist.NewRepository(opts), fetcher: client}, nil
}

// Refresh fetches the list and swaps it in. On error the previous list stays active.
func (b *Blocklist) Refresh(ctx context.Context) error {
	set, err := b.fetcher.Fetch(ctx)
	if err != nil {
		return err
	}
	b.repo.Update(set)
	return nil
}

// Load swaps in a caller-supplied list without fetching.
func (b *Blocklist) Load(hashes []string) {
	b.repo.Update(domain.NewHashSet(hashes))
}

// Decide checks address against the current list.
func (b *Blocklist) Decide(address string) Decision {
	d := b.repo.Decide(address)
	if !d.Blocked {
		return Decision{}
	}
	return Decision{
		Blocked: true,
		Pattern: d.Pattern,
		Kind:    d.Kind.String(),
		Apex:    utils.ApexOf(address),
	}
}

// IsBlocked reports whether address is blocked by the current list.
func (b *Blocklist) IsBlocked(address string) bool {
	return b.repo.Decide(address).Blocked
}

// Stats returns snapshot and cache counters.
func (b *Blocklist) Stats() Stats {
	return b.repo.Stats()
}

var _ fetcher = (*mojang.Client)(nil)
