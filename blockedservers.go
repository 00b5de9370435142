// Package blockedservers checks server addresses against Mojang's published
// list of blocked servers.
//
// Mojang publishes SHA-1 digests rather than plaintext patterns. An address is
// blocked when the digest of the address itself, or of one of the wildcard
// patterns derived from it ("*.example.com" for hostnames, "192.0.*" for IPv4
// addresses), appears in the list.
//
//	blocked, err := blockedservers.Fetch(ctx)
//	if err != nil {
//		return err
//	}
//	if pattern, ok := blocked.FindBlockedPattern("mc.example.com"); ok {
//		fmt.Println("blocked by", pattern)
//	}
package blockedservers

import (
	"context"
	"fmt"

	"github.com/haukened/blockedservers/internal/blocked/common/log"
	"github.com/haukened/blockedservers/internal/blocked/config"
	"github.com/haukened/blockedservers/internal/blocked/domain"
	"github.com/haukened/blockedservers/internal/blocked/gateways/mojang"
	"github.com/haukened/blockedservers/internal/blocked/services/matcher"
)

// DefaultURL is where Mojang publishes the blocked servers list.
const DefaultURL = mojang.DefaultURL

// ErrRequest is matched by every error caused by fetching the list.
var ErrRequest = mojang.ErrRequest

// RequestError describes a failed fetch of the list.
type RequestError = mojang.RequestError

// Config is the BLOCKED_* environment configuration.
type Config = config.AppConfig

// LoadConfig reads configuration from BLOCKED_* environment variables.
func LoadConfig() (*Config, error) {
	return config.Load()
}

// DefaultConfig returns the configuration used when no environment overrides are set.
func DefaultConfig() *Config {
	cfg := config.DEFAULT_APP_CONFIG
	return &cfg
}

// BlockedServers is an immutable blocked servers list. It is safe for
// concurrent use.
type BlockedServers struct {
	hashes  domain.HashSet
	matcher *matcher.Matcher
}

// New wraps an already obtained list of hex SHA-1 digests. Hex case is ignored
// and malformed entries never match.
func New(hashes []string) *BlockedServers {
	return newBlockedServers(domain.NewHashSet(hashes))
}

func newBlockedServers(set domain.HashSet) *BlockedServers {
	return &BlockedServers{hashes: set, matcher: matcher.New(set)}
}

// Fetch downloads the current list using configuration from BLOCKED_*
// environment variables, falling back to DefaultURL.
func Fetch(ctx context.Context) (*BlockedServers, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	client, err := newClient(cfg, logger)
	if err != nil {
		return nil, err
	}
	return fetchWith(ctx, client)
}

// FetchFrom downloads the list from url with default settings.
func FetchFrom(ctx context.Context, url string) (*BlockedServers, error) {
	client, err := mojang.NewClient(mojang.Options{URL: url, Logger: log.GetLogger()})
	if err != nil {
		return nil, err
	}
	return fetchWith(ctx, client)
}

func fetchWith(ctx context.Context, client *mojang.Client) (*BlockedServers, error) {
	set, err := client.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return newBlockedServers(set), nil
}

// newLogger builds a logger scoped to cfg. The process-wide logger is left
// as the host configured it.
func newLogger(cfg *Config) (log.Logger, error) {
	logger, err := log.New(cfg.Env, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("configure logging: %w", err)
	}
	return logger, nil
}

func newClient(cfg *Config, logger log.Logger) (*mojang.Client, error) {
	return mojang.NewClient(mojang.Options{
		URL:     cfg.Source.URL,
		Timeout: cfg.Source.Timeout,
		Logger:  logger,
	})
}

// FindBlockedPattern returns the listed pattern that address falls under.
// An exact match returns address itself and always takes priority; otherwise
// the most specific matching wildcard is returned.
func (b *BlockedServers) FindBlockedPattern(address string) (string, bool) {
	return b.matcher.FindBlockedPattern(address)
}

// IsBlocked reports whether FindBlockedPattern finds a match.
func (b *BlockedServers) IsBlocked(address string) bool {
	return b.matcher.IsBlocked(address)
}

// Hashes returns a copy of the list entries as published.
func (b *BlockedServers) Hashes() []string {
	return b.hashes.Hashes()
}

// Len returns the number of list entries.
func (b *BlockedServers) Len() int {
	return b.hashes.Len()
}

// IsIPv4 reports whether address segments are treated as an IPv4 address:
// exactly four segments, each a decimal number from 0 to 255. This mirrors
// Mojang's own naive check and intentionally differs from net.ParseIP.
func IsIPv4(parts []string) bool {
	return domain.IsIPv4(parts)
}
