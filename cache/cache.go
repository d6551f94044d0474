package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/verus-stats/market-api/config"
	"github.com/verus-stats/market-api/metrics"
)

// Status reports how a lookup was served
type Status string

const (
	StatusHit  Status = "hit"
	StatusMiss Status = "miss"
	// StatusBypass means caching is disabled and the loader ran directly
	StatusBypass Status = "bypass"
)

func (s Status) String() string { return string(s) }

// LoaderFunc computes the rendered response for a missing key
type LoaderFunc func() ([]byte, error)

// Service is the response cache wrapping the API layer. The aggregation
// core below it never caches; every entry here is a fully rendered JSON
// body keyed by (resource_type, resource_id, page, per_page), so flushing
// the cache is always safe.
type Service struct {
	cfg   config.CacheConfig
	store *gocache.Cache
}

// NewService creates the response cache from configuration
func NewService(cfg config.CacheConfig) *Service {
	// No default expiration: every Set carries its resource TTL
	return &Service{
		cfg:   cfg,
		store: gocache.New(gocache.NoExpiration, cfg.CleanupInterval),
	}
}

// GetOrLoad returns the cached body for key, or runs loader and caches
// the result for ttl. Loader errors are never cached.
func (s *Service) GetOrLoad(resource, key string, ttl time.Duration, loader LoaderFunc) ([]byte, Status, error) {
	if !s.cfg.Enabled || ttl <= 0 {
		body, err := loader()
		return body, StatusBypass, err
	}

	if value, found := s.store.Get(key); found {
		if body, ok := value.([]byte); ok {
			metrics.RecordCacheHit(resource)
			return body, StatusHit, nil
		}
	}

	metrics.RecordCacheMiss(resource)
	body, err := loader()
	if err != nil {
		return nil, StatusMiss, err
	}

	s.store.Set(key, body, ttl)
	return body, StatusMiss, nil
}

// Flush drops every cached response. The chain monitor calls this when
// the tip advances so later requests recompute against the new snapshot.
func (s *Service) Flush() {
	s.store.Flush()
}

// ItemCount returns the number of cached responses
func (s *Service) ItemCount() int {
	return s.store.ItemCount()
}

// Start implements the service lifecycle; the cache needs no background work
func (s *Service) Start(ctx context.Context) error { return nil }

// Stop implements the service lifecycle
func (s *Service) Stop() {}
