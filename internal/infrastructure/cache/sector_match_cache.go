package cache

import (
	"time"

	"hsj_mel/internal/domain/mel"

	gocache "github.com/patrickmn/go-cache"
)

const defaultMatchTTL = 10 * time.Minute

// SectorMatchCache is the TTL-bounded memo for sector-name match decisions.
//
// It is owned by the composition root and shared between the matcher (reads)
// and the rule usecase (explicit invalidation on rule writes). TTL expiry is
// only the backstop for sector renames done directly upstream.

type SectorMatchCache struct {
	c *gocache.Cache
}

var _ mel.MatchCache = (*SectorMatchCache)(nil)

// NewSectorMatchCache creates a cache with the given TTL; ttl <= 0 uses the
// default.
func NewSectorMatchCache(ttl time.Duration) *SectorMatchCache {
	if ttl <= 0 {
		ttl = defaultMatchTTL
	}
	return &SectorMatchCache{c: gocache.New(ttl, 2*ttl)}
}

func (s *SectorMatchCache) Get(key string) (bool, bool) {
	v, ok := s.c.Get(key)
	if !ok {
		return false, false
	}
	matched, ok := v.(bool)
	return matched, ok
}

func (s *SectorMatchCache) Set(key string, matched bool) {
	s.c.SetDefault(key, matched)
}

// Invalidate drops every memoized decision. Called on rule create/update/
// delete so a renamed sector never matches through stale entries.
func (s *SectorMatchCache) Invalidate() {
	s.c.Flush()
}
