// ABOUTME: Session cache for derived article content keyed by url, language and kind
// ABOUTME: Bounded-TTL map with explicit Clear for language switches

package derived

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Kind names a class of derived content.
type Kind string

const (
	KindSummary     Kind = "summary"
	KindKeywords    Kind = "keywords"
	KindTranslation Kind = "translation"
	KindAudio       Kind = "audio"
)

const (
	defaultTTL      = time.Hour
	cleanupInterval = 10 * time.Minute
)

// Store memoizes derived content above the pure pipeline functions, so
// repeated renders of the same article do not recompute summaries,
// translations or audio.
type Store struct {
	cache *gocache.Cache
}

// NewStore creates a store with the given default TTL. A non-positive ttl
// uses the standard one hour.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Store{
		cache: gocache.New(ttl, cleanupInterval),
	}
}

// Get returns the cached content for (url, language, kind).
func (s *Store) Get(url, language string, kind Kind) ([]byte, bool) {
	v, found := s.cache.Get(key(url, language, kind))
	if !found {
		return nil, false
	}
	data, ok := v.([]byte)
	return data, ok
}

// Set stores content under (url, language, kind) with the default TTL.
func (s *Store) Set(url, language string, kind Kind, value []byte) {
	s.cache.SetDefault(key(url, language, kind), value)
}

// SetWithTTL stores content with an explicit TTL. Audio payloads use a
// longer TTL than text since synthesis is the most expensive derivation.
func (s *Store) SetWithTTL(url, language string, kind Kind, value []byte, ttl time.Duration) {
	s.cache.Set(key(url, language, kind), value, ttl)
}

// Clear drops every entry. Called when the session language changes, since
// all translations and audio become stale at once.
func (s *Store) Clear() {
	s.cache.Flush()
}

// Len reports the number of live entries.
func (s *Store) Len() int {
	return s.cache.ItemCount()
}

func key(url, language string, kind Kind) string {
	return url + "|" + language + "|" + string(kind)
}
