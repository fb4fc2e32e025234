// pkg/mem/itinerary_cache.go
package mem

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/patrickmn/go-cache"

	"ait/pkg/metrics"
)

const cacheName = "itinerary"

// ItineraryCache keeps raw model replies keyed by the prompt that produced them,
// so an identical trip request does not pay for a second generation.
type ItineraryCache interface {
	Get(key string) (string, bool)
	Set(key string, itinerary string)
}

type ItineraryTexts struct {
	c *cache.Cache
}

// NewItineraryCache returns a TTL cache, or a no-op cache when ttl <= 0.
func NewItineraryCache(ttl time.Duration) ItineraryCache {
	if ttl <= 0 {
		return noopCache{}
	}
	return &ItineraryTexts{
		c: cache.New(ttl, 2*ttl),
	}
}

func (s *ItineraryTexts) Get(key string) (string, bool) {
	v, ok := s.c.Get(key)
	if !ok {
		metrics.ObserveCache(cacheName, "miss")
		return "", false
	}
	text, ok := v.(string)
	if !ok {
		metrics.ObserveCache(cacheName, "miss")
		return "", false
	}
	metrics.ObserveCache(cacheName, "hit")
	return text, true
}

func (s *ItineraryTexts) Set(key string, itinerary string) {
	s.c.SetDefault(key, itinerary)
	metrics.ObserveCache(cacheName, "set")
}

// ItineraryKey hashes provider and prompt; the prompt already encodes every trip parameter.
func ItineraryKey(provider, prompt string) string {
	h := sha256.New()
	h.Write([]byte(provider))
	h.Write([]byte{0})
	h.Write([]byte(prompt))
	return hex.EncodeToString(h.Sum(nil))[:32]
}

type noopCache struct{}

func (noopCache) Get(string) (string, bool) { return "", false }
func (noopCache) Set(string, string)        {}
