package exercises

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	namesCacheKey       = "exercise-names"
	namesCacheSizeBytes = 2 * 1024 * 1024
	DefaultNamesTTL     = 30 * time.Minute
)

type namesSource interface {
	AllNames(ctx context.Context) ([]string, error)
}

// NamesCache keeps a time-boxed snapshot of all catalog exercise names,
// used for fuzzy-match suggestions so a resolution miss does not scan
// the catalog table every time. The snapshot is stored as one JSON
// entry; freecache swaps entries atomically, so readers racing a
// refresh see either the old or the new list, never a partial one.
// The mutex makes the stale-check-and-refresh step single-writer.
type NamesCache struct {
	source namesSource
	cache  *freecache.Cache
	ttl    time.Duration

	refreshMutex sync.Mutex
}

func NewNamesCache(source namesSource, ttl time.Duration) *NamesCache {
	if ttl <= 0 {
		ttl = DefaultNamesTTL
	}
	return &NamesCache{
		source: source,
		cache:  freecache.NewCache(namesCacheSizeBytes),
		ttl:    ttl,
	}
}

// Get returns the cached name list, refreshing it from the catalog
// when expired or absent.
func (nc *NamesCache) Get(ctx context.Context) ([]string, error) {
	if names, ok := nc.cached(); ok {
		return names, nil
	}

	nc.refreshMutex.Lock()
	defer nc.refreshMutex.Unlock()

	// another request may have refreshed while this one waited
	if names, ok := nc.cached(); ok {
		return names, nil
	}

	names, err := nc.source.AllNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch exercise names: %w", err)
	}

	namesJson, err := json.Marshal(names)
	if err != nil {
		return nil, fmt.Errorf("marshal exercise names: %w", err)
	}

	if err := nc.cache.Set([]byte(namesCacheKey), namesJson, int(nc.ttl.Seconds())); err != nil {
		// failed caching is not fatal, next miss will fetch again
		log.Errorf("failed to cache exercise names: %s", err)
	}

	return names, nil
}

// Invalidate drops the snapshot so the next Get refetches, e.g. after
// a new exercise was added to the catalog.
func (nc *NamesCache) Invalidate() {
	nc.cache.Del([]byte(namesCacheKey))
}

func (nc *NamesCache) cached() ([]string, bool) {
	namesJson, err := nc.cache.Get([]byte(namesCacheKey))
	if err != nil {
		return nil, false
	}
	var names []string
	if err := json.Unmarshal(namesJson, &names); err != nil {
		log.Errorf("failed to unmarshal cached exercise names: %s", err)
		return nil, false
	}
	return names, true
}
