/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package cache provides a read-through TTL cache in front of an item source.
package cache

import (
	"context"
	"slices"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/suparena/multitype/internal/log"
	"github.com/suparena/multitype/itemsource"
)

const DefaultExpiration = 10 * time.Minute
const DefaultCleanupInterval = 30 * time.Minute

// Source memoises the items of the wrapped source under key for ttl.
type Source struct {
	next  itemsource.Source
	key   string
	ttl   time.Duration
	cache *gocache.Cache
}

// New wraps next. A non-positive ttl uses DefaultExpiration.
func New(next itemsource.Source, key string, ttl time.Duration) *Source {
	if ttl <= 0 {
		ttl = DefaultExpiration
	}
	return &Source{
		next:  next,
		key:   key,
		ttl:   ttl,
		cache: gocache.New(ttl, DefaultCleanupInterval),
	}
}

// Load returns the cached items, loading them from the wrapped source on a miss.
// Failed loads are not cached.
func (s *Source) Load(ctx context.Context) ([]any, error) {
	if value, found := s.cache.Get(s.key); found {
		if items, ok := value.([]any); ok {
			log.Debug(log.CatSource, "cache hit", "key", s.key)
			return slices.Clone(items), nil
		}
		log.Error(log.CatSource, "wrong type assertion when getting value", "key", s.key)
	}

	items, err := s.next.Load(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(s.key, slices.Clone(items), s.ttl)
	return items, nil
}

// Invalidate drops the cached items.
func (s *Source) Invalidate() {
	s.cache.Delete(s.key)
}
