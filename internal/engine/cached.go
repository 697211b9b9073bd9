package engine

import (
	"context"
	"encoding/json"
	"time"

	"github.com/muratoffalex/ytgrab/internal/cache"
	"github.com/muratoffalex/ytgrab/internal/logger"
)

const probeCacheNamespace = "probe"

// CachedEngine memoizes Probe results per URL. Fetch is never cached.
type CachedEngine struct {
	next   Engine
	cache  cache.Cache
	ttl    time.Duration
	logger logger.Logger
}

func NewCachedEngine(next Engine, c cache.Cache, ttl time.Duration, l logger.Logger) Engine {
	if ttl <= 0 {
		return next
	}
	return &CachedEngine{
		next:   next,
		cache:  c,
		ttl:    ttl,
		logger: l,
	}
}

func (e *CachedEngine) Probe(ctx context.Context, url string) (*MediaInfo, error) {
	key := cache.Key(probeCacheNamespace, url)
	if data, ok := e.cache.Get(key); ok {
		var info MediaInfo
		err := json.Unmarshal(data, &info)
		if err == nil {
			e.logger.WithField(logger.FieldURL, url).Debug("Probe cache hit")
			return &info, nil
		}
		e.logger.WithError(err).Debug("Dropping unreadable probe cache entry")
		if err := e.cache.Delete(key); err != nil {
			e.logger.WithError(err).Debug("Failed to drop probe cache entry")
		}
	}

	info, err := e.next.Probe(ctx, url)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(info); err == nil {
		if err := e.cache.Set(key, data, e.ttl); err != nil {
			e.logger.WithError(err).Warn("Failed to cache probe result")
		}
	}
	return info, nil
}

func (e *CachedEngine) Fetch(ctx context.Context, req FetchRequest) (*FetchResult, error) {
	return e.next.Fetch(ctx, req)
}
