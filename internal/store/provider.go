package store

import (
	"context"
	"time"

	"sharapu/internal/model"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// ContentProvider is what the presentation shell reads items from.
// It never fails: a broken source yields an empty list.
type ContentProvider interface {
	AllItems(ctx context.Context) []model.ContentItem
}

// ItemLoader is the fallible source behind a provider (Store implements it).
type ItemLoader interface {
	LoadItems(ctx context.Context) ([]model.ContentItem, error)
}

// Provider adapts an ItemLoader, logging and swallowing load errors.
type Provider struct {
	loader ItemLoader
	log    *zap.Logger
}

var _ ContentProvider = (*Provider)(nil)

func NewProvider(loader ItemLoader, log *zap.Logger) *Provider {
	if log == nil {
		log = zap.NewNop()
	}
	return &Provider{loader: loader, log: log.Named("content")}
}

func (p *Provider) AllItems(ctx context.Context) []model.ContentItem {
	items, err := p.loader.LoadItems(ctx)
	if err != nil {
		p.log.Warn("content store unavailable; showing empty list", zap.Error(err))
		return []model.ContentItem{}
	}
	p.log.Debug("content loaded", zap.Int("items", len(items)))
	return items
}

const allItemsKey = "all"

// CachedProvider memoizes AllItems for a TTL.
type CachedProvider struct {
	next  ContentProvider
	cache *gocache.Cache
	ttl   time.Duration
}

var _ ContentProvider = (*CachedProvider)(nil)

// NewCachedProvider caches next for ttl. A non-positive ttl disables caching.
func NewCachedProvider(next ContentProvider, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		next:  next,
		cache: gocache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

func (c *CachedProvider) AllItems(ctx context.Context) []model.ContentItem {
	if c.ttl <= 0 {
		return c.next.AllItems(ctx)
	}
	if v, ok := c.cache.Get(allItemsKey); ok {
		return cloneItems(v.([]model.ContentItem))
	}
	items := c.next.AllItems(ctx)
	// Empty results usually mean a failed load; retry next time.
	if len(items) > 0 {
		c.cache.SetDefault(allItemsKey, cloneItems(items))
	}
	return items
}

// Invalidate drops the cached list (e.g. after the store file changed).
func (c *CachedProvider) Invalidate() {
	c.cache.Delete(allItemsKey)
}

func cloneItems(in []model.ContentItem) []model.ContentItem {
	out := make([]model.ContentItem, len(in))
	for i, it := range in {
		it.Tags = it.Tags.Clone()
		if it.PublishedAt != nil {
			t := *it.PublishedAt
			it.PublishedAt = &t
		}
		out[i] = it
	}
	return out
}
