package cache

import (
	"context"

	"github.com/MikeRez0/esimhub/internal/adapter/config"
	"github.com/MikeRez0/esimhub/internal/core/domain"
	"github.com/MikeRez0/esimhub/internal/core/port"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
)

// BundleCache keeps recent catalog quotes in an expiring LRU in front of a BundleCatalog.
// Lookup errors are never cached.
type BundleCache struct {
	next   port.BundleCatalog
	lru    *expirable.LRU[string, domain.Bundle]
	logger *zap.Logger
}

func NewBundleCache(next port.BundleCatalog, cfg *config.Catalog, logger *zap.Logger) (*BundleCache, error) {
	size := cfg.CacheSize
	if size <= 0 {
		size = 512
	}
	return &BundleCache{
		next:   next,
		lru:    expirable.NewLRU[string, domain.Bundle](size, nil, cfg.CacheTTL),
		logger: logger,
	}, nil
}

func (c *BundleCache) GetBundleDetails(ctx context.Context, bundleCode string) (*domain.Bundle, error) {
	if b, ok := c.lru.Get(bundleCode); ok {
		c.logger.Debug("bundle cache hit", zap.String("bundle", bundleCode))
		return &b, nil
	}

	b, err := c.next.GetBundleDetails(ctx, bundleCode)
	if err != nil {
		return nil, err
	}
	c.lru.Add(bundleCode, *b)

	out := *b
	return &out, nil
}

func (c *BundleCache) Invalidate(bundleCode string) {
	c.lru.Remove(bundleCode)
}

func (c *BundleCache) Purge() {
	c.lru.Purge()
}

func (c *BundleCache) Len() int {
	return c.lru.Len()
}

var _ port.BundleCatalog = (*BundleCache)(nil)
