package redis

import (
	"context"
	"time"

	"github.com/LavaJover/shvark-catalog-service/internal/domain"
	goredis "github.com/redis/go-redis/v9"
)

const bankListKey = "catalog:banks:list"

type bankCacheEntry struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Logo      *string   `json:"logo,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// BankListCache keeps the ordered bank list under a single key.
type BankListCache struct {
	cache *ViewCache[[]bankCacheEntry]
}

func NewBankListCache(client *goredis.Client, ttl time.Duration) *BankListCache {
	return &BankListCache{
		cache: NewViewCache[[]bankCacheEntry](client, ttl),
	}
}

func (c *BankListCache) GetBanks(ctx context.Context) ([]*domain.Bank, bool) {
	entries, ok := c.cache.Get(ctx, bankListKey)
	if !ok {
		return nil, false
	}
	banks := make([]*domain.Bank, len(*entries))
	for i, e := range *entries {
		banks[i] = &domain.Bank{ID: e.ID, Name: e.Name, Logo: e.Logo, CreatedAt: e.CreatedAt}
	}
	return banks, true
}

func (c *BankListCache) SetBanks(ctx context.Context, banks []*domain.Bank) {
	entries := make([]bankCacheEntry, len(banks))
	for i, b := range banks {
		entries[i] = bankCacheEntry{ID: b.ID, Name: b.Name, Logo: b.Logo, CreatedAt: b.CreatedAt}
	}
	c.cache.Set(ctx, bankListKey, &entries)
}

func (c *BankListCache) Invalidate(ctx context.Context) {
	c.cache.Delete(ctx, bankListKey)
}

// NoopBankCache is used when the Redis cache is disabled.
type NoopBankCache struct{}

func (NoopBankCache) GetBanks(context.Context) ([]*domain.Bank, bool) { return nil, false }
func (NoopBankCache) SetBanks(context.Context, []*domain.Bank)        {}
func (NoopBankCache) Invalidate(context.Context)                      {}
