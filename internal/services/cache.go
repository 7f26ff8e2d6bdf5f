package services

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/markjakearzadon/urbanoasis-gobackend/internal/models"
)

const (
	cachePrefix     = "properties"
	cacheVersionKey = cachePrefix + ":version"
)

// CachedPropertyStore serves listing reads from Redis. Every write bumps a
// version counter that is part of each key, so stale entries are never read
// again and simply expire. Redis failures fall through to the store.
type CachedPropertyStore struct {
	PropertyStore
	rdb *redis.Client
	ttl time.Duration
}

func NewCachedPropertyStore(store PropertyStore, rdb *redis.Client, ttl time.Duration) *CachedPropertyStore {
	return &CachedPropertyStore{PropertyStore: store, rdb: rdb, ttl: ttl}
}

// NewRedisClient connects to addr and pings it.
func NewRedisClient(ctx context.Context, addr, password string, database int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       database,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, err
	}
	log.Println("Redis connection successfully opened.")
	return rdb, nil
}

func queryCacheKey(version string, parts ...string) string {
	hash := md5.Sum([]byte(strings.Join(parts, ":")))
	return cachePrefix + ":v" + version + ":" + hex.EncodeToString(hash[:])
}

func (c *CachedPropertyStore) key(ctx context.Context, parts ...string) (string, bool) {
	version, err := c.rdb.Get(ctx, cacheVersionKey).Result()
	if errors.Is(err, redis.Nil) {
		version = "0"
	} else if err != nil {
		log.Printf("Cache version lookup failed: %v", err)
		return "", false
	}
	return queryCacheKey(version, parts...), true
}

func (c *CachedPropertyStore) cached(ctx context.Context, load func() ([]models.Property, error), parts ...string) ([]models.Property, error) {
	key, ok := c.key(ctx, parts...)
	if !ok {
		return load()
	}

	data, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var properties []models.Property
		if err := json.Unmarshal(data, &properties); err == nil {
			return properties, nil
		}
		log.Printf("Discarding undecodable cache entry %s", key)
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("Cache read %s failed: %v", key, err)
	}

	properties, err := load()
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(properties); err == nil {
		if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
			log.Printf("Cache write %s failed: %v", key, err)
		}
	}
	return properties, nil
}

func (c *CachedPropertyStore) invalidate(ctx context.Context) {
	if err := c.rdb.Incr(ctx, cacheVersionKey).Err(); err != nil {
		log.Printf("Cache invalidation failed: %v", err)
	}
}

func (c *CachedPropertyStore) List(ctx context.Context) ([]models.Property, error) {
	return c.cached(ctx, func() ([]models.Property, error) { return c.PropertyStore.List(ctx) }, "all")
}

func (c *CachedPropertyStore) ListByAgent(ctx context.Context, agentEmail string) ([]models.Property, error) {
	return c.cached(ctx, func() ([]models.Property, error) { return c.PropertyStore.ListByAgent(ctx, agentEmail) }, "agent", agentEmail)
}

func (c *CachedPropertyStore) ListAdvertised(ctx context.Context) ([]models.Property, error) {
	return c.cached(ctx, func() ([]models.Property, error) { return c.PropertyStore.ListAdvertised(ctx) }, "advertised")
}

func (c *CachedPropertyStore) ListVerified(ctx context.Context) ([]models.Property, error) {
	return c.cached(ctx, func() ([]models.Property, error) { return c.PropertyStore.ListVerified(ctx) }, "verified")
}

func (c *CachedPropertyStore) Search(ctx context.Context, location, sort string) ([]models.Property, error) {
	return c.cached(ctx, func() ([]models.Property, error) { return c.PropertyStore.Search(ctx, location, sort) }, "search", location, sort)
}

func (c *CachedPropertyStore) Insert(ctx context.Context, p *models.Property) (string, error) {
	id, err := c.PropertyStore.Insert(ctx, p)
	if err == nil {
		c.invalidate(ctx)
	}
	return id, err
}

func (c *CachedPropertyStore) Edit(ctx context.Context, id string, edit models.PropertyEdit) (models.UpdateResult, error) {
	return c.afterUpdate(ctx)(c.PropertyStore.Edit(ctx, id, edit))
}

func (c *CachedPropertyStore) SetStatus(ctx context.Context, id, status string) (models.UpdateResult, error) {
	return c.afterUpdate(ctx)(c.PropertyStore.SetStatus(ctx, id, status))
}

func (c *CachedPropertyStore) Advertise(ctx context.Context, id string) (models.UpdateResult, error) {
	return c.afterUpdate(ctx)(c.PropertyStore.Advertise(ctx, id))
}

func (c *CachedPropertyStore) MarkBought(ctx context.Context, id string, info models.PaymentInfo) (models.UpdateResult, error) {
	return c.afterUpdate(ctx)(c.PropertyStore.MarkBought(ctx, id, info))
}

func (c *CachedPropertyStore) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	return c.afterDelete(ctx)(c.PropertyStore.Delete(ctx, id))
}

func (c *CachedPropertyStore) DeleteByAgent(ctx context.Context, agentEmail string) (models.DeleteResult, error) {
	return c.afterDelete(ctx)(c.PropertyStore.DeleteByAgent(ctx, agentEmail))
}

func (c *CachedPropertyStore) afterUpdate(ctx context.Context) func(models.UpdateResult, error) (models.UpdateResult, error) {
	return func(res models.UpdateResult, err error) (models.UpdateResult, error) {
		if err == nil && res.ModifiedCount > 0 {
			c.invalidate(ctx)
		}
		return res, err
	}
}

func (c *CachedPropertyStore) afterDelete(ctx context.Context) func(models.DeleteResult, error) (models.DeleteResult, error) {
	return func(res models.DeleteResult, err error) (models.DeleteResult, error) {
		if err == nil && res.DeletedCount > 0 {
			c.invalidate(ctx)
		}
		return res, err
	}
}
