package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/hadir-app/hadir-api/internal/models"
)

const businessTTL = 5 * time.Minute

// Cache is a best-effort read-through layer over redis for business
// records, which sit on every booking and availability request. A nil
// Cache (redis disabled) is valid and simply misses.
type Cache struct {
	rdb *redis.Client
}

func New(addr, password string, db int) *Cache {
	if addr == "" {
		return nil
	}
	return &Cache{
		rdb: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

func (c *Cache) Ping(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.rdb.Ping(ctx).Err()
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}

func businessKey(id uuid.UUID) string {
	return "business:" + id.String()
}

func (c *Cache) GetBusiness(ctx context.Context, id uuid.UUID) (*models.Business, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, businessKey(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Msg("business cache read failed")
		}
		return nil, false
	}

	var biz models.Business
	if err := json.Unmarshal(raw, &biz); err != nil {
		return nil, false
	}
	return &biz, true
}

func (c *Cache) SetBusiness(ctx context.Context, biz *models.Business) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(biz)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, businessKey(biz.ID), raw, businessTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("business cache write failed")
	}
}

func (c *Cache) InvalidateBusiness(ctx context.Context, id uuid.UUID) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(ctx, businessKey(id)).Err(); err != nil {
		log.Warn().Err(err).Msg("business cache invalidation failed")
	}
}
