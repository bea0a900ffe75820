// internal/service/ordering/infrastructure/redis_cache.go
package infrastructure

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"algashop/internal/service/ordering/domain"
)

// RedisOrderCache 是 OrderCache 端口的 Redis 实现。缓存是尽力而为的：
// 任何读写失败都只记录日志并回退到仓储，绝不影响正确性。
// 缓存值是订单的行模型 JSON，读出时经拆装器重建聚合。
type RedisOrderCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisOrderCache(client *redis.Client, ttl time.Duration) *RedisOrderCache {
	return &RedisOrderCache{client: client, ttl: ttl}
}

func (c *RedisOrderCache) Get(ctx context.Context, id domain.OrderID) (*domain.Order, bool) {
	payload, err := c.client.Get(ctx, orderCacheKey(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Str("order_id", id.String()).Msg("order cache read failed")
		}
		return nil, false
	}
	var model OrderModel
	if err := json.Unmarshal(payload, &model); err != nil {
		log.Warn().Err(err).Str("order_id", id.String()).Msg("order cache entry corrupt")
		return nil, false
	}
	order, err := DisassembleOrder(model)
	if err != nil {
		log.Warn().Err(err).Str("order_id", id.String()).Msg("order cache entry invalid")
		return nil, false
	}
	return order, true
}

func (c *RedisOrderCache) Set(ctx context.Context, order *domain.Order) {
	payload, err := json.Marshal(AssembleOrderModel(order))
	if err != nil {
		log.Warn().Err(err).Str("order_id", order.ID().String()).Msg("order cache marshal failed")
		return
	}
	if err := c.client.Set(ctx, orderCacheKey(order.ID()), payload, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("order_id", order.ID().String()).Msg("order cache write failed")
	}
}

func orderCacheKey(id domain.OrderID) string {
	return "ordering:order:" + id.String()
}

// NopOrderCache 不缓存任何订单，用于测试与缓存未配置的场景。
type NopOrderCache struct{}

func (NopOrderCache) Get(context.Context, domain.OrderID) (*domain.Order, bool) { return nil, false }
func (NopOrderCache) Set(context.Context, *domain.Order)                        {}
