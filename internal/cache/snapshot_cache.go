package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"raffle-tracker/internal/model"
	"time"

	"github.com/redis/go-redis/v9"
)

// SnapshotCache 顯示用的短效快取，只給讀取頁面使用；登記銷售一律重新讀帳本
type SnapshotCache interface {
	// 讀取：命中時回傳 true
	Get(ctx context.Context) ([]model.LedgerRow, bool, error)
	// 寫入：帶 TTL
	Set(ctx context.Context, rows []model.LedgerRow) error
	// 失效：每次成功登記後呼叫
	Invalidate(ctx context.Context) error
}

type RedisSnapshotCacheImpl struct {
	client *redis.Client
	sheet  string
	ttl    time.Duration
}

func NewRedisSnapshotCache(client *redis.Client, sheet string, ttl time.Duration) SnapshotCache {
	return &RedisSnapshotCacheImpl{
		client: client,
		sheet:  sheet,
		ttl:    ttl,
	}
}

// 快照 key
func (c *RedisSnapshotCacheImpl) getSnapshotKey() string {
	return SnapshotKey(c.sheet)
}

func SnapshotKey(sheet string) string {
	return fmt.Sprintf("ledger:%s:snapshot", sheet)
}

func (c *RedisSnapshotCacheImpl) Get(ctx context.Context) ([]model.LedgerRow, bool, error) {
	data, err := c.client.Get(ctx, c.getSnapshotKey()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var rows []model.LedgerRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, false, fmt.Errorf("invalid cached snapshot: %w", err)
	}
	return rows, true, nil
}

func (c *RedisSnapshotCacheImpl) Set(ctx context.Context, rows []model.LedgerRow) error {
	if c.ttl <= 0 {
		return nil
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	return c.client.Set(ctx, c.getSnapshotKey(), data, c.ttl).Err()
}

func (c *RedisSnapshotCacheImpl) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.getSnapshotKey()).Err()
}

// NoopSnapshotCache 沒有設定 Redis 時使用：永遠 miss
type NoopSnapshotCache struct{}

func NewNoopSnapshotCache() SnapshotCache {
	return NoopSnapshotCache{}
}

func (NoopSnapshotCache) Get(ctx context.Context) ([]model.LedgerRow, bool, error) {
	return nil, false, nil
}

func (NoopSnapshotCache) Set(ctx context.Context, rows []model.LedgerRow) error {
	return nil
}

func (NoopSnapshotCache) Invalidate(ctx context.Context) error {
	return nil
}
