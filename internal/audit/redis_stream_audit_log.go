package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"raffle-tracker/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	StreamKeyPrefix  = "audit"
	defaultMaxLength = 10000
)

// RedisStreamAuditLogImpl 稽核紀錄寫入 Redis Stream（XADD，保留最近 MaxLen 筆）
type RedisStreamAuditLogImpl struct {
	client    *redis.Client
	streamKey string
	maxLen    int64
}

func NewRedisStreamAuditLog(client *redis.Client, sheet string, maxLen int64) AuditLog {
	if maxLen <= 0 {
		maxLen = defaultMaxLength
	}
	return &RedisStreamAuditLogImpl{
		client:    client,
		streamKey: StreamKey(sheet),
		maxLen:    maxLen,
	}
}

func StreamKey(sheet string) string {
	return fmt.Sprintf("%s:%s:stream", StreamKeyPrefix, sheet)
}

func (l *RedisStreamAuditLogImpl) Record(ctx context.Context, event Event) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}
	_, err = l.client.XAdd(ctx, &redis.XAddArgs{
		Stream: l.streamKey,
		MaxLen: l.maxLen,
		Approx: true,
		ID:     "*",
		Values: map[string]interface{}{"event": string(eventJSON)},
	}).Result()
	if err != nil {
		return fmt.Errorf("xadd: %w", err)
	}
	return nil
}

func (l *RedisStreamAuditLogImpl) Recent(ctx context.Context, n int) ([]Event, error) {
	if n <= 0 {
		n = 100
	}
	msgs, err := l.client.XRevRangeN(ctx, l.streamKey, "+", "-", int64(n)).Result()
	if err != nil {
		return nil, fmt.Errorf("xrevrange: %w", err)
	}

	events := make([]Event, 0, len(msgs))
	for _, msg := range msgs {
		raw, ok := msg.Values["event"].(string)
		if !ok {
			logger.WithComponent("audit").Warn("invalid message: missing event field", zap.String("message_id", msg.ID))
			continue
		}
		var event Event
		if err := json.Unmarshal([]byte(raw), &event); err != nil {
			logger.WithComponent("audit").Warn("unmarshal audit event failed", zap.String("message_id", msg.ID), zap.Error(err))
			continue
		}
		events = append(events, event)
	}
	return events, nil
}
