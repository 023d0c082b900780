package email

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gearguard/gearguard/internal/shared/logger"
)

// RedisQueue keeps pending messages in a list and moves each one to a
// processing list while it is being delivered, so a crashed worker's
// message survives until RequeueInFlight runs. Delivery is at-least-once.
type RedisQueue struct {
	client        *redis.Client
	pendingKey    string
	processingKey string
	blockTimeout  time.Duration
	logger        logger.Interface
}

func NewRedisQueue(client *redis.Client, key string, log logger.Interface) *RedisQueue {
	return &RedisQueue{
		client:        client,
		pendingKey:    key,
		processingKey: key + ":processing",
		blockTimeout:  time.Second,
		logger:        log,
	}
}

func (q *RedisQueue) Enqueue(ctx context.Context, msg *Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode email: %w", err)
	}
	if err := q.client.LPush(ctx, q.pendingKey, data).Err(); err != nil {
		return fmt.Errorf("failed to enqueue email: %w", err)
	}
	return nil
}

func (q *RedisQueue) Dequeue(ctx context.Context) (*Message, error) {
	for {
		raw, err := q.client.BLMove(ctx, q.pendingKey, q.processingKey, "RIGHT", "LEFT", q.blockTimeout).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, fmt.Errorf("failed to dequeue email: %w", err)
		}

		var msg Message
		if err := json.Unmarshal([]byte(raw), &msg); err != nil {
			q.logger.Errorw("dropping malformed email payload", "error", err, "payload_len", len(raw))
			q.client.LRem(ctx, q.processingKey, 1, raw)
			continue
		}
		msg.raw = raw
		return &msg, nil
	}
}

func (q *RedisQueue) Ack(ctx context.Context, msg *Message) error {
	if msg.raw == "" {
		return nil
	}
	if err := q.client.LRem(ctx, q.processingKey, 1, msg.raw).Err(); err != nil {
		return fmt.Errorf("failed to ack email %s: %w", msg.ID, err)
	}
	return nil
}

func (q *RedisQueue) Len(ctx context.Context) (int64, error) {
	n, err := q.client.LLen(ctx, q.pendingKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to read email queue length: %w", err)
	}
	return n, nil
}

// Outstanding counts pending and processing messages in one MULTI, so a
// message moving between the two lists is never missed.
func (q *RedisQueue) Outstanding(ctx context.Context) (int64, error) {
	var pending, processing *redis.IntCmd
	_, err := q.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pending = pipe.LLen(ctx, q.pendingKey)
		processing = pipe.LLen(ctx, q.processingKey)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to read email backlog: %w", err)
	}
	return pending.Val() + processing.Val(), nil
}

// RequeueInFlight moves messages left in the processing list by a previous
// process back to the head of the pending list. Call it before starting workers.
func (q *RedisQueue) RequeueInFlight(ctx context.Context) (int, error) {
	moved := 0
	for {
		err := q.client.LMove(ctx, q.processingKey, q.pendingKey, "RIGHT", "RIGHT").Err()
		if errors.Is(err, redis.Nil) {
			return moved, nil
		}
		if err != nil {
			return moved, fmt.Errorf("failed to requeue in-flight email: %w", err)
		}
		moved++
	}
}
