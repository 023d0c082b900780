package email

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearguard/gearguard/internal/shared/logger"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestMemoryQueue_DropsWhenFull(t *testing.T) {
	q := NewMemoryQueue(1)
	ctx := context.Background()

	require.NoError(t, q.Enqueue(ctx, &Message{ID: "1", To: "a@example.com"}))
	assert.ErrorIs(t, q.Enqueue(ctx, &Message{ID: "2", To: "b@example.com"}), ErrQueueFull)

	n, err := q.Len(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	msg, err := q.Dequeue(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1", msg.ID)
}

func TestMemoryQueue_DequeueHonorsContext(t *testing.T) {
	q := NewMemoryQueue(1)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := q.Dequeue(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRedisQueue_FIFOAndAck(t *testing.T) {
	mr, client := setupTestRedis(t)
	q := NewRedisQueue(client, "gearguard:email:test", logger.NewNopLogger())
	ctx := context.Background()

	require.NoError(t, q.Enqueue(ctx, &Message{ID: "first", To: "a@example.com", Subject: "one"}))
	require.NoError(t, q.Enqueue(ctx, &Message{ID: "second", To: "b@example.com", Subject: "two"}))

	n, err := q.Len(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	msg, err := q.Dequeue(ctx)
	require.NoError(t, err)
	assert.Equal(t, "first", msg.ID)
	assert.Equal(t, "one", msg.Subject)

	inFlight, err := mr.List("gearguard:email:test:processing")
	require.NoError(t, err)
	assert.Len(t, inFlight, 1)

	require.NoError(t, q.Ack(ctx, msg))
	assert.False(t, mr.Exists("gearguard:email:test:processing"))
}

func TestRedisQueue_RequeueInFlight(t *testing.T) {
	_, client := setupTestRedis(t)
	q := NewRedisQueue(client, "gearguard:email:test", logger.NewNopLogger())
	ctx := context.Background()

	require.NoError(t, q.Enqueue(ctx, &Message{ID: "crashed", To: "a@example.com"}))
	require.NoError(t, q.Enqueue(ctx, &Message{ID: "waiting", To: "b@example.com"}))

	_, err := q.Dequeue(ctx)
	require.NoError(t, err)

	moved, err := q.RequeueInFlight(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, moved)

	msg, err := q.Dequeue(ctx)
	require.NoError(t, err)
	assert.Equal(t, "crashed", msg.ID)
}

func TestRedisQueue_SkipsMalformedPayload(t *testing.T) {
	_, client := setupTestRedis(t)
	q := NewRedisQueue(client, "gearguard:email:test", logger.NewNopLogger())
	ctx := context.Background()

	require.NoError(t, client.LPush(ctx, "gearguard:email:test", "{not json").Err())
	require.NoError(t, q.Enqueue(ctx, &Message{ID: "good", To: "a@example.com"}))

	msg, err := q.Dequeue(ctx)
	require.NoError(t, err)
	assert.Equal(t, "good", msg.ID)

	inFlight, err := client.LLen(ctx, "gearguard:email:test:processing").Result()
	require.NoError(t, err)
	assert.EqualValues(t, 1, inFlight)
}

func TestRedisQueue_OutstandingCountsQueuedAndInFlight(t *testing.T) {
	_, client := setupTestRedis(t)
	q := NewRedisQueue(client, "gearguard:email:test", logger.NewNopLogger())
	ctx := context.Background()

	require.NoError(t, q.Enqueue(ctx, &Message{ID: "a", To: "a@example.com"}))
	require.NoError(t, q.Enqueue(ctx, &Message{ID: "b", To: "b@example.com"}))

	n, err := q.Outstanding(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	msg, err := q.Dequeue(ctx)
	require.NoError(t, err)
	n, err = q.Outstanding(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n, "a dequeued message counts until it is acked")

	require.NoError(t, q.Ack(ctx, msg))
	n, err = q.Outstanding(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
