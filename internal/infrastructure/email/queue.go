package email

import (
	"context"
	"errors"
)

var ErrQueueFull = errors.New("email queue is full")

// Queue decouples rendering from SMTP delivery.
type Queue interface {
	// Enqueue never waits for capacity.
	Enqueue(ctx context.Context, msg *Message) error
	// Dequeue blocks until a message is available or ctx is done.
	Dequeue(ctx context.Context) (*Message, error)
	// Ack marks a dequeued message as finished, whether or not it was delivered.
	Ack(ctx context.Context, msg *Message) error
	Len(ctx context.Context) (int64, error)
}

// MemoryQueue is a bounded in-process queue. Messages are lost on restart.
type MemoryQueue struct {
	ch chan *Message
}

func NewMemoryQueue(size int) *MemoryQueue {
	if size <= 0 {
		size = 256
	}
	return &MemoryQueue{ch: make(chan *Message, size)}
}

func (q *MemoryQueue) Enqueue(ctx context.Context, msg *Message) error {
	select {
	case q.ch <- msg:
		return nil
	default:
		return ErrQueueFull
	}
}

func (q *MemoryQueue) Dequeue(ctx context.Context) (*Message, error) {
	select {
	case msg := <-q.ch:
		return msg, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (q *MemoryQueue) Ack(context.Context, *Message) error { return nil }

func (q *MemoryQueue) Len(context.Context) (int64, error) { return int64(len(q.ch)), nil }
