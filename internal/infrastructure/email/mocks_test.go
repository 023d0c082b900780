package email

import (
	"context"
	"sync"
)

type mockSender struct {
	mu       sync.Mutex
	SendFunc func(ctx context.Context, msg *Message) error
	sent     []*Message
}

func (m *mockSender) Send(ctx context.Context, msg *Message) error {
	m.mu.Lock()
	m.sent = append(m.sent, msg)
	m.mu.Unlock()
	if m.SendFunc != nil {
		return m.SendFunc(ctx, msg)
	}
	return nil
}

func (m *mockSender) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

type mockQueue struct {
	EnqueueFunc func(ctx context.Context, msg *Message) error
	DequeueFunc func(ctx context.Context) (*Message, error)
	AckFunc     func(ctx context.Context, msg *Message) error
}

func (m *mockQueue) Enqueue(ctx context.Context, msg *Message) error {
	if m.EnqueueFunc != nil {
		return m.EnqueueFunc(ctx, msg)
	}
	return nil
}

func (m *mockQueue) Dequeue(ctx context.Context) (*Message, error) {
	if m.DequeueFunc != nil {
		return m.DequeueFunc(ctx)
	}
	<-ctx.Done()
	return nil, ctx.Err()
}

func (m *mockQueue) Ack(ctx context.Context, msg *Message) error {
	if m.AckFunc != nil {
		return m.AckFunc(ctx, msg)
	}
	return nil
}

func (m *mockQueue) Len(context.Context) (int64, error) { return 0, nil }
