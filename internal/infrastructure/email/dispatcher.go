package email

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"

	"github.com/gearguard/gearguard/internal/shared/goroutine"
	"github.com/gearguard/gearguard/internal/shared/logger"
)

// Dispatcher owns the outbound queue and the workers that drain it.
// Callers only ever enqueue; SMTP happens on the workers.
type Dispatcher struct {
	queue      Queue
	sender     Sender
	workers    int
	logger     logger.Interface
	newBackOff func() backoff.BackOff
	pending    atomic.Int64

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
}

func NewDispatcher(queue Queue, sender Sender, workers int, log logger.Interface) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	return &Dispatcher{
		queue:   queue,
		sender:  sender,
		workers: workers,
		logger:  log,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 500 * time.Millisecond
			b.MaxInterval = 30 * time.Second
			return b
		},
	}
}

// Enqueue hands msg to the queue without waiting for delivery.
func (d *Dispatcher) Enqueue(ctx context.Context, msg *Message) error {
	if msg == nil || msg.To == "" {
		return fmt.Errorf("email message has no recipient")
	}
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}

	if err := d.queue.Enqueue(ctx, msg); err != nil {
		if errors.Is(err, ErrQueueFull) {
			d.logger.Warnw("email queue full, dropping message",
				"message_id", msg.ID,
				"kind", msg.Kind,
				"to", msg.To)
		}
		return err
	}
	d.pending.Add(1)

	d.logger.Debugw("email enqueued", "message_id", msg.ID, "kind", msg.Kind, "to", msg.To)
	return nil
}

// Start launches the workers. They stop when ctx is cancelled or Stop is called.
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.running = true

	for i := 0; i < d.workers; i++ {
		id := i
		d.wg.Add(1)
		goroutine.SafeGo(d.logger, fmt.Sprintf("email-worker-%d", id), func() {
			defer d.wg.Done()
			d.work(ctx, id)
		})
	}
	d.logger.Infow("email dispatcher started", "workers", d.workers)
}

// Stop cancels the workers and waits for in-progress deliveries to finish.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return
	}
	d.cancel()
	d.running = false
	d.mu.Unlock()

	d.wg.Wait()
	d.logger.Infow("email dispatcher stopped")
}

// sharedQueue is a queue that other processes may consume from.
type sharedQueue interface {
	// Outstanding counts messages that are queued or being delivered by any consumer.
	Outstanding(ctx context.Context) (int64, error)
}

// Drain waits until every message enqueued through d has been handled, then
// stops the workers. On a shared queue it also returns once the queue holds
// nothing queued or in delivery by any consumer. Whatever is still queued
// when ctx ends stays in the queue.
func (d *Dispatcher) Drain(ctx context.Context) error {
	defer d.Stop()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for !d.drained(ctx) {
		select {
		case <-ctx.Done():
			d.logger.Warnw("email dispatcher stopped before the queue drained", "pending", d.pending.Load())
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}

func (d *Dispatcher) drained(ctx context.Context) bool {
	if d.pending.Load() <= 0 {
		return true
	}
	shared, ok := d.queue.(sharedQueue)
	if !ok {
		return false
	}
	n, err := shared.Outstanding(ctx)
	if err != nil {
		if ctx.Err() == nil {
			d.logger.Warnw("failed to read email backlog while draining", "error", err)
		}
		return false
	}
	return n == 0
}

func (d *Dispatcher) work(ctx context.Context, id int) {
	b := d.newBackOff()
	for {
		msg, err := d.queue.Dequeue(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			delay := b.NextBackOff()
			if delay == backoff.Stop {
				delay = 30 * time.Second
			}
			d.logger.Warnw("email queue unavailable, backing off",
				"worker", id,
				"delay", delay,
				"error", err)

			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
			continue
		}
		b.Reset()

		goroutine.Recover(d.logger, "email-delivery", func() {
			d.deliver(ctx, msg)
		})
	}
}

// deliver sends once. Failed sends are logged and acknowledged, never retried.
// A message picked up during shutdown is left unacknowledged so a durable
// queue can hand it out again.
func (d *Dispatcher) deliver(ctx context.Context, msg *Message) {
	if ctx.Err() != nil {
		return
	}
	defer func() {
		d.pending.Add(-1)
		if err := d.queue.Ack(context.WithoutCancel(ctx), msg); err != nil {
			d.logger.Errorw("failed to ack email", "message_id", msg.ID, "error", err)
		}
	}()

	start := time.Now()
	if err := d.sender.Send(ctx, msg); err != nil {
		d.logger.Errorw("email delivery failed",
			"message_id", msg.ID,
			"kind", msg.Kind,
			"to", msg.To,
			"error", err)
		return
	}

	d.logger.Infow("email delivered",
		"message_id", msg.ID,
		"kind", msg.Kind,
		"to", msg.To,
		"duration", time.Since(start))
}
