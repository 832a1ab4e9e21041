package workers

import (
	"context"

	"guild-bot/internal/router"
)

// Dispatcher handles a single event. The loop never calls it concurrently.
type Dispatcher interface {
	Dispatch(ctx context.Context, event router.Event) router.Reply
}

// EventLoop defines the single consumer that serializes all state mutations.
type EventLoop interface {
	// Start launches the consumer goroutine.
	Start(ctx context.Context) error

	// Submit queues an event without waiting for it to run.
	// Blocks if the queue is full.
	Submit(ctx context.Context, event router.Event) error

	// Do queues an event and waits for its reply.
	Do(ctx context.Context, event router.Event) (router.Reply, error)

	// Drain stops accepting new events and waits for queued events to complete.
	Drain(ctx context.Context) error

	// Stop immediately stops the consumer.
	Stop()
}
