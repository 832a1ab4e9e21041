package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"guild-bot/internal/observability"
	"guild-bot/internal/router"
)

var (
	ErrNotStarted   = errors.New("event loop not started")
	ErrShuttingDown = errors.New("event loop is shutting down")
)

// ProcessingResult represents the result of processing an event.
type ProcessingResult struct {
	Event    router.Event
	Reply    router.Reply
	Duration time.Duration
}

// ResultCallback is called after each event is processed.
type ResultCallback func(result ProcessingResult)

// LoopConfig holds configuration for the event loop.
type LoopConfig struct {
	// QueueSize is the size of the event queue buffer.
	// If the queue is full, Submit() will block.
	QueueSize int

	// DrainTimeout is the maximum time to wait for queued events
	// to complete during graceful shutdown.
	DrainTimeout time.Duration

	// OnResult is called after each event is processed (optional).
	OnResult ResultCallback
}

// DefaultLoopConfig returns sensible defaults for the event loop.
func DefaultLoopConfig() LoopConfig {
	return LoopConfig{
		QueueSize:    256,
		DrainTimeout: 10 * time.Second,
	}
}

type job struct {
	ctx   context.Context
	event router.Event
	reply chan router.Reply
	// claimed is set by whichever side gets to the job first: the consumer
	// running it or a Do caller giving up on it.
	claimed *atomic.Bool
}

// loop implements the EventLoop interface with exactly one consumer goroutine.
type loop struct {
	config     LoopConfig
	dispatcher Dispatcher
	logger     *observability.Logger

	jobs chan job
	done chan struct{}

	mu       sync.Mutex
	started  bool
	draining bool
	stopped  bool
	cancelFn context.CancelFunc
}

// NewEventLoop creates the event loop feeding the dispatcher.
func NewEventLoop(config LoopConfig, dispatcher Dispatcher, logger *observability.Logger) EventLoop {
	if config.QueueSize <= 0 {
		config.QueueSize = DefaultLoopConfig().QueueSize
	}
	if config.DrainTimeout <= 0 {
		config.DrainTimeout = DefaultLoopConfig().DrainTimeout
	}

	return &loop{
		config:     config,
		dispatcher: dispatcher,
		logger:     logger,
		jobs:       make(chan job, config.QueueSize),
		done:       make(chan struct{}),
	}
}

func (l *loop) Start(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.started {
		return fmt.Errorf("event loop already started")
	}
	if l.stopped {
		return fmt.Errorf("event loop already stopped")
	}

	loopCtx, cancel := context.WithCancel(ctx)
	l.cancelFn = cancel
	l.started = true

	go l.run(loopCtx)

	l.logger.Info(ctx, "event loop started", observability.Field{Key: "queue_size", Value: l.config.QueueSize})
	return nil
}

func (l *loop) enqueue(ctx context.Context, j job) error {
	l.mu.Lock()
	if !l.started {
		l.mu.Unlock()
		return ErrNotStarted
	}
	if l.draining || l.stopped {
		l.mu.Unlock()
		return ErrShuttingDown
	}
	// Sending under the lock keeps Drain from closing the channel mid-send.
	defer l.mu.Unlock()

	select {
	case l.jobs <- j:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *loop) Submit(ctx context.Context, event router.Event) error {
	return l.enqueue(ctx, job{ctx: context.WithoutCancel(ctx), event: event})
}

func (l *loop) Do(ctx context.Context, event router.Event) (router.Reply, error) {
	reply := make(chan router.Reply, 1)
	claimed := &atomic.Bool{}
	if err := l.enqueue(ctx, job{ctx: ctx, event: event, reply: reply, claimed: claimed}); err != nil {
		return router.Reply{}, err
	}

	select {
	case r := <-reply:
		return r, nil
	case <-ctx.Done():
		if claimed.CompareAndSwap(false, true) {
			return router.Reply{}, ctx.Err()
		}
		// already running; its outcome must reach the caller
		return <-reply, nil
	}
}

// Drain stops accepting new events and waits for queued events to complete.
func (l *loop) Drain(ctx context.Context) error {
	l.mu.Lock()
	if !l.started {
		l.mu.Unlock()
		return ErrNotStarted
	}
	if l.draining {
		l.mu.Unlock()
		return fmt.Errorf("event loop already draining")
	}
	l.draining = true
	pending := len(l.jobs)
	close(l.jobs)
	l.mu.Unlock()

	l.logger.Info(ctx, "draining event loop", observability.Field{Key: "pending", Value: pending})

	drainCtx, cancel := context.WithTimeout(ctx, l.config.DrainTimeout)
	defer cancel()

	select {
	case <-l.done:
		l.logger.Info(ctx, "event loop drained")
		return nil
	case <-drainCtx.Done():
		l.logger.Warn(ctx, "drain timeout exceeded, forcing shutdown")
		l.Stop()
		return fmt.Errorf("drain timeout exceeded")
	}
}

// Stop immediately stops the consumer.
func (l *loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.stopped {
		return
	}
	l.stopped = true

	if l.cancelFn != nil {
		l.cancelFn()
	}
	if !l.draining {
		close(l.jobs)
	}
}

func (l *loop) run(ctx context.Context) {
	defer close(l.done)

	for {
		select {
		case <-ctx.Done():
			l.logger.Info(ctx, "event loop stopping: context cancelled")
			return

		case j, ok := <-l.jobs:
			if !ok {
				l.logger.Info(ctx, "event loop stopping: queue closed")
				return
			}
			l.process(j)
		}
	}
}

// process runs one event. A panicking handler is logged and the loop carries on
// with the next event.
func (l *loop) process(j job) {
	eventCtx := observability.WithFields(j.ctx, observability.Field{Key: "event_type", Value: fmt.Sprintf("%T", j.event)})
	if j.claimed != nil {
		if !j.claimed.CompareAndSwap(false, true) {
			l.logger.Warn(eventCtx, "caller stopped waiting, event skipped")
			return
		}
		eventCtx = context.WithoutCancel(eventCtx)
	}
	start := time.Now()

	var reply router.Reply
	func() {
		defer func() {
			if r := recover(); r != nil {
				l.logger.Error(eventCtx, "event handler panicked", fmt.Errorf("panic: %v", r))
			}
		}()
		reply = l.dispatcher.Dispatch(eventCtx, j.event)
	}()

	if j.reply != nil {
		j.reply <- reply
	}
	if l.config.OnResult != nil {
		l.config.OnResult(ProcessingResult{Event: j.event, Reply: reply, Duration: time.Since(start)})
	}
}
