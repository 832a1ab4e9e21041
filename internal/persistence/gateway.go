package persistence

import (
	"context"
	"fmt"
	"sync"
	"time"

	"guild-bot/internal/observability"
	"guild-bot/internal/state"
)

// Mode selects the debounce delay of a scheduled save.
type Mode int

const (
	// ModeImmediate is used after counter and reward mutations.
	ModeImmediate Mode = iota
	// ModeBatched is used after low-stakes UI bookkeeping.
	ModeBatched
)

const flushTimeout = 10 * time.Second

// Config holds gateway settings.
type Config struct {
	Identity       string
	ImmediateDelay time.Duration
	BatchedDelay   time.Duration
}

// RestoreResult describes what startup recovered.
type RestoreResult struct {
	FirstRun bool
	Problems int
	Replayed int
	Skipped  int
}

// Gateway mirrors the state store into a remote document store. Scheduled saves
// share one pending timer; a new request can only pull its deadline earlier.
type Gateway struct {
	store   DocumentStore
	state   StateStore
	journal IntentLog
	cfg     Config
	logger  *observability.Logger

	mu       sync.Mutex
	timer    *time.Timer
	deadline time.Time
	gen      uint64
	closed   bool

	saveMu sync.Mutex
}

// New creates a gateway. journal may be nil.
func New(store DocumentStore, st StateStore, journal IntentLog, cfg Config, logger *observability.Logger) *Gateway {
	if cfg.ImmediateDelay <= 0 {
		cfg.ImmediateDelay = 100 * time.Millisecond
	}
	if cfg.BatchedDelay <= 0 {
		cfg.BatchedDelay = 2 * time.Second
	}
	return &Gateway{
		store:   store,
		state:   st,
		journal: journal,
		cfg:     cfg,
		logger:  logger,
	}
}

// Restore loads the saved document into the state store and replays any journaled
// intents it does not cover yet.
func (g *Gateway) Restore(ctx context.Context) (RestoreResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "identity", Value: g.cfg.Identity})

	var result RestoreResult
	raw, err := g.store.LoadDocument(ctx, g.cfg.Identity)
	if err != nil {
		return result, fmt.Errorf("load document: %w", err)
	}

	doc := state.NewDocument()
	if raw == nil {
		result.FirstRun = true
		g.logger.Info(ctx, "no saved document found, starting with empty state")
	} else {
		var problems []error
		doc, problems, err = state.DecodeDocument(raw)
		if err != nil {
			// an unreadable document is treated like an empty one
			g.logger.Error(ctx, "saved document is unreadable, starting with empty state", err)
			doc = state.NewDocument()
		}
		for _, p := range problems {
			g.logger.WarnWithError(ctx, "dropped part of saved document", p)
		}
		result.Problems = len(problems)
	}
	g.state.Hydrate(doc)

	if g.journal != nil {
		if err := g.journal.EnsureSequence(doc.IntentSeq); err != nil {
			return result, fmt.Errorf("align intent log: %w", err)
		}
		intents, skipped, err := g.journal.Since(doc.IntentSeq)
		if err != nil {
			return result, fmt.Errorf("read intent log: %w", err)
		}
		result.Skipped = skipped
		result.Replayed = g.state.Replay(intents)
	}

	g.logger.Info(ctx, "state restored",
		observability.Field{Key: "first_run", Value: result.FirstRun},
		observability.Field{Key: "problems", Value: result.Problems},
		observability.Field{Key: "replayed_intents", Value: result.Replayed},
		observability.Field{Key: "skipped_intents", Value: result.Skipped},
	)

	if result.Replayed > 0 {
		g.ScheduleSave(ModeImmediate)
	}
	return result, nil
}

// Save writes the whole state synchronously and acknowledges the journal up to the
// saved sequence. Failures are logged and returned, never retried.
func (g *Gateway) Save(ctx context.Context) error {
	g.saveMu.Lock()
	defer g.saveMu.Unlock()

	ctx = observability.WithFields(ctx, observability.Field{Key: "identity", Value: g.cfg.Identity})

	payload, seq, err := g.state.Snapshot()
	if err != nil {
		g.logger.Error(ctx, "failed to snapshot state", err)
		return err
	}
	if err := g.store.SaveDocument(ctx, g.cfg.Identity, payload); err != nil {
		g.logger.Error(ctx, "failed to save document", err)
		return err
	}

	if g.journal != nil && seq > 0 {
		if _, err := g.journal.Ack(seq); err != nil {
			g.logger.Error(ctx, "failed to acknowledge intent log", err)
		}
	}
	g.logger.Debug(ctx, "document saved",
		observability.Field{Key: "bytes", Value: len(payload)},
		observability.Field{Key: "intent_seq", Value: seq},
	)
	return nil
}

// ScheduleSave requests a debounced save.
func (g *Gateway) ScheduleSave(mode Mode) {
	delay := g.cfg.BatchedDelay
	if mode == ModeImmediate {
		delay = g.cfg.ImmediateDelay
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return
	}
	deadline := time.Now().Add(delay)
	if g.timer != nil {
		if !deadline.Before(g.deadline) {
			return
		}
		g.timer.Stop()
	}

	g.gen++
	gen := g.gen
	g.deadline = deadline
	g.timer = time.AfterFunc(delay, func() { g.flush(gen) })
}

// Pending reports whether a scheduled save has not fired yet.
func (g *Gateway) Pending() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.timer != nil
}

func (g *Gateway) flush(gen uint64) {
	g.mu.Lock()
	if g.closed || gen != g.gen {
		g.mu.Unlock()
		return
	}
	g.timer = nil
	g.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	_ = g.Save(ctx)
}

// Shutdown cancels any pending save and performs a final synchronous one.
func (g *Gateway) Shutdown(ctx context.Context) error {
	g.mu.Lock()
	g.closed = true
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
	g.mu.Unlock()

	return g.Save(ctx)
}

// DeleteCode removes one code from the remote document.
func (g *Gateway) DeleteCode(ctx context.Context, token string) error {
	if err := g.store.DeleteCode(ctx, g.cfg.Identity, token); err != nil {
		g.logger.Error(ctx, "failed to delete code from document", err)
		return err
	}
	return nil
}

// MarkCodeUsed marks one code used in the remote document. When the narrow update
// fails, for example because the code was never flushed, a full save is scheduled.
func (g *Gateway) MarkCodeUsed(ctx context.Context, token string, usedAt time.Time) error {
	if err := g.store.MarkCodeUsed(ctx, g.cfg.Identity, token, usedAt); err != nil {
		g.logger.WarnWithError(ctx, "narrow code update failed, scheduling full save", err)
		g.ScheduleSave(ModeImmediate)
		return err
	}
	return nil
}

// AppendWeeklySale records one closed sale.
func (g *Gateway) AppendWeeklySale(ctx context.Context, sale state.WeeklySale) error {
	if err := g.store.AppendWeeklySale(ctx, g.cfg.Identity, sale); err != nil {
		g.logger.Error(ctx, "failed to append weekly sale", err)
		return err
	}
	return nil
}
