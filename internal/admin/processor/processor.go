package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"guild-bot/internal/observability"
	"guild-bot/internal/persistence"
	"guild-bot/internal/state"
)

var (
	ErrInvalidCounter = errors.New("counter cannot be adjusted")
	ErrInvalidOp      = errors.New("unknown adjustment operation")
	ErrNegativeAmount = errors.New("amount must not be negative")
	ErrMissingInviter = errors.New("inviter id is required")
)

// Op is an administrative counter adjustment.
type Op string

const (
	OpAdd      Op = "add"
	OpSubtract Op = "subtract"
	OpSet      Op = "set"
	OpClear    Op = "clear"
)

// Config holds admin report settings
type Config struct {
	ReportAccountAge time.Duration
}

// Adjustment describes one override request
type Adjustment struct {
	GuildID   string
	InviterID string
	Counter   state.CounterKind
	Op        Op
	Amount    int
}

// AdjustResult reports the counter after an override
type AdjustResult struct {
	Previous int
	Current  int
	Issued   []state.RewardCode
}

// SuspectMember is one attributed member young enough to appear in the report
type SuspectMember struct {
	MemberID   string        `json:"member_id"`
	AccountAge time.Duration `json:"account_age"`
	JoinedAt   time.Time     `json:"joined_at"`
	Counted    bool          `json:"counted"`
}

type AdminProcessor struct {
	store     CounterStore
	evaluator Evaluator
	persister Persister
	cfg       Config
	now       func() time.Time
	logger    *observability.Logger
}

func New(store CounterStore, evaluator Evaluator, persister Persister, cfg Config, logger *observability.Logger) *AdminProcessor {
	return &AdminProcessor{
		store:     store,
		evaluator: evaluator,
		persister: persister,
		cfg:       cfg,
		now:       time.Now,
		logger:    logger,
	}
}

// adjustable lists the counters an administrator may override. total_joined is
// derived from membership events only.
func adjustable(kind state.CounterKind) bool {
	switch kind {
	case state.CounterValid, state.CounterLeaves, state.CounterSuspect, state.CounterBonus:
		return true
	}
	return false
}

// Adjust applies an override. Results are floored at zero and a change to the
// valid counter re-runs reward evaluation the same way a join does.
func (p *AdminProcessor) Adjust(ctx context.Context, adj Adjustment) (AdjustResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "guild_id", Value: adj.GuildID},
		observability.Field{Key: "inviter_id", Value: adj.InviterID},
		observability.Field{Key: "counter", Value: string(adj.Counter)},
		observability.Field{Key: "op", Value: string(adj.Op)},
	)

	if adj.InviterID == "" {
		return AdjustResult{}, ErrMissingInviter
	}
	if !adjustable(adj.Counter) {
		return AdjustResult{}, fmt.Errorf("%q: %w", adj.Counter, ErrInvalidCounter)
	}
	if adj.Amount < 0 {
		return AdjustResult{}, ErrNegativeAmount
	}

	result := AdjustResult{Previous: p.store.Counter(adj.GuildID, adj.Counter, adj.InviterID)}
	switch adj.Op {
	case OpAdd:
		result.Current = p.store.AddCounter(adj.GuildID, adj.Counter, adj.InviterID, adj.Amount)
	case OpSubtract:
		result.Current = p.store.AddCounter(adj.GuildID, adj.Counter, adj.InviterID, -adj.Amount)
	case OpSet:
		result.Current = p.store.SetCounter(adj.GuildID, adj.Counter, adj.InviterID, adj.Amount)
	case OpClear:
		result.Current = p.store.SetCounter(adj.GuildID, adj.Counter, adj.InviterID, 0)
	default:
		return AdjustResult{}, fmt.Errorf("%q: %w", adj.Op, ErrInvalidOp)
	}

	if adj.Counter == state.CounterValid {
		result.Issued = p.evaluator.Evaluate(ctx, adj.GuildID, adj.InviterID)
	}
	p.persister.ScheduleSave(persistence.ModeImmediate)

	p.logger.Info(ctx, "counter adjusted",
		observability.Field{Key: "previous", Value: result.Previous},
		observability.Field{Key: "current", Value: result.Current},
		observability.Field{Key: "issued", Value: len(result.Issued)},
	)
	return result, nil
}

func (p *AdminProcessor) Stats(ctx context.Context, guildID, inviterID string) state.InviterStats {
	return p.store.Stats(guildID, inviterID)
}

// Leaderboard returns the top inviters by displayed total. A limit of zero or less
// returns everyone.
func (p *AdminProcessor) Leaderboard(ctx context.Context, guildID string, limit int) []state.InviterStats {
	stats := p.store.GuildStats(guildID)
	if limit > 0 && len(stats) > limit {
		stats = stats[:limit]
	}
	if stats == nil {
		return []state.InviterStats{}
	}
	return stats
}

// SuspectReport lists members attributed to the inviter whose accounts are younger
// than the report threshold.
func (p *AdminProcessor) SuspectReport(ctx context.Context, guildID, inviterID string) []SuspectMember {
	now := p.now()
	out := []SuspectMember{}
	for _, a := range p.store.AttributionsByInviter(guildID, inviterID) {
		if a.AccountCreatedAt.IsZero() {
			continue
		}
		age := now.Sub(a.AccountCreatedAt)
		if age >= p.cfg.ReportAccountAge {
			continue
		}
		out = append(out, SuspectMember{
			MemberID:   a.MemberID,
			AccountAge: age,
			JoinedAt:   a.JoinedAt,
			Counted:    a.Counted,
		})
	}
	return out
}
