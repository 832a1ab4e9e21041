package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"time"

	"guild-bot/internal/persistence"
	"guild-bot/internal/ratelimit"
	"guild-bot/internal/state"
)

// InviteStore defines the state operations required by InviteProcessor
type InviteStore interface {
	InviteLinks(guildID string) map[string]state.InviteLink
	ReplaceInviteLinks(guildID string, links []state.InviteLink)
	UpsertInviteLink(guildID string, link state.InviteLink)
	RemoveInviteLink(guildID, code string)
	AddCounter(guildID string, kind state.CounterKind, inviterID string, delta int) int
	Attribution(guildID, memberID string) (state.Attribution, bool)
	PutAttribution(guildID, memberID string, a state.Attribution)
	DeleteAttribution(guildID, memberID string)
	PutCompensation(guildID, memberID, inviterID string, leftAt time.Time)
	TakeCompensation(guildID, memberID string) (state.Compensation, bool)
	WasCredited(guildID, memberID, inviterID string) bool
	MarkCredited(guildID, memberID, inviterID string)
}

// InviteSource reads invite links and ownership from the chat platform
type InviteSource interface {
	FetchInvites(ctx context.Context, guildID string) ([]state.InviteLink, error)
	GuildOwner(ctx context.Context, guildID string) (string, error)
}

// RateLimiter decides whether a candidate invite may be counted
type RateLimiter interface {
	Allow(ctx context.Context, guildID, inviterID string) ratelimit.RateLimitResult
}

// Evaluator issues rewards for newly crossed tiers
type Evaluator interface {
	Evaluate(ctx context.Context, guildID, inviterID string) []state.RewardCode
}

// Persister schedules remote writes
type Persister interface {
	ScheduleSave(mode persistence.Mode)
}

// EventPublisher publishes membership events to the event stream
type EventPublisher interface {
	PublishMemberAttributed(ctx context.Context, guildID, memberID, inviterID string, counted, suspect bool) error
	PublishMemberLeft(ctx context.Context, guildID, memberID, inviterID string) error
}
