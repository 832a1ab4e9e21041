package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"guild-bot/internal/persistence"
	"guild-bot/internal/state"
)

// CounterStore defines the state operations required by AdminProcessor
type CounterStore interface {
	Counter(guildID string, kind state.CounterKind, inviterID string) int
	AddCounter(guildID string, kind state.CounterKind, inviterID string, delta int) int
	SetCounter(guildID string, kind state.CounterKind, inviterID string, value int) int
	Stats(guildID, inviterID string) state.InviterStats
	GuildStats(guildID string) []state.InviterStats
	AttributionsByInviter(guildID, inviterID string) []state.MemberAttribution
}

// Evaluator issues rewards for newly crossed tiers
type Evaluator interface {
	Evaluate(ctx context.Context, guildID, inviterID string) []state.RewardCode
}

// Persister schedules remote writes
type Persister interface {
	ScheduleSave(mode persistence.Mode)
}
