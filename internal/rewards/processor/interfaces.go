package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"time"

	"guild-bot/internal/persistence"
	"guild-bot/internal/state"
)

// RewardStore defines the state operations required by RewardProcessor
type RewardStore interface {
	Counter(guildID string, kind state.CounterKind, inviterID string) int
	PaidTiers(guildID, inviterID string) []int
	LegacyIssued(guildID, inviterID string) int
	MarkTierPaid(guildID, inviterID string, tier int) bool
	PutCode(code state.RewardCode)
	Code(token string) (state.RewardCode, bool)
	CodeExists(token string) bool
	RedeemCode(token string) (state.RewardCode, bool)
	DeleteCode(token string)
	CodesByOwner(ownerID string) []state.RewardCode
	ExpiredCodes(now time.Time) []state.RewardCode
}

// Notifier delivers freshly issued codes to their owner privately
type Notifier interface {
	SendRewardCode(ctx context.Context, code state.RewardCode) error
}

// Persister schedules and performs remote writes
type Persister interface {
	ScheduleSave(mode persistence.Mode)
	DeleteCode(ctx context.Context, token string) error
	MarkCodeUsed(ctx context.Context, token string, usedAt time.Time) error
}

// EventPublisher publishes reward events to the event stream
type EventPublisher interface {
	PublishRewardIssued(ctx context.Context, code state.RewardCode) error
	PublishCodeRedeemed(ctx context.Context, code state.RewardCode) error
}
