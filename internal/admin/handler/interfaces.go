package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=handler

import (
	"context"

	"guild-bot/internal/admin/processor"
	"guild-bot/internal/router"
	"guild-bot/internal/state"
)

// StatsReader serves the read-only admin views
type StatsReader interface {
	Stats(ctx context.Context, guildID, inviterID string) state.InviterStats
	Leaderboard(ctx context.Context, guildID string, limit int) []state.InviterStats
	SuspectReport(ctx context.Context, guildID, inviterID string) []processor.SuspectMember
}

// CodeLister lists a member's active codes
type CodeLister interface {
	ListCodes(ctx context.Context, ownerID string) []state.RewardCode
}

// EventLoop runs mutations in order with platform events
type EventLoop interface {
	Do(ctx context.Context, event router.Event) (router.Reply, error)
}
