package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"guild-bot/internal/persistence"
	"guild-bot/internal/state"
)

// GiveawayStore defines the state operations required by GiveawayProcessor
type GiveawayStore interface {
	PutGiveaway(g state.Giveaway)
	Giveaway(id string) (state.Giveaway, bool)
	ActiveGiveaways() []state.Giveaway
}

// Announcer posts giveaway messages to their channel
type Announcer interface {
	AnnounceGiveaway(ctx context.Context, g state.Giveaway) (string, error)
	AnnounceWinners(ctx context.Context, g state.Giveaway) error
}

// Persister schedules remote writes
type Persister interface {
	ScheduleSave(mode persistence.Mode)
}
