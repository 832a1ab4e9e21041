package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"time"

	"guild-bot/internal/persistence"
	"guild-bot/internal/state"
)

// TicketStore defines the state operations required by TicketProcessor
type TicketStore interface {
	PutTicket(t state.Ticket)
	Ticket(id string) (state.Ticket, bool)
	OpenTickets(guildID, openerID string) []state.Ticket
	NextTicketNumber() int
	Cooldown(key string) (time.Time, bool)
	SetCooldown(key string, at time.Time)
}

// ChannelManager creates and removes ticket channels on the chat platform
type ChannelManager interface {
	CreateTicketChannel(ctx context.Context, guildID, openerID, name string) (string, error)
	DeleteChannel(ctx context.Context, channelID string) error
}

// Redeemer consumes reward and discount codes
type Redeemer interface {
	Redeem(ctx context.Context, userID, token string) (state.RewardCode, error)
}

// Persister schedules remote writes and appends commerce records
type Persister interface {
	ScheduleSave(mode persistence.Mode)
	AppendWeeklySale(ctx context.Context, sale state.WeeklySale) error
}

// EventPublisher publishes ticket events to the event stream
type EventPublisher interface {
	PublishSaleRecorded(ctx context.Context, sale state.WeeklySale) error
}
