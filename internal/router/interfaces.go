package router

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=router

import (
	"context"

	admin "guild-bot/internal/admin/processor"
	giveaways "guild-bot/internal/giveaways/processor"
	invites "guild-bot/internal/invites/processor"
	"guild-bot/internal/state"
	tickets "guild-bot/internal/tickets/processor"
)

// InviteHandler handles membership and invite link events
type InviteHandler interface {
	HandleJoin(ctx context.Context, join invites.Join) invites.JoinResult
	HandleLeave(ctx context.Context, guildID, memberID string) invites.LeaveResult
	HandleInviteCreated(ctx context.Context, guildID string, link state.InviteLink)
	HandleInviteDeleted(ctx context.Context, guildID, code string)
	RefreshInvites(ctx context.Context, guildID string) error
}

// AdminHandler handles counter overrides and read models
type AdminHandler interface {
	Adjust(ctx context.Context, adj admin.Adjustment) (admin.AdjustResult, error)
	Stats(ctx context.Context, guildID, inviterID string) state.InviterStats
	Leaderboard(ctx context.Context, guildID string, limit int) []state.InviterStats
}

// RewardHandler handles code redemption and discount drops
type RewardHandler interface {
	Redeem(ctx context.Context, userID, token string) (state.RewardCode, error)
	DropDiscount(ctx context.Context, guildID, ownerID string, percent int) (state.RewardCode, error)
	ListCodes(ctx context.Context, ownerID string) []state.RewardCode
	SweepExpired(ctx context.Context) (int, error)
}

// TicketHandler handles the ticket lifecycle
type TicketHandler interface {
	Open(ctx context.Context, req tickets.OpenRequest) (state.Ticket, error)
	Claim(ctx context.Context, ticketID, staffID string) (state.Ticket, error)
	Unclaim(ctx context.Context, ticketID, staffID string) (state.Ticket, error)
	Close(ctx context.Context, req tickets.CloseRequest) (state.Ticket, error)
	RedeemCode(ctx context.Context, ticketID, userID, token string) (state.Ticket, state.RewardCode, error)
}

// GiveawayHandler handles the giveaway lifecycle
type GiveawayHandler interface {
	Start(ctx context.Context, req giveaways.StartRequest) (state.Giveaway, error)
	Enter(ctx context.Context, id, userID string) (int, error)
	Withdraw(ctx context.Context, id, userID string) (int, error)
	End(ctx context.Context, id string) (state.Giveaway, error)
	Reroll(ctx context.Context, id string, count int) (state.Giveaway, error)
}

// WindowPruner drops expired rate limit entries
type WindowPruner interface {
	CleanupExpiredWindows(ctx context.Context) error
}
