package router

import (
	"time"

	"guild-bot/internal/state"
)

// Event is one inbound platform event or interaction. The set is closed: only this
// package can add variants.
type Event interface {
	isEvent()
}

// Actor identifies who triggered an interaction.
type Actor struct {
	GuildID string
	UserID  string
	IsStaff bool
}

type MemberJoined struct {
	GuildID          string
	MemberID         string
	AccountCreatedAt time.Time
	JoinedAt         time.Time
}

type MemberLeft struct {
	GuildID  string
	MemberID string
}

type InviteCreated struct {
	GuildID string
	Link    state.InviteLink
}

type InviteDeleted struct {
	GuildID string
	Code    string
}

// GuildReady fires when the gateway session becomes available for a guild.
type GuildReady struct {
	GuildID string
}

type InvitesCommand struct {
	Actor
	TargetID string
}

type LeaderboardCommand struct {
	Actor
	Limit int
}

type AdjustInvitesCommand struct {
	Actor
	TargetID string
	Counter  state.CounterKind
	Op       string
	Amount   int
}

type RedeemCommand struct {
	Actor
	Token string
}

type CodesCommand struct {
	Actor
}

type DropDiscountCommand struct {
	Actor
	TargetID string
	Percent  int
}

type TicketOpen struct {
	Actor
	Kind state.TicketKind
}

type TicketClaim struct {
	Actor
	TicketID string
}

type TicketUnclaim struct {
	Actor
	TicketID string
}

// TicketClose closes a ticket. Item and AmountCents describe a sale and are left
// empty when nothing was sold.
type TicketClose struct {
	Actor
	TicketID    string
	Item        string
	AmountCents int64
}

type TicketRedeem struct {
	Actor
	TicketID string
	Token    string
}

type GiveawayStart struct {
	Actor
	ChannelID string
	Prize     string
	Winners   int
	Duration  time.Duration
}

type GiveawayEnter struct {
	Actor
	GiveawayID string
}

type GiveawayWithdraw struct {
	Actor
	GiveawayID string
}

type GiveawayEnd struct {
	Actor
	GiveawayID string
}

type GiveawayReroll struct {
	Actor
	GiveawayID string
	Count      int
}

// GiveawayTimerFired is submitted by the giveaway timer when the end time passes.
type GiveawayTimerFired struct {
	GiveawayID string
}

// SweepExpiredCodes and PruneRateWindows are submitted by the maintenance scheduler.
type SweepExpiredCodes struct{}

type PruneRateWindows struct{}

func (MemberJoined) isEvent()         {}
func (MemberLeft) isEvent()           {}
func (InviteCreated) isEvent()        {}
func (InviteDeleted) isEvent()        {}
func (GuildReady) isEvent()           {}
func (InvitesCommand) isEvent()       {}
func (LeaderboardCommand) isEvent()   {}
func (AdjustInvitesCommand) isEvent() {}
func (RedeemCommand) isEvent()        {}
func (CodesCommand) isEvent()         {}
func (DropDiscountCommand) isEvent()  {}
func (TicketOpen) isEvent()           {}
func (TicketClaim) isEvent()          {}
func (TicketUnclaim) isEvent()        {}
func (TicketClose) isEvent()          {}
func (TicketRedeem) isEvent()         {}
func (GiveawayStart) isEvent()        {}
func (GiveawayEnter) isEvent()        {}
func (GiveawayWithdraw) isEvent()     {}
func (GiveawayEnd) isEvent()          {}
func (GiveawayReroll) isEvent()       {}
func (GiveawayTimerFired) isEvent()   {}
func (SweepExpiredCodes) isEvent()    {}
func (PruneRateWindows) isEvent()     {}
