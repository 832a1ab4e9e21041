package router

import (
	"context"
	"errors"
	"fmt"
	"strings"

	admin "guild-bot/internal/admin/processor"
	giveaways "guild-bot/internal/giveaways/processor"
	invites "guild-bot/internal/invites/processor"
	"guild-bot/internal/observability"
	rewards "guild-bot/internal/rewards/processor"
	"guild-bot/internal/state"
	tickets "guild-bot/internal/tickets/processor"
)

const defaultLeaderboardSize = 10

// Reply is what the messaging surface sends back for an event. A zero Reply means
// nothing is sent.
type Reply struct {
	Content   string
	Ephemeral bool
	Buttons   []Button
}

// Empty reports whether there is nothing to send.
func (r Reply) Empty() bool {
	return r.Content == "" && len(r.Buttons) == 0
}

func private(format string, args ...any) Reply {
	return Reply{Content: fmt.Sprintf(format, args...), Ephemeral: true}
}

func privateText(content string) Reply {
	return Reply{Content: content, Ephemeral: true}
}

const msgStaffOnly = "Only staff can do that."

type Router struct {
	invites   InviteHandler
	admin     AdminHandler
	rewards   RewardHandler
	tickets   TicketHandler
	giveaways GiveawayHandler
	windows   WindowPruner
	logger    *observability.Logger
}

func New(
	inviteHandler InviteHandler,
	adminHandler AdminHandler,
	rewardHandler RewardHandler,
	ticketHandler TicketHandler,
	giveawayHandler GiveawayHandler,
	windows WindowPruner,
	logger *observability.Logger,
) *Router {
	return &Router{
		invites:   inviteHandler,
		admin:     adminHandler,
		rewards:   rewardHandler,
		tickets:   ticketHandler,
		giveaways: giveawayHandler,
		windows:   windows,
		logger:    logger,
	}
}

// Dispatch runs the handler for an event and returns the reply to show.
func (r *Router) Dispatch(ctx context.Context, ev Event) Reply {
	switch e := ev.(type) {
	case MemberJoined:
		r.invites.HandleJoin(ctx, invites.Join{
			GuildID:          e.GuildID,
			MemberID:         e.MemberID,
			AccountCreatedAt: e.AccountCreatedAt,
			JoinedAt:         e.JoinedAt,
		})
		return Reply{}
	case MemberLeft:
		r.invites.HandleLeave(ctx, e.GuildID, e.MemberID)
		return Reply{}
	case InviteCreated:
		r.invites.HandleInviteCreated(ctx, e.GuildID, e.Link)
		return Reply{}
	case InviteDeleted:
		r.invites.HandleInviteDeleted(ctx, e.GuildID, e.Code)
		return Reply{}
	case GuildReady:
		if err := r.invites.RefreshInvites(ctx, e.GuildID); err != nil {
			r.logger.WarnWithError(ctx, "initial invite snapshot failed", err)
		}
		return Reply{}
	case InvitesCommand:
		return r.invitesCommand(ctx, e)
	case LeaderboardCommand:
		return r.leaderboardCommand(ctx, e)
	case AdjustInvitesCommand:
		return r.adjustCommand(ctx, e)
	case RedeemCommand:
		return r.redeemCommand(ctx, e)
	case CodesCommand:
		return r.codesCommand(ctx, e)
	case DropDiscountCommand:
		return r.dropDiscountCommand(ctx, e)
	case TicketOpen:
		return r.ticketOpen(ctx, e)
	case TicketClaim:
		if !e.IsStaff {
			return privateText(msgStaffOnly)
		}
		if _, err := r.tickets.Claim(ctx, e.TicketID, e.UserID); err != nil {
			return r.deny(ctx, err)
		}
		return Reply{Content: fmt.Sprintf("Ticket claimed by <@%s>.", e.UserID)}
	case TicketUnclaim:
		if !e.IsStaff {
			return privateText(msgStaffOnly)
		}
		if _, err := r.tickets.Unclaim(ctx, e.TicketID, e.UserID); err != nil {
			return r.deny(ctx, err)
		}
		return Reply{Content: "Ticket released, any staff member can claim it."}
	case TicketClose:
		return r.ticketClose(ctx, e)
	case TicketRedeem:
		return r.ticketRedeem(ctx, e)
	case GiveawayStart:
		return r.giveawayStart(ctx, e)
	case GiveawayEnter:
		n, err := r.giveaways.Enter(ctx, e.GiveawayID, e.UserID)
		if err != nil {
			return r.deny(ctx, err)
		}
		return private("You're in! %d participants so far.", n)
	case GiveawayWithdraw:
		if _, err := r.giveaways.Withdraw(ctx, e.GiveawayID, e.UserID); err != nil {
			return r.deny(ctx, err)
		}
		return private("You left the giveaway.")
	case GiveawayEnd:
		if !e.IsStaff {
			return privateText(msgStaffOnly)
		}
		if _, err := r.giveaways.End(ctx, e.GiveawayID); err != nil {
			return r.deny(ctx, err)
		}
		return private("Giveaway ended.")
	case GiveawayReroll:
		if !e.IsStaff {
			return privateText(msgStaffOnly)
		}
		if _, err := r.giveaways.Reroll(ctx, e.GiveawayID, e.Count); err != nil {
			return r.deny(ctx, err)
		}
		return private("Winners rerolled.")
	case GiveawayTimerFired:
		if _, err := r.giveaways.End(ctx, e.GiveawayID); err != nil && !errors.Is(err, giveaways.ErrGiveawayEnded) {
			r.logger.Error(ctx, "failed to end giveaway on timer", err)
		}
		return Reply{}
	case SweepExpiredCodes:
		if _, err := r.rewards.SweepExpired(ctx); err != nil {
			r.logger.Error(ctx, "failed to sweep expired codes", err)
		}
		return Reply{}
	case PruneRateWindows:
		if err := r.windows.CleanupExpiredWindows(ctx); err != nil {
			r.logger.Error(ctx, "failed to prune rate windows", err)
		}
		return Reply{}
	}

	r.logger.Warn(ctx, "unhandled event", observability.Field{Key: "event", Value: fmt.Sprintf("%T", ev)})
	return Reply{}
}

func (r *Router) invitesCommand(ctx context.Context, e InvitesCommand) Reply {
	target := e.TargetID
	if target == "" {
		target = e.UserID
	}
	s := r.admin.Stats(ctx, e.GuildID, target)
	return Reply{Content: fmt.Sprintf(
		"<@%s> has **%d** invites (%d regular, %d bonus, %d left, %d suspect).",
		target, s.Total(), s.Valid, s.Bonus, s.Leaves, s.Suspect,
	)}
}

func (r *Router) leaderboardCommand(ctx context.Context, e LeaderboardCommand) Reply {
	limit := e.Limit
	if limit <= 0 {
		limit = defaultLeaderboardSize
	}
	stats := r.admin.Leaderboard(ctx, e.GuildID, limit)
	if len(stats) == 0 {
		return Reply{Content: "No invites tracked yet."}
	}

	var b strings.Builder
	b.WriteString("**Invite leaderboard**\n")
	for i, s := range stats {
		fmt.Fprintf(&b, "%d. <@%s> - %d invites\n", i+1, s.InviterID, s.Total())
	}
	return Reply{Content: strings.TrimRight(b.String(), "\n")}
}

func (r *Router) adjustCommand(ctx context.Context, e AdjustInvitesCommand) Reply {
	if !e.IsStaff {
		return privateText(msgStaffOnly)
	}
	result, err := r.admin.Adjust(ctx, admin.Adjustment{
		GuildID:   e.GuildID,
		InviterID: e.TargetID,
		Counter:   e.Counter,
		Op:        admin.Op(e.Op),
		Amount:    e.Amount,
	})
	if err != nil {
		return r.deny(ctx, err)
	}
	msg := fmt.Sprintf("%s for <@%s>: %d -> %d.", e.Counter, e.TargetID, result.Previous, result.Current)
	if n := len(result.Issued); n > 0 {
		msg += fmt.Sprintf(" %d reward code(s) issued.", n)
	}
	return privateText(msg)
}

func (r *Router) redeemCommand(ctx context.Context, e RedeemCommand) Reply {
	code, err := r.rewards.Redeem(ctx, e.UserID, e.Token)
	if err != nil {
		return r.deny(ctx, err)
	}
	return private("Code `%s` redeemed.", code.Token)
}

func (r *Router) codesCommand(ctx context.Context, e CodesCommand) Reply {
	codes := r.rewards.ListCodes(ctx, e.UserID)
	if len(codes) == 0 {
		return private("You have no active codes.")
	}
	var b strings.Builder
	for _, c := range codes {
		fmt.Fprintf(&b, "`%s` %s, expires <t:%d:R>\n", c.Token, describeCode(c), c.ExpiresAt.Unix())
	}
	return privateText(strings.TrimRight(b.String(), "\n"))
}

func describeCode(c state.RewardCode) string {
	if c.Kind == state.CodeKindDiscount {
		return fmt.Sprintf("%d%% discount", c.Percent)
	}
	return fmt.Sprintf("tier %d reward", c.Tier)
}

func (r *Router) dropDiscountCommand(ctx context.Context, e DropDiscountCommand) Reply {
	if !e.IsStaff {
		return privateText(msgStaffOnly)
	}
	code, err := r.rewards.DropDiscount(ctx, e.GuildID, e.TargetID, e.Percent)
	if err != nil {
		return r.deny(ctx, err)
	}
	return private("Sent a %d%% discount code to <@%s>, expires <t:%d:R>.", code.Percent, e.TargetID, code.ExpiresAt.Unix())
}

func (r *Router) ticketOpen(ctx context.Context, e TicketOpen) Reply {
	ticket, err := r.tickets.Open(ctx, tickets.OpenRequest{GuildID: e.GuildID, OpenerID: e.UserID, Kind: e.Kind})
	if err != nil {
		return r.deny(ctx, err)
	}
	return Reply{
		Content:   fmt.Sprintf("Ticket #%d opened in <#%s>.", ticket.Number, ticket.ChannelID),
		Ephemeral: true,
		Buttons: []Button{
			{CustomID: TicketComponentID("claim", ticket.ID), Label: "Claim"},
			{CustomID: TicketComponentID("close", ticket.ID), Label: "Close", Danger: true},
		},
	}
}

func (r *Router) ticketClose(ctx context.Context, e TicketClose) Reply {
	if !e.IsStaff {
		return privateText(msgStaffOnly)
	}
	req := tickets.CloseRequest{TicketID: e.TicketID, CloserID: e.UserID}
	if e.Item != "" || e.AmountCents != 0 {
		req.Sale = &tickets.Sale{Item: e.Item, AmountCents: e.AmountCents}
	}
	ticket, err := r.tickets.Close(ctx, req)
	if err != nil {
		return r.deny(ctx, err)
	}
	if req.Sale != nil {
		return private("Ticket #%d closed, sale of %s recorded.", ticket.Number, req.Sale.Item)
	}
	return private("Ticket #%d closed.", ticket.Number)
}

func (r *Router) ticketRedeem(ctx context.Context, e TicketRedeem) Reply {
	_, code, err := r.tickets.RedeemCode(ctx, e.TicketID, e.UserID, e.Token)
	if err != nil {
		return r.deny(ctx, err)
	}
	return Reply{Content: fmt.Sprintf("<@%s> applied a %s.", e.UserID, describeCode(code))}
}

func (r *Router) giveawayStart(ctx context.Context, e GiveawayStart) Reply {
	if !e.IsStaff {
		return privateText(msgStaffOnly)
	}
	g, err := r.giveaways.Start(ctx, giveaways.StartRequest{
		GuildID:   e.GuildID,
		ChannelID: e.ChannelID,
		HostID:    e.UserID,
		Prize:     e.Prize,
		Winners:   e.Winners,
		Duration:  e.Duration,
	})
	if err != nil {
		return r.deny(ctx, err)
	}
	return private("Giveaway for **%s** started, ends <t:%d:R>.", g.Prize, g.EndsAt.Unix())
}

// deny maps a handler error to the plain message shown to the user.
func (r *Router) deny(ctx context.Context, err error) Reply {
	if msg, ok := denials(err); ok {
		return privateText(msg)
	}
	if errors.Is(err, tickets.ErrCooldown) {
		return privateText("You opened a ticket recently, " + strings.TrimPrefix(err.Error(), tickets.ErrCooldown.Error()+": ") + ".")
	}
	r.logger.Error(ctx, "interaction failed", err)
	return private("Something went wrong, please try again later.")
}

func denials(err error) (string, bool) {
	table := []struct {
		err error
		msg string
	}{
		{rewards.ErrCodeNotFound, "That code does not exist."},
		{rewards.ErrCodeExpired, "That code has expired."},
		{rewards.ErrCodeAlreadyUsed, "That code was already used."},
		{rewards.ErrCodeNotOwned, "That code belongs to someone else."},
		{rewards.ErrInvalidPercent, "Discount percent must be between 1 and 100."},
		{admin.ErrInvalidCounter, "That counter cannot be adjusted."},
		{admin.ErrInvalidOp, "Unknown operation, use add, subtract, set or clear."},
		{admin.ErrNegativeAmount, "Amount must not be negative."},
		{admin.ErrMissingInviter, "Pick a member to adjust."},
		{tickets.ErrTicketNotFound, "That ticket no longer exists."},
		{tickets.ErrTicketClosed, "That ticket is already closed."},
		{tickets.ErrTicketAlreadyOpen, "You already have an open ticket."},
		{tickets.ErrTicketClaimed, "Another staff member already claimed this ticket."},
		{tickets.ErrNotClaimant, "You have not claimed this ticket."},
		{tickets.ErrNotTicketOwner, "Only the ticket opener can redeem a code here."},
		{tickets.ErrCodeAlreadyApplied, "A code is already applied to this ticket."},
		{tickets.ErrInvalidSale, "A sale needs an item and a positive amount."},
		{giveaways.ErrGiveawayNotFound, "That giveaway no longer exists."},
		{giveaways.ErrGiveawayEnded, "That giveaway has ended."},
		{giveaways.ErrGiveawayActive, "That giveaway is still running."},
		{giveaways.ErrAlreadyEntered, "You already entered this giveaway."},
		{giveaways.ErrNotEntered, "You are not in this giveaway."},
		{giveaways.ErrNoEligible, "Nobody left to reroll."},
		{giveaways.ErrInvalidGiveaway, "A giveaway needs a prize, at least one winner and a duration."},
	}
	for _, d := range table {
		if errors.Is(err, d.err) {
			return d.msg, true
		}
	}
	return "", false
}
