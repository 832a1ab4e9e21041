package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"guild-bot/internal/observability"
	"guild-bot/internal/persistence"
	"guild-bot/internal/state"

	"github.com/google/uuid"
)

var (
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrTicketClosed       = errors.New("ticket is closed")
	ErrTicketAlreadyOpen  = errors.New("user already has an open ticket")
	ErrTicketClaimed      = errors.New("ticket is claimed by another staff member")
	ErrNotClaimant        = errors.New("ticket is not claimed by this staff member")
	ErrCooldown           = errors.New("ticket creation is on cooldown")
	ErrNotTicketOwner     = errors.New("only the ticket opener can redeem a code here")
	ErrCodeAlreadyApplied = errors.New("a code is already applied to this ticket")
	ErrInvalidSale        = errors.New("sale needs an item and a positive amount")
)

// Config holds ticket settings
type Config struct {
	Cooldown time.Duration
}

// OpenRequest asks for a new ticket channel
type OpenRequest struct {
	GuildID  string
	OpenerID string
	Kind     state.TicketKind
}

// Sale is the optional commerce outcome of a purchase ticket
type Sale struct {
	Item        string
	AmountCents int64
}

// CloseRequest closes a ticket, recording a sale when one is given
type CloseRequest struct {
	TicketID string
	CloserID string
	Sale     *Sale
}

type TicketProcessor struct {
	store     TicketStore
	channels  ChannelManager
	redeemer  Redeemer
	persister Persister
	publisher EventPublisher
	cfg       Config
	now       func() time.Time
	logger    *observability.Logger
}

func New(
	store TicketStore,
	channels ChannelManager,
	redeemer Redeemer,
	persister Persister,
	publisher EventPublisher,
	cfg Config,
	logger *observability.Logger,
) *TicketProcessor {
	return &TicketProcessor{
		store:     store,
		channels:  channels,
		redeemer:  redeemer,
		persister: persister,
		publisher: publisher,
		cfg:       cfg,
		now:       time.Now,
		logger:    logger,
	}
}

func cooldownKey(guildID, userID string) string {
	return fmt.Sprintf("ticket:%s:%s", guildID, userID)
}

// Open creates a ticket channel for the opener. One open ticket per user per
// guild, and openings are rate limited by a per-user cooldown.
func (p *TicketProcessor) Open(ctx context.Context, req OpenRequest) (state.Ticket, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "guild_id", Value: req.GuildID},
		observability.Field{Key: "user_id", Value: req.OpenerID},
	)

	if len(p.store.OpenTickets(req.GuildID, req.OpenerID)) > 0 {
		return state.Ticket{}, ErrTicketAlreadyOpen
	}

	now := p.now().UTC()
	key := cooldownKey(req.GuildID, req.OpenerID)
	if last, ok := p.store.Cooldown(key); ok {
		if remaining := p.cfg.Cooldown - now.Sub(last); remaining > 0 {
			return state.Ticket{}, fmt.Errorf("%w: retry in %s", ErrCooldown, remaining.Round(time.Second))
		}
	}

	kind := req.Kind
	if kind == "" {
		kind = state.TicketKindSupport
	}
	number := p.store.NextTicketNumber()
	channelID, err := p.channels.CreateTicketChannel(ctx, req.GuildID, req.OpenerID, fmt.Sprintf("%s-%04d", kind, number))
	if err != nil {
		p.logger.Error(ctx, "failed to create ticket channel", err)
		return state.Ticket{}, fmt.Errorf("failed to create ticket channel: %w", err)
	}

	ticket := state.Ticket{
		ID:        uuid.New().String(),
		Number:    number,
		GuildID:   req.GuildID,
		ChannelID: channelID,
		OpenerID:  req.OpenerID,
		Kind:      kind,
		Status:    state.TicketStatusOpen,
		CreatedAt: now,
	}
	p.store.PutTicket(ticket)
	p.store.SetCooldown(key, now)
	p.persister.ScheduleSave(persistence.ModeBatched)

	p.logger.Info(ctx, "ticket opened",
		observability.Field{Key: "ticket_id", Value: ticket.ID},
		observability.Field{Key: "channel_id", Value: channelID},
	)
	return ticket, nil
}

func (p *TicketProcessor) load(ticketID string) (state.Ticket, error) {
	ticket, ok := p.store.Ticket(ticketID)
	if !ok {
		return state.Ticket{}, ErrTicketNotFound
	}
	if ticket.Status == state.TicketStatusClosed {
		return state.Ticket{}, ErrTicketClosed
	}
	return ticket, nil
}

// Claim assigns the ticket to a staff member. Claiming a ticket you already hold
// is a no-op.
func (p *TicketProcessor) Claim(ctx context.Context, ticketID, staffID string) (state.Ticket, error) {
	ticket, err := p.load(ticketID)
	if err != nil {
		return state.Ticket{}, err
	}
	if ticket.Status == state.TicketStatusClaimed {
		if ticket.ClaimedBy == staffID {
			return ticket, nil
		}
		return state.Ticket{}, ErrTicketClaimed
	}

	ticket.Status = state.TicketStatusClaimed
	ticket.ClaimedBy = staffID
	p.store.PutTicket(ticket)
	p.persister.ScheduleSave(persistence.ModeBatched)

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "ticket_id", Value: ticketID}),
		"ticket claimed", observability.Field{Key: "staff_id", Value: staffID})
	return ticket, nil
}

func (p *TicketProcessor) Unclaim(ctx context.Context, ticketID, staffID string) (state.Ticket, error) {
	ticket, err := p.load(ticketID)
	if err != nil {
		return state.Ticket{}, err
	}
	if ticket.Status != state.TicketStatusClaimed || ticket.ClaimedBy != staffID {
		return state.Ticket{}, ErrNotClaimant
	}

	ticket.Status = state.TicketStatusOpen
	ticket.ClaimedBy = ""
	p.store.PutTicket(ticket)
	p.persister.ScheduleSave(persistence.ModeBatched)

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "ticket_id", Value: ticketID}),
		"ticket unclaimed", observability.Field{Key: "staff_id", Value: staffID})
	return ticket, nil
}

// Close marks the ticket closed and removes its channel. A sale is appended to the
// weekly sales log; failing to write it is logged and does not keep the ticket open.
func (p *TicketProcessor) Close(ctx context.Context, req CloseRequest) (state.Ticket, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "ticket_id", Value: req.TicketID})

	ticket, err := p.load(req.TicketID)
	if err != nil {
		return state.Ticket{}, err
	}
	if req.Sale != nil && (req.Sale.Item == "" || req.Sale.AmountCents <= 0) {
		return state.Ticket{}, ErrInvalidSale
	}

	now := p.now().UTC()
	ticket.Status = state.TicketStatusClosed
	ticket.ClosedAt = &now
	ticket.ClosedBy = req.CloserID
	p.store.PutTicket(ticket)
	p.persister.ScheduleSave(persistence.ModeImmediate)

	if req.Sale != nil {
		p.recordSale(ctx, ticket, *req.Sale, now)
	}

	if err := p.channels.DeleteChannel(ctx, ticket.ChannelID); err != nil {
		p.logger.WarnWithError(ctx, "failed to delete ticket channel", err)
	}

	p.logger.Info(ctx, "ticket closed", observability.Field{Key: "closed_by", Value: req.CloserID})
	return ticket, nil
}

func (p *TicketProcessor) recordSale(ctx context.Context, ticket state.Ticket, sale Sale, at time.Time) {
	record := state.WeeklySale{
		ID:          uuid.New().String(),
		GuildID:     ticket.GuildID,
		TicketID:    ticket.ID,
		SellerID:    ticket.ClosedBy,
		BuyerID:     ticket.OpenerID,
		Item:        sale.Item,
		AmountCents: sale.AmountCents,
		RecordedAt:  at,
	}
	if err := p.persister.AppendWeeklySale(ctx, record); err != nil {
		p.logger.Error(ctx, "failed to append weekly sale", err)
		return
	}
	if err := p.publisher.PublishSaleRecorded(ctx, record); err != nil {
		p.logger.WarnWithError(ctx, "failed to publish sale recorded event", err)
	}
	p.logger.Info(ctx, "weekly sale recorded",
		observability.Field{Key: "item", Value: sale.Item},
		observability.Field{Key: "amount_cents", Value: sale.AmountCents},
	)
}

// RedeemCode consumes a code inside the opener's ticket. A discount code applies
// its percent to the ticket, a reward code marks the ticket as a reward claim.
func (p *TicketProcessor) RedeemCode(ctx context.Context, ticketID, userID, token string) (state.Ticket, state.RewardCode, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "ticket_id", Value: ticketID},
		observability.Field{Key: "user_id", Value: userID},
	)

	ticket, err := p.load(ticketID)
	if err != nil {
		return state.Ticket{}, state.RewardCode{}, err
	}
	if ticket.OpenerID != userID {
		return state.Ticket{}, state.RewardCode{}, ErrNotTicketOwner
	}
	if ticket.AppliedCode != "" {
		return state.Ticket{}, state.RewardCode{}, ErrCodeAlreadyApplied
	}

	code, err := p.redeemer.Redeem(ctx, userID, token)
	if err != nil {
		return state.Ticket{}, state.RewardCode{}, err
	}

	ticket.AppliedCode = code.Token
	switch code.Kind {
	case state.CodeKindDiscount:
		ticket.DiscountPercent = code.Percent
	default:
		ticket.RewardClaimed = true
	}
	p.store.PutTicket(ticket)
	p.persister.ScheduleSave(persistence.ModeImmediate)

	p.logger.Info(ctx, "code applied to ticket", observability.Field{Key: "kind", Value: string(code.Kind)})
	return ticket, code, nil
}
