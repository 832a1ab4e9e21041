package events

import (
	"context"
	"time"

	"guild-bot/internal/clients/kafka"
	"guild-bot/internal/observability"
	"guild-bot/internal/state"

	"github.com/google/uuid"
)

const (
	TypeMemberAttributed = "invite.joined"
	TypeMemberLeft       = "invite.left"
	TypeRewardIssued     = "reward.issued"
	TypeCodeRedeemed     = "reward.redeemed"
	TypeSaleRecorded     = "ticket.sale_recorded"
)

// EventProducer writes one event to the stream
type EventProducer interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// Publisher handles publishing domain events to Kafka. Without a producer every
// publish is a no-op, so the event stream stays optional.
type Publisher struct {
	producer EventProducer
	now      func() time.Time
	logger   *observability.Logger
}

// NewPublisher creates a new event publisher. producer may be nil.
func NewPublisher(producer EventProducer, logger *observability.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		now:      time.Now,
		logger:   logger,
	}
}

// Enabled reports whether events are actually sent
func (p *Publisher) Enabled() bool {
	return p.producer != nil
}

func (p *Publisher) publish(ctx context.Context, eventType, guildID string, data map[string]any) error {
	if p.producer == nil {
		return nil
	}
	return p.producer.PublishEvent(ctx, kafka.EventMessage{
		ID:        uuid.New().String(),
		Type:      eventType,
		GuildID:   guildID,
		Data:      data,
		Timestamp: p.now().UTC().Format(time.RFC3339),
	})
}

// PublishMemberAttributed publishes an invite.joined event
func (p *Publisher) PublishMemberAttributed(ctx context.Context, guildID, memberID, inviterID string, counted, suspect bool) error {
	return p.publish(ctx, TypeMemberAttributed, guildID, map[string]any{
		"member_id":  memberID,
		"inviter_id": inviterID,
		"counted":    counted,
		"suspect":    suspect,
	})
}

// PublishMemberLeft publishes an invite.left event
func (p *Publisher) PublishMemberLeft(ctx context.Context, guildID, memberID, inviterID string) error {
	return p.publish(ctx, TypeMemberLeft, guildID, map[string]any{
		"member_id":  memberID,
		"inviter_id": inviterID,
	})
}

// PublishRewardIssued publishes a reward.issued event. The token itself is not
// part of the payload.
func (p *Publisher) PublishRewardIssued(ctx context.Context, code state.RewardCode) error {
	return p.publish(ctx, TypeRewardIssued, code.GuildID, map[string]any{
		"owner_id":   code.OwnerID,
		"kind":       string(code.Kind),
		"tier":       code.Tier,
		"percent":    code.Percent,
		"expires_at": code.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

// PublishCodeRedeemed publishes a reward.redeemed event
func (p *Publisher) PublishCodeRedeemed(ctx context.Context, code state.RewardCode) error {
	return p.publish(ctx, TypeCodeRedeemed, code.GuildID, map[string]any{
		"owner_id": code.OwnerID,
		"kind":     string(code.Kind),
		"tier":     code.Tier,
		"percent":  code.Percent,
	})
}

// PublishSaleRecorded publishes a ticket.sale_recorded event
func (p *Publisher) PublishSaleRecorded(ctx context.Context, sale state.WeeklySale) error {
	return p.publish(ctx, TypeSaleRecorded, sale.GuildID, map[string]any{
		"sale_id":      sale.ID,
		"ticket_id":    sale.TicketID,
		"seller_id":    sale.SellerID,
		"buyer_id":     sale.BuyerID,
		"item":         sale.Item,
		"amount_cents": sale.AmountCents,
	})
}
