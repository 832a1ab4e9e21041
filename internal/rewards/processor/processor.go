package processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"guild-bot/internal/observability"
	"guild-bot/internal/persistence"
	"guild-bot/internal/state"

	"github.com/google/uuid"
)

var (
	ErrCodeNotFound    = errors.New("code not found")
	ErrCodeExpired     = errors.New("code expired")
	ErrCodeAlreadyUsed = errors.New("code already used")
	ErrCodeNotOwned    = errors.New("code belongs to another account")
	ErrInvalidPercent  = errors.New("discount percent must be between 1 and 100")
)

// Config holds reward tier settings
type Config struct {
	TierSize         int
	Validity         time.Duration
	DiscountValidity time.Duration
}

type RewardProcessor struct {
	store     RewardStore
	notifier  Notifier
	persister Persister
	publisher EventPublisher
	cfg       Config
	now       func() time.Time
	logger    *observability.Logger
}

func New(store RewardStore, notifier Notifier, persister Persister, publisher EventPublisher, cfg Config, logger *observability.Logger) *RewardProcessor {
	if cfg.TierSize <= 0 {
		cfg.TierSize = 5
	}
	return &RewardProcessor{
		store:     store,
		notifier:  notifier,
		persister: persister,
		publisher: publisher,
		cfg:       cfg,
		now:       time.Now,
		logger:    logger,
	}
}

// Evaluate issues one reward code for every tier the inviter's valid invites have
// crossed that is not paid yet. Calling it again with an unchanged counter issues
// nothing.
func (p *RewardProcessor) Evaluate(ctx context.Context, guildID, inviterID string) []state.RewardCode {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "guild_id", Value: guildID},
		observability.Field{Key: "inviter_id", Value: inviterID},
	)

	p.migrateLegacy(ctx, guildID, inviterID)

	valid := p.store.Counter(guildID, state.CounterValid, inviterID)
	eligible := valid / p.cfg.TierSize
	paid := p.store.PaidTiers(guildID, inviterID)

	toIssue := eligible - len(paid)
	if toIssue <= 0 {
		return nil
	}

	var issued []state.RewardCode
	for tier := 1; tier <= eligible && len(issued) < toIssue; tier++ {
		if !p.store.MarkTierPaid(guildID, inviterID, tier) {
			continue
		}
		code := p.newCode(guildID, inviterID, state.CodeKindInviteReward, p.cfg.Validity)
		code.Tier = tier
		p.store.PutCode(code)
		issued = append(issued, code)
	}
	if len(issued) == 0 {
		return nil
	}

	p.persister.ScheduleSave(persistence.ModeImmediate)
	p.logger.Info(ctx, "reward codes issued",
		observability.Field{Key: "valid_invites", Value: valid},
		observability.Field{Key: "count", Value: len(issued)},
	)

	for _, code := range issued {
		p.deliver(ctx, code)
		if err := p.publisher.PublishRewardIssued(ctx, code); err != nil {
			p.logger.WarnWithError(ctx, "failed to publish reward issued event", err)
		}
	}
	return issued
}

// migrateLegacy folds a pre-ledger issued count into the tier set so tiers it
// covers are never issued again.
func (p *RewardProcessor) migrateLegacy(ctx context.Context, guildID, inviterID string) {
	legacy := p.store.LegacyIssued(guildID, inviterID)
	if legacy == 0 {
		return
	}
	migrated := 0
	for tier := 1; tier <= legacy; tier++ {
		if p.store.MarkTierPaid(guildID, inviterID, tier) {
			migrated++
		}
	}
	if migrated > 0 {
		p.logger.Info(ctx, "migrated legacy reward count into tier ledger",
			observability.Field{Key: "legacy_issued", Value: legacy},
			observability.Field{Key: "tiers_added", Value: migrated},
		)
	}
}

// Redeem consumes a code on behalf of userID. Expiry is checked before the used
// flag so an expired code is always reported as expired.
func (p *RewardProcessor) Redeem(ctx context.Context, userID, token string) (state.RewardCode, error) {
	token = strings.TrimSpace(token)
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID},
		observability.Field{Key: "token", Value: token},
	)

	code, ok := p.store.Code(token)
	if !ok {
		return state.RewardCode{}, ErrCodeNotFound
	}
	now := p.now()
	if code.Expired(now) {
		return state.RewardCode{}, ErrCodeExpired
	}
	if code.Used {
		return state.RewardCode{}, ErrCodeAlreadyUsed
	}
	if code.OwnerID != userID {
		return state.RewardCode{}, ErrCodeNotOwned
	}

	redeemed, ok := p.store.RedeemCode(token)
	if !ok {
		return state.RewardCode{}, ErrCodeAlreadyUsed
	}

	usedAt := now
	if redeemed.UsedAt != nil {
		usedAt = *redeemed.UsedAt
	}
	if err := p.persister.MarkCodeUsed(ctx, token, usedAt); err != nil {
		p.logger.WarnWithError(ctx, "failed to mark code used remotely", err)
	}
	if err := p.publisher.PublishCodeRedeemed(ctx, redeemed); err != nil {
		p.logger.WarnWithError(ctx, "failed to publish code redeemed event", err)
	}

	p.logger.Info(ctx, "code redeemed")
	return redeemed, nil
}

// DropDiscount issues a discount code to ownerID and delivers it privately.
func (p *RewardProcessor) DropDiscount(ctx context.Context, guildID, ownerID string, percent int) (state.RewardCode, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "guild_id", Value: guildID},
		observability.Field{Key: "owner_id", Value: ownerID},
	)

	if percent < 1 || percent > 100 {
		return state.RewardCode{}, ErrInvalidPercent
	}

	code := p.newCode(guildID, ownerID, state.CodeKindDiscount, p.cfg.DiscountValidity)
	code.Percent = percent
	p.store.PutCode(code)
	p.persister.ScheduleSave(persistence.ModeImmediate)

	p.deliver(ctx, code)
	if err := p.publisher.PublishRewardIssued(ctx, code); err != nil {
		p.logger.WarnWithError(ctx, "failed to publish reward issued event", err)
	}

	p.logger.Info(ctx, "discount code dropped", observability.Field{Key: "percent", Value: percent})
	return code, nil
}

// ListCodes returns the active codes of an owner
func (p *RewardProcessor) ListCodes(ctx context.Context, ownerID string) []state.RewardCode {
	codes := p.store.CodesByOwner(ownerID)
	if codes == nil {
		codes = []state.RewardCode{}
	}
	return codes
}

// SweepExpired deletes expired codes locally and from the remote document.
func (p *RewardProcessor) SweepExpired(ctx context.Context) (int, error) {
	expired := p.store.ExpiredCodes(p.now())
	for _, code := range expired {
		p.store.DeleteCode(code.Token)
		if err := p.persister.DeleteCode(ctx, code.Token); err != nil {
			p.logger.WarnWithError(ctx, fmt.Sprintf("failed to delete expired code %s remotely", code.Token), err)
		}
	}
	if len(expired) > 0 {
		p.logger.Info(ctx, "expired codes swept", observability.Field{Key: "count", Value: len(expired)})
	}
	return len(expired), nil
}

// deliver hands the code to the notifier. A failed delivery leaves the code valid.
func (p *RewardProcessor) deliver(ctx context.Context, code state.RewardCode) {
	if err := p.notifier.SendRewardCode(ctx, code); err != nil {
		p.logger.WarnWithError(ctx, "failed to deliver reward code, code remains redeemable", err)
	}
}

func (p *RewardProcessor) newCode(guildID, ownerID string, kind state.CodeKind, validity time.Duration) state.RewardCode {
	prefix := "INV"
	if kind == state.CodeKindDiscount {
		prefix = "DSC"
	}
	token := generateToken(prefix)
	for p.store.CodeExists(token) {
		token = generateToken(prefix)
	}
	now := p.now().UTC()
	return state.RewardCode{
		Token:     token,
		GuildID:   guildID,
		OwnerID:   ownerID,
		Kind:      kind,
		CreatedAt: now,
		ExpiresAt: now.Add(validity),
	}
}

func generateToken(prefix string) string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return prefix + "-" + raw[:12]
}
