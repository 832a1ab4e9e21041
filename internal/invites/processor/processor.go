package processor

import (
	"context"
	"sync"
	"time"

	"guild-bot/internal/observability"
	"guild-bot/internal/persistence"
	"guild-bot/internal/state"
)

// Config holds invite attribution settings
type Config struct {
	SuspectAccountAge time.Duration
}

// Join describes a member that joined a guild
type Join struct {
	GuildID          string
	MemberID         string
	AccountCreatedAt time.Time
	JoinedAt         time.Time
}

// JoinResult reports how a join was attributed
type JoinResult struct {
	InviterID    string
	InviteCode   string
	Counted      bool
	Suspect      bool
	RateLimited  bool
	Rejoin       bool
	OwnerInvite  bool
	SelfInvite   bool
	Compensated  bool
	Reattributed bool // an earlier membership's leave had not been seen yet
	Skipped      bool
	Issued       []state.RewardCode
}

// LeaveResult reports how a leave was reversed
type LeaveResult struct {
	InviterID string
	Found     bool
}

type InviteProcessor struct {
	store     InviteStore
	source    InviteSource
	limiter   RateLimiter
	evaluator Evaluator
	persister Persister
	publisher EventPublisher
	cfg       Config
	now       func() time.Time
	logger    *observability.Logger

	mu     sync.Mutex
	guilds map[string]*sync.Mutex
}

func New(
	store InviteStore,
	source InviteSource,
	limiter RateLimiter,
	evaluator Evaluator,
	persister Persister,
	publisher EventPublisher,
	cfg Config,
	logger *observability.Logger,
) *InviteProcessor {
	return &InviteProcessor{
		store:     store,
		source:    source,
		limiter:   limiter,
		evaluator: evaluator,
		persister: persister,
		publisher: publisher,
		cfg:       cfg,
		now:       time.Now,
		logger:    logger,
		guilds:    map[string]*sync.Mutex{},
	}
}

// guildLock returns the mutex guarding a guild's fetch, diff and replace sequence.
func (p *InviteProcessor) guildLock(guildID string) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()

	l, ok := p.guilds[guildID]
	if !ok {
		l = &sync.Mutex{}
		p.guilds[guildID] = l
	}
	return l
}

// IsSuspect reports whether an account is younger than the suspect threshold. An
// account exactly at the threshold is not suspect.
func (p *InviteProcessor) IsSuspect(accountCreatedAt time.Time) bool {
	return p.now().Sub(accountCreatedAt) < p.cfg.SuspectAccountAge
}

// HandleJoin attributes a join to an inviter and updates the counters. Failures to
// reach the platform skip attribution but never fail the join itself.
func (p *InviteProcessor) HandleJoin(ctx context.Context, join Join) JoinResult {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "guild_id", Value: join.GuildID},
		observability.Field{Key: "member_id", Value: join.MemberID},
	)

	var result JoinResult
	// the leave for an earlier membership can arrive after this join
	if prev, ok := p.store.Attribution(join.GuildID, join.MemberID); ok {
		p.reverseCounters(join.GuildID, prev)
		p.store.DeleteAttribution(join.GuildID, join.MemberID)
		result.Reattributed = true
		p.logger.Warn(ctx, "join for an attributed member, reversed previous attribution",
			observability.Field{Key: "previous_inviter_id", Value: prev.InviterID})
	}
	if c, ok := p.store.TakeCompensation(join.GuildID, join.MemberID); ok {
		p.store.AddCounter(join.GuildID, state.CounterLeaves, c.InviterID, -1)
		result.Compensated = true
		p.logger.Info(ctx, "rejoin compensated earlier leave", observability.Field{Key: "inviter_id", Value: c.InviterID})
	}

	link, found, err := p.resolveInvite(ctx, join.GuildID)
	if err != nil {
		p.logger.WarnWithError(ctx, "failed to fetch invites, skipping attribution", err)
		result.Skipped = true
		p.finishJoin(result)
		return result
	}
	if !found {
		p.logger.Info(ctx, "join could not be attributed to an invite")
		p.finishJoin(result)
		return result
	}

	inviterID := link.InviterID
	result.InviterID = inviterID
	result.InviteCode = link.Code
	ctx = observability.WithFields(ctx, observability.Field{Key: "inviter_id", Value: inviterID})

	attribution := state.Attribution{
		InviterID:        inviterID,
		AccountCreatedAt: join.AccountCreatedAt,
		JoinedAt:         join.JoinedAt,
	}
	p.store.AddCounter(join.GuildID, state.CounterTotalJoined, inviterID, 1)

	result.SelfInvite = inviterID == join.MemberID
	result.OwnerInvite = p.isOwner(ctx, join.GuildID, inviterID)
	if result.SelfInvite || result.OwnerInvite {
		p.store.PutAttribution(join.GuildID, join.MemberID, attribution)
		p.logger.Info(ctx, "owner or self invite tracked without credit")
		p.finishJoin(result)
		p.publish(ctx, join, result)
		return result
	}

	result.Suspect = p.IsSuspect(join.AccountCreatedAt)
	allowed := p.limiter.Allow(ctx, join.GuildID, inviterID).Allowed

	switch {
	case result.Suspect:
		p.store.AddCounter(join.GuildID, state.CounterSuspect, inviterID, 1)
	case !allowed:
		result.RateLimited = true
	case p.store.WasCredited(join.GuildID, join.MemberID, inviterID):
		result.Rejoin = true
	default:
		p.store.AddCounter(join.GuildID, state.CounterValid, inviterID, 1)
		p.store.MarkCredited(join.GuildID, join.MemberID, inviterID)
		result.Counted = true
	}

	attribution.Counted = result.Counted
	attribution.Suspect = result.Suspect
	p.store.PutAttribution(join.GuildID, join.MemberID, attribution)

	result.Issued = p.evaluator.Evaluate(ctx, join.GuildID, inviterID)

	p.logger.Info(ctx, "join attributed",
		observability.Field{Key: "counted", Value: result.Counted},
		observability.Field{Key: "suspect", Value: result.Suspect},
		observability.Field{Key: "rate_limited", Value: result.RateLimited},
		observability.Field{Key: "rejoin", Value: result.Rejoin},
	)
	p.finishJoin(result)
	p.publish(ctx, join, result)
	return result
}

// resolveInvite fetches the fresh snapshot, diffs it against the cache and
// replaces the cache. The sequence runs under the guild's lock.
func (p *InviteProcessor) resolveInvite(ctx context.Context, guildID string) (state.InviteLink, bool, error) {
	l := p.guildLock(guildID)
	l.Lock()
	defer l.Unlock()

	fresh, err := p.source.FetchInvites(ctx, guildID)
	if err != nil {
		return state.InviteLink{}, false, err
	}
	link, found := diffInvites(p.store.InviteLinks(guildID), fresh)
	p.store.ReplaceInviteLinks(guildID, fresh)
	return link, found, nil
}

func (p *InviteProcessor) isOwner(ctx context.Context, guildID, userID string) bool {
	ownerID, err := p.source.GuildOwner(ctx, guildID)
	if err != nil {
		p.logger.WarnWithError(ctx, "failed to look up guild owner", err)
		return false
	}
	return ownerID == userID
}

func (p *InviteProcessor) finishJoin(result JoinResult) {
	if result.Compensated || result.InviterID != "" {
		p.persister.ScheduleSave(persistence.ModeImmediate)
	}
}

func (p *InviteProcessor) publish(ctx context.Context, join Join, result JoinResult) {
	if err := p.publisher.PublishMemberAttributed(ctx, join.GuildID, join.MemberID, result.InviterID, result.Counted, result.Suspect); err != nil {
		p.logger.WarnWithError(ctx, "failed to publish member attributed event", err)
	}
}

// HandleLeave reverses the attribution recorded for a member. A member without an
// attribution is ignored.
func (p *InviteProcessor) HandleLeave(ctx context.Context, guildID, memberID string) LeaveResult {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "guild_id", Value: guildID},
		observability.Field{Key: "member_id", Value: memberID},
	)

	a, ok := p.store.Attribution(guildID, memberID)
	if !ok {
		p.logger.Debug(ctx, "leave without attribution ignored")
		return LeaveResult{}
	}

	p.reverseCounters(guildID, a)
	p.store.AddCounter(guildID, state.CounterLeaves, a.InviterID, 1)
	p.store.PutCompensation(guildID, memberID, a.InviterID, p.now().UTC())
	p.store.DeleteAttribution(guildID, memberID)
	p.persister.ScheduleSave(persistence.ModeImmediate)

	p.logger.Info(ctx, "leave reversed attribution",
		observability.Field{Key: "inviter_id", Value: a.InviterID},
		observability.Field{Key: "was_counted", Value: a.Counted},
	)
	if err := p.publisher.PublishMemberLeft(ctx, guildID, memberID, a.InviterID); err != nil {
		p.logger.WarnWithError(ctx, "failed to publish member left event", err)
	}
	return LeaveResult{InviterID: a.InviterID, Found: true}
}

// reverseCounters undoes what a join credited to the attribution's inviter.
func (p *InviteProcessor) reverseCounters(guildID string, a state.Attribution) {
	if a.Counted {
		p.store.AddCounter(guildID, state.CounterValid, a.InviterID, -1)
	}
	p.store.AddCounter(guildID, state.CounterTotalJoined, a.InviterID, -1)
	if a.Suspect {
		p.store.AddCounter(guildID, state.CounterSuspect, a.InviterID, -1)
	}
}

// HandleInviteCreated adds a new link to the cached snapshot.
func (p *InviteProcessor) HandleInviteCreated(ctx context.Context, guildID string, link state.InviteLink) {
	l := p.guildLock(guildID)
	l.Lock()
	defer l.Unlock()
	p.store.UpsertInviteLink(guildID, link)
}

// HandleInviteDeleted drops a link from the cached snapshot.
func (p *InviteProcessor) HandleInviteDeleted(ctx context.Context, guildID, code string) {
	l := p.guildLock(guildID)
	l.Lock()
	defer l.Unlock()
	p.store.RemoveInviteLink(guildID, code)
}

// RefreshInvites replaces the cached snapshot with the platform's current links.
func (p *InviteProcessor) RefreshInvites(ctx context.Context, guildID string) error {
	l := p.guildLock(guildID)
	l.Lock()
	defer l.Unlock()

	fresh, err := p.source.FetchInvites(ctx, guildID)
	if err != nil {
		p.logger.WarnWithError(observability.WithFields(ctx, observability.Field{Key: "guild_id", Value: guildID}),
			"failed to refresh invites", err)
		return err
	}
	p.store.ReplaceInviteLinks(guildID, fresh)
	return nil
}
