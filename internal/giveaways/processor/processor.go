package processor

import (
	"context"
	"errors"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"guild-bot/internal/observability"
	"guild-bot/internal/persistence"
	"guild-bot/internal/state"

	"github.com/google/uuid"
)

var (
	ErrGiveawayNotFound = errors.New("giveaway not found")
	ErrGiveawayEnded    = errors.New("giveaway has ended")
	ErrGiveawayActive   = errors.New("giveaway is still running")
	ErrAlreadyEntered   = errors.New("already entered")
	ErrNotEntered       = errors.New("not entered")
	ErrNoEligible       = errors.New("no eligible participants left")
	ErrInvalidGiveaway  = errors.New("giveaway needs a prize, at least one winner and a positive duration")
)

// StartRequest describes a new giveaway
type StartRequest struct {
	GuildID   string
	ChannelID string
	HostID    string
	Prize     string
	Winners   int
	Duration  time.Duration
}

// TimerFunc is called from the timer goroutine when a giveaway's end time passes.
type TimerFunc func(giveawayID string)

type GiveawayProcessor struct {
	store     GiveawayStore
	announcer Announcer
	persister Persister
	now       func() time.Time
	intN      func(n int) int
	logger    *observability.Logger

	mu      sync.Mutex
	timers  map[string]*time.Timer
	onTimer TimerFunc
}

func New(store GiveawayStore, announcer Announcer, persister Persister, logger *observability.Logger) *GiveawayProcessor {
	p := &GiveawayProcessor{
		store:     store,
		announcer: announcer,
		persister: persister,
		now:       time.Now,
		intN:      rand.IntN,
		logger:    logger,
		timers:    map[string]*time.Timer{},
	}
	p.onTimer = func(id string) {
		if _, err := p.End(context.Background(), id); err != nil && !errors.Is(err, ErrGiveawayEnded) {
			p.logger.Error(context.Background(), "failed to end giveaway on timer", err)
		}
	}
	return p
}

// OnTimer replaces what runs when a giveaway timer fires. The event loop installs
// a hook that submits the end back onto the loop.
func (p *GiveawayProcessor) OnTimer(f TimerFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onTimer = f
}

func (p *GiveawayProcessor) schedule(id string, d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if t, ok := p.timers[id]; ok {
		t.Stop()
	}
	p.timers[id] = time.AfterFunc(d, func() {
		p.mu.Lock()
		delete(p.timers, id)
		fire := p.onTimer
		p.mu.Unlock()
		fire(id)
	})
}

func (p *GiveawayProcessor) cancel(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if t, ok := p.timers[id]; ok {
		t.Stop()
		delete(p.timers, id)
	}
}

// Start announces a giveaway and schedules its end.
func (p *GiveawayProcessor) Start(ctx context.Context, req StartRequest) (state.Giveaway, error) {
	if req.Prize == "" || req.Winners < 1 || req.Duration <= 0 {
		return state.Giveaway{}, ErrInvalidGiveaway
	}

	now := p.now().UTC()
	g := state.Giveaway{
		ID:          uuid.New().String(),
		GuildID:     req.GuildID,
		ChannelID:   req.ChannelID,
		HostID:      req.HostID,
		Prize:       req.Prize,
		WinnerCount: req.Winners,
		CreatedAt:   now,
		EndsAt:      now.Add(req.Duration),
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "guild_id", Value: g.GuildID},
		observability.Field{Key: "giveaway_id", Value: g.ID},
	)

	messageID, err := p.announcer.AnnounceGiveaway(ctx, g)
	if err != nil {
		p.logger.Error(ctx, "failed to announce giveaway", err)
		return state.Giveaway{}, err
	}
	g.MessageID = messageID
	p.store.PutGiveaway(g)
	p.persister.ScheduleSave(persistence.ModeImmediate)
	p.schedule(g.ID, req.Duration)

	p.logger.Info(ctx, "giveaway started",
		observability.Field{Key: "prize", Value: g.Prize},
		observability.Field{Key: "ends_at", Value: g.EndsAt},
	)
	return g, nil
}

func (p *GiveawayProcessor) active(id string) (state.Giveaway, error) {
	g, ok := p.store.Giveaway(id)
	if !ok {
		return state.Giveaway{}, ErrGiveawayNotFound
	}
	if g.Ended {
		return state.Giveaway{}, ErrGiveawayEnded
	}
	return g, nil
}

// Enter adds a participant and returns the new participant count.
func (p *GiveawayProcessor) Enter(ctx context.Context, id, userID string) (int, error) {
	g, err := p.active(id)
	if err != nil {
		return 0, err
	}
	if slices.Contains(g.Participants, userID) {
		return len(g.Participants), ErrAlreadyEntered
	}
	g.Participants = append(g.Participants, userID)
	p.store.PutGiveaway(g)
	p.persister.ScheduleSave(persistence.ModeBatched)
	return len(g.Participants), nil
}

func (p *GiveawayProcessor) Withdraw(ctx context.Context, id, userID string) (int, error) {
	g, err := p.active(id)
	if err != nil {
		return 0, err
	}
	i := slices.Index(g.Participants, userID)
	if i < 0 {
		return len(g.Participants), ErrNotEntered
	}
	g.Participants = slices.Delete(g.Participants, i, i+1)
	p.store.PutGiveaway(g)
	p.persister.ScheduleSave(persistence.ModeBatched)
	return len(g.Participants), nil
}

// End draws the winners and announces them. It is used both by the timer and by a
// host ending the giveaway early.
func (p *GiveawayProcessor) End(ctx context.Context, id string) (state.Giveaway, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "giveaway_id", Value: id})

	g, err := p.active(id)
	if err != nil {
		return state.Giveaway{}, err
	}
	p.cancel(id)

	g.Winners = p.draw(g.Participants, g.WinnerCount)
	g.Ended = true
	p.store.PutGiveaway(g)
	p.persister.ScheduleSave(persistence.ModeImmediate)

	if err := p.announcer.AnnounceWinners(ctx, g); err != nil {
		p.logger.WarnWithError(ctx, "failed to announce giveaway winners", err)
	}
	p.logger.Info(ctx, "giveaway ended",
		observability.Field{Key: "participants", Value: len(g.Participants)},
		observability.Field{Key: "winners", Value: len(g.Winners)},
	)
	return g, nil
}

// Reroll replaces the winners of an ended giveaway with participants that have
// not won it yet.
func (p *GiveawayProcessor) Reroll(ctx context.Context, id string, count int) (state.Giveaway, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "giveaway_id", Value: id})

	g, ok := p.store.Giveaway(id)
	if !ok {
		return state.Giveaway{}, ErrGiveawayNotFound
	}
	if !g.Ended {
		return state.Giveaway{}, ErrGiveawayActive
	}
	if count < 1 {
		count = 1
	}

	var pool []string
	for _, userID := range g.Participants {
		if !slices.Contains(g.Winners, userID) {
			pool = append(pool, userID)
		}
	}
	if len(pool) == 0 {
		return state.Giveaway{}, ErrNoEligible
	}

	g.Winners = p.draw(pool, count)
	p.store.PutGiveaway(g)
	p.persister.ScheduleSave(persistence.ModeImmediate)

	if err := p.announcer.AnnounceWinners(ctx, g); err != nil {
		p.logger.WarnWithError(ctx, "failed to announce rerolled winners", err)
	}
	p.logger.Info(ctx, "giveaway rerolled", observability.Field{Key: "winners", Value: len(g.Winners)})
	return g, nil
}

// Resume reschedules running giveaways after a restart. Giveaways whose end passed
// while the process was down fire immediately.
func (p *GiveawayProcessor) Resume(ctx context.Context) int {
	now := p.now()
	active := p.store.ActiveGiveaways()
	for _, g := range active {
		d := g.EndsAt.Sub(now)
		if d < 0 {
			d = 0
		}
		p.schedule(g.ID, d)
	}
	if len(active) > 0 {
		p.logger.Info(ctx, "resumed giveaway timers", observability.Field{Key: "count", Value: len(active)})
	}
	return len(active)
}

// Stop cancels every pending timer.
func (p *GiveawayProcessor) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for id, t := range p.timers {
		t.Stop()
		delete(p.timers, id)
	}
}

// draw picks up to n distinct entries with a partial Fisher-Yates shuffle.
func (p *GiveawayProcessor) draw(participants []string, n int) []string {
	pool := slices.Clone(participants)
	if n > len(pool) {
		n = len(pool)
	}
	for i := 0; i < n; i++ {
		j := i + p.intN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}
