package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	adminHandler "guild-bot/internal/admin/handler"
	adminProcessor "guild-bot/internal/admin/processor"
	authHandler "guild-bot/internal/auth/handler"
	authProcessor "guild-bot/internal/auth/processor"
	"guild-bot/internal/clients/discord"
	kafkaClient "guild-bot/internal/clients/kafka"
	redisClient "guild-bot/internal/clients/redis"
	"guild-bot/internal/config"
	"guild-bot/internal/events"
	giveawayProcessor "guild-bot/internal/giveaways/processor"
	"guild-bot/internal/intentlog"
	inviteProcessor "guild-bot/internal/invites/processor"
	"guild-bot/internal/jobs/scheduler"
	"guild-bot/internal/jobs/scheduler/jobs"
	"guild-bot/internal/observability"
	"guild-bot/internal/persistence"
	"guild-bot/internal/ratelimit"
	rewardProcessor "guild-bot/internal/rewards/processor"
	"guild-bot/internal/router"
	"guild-bot/internal/state"
	"guild-bot/internal/store"
	ticketProcessor "guild-bot/internal/tickets/processor"
	"guild-bot/internal/workers"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	State   *state.Store
	Journal *intentlog.Log
	Gateway *persistence.Gateway
	Logger  *observability.Logger

	// Event processing
	Loop      workers.EventLoop
	Scheduler *scheduler.Scheduler
	Giveaways *giveawayProcessor.GiveawayProcessor
	Discord   *discord.Client

	// Handlers
	AuthHandler  authHandler.Handler
	AdminHandler adminHandler.Handler

	// Kafka producer (for cleanup), nil when streaming is disabled
	KafkaProducer *kafkaClient.Producer

	closers []func() error
}

// Initialize sets up all application dependencies and restores saved state
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Local intent log
	if err := os.MkdirAll(filepath.Dir(cfg.Persistence.IntentLogPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create intent log directory: %w", err)
	}
	journal, err := intentlog.Open(cfg.Persistence.IntentLogPath)
	if err != nil {
		return nil, err
	}
	deps.Journal = journal
	deps.closers = append(deps.closers, journal.Close)

	deps.State = state.New(journal, logger)

	// Remote document store
	documents, err := deps.documentStore(ctx, cfg, logger)
	if err != nil {
		deps.Cleanup()
		return nil, err
	}

	deps.Gateway = persistence.New(documents, deps.State, journal, persistence.Config{
		Identity:       cfg.Store.Identity,
		ImmediateDelay: cfg.Persistence.ImmediateDelay,
		BatchedDelay:   cfg.Persistence.BatchedDelay,
	}, logger)
	if _, err := deps.Gateway.Restore(ctx); err != nil {
		deps.Cleanup()
		return nil, fmt.Errorf("failed to restore state: %w", err)
	}

	// Event stream. A nil producer turns publishing into a no-op.
	var producer events.EventProducer
	if brokers := cfg.Kafka.BrokerList(); len(brokers) > 0 {
		deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: brokers,
			Topic:   cfg.Kafka.Topic,
		}, logger)
		producer = deps.KafkaProducer
	}
	publisher := events.NewPublisher(producer, logger)

	// Messaging surface
	deps.Discord, err = discord.New(discord.Config{
		Token:             cfg.Discord.Token,
		StartupMaxRetries: cfg.Discord.StartupMaxRetries,
		TicketCategoryID:  cfg.Tickets.CategoryID,
		StaffRoleID:       cfg.Tickets.StaffRole,
	}, logger)
	if err != nil {
		deps.Cleanup()
		return nil, err
	}

	// Processors
	limiter := ratelimit.NewService(deps.State, cfg.Invites.RateLimitWindow, cfg.Invites.RateLimitMax, logger)

	rewards := rewardProcessor.New(deps.State, deps.Discord, deps.Gateway, publisher, rewardProcessor.Config{
		TierSize:         cfg.Rewards.TierSize,
		Validity:         cfg.Rewards.Validity,
		DiscountValidity: cfg.Rewards.DiscountValidity,
	}, logger)

	invites := inviteProcessor.New(deps.State, deps.Discord, limiter, rewards, deps.Gateway, publisher,
		inviteProcessor.Config{SuspectAccountAge: cfg.Invites.SuspectAccountAge}, logger)

	admin := adminProcessor.New(deps.State, rewards, deps.Gateway,
		adminProcessor.Config{ReportAccountAge: cfg.Invites.ReportAccountAge}, logger)

	tickets := ticketProcessor.New(deps.State, deps.Discord, rewards, deps.Gateway, publisher,
		ticketProcessor.Config{Cooldown: cfg.Tickets.Cooldown}, logger)

	deps.Giveaways = giveawayProcessor.New(deps.State, deps.Discord, deps.Gateway, logger)

	// Router and the single consumer loop
	rt := router.New(invites, admin, rewards, tickets, deps.Giveaways, limiter, logger)
	deps.Loop = workers.NewEventLoop(workers.DefaultLoopConfig(), rt, logger)

	deps.Giveaways.OnTimer(func(id string) {
		if err := deps.Loop.Submit(context.Background(), router.GiveawayTimerFired{GiveawayID: id}); err != nil {
			logger.Error(context.Background(), "failed to submit giveaway timer", err)
		}
	})
	deps.Discord.Attach(deps.Loop, deps.State)

	// Maintenance jobs
	deps.Scheduler = scheduler.New(logger)
	deps.Scheduler.Register(jobs.NewCodeExpiryJob(deps.Loop, 0))
	deps.Scheduler.Register(jobs.NewRateWindowPruneJob(deps.Loop, 0))

	// Admin API
	deps.AuthHandler = authHandler.New(authProcessor.New(cfg.Server.JWTSecret, logger), logger)
	deps.AdminHandler = adminHandler.New(admin, rewards, deps.Loop, logger)

	return deps, nil
}

func (d *Dependencies) documentStore(ctx context.Context, cfg *config.Config, logger *observability.Logger) (persistence.DocumentStore, error) {
	switch cfg.Store.Backend {
	case config.StoreBackendRedis:
		client, err := redisClient.NewClient(cfg.Redis, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		d.closers = append(d.closers, client.Close)
		return client, nil
	default:
		db, err := store.New(cfg.Database.ConnectionString(), logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		d.closers = append(d.closers, db.Close)
		if err := db.Ping(ctx); err != nil {
			return nil, fmt.Errorf("failed to reach database: %w", err)
		}
		return &db, nil
	}
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	var errs []error
	if d.KafkaProducer != nil {
		errs = append(errs, d.KafkaProducer.Close())
	}
	for i := len(d.closers) - 1; i >= 0; i-- {
		errs = append(errs, d.closers[i]())
	}
	if err := errors.Join(errs...); err != nil {
		d.Logger.Error(context.Background(), "failed to release resources", err)
	}
}
