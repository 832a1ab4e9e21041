package discord

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"guild-bot/internal/observability"
	"guild-bot/internal/router"
	"guild-bot/internal/state"

	"github.com/bwmarrin/discordgo"
	"github.com/cenkalti/backoff/v5"
)

var ErrNotAttached = errors.New("discord client has no event loop attached")

// Session is the subset of *discordgo.Session the client uses
type Session interface {
	Open() error
	Close() error
	AddHandler(handler interface{}) func()
	GuildInvites(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Invite, error)
	Guild(guildID string, options ...discordgo.RequestOption) (*discordgo.Guild, error)
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	GuildChannelCreateComplex(guildID string, data discordgo.GuildChannelCreateData, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelDelete(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

// EventLoop is where converted platform events are sent
type EventLoop interface {
	Submit(ctx context.Context, event router.Event) error
	Do(ctx context.Context, event router.Event) (router.Reply, error)
}

// TicketLocator resolves the ticket bound to a channel
type TicketLocator interface {
	TicketByChannel(channelID string) (state.Ticket, bool)
}

// Config holds gateway and ticket placement settings
type Config struct {
	Token             string
	StartupMaxRetries int
	TicketCategoryID  string
	StaffRoleID       string
	InteractionWait   time.Duration
}

// Client adapts the chat platform gateway to the bot
type Client struct {
	session Session
	cfg     Config
	loop    EventLoop
	tickets TicketLocator
	logger  *observability.Logger

	mu         sync.Mutex
	appID      string
	ownerCache map[string]string
}

// New creates a client on a fresh discordgo session
func New(cfg Config, logger *observability.Logger) (*Client, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildInvites
	// handlers only enqueue onto the event loop, so running them on the gateway
	// goroutine keeps a member's remove and re-add in delivery order
	s.SyncEvents = true
	return NewFromSession(s, cfg, logger), nil
}

// NewFromSession wraps an existing session
func NewFromSession(s Session, cfg Config, logger *observability.Logger) *Client {
	if cfg.StartupMaxRetries <= 0 {
		cfg.StartupMaxRetries = 5
	}
	if cfg.InteractionWait <= 0 {
		cfg.InteractionWait = 10 * time.Second
	}
	return &Client{
		session:    s,
		cfg:        cfg,
		logger:     logger,
		ownerCache: map[string]string{},
	}
}

// Attach wires the event loop and ticket lookup. It must be called before Start.
func (c *Client) Attach(loop EventLoop, tickets TicketLocator) {
	c.loop = loop
	c.tickets = tickets
}

// Start registers gateway handlers and opens the session, retrying with bounded
// exponential backoff. The returned error is fatal for the process.
func (c *Client) Start(ctx context.Context) error {
	if c.loop == nil {
		return ErrNotAttached
	}
	c.registerHandlers()

	attempt := 0
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		attempt++
		if err := c.session.Open(); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(uint(c.cfg.StartupMaxRetries)),
		backoff.WithNotify(func(err error, next time.Duration) {
			c.logger.Warn(ctx, "gateway login failed, retrying",
				observability.Field{Key: "attempt", Value: attempt},
				observability.Field{Key: "retry_in", Value: next.String()},
				observability.Field{Key: "error", Value: err.Error()},
			)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to open gateway session after %d attempts: %w", attempt, err)
	}

	c.logger.Info(ctx, "gateway session opened", observability.Field{Key: "attempts", Value: attempt})
	return nil
}

// RegisterCommands installs the slash commands for one guild.
func (c *Client) RegisterCommands(ctx context.Context, appID, guildID string) error {
	if _, err := c.session.ApplicationCommandBulkOverwrite(appID, guildID, commands()); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}
	c.logger.Info(ctx, "slash commands registered", observability.Field{Key: "guild_id", Value: guildID})
	return nil
}

// Close closes the gateway session
func (c *Client) Close() error {
	return c.session.Close()
}
