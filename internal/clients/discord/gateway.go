package discord

import (
	"context"
	"errors"

	"guild-bot/internal/observability"
	"guild-bot/internal/router"

	"github.com/bwmarrin/discordgo"
)

func (c *Client) registerHandlers() {
	c.session.AddHandler(c.onReady)
	c.session.AddHandler(c.onGuildCreate)
	c.session.AddHandler(c.onMemberAdd)
	c.session.AddHandler(c.onMemberRemove)
	c.session.AddHandler(c.onInviteCreate)
	c.session.AddHandler(c.onInviteDelete)
	c.session.AddHandler(c.onInteraction)
}

func (c *Client) submit(ctx context.Context, ev router.Event) {
	if err := c.loop.Submit(ctx, ev); err != nil {
		c.logger.Error(ctx, "failed to submit gateway event", err)
	}
}

func (c *Client) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	c.mu.Lock()
	c.appID = r.User.ID
	c.mu.Unlock()
	c.logger.Info(context.Background(), "gateway ready",
		observability.Field{Key: "user", Value: r.User.Username},
		observability.Field{Key: "guilds", Value: len(r.Guilds)},
	)
}

func (c *Client) onGuildCreate(_ *discordgo.Session, g *discordgo.GuildCreate) {
	ctx := observability.WithFields(context.Background(), observability.Field{Key: "guild_id", Value: g.ID})

	c.mu.Lock()
	appID := c.appID
	c.ownerCache[g.ID] = g.OwnerID
	c.mu.Unlock()

	if appID != "" {
		if err := c.RegisterCommands(ctx, appID, g.ID); err != nil {
			c.logger.Error(ctx, "failed to register slash commands", err)
		}
	}
	c.submit(ctx, router.GuildReady{GuildID: g.ID})
}

// memberJoined converts a member add into a join event. Bots are not attributed.
func memberJoined(guildID string, m *discordgo.Member) (router.MemberJoined, bool) {
	if m == nil || m.User == nil || m.User.Bot {
		return router.MemberJoined{}, false
	}
	created, err := discordgo.SnowflakeTimestamp(m.User.ID)
	if err != nil {
		return router.MemberJoined{}, false
	}
	return router.MemberJoined{
		GuildID:          guildID,
		MemberID:         m.User.ID,
		AccountCreatedAt: created.UTC(),
		JoinedAt:         m.JoinedAt.UTC(),
	}, true
}

func (c *Client) onMemberAdd(_ *discordgo.Session, e *discordgo.GuildMemberAdd) {
	ev, ok := memberJoined(e.GuildID, e.Member)
	if !ok {
		return
	}
	c.submit(context.Background(), ev)
}

func (c *Client) onMemberRemove(_ *discordgo.Session, e *discordgo.GuildMemberRemove) {
	if e.Member == nil || e.User == nil {
		return
	}
	c.submit(context.Background(), router.MemberLeft{GuildID: e.GuildID, MemberID: e.User.ID})
}

func (c *Client) onInviteCreate(_ *discordgo.Session, e *discordgo.InviteCreate) {
	if e.Invite == nil {
		return
	}
	c.submit(context.Background(), router.InviteCreated{GuildID: e.GuildID, Link: inviteLink(e.Invite)})
}

func (c *Client) onInviteDelete(_ *discordgo.Session, e *discordgo.InviteDelete) {
	c.submit(context.Background(), router.InviteDeleted{GuildID: e.GuildID, Code: e.Code})
}

// onInteraction acknowledges the interaction right away, runs the event through the
// loop and edits the deferred response with the reply.
func (c *Client) onInteraction(_ *discordgo.Session, e *discordgo.InteractionCreate) {
	i := e.Interaction
	ctx := observability.WithFields(context.Background(),
		observability.Field{Key: "guild_id", Value: i.GuildID},
		observability.Field{Key: "interaction_id", Value: i.ID},
	)

	ev, err := c.interactionEvent(i)
	if err != nil {
		c.respondNow(ctx, i, denial(err))
		return
	}

	var flags discordgo.MessageFlags
	if !publicReply(ev) {
		flags = discordgo.MessageFlagsEphemeral
	}
	if err := c.session.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: flags},
	}); err != nil {
		c.logger.Error(ctx, "failed to acknowledge interaction", err)
		return
	}

	waitCtx, cancel := context.WithTimeout(ctx, c.cfg.InteractionWait)
	defer cancel()

	reply, err := c.loop.Do(waitCtx, ev)
	if err != nil {
		c.logger.Error(ctx, "interaction was not processed", err)
		reply = router.Reply{Content: "The bot is busy, please try again."}
	}
	if reply.Empty() {
		reply.Content = "Done."
	}

	content := reply.Content
	comps := components(reply.Buttons)
	edit := &discordgo.WebhookEdit{Content: &content}
	if comps != nil {
		edit.Components = &comps
	}
	if _, err := c.session.InteractionResponseEdit(i, edit); err != nil {
		c.logger.Error(ctx, "failed to send interaction reply", err)
	}
}

func (c *Client) respondNow(ctx context.Context, i *discordgo.Interaction, content string) {
	err := c.session.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content, Flags: discordgo.MessageFlagsEphemeral},
	})
	if err != nil {
		c.logger.Error(ctx, "failed to respond to interaction", err)
	}
}

func denial(err error) string {
	switch {
	case errors.Is(err, ErrNotTicketChannel):
		return "Use this command inside a ticket channel."
	case errors.Is(err, ErrInvalidDuration):
		return "Durations look like 30m, 2h or 1h30m."
	case errors.Is(err, router.ErrUnknownComponent):
		return "This button is no longer active."
	}
	return "Unknown command."
}
