package discord

import (
	"context"
	"fmt"
	"strings"

	"guild-bot/internal/router"
	"guild-bot/internal/state"

	"github.com/bwmarrin/discordgo"
)

// FetchInvites returns the guild's current invite links
func (c *Client) FetchInvites(ctx context.Context, guildID string) ([]state.InviteLink, error) {
	invites, err := c.session.GuildInvites(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invites: %w", err)
	}
	links := make([]state.InviteLink, 0, len(invites))
	for _, inv := range invites {
		links = append(links, inviteLink(inv))
	}
	return links, nil
}

func inviteLink(inv *discordgo.Invite) state.InviteLink {
	link := state.InviteLink{Code: inv.Code, Uses: inv.Uses, MaxUses: inv.MaxUses}
	if inv.Inviter != nil {
		link.InviterID = inv.Inviter.ID
	}
	return link
}

// GuildOwner returns the owner account of a guild. Owners rarely change so the
// answer is cached for the process lifetime.
func (c *Client) GuildOwner(ctx context.Context, guildID string) (string, error) {
	c.mu.Lock()
	owner, ok := c.ownerCache[guildID]
	c.mu.Unlock()
	if ok {
		return owner, nil
	}

	g, err := c.session.Guild(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to fetch guild: %w", err)
	}
	c.mu.Lock()
	c.ownerCache[guildID] = g.OwnerID
	c.mu.Unlock()
	return g.OwnerID, nil
}

// SendRewardCode delivers a freshly issued code by direct message
func (c *Client) SendRewardCode(ctx context.Context, code state.RewardCode) error {
	dm, err := c.session.UserChannelCreate(code.OwnerID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to open dm channel: %w", err)
	}

	var body string
	switch code.Kind {
	case state.CodeKindDiscount:
		body = fmt.Sprintf("You received a **%d%% discount** code: `%s`", code.Percent, code.Token)
	default:
		body = fmt.Sprintf("You reached invite tier %d! Your reward code: `%s`", code.Tier, code.Token)
	}
	body += fmt.Sprintf("\nRedeem it in a ticket before <t:%d:f>.", code.ExpiresAt.Unix())

	if _, err := c.session.ChannelMessageSendComplex(dm.ID, &discordgo.MessageSend{Content: body}, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to send dm: %w", err)
	}
	return nil
}

// CreateTicketChannel creates a private channel visible to the opener and staff
func (c *Client) CreateTicketChannel(ctx context.Context, guildID, openerID, name string) (string, error) {
	const access = discordgo.PermissionViewChannel | discordgo.PermissionSendMessages | discordgo.PermissionReadMessageHistory

	overwrites := []*discordgo.PermissionOverwrite{
		{ID: guildID, Type: discordgo.PermissionOverwriteTypeRole, Deny: discordgo.PermissionViewChannel},
		{ID: openerID, Type: discordgo.PermissionOverwriteTypeMember, Allow: access},
	}
	if c.cfg.StaffRoleID != "" {
		overwrites = append(overwrites, &discordgo.PermissionOverwrite{
			ID: c.cfg.StaffRoleID, Type: discordgo.PermissionOverwriteTypeRole, Allow: access,
		})
	}

	ch, err := c.session.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
		Name:                 strings.ToLower(name),
		Type:                 discordgo.ChannelTypeGuildText,
		ParentID:             c.cfg.TicketCategoryID,
		PermissionOverwrites: overwrites,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to create channel: %w", err)
	}
	return ch.ID, nil
}

func (c *Client) DeleteChannel(ctx context.Context, channelID string) error {
	if _, err := c.session.ChannelDelete(channelID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to delete channel: %w", err)
	}
	return nil
}

// AnnounceGiveaway posts the giveaway with its enter and leave buttons
func (c *Client) AnnounceGiveaway(ctx context.Context, g state.Giveaway) (string, error) {
	msg, err := c.session.ChannelMessageSendComplex(g.ChannelID, &discordgo.MessageSend{
		Content: fmt.Sprintf("**GIVEAWAY: %s**\n%d winner(s), hosted by <@%s>, ends <t:%d:R>.",
			g.Prize, g.WinnerCount, g.HostID, g.EndsAt.Unix()),
		Components: components([]router.Button{
			{CustomID: router.GiveawayComponentID("enter", g.ID), Label: "Enter"},
			{CustomID: router.GiveawayComponentID("leave", g.ID), Label: "Leave"},
		}),
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to post giveaway: %w", err)
	}
	return msg.ID, nil
}

func (c *Client) AnnounceWinners(ctx context.Context, g state.Giveaway) error {
	var content string
	if len(g.Winners) == 0 {
		content = fmt.Sprintf("The giveaway for **%s** ended without participants.", g.Prize)
	} else {
		mentions := make([]string, len(g.Winners))
		for i, id := range g.Winners {
			mentions[i] = "<@" + id + ">"
		}
		content = fmt.Sprintf("Congratulations %s, you won **%s**!", strings.Join(mentions, ", "), g.Prize)
	}

	send := &discordgo.MessageSend{Content: content}
	if g.MessageID != "" {
		send.Reference = &discordgo.MessageReference{MessageID: g.MessageID, ChannelID: g.ChannelID}
	}
	if _, err := c.session.ChannelMessageSendComplex(g.ChannelID, send, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to announce winners: %w", err)
	}
	return nil
}

func components(buttons []router.Button) []discordgo.MessageComponent {
	if len(buttons) == 0 {
		return nil
	}
	row := discordgo.ActionsRow{}
	for _, b := range buttons {
		style := discordgo.PrimaryButton
		if b.Danger {
			style = discordgo.DangerButton
		}
		row.Components = append(row.Components, discordgo.Button{Label: b.Label, Style: style, CustomID: b.CustomID})
	}
	return []discordgo.MessageComponent{row}
}
