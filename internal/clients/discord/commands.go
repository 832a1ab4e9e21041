package discord

import (
	"errors"
	"fmt"
	"time"

	"guild-bot/internal/router"
	"guild-bot/internal/state"

	"github.com/bwmarrin/discordgo"
)

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrNotTicketChannel = errors.New("this command only works inside a ticket channel")
	ErrInvalidDuration  = errors.New("invalid duration")
)

const staffPermissions = discordgo.PermissionAdministrator | discordgo.PermissionManageServer

func counterChoices() []*discordgo.ApplicationCommandOptionChoice {
	var out []*discordgo.ApplicationCommandOptionChoice
	for _, k := range []state.CounterKind{state.CounterValid, state.CounterLeaves, state.CounterSuspect, state.CounterBonus} {
		out = append(out, &discordgo.ApplicationCommandOptionChoice{Name: string(k), Value: string(k)})
	}
	return out
}

func opChoices() []*discordgo.ApplicationCommandOptionChoice {
	var out []*discordgo.ApplicationCommandOptionChoice
	for _, op := range []string{"add", "subtract", "set", "clear"} {
		out = append(out, &discordgo.ApplicationCommandOptionChoice{Name: op, Value: op})
	}
	return out
}

// commands is the slash command set installed in every guild
func commands() []*discordgo.ApplicationCommand {
	staffOnly := int64(staffPermissions)
	user := func(required bool) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{Type: discordgo.ApplicationCommandOptionUser, Name: "user", Description: "Member", Required: required}
	}

	return []*discordgo.ApplicationCommand{
		{Name: "invites", Description: "Show invite counts", Options: []*discordgo.ApplicationCommandOption{user(false)}},
		{Name: "leaderboard", Description: "Top inviters", Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionInteger, Name: "limit", Description: "How many to show"},
		}},
		{Name: "adjust-invites", Description: "Adjust an invite counter", DefaultMemberPermissions: &staffOnly, Options: []*discordgo.ApplicationCommandOption{
			user(true),
			{Type: discordgo.ApplicationCommandOptionString, Name: "counter", Description: "Counter", Required: true, Choices: counterChoices()},
			{Type: discordgo.ApplicationCommandOptionString, Name: "op", Description: "Operation", Required: true, Choices: opChoices()},
			{Type: discordgo.ApplicationCommandOptionInteger, Name: "amount", Description: "Amount"},
		}},
		{Name: "redeem", Description: "Redeem a reward or discount code", Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "code", Description: "Code", Required: true},
		}},
		{Name: "codes", Description: "List your active codes"},
		{Name: "drop-discount", Description: "Send a discount code", DefaultMemberPermissions: &staffOnly, Options: []*discordgo.ApplicationCommandOption{
			user(true),
			{Type: discordgo.ApplicationCommandOptionInteger, Name: "percent", Description: "Percent off", Required: true},
		}},
		{Name: "ticket", Description: "Open a ticket", Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "kind", Description: "Ticket type", Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "support", Value: string(state.TicketKindSupport)},
				{Name: "purchase", Value: string(state.TicketKindPurchase)},
			}},
		}},
		{Name: "close-ticket", Description: "Close this ticket", DefaultMemberPermissions: &staffOnly, Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "item", Description: "Item sold"},
			{Type: discordgo.ApplicationCommandOptionInteger, Name: "amount", Description: "Sale amount in cents"},
		}},
		{Name: "giveaway", Description: "Start a giveaway in this channel", DefaultMemberPermissions: &staffOnly, Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "prize", Description: "Prize", Required: true},
			{Type: discordgo.ApplicationCommandOptionString, Name: "duration", Description: "Duration such as 30m or 2h", Required: true},
			{Type: discordgo.ApplicationCommandOptionInteger, Name: "winners", Description: "Number of winners"},
		}},
		{Name: "giveaway-end", Description: "End a giveaway now", DefaultMemberPermissions: &staffOnly, Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "giveaway_id", Description: "Giveaway", Required: true},
		}},
		{Name: "reroll", Description: "Reroll giveaway winners", DefaultMemberPermissions: &staffOnly, Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "giveaway_id", Description: "Giveaway", Required: true},
			{Type: discordgo.ApplicationCommandOptionInteger, Name: "count", Description: "Winners to draw"},
		}},
	}
}

type options map[string]*discordgo.ApplicationCommandInteractionDataOption

func optionMap(opts []*discordgo.ApplicationCommandInteractionDataOption) options {
	m := make(options, len(opts))
	for _, o := range opts {
		m[o.Name] = o
	}
	return m
}

func (o options) str(name string) string {
	if opt, ok := o[name]; ok {
		return opt.StringValue()
	}
	return ""
}

func (o options) num(name string, def int) int {
	if opt, ok := o[name]; ok {
		return int(opt.IntValue())
	}
	return def
}

func (o options) user(name string) string {
	if opt, ok := o[name]; ok {
		if u := opt.UserValue(nil); u != nil {
			return u.ID
		}
	}
	return ""
}

// actor identifies who triggered an interaction and whether they count as staff
func (c *Client) actor(i *discordgo.Interaction) router.Actor {
	a := router.Actor{GuildID: i.GuildID}
	if i.Member != nil {
		if i.Member.User != nil {
			a.UserID = i.Member.User.ID
		}
		a.IsStaff = i.Member.Permissions&staffPermissions != 0
		if c.cfg.StaffRoleID != "" {
			for _, role := range i.Member.Roles {
				if role == c.cfg.StaffRoleID {
					a.IsStaff = true
				}
			}
		}
	} else if i.User != nil {
		a.UserID = i.User.ID
	}
	return a
}

// interactionEvent converts a slash command or button press into a router event
func (c *Client) interactionEvent(i *discordgo.Interaction) (router.Event, error) {
	actor := c.actor(i)

	switch i.Type {
	case discordgo.InteractionMessageComponent:
		return router.ParseComponent(i.MessageComponentData().CustomID, actor)
	case discordgo.InteractionApplicationCommand:
	default:
		return nil, ErrUnknownCommand
	}

	data := i.ApplicationCommandData()
	opts := optionMap(data.Options)

	switch data.Name {
	case "invites":
		return router.InvitesCommand{Actor: actor, TargetID: opts.user("user")}, nil
	case "leaderboard":
		return router.LeaderboardCommand{Actor: actor, Limit: opts.num("limit", 0)}, nil
	case "adjust-invites":
		return router.AdjustInvitesCommand{
			Actor:    actor,
			TargetID: opts.user("user"),
			Counter:  state.CounterKind(opts.str("counter")),
			Op:       opts.str("op"),
			Amount:   opts.num("amount", 0),
		}, nil
	case "redeem":
		token := opts.str("code")
		if t, ok := c.ticketIn(i.ChannelID); ok {
			return router.TicketRedeem{Actor: actor, TicketID: t.ID, Token: token}, nil
		}
		return router.RedeemCommand{Actor: actor, Token: token}, nil
	case "codes":
		return router.CodesCommand{Actor: actor}, nil
	case "drop-discount":
		return router.DropDiscountCommand{Actor: actor, TargetID: opts.user("user"), Percent: opts.num("percent", 0)}, nil
	case "ticket":
		kind := state.TicketKind(opts.str("kind"))
		if kind == "" {
			kind = state.TicketKindSupport
		}
		return router.TicketOpen{Actor: actor, Kind: kind}, nil
	case "close-ticket":
		t, ok := c.ticketIn(i.ChannelID)
		if !ok {
			return nil, ErrNotTicketChannel
		}
		return router.TicketClose{
			Actor:       actor,
			TicketID:    t.ID,
			Item:        opts.str("item"),
			AmountCents: int64(opts.num("amount", 0)),
		}, nil
	case "giveaway":
		d, err := time.ParseDuration(opts.str("duration"))
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidDuration, opts.str("duration"))
		}
		return router.GiveawayStart{
			Actor:     actor,
			ChannelID: i.ChannelID,
			Prize:     opts.str("prize"),
			Winners:   opts.num("winners", 1),
			Duration:  d,
		}, nil
	case "giveaway-end":
		return router.GiveawayEnd{Actor: actor, GiveawayID: opts.str("giveaway_id")}, nil
	case "reroll":
		return router.GiveawayReroll{Actor: actor, GiveawayID: opts.str("giveaway_id"), Count: opts.num("count", 1)}, nil
	}
	return nil, fmt.Errorf("%q: %w", data.Name, ErrUnknownCommand)
}

func (c *Client) ticketIn(channelID string) (state.Ticket, bool) {
	if c.tickets == nil {
		return state.Ticket{}, false
	}
	t, ok := c.tickets.TicketByChannel(channelID)
	if !ok || t.Status == state.TicketStatusClosed {
		return state.Ticket{}, false
	}
	return t, true
}

// publicReply reports whether the reply to an event is shown to the whole channel
func publicReply(ev router.Event) bool {
	switch ev.(type) {
	case router.InvitesCommand, router.LeaderboardCommand, router.TicketClaim, router.TicketUnclaim, router.TicketRedeem:
		return true
	}
	return false
}
