package router

import (
	"errors"
	"fmt"
	"strings"

	"guild-bot/internal/state"
)

var ErrUnknownComponent = errors.New("unknown component")

const (
	componentTicket   = "ticket"
	componentGiveaway = "giveaway"
)

// Button is an interactive component attached to a reply.
type Button struct {
	CustomID string
	Label    string
	Danger   bool
}

// TicketComponentID builds the custom id of a ticket button.
func TicketComponentID(action, ticketID string) string {
	return componentTicket + ":" + action + ":" + ticketID
}

// GiveawayComponentID builds the custom id of a giveaway button.
func GiveawayComponentID(action, giveawayID string) string {
	return componentGiveaway + ":" + action + ":" + giveawayID
}

// ParseComponent turns a button custom id of the form <scope>:<action>:<id> into
// its event.
func ParseComponent(customID string, actor Actor) (Event, error) {
	parts := strings.SplitN(customID, ":", 3)
	if len(parts) != 3 || parts[2] == "" {
		return nil, fmt.Errorf("%q: %w", customID, ErrUnknownComponent)
	}
	scope, action, id := parts[0], parts[1], parts[2]

	switch scope {
	case componentTicket:
		switch action {
		case "open":
			return TicketOpen{Actor: actor, Kind: state.TicketKind(id)}, nil
		case "claim":
			return TicketClaim{Actor: actor, TicketID: id}, nil
		case "unclaim":
			return TicketUnclaim{Actor: actor, TicketID: id}, nil
		case "close":
			return TicketClose{Actor: actor, TicketID: id}, nil
		}
	case componentGiveaway:
		switch action {
		case "enter":
			return GiveawayEnter{Actor: actor, GiveawayID: id}, nil
		case "leave":
			return GiveawayWithdraw{Actor: actor, GiveawayID: id}, nil
		case "end":
			return GiveawayEnd{Actor: actor, GiveawayID: id}, nil
		case "reroll":
			return GiveawayReroll{Actor: actor, GiveawayID: id, Count: 1}, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", customID, ErrUnknownComponent)
}
