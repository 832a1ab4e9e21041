package state

import (
	"encoding/json"
	"fmt"
	"time"
)

// DocumentVersion is written into every saved document.
const DocumentVersion = 2

// Guild holds all per-community accounting.
type Guild struct {
	ValidInvites    map[string]int          `json:"valid_invites"`
	Leaves          map[string]int          `json:"leaves"`
	SuspectAccounts map[string]int          `json:"suspect_accounts"`
	BonusInvites    map[string]int          `json:"bonus_invites"`
	TotalJoined     map[string]int          `json:"total_joined"`
	PaidTiers       map[string][]int        `json:"paid_tiers"`
	LegacyIssued    map[string]int          `json:"rewards_issued"`
	Attributions    map[string]Attribution  `json:"attributions"`
	Compensations   map[string]Compensation `json:"compensations"`
	Credited        map[string][]string     `json:"credited"`
	RateWindows     map[string][]time.Time  `json:"rate_windows"`

	// cache of the platform's invite links, refreshed on every join
	inviteLinks map[string]InviteLink
}

func newGuild() *Guild {
	return &Guild{
		ValidInvites:    map[string]int{},
		Leaves:          map[string]int{},
		SuspectAccounts: map[string]int{},
		BonusInvites:    map[string]int{},
		TotalJoined:     map[string]int{},
		PaidTiers:       map[string][]int{},
		LegacyIssued:    map[string]int{},
		Attributions:    map[string]Attribution{},
		Compensations:   map[string]Compensation{},
		Credited:        map[string][]string{},
		RateWindows:     map[string][]time.Time{},
		inviteLinks:     map[string]InviteLink{},
	}
}

func (g *Guild) counter(kind CounterKind) map[string]int {
	switch kind {
	case CounterValid:
		return g.ValidInvites
	case CounterLeaves:
		return g.Leaves
	case CounterSuspect:
		return g.SuspectAccounts
	case CounterBonus:
		return g.BonusInvites
	case CounterTotalJoined:
		return g.TotalJoined
	}
	return nil
}

// UIState is bookkeeping used only by the interactive handlers.
type UIState struct {
	LastMessageIDs map[string]string    `json:"last_message_ids"`
	Cooldowns      map[string]time.Time `json:"cooldowns"`
	TicketSeq      int                  `json:"ticket_seq"`
}

// Document is the persisted mirror of the whole store.
type Document struct {
	Version       int                   `json:"version"`
	IntentSeq     uint64                `json:"intent_seq"`
	SavedAt       time.Time             `json:"saved_at"`
	Guilds        map[string]*Guild     `json:"guilds"`
	Codes         map[string]RewardCode `json:"codes"`
	RedeemedCodes map[string]RewardCode `json:"redeemed_codes"`
	Tickets       map[string]Ticket     `json:"tickets"`
	Giveaways     map[string]Giveaway   `json:"giveaways"`
	UI            UIState               `json:"ui"`
}

// NewDocument returns an empty document with every map allocated.
func NewDocument() Document {
	return Document{
		Version:       DocumentVersion,
		Guilds:        map[string]*Guild{},
		Codes:         map[string]RewardCode{},
		RedeemedCodes: map[string]RewardCode{},
		Tickets:       map[string]Ticket{},
		Giveaways:     map[string]Giveaway{},
		UI: UIState{
			LastMessageIDs: map[string]string{},
			Cooldowns:      map[string]time.Time{},
		},
	}
}

// DecodeDocument parses a persisted document field by field. A field that is missing
// or fails to decode is left at its empty default and reported in the returned
// problems; only a payload that is not a JSON object at all yields an error.
func DecodeDocument(raw []byte) (Document, []error, error) {
	doc := NewDocument()

	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return doc, nil, fmt.Errorf("decode document: %w", err)
	}

	var problems []error
	decodeField(top, "version", &doc.Version, "", &problems)
	decodeField(top, "intent_seq", &doc.IntentSeq, "", &problems)
	decodeField(top, "saved_at", &doc.SavedAt, "", &problems)
	decodeMap(top, "codes", doc.Codes, "", &problems)
	decodeMap(top, "redeemed_codes", doc.RedeemedCodes, "", &problems)
	decodeMap(top, "tickets", doc.Tickets, "", &problems)
	decodeMap(top, "giveaways", doc.Giveaways, "", &problems)

	if rawUI, ok := top["ui"]; ok {
		var ui map[string]json.RawMessage
		if err := json.Unmarshal(rawUI, &ui); err != nil {
			problems = append(problems, fmt.Errorf("ui: %w", err))
		} else {
			decodeMap(ui, "last_message_ids", doc.UI.LastMessageIDs, "ui.", &problems)
			decodeMap(ui, "cooldowns", doc.UI.Cooldowns, "ui.", &problems)
			decodeField(ui, "ticket_seq", &doc.UI.TicketSeq, "ui.", &problems)
		}
	}

	if rawGuilds, ok := top["guilds"]; ok {
		var guilds map[string]json.RawMessage
		if err := json.Unmarshal(rawGuilds, &guilds); err != nil {
			problems = append(problems, fmt.Errorf("guilds: %w", err))
		}
		for guildID, rawGuild := range guilds {
			doc.Guilds[guildID] = decodeGuild(guildID, rawGuild, &problems)
		}
	}

	return doc, problems, nil
}

func decodeGuild(guildID string, raw json.RawMessage, problems *[]error) *Guild {
	g := newGuild()
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		*problems = append(*problems, fmt.Errorf("guilds.%s: %w", guildID, err))
		return g
	}

	prefix := "guilds." + guildID + "."
	decodeMap(fields, "valid_invites", g.ValidInvites, prefix, problems)
	decodeMap(fields, "leaves", g.Leaves, prefix, problems)
	decodeMap(fields, "suspect_accounts", g.SuspectAccounts, prefix, problems)
	decodeMap(fields, "bonus_invites", g.BonusInvites, prefix, problems)
	decodeMap(fields, "total_joined", g.TotalJoined, prefix, problems)
	decodeMap(fields, "paid_tiers", g.PaidTiers, prefix, problems)
	decodeMap(fields, "rewards_issued", g.LegacyIssued, prefix, problems)
	decodeMap(fields, "attributions", g.Attributions, prefix, problems)
	decodeMap(fields, "compensations", g.Compensations, prefix, problems)
	decodeMap(fields, "credited", g.Credited, prefix, problems)
	decodeMap(fields, "rate_windows", g.RateWindows, prefix, problems)

	for _, m := range []map[string]int{g.ValidInvites, g.Leaves, g.SuspectAccounts, g.BonusInvites, g.TotalJoined, g.LegacyIssued} {
		for k, v := range m {
			if v < 0 {
				m[k] = 0
			}
		}
	}
	for k, tiers := range g.PaidTiers {
		g.PaidTiers[k] = normalizeTiers(tiers)
	}
	return g
}

func decodeField[T any](fields map[string]json.RawMessage, key string, dst *T, prefix string, problems *[]error) {
	raw, ok := fields[key]
	if !ok || string(raw) == "null" {
		return
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		*problems = append(*problems, fmt.Errorf("%s%s: %w", prefix, key, err))
		return
	}
	*dst = v
}

// decodeMap decodes entry by entry so one bad entry does not discard the rest.
func decodeMap[V any](fields map[string]json.RawMessage, key string, dst map[string]V, prefix string, problems *[]error) {
	raw, ok := fields[key]
	if !ok || string(raw) == "null" {
		return
	}
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		*problems = append(*problems, fmt.Errorf("%s%s: %w", prefix, key, err))
		return
	}
	for k, rawEntry := range entries {
		var v V
		if err := json.Unmarshal(rawEntry, &v); err != nil {
			*problems = append(*problems, fmt.Errorf("%s%s.%s: %w", prefix, key, k, err))
			continue
		}
		dst[k] = v
	}
}
