package state

import "time"

// CounterKind names one of the per-guild inviter counters.
type CounterKind string

const (
	CounterValid       CounterKind = "valid"
	CounterLeaves      CounterKind = "leaves"
	CounterSuspect     CounterKind = "suspect"
	CounterBonus       CounterKind = "bonus"
	CounterTotalJoined CounterKind = "total_joined"
)

// IsValid reports whether k is a known counter.
func (k CounterKind) IsValid() bool {
	switch k {
	case CounterValid, CounterLeaves, CounterSuspect, CounterBonus, CounterTotalJoined:
		return true
	}
	return false
}

// Attribution links a member that joined to the inviter credited for it.
type Attribution struct {
	InviterID        string    `json:"inviter_id"`
	Counted          bool      `json:"counted"`
	Suspect          bool      `json:"suspect"`
	AccountCreatedAt time.Time `json:"account_created_at"`
	JoinedAt         time.Time `json:"joined_at"`
}

// MemberAttribution is an Attribution together with its member.
type MemberAttribution struct {
	MemberID string
	Attribution
}

// Compensation remembers the inviter charged with a leave so a rejoin can cancel it.
type Compensation struct {
	InviterID string    `json:"inviter_id"`
	LeftAt    time.Time `json:"left_at"`
}

// InviteLink is one entry of a guild's cached invite snapshot.
type InviteLink struct {
	Code      string `json:"code"`
	InviterID string `json:"inviter_id"`
	Uses      int    `json:"uses"`
	MaxUses   int    `json:"max_uses"`
}

// InviterStats is the read model of one inviter's counters.
type InviterStats struct {
	InviterID   string `json:"inviter_id"`
	Valid       int    `json:"valid"`
	Leaves      int    `json:"leaves"`
	Suspect     int    `json:"suspect"`
	Bonus       int    `json:"bonus"`
	TotalJoined int    `json:"total_joined"`
}

// Total is the displayed invite total.
func (s InviterStats) Total() int {
	return s.Valid + s.Bonus
}

type CodeKind string

const (
	CodeKindInviteReward CodeKind = "invite_reward"
	CodeKindDiscount     CodeKind = "discount"
)

// RewardCode is a single-use token owned by one account.
type RewardCode struct {
	Token     string     `json:"token"`
	GuildID   string     `json:"guild_id"`
	OwnerID   string     `json:"owner_id"`
	Kind      CodeKind   `json:"kind"`
	Tier      int        `json:"tier,omitempty"`
	Percent   int        `json:"percent,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at"`
	Used      bool       `json:"used"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
}

// Expired reports whether the code is past its expiry at now.
func (c RewardCode) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

type TicketKind string

const (
	TicketKindSupport  TicketKind = "support"
	TicketKindPurchase TicketKind = "purchase"
)

type TicketStatus string

const (
	TicketStatusOpen    TicketStatus = "open"
	TicketStatusClaimed TicketStatus = "claimed"
	TicketStatusClosed  TicketStatus = "closed"
)

// Ticket is a support or sales conversation channel.
type Ticket struct {
	ID              string       `json:"id"`
	Number          int          `json:"number"`
	GuildID         string       `json:"guild_id"`
	ChannelID       string       `json:"channel_id"`
	OpenerID        string       `json:"opener_id"`
	Kind            TicketKind   `json:"kind"`
	Status          TicketStatus `json:"status"`
	ClaimedBy       string       `json:"claimed_by,omitempty"`
	AppliedCode     string       `json:"applied_code,omitempty"`
	DiscountPercent int          `json:"discount_percent,omitempty"`
	RewardClaimed   bool         `json:"reward_claimed,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	ClosedAt        *time.Time   `json:"closed_at,omitempty"`
	ClosedBy        string       `json:"closed_by,omitempty"`
}

// Giveaway is a timed prize draw.
type Giveaway struct {
	ID           string    `json:"id"`
	GuildID      string    `json:"guild_id"`
	ChannelID    string    `json:"channel_id"`
	MessageID    string    `json:"message_id,omitempty"`
	HostID       string    `json:"host_id"`
	Prize        string    `json:"prize"`
	WinnerCount  int       `json:"winner_count"`
	Participants []string  `json:"participants"`
	Winners      []string  `json:"winners,omitempty"`
	Ended        bool      `json:"ended"`
	CreatedAt    time.Time `json:"created_at"`
	EndsAt       time.Time `json:"ends_at"`
}

// WeeklySale is an append-only commerce record written when a sales ticket closes.
type WeeklySale struct {
	ID          string    `json:"id"`
	GuildID     string    `json:"guild_id"`
	TicketID    string    `json:"ticket_id"`
	SellerID    string    `json:"seller_id"`
	BuyerID     string    `json:"buyer_id"`
	Item        string    `json:"item"`
	AmountCents int64     `json:"amount_cents"`
	RecordedAt  time.Time `json:"recorded_at"`
}
