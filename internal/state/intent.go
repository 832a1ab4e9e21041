package state

import "time"

// IntentOp identifies a journaled mutation. Every op carries absolute values so
// replaying a record that was already applied leaves the store unchanged.
type IntentOp string

const (
	OpCounterSet         IntentOp = "counter.set"
	OpAttributionPut     IntentOp = "attribution.put"
	OpAttributionDelete  IntentOp = "attribution.delete"
	OpCompensationPut    IntentOp = "compensation.put"
	OpCompensationDelete IntentOp = "compensation.delete"
	OpCreditedAdd        IntentOp = "credited.add"
	OpTierPaid           IntentOp = "tier.paid"
	OpCodePut            IntentOp = "code.put"
	OpCodeRedeemed       IntentOp = "code.redeemed"
	OpCodeDelete         IntentOp = "code.delete"
)

// Intent is one write-ahead record of a counter or reward mutation.
type Intent struct {
	Seq          uint64        `json:"seq"`
	Op           IntentOp      `json:"op"`
	GuildID      string        `json:"guild_id,omitempty"`
	UserID       string        `json:"user_id,omitempty"`
	InviterID    string        `json:"inviter_id,omitempty"`
	Counter      CounterKind   `json:"counter,omitempty"`
	Value        int           `json:"value,omitempty"`
	Attribution  *Attribution  `json:"attribution,omitempty"`
	Compensation *Compensation `json:"compensation,omitempty"`
	Code         *RewardCode   `json:"code,omitempty"`
	Token        string        `json:"token,omitempty"`
	At           time.Time     `json:"at"`
}

// Journal durably records intents before they are applied in memory.
type Journal interface {
	// Append stores the intent and returns the sequence assigned to it.
	Append(in Intent) (uint64, error)
}
