package state

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"guild-bot/internal/observability"
)

// Store is the process-wide in-memory state. Accessors enforce the counter and
// ledger invariants; counter and reward mutations are journaled before they apply.
type Store struct {
	mu      sync.Mutex
	doc     Document
	journal Journal
	lastSeq uint64
	now     func() time.Time
	logger  *observability.Logger
}

// New creates an empty store. journal may be nil, in which case nothing is journaled.
func New(journal Journal, logger *observability.Logger) *Store {
	return &Store{
		doc:     NewDocument(),
		journal: journal,
		now:     time.Now,
		logger:  logger,
	}
}

// Hydrate replaces the in-memory state with a loaded document. Cached invite
// links survive since they are never persisted.
func (s *Store) Hydrate(doc Document) {
	s.mu.Lock()
	defer s.mu.Unlock()

	links := make(map[string]map[string]InviteLink, len(s.doc.Guilds))
	for id, g := range s.doc.Guilds {
		links[id] = g.inviteLinks
	}

	fresh := NewDocument()
	fresh.IntentSeq = doc.IntentSeq
	fresh.SavedAt = doc.SavedAt
	for id, g := range doc.Guilds {
		if g == nil {
			continue
		}
		if g.inviteLinks == nil {
			g.inviteLinks = map[string]InviteLink{}
		}
		if cached, ok := links[id]; ok {
			g.inviteLinks = cached
		}
		fresh.Guilds[id] = g
	}
	copyInto(fresh.Codes, doc.Codes)
	copyInto(fresh.RedeemedCodes, doc.RedeemedCodes)
	copyInto(fresh.Tickets, doc.Tickets)
	copyInto(fresh.Giveaways, doc.Giveaways)
	copyInto(fresh.UI.LastMessageIDs, doc.UI.LastMessageIDs)
	copyInto(fresh.UI.Cooldowns, doc.UI.Cooldowns)
	fresh.UI.TicketSeq = doc.UI.TicketSeq

	s.doc = fresh
	if doc.IntentSeq > s.lastSeq {
		s.lastSeq = doc.IntentSeq
	}
}

// Replay applies journaled intents newer than the hydrated document and returns
// how many were applied.
func (s *Store) Replay(intents []Intent) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	sort.Slice(intents, func(i, j int) bool { return intents[i].Seq < intents[j].Seq })
	applied := 0
	for _, in := range intents {
		if in.Seq <= s.doc.IntentSeq {
			continue
		}
		s.apply(in)
		if in.Seq > s.lastSeq {
			s.lastSeq = in.Seq
		}
		applied++
	}
	return applied
}

// Snapshot serializes the whole state and reports the last journaled sequence it
// covers.
func (s *Store) Snapshot() ([]byte, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc.Version = DocumentVersion
	s.doc.IntentSeq = s.lastSeq
	s.doc.SavedAt = s.now().UTC()
	payload, err := json.Marshal(s.doc)
	if err != nil {
		return nil, 0, fmt.Errorf("marshal document: %w", err)
	}
	return payload, s.lastSeq, nil
}

// SetClock overrides the time source used for intent and snapshot timestamps.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// LastSeq returns the sequence of the most recent journaled intent.
func (s *Store) LastSeq() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeq
}

// commit journals the intent and then applies it. A journal failure is logged and
// the mutation still applies in memory.
func (s *Store) commit(in Intent) {
	in.At = s.now().UTC()
	if s.journal != nil {
		seq, err := s.journal.Append(in)
		if err != nil {
			s.logger.Error(context.Background(), "failed to journal intent", fmt.Errorf("%s: %w", in.Op, err))
		} else {
			in.Seq = seq
			s.lastSeq = seq
		}
	}
	s.apply(in)
}

func (s *Store) apply(in Intent) {
	switch in.Op {
	case OpCounterSet:
		m := s.guild(in.GuildID).counter(in.Counter)
		if m == nil {
			return
		}
		if in.Value <= 0 {
			delete(m, in.UserID)
		} else {
			m[in.UserID] = in.Value
		}
	case OpAttributionPut:
		if in.Attribution != nil {
			s.guild(in.GuildID).Attributions[in.UserID] = *in.Attribution
		}
	case OpAttributionDelete:
		delete(s.guild(in.GuildID).Attributions, in.UserID)
	case OpCompensationPut:
		if in.Compensation != nil {
			s.guild(in.GuildID).Compensations[in.UserID] = *in.Compensation
		}
	case OpCompensationDelete:
		delete(s.guild(in.GuildID).Compensations, in.UserID)
	case OpCreditedAdd:
		g := s.guild(in.GuildID)
		if !contains(g.Credited[in.UserID], in.InviterID) {
			g.Credited[in.UserID] = append(g.Credited[in.UserID], in.InviterID)
		}
	case OpTierPaid:
		g := s.guild(in.GuildID)
		tiers := g.PaidTiers[in.UserID]
		if !containsInt(tiers, in.Value) {
			tiers = normalizeTiers(append(tiers, in.Value))
			g.PaidTiers[in.UserID] = tiers
		}
		if len(tiers) > g.LegacyIssued[in.UserID] {
			g.LegacyIssued[in.UserID] = len(tiers)
		}
	case OpCodePut:
		if in.Code != nil {
			s.doc.Codes[in.Code.Token] = *in.Code
		}
	case OpCodeRedeemed:
		code, ok := s.doc.Codes[in.Token]
		if !ok {
			return
		}
		at := in.At
		code.Used = true
		code.UsedAt = &at
		delete(s.doc.Codes, in.Token)
		s.doc.RedeemedCodes[in.Token] = code
	case OpCodeDelete:
		delete(s.doc.Codes, in.Token)
		delete(s.doc.RedeemedCodes, in.Token)
	}
}

// noGuild stands in for guilds that have no state yet. It is never written.
var noGuild = newGuild()

// lookup returns the guild for reading without adding it to the document.
// Callers hold s.mu.
func (s *Store) lookup(guildID string) *Guild {
	if g, ok := s.doc.Guilds[guildID]; ok {
		return g
	}
	return noGuild
}

// guild returns the guild, creating it on first use. Callers hold s.mu.
func (s *Store) guild(guildID string) *Guild {
	g, ok := s.doc.Guilds[guildID]
	if !ok {
		g = newGuild()
		s.doc.Guilds[guildID] = g
	}
	return g
}

func copyInto[V any](dst, src map[string]V) {
	for k, v := range src {
		dst[k] = v
	}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsInt(list []int, v int) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// normalizeTiers sorts and de-duplicates tier numbers, dropping non-positive ones.
func normalizeTiers(tiers []int) []int {
	seen := make(map[int]struct{}, len(tiers))
	out := make([]int, 0, len(tiers))
	for _, t := range tiers {
		if t <= 0 {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Ints(out)
	return out
}
