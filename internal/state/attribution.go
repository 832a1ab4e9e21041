package state

import (
	"sort"
	"time"
)

// Attribution returns the recorded inviter of a member.
func (s *Store) Attribution(guildID, memberID string) (Attribution, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.lookup(guildID).Attributions[memberID]
	return a, ok
}

func (s *Store) PutAttribution(guildID, memberID string, a Attribution) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.commit(Intent{Op: OpAttributionPut, GuildID: guildID, UserID: memberID, Attribution: &a})
}

func (s *Store) DeleteAttribution(guildID, memberID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lookup(guildID).Attributions[memberID]; !ok {
		return
	}
	s.commit(Intent{Op: OpAttributionDelete, GuildID: guildID, UserID: memberID})
}

// AttributionsByInviter lists the members currently attributed to an inviter,
// ordered by join time.
func (s *Store) AttributionsByInviter(guildID, inviterID string) []MemberAttribution {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []MemberAttribution
	for memberID, a := range s.lookup(guildID).Attributions {
		if a.InviterID == inviterID {
			out = append(out, MemberAttribution{MemberID: memberID, Attribution: a})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].JoinedAt.Equal(out[j].JoinedAt) {
			return out[i].JoinedAt.Before(out[j].JoinedAt)
		}
		return out[i].MemberID < out[j].MemberID
	})
	return out
}

// PutCompensation records the inviter charged with a member's leave, replacing any
// earlier record for the member.
func (s *Store) PutCompensation(guildID, memberID, inviterID string, leftAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := Compensation{InviterID: inviterID, LeftAt: leftAt}
	s.commit(Intent{Op: OpCompensationPut, GuildID: guildID, UserID: memberID, Compensation: &c})
}

// TakeCompensation returns and removes the pending compensation record of a member.
func (s *Store) TakeCompensation(guildID, memberID string) (Compensation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.lookup(guildID).Compensations[memberID]
	if !ok {
		return Compensation{}, false
	}
	s.commit(Intent{Op: OpCompensationDelete, GuildID: guildID, UserID: memberID})
	return c, true
}

// WasCredited reports whether the member was ever counted for the inviter.
func (s *Store) WasCredited(guildID, memberID, inviterID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return contains(s.lookup(guildID).Credited[memberID], inviterID)
}

func (s *Store) MarkCredited(guildID, memberID, inviterID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if contains(s.lookup(guildID).Credited[memberID], inviterID) {
		return
	}
	s.commit(Intent{Op: OpCreditedAdd, GuildID: guildID, UserID: memberID, InviterID: inviterID})
}

// PaidTiers returns the sorted reward tiers already paid to an inviter.
func (s *Store) PaidTiers(guildID, inviterID string) []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	tiers := s.lookup(guildID).PaidTiers[inviterID]
	out := make([]int, len(tiers))
	copy(out, tiers)
	return out
}

// LegacyIssued returns the pre-ledger reward count of an inviter.
func (s *Store) LegacyIssued(guildID, inviterID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lookup(guildID).LegacyIssued[inviterID]
}

// MarkTierPaid adds a tier to the inviter's ledger. It returns false when the tier
// was already paid.
func (s *Store) MarkTierPaid(guildID, inviterID string, tier int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tier <= 0 || containsInt(s.lookup(guildID).PaidTiers[inviterID], tier) {
		return false
	}
	s.commit(Intent{Op: OpTierPaid, GuildID: guildID, UserID: inviterID, Value: tier})
	return true
}

// InviteLinks returns a copy of the cached invite snapshot of a guild.
func (s *Store) InviteLinks(guildID string) map[string]InviteLink {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]InviteLink, len(s.lookup(guildID).inviteLinks))
	copyInto(out, s.lookup(guildID).inviteLinks)
	return out
}

// ReplaceInviteLinks swaps the cached snapshot for a fresh one.
func (s *Store) ReplaceInviteLinks(guildID string, links []InviteLink) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fresh := make(map[string]InviteLink, len(links))
	for _, l := range links {
		fresh[l.Code] = l
	}
	s.guild(guildID).inviteLinks = fresh
}

func (s *Store) UpsertInviteLink(guildID string, link InviteLink) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.guild(guildID).inviteLinks[link.Code] = link
}

func (s *Store) RemoveInviteLink(guildID, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.guild(guildID).inviteLinks, code)
}
