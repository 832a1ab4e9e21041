package state

import "sort"

// Counter returns the current value of one inviter counter.
func (s *Store) Counter(guildID string, kind CounterKind, inviterID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lookup(guildID).counter(kind)[inviterID]
}

// AddCounter adds delta to a counter, flooring the result at zero, and returns the
// new value.
func (s *Store) AddCounter(guildID string, kind CounterKind, inviterID string, delta int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.lookup(guildID).counter(kind)
	if m == nil {
		return 0
	}
	return s.setCounterLocked(guildID, kind, inviterID, m[inviterID]+delta)
}

// SetCounter sets a counter to value, flooring it at zero, and returns the stored value.
func (s *Store) SetCounter(guildID string, kind CounterKind, inviterID string, value int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lookup(guildID).counter(kind) == nil {
		return 0
	}
	return s.setCounterLocked(guildID, kind, inviterID, value)
}

func (s *Store) setCounterLocked(guildID string, kind CounterKind, inviterID string, value int) int {
	if value < 0 {
		value = 0
	}
	if s.lookup(guildID).counter(kind)[inviterID] == value {
		return value
	}
	s.commit(Intent{
		Op:      OpCounterSet,
		GuildID: guildID,
		UserID:  inviterID,
		Counter: kind,
		Value:   value,
	})
	return value
}

// Stats returns every counter of one inviter.
func (s *Store) Stats(guildID, inviterID string) InviterStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return statsLocked(s.lookup(guildID), inviterID)
}

// GuildStats returns the stats of every inviter with any non-zero counter, sorted by
// displayed total descending, then by inviter id.
func (s *Store) GuildStats(guildID string) []InviterStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.lookup(guildID)
	ids := map[string]struct{}{}
	for _, m := range []map[string]int{g.ValidInvites, g.Leaves, g.SuspectAccounts, g.BonusInvites, g.TotalJoined} {
		for id := range m {
			ids[id] = struct{}{}
		}
	}

	out := make([]InviterStats, 0, len(ids))
	for id := range ids {
		out = append(out, statsLocked(g, id))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total() != out[j].Total() {
			return out[i].Total() > out[j].Total()
		}
		return out[i].InviterID < out[j].InviterID
	})
	return out
}

func statsLocked(g *Guild, inviterID string) InviterStats {
	return InviterStats{
		InviterID:   inviterID,
		Valid:       g.ValidInvites[inviterID],
		Leaves:      g.Leaves[inviterID],
		Suspect:     g.SuspectAccounts[inviterID],
		Bonus:       g.BonusInvites[inviterID],
		TotalJoined: g.TotalJoined[inviterID],
	}
}
