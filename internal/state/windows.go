package state

import "time"

// RecordRateEvent prunes the inviter's window to [now-window, now], appends now and
// returns the number of events in the window including this one.
func (s *Store) RecordRateEvent(guildID, inviterID string, now time.Time, window time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.guild(guildID)
	events := pruneFront(g.RateWindows[inviterID], now.Add(-window))
	events = append(events, now)
	g.RateWindows[inviterID] = events
	return len(events)
}

// RateWindow returns a copy of the inviter's recorded timestamps.
func (s *Store) RateWindow(guildID, inviterID string) []time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := s.lookup(guildID).RateWindows[inviterID]
	out := make([]time.Time, len(events))
	copy(out, events)
	return out
}

// PruneRateWindows drops timestamps older than the window across all guilds and
// removes windows left empty. It returns how many timestamps were dropped.
func (s *Store) PruneRateWindows(now time.Time, window time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := now.Add(-window)
	dropped := 0
	for _, g := range s.doc.Guilds {
		for inviterID, events := range g.RateWindows {
			kept := pruneFront(events, cutoff)
			dropped += len(events) - len(kept)
			if len(kept) == 0 {
				delete(g.RateWindows, inviterID)
				continue
			}
			g.RateWindows[inviterID] = kept
		}
	}
	return dropped
}

// pruneFront drops leading entries older than cutoff. Windows are append-only in
// time order so only the front ever expires.
func pruneFront(events []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(events) && events[i].Before(cutoff) {
		i++
	}
	if i == 0 {
		return events
	}
	kept := make([]time.Time, len(events)-i)
	copy(kept, events[i:])
	return kept
}
