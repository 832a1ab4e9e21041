package state

import (
	"sort"
	"time"
)

// PutTicket creates or replaces a ticket.
func (s *Store) PutTicket(t Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Tickets[t.ID] = t
}

func (s *Store) Ticket(id string) (Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.doc.Tickets[id]
	return t, ok
}

// TicketByChannel finds the ticket bound to a channel.
func (s *Store) TicketByChannel(channelID string) (Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.doc.Tickets {
		if t.ChannelID == channelID {
			return t, true
		}
	}
	return Ticket{}, false
}

// OpenTickets lists the non-closed tickets of an opener in a guild.
func (s *Store) OpenTickets(guildID, openerID string) []Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Ticket
	for _, t := range s.doc.Tickets {
		if t.GuildID == guildID && t.OpenerID == openerID && t.Status != TicketStatusClosed {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// NextTicketNumber increments and returns the ticket sequence.
func (s *Store) NextTicketNumber() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.UI.TicketSeq++
	return s.doc.UI.TicketSeq
}

func (s *Store) PutGiveaway(g Giveaway) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g.Participants = append([]string(nil), g.Participants...)
	s.doc.Giveaways[g.ID] = g
}

func (s *Store) Giveaway(id string) (Giveaway, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.doc.Giveaways[id]
	if ok {
		g.Participants = append([]string(nil), g.Participants...)
		g.Winners = append([]string(nil), g.Winners...)
	}
	return g, ok
}

// ActiveGiveaways lists giveaways that have not ended, soonest end first.
func (s *Store) ActiveGiveaways() []Giveaway {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Giveaway
	for _, g := range s.doc.Giveaways {
		if !g.Ended {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EndsAt.Before(out[j].EndsAt) })
	return out
}

// Cooldown returns the last time the keyed action ran.
func (s *Store) Cooldown(key string) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.doc.UI.Cooldowns[key]
	return t, ok
}

func (s *Store) SetCooldown(key string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.UI.Cooldowns[key] = at
}
