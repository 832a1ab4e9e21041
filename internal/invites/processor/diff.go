package processor

import (
	"sort"

	"guild-bot/internal/state"
)

// diffInvites infers the link a member joined through. The link whose use count
// grew the most wins, ties broken by code. A link absent from the cache counts as
// having had zero uses. When no count grew, a cached link that disappeared one use
// short of its maximum is taken as consumed by this join.
func diffInvites(cached map[string]state.InviteLink, fresh []state.InviteLink) (state.InviteLink, bool) {
	var (
		best      state.InviteLink
		bestDelta int
	)
	seen := make(map[string]struct{}, len(fresh))
	for _, link := range fresh {
		seen[link.Code] = struct{}{}
		delta := link.Uses - cached[link.Code].Uses
		if delta <= 0 {
			continue
		}
		if delta > bestDelta || (delta == bestDelta && link.Code < best.Code) {
			best, bestDelta = link, delta
		}
	}
	if bestDelta > 0 {
		return best, true
	}

	var exhausted []state.InviteLink
	for code, link := range cached {
		if _, ok := seen[code]; ok {
			continue
		}
		if link.MaxUses > 0 && link.Uses+1 == link.MaxUses {
			exhausted = append(exhausted, link)
		}
	}
	if len(exhausted) == 0 {
		return state.InviteLink{}, false
	}
	sort.Slice(exhausted, func(i, j int) bool { return exhausted[i].Code < exhausted[j].Code })
	return exhausted[0], true
}
