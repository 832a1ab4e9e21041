package state

import (
	"sort"
	"time"
)

// PutCode stores an active code.
func (s *Store) PutCode(code RewardCode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.commit(Intent{Op: OpCodePut, GuildID: code.GuildID, Code: &code})
}

// Code looks a token up among active codes first and redeemed codes second.
func (s *Store) Code(token string) (RewardCode, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.doc.Codes[token]; ok {
		return c, true
	}
	c, ok := s.doc.RedeemedCodes[token]
	return c, ok
}

// CodeExists reports whether a token is taken by an active or redeemed code.
func (s *Store) CodeExists(token string) bool {
	_, ok := s.Code(token)
	return ok
}

// RedeemCode marks an active code used and moves it out of the active set.
func (s *Store) RedeemCode(token string) (RewardCode, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.doc.Codes[token]; !ok {
		return RewardCode{}, false
	}
	s.commit(Intent{Op: OpCodeRedeemed, Token: token})
	return s.doc.RedeemedCodes[token], true
}

// DeleteCode drops a code from both the active and redeemed sets.
func (s *Store) DeleteCode(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, active := s.doc.Codes[token]
	_, redeemed := s.doc.RedeemedCodes[token]
	if !active && !redeemed {
		return
	}
	s.commit(Intent{Op: OpCodeDelete, Token: token})
}

// CodesByOwner lists the active codes of an owner, soonest expiry first.
func (s *Store) CodesByOwner(ownerID string) []RewardCode {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []RewardCode
	for _, c := range s.doc.Codes {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	sortCodes(out)
	return out
}

// ExpiredCodes returns every active or redeemed code past its expiry at now.
func (s *Store) ExpiredCodes(now time.Time) []RewardCode {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []RewardCode
	for _, m := range []map[string]RewardCode{s.doc.Codes, s.doc.RedeemedCodes} {
		for _, c := range m {
			if c.Expired(now) {
				out = append(out, c)
			}
		}
	}
	sortCodes(out)
	return out
}

func sortCodes(codes []RewardCode) {
	sort.Slice(codes, func(i, j int) bool {
		if !codes[i].ExpiresAt.Equal(codes[j].ExpiresAt) {
			return codes[i].ExpiresAt.Before(codes[j].ExpiresAt)
		}
		return codes[i].Token < codes[j].Token
	})
}
