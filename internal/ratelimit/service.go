package ratelimit

import (
	"context"
	"time"

	"guild-bot/internal/observability"
)

// RateLimitResult represents the result of a rate limit check
type RateLimitResult struct {
	Allowed bool      `json:"allowed"`
	Limit   int       `json:"limit"`
	Count   int       `json:"count"`
	ResetAt time.Time `json:"reset_at"`
}

// WindowStore keeps the per-inviter timestamp windows.
type WindowStore interface {
	RecordRateEvent(guildID, inviterID string, now time.Time, window time.Duration) int
	PruneRateWindows(now time.Time, window time.Duration) int
}

// Service applies a sliding window limit to invites per inviter per guild
type Service struct {
	windows WindowStore
	window  time.Duration
	limit   int
	now     func() time.Time
	logger  *observability.Logger
}

// NewService creates a new rate limiting service
func NewService(windows WindowStore, window time.Duration, limit int, logger *observability.Logger) *Service {
	return &Service{
		windows: windows,
		window:  window,
		limit:   limit,
		now:     time.Now,
		logger:  logger,
	}
}

// Allow records a candidate invite and reports whether it may be counted. The
// event is recorded even when it is rejected so it keeps occupying the window.
func (s *Service) Allow(ctx context.Context, guildID, inviterID string) RateLimitResult {
	now := s.now()
	count := s.windows.RecordRateEvent(guildID, inviterID, now, s.window)

	result := RateLimitResult{
		Allowed: count <= s.limit,
		Limit:   s.limit,
		Count:   count,
		ResetAt: now.Add(s.window),
	}
	if !result.Allowed {
		ctx = observability.WithFields(ctx,
			observability.Field{Key: "guild_id", Value: guildID},
			observability.Field{Key: "inviter_id", Value: inviterID},
		)
		s.logger.Warn(ctx, "invite rate limit exceeded",
			observability.Field{Key: "count", Value: count},
			observability.Field{Key: "limit", Value: s.limit},
		)
	}
	return result
}

// CleanupExpiredWindows drops timestamps that fell out of the window.
// Should be called periodically
func (s *Service) CleanupExpiredWindows(ctx context.Context) error {
	dropped := s.windows.PruneRateWindows(s.now(), s.window)
	s.logger.Info(ctx, "pruned expired rate limit entries",
		observability.Field{Key: "entries_dropped", Value: dropped},
	)
	return nil
}
