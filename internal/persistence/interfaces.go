package persistence

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=persistence

import (
	"context"
	"time"

	"guild-bot/internal/state"
)

// DocumentStore is the remote document store backing the gateway.
type DocumentStore interface {
	// LoadDocument returns nil bytes when no document has been saved yet.
	LoadDocument(ctx context.Context, identity string) ([]byte, error)
	SaveDocument(ctx context.Context, identity string, document []byte) error
	DeleteCode(ctx context.Context, identity, token string) error
	MarkCodeUsed(ctx context.Context, identity, token string, usedAt time.Time) error
	AppendWeeklySale(ctx context.Context, identity string, sale state.WeeklySale) error
}

// StateStore is the in-memory state the gateway mirrors.
type StateStore interface {
	Snapshot() ([]byte, uint64, error)
	Hydrate(doc state.Document)
	Replay(intents []state.Intent) int
}

// IntentLog is the local journal of mutations not yet covered by a saved document.
type IntentLog interface {
	Since(after uint64) ([]state.Intent, int, error)
	Ack(through uint64) (int, error)
	EnsureSequence(floor uint64) error
}
