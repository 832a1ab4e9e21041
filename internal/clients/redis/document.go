package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"guild-bot/internal/state"

	"github.com/redis/go-redis/v9"
)

// ErrCodeNotFound is returned when the saved document has no such active code.
var ErrCodeNotFound = errors.New("code not found")

const maxTxRetries = 5

func documentKey(identity string) string {
	return fmt.Sprintf("guild-bot:state:%s", identity)
}

func weeklySalesKey(identity string) string {
	return fmt.Sprintf("guild-bot:weekly-sales:%s", identity)
}

// LoadDocument returns the raw saved document, or nil when none exists.
func (c *Client) LoadDocument(ctx context.Context, identity string) ([]byte, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	raw, err := c.client.Get(ctx, documentKey(identity)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load document: %w", err)
	}
	return raw, nil
}

// SaveDocument replaces the saved document.
func (c *Client) SaveDocument(ctx context.Context, identity string, document []byte) error {
	if err := c.ready(); err != nil {
		return err
	}
	if err := c.client.Set(ctx, documentKey(identity), document, 0).Err(); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

// DeleteCode removes a code from the saved document.
func (c *Client) DeleteCode(ctx context.Context, identity, token string) error {
	return c.mutateDocument(ctx, identity, func(doc map[string]json.RawMessage) (bool, error) {
		changed := false
		for _, field := range []string{"codes", "redeemed_codes"} {
			codes, err := rawMap(doc, field)
			if err != nil {
				return false, err
			}
			if _, ok := codes[token]; !ok {
				continue
			}
			delete(codes, token)
			if err := putRaw(doc, field, codes); err != nil {
				return false, err
			}
			changed = true
		}
		return changed, nil
	})
}

// MarkCodeUsed moves an active code into the redeemed set of the saved document.
func (c *Client) MarkCodeUsed(ctx context.Context, identity, token string, usedAt time.Time) error {
	return c.mutateDocument(ctx, identity, func(doc map[string]json.RawMessage) (bool, error) {
		codes, err := rawMap(doc, "codes")
		if err != nil {
			return false, err
		}
		rawCode, ok := codes[token]
		if !ok {
			return false, ErrCodeNotFound
		}
		var code state.RewardCode
		if err := json.Unmarshal(rawCode, &code); err != nil {
			return false, fmt.Errorf("decode code: %w", err)
		}
		at := usedAt.UTC()
		code.Used = true
		code.UsedAt = &at

		redeemed, err := rawMap(doc, "redeemed_codes")
		if err != nil {
			return false, err
		}
		encoded, err := json.Marshal(code)
		if err != nil {
			return false, fmt.Errorf("encode code: %w", err)
		}
		delete(codes, token)
		redeemed[token] = encoded
		if err := putRaw(doc, "codes", codes); err != nil {
			return false, err
		}
		return true, putRaw(doc, "redeemed_codes", redeemed)
	})
}

// AppendWeeklySale pushes one closed sale onto the identity's sales list.
func (c *Client) AppendWeeklySale(ctx context.Context, identity string, sale state.WeeklySale) error {
	if err := c.ready(); err != nil {
		return err
	}
	payload, err := json.Marshal(sale)
	if err != nil {
		return fmt.Errorf("encode weekly sale: %w", err)
	}
	if err := c.client.RPush(ctx, weeklySalesKey(identity), payload).Err(); err != nil {
		return fmt.Errorf("append weekly sale: %w", err)
	}
	return nil
}

// ListWeeklySales returns the sales of a guild recorded since the given time.
func (c *Client) ListWeeklySales(ctx context.Context, identity, guildID string, since time.Time) ([]state.WeeklySale, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	items, err := c.client.LRange(ctx, weeklySalesKey(identity), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list weekly sales: %w", err)
	}
	var sales []state.WeeklySale
	for _, item := range items {
		var sale state.WeeklySale
		if err := json.Unmarshal([]byte(item), &sale); err != nil {
			c.logger.Warn(ctx, "skipping undecodable weekly sale")
			continue
		}
		if sale.GuildID == guildID && !sale.RecordedAt.Before(since) {
			sales = append(sales, sale)
		}
	}
	return sales, nil
}

// mutateDocument runs an optimistic read-modify-write of the saved document. A
// missing document is left alone.
func (c *Client) mutateDocument(ctx context.Context, identity string, mutate func(map[string]json.RawMessage) (bool, error)) error {
	if err := c.ready(); err != nil {
		return err
	}
	key := documentKey(identity)

	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return nil
			}
			return err
		}
		var doc map[string]json.RawMessage
		if err := json.Unmarshal(raw, &doc); err != nil {
			return fmt.Errorf("decode document: %w", err)
		}
		changed, err := mutate(doc)
		if err != nil || !changed {
			return err
		}
		updated, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encode document: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updated, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := c.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return fmt.Errorf("update document %s: too many concurrent writers", identity)
}

func rawMap(doc map[string]json.RawMessage, field string) (map[string]json.RawMessage, error) {
	out := map[string]json.RawMessage{}
	raw, ok := doc[field]
	if !ok || string(raw) == "null" {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", field, err)
	}
	return out, nil
}

func putRaw(doc map[string]json.RawMessage, field string, value map[string]json.RawMessage) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", field, err)
	}
	doc[field] = encoded
	return nil
}
