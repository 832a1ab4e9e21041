package store

import (
	"context"
	"fmt"
	"time"

	"guild-bot/internal/state"
)

const sqlInsertWeeklySale = `
INSERT INTO weekly_sales (id, identity, guild_id, ticket_id, seller_id, buyer_id, item, amount_cents, recorded_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (id) DO NOTHING
`

// AppendWeeklySale records one closed sale.
func (s *Store) AppendWeeklySale(ctx context.Context, identity string, sale state.WeeklySale) error {
	_, err := s.db.ExecContext(ctx, sqlInsertWeeklySale,
		sale.ID,
		identity,
		sale.GuildID,
		sale.TicketID,
		sale.SellerID,
		sale.BuyerID,
		sale.Item,
		sale.AmountCents,
		sale.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("append weekly sale: %w", err)
	}
	return nil
}

type weeklySaleRow struct {
	ID          string    `db:"id"`
	GuildID     string    `db:"guild_id"`
	TicketID    string    `db:"ticket_id"`
	SellerID    string    `db:"seller_id"`
	BuyerID     string    `db:"buyer_id"`
	Item        string    `db:"item"`
	AmountCents int64     `db:"amount_cents"`
	RecordedAt  time.Time `db:"recorded_at"`
}

const sqlListWeeklySales = `
SELECT id, guild_id, ticket_id, seller_id, buyer_id, item, amount_cents, recorded_at
FROM weekly_sales
WHERE identity = $1 AND guild_id = $2 AND recorded_at >= $3
ORDER BY recorded_at ASC
`

// ListWeeklySales returns the sales of a guild recorded since the given time.
func (s *Store) ListWeeklySales(ctx context.Context, identity, guildID string, since time.Time) ([]state.WeeklySale, error) {
	var rows []weeklySaleRow
	if err := s.db.SelectContext(ctx, &rows, sqlListWeeklySales, identity, guildID, since); err != nil {
		return nil, fmt.Errorf("list weekly sales: %w", err)
	}
	sales := make([]state.WeeklySale, 0, len(rows))
	for _, r := range rows {
		sales = append(sales, state.WeeklySale{
			ID:          r.ID,
			GuildID:     r.GuildID,
			TicketID:    r.TicketID,
			SellerID:    r.SellerID,
			BuyerID:     r.BuyerID,
			Item:        r.Item,
			AmountCents: r.AmountCents,
			RecordedAt:  r.RecordedAt,
		})
	}
	return sales, nil
}
