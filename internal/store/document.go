package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const sqlGetDocument = `
SELECT document
FROM bot_state
WHERE identity = $1
`

// LoadDocument returns the raw saved document of an identity, or nil when none
// has been saved yet.
func (s *Store) LoadDocument(ctx context.Context, identity string) ([]byte, error) {
	var raw []byte
	err := s.db.GetContext(ctx, &raw, sqlGetDocument, identity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load document: %w", err)
	}
	return raw, nil
}

const sqlUpsertDocument = `
INSERT INTO bot_state (identity, document, updated_at)
VALUES ($1, $2::jsonb, NOW())
ON CONFLICT (identity) DO UPDATE
SET document = EXCLUDED.document,
    updated_at = NOW()
`

// SaveDocument replaces the whole saved document of an identity.
func (s *Store) SaveDocument(ctx context.Context, identity string, document []byte) error {
	if _, err := s.db.ExecContext(ctx, sqlUpsertDocument, identity, string(document)); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

const sqlDeleteCode = `
UPDATE bot_state
SET document = (document #- ARRAY['codes', $2::text]) #- ARRAY['redeemed_codes', $2::text],
    updated_at = NOW()
WHERE identity = $1
`

// DeleteCode removes a code from the saved document without rewriting the rest.
func (s *Store) DeleteCode(ctx context.Context, identity, token string) error {
	if _, err := s.db.ExecContext(ctx, sqlDeleteCode, identity, token); err != nil {
		return fmt.Errorf("delete code: %w", err)
	}
	return nil
}

const sqlMarkCodeUsed = `
UPDATE bot_state
SET document = jsonb_set(
        jsonb_set(document, '{redeemed_codes}', COALESCE(document->'redeemed_codes', '{}'::jsonb)) #- ARRAY['codes', $2::text],
        ARRAY['redeemed_codes', $2::text],
        (document->'codes'->$2::text) || jsonb_build_object('used', true, 'used_at', $3::text)
    ),
    updated_at = NOW()
WHERE identity = $1
  AND document->'codes' ? $2::text
`

// MarkCodeUsed moves an active code into the redeemed set of the saved document.
// It returns ErrNotFound when the saved document has no such active code.
func (s *Store) MarkCodeUsed(ctx context.Context, identity, token string, usedAt time.Time) error {
	res, err := s.db.ExecContext(ctx, sqlMarkCodeUsed, identity, token, usedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("mark code used: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark code used: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
