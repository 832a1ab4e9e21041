package intentlog

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"guild-bot/internal/state"

	"go.etcd.io/bbolt"
)

const intentBucket = "intents"

// Log is a BoltDB-backed write-ahead journal of state intents.
type Log struct {
	db *bbolt.DB
}

// Open opens the journal at path, creating it when missing.
func Open(path string) (*Log, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("intent log path is required")
	}

	db, err := bbolt.Open(filepath.Clean(path), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open intent log: %w", err)
	}

	l := &Log{db: db}
	if err := l.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return l, nil
}

// Close closes the underlying database.
func (l *Log) Close() error {
	if l == nil || l.db == nil {
		return nil
	}
	return l.db.Close()
}

// Append stores the intent under the next sequence number and returns it.
func (l *Log) Append(in state.Intent) (uint64, error) {
	if l == nil || l.db == nil {
		return 0, fmt.Errorf("intent log is not open")
	}

	var seq uint64
	err := l.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(intentBucket))
		if bucket == nil {
			return fmt.Errorf("intent bucket is missing")
		}
		next, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}
		in.Seq = next
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal intent: %w", err)
		}
		seq = next
		return bucket.Put(seqKey(next), payload)
	})
	if err != nil {
		return 0, err
	}
	return seq, nil
}

// Since returns every intent with a sequence greater than after, in order.
// Records that fail to decode are skipped and counted.
func (l *Log) Since(after uint64) ([]state.Intent, int, error) {
	if l == nil || l.db == nil {
		return nil, 0, fmt.Errorf("intent log is not open")
	}

	var (
		out     []state.Intent
		skipped int
	)
	err := l.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(intentBucket))
		if bucket == nil {
			return fmt.Errorf("intent bucket is missing")
		}
		c := bucket.Cursor()
		for k, v := c.Seek(seqKey(after + 1)); k != nil; k, v = c.Next() {
			var in state.Intent
			if err := json.Unmarshal(v, &in); err != nil {
				skipped++
				continue
			}
			in.Seq = binary.BigEndian.Uint64(k)
			out = append(out, in)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return out, skipped, nil
}

// Ack drops every intent with a sequence up to and including through. It is called
// once a saved document covers them.
func (l *Log) Ack(through uint64) (int, error) {
	if l == nil || l.db == nil {
		return 0, fmt.Errorf("intent log is not open")
	}

	removed := 0
	err := l.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(intentBucket))
		if bucket == nil {
			return fmt.Errorf("intent bucket is missing")
		}
		var keys [][]byte
		c := bucket.Cursor()
		for k, _ := c.First(); k != nil && binary.BigEndian.Uint64(k) <= through; k, _ = c.Next() {
			keys = append(keys, append([]byte(nil), k...))
		}
		for _, k := range keys {
			if err := bucket.Delete(k); err != nil {
				return fmt.Errorf("delete intent: %w", err)
			}
			removed++
		}
		return nil
	})
	return removed, err
}

// EnsureSequence raises the next assigned sequence above floor. A journal recreated
// from scratch must not hand out numbers the saved document already covers.
func (l *Log) EnsureSequence(floor uint64) error {
	if l == nil || l.db == nil {
		return fmt.Errorf("intent log is not open")
	}
	return l.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(intentBucket))
		if bucket == nil {
			return fmt.Errorf("intent bucket is missing")
		}
		if bucket.Sequence() >= floor {
			return nil
		}
		return bucket.SetSequence(floor)
	})
}

func (l *Log) ensureBuckets() error {
	return l.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(intentBucket)); err != nil {
			return fmt.Errorf("create intent bucket: %w", err)
		}
		return nil
	})
}

func seqKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}
