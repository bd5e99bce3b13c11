// Package corpus is a small bbolt-backed replay store for MatchableItem
// rows (spec.md treats storage of MatchableItem rows as an external
// collaborator; SPEC_FULL.md §5 supplements a concrete one for the CLI's
// replay mode). Adapted from the teacher's BoltStore — same
// open/bucket/get/put shape — but keyed per-channel, one bucket per
// channel and one key per item ID, storing MatchableItem JSON rather
// than crawler state.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/feedlattice/classify/internal/model"
)

// Store is a bbolt-backed collection of per-channel MatchableItem rows.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if necessary) the bbolt database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores item under channel, keyed by its ID.
func (s *Store) Put(channel string, item model.MatchableItem) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(channel))
		if err != nil {
			return err
		}
		return b.Put([]byte(item.ID), data)
	})
}

// PutAll stores every item under channel, in one transaction.
func (s *Store) PutAll(channel string, items []model.MatchableItem) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(channel))
		if err != nil {
			return err
		}
		for _, item := range items {
			data, err := json.Marshal(item)
			if err != nil {
				return fmt.Errorf("failed to marshal item %q: %w", item.ID, err)
			}
			if err := b.Put([]byte(item.ID), data); err != nil {
				return err
			}
		}
		return nil
	})
}

// Load returns every MatchableItem stored under channel. Returns an
// empty slice, not an error, when the channel has no bucket yet.
func (s *Store) Load(channel string) ([]model.MatchableItem, error) {
	var items []model.MatchableItem

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(channel))
		if b == nil {
			return nil
		}
		return b.ForEach(func(_, data []byte) error {
			var item model.MatchableItem
			if err := json.Unmarshal(data, &item); err != nil {
				return fmt.Errorf("failed to unmarshal item: %w", err)
			}
			items = append(items, item)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Channels lists every channel bucket present in the store.
func (s *Store) Channels() ([]string, error) {
	var channels []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.ForEach(func(name []byte, _ *bolt.Bucket) error {
			channels = append(channels, string(name))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return channels, nil
}
