package database

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// snapshotKey is the single fixed key the whole serialized state
// lives under.
var snapshotKey = []byte("wedding-portal/state")

// SnapshotStore is the embedded local-fallback store: one badger
// value holding the serialized application state. It is read once at
// startup and rewritten after every local-mode mutation.
type SnapshotStore struct {
	db *badger.DB
}

func OpenSnapshotStore(path string) (*SnapshotStore, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open snapshot store: %w", err)
	}

	return &SnapshotStore{db: db}, nil
}

// Load returns the stored snapshot bytes, or (nil, nil) when none has
// been written yet.
func (s *SnapshotStore) Load() ([]byte, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(snapshotKey)
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	return data, nil
}

// Save overwrites the snapshot.
func (s *SnapshotStore) Save(data []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(snapshotKey, data)
	})
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (s *SnapshotStore) Close() error {
	return s.db.Close()
}
