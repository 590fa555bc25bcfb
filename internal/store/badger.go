package store

import (
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// stateKey is the single record holding the full store state.
var stateKey = []byte("plant-store")

// BadgerPersister stores the plant store state in a Badger database.
type BadgerPersister struct {
	db     *badger.DB
	logger *slog.Logger
}

// NewBadgerPersister opens the Badger database at path.
func NewBadgerPersister(path string, logger *slog.Logger) (*BadgerPersister, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Ensure writes are synced to disk to prevent corruption on crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	if logger != nil {
		logger.Info("plant store database opened", "path", path)
	}

	return &BadgerPersister{db: db, logger: logger}, nil
}

// Load reads the stored state. Returns (nil, nil) when no record exists yet.
func (p *BadgerPersister) Load() (*State, error) {
	var state *State
	err := p.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(stateKey)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			state = &State{}
			return json.Unmarshal(val, state)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	return state, nil
}

// Save writes the full state as a single record, so a crash mid-write never
// corrupts the prior durable state.
func (p *BadgerPersister) Save(state *State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	err = p.db.Update(func(txn *badger.Txn) error {
		return txn.Set(stateKey, data)
	})
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// Close gracefully closes the database.
func (p *BadgerPersister) Close() error {
	if p.logger != nil {
		p.logger.Info("closing plant store database")
	}
	return p.db.Close()
}
