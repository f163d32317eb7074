package storage

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Persistence stores the whole database as one snapshot of raw table
// documents, keyed by table name.
type Persistence interface {
	Load() (map[string]json.RawMessage, error)
	Save(tables map[string]json.RawMessage) error
}

// Database owns the snapshot and flushes it through its Persistence on every
// table write.
type Database struct {
	mu    sync.Mutex
	store Persistence
	data  map[string]json.RawMessage
}

func NewDatabase(store Persistence) (*Database, error) {
	data, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load database: %w", err)
	}
	if data == nil {
		data = make(map[string]json.RawMessage)
	}

	return &Database{store: store, data: data}, nil
}

func (db *Database) readTable(name string) json.RawMessage {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.data[name]
}

func (db *Database) writeTable(name string, raw json.RawMessage) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.data[name] = raw
	if err := db.store.Save(db.data); err != nil {
		return fmt.Errorf("failed to persist table %s: %w", name, err)
	}
	return nil
}
