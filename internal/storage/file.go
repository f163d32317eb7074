package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// FilePersistence keeps the database as a single JSON document on disk.
type FilePersistence struct {
	path string
}

func NewFilePersistence(path string) *FilePersistence {
	return &FilePersistence{path: path}
}

func (f *FilePersistence) Load() (map[string]json.RawMessage, error) {
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]json.RawMessage), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", f.path, err)
	}

	tables := make(map[string]json.RawMessage)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &tables); err != nil {
			return nil, fmt.Errorf("corrupt database file %s: %w", f.path, err)
		}
	}
	return tables, nil
}

func (f *FilePersistence) Save(tables map[string]json.RawMessage) error {
	raw, err := json.MarshalIndent(tables, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, raw, 0o644)
}
