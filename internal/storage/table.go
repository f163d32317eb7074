package storage

import (
	"encoding/json"
	"fmt"
	"sync"

	"green-wheels/internal/shared/apperrors"
)

// Row is implemented by every persisted entity, usually by embedding Record.
type Row interface {
	GetID() int
	SetID(id int)
}

// Record carries the autoincrement id shared by all rows.
type Record struct {
	ID int `json:"id"`
}

func (r *Record) GetID() int   { return r.ID }
func (r *Record) SetID(id int) { r.ID = id }

// Table is a typed view over one named row set of a Database. All operations
// hold the table mutex, so read-modify-write sequences (id allocation,
// update-in-place) are atomic per table.
type Table[T any, P interface {
	*T
	Row
}] struct {
	name string
	db   *Database

	mu   sync.Mutex
	rows []T
}

// NewTable loads the named row set, creating it empty when absent.
func NewTable[T any, P interface {
	*T
	Row
}](db *Database, name string) (*Table[T, P], error) {
	t := &Table[T, P]{name: name, db: db}

	raw := db.readTable(name)
	if raw == nil {
		if err := t.flush(); err != nil {
			return nil, err
		}
		return t, nil
	}

	if err := json.Unmarshal(raw, &t.rows); err != nil {
		return nil, fmt.Errorf("corrupt table %s: %w", name, err)
	}
	return t, nil
}

// FindAll returns a copy of every row.
func (t *Table[T, P]) FindAll() []T {
	t.mu.Lock()
	defer t.mu.Unlock()

	rows := make([]T, len(t.rows))
	copy(rows, t.rows)
	return rows
}

func (t *Table[T, P]) FindByID(id int) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, row := range t.rows {
		if P(&row).GetID() == id {
			return row, true
		}
	}
	var zero T
	return zero, false
}

func (t *Table[T, P]) FindByIDs(ids []int) []T {
	t.mu.Lock()
	defer t.mu.Unlock()

	wanted := make(map[int]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	var rows []T
	for _, row := range t.rows {
		if wanted[P(&row).GetID()] {
			rows = append(rows, row)
		}
	}
	return rows
}

// Insert assigns the next id (max existing id + 1, or 0 for an empty table),
// appends the row, and persists the table. It returns the assigned id.
func (t *Table[T, P]) Insert(row T) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := 0
	for i := range t.rows {
		if existing := P(&t.rows[i]).GetID(); existing >= id {
			id = existing + 1
		}
	}

	P(&row).SetID(id)
	t.rows = append(t.rows, row)

	if err := t.flush(); err != nil {
		t.rows = t.rows[:len(t.rows)-1]
		return 0, err
	}
	return id, nil
}

// Update replaces the row with the given id. It fails when the id is absent.
func (t *Table[T, P]) Update(id int, row T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.rows {
		if P(&t.rows[i]).GetID() == id {
			P(&row).SetID(id)
			t.rows[i] = row
			return t.flush()
		}
	}
	return fmt.Errorf("no row %d in table %s: %w", id, t.name, apperrors.ErrNotFound)
}

// Delete removes the row with the given id. Deleting an absent id is a no-op.
func (t *Table[T, P]) Delete(id int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.rows {
		if P(&t.rows[i]).GetID() == id {
			t.rows = append(t.rows[:i], t.rows[i+1:]...)
			return t.flush()
		}
	}
	return nil
}

func (t *Table[T, P]) flush() error {
	raw, err := json.Marshal(t.rows)
	if err != nil {
		return fmt.Errorf("failed to encode table %s: %w", t.name, err)
	}
	return t.db.writeTable(t.name, raw)
}
