package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"green-wheels/internal/shared/apperrors"
)

type note struct {
	Record
	Text string `json:"text"`
}

func newTestTable(t *testing.T) (*Table[note, *note], string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "db.json")
	db, err := NewDatabase(NewFilePersistence(path))
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}

	table, err := NewTable[note](db, "notes")
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	return table, path
}

func TestInsertAssignsSequentialIDs(t *testing.T) {
	table, _ := newTestTable(t)

	first, err := table.Insert(note{Text: "a"})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if first != 0 {
		t.Errorf("first id = %d, want 0", first)
	}

	second, _ := table.Insert(note{Text: "b"})
	if second != 1 {
		t.Errorf("second id = %d, want 1", second)
	}
}

func TestInsertSkipsGapsAfterDelete(t *testing.T) {
	table, _ := newTestTable(t)

	table.Insert(note{Text: "a"}) // id 0
	table.Insert(note{Text: "b"}) // id 1

	if err := table.Delete(0); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	// Ids never go backwards: the next id is max existing + 1, not the gap.
	id, _ := table.Insert(note{Text: "c"})
	if id != 2 {
		t.Errorf("id after delete = %d, want 2", id)
	}
}

func TestFindByID(t *testing.T) {
	table, _ := newTestTable(t)
	table.Insert(note{Text: "a"})

	row, ok := table.FindByID(0)
	if !ok || row.Text != "a" {
		t.Fatalf("FindByID(0) = %+v, %v", row, ok)
	}

	if _, ok := table.FindByID(42); ok {
		t.Fatal("FindByID(42) found a row in an almost empty table")
	}
}

func TestFindByIDs(t *testing.T) {
	table, _ := newTestTable(t)
	table.Insert(note{Text: "a"})
	table.Insert(note{Text: "b"})
	table.Insert(note{Text: "c"})

	rows := table.FindByIDs([]int{0, 2, 99})
	if len(rows) != 2 {
		t.Fatalf("FindByIDs returned %d rows, want 2", len(rows))
	}
}

func TestUpdateAbsentRowFails(t *testing.T) {
	table, _ := newTestTable(t)

	err := table.Update(5, note{Text: "x"})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("Update absent = %v, want ErrNotFound", err)
	}
}

func TestUpdateReplacesRow(t *testing.T) {
	table, _ := newTestTable(t)
	table.Insert(note{Text: "a"})

	if err := table.Update(0, note{Text: "changed"}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	row, _ := table.FindByID(0)
	if row.Text != "changed" {
		t.Errorf("row.Text = %q, want %q", row.Text, "changed")
	}
}

func TestDeleteAbsentRowIsNoOp(t *testing.T) {
	table, _ := newTestTable(t)

	if err := table.Delete(5); err != nil {
		t.Fatalf("Delete absent = %v, want nil", err)
	}
}

func TestRowsSurviveReload(t *testing.T) {
	table, path := newTestTable(t)
	table.Insert(note{Text: "a"})
	table.Insert(note{Text: "b"})
	table.Delete(0)

	db, err := NewDatabase(NewFilePersistence(path))
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	reloaded, err := NewTable[note](db, "notes")
	if err != nil {
		t.Fatalf("reload table: %v", err)
	}

	rows := reloaded.FindAll()
	if len(rows) != 1 || rows[0].ID != 1 || rows[0].Text != "b" {
		t.Fatalf("reloaded rows = %+v", rows)
	}
}

func TestTablesAreIsolated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	db, err := NewDatabase(NewFilePersistence(path))
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}

	a, _ := NewTable[note](db, "a")
	b, _ := NewTable[note](db, "b")

	a.Insert(note{Text: "only in a"})

	if rows := b.FindAll(); len(rows) != 0 {
		t.Fatalf("table b has %d rows, want 0", len(rows))
	}
}
