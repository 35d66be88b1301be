package store_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/conradreeve/crm-service/internal/store"
)

type note struct {
	ID   string `json:"id"`
	Body string `json:"body"`
}

func (n note) DocumentID() string { return n.ID }

func openStore(t *testing.T) (*store.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	s, err := store.Open(path, false)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	return s, path
}

func TestInsertAndAll(t *testing.T) {
	s, _ := openStore(t)
	col := store.NewCollection[note](s, "notes")

	if err := col.Insert(note{ID: "1", Body: "first"}); err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	if err := col.Insert(note{ID: "2", Body: "second"}); err != nil {
		t.Fatalf("Insert error: %v", err)
	}

	all, err := col.All()
	if err != nil {
		t.Fatalf("All error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(all))
	}
}

func TestFind(t *testing.T) {
	s, _ := openStore(t)
	col := store.NewCollection[note](s, "notes")
	col.Insert(note{ID: "1", Body: "first"})

	found, err := col.Find(func(n note) bool { return n.ID == "1" })
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if found == nil || found.Body != "first" {
		t.Errorf("expected to find note 1, got %+v", found)
	}

	missing, err := col.Find(func(n note) bool { return n.ID == "nope" })
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for a miss, got %+v", missing)
	}
}

func TestReplace(t *testing.T) {
	s, _ := openStore(t)
	col := store.NewCollection[note](s, "notes")
	col.Insert(note{ID: "1", Body: "first"})

	replaced, err := col.Replace("1", note{ID: "1", Body: "updated"}, false)
	if err != nil {
		t.Fatalf("Replace error: %v", err)
	}
	if !replaced {
		t.Error("expected existing document to be replaced")
	}

	replaced, err = col.Replace("2", note{ID: "2", Body: "new"}, false)
	if err != nil {
		t.Fatalf("Replace error: %v", err)
	}
	if replaced {
		t.Error("expected no replacement without upsert for a missing id")
	}

	replaced, err = col.Replace("2", note{ID: "2", Body: "new"}, true)
	if err != nil {
		t.Fatalf("Replace error: %v", err)
	}
	if !replaced {
		t.Error("expected upsert to insert a missing id")
	}

	all, _ := col.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 documents after upsert, got %d", len(all))
	}
	if all[0].Body != "updated" {
		t.Errorf("expected first note updated, got %q", all[0].Body)
	}
}

func TestDeletes(t *testing.T) {
	s, _ := openStore(t)
	col := store.NewCollection[note](s, "notes")
	col.Insert(note{ID: "1", Body: "keep"})
	col.Insert(note{ID: "2", Body: "drop"})
	col.Insert(note{ID: "3", Body: "drop"})

	deleted, err := col.DeleteByID("1")
	if err != nil {
		t.Fatalf("DeleteByID error: %v", err)
	}
	if !deleted {
		t.Error("expected DeleteByID to delete")
	}

	deleted, err = col.DeleteMany(func(n note) bool { return n.Body == "drop" })
	if err != nil {
		t.Fatalf("DeleteMany error: %v", err)
	}
	if !deleted {
		t.Error("expected DeleteMany to delete")
	}

	all, _ := col.All()
	if len(all) != 0 {
		t.Errorf("expected empty collection, got %d documents", len(all))
	}

	deleted, _ = col.DeleteByID("nope")
	if deleted {
		t.Error("expected no deletion for an unknown id")
	}
}

func TestDeleteOne_RemovesSingleMatch(t *testing.T) {
	s, _ := openStore(t)
	col := store.NewCollection[note](s, "notes")
	col.Insert(note{ID: "1", Body: "dup"})
	col.Insert(note{ID: "2", Body: "dup"})

	deleted, err := col.DeleteOne(func(n note) bool { return n.Body == "dup" })
	if err != nil {
		t.Fatalf("DeleteOne error: %v", err)
	}
	if !deleted {
		t.Error("expected DeleteOne to delete")
	}

	all, _ := col.All()
	if len(all) != 1 {
		t.Errorf("expected 1 document left, got %d", len(all))
	}
}

func TestPersistenceAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	s, err := store.Open(path, true)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	col := store.NewCollection[note](s, "notes")
	if err := col.Insert(note{ID: "1", Body: "persisted"}); err != nil {
		t.Fatalf("Insert error: %v", err)
	}

	reopened, err := store.Open(path, true)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	all, err := store.NewCollection[note](reopened, "notes").All()
	if err != nil {
		t.Fatalf("All error: %v", err)
	}
	if len(all) != 1 || all[0].Body != "persisted" {
		t.Errorf("expected persisted note after reopen, got %+v", all)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading store file: %v", err)
	}
	if strings.Contains(string(data), "\n") {
		t.Error("expected minified JSON on disk")
	}
}
