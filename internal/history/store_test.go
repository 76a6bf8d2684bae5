package history

import (
	"fmt"
	"testing"
)

func TestLoad_MissingFileIsEmptyHistory(t *testing.T) {
	store := NewStore(t.TempDir())
	entries, err := store.Load(7)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty history, got %d entries", len(entries))
	}
}

func TestAppend_FrontInsertsNewestFirst(t *testing.T) {
	store := NewStore(t.TempDir())

	if _, err := store.Append(1, Entry{Question: "first", Answer: "a1"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	entries, err := store.Append(1, Entry{Question: "second", Answer: "a2"})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Question != "second" || entries[1].Question != "first" {
		t.Fatalf("expected newest first, got %q then %q", entries[0].Question, entries[1].Question)
	}
	if entries[0].ID == "" || entries[0].AskedAt == "" {
		t.Fatalf("expected generated id and timestamp, got %+v", entries[0])
	}
}

func TestAppend_EvictsOldestPastCap(t *testing.T) {
	store := NewStore(t.TempDir())

	for i := 0; i < MaxEntries+5; i++ {
		if _, err := store.Append(3, Entry{Question: fmt.Sprintf("q%d", i)}); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	entries, err := store.Load(3)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(entries) != MaxEntries {
		t.Fatalf("expected cap of %d, got %d", MaxEntries, len(entries))
	}
	if entries[0].Question != fmt.Sprintf("q%d", MaxEntries+4) {
		t.Fatalf("expected newest entry at front, got %q", entries[0].Question)
	}
	if entries[len(entries)-1].Question != "q5" {
		t.Fatalf("expected q5 as oldest survivor, got %q", entries[len(entries)-1].Question)
	}
}

func TestHistoryIsKeyedPerPack(t *testing.T) {
	store := NewStore(t.TempDir())

	if _, err := store.Append(1, Entry{Question: "pack one"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := store.Append(2, Entry{Question: "pack two"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	one, _ := store.Load(1)
	two, _ := store.Load(2)
	if len(one) != 1 || len(two) != 1 {
		t.Fatalf("expected one entry per pack, got %d and %d", len(one), len(two))
	}
	if one[0].Question != "pack one" || two[0].Question != "pack two" {
		t.Fatalf("histories crossed packs: %q / %q", one[0].Question, two[0].Question)
	}
}

func TestClear(t *testing.T) {
	store := NewStore(t.TempDir())

	if _, err := store.Append(9, Entry{Question: "q"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := store.Clear(9); err != nil {
		t.Fatalf("clear: %v", err)
	}
	entries, err := store.Load(9)
	if err != nil {
		t.Fatalf("load after clear: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty history after clear, got %d", len(entries))
	}

	// Clearing an already-empty history is fine.
	if err := store.Clear(9); err != nil {
		t.Fatalf("clear empty: %v", err)
	}
}
