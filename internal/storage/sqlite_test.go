package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(Run{Platform: "terminal", Ticks: 10}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	runs, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("Expected 1 run after reopen, got %d", len(runs))
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTemp(t)

	in := []Run{
		{Platform: "terminal", User: "alice", Ticks: 300, Duration: 10, Distance: 4.5},
		{Platform: "window", Ticks: 90, Duration: 3, Distance: 1.2},
		{Platform: "ssh", User: "bob", Ticks: 60, Duration: 2, Distance: 0},
	}
	for _, r := range in {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Newest first
	if runs[0].Platform != "ssh" || runs[0].User != "bob" {
		t.Errorf("runs[0] = %+v, want the ssh run", runs[0])
	}
	if runs[2].Distance != 4.5 || runs[2].Ticks != 300 {
		t.Errorf("runs[2] = %+v, want the terminal run", runs[2])
	}
	if runs[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}
}

func TestStoreRecentRunsFilterAndLimit(t *testing.T) {
	store := openTemp(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{Platform: "terminal", Ticks: i})
	}
	store.SaveRun(Run{Platform: "window", Ticks: 99})

	runs, err := store.RecentRuns("terminal", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	for _, r := range runs {
		if r.Platform != "terminal" {
			t.Errorf("unexpected platform %q", r.Platform)
		}
	}
	if runs[0].Ticks != 4 {
		t.Errorf("newest terminal run ticks = %d, want 4", runs[0].Ticks)
	}

	window, err := store.RecentRuns("window", 0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(window) != 1 {
		t.Errorf("Expected 1 window run, got %d", len(window))
	}
}

func TestStoreTotals(t *testing.T) {
	store := openTemp(t)

	// Empty database
	tot, err := store.Totals()
	if err != nil {
		t.Fatalf("Totals() failed: %v", err)
	}
	if tot != (Totals{}) {
		t.Errorf("empty totals = %+v", tot)
	}

	store.SaveRun(Run{Platform: "terminal", Ticks: 30, Duration: 1, Distance: 1.5})
	store.SaveRun(Run{Platform: "window", Ticks: 60, Duration: 2, Distance: 2.5})

	tot, err = store.Totals()
	if err != nil {
		t.Fatalf("Totals() failed: %v", err)
	}
	want := Totals{Runs: 2, Ticks: 90, Duration: 3, Distance: 4.0}
	if tot != want {
		t.Errorf("Totals() = %+v, want %+v", tot, want)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTemp(t)

	store.SaveRun(Run{Platform: "terminal"})
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}
