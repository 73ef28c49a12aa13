package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-raycast/internal/storage"
)

func openJournal(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, r := range []storage.Run{
		{Platform: storage.PlatformTerminal, Ticks: 30, Duration: 1, Distance: 1},
		{Platform: storage.PlatformWindow, Ticks: 60, Duration: 2, Distance: 2},
		{Platform: storage.PlatformSSH, User: "bob", Ticks: 90, Duration: 3, Distance: 3},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	return store
}

func TestJournalTabsFilter(t *testing.T) {
	m := NewJournalModel(openJournal(t), 100, 30)

	if got := len(m.table.Rows()); got != 3 {
		t.Fatalf("all tab has %d rows, want 3", got)
	}

	// terminal, window, ssh each hold one run
	for _, want := range []string{storage.PlatformTerminal, storage.PlatformWindow, storage.PlatformSSH} {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(JournalModel)
		rows := m.table.Rows()
		if len(rows) != 1 || rows[0][1] != want {
			t.Errorf("tab %q rows = %v", want, rows)
		}
	}

	// Wraps back to all
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(JournalModel)
	if got := len(m.table.Rows()); got != 3 {
		t.Errorf("wrapped tab has %d rows, want 3", got)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(JournalModel)
	if rows := m.table.Rows(); len(rows) != 1 || rows[0][1] != storage.PlatformSSH {
		t.Errorf("prev tab rows = %v, want the ssh run", rows)
	}
}

func TestJournalView(t *testing.T) {
	m := NewJournalModel(openJournal(t), 100, 30)
	view := m.View()

	for _, want := range []string{"RUNS", "all", "bob", "3 runs, 180 ticks, 6s played, 6.0 cells walked"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	next, cmd := m.Update(runeKey('q'))
	if !isQuit(cmd) {
		t.Error("q should quit")
	}
	if next.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestJournalWithoutStore(t *testing.T) {
	m := NewJournalModel(nil, 80, 24)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty journal should say so")
	}
}

func TestRunRows(t *testing.T) {
	rows := RunRows([]storage.Run{{ID: 7, Platform: "window", Ticks: 12, Duration: 4, Distance: 1.25}})
	if len(rows) != 1 {
		t.Fatalf("got %d rows", len(rows))
	}
	want := []string{"7", "window", "", "12", "4s", "1.2"}
	for i, w := range want {
		if rows[0][i] != w {
			t.Errorf("column %d = %q, want %q", i, rows[0][i], w)
		}
	}
	if len(rows[0]) != len(RunColumns()) {
		t.Errorf("row has %d cells, want %d", len(rows[0]), len(RunColumns()))
	}
}

func TestRunsTable(t *testing.T) {
	out := RunsTable([]storage.Run{
		{ID: 1, Platform: "terminal", User: "alice"},
		{ID: 2, Platform: "window", User: "carol"},
	})
	for _, want := range []string{"Platform", "alice", "carol"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}
