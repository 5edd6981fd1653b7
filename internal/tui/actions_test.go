package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/refdeck/refdeck/internal/history"
)

func withHistory(t *testing.T, m *Model) {
	t.Helper()
	hm, err := history.NewManager(filepath.Join(t.TempDir(), "views.db"))
	if err != nil {
		t.Fatalf("Failed to open history database: %v", err)
	}
	t.Cleanup(func() { hm.Close() })
	m.historyManager = hm
}

func TestOpenTopic_RecordsView(t *testing.T) {
	m := createTestModel(t)
	withHistory(t, m)
	m.sel.SelectTopic("b")

	cmd := m.openTopic()
	if cmd == nil {
		t.Fatal("Expected a record command")
	}
	if msg := cmd(); msg != nil {
		t.Fatalf("Expected silent success, got %v", msg)
	}

	entries, err := m.historyManager.Load()
	if err != nil {
		t.Fatalf("Failed to load history: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 recorded view, got %d", len(entries))
	}
	if entries[0].TopicID != "b" || entries[0].Category != "net" {
		t.Errorf("Expected view of net/b, got %s/%s", entries[0].Category, entries[0].TopicID)
	}
}

func TestOpenTopic_TrackingDisabled(t *testing.T) {
	m := createTestModel(t)
	withHistory(t, m)
	if err := m.sessionMgr.SetHistoryEnabled(false); err != nil {
		t.Fatalf("Failed to disable tracking: %v", err)
	}

	if cmd := m.openTopic(); cmd != nil {
		t.Error("Expected no record command while tracking is disabled")
	}
}

func TestClearHistoryCmd(t *testing.T) {
	m := createTestModel(t)
	withHistory(t, m)

	cmd := m.openTopic()
	cmd()

	msg := m.clearHistoryCmd()()
	if _, ok := msg.(historyClearedMsg); !ok {
		t.Fatalf("Expected historyClearedMsg, got %T", msg)
	}

	count, err := m.historyManager.GetCount()
	if err != nil {
		t.Fatalf("Failed to count history: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected empty history after clear, got %d entries", count)
	}
}

func TestLoadStatsCmd(t *testing.T) {
	m := createTestModel(t)
	withHistory(t, m)

	m.openTopic()() // one view of net/a
	m.openTopic()()

	msg := m.loadStatsCmd()()
	stats, ok := msg.(statsLoadedMsg)
	if !ok {
		t.Fatalf("Expected statsLoadedMsg, got %T", msg)
	}
	if len(stats.topics) != 1 {
		t.Fatalf("Expected stats for 1 topic, got %d", len(stats.topics))
	}
	if stats.topics[0].ViewCount != 2 {
		t.Errorf("Expected 2 views, got %d", stats.topics[0].ViewCount)
	}
}

func TestHistoryModalKeys(t *testing.T) {
	m := createTestModel(t)
	m.mode = ModeHistory
	m.historyEntries = nil

	_ = m.handleHistoryKeys(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("D")})
	if m.mode != ModeHistory {
		t.Error("Expected clear with no entries to stay in history mode")
	}

	_ = m.handleHistoryKeys(tea.KeyMsg{Type: tea.KeyEscape})
	if m.mode != ModeNormal {
		t.Errorf("Expected esc to close the modal, got mode %v", m.mode)
	}
}

func TestHistoryClearConfirmKeys(t *testing.T) {
	m := createTestModel(t)
	withHistory(t, m)
	m.mode = ModeHistoryClearConfirm

	cmd := m.handleHistoryClearConfirmKeys(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	if cmd != nil {
		t.Error("Expected cancel to produce no command")
	}
	if m.mode != ModeHistory {
		t.Errorf("Expected cancel to return to history mode, got %v", m.mode)
	}

	m.mode = ModeHistoryClearConfirm
	cmd = m.handleHistoryClearConfirmKeys(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	if cmd == nil {
		t.Fatal("Expected confirm to produce a clear command")
	}
}
