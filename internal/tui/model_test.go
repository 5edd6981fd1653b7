package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNew_DefaultsToFirstTopic(t *testing.T) {
	m := createTestModel(t)

	snap := m.sel.Snapshot()
	if snap.Category != "net" {
		t.Errorf("Expected first category active, got %q", snap.Category)
	}
	if snap.TopicID != "a" {
		t.Errorf("Expected first topic active, got %q", snap.TopicID)
	}
	if m.mode != ModeNormal {
		t.Errorf("Expected ModeNormal, got %v", m.mode)
	}
	if m.focusedPanel != "sidebar" {
		t.Errorf("Expected sidebar focus, got %q", m.focusedPanel)
	}
}

func TestSwitchCategory_ResetsToFirstTopic(t *testing.T) {
	m := createTestModel(t)
	m.sel.SelectTopic("b")

	m.switchCategory("db")

	snap := m.sel.Snapshot()
	if snap.Category != "db" {
		t.Errorf("Expected db active, got %q", snap.Category)
	}
	if snap.TopicID != "idx" {
		t.Errorf("Expected first topic of db, got %q", snap.TopicID)
	}
}

func TestSwitchCategory_EmptyKeyIgnored(t *testing.T) {
	m := createTestModel(t)
	before := m.sel.Snapshot()

	m.switchCategory("")

	if m.sel.Snapshot() != before {
		t.Error("Expected empty category key to be a no-op")
	}
}

func TestJumpToTopic_SwitchesCategory(t *testing.T) {
	m := createTestModel(t)

	m.jumpToTopic("idx")

	snap := m.sel.Snapshot()
	if snap.Category != "db" || snap.TopicID != "idx" {
		t.Errorf("Expected db/idx, got %q/%q", snap.Category, snap.TopicID)
	}
}

func TestJumpToTopic_UnknownID(t *testing.T) {
	m := createTestModel(t)
	before := m.sel.Snapshot()

	m.jumpToTopic("nope")

	if m.sel.Snapshot() != before {
		t.Error("Expected unknown topic id to leave the selection untouched")
	}
	if m.statusMsg == "" {
		t.Error("Expected a status message for the unknown id")
	}
}

func TestMoveSelection_PersistsSession(t *testing.T) {
	m := createTestModel(t)

	m.moveSelection(1)

	sess := m.sessionMgr.GetSession()
	if sess.ActiveTopic != "b" {
		t.Errorf("Expected session to record topic b, got %q", sess.ActiveTopic)
	}
	if sess.ActiveCategory != "net" {
		t.Errorf("Expected session to record category net, got %q", sess.ActiveCategory)
	}
}

func TestOpenTopic_FocusesDetailAndRecordsRecent(t *testing.T) {
	m := createTestModel(t)
	m.sel.SelectTopic("b")

	m.openTopic()

	if m.focusedPanel != "detail" {
		t.Errorf("Expected detail focus after open, got %q", m.focusedPanel)
	}
	recent := m.sessionMgr.GetRecentTopics()
	if len(recent) != 1 || recent[0] != "b" {
		t.Errorf("Expected recent topics [b], got %v", recent)
	}
}

func TestOpenTopic_NoMatchIsNoOp(t *testing.T) {
	m := createTestModel(t)
	m.sel.SelectTopic("nope")

	if cmd := m.openTopic(); cmd != nil {
		t.Error("Expected no command for a selection matching nothing")
	}
	if m.focusedPanel != "sidebar" {
		t.Error("Expected focus to stay on sidebar")
	}
}

func TestGotoInput(t *testing.T) {
	m := createTestModel(t)
	m.mode = ModeGoto

	press := func(s string) {
		m.handleGotoKeys(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	}
	press("2")
	if m.gotoInput != "2" {
		t.Fatalf("Expected input '2', got %q", m.gotoInput)
	}

	m.handleGotoKeys(tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != ModeNormal {
		t.Error("Expected enter to leave goto mode")
	}
	if got := m.sel.Snapshot().TopicID; got != "b" {
		t.Errorf("Expected goto 2 to select second topic, got %q", got)
	}
}

func TestGotoInput_OutOfRange(t *testing.T) {
	m := createTestModel(t)
	m.mode = ModeGoto
	m.gotoInput = "99"

	m.handleGotoKeys(tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.sel.Snapshot().TopicID; got != "a" {
		t.Errorf("Expected out-of-range goto to keep selection, got %q", got)
	}
}

func TestCycleExample_Wraps(t *testing.T) {
	m := createTestModel(t)
	m.sel.SelectTopic("b") // has two examples

	m.cycleExample()
	if m.exampleIndex != 1 {
		t.Errorf("Expected example index 1, got %d", m.exampleIndex)
	}
	m.cycleExample()
	if m.exampleIndex != 0 {
		t.Errorf("Expected wrap to index 0, got %d", m.exampleIndex)
	}
}

func TestSelectionChange_ResetsDetailState(t *testing.T) {
	m := createTestModel(t)
	m.sel.SelectTopic("b")
	m.cycleExample()
	m.showAnswers = true

	m.moveSelection(-1)

	if m.exampleIndex != 0 {
		t.Errorf("Expected example focus reset, got %d", m.exampleIndex)
	}
	if m.showAnswers {
		t.Error("Expected answers hidden after selection change")
	}
}

func TestUpdate_HistoryLoaded(t *testing.T) {
	m := createTestModel(t)
	m.historyIndex = 3

	m.Update(historyLoadedMsg{entries: nil})

	if m.historyIndex != 0 {
		t.Errorf("Expected history cursor reset, got %d", m.historyIndex)
	}
}

func TestSetStatus_TruncatesLongMessages(t *testing.T) {
	m := createTestModel(t)

	long := make([]byte, 300)
	for i := range long {
		long[i] = 'x'
	}
	m.setStatus(string(long))

	if len(m.statusMsg) != StatusTruncateLen {
		t.Errorf("Expected status truncated to %d, got %d", StatusTruncateLen, len(m.statusMsg))
	}
}
