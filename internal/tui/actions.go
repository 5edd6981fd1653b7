package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/refdeck/refdeck/internal/keybinds"
	"github.com/refdeck/refdeck/internal/types"
)

// activeTopics returns the topic rows of the active category. An
// unknown category yields an empty slice, which renders as an empty
// sidebar instead of crashing.
func (m *Model) activeTopics() []types.Topic {
	return m.cat.Topics(m.sel.Snapshot().Category)
}

// activeTopic returns the topic the detail pane should show.
func (m *Model) activeTopic() (types.Topic, bool) {
	snap := m.sel.Snapshot()
	topic, key, ok := m.cat.TopicByID(snap.TopicID)
	if !ok || key != snap.Category {
		return types.Topic{}, false
	}
	return topic, true
}

// moveSelection moves the sidebar cursor by delta rows and refreshes
// the detail pane.
func (m *Model) moveSelection(delta int) {
	m.sel.Navigate(delta)
	m.afterSelectionChange()
}

// selectIndex jumps the sidebar cursor to a row position.
func (m *Model) selectIndex(idx int) {
	m.sel.SelectIndex(idx)
	m.afterSelectionChange()
}

// switchCategory activates a category tab. The selection resets to
// the category's first topic so both panes stay coherent.
func (m *Model) switchCategory(key string) {
	if key == "" {
		return
	}
	m.sel.SelectCategory(key)
	m.afterSelectionChange()
}

// jumpToTopic activates a topic anywhere in the catalog, switching
// category when needed. Unknown ids are ignored.
func (m *Model) jumpToTopic(id string) {
	_, key, ok := m.cat.TopicByID(id)
	if !ok {
		m.setStatus(fmt.Sprintf("Topic %q no longer exists", id))
		return
	}
	if key != m.sel.Snapshot().Category {
		m.sel.SelectCategory(key)
	}
	m.sel.SelectTopic(id)
	m.afterSelectionChange()
}

// afterSelectionChange refreshes dependent state after any selection
// movement: detail content, example focus, and the persisted session.
func (m *Model) afterSelectionChange() {
	m.exampleIndex = 0
	m.showAnswers = false
	m.updateDetailView()
	m.detailView.GotoTop()

	snap := m.sel.Snapshot()
	if err := m.sessionMgr.SetSelection(snap.Category, snap.TopicID); err != nil {
		m.setStatus("Failed to save session: " + err.Error())
	}
}

// openTopic confirms the current row: focus moves to the detail pane,
// the view is recorded in history, and the topic joins the recent list.
func (m *Model) openTopic() tea.Cmd {
	topic, ok := m.activeTopic()
	if !ok {
		return nil
	}

	m.focusedPanel = "detail"
	if err := m.sessionMgr.AddRecentTopic(topic.ID); err != nil {
		m.setStatus("Failed to save session: " + err.Error())
	}

	return m.recordViewCmd(topic)
}

// cycleExample advances the focused code example, wrapping around.
func (m *Model) cycleExample() {
	topic, ok := m.activeTopic()
	if !ok || len(topic.Examples) == 0 {
		return
	}
	m.exampleIndex = (m.exampleIndex + 1) % len(topic.Examples)
	m.updateDetailView()
	m.setStatus(fmt.Sprintf("Example %d of %d", m.exampleIndex+1, len(topic.Examples)))
}

// copyFocusedExample puts the focused example's source on the system
// clipboard.
func (m *Model) copyFocusedExample() {
	topic, ok := m.activeTopic()
	if !ok || len(topic.Examples) == 0 {
		m.setStatus("No code example to copy")
		return
	}
	idx := m.exampleIndex
	if idx >= len(topic.Examples) {
		idx = 0
	}
	if err := clipboard.WriteAll(topic.Examples[idx].Code); err != nil {
		m.setStatus("Clipboard unavailable: " + err.Error())
		return
	}
	m.setStatus(fmt.Sprintf("Example %q copied to clipboard", topic.Examples[idx].Title))
}

// openHelp switches to the help viewer. Any pending multi-key
// sequence is discarded so a stray 'g' does not survive the modal.
func (m *Model) openHelp() {
	m.keys.ClearMultiKeyState(keybinds.ContextNormal)
	m.mode = ModeHelp
	m.updateHelpView()
}

// recordViewCmd saves a topic view in the history database. Tracking
// can be disabled per session, and a missing manager is a no-op.
func (m *Model) recordViewCmd(topic types.Topic) tea.Cmd {
	if m.historyManager == nil || !m.sessionMgr.IsHistoryEnabled() {
		return nil
	}
	category := m.sel.Snapshot().Category
	return func() tea.Msg {
		if err := m.historyManager.Save(topic, category); err != nil {
			return errMsg{err: fmt.Errorf("record view: %w", err)}
		}
		return nil
	}
}

// loadHistoryCmd fetches recorded views for the history modal.
func (m *Model) loadHistoryCmd() tea.Cmd {
	if m.historyManager == nil {
		return nil
	}
	return func() tea.Msg {
		entries, err := m.historyManager.Load()
		if err != nil {
			return errMsg{err: fmt.Errorf("load history: %w", err)}
		}
		return historyLoadedMsg{entries: entries}
	}
}

// loadStatsCmd fetches per-topic and per-category view aggregates.
func (m *Model) loadStatsCmd() tea.Cmd {
	if m.historyManager == nil {
		return nil
	}
	return func() tea.Msg {
		topics, err := m.historyManager.Stats()
		if err != nil {
			return errMsg{err: fmt.Errorf("load stats: %w", err)}
		}
		categories, err := m.historyManager.CategoryStats()
		if err != nil {
			return errMsg{err: fmt.Errorf("load stats: %w", err)}
		}
		return statsLoadedMsg{topics: topics, categories: categories}
	}
}

// clearHistoryCmd wipes all recorded views.
func (m *Model) clearHistoryCmd() tea.Cmd {
	if m.historyManager == nil {
		return nil
	}
	return func() tea.Msg {
		if err := m.historyManager.Clear(); err != nil {
			return errMsg{err: fmt.Errorf("clear history: %w", err)}
		}
		return historyClearedMsg{}
	}
}
