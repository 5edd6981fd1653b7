package tui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/refdeck/refdeck/internal/keybinds"
)

func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	// Global keys. Text input (goto) swallows everything except ctrl+c.
	globalOK := m.mode != ModeGoto || msg.String() == "ctrl+c"
	if action, ok := m.keys.Match(keybinds.ContextGlobal, msg.String()); ok && globalOK {
		// Modal contexts may shadow global keys; check the specific
		// context first before honoring the global binding.
		if !m.keys.HasContextBinding(m.keyContext(), msg.String()) {
			switch action {
			case keybinds.ActionQuit:
				m.Cleanup()
				return tea.Quit
			case keybinds.ActionOpenHelp:
				if m.mode == ModeNormal {
					m.openHelp()
					return nil
				}
			}
		}
	}

	// Mode-specific handling
	switch m.mode {
	case ModeNormal:
		return m.handleNormalKeys(msg)
	case ModeGoto:
		return m.handleGotoKeys(msg)
	case ModeHelp:
		return m.handleHelpKeys(msg)
	case ModeHistory:
		return m.handleHistoryKeys(msg)
	case ModeHistoryClearConfirm:
		return m.handleHistoryClearConfirmKeys(msg)
	case ModeStats:
		return m.handleStatsKeys(msg)
	}

	return nil
}

func (m *Model) handleNormalKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok, partial := m.keys.MatchMultiKey(keybinds.ContextNormal, msg.String())
	if partial {
		return nil // Waiting for the rest of a multi-key sequence
	}
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionNavigateUp:
		if m.focusedPanel == "detail" {
			m.detailView.ScrollUp(1)
		} else {
			m.moveSelection(-1)
		}

	case keybinds.ActionNavigateDown:
		if m.focusedPanel == "detail" {
			m.detailView.ScrollDown(1)
		} else {
			m.moveSelection(1)
		}

	case keybinds.ActionHalfPageUp:
		if m.focusedPanel == "detail" {
			m.detailView.HalfPageUp()
		} else {
			m.moveSelection(-5)
		}

	case keybinds.ActionHalfPageDown:
		if m.focusedPanel == "detail" {
			m.detailView.HalfPageDown()
		} else {
			m.moveSelection(5)
		}

	case keybinds.ActionGoToTop:
		if m.focusedPanel == "detail" {
			m.detailView.GotoTop()
		} else {
			m.selectIndex(0)
		}

	case keybinds.ActionGoToBottom:
		if m.focusedPanel == "detail" {
			m.detailView.GotoBottom()
		} else {
			m.selectIndex(len(m.activeTopics()) - 1)
		}

	case keybinds.ActionOpenGoto:
		m.mode = ModeGoto
		m.gotoInput = ""

	case keybinds.ActionSwitchFocus:
		if m.focusedPanel == "sidebar" {
			m.focusedPanel = "detail"
		} else {
			m.focusedPanel = "sidebar"
		}

	case keybinds.ActionNextCategory:
		m.switchCategory(m.cat.NextCategory(m.sel.Snapshot().Category))

	case keybinds.ActionPrevCategory:
		m.switchCategory(m.cat.PrevCategory(m.sel.Snapshot().Category))

	case keybinds.ActionSelect:
		return m.openTopic()

	case keybinds.ActionNextExample:
		m.cycleExample()

	case keybinds.ActionCopyExample:
		m.copyFocusedExample()

	case keybinds.ActionToggleAnswers:
		m.showAnswers = !m.showAnswers
		m.updateDetailView()

	case keybinds.ActionOpenHistory:
		m.mode = ModeHistory
		return m.loadHistoryCmd()

	case keybinds.ActionOpenStats:
		m.mode = ModeStats
		return m.loadStatsCmd()
	}

	return nil
}

func (m *Model) handleGotoKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		if idx, err := strconv.Atoi(m.gotoInput); err == nil {
			m.selectIndex(idx - 1) // 1-based in the UI
		}
		m.mode = ModeNormal
		m.gotoInput = ""
	case "esc":
		m.mode = ModeNormal
		m.gotoInput = ""
	case "backspace":
		if len(m.gotoInput) > 0 {
			m.gotoInput = m.gotoInput[:len(m.gotoInput)-1]
		}
	default:
		if len(msg.String()) == 1 && msg.String() >= "0" && msg.String() <= "9" {
			m.gotoInput += msg.String()
		}
	}
	return nil
}

func (m *Model) handleHelpKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keys.Match(keybinds.ContextHelp, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionNavigateUp:
		m.helpView.ScrollUp(1)
	case keybinds.ActionNavigateDown:
		m.helpView.ScrollDown(1)
	case keybinds.ActionCloseModal:
		m.mode = ModeNormal
	}
	return nil
}

func (m *Model) handleHistoryKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keys.Match(keybinds.ContextHistory, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionNavigateUp:
		if m.historyIndex > 0 {
			m.historyIndex--
		}
	case keybinds.ActionNavigateDown:
		if m.historyIndex < len(m.historyEntries)-1 {
			m.historyIndex++
		}
	case keybinds.ActionSelect:
		// Jump to the topic under the cursor
		if m.historyIndex < len(m.historyEntries) {
			entry := m.historyEntries[m.historyIndex]
			m.mode = ModeNormal
			m.jumpToTopic(entry.TopicID)
		}
	case keybinds.ActionClearHistory:
		if len(m.historyEntries) > 0 {
			m.mode = ModeHistoryClearConfirm
		}
	case keybinds.ActionToggleHistory:
		enabled := !m.sessionMgr.IsHistoryEnabled()
		if err := m.sessionMgr.SetHistoryEnabled(enabled); err != nil {
			m.setStatus("Failed to save session: " + err.Error())
			return nil
		}
		if enabled {
			m.setStatus("History tracking enabled")
		} else {
			m.setStatus("History tracking disabled")
		}
	case keybinds.ActionCloseModal:
		m.mode = ModeNormal
	}
	return nil
}

func (m *Model) handleHistoryClearConfirmKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keys.Match(keybinds.ContextConfirm, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionConfirm:
		m.mode = ModeHistory
		return m.clearHistoryCmd()
	case keybinds.ActionCancel:
		m.mode = ModeHistory
	}
	return nil
}

func (m *Model) handleStatsKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keys.Match(keybinds.ContextStats, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionNavigateUp:
		if m.statsIndex > 0 {
			m.statsIndex--
		}
	case keybinds.ActionNavigateDown:
		if m.statsIndex < len(m.topicStats)-1 {
			m.statsIndex++
		}
	case keybinds.ActionCloseModal:
		m.mode = ModeNormal
	}
	return nil
}
