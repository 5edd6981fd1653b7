package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/refdeck/refdeck/internal/catalog"
	"github.com/refdeck/refdeck/internal/history"
	"github.com/refdeck/refdeck/internal/keybinds"
	"github.com/refdeck/refdeck/internal/selection"
	"github.com/refdeck/refdeck/internal/session"
	"github.com/refdeck/refdeck/internal/types"
)

// Mode represents the current TUI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeGoto
	ModeHelp
	ModeHistory
	ModeHistoryClearConfirm
	ModeStats
)

// Model represents the TUI state
type Model struct {
	// Core state
	sessionMgr     *session.Manager
	historyManager *history.Manager // nil when the database failed to open
	cat            *catalog.Catalog
	sel            *selection.State
	keys           *keybinds.Registry
	mode           Mode

	// UI state
	width        int
	height       int
	focusedPanel string // "sidebar" or "detail"
	statusMsg    string
	errorText    string
	gotoInput    string

	// Detail viewer state
	detailView   viewport.Model
	exampleIndex int  // Focused code example within the active topic
	showAnswers  bool // Reveal answers in the Q&A section

	// Help state
	helpView viewport.Model

	// History modal state
	historyEntries []types.HistoryEntry
	historyIndex   int

	// Stats modal state
	topicStats    []types.TopicStats
	categoryStats []types.CategoryStats
	statsIndex    int
}

// Messages delivered by commands.

type historyLoadedMsg struct {
	entries []types.HistoryEntry
}

type statsLoadedMsg struct {
	topics     []types.TopicStats
	categories []types.CategoryStats
}

type historyClearedMsg struct{}

type errMsg struct {
	err error
}

// Init initializes the TUI
func (m *Model) Init() tea.Cmd {
	return nil
}

// Cleanup closes database connections and cleans up resources
func (m *Model) Cleanup() {
	if m.historyManager != nil {
		if err := m.historyManager.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "error closing history database: %v\n", err)
		}
	}
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)

	// Mouse events are captured and discarded so the terminal buffer
	// does not scroll underneath the alt screen. Navigation stays
	// keyboard-only.
	case tea.MouseMsg:

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeViews()
		m.updateDetailView()

	case historyLoadedMsg:
		m.historyEntries = msg.entries
		m.historyIndex = 0
		if len(msg.entries) > 0 {
			m.setStatus(fmt.Sprintf("Loaded %d history entries", len(msg.entries)))
		}

	case statsLoadedMsg:
		m.topicStats = msg.topics
		m.categoryStats = msg.categories
		m.statsIndex = 0

	case historyClearedMsg:
		m.historyEntries = nil
		m.historyIndex = 0
		m.setStatus("History cleared")

	case errMsg:
		m.errorText = msg.err.Error()
		m.setStatus(msg.err.Error())
	}

	return m, cmd
}

// View renders the current mode
func (m *Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	switch m.mode {
	case ModeHelp:
		return m.renderHelp()
	case ModeHistory:
		return m.renderHistory()
	case ModeHistoryClearConfirm:
		return m.renderHistoryClearConfirmation()
	case ModeStats:
		return m.renderStats()
	default:
		return m.renderMain()
	}
}

// setStatus records a status message, truncating long ones so the
// status bar never wraps.
func (m *Model) setStatus(msg string) {
	if len(msg) > StatusTruncateLen {
		msg = msg[:StatusTruncateLen-3] + "..."
	}
	m.statusMsg = msg
}

// resizeViews recomputes viewport dimensions after a window resize.
func (m *Model) resizeViews() {
	detailWidth := m.width - m.sidebarWidth() - 2*ViewportBorderWidth
	if detailWidth < 20 {
		detailWidth = 20
	}
	detailHeight := m.height - MainViewHeightOffset
	if detailHeight < 5 {
		detailHeight = 5
	}
	m.detailView.Width = detailWidth
	m.detailView.Height = detailHeight

	m.helpView.Width = m.width - ModalWidthMargin
	m.helpView.Height = m.height - ModalHeightMargin
}

// sidebarWidth computes the sidebar column width for the current
// terminal size.
func (m *Model) sidebarWidth() int {
	w := m.width * SidebarWidthPercent / 100
	if w < SidebarMinWidth {
		w = SidebarMinWidth
	}
	return w
}

// keyContext maps the current mode to its keybinding context.
func (m *Model) keyContext() keybinds.Context {
	switch m.mode {
	case ModeHistory:
		return keybinds.ContextHistory
	case ModeHistoryClearConfirm:
		return keybinds.ContextConfirm
	case ModeStats:
		return keybinds.ContextStats
	case ModeHelp:
		return keybinds.ContextHelp
	default:
		return keybinds.ContextNormal
	}
}
