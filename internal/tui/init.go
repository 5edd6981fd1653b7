package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/refdeck/refdeck/internal/catalog"
	"github.com/refdeck/refdeck/internal/config"
	"github.com/refdeck/refdeck/internal/content"
	"github.com/refdeck/refdeck/internal/history"
	"github.com/refdeck/refdeck/internal/keybinds"
	"github.com/refdeck/refdeck/internal/loader"
	"github.com/refdeck/refdeck/internal/selection"
	"github.com/refdeck/refdeck/internal/session"
)

// New creates a new TUI model over the given catalog, restoring the
// previously persisted selection when it still resolves.
func New(cat *catalog.Catalog, mgr *session.Manager) (Model, error) {
	registry := keybinds.NewDefaultRegistry()
	if err := registry.Validate(); err != nil {
		return Model{}, fmt.Errorf("keybinding configuration: %w", err)
	}

	m := Model{
		sessionMgr:   mgr,
		cat:          cat,
		sel:          selection.New(cat),
		keys:         registry,
		mode:         ModeNormal,
		focusedPanel: "sidebar", // Start with sidebar focused
		detailView:   viewport.New(80, 20),
		helpView:     viewport.New(80, 20),
	}

	sess := mgr.GetSession()
	if sess.ActiveCategory != "" || sess.ActiveTopic != "" {
		m.sel.Restore(sess.ActiveCategory, sess.ActiveTopic)
	}
	m.updateDetailView()

	return m, nil
}

// Run starts the TUI
func Run() error {
	// Initialize config
	if err := config.Initialize(); err != nil {
		return err
	}

	// Built-in topic sets plus any user-authored files
	sets := content.Sets()
	userSets, err := loader.LoadDir(config.TopicsDir)
	if err != nil {
		return err
	}
	sets = append(sets, userSets...)

	cat, err := catalog.Build(sets...)
	if err != nil {
		return err
	}

	// Load session
	mgr := session.NewManagerAt(config.GetSessionFilePath())
	if err := mgr.Load(); err != nil {
		return err
	}

	// Create model
	m, err := New(cat, mgr)
	if err != nil {
		return err
	}

	// History is optional: a broken database degrades to no tracking
	if hm, err := history.NewManager(config.DatabasePath); err != nil {
		fmt.Fprintf(os.Stderr, "warning: view history disabled: %v\n", err)
	} else {
		m.historyManager = hm
	}
	defer m.Cleanup()

	// Start TUI (pass pointer since Update uses pointer receiver)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}
