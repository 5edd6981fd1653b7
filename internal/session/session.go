package session

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/refdeck/refdeck/internal/config"
	"github.com/refdeck/refdeck/internal/types"
)

// Manager handles persisted session state: the last selection, the
// history toggle, and the recently-viewed topic list.
type Manager struct {
	path    string
	session *types.Session
}

// NewManager creates a session manager backed by the configured
// session file (local .session.json wins over the global one).
func NewManager() *Manager {
	return NewManagerAt(config.GetSessionFilePath())
}

// NewManagerAt creates a session manager backed by an explicit path.
func NewManagerAt(path string) *Manager {
	return &Manager{
		path:    path,
		session: &types.Session{},
	}
}

// Load loads the session from disk. A missing file yields the default
// session rather than an error.
func (m *Manager) Load() error {
	data, err := os.ReadFile(m.path)
	if err != nil {
		m.session = defaultSession()
		return nil
	}

	var session types.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return fmt.Errorf("failed to parse session file: %w", err)
	}

	if session.HistoryEnabled == nil {
		enabled := true
		session.HistoryEnabled = &enabled
	}

	m.session = &session
	return nil
}

// Save writes the session to disk.
func (m *Manager) Save() error {
	data, err := json.MarshalIndent(m.session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := os.WriteFile(m.path, data, config.FilePermissions); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}

// GetSession returns the current session.
func (m *Manager) GetSession() *types.Session {
	return m.session
}

// SetSelection records the active category and topic and persists them.
func (m *Manager) SetSelection(category, topicID string) error {
	m.session.ActiveCategory = category
	m.session.ActiveTopic = topicID
	return m.Save()
}

// IsHistoryEnabled returns whether view history tracking is enabled.
func (m *Manager) IsHistoryEnabled() bool {
	if m.session.HistoryEnabled == nil {
		return true
	}
	return *m.session.HistoryEnabled
}

// SetHistoryEnabled sets whether view history tracking is enabled.
func (m *Manager) SetHistoryEnabled(enabled bool) error {
	m.session.HistoryEnabled = &enabled
	return m.Save()
}

// AddRecentTopic adds a topic id to the MRU (Most Recently Used) list.
// The id is added to the front of the list, duplicates are removed,
// and the list is limited to maxRecentTopics (10) entries.
func (m *Manager) AddRecentTopic(topicID string) error {
	const maxRecentTopics = 10

	newRecent := []string{}
	for _, id := range m.session.RecentTopics {
		if id != topicID {
			newRecent = append(newRecent, id)
		}
	}

	newRecent = append([]string{topicID}, newRecent...)

	if len(newRecent) > maxRecentTopics {
		newRecent = newRecent[:maxRecentTopics]
	}

	m.session.RecentTopics = newRecent
	return m.Save()
}

// GetRecentTopics returns the MRU topic list.
func (m *Manager) GetRecentTopics() []string {
	if m.session.RecentTopics == nil {
		return []string{}
	}
	return m.session.RecentTopics
}

func defaultSession() *types.Session {
	enabled := true
	return &types.Session{HistoryEnabled: &enabled}
}
