package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/refdeck/refdeck/internal/types"
)

// Manager records topic views in SQLite and serves the history and
// stats views. One manager owns one database handle for the process.
type Manager struct {
	db *sql.DB
}

// NewManager opens (and if needed creates) the view-history database.
func NewManager(dbPath string) (*Manager, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}

	m := &Manager{db: db}
	if err := m.initSchema(); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Manager) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS topic_views (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME NOT NULL,
		topic_id TEXT NOT NULL,
		category TEXT NOT NULL,
		title TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_topic_views_timestamp ON topic_views(timestamp DESC);
	CREATE INDEX IF NOT EXISTS idx_topic_views_topic_id ON topic_views(topic_id);
	CREATE INDEX IF NOT EXISTS idx_topic_views_category ON topic_views(category);
	`

	_, err := m.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to initialize history schema: %w", err)
	}

	return nil
}

// Save records one topic view.
func (m *Manager) Save(topic types.Topic, category string) error {
	query := `
		INSERT INTO topic_views (timestamp, topic_id, category, title)
		VALUES (?, ?, ?, ?)
	`

	// Format timestamp for SQLite in local time
	timestampStr := time.Now().Local().Format("2006-01-02 15:04:05")

	_, err := m.db.Exec(query, timestampStr, topic.ID, category, topic.Title)
	if err != nil {
		return fmt.Errorf("failed to save history entry: %w", err)
	}

	return nil
}

// Load returns all view entries, most recent first.
func (m *Manager) Load() ([]types.HistoryEntry, error) {
	query := `
		SELECT id, timestamp, topic_id, category, title
		FROM topic_views
		ORDER BY timestamp DESC, id DESC
	`

	rows, err := m.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	defer rows.Close()

	return m.scanEntries(rows)
}

// LoadForTopic returns the view entries for one topic, most recent
// first.
func (m *Manager) LoadForTopic(topicID string) ([]types.HistoryEntry, error) {
	query := `
		SELECT id, timestamp, topic_id, category, title
		FROM topic_views
		WHERE topic_id = ?
		ORDER BY timestamp DESC, id DESC
	`

	rows, err := m.db.Query(query, topicID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history for topic: %w", err)
	}
	defer rows.Close()

	return m.scanEntries(rows)
}

func (m *Manager) scanEntries(rows *sql.Rows) ([]types.HistoryEntry, error) {
	var entries []types.HistoryEntry

	for rows.Next() {
		var id int64
		var timestamp string
		var topicID string
		var category string
		var title string

		if err := rows.Scan(&id, &timestamp, &topicID, &category, &title); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}

		// Parse timestamp as local time
		parsedTime, err := time.ParseInLocation("2006-01-02 15:04:05", timestamp, time.Local)
		if err != nil {
			// Try RFC3339 format as fallback
			parsedTime, err = time.Parse(time.RFC3339, timestamp)
			if err != nil {
				parsedTime = time.Now()
			}
		}

		entries = append(entries, types.HistoryEntry{
			ID:        id,
			Timestamp: parsedTime.Format(time.RFC3339),
			TopicID:   topicID,
			Category:  category,
			Title:     title,
		})
	}

	return entries, rows.Err()
}

// Stats returns per-topic view counts, most viewed first.
func (m *Manager) Stats() ([]types.TopicStats, error) {
	query := `
		SELECT topic_id, category, title, COUNT(*) AS views, MAX(timestamp) AS last_viewed
		FROM topic_views
		GROUP BY topic_id
		ORDER BY views DESC, last_viewed DESC
	`

	rows, err := m.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to load topic stats: %w", err)
	}
	defer rows.Close()

	var stats []types.TopicStats
	for rows.Next() {
		var s types.TopicStats
		if err := rows.Scan(&s.TopicID, &s.Category, &s.Title, &s.ViewCount, &s.LastViewed); err != nil {
			return nil, fmt.Errorf("failed to scan topic stats: %w", err)
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

// CategoryStats returns per-category view counts, most viewed first.
func (m *Manager) CategoryStats() ([]types.CategoryStats, error) {
	query := `
		SELECT category, COUNT(*) AS views, COUNT(DISTINCT topic_id) AS topics
		FROM topic_views
		GROUP BY category
		ORDER BY views DESC
	`

	rows, err := m.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to load category stats: %w", err)
	}
	defer rows.Close()

	var stats []types.CategoryStats
	for rows.Next() {
		var s types.CategoryStats
		if err := rows.Scan(&s.Category, &s.ViewCount, &s.Topics); err != nil {
			return nil, fmt.Errorf("failed to scan category stats: %w", err)
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

// Delete removes one history entry by row id.
func (m *Manager) Delete(id int64) error {
	_, err := m.db.Exec("DELETE FROM topic_views WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete history entry: %w", err)
	}
	return nil
}

// Clear removes all history entries.
func (m *Manager) Clear() error {
	_, err := m.db.Exec("DELETE FROM topic_views")
	if err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// GetCount returns the number of recorded views.
func (m *Manager) GetCount() (int, error) {
	var count int
	err := m.db.QueryRow("SELECT COUNT(*) FROM topic_views").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get history count: %w", err)
	}
	return count, nil
}

// Close closes the database handle.
func (m *Manager) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}
