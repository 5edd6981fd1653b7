package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755
)

var (
	// ConfigDir is the global configuration directory (~/.refdeck)
	ConfigDir string

	// TopicsDir holds user-authored topic files (YAML/JSON)
	TopicsDir string

	// DatabasePath is the SQLite database file for view history
	DatabasePath string

	// SessionFile is the session state file
	SessionFile string
)

// Initialize sets up the configuration directories and files
// It creates ~/.refdeck/ if it doesn't exist
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	// Set global paths
	ConfigDir = filepath.Join(homeDir, ".refdeck")
	TopicsDir = filepath.Join(ConfigDir, "topics")
	DatabasePath = filepath.Join(ConfigDir, "refdeck.db")
	SessionFile = filepath.Join(ConfigDir, ".session.json")

	// Create directories if they don't exist
	dirs := []string{ConfigDir, TopicsDir}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, DirPermissions); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	// Create empty session file if it doesn't exist
	if _, err := os.Stat(SessionFile); os.IsNotExist(err) {
		defaultSession := []byte(`{"historyEnabled":true}`)
		if err := os.WriteFile(SessionFile, defaultSession, FilePermissions); err != nil {
			return fmt.Errorf("failed to create session file: %w", err)
		}
	}

	return nil
}

// GetSessionFilePath returns the session file path (local or global)
// A .session.json in the working directory takes precedence, so a
// project checkout can carry its own reading position.
func GetSessionFilePath() string {
	if _, err := os.Stat(".session.json"); err == nil {
		return ".session.json"
	}
	return SessionFile
}
