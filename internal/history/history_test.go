package history

import (
	"path/filepath"
	"testing"

	"github.com/refdeck/refdeck/internal/types"
)

func tempManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(filepath.Join(t.TempDir(), "refdeck.db"))
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	t.Cleanup(func() {
		if err := m.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	})
	return m
}

func TestSaveAndLoad(t *testing.T) {
	m := tempManager(t)

	topics := []types.Topic{
		{ID: "dhcp", Title: "DHCP"},
		{ID: "dns", Title: "DNS"},
	}
	for _, topic := range topics {
		if err := m.Save(topic, "net"); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	entries, err := m.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	// Most recent first
	if entries[0].TopicID != "dns" {
		t.Errorf("Expected dns first, got %q", entries[0].TopicID)
	}
	if entries[0].Category != "net" {
		t.Errorf("Expected category net, got %q", entries[0].Category)
	}
	if entries[1].Title != "DHCP" {
		t.Errorf("Expected title DHCP, got %q", entries[1].Title)
	}
}

func TestLoadForTopic(t *testing.T) {
	m := tempManager(t)

	if err := m.Save(types.Topic{ID: "dhcp", Title: "DHCP"}, "net"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := m.Save(types.Topic{ID: "dns", Title: "DNS"}, "net"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := m.Save(types.Topic{ID: "dhcp", Title: "DHCP"}, "net"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, err := m.LoadForTopic("dhcp")
	if err != nil {
		t.Fatalf("LoadForTopic failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries for dhcp, got %d", len(entries))
	}
	for _, e := range entries {
		if e.TopicID != "dhcp" {
			t.Errorf("Expected only dhcp entries, got %q", e.TopicID)
		}
	}
}

func TestStats(t *testing.T) {
	m := tempManager(t)

	views := []struct {
		topic    types.Topic
		category string
	}{
		{types.Topic{ID: "dhcp", Title: "DHCP"}, "net"},
		{types.Topic{ID: "dhcp", Title: "DHCP"}, "net"},
		{types.Topic{ID: "dhcp", Title: "DHCP"}, "net"},
		{types.Topic{ID: "poly", Title: "Polymorphism"}, "oop"},
	}
	for _, v := range views {
		if err := m.Save(v.topic, v.category); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	stats, err := m.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected 2 stat rows, got %d", len(stats))
	}
	if stats[0].TopicID != "dhcp" {
		t.Errorf("Expected dhcp most viewed, got %q", stats[0].TopicID)
	}
	if stats[0].ViewCount != 3 {
		t.Errorf("Expected 3 views for dhcp, got %d", stats[0].ViewCount)
	}
	if stats[0].LastViewed == "" {
		t.Error("Expected non-empty last viewed timestamp")
	}

	catStats, err := m.CategoryStats()
	if err != nil {
		t.Fatalf("CategoryStats failed: %v", err)
	}
	if len(catStats) != 2 {
		t.Fatalf("Expected 2 category rows, got %d", len(catStats))
	}
	if catStats[0].Category != "net" || catStats[0].ViewCount != 3 {
		t.Errorf("Expected net with 3 views first, got %+v", catStats[0])
	}
	if catStats[0].Topics != 1 {
		t.Errorf("Expected 1 distinct topic in net, got %d", catStats[0].Topics)
	}
}

func TestDeleteAndClear(t *testing.T) {
	m := tempManager(t)

	if err := m.Save(types.Topic{ID: "dhcp", Title: "DHCP"}, "net"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := m.Save(types.Topic{ID: "dns", Title: "DNS"}, "net"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, err := m.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := m.Delete(entries[0].ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	count, err := m.GetCount()
	if err != nil {
		t.Fatalf("GetCount failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 entry after delete, got %d", count)
	}

	if err := m.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	count, err = m.GetCount()
	if err != nil {
		t.Fatalf("GetCount failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 entries after clear, got %d", count)
	}
}

func TestEmptyDatabase(t *testing.T) {
	m := tempManager(t)

	entries, err := m.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}

	stats, err := m.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if len(stats) != 0 {
		t.Errorf("Expected no stats, got %d", len(stats))
	}
}
