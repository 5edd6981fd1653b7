package selection

import (
	"sync"
	"testing"

	"github.com/refdeck/refdeck/internal/catalog"
	"github.com/refdeck/refdeck/internal/types"
)

func buildCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Build(
		types.Category{
			Key:   "net",
			Label: "Networking",
			Topics: []types.Topic{
				{ID: "a", Title: "DHCP"},
				{ID: "b", Title: "DNS"},
				{ID: "c", Title: "TCP"},
			},
		},
		types.Category{
			Key:   "oop",
			Label: "OOP",
			Topics: []types.Topic{
				{ID: "d", Title: "Encapsulation"},
			},
		},
		types.Category{Key: "empty", Label: "Empty"},
	)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return c
}

func TestNew_DefaultsToFirstTopic(t *testing.T) {
	s := New(buildCatalog(t))

	snap := s.Snapshot()
	if snap.Category != "net" {
		t.Errorf("Expected category net, got %q", snap.Category)
	}
	if snap.TopicID != "a" {
		t.Errorf("Expected topic a, got %q", snap.TopicID)
	}
}

func TestNew_EmptyCatalog(t *testing.T) {
	c, err := catalog.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	s := New(c)

	snap := s.Snapshot()
	if snap.Category != "" || snap.TopicID != "" {
		t.Errorf("Expected empty selection for empty catalog, got %+v", snap)
	}
}

func TestSelectTopic_ReplacesWholesale(t *testing.T) {
	s := New(buildCatalog(t))

	s.SelectTopic("b")
	if snap := s.Snapshot(); snap.TopicID != "b" {
		t.Errorf("Expected topic b, got %q", snap.TopicID)
	}

	// Unknown ids are legal - nothing matches downstream, no error.
	s.SelectTopic("does-not-exist")
	if snap := s.Snapshot(); snap.TopicID != "does-not-exist" {
		t.Errorf("Expected permissive id to be stored, got %q", snap.TopicID)
	}
	if idx := s.ActiveIndex(); idx != -1 {
		t.Errorf("Expected ActiveIndex -1 for unknown id, got %d", idx)
	}
}

func TestSelectCategory_ResetsTopic(t *testing.T) {
	s := New(buildCatalog(t))
	s.SelectTopic("c")

	s.SelectCategory("oop")
	snap := s.Snapshot()
	if snap.Category != "oop" {
		t.Errorf("Expected category oop, got %q", snap.Category)
	}
	if snap.TopicID != "d" {
		t.Errorf("Expected topic reset to d, got %q", snap.TopicID)
	}
}

func TestSelectCategory_EmptyCategory(t *testing.T) {
	s := New(buildCatalog(t))

	s.SelectCategory("empty")
	snap := s.Snapshot()
	if snap.TopicID != "" {
		t.Errorf("Expected no active topic in empty category, got %q", snap.TopicID)
	}
}

func TestRestore(t *testing.T) {
	s := New(buildCatalog(t))

	s.Restore("net", "b")
	if snap := s.Snapshot(); snap.TopicID != "b" {
		t.Errorf("Expected restored topic b, got %q", snap.TopicID)
	}

	// Topic from another category falls back to the first topic.
	s.Restore("net", "d")
	if snap := s.Snapshot(); snap.TopicID != "a" {
		t.Errorf("Expected fallback to first topic a, got %q", snap.TopicID)
	}

	// Vanished category falls back to catalog defaults.
	s.Restore("gone", "b")
	snap := s.Snapshot()
	if snap.Category != "net" || snap.TopicID != "a" {
		t.Errorf("Expected default selection, got %+v", snap)
	}
}

func TestNavigate_Clamps(t *testing.T) {
	s := New(buildCatalog(t))

	s.Navigate(1)
	if snap := s.Snapshot(); snap.TopicID != "b" {
		t.Errorf("Expected topic b after down, got %q", snap.TopicID)
	}

	s.Navigate(10)
	if snap := s.Snapshot(); snap.TopicID != "c" {
		t.Errorf("Expected clamp at last topic c, got %q", snap.TopicID)
	}

	s.Navigate(-10)
	if snap := s.Snapshot(); snap.TopicID != "a" {
		t.Errorf("Expected clamp at first topic a, got %q", snap.TopicID)
	}
}

func TestNavigate_FromUnknownID(t *testing.T) {
	s := New(buildCatalog(t))
	s.SelectTopic("stale")

	s.Navigate(1)
	if snap := s.Snapshot(); snap.TopicID != "a" {
		t.Errorf("Expected recovery to first topic, got %q", snap.TopicID)
	}
}

func TestNavigate_EmptyCategory(t *testing.T) {
	s := New(buildCatalog(t))
	s.SelectCategory("empty")

	s.Navigate(1)
	if snap := s.Snapshot(); snap.TopicID != "" {
		t.Errorf("Expected no-op navigate in empty category, got %q", snap.TopicID)
	}
}

func TestSelectIndex(t *testing.T) {
	s := New(buildCatalog(t))

	s.SelectIndex(2)
	if snap := s.Snapshot(); snap.TopicID != "c" {
		t.Errorf("Expected topic c at index 2, got %q", snap.TopicID)
	}

	// Out of range is ignored.
	s.SelectIndex(99)
	if snap := s.Snapshot(); snap.TopicID != "c" {
		t.Errorf("Expected selection unchanged, got %q", snap.TopicID)
	}
	s.SelectIndex(-1)
	if snap := s.Snapshot(); snap.TopicID != "c" {
		t.Errorf("Expected selection unchanged, got %q", snap.TopicID)
	}
}

func TestConcurrentAccess(t *testing.T) {
	s := New(buildCatalog(t))

	var wg sync.WaitGroup
	iterations := 50

	for i := 0; i < iterations; i++ {
		wg.Add(4)

		go func() {
			defer wg.Done()
			s.Navigate(1)
		}()

		go func() {
			defer wg.Done()
			s.SelectCategory("oop")
		}()

		go func() {
			defer wg.Done()
			_ = s.Snapshot()
		}()

		go func() {
			defer wg.Done()
			_ = s.ActiveIndex()
		}()
	}

	wg.Wait()
	// If we get here without panic or data race, success
}
