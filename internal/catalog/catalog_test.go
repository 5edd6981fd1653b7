package catalog

import (
	"strings"
	"testing"

	"github.com/refdeck/refdeck/internal/types"
)

func testSets() []types.Category {
	return []types.Category{
		{
			Key:   "net",
			Label: "Networking",
			Topics: []types.Topic{
				{ID: "a", Title: "DHCP"},
				{ID: "b", Title: "DNS"},
			},
		},
		{
			Key:   "oop",
			Label: "OOP",
			Topics: []types.Topic{
				{ID: "c", Title: "Polymorphism"},
			},
		},
	}
}

func TestBuild_PreservesOrder(t *testing.T) {
	c, err := Build(testSets()...)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	keys := c.Keys()
	if len(keys) != 2 {
		t.Fatalf("Expected 2 categories, got %d", len(keys))
	}
	if keys[0] != "net" || keys[1] != "oop" {
		t.Errorf("Expected order [net oop], got %v", keys)
	}

	topics := c.Topics("net")
	if len(topics) != 2 {
		t.Fatalf("Expected 2 topics in net, got %d", len(topics))
	}
	if topics[0].Title != "DHCP" || topics[1].Title != "DNS" {
		t.Errorf("Topic order not preserved: %q, %q", topics[0].Title, topics[1].Title)
	}
}

func TestBuild_RejectsDuplicateIDs(t *testing.T) {
	sets := testSets()
	sets[1].Topics = append(sets[1].Topics, types.Topic{ID: "a", Title: "Duplicate"})

	_, err := Build(sets...)
	if err == nil {
		t.Fatal("Expected error for duplicate topic id, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate topic id") {
		t.Errorf("Expected duplicate id error, got: %v", err)
	}
}

func TestBuild_RejectsEmptyID(t *testing.T) {
	_, err := Build(types.Category{
		Key:    "net",
		Topics: []types.Topic{{ID: "", Title: "Nameless"}},
	})
	if err == nil {
		t.Fatal("Expected error for empty topic id, got nil")
	}
}

func TestBuild_RejectsEmptyTitle(t *testing.T) {
	_, err := Build(types.Category{
		Key:    "net",
		Topics: []types.Topic{{ID: "x", Title: ""}},
	})
	if err == nil {
		t.Fatal("Expected error for empty topic title, got nil")
	}
}

func TestBuild_RejectsEmptyCategoryKey(t *testing.T) {
	_, err := Build(types.Category{Key: "", Label: "No Key"})
	if err == nil {
		t.Fatal("Expected error for empty category key, got nil")
	}
}

func TestBuild_MergesRepeatedCategoryKey(t *testing.T) {
	c, err := Build(
		types.Category{Key: "net", Label: "Networking", Topics: []types.Topic{{ID: "a", Title: "DHCP"}}},
		types.Category{Key: "net", Topics: []types.Topic{{ID: "b", Title: "DNS"}}},
	)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if c.Len() != 1 {
		t.Errorf("Expected 1 category after merge, got %d", c.Len())
	}
	topics := c.Topics("net")
	if len(topics) != 2 {
		t.Fatalf("Expected 2 topics after merge, got %d", len(topics))
	}
	if topics[1].ID != "b" {
		t.Errorf("Expected appended topic b last, got %q", topics[1].ID)
	}
}

func TestGet_MissingCategory(t *testing.T) {
	c, err := Build(testSets()...)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if _, ok := c.Get("missing"); ok {
		t.Error("Expected ok=false for missing category")
	}
	if topics := c.Topics("missing"); len(topics) != 0 {
		t.Errorf("Expected empty topics for missing category, got %d", len(topics))
	}
}

func TestTopicByID(t *testing.T) {
	c, err := Build(testSets()...)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	topic, key, ok := c.TopicByID("c")
	if !ok {
		t.Fatal("Expected to find topic c")
	}
	if topic.Title != "Polymorphism" {
		t.Errorf("Expected Polymorphism, got %q", topic.Title)
	}
	if key != "oop" {
		t.Errorf("Expected category oop, got %q", key)
	}

	if _, _, ok := c.TopicByID("nope"); ok {
		t.Error("Expected ok=false for unknown topic id")
	}
}

func TestFirstTopicID(t *testing.T) {
	c, err := Build(append(testSets(), types.Category{Key: "empty", Label: "Empty"})...)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if got := c.FirstTopicID("net"); got != "a" {
		t.Errorf("Expected first topic a, got %q", got)
	}
	if got := c.FirstTopicID("empty"); got != "" {
		t.Errorf("Expected empty id for empty category, got %q", got)
	}
	if got := c.FirstTopicID("missing"); got != "" {
		t.Errorf("Expected empty id for missing category, got %q", got)
	}
}

func TestCategoryStepping(t *testing.T) {
	c, err := Build(testSets()...)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if got := c.NextCategory("net"); got != "oop" {
		t.Errorf("Expected oop after net, got %q", got)
	}
	if got := c.NextCategory("oop"); got != "net" {
		t.Errorf("Expected wrap to net, got %q", got)
	}
	if got := c.PrevCategory("net"); got != "oop" {
		t.Errorf("Expected wrap back to oop, got %q", got)
	}
	if got := c.NextCategory("unknown"); got != "net" {
		t.Errorf("Expected first category for unknown key, got %q", got)
	}
}

func TestEmptyCatalog(t *testing.T) {
	c, err := Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if c.FirstCategory() != "" {
		t.Error("Expected empty first category for empty catalog")
	}
	if c.NextCategory("anything") != "" {
		t.Error("Expected empty step result for empty catalog")
	}
	if c.TopicCount() != 0 {
		t.Error("Expected zero topics for empty catalog")
	}
}
