package content

import (
	"testing"

	"github.com/refdeck/refdeck/internal/catalog"
)

func TestSets_BuildsCleanCatalog(t *testing.T) {
	cat, err := catalog.Build(Sets()...)
	if err != nil {
		t.Fatalf("Built-in content failed catalog validation: %v", err)
	}
	if cat.Len() != 5 {
		t.Errorf("Expected 5 categories, got %d", cat.Len())
	}
	if cat.TopicCount() == 0 {
		t.Error("Expected non-empty built-in catalog")
	}
}

func TestSets_EveryTopicHasSummary(t *testing.T) {
	for _, set := range Sets() {
		for _, topic := range set.Topics {
			if topic.Summary == "" {
				t.Errorf("Topic %q in %q has no summary", topic.ID, set.Key)
			}
			if topic.Explanation == "" {
				t.Errorf("Topic %q in %q has no explanation", topic.ID, set.Key)
			}
		}
	}
}

func TestSets_IndependentCopies(t *testing.T) {
	a := Sets()
	a[0].Topics[0].Title = "mutated"

	b := Sets()
	if b[0].Topics[0].Title == "mutated" {
		t.Error("Expected Sets to return independent copies")
	}
}
