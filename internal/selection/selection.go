package selection

import (
	"sync"

	"github.com/refdeck/refdeck/internal/catalog"
)

// State is the selection view-model: which category and which topic
// within it are currently shown. The TUI is the only writer; renderers
// read snapshots. Replacement is always wholesale - there is no
// partial mutation.
type State struct {
	mu sync.RWMutex

	cat *catalog.Catalog

	activeCategory string
	activeTopicID  string
}

// Snapshot is an immutable copy of the current selection.
type Snapshot struct {
	Category string
	TopicID  string
}

// New creates a selection over the given catalog, defaulting to the
// first category and its first topic. An empty catalog yields the
// "no topic active" state.
func New(cat *catalog.Catalog) *State {
	s := &State{cat: cat}
	s.activeCategory = cat.FirstCategory()
	s.activeTopicID = cat.FirstTopicID(s.activeCategory)
	return s
}

// Snapshot returns the current selection.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Category: s.activeCategory, TopicID: s.activeTopicID}
}

// SelectTopic replaces the active topic id. The id is not validated
// against the active category: an unknown id is legal and simply
// highlights nothing downstream.
func (s *State) SelectTopic(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeTopicID = id
}

// SelectCategory replaces the active category and resets the active
// topic to the first topic of the new category (empty when the
// category has no topics). Resetting keeps the sidebar and detail
// panes coherent after a switch.
func (s *State) SelectCategory(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeCategory = key
	s.activeTopicID = s.cat.FirstTopicID(key)
}

// Restore sets a previously persisted selection, falling back to the
// catalog defaults when the category or topic no longer exists.
func (s *State) Restore(category, topicID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cat.Get(category); !ok {
		s.activeCategory = s.cat.FirstCategory()
		s.activeTopicID = s.cat.FirstTopicID(s.activeCategory)
		return
	}
	s.activeCategory = category

	if _, key, ok := s.cat.TopicByID(topicID); ok && key == category {
		s.activeTopicID = topicID
		return
	}
	s.activeTopicID = s.cat.FirstTopicID(category)
}

// ActiveIndex returns the position of the active topic within the
// active category's sequence, or -1 when no topic matches.
func (s *State) ActiveIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i, topic := range s.cat.Topics(s.activeCategory) {
		if topic.ID == s.activeTopicID {
			return i
		}
	}
	return -1
}

// Navigate moves the active topic by delta rows within the active
// category, clamping at both ends. With no current match it selects
// the first topic. A category with no topics is a no-op.
func (s *State) Navigate(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	topics := s.cat.Topics(s.activeCategory)
	if len(topics) == 0 {
		return
	}

	idx := -1
	for i, topic := range topics {
		if topic.ID == s.activeTopicID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.activeTopicID = topics[0].ID
		return
	}

	idx += delta
	if idx < 0 {
		idx = 0
	} else if idx >= len(topics) {
		idx = len(topics) - 1
	}
	s.activeTopicID = topics[idx].ID
}

// SelectIndex sets the active topic by row position in the active
// category. Out-of-range indices are ignored.
func (s *State) SelectIndex(idx int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	topics := s.cat.Topics(s.activeCategory)
	if idx < 0 || idx >= len(topics) {
		return
	}
	s.activeTopicID = topics[idx].ID
}
