package catalog

import (
	"fmt"

	"github.com/refdeck/refdeck/internal/types"
)

// Catalog is the full set of categories available to the application.
// It is built once at startup and never mutated afterwards; any number
// of renders may read it without coordination.
type Catalog struct {
	order      []string
	categories map[string]types.Category
}

// Build composes a catalog from ordered category sets. Category order
// equals input order; topic order within a category equals the set's
// declared order. Duplicate or empty topic ids and empty titles are
// construction errors - they are authoring defects, not runtime
// conditions to tolerate.
func Build(sets ...types.Category) (*Catalog, error) {
	c := &Catalog{
		categories: make(map[string]types.Category, len(sets)),
	}

	seenIDs := make(map[string]string) // topic id -> category key

	for _, set := range sets {
		if set.Key == "" {
			return nil, fmt.Errorf("category %q has an empty key", set.Label)
		}
		if existing, ok := c.categories[set.Key]; ok {
			// Same key twice means the later set extends the earlier one
			// (user topic files appending to a built-in category).
			existing.Topics = append(existing.Topics, set.Topics...)
			c.categories[set.Key] = existing
		} else {
			c.order = append(c.order, set.Key)
			c.categories[set.Key] = set
		}

		for _, topic := range set.Topics {
			if topic.ID == "" {
				return nil, fmt.Errorf("category %q contains a topic with an empty id (title: %q)", set.Key, topic.Title)
			}
			if topic.Title == "" {
				return nil, fmt.Errorf("topic %q has an empty title", topic.ID)
			}
			if prev, dup := seenIDs[topic.ID]; dup {
				return nil, fmt.Errorf("duplicate topic id %q (in %q and %q)", topic.ID, prev, set.Key)
			}
			seenIDs[topic.ID] = set.Key
		}
	}

	return c, nil
}

// Keys returns category keys in catalog order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.order))
	copy(keys, c.order)
	return keys
}

// Get looks up a category by key. The ok result must be checked: an
// unknown key is a recoverable condition, and callers render an empty
// list rather than failing.
func (c *Catalog) Get(key string) (types.Category, bool) {
	cat, ok := c.categories[key]
	return cat, ok
}

// Topics returns the topic sequence for a category, or an empty slice
// when the category does not exist.
func (c *Catalog) Topics(key string) []types.Topic {
	cat, ok := c.categories[key]
	if !ok {
		return nil
	}
	return cat.Topics
}

// TopicByID finds a topic anywhere in the catalog. Returns the topic,
// its category key, and whether it was found.
func (c *Catalog) TopicByID(id string) (types.Topic, string, bool) {
	for _, key := range c.order {
		for _, topic := range c.categories[key].Topics {
			if topic.ID == id {
				return topic, key, true
			}
		}
	}
	return types.Topic{}, "", false
}

// FirstTopicID returns the id of the first topic in a category, or ""
// when the category is missing or empty.
func (c *Catalog) FirstTopicID(key string) string {
	topics := c.Topics(key)
	if len(topics) == 0 {
		return ""
	}
	return topics[0].ID
}

// FirstCategory returns the first category key, or "" for an empty
// catalog.
func (c *Catalog) FirstCategory() string {
	if len(c.order) == 0 {
		return ""
	}
	return c.order[0]
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	return len(c.order)
}

// TopicCount returns the total number of topics across all categories.
func (c *Catalog) TopicCount() int {
	count := 0
	for _, key := range c.order {
		count += len(c.categories[key].Topics)
	}
	return count
}

// NextCategory returns the category key following the given one,
// wrapping around. Returns the first category for an unknown key.
func (c *Catalog) NextCategory(key string) string {
	return c.step(key, 1)
}

// PrevCategory returns the category key preceding the given one,
// wrapping around.
func (c *Catalog) PrevCategory(key string) string {
	return c.step(key, -1)
}

func (c *Catalog) step(key string, delta int) string {
	if len(c.order) == 0 {
		return ""
	}
	for i, k := range c.order {
		if k == key {
			next := (i + delta + len(c.order)) % len(c.order)
			return c.order[next]
		}
	}
	return c.order[0]
}
