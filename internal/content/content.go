/*
Package content holds the built-in topic sets that ship with refdeck.

Each category lives in its own file as a plain []types.Topic literal.
Sets returns them in display order; the catalog builder validates the
combined result (unique ids, non-empty titles) at startup, so a bad
edit to these files fails fast instead of rendering wrong.
*/
package content

import "github.com/refdeck/refdeck/internal/types"

// Sets returns the built-in categories in sidebar display order.
// The returned slices are fresh on every call so callers can append
// user-loaded topics without mutating package state.
func Sets() []types.Category {
	return []types.Category{
		{Key: "networking", Label: "Networking", Topics: clone(networkingTopics)},
		{Key: "oop", Label: "OOP Concepts", Topics: clone(oopTopics)},
		{Key: "databases", Label: "Databases", Topics: clone(databaseTopics)},
		{Key: "patterns", Label: "Design Patterns", Topics: clone(patternTopics)},
		{Key: "interview", Label: "Interview Prep", Topics: clone(interviewTopics)},
	}
}

func clone(topics []types.Topic) []types.Topic {
	out := make([]types.Topic, len(topics))
	copy(out, topics)
	return out
}
