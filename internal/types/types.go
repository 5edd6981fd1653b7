package types

// Topic represents one self-contained unit of educational content.
// Topics are immutable once the catalog is built.
type Topic struct {
	ID          string           `json:"id" yaml:"id"`
	Title       string           `json:"title" yaml:"title"`
	Subtitle    string           `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Summary     string           `json:"summary,omitempty" yaml:"summary,omitempty"`
	Explanation string           `json:"explanation,omitempty" yaml:"explanation,omitempty"`
	Analogy     string           `json:"analogy,omitempty" yaml:"analogy,omitempty"`
	KeyPoints   []string         `json:"keyPoints,omitempty" yaml:"keyPoints,omitempty"`
	Examples    []CodeExample    `json:"codeExamples,omitempty" yaml:"codeExamples,omitempty"`
	Resources   []Resource       `json:"resources,omitempty" yaml:"resources,omitempty"`
	Questions   []QuestionAnswer `json:"questions,omitempty" yaml:"questions,omitempty"`
}

// CodeExample is an inert code snippet attached to a topic.
// The code is display data only - it is never parsed or executed.
type CodeExample struct {
	Title       string `json:"title" yaml:"title"`
	Language    string `json:"language" yaml:"language"`
	Code        string `json:"code" yaml:"code"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Resource is an external reference (article, RFC, book chapter).
type Resource struct {
	Title       string `json:"title" yaml:"title"`
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// QuestionAnswer is one interview-style Q&A pair.
type QuestionAnswer struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// Category is a named, ordered group of topics shown together in one
// navigation list.
type Category struct {
	Key    string  `json:"key" yaml:"key"`
	Label  string  `json:"label" yaml:"label"`
	Topics []Topic `json:"topics" yaml:"topics"`
}

// TopicFile is the shape of a user-authored topic file. Category is
// optional; files without one land in the "custom" category.
type TopicFile struct {
	Category string  `json:"category,omitempty" yaml:"category,omitempty"`
	Topics   []Topic `json:"topics" yaml:"topics"`
}

// Session represents persisted UI state between runs.
type Session struct {
	ActiveCategory string   `json:"activeCategory,omitempty"`
	ActiveTopic    string   `json:"activeTopic,omitempty"`
	HistoryEnabled *bool    `json:"historyEnabled,omitempty"`
	RecentTopics   []string `json:"recentTopics,omitempty"`
}

// HistoryEntry represents a recorded topic view.
type HistoryEntry struct {
	ID        int64  `json:"id,omitempty"`
	Timestamp string `json:"timestamp"`
	TopicID   string `json:"topicId"`
	Category  string `json:"category"`
	Title     string `json:"title"`
}

// TopicStats aggregates view history for one topic.
type TopicStats struct {
	TopicID    string `json:"topicId"`
	Category   string `json:"category"`
	Title      string `json:"title"`
	ViewCount  int    `json:"viewCount"`
	LastViewed string `json:"lastViewed"`
}

// CategoryStats aggregates view history for one category.
type CategoryStats struct {
	Category  string `json:"category"`
	ViewCount int    `json:"viewCount"`
	Topics    int    `json:"topics"`
}
