package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/refdeck/refdeck/internal/types"
	"gopkg.in/yaml.v3"
)

// DefaultCategoryKey is where topics from files without an explicit
// category land.
const DefaultCategoryKey = "custom"

// LoadDir reads every *.yaml, *.yml and *.json file in dir and returns
// the category sets they declare, grouped by category key in first-seen
// order. A missing directory yields no sets; a malformed file is a
// startup error naming the file.
func LoadDir(dir string) ([]types.Category, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read topics directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == ".yaml" || ext == ".yml" || ext == ".json" {
			names = append(names, entry.Name())
		}
	}
	// Deterministic catalog order regardless of directory listing order
	sort.Strings(names)

	var order []string
	grouped := make(map[string]*types.Category)

	for _, name := range names {
		path := filepath.Join(dir, name)
		file, err := ParseTopicFile(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		key := file.Category
		if key == "" {
			key = DefaultCategoryKey
		}

		cat, ok := grouped[key]
		if !ok {
			cat = &types.Category{Key: key, Label: labelFor(key)}
			grouped[key] = cat
			order = append(order, key)
		}
		cat.Topics = append(cat.Topics, file.Topics...)
	}

	sets := make([]types.Category, 0, len(order))
	for _, key := range order {
		sets = append(sets, *grouped[key])
	}
	return sets, nil
}

// ParseTopicFile parses one topic file. The file may hold a TopicFile
// document ({category, topics}), a bare array of topics, or a single
// topic.
func ParseTopicFile(path string) (types.TopicFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.TopicFile{}, fmt.Errorf("failed to read file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		return parseJSON(data)
	}

	// YAML also handles JSON content
	return parseYAML(data)
}

func parseJSON(data []byte) (types.TopicFile, error) {
	// Try the full document shape first
	var file types.TopicFile
	if err := json.Unmarshal(data, &file); err == nil && len(file.Topics) > 0 {
		return file, nil
	}

	// Try a bare array of topics
	var topics []types.Topic
	if err := json.Unmarshal(data, &topics); err == nil && len(topics) > 0 {
		return types.TopicFile{Topics: topics}, nil
	}

	// Try a single topic
	var topic types.Topic
	if err := json.Unmarshal(data, &topic); err != nil {
		return types.TopicFile{}, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if topic.ID == "" {
		return types.TopicFile{}, fmt.Errorf("no topics found in file")
	}

	return types.TopicFile{Topics: []types.Topic{topic}}, nil
}

func parseYAML(data []byte) (types.TopicFile, error) {
	var file types.TopicFile
	if err := yaml.Unmarshal(data, &file); err == nil && len(file.Topics) > 0 {
		return file, nil
	}

	var topics []types.Topic
	if err := yaml.Unmarshal(data, &topics); err == nil && len(topics) > 0 {
		return types.TopicFile{Topics: topics}, nil
	}

	var topic types.Topic
	if err := yaml.Unmarshal(data, &topic); err != nil {
		return types.TopicFile{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if topic.ID == "" {
		return types.TopicFile{}, fmt.Errorf("no topics found in file")
	}

	return types.TopicFile{Topics: []types.Topic{topic}}, nil
}

// labelFor turns a category key into a display label ("my-notes" ->
// "My Notes") for file-defined categories that carry no label of
// their own.
func labelFor(key string) string {
	words := strings.FieldsFunc(key, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	if len(words) == 0 {
		return key
	}
	return strings.Join(words, " ")
}
