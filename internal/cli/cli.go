// Package cli implements the non-interactive command surface: listing
// the catalog and printing single topics in text, JSON or YAML.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/refdeck/refdeck/internal/catalog"
	"github.com/refdeck/refdeck/internal/config"
	"github.com/refdeck/refdeck/internal/content"
	"github.com/refdeck/refdeck/internal/highlight"
	"github.com/refdeck/refdeck/internal/loader"
	"github.com/refdeck/refdeck/internal/types"
)

// Output formats for ShowTopic.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// LoadCatalog builds the full catalog: built-in sets first, then any
// user-authored topic files from the config directory.
func LoadCatalog() (*catalog.Catalog, error) {
	sets := content.Sets()
	userSets, err := loader.LoadDir(config.TopicsDir)
	if err != nil {
		return nil, err
	}
	return catalog.Build(append(sets, userSets...)...)
}

// ListCategories prints every category with its topic count.
func ListCategories(cat *catalog.Catalog, w io.Writer) {
	for _, key := range cat.Keys() {
		category, _ := cat.Get(key)
		fmt.Fprintf(w, "%-16s %-20s %d topics\n", key, category.Label, len(category.Topics))
	}
}

// ListTopics prints the topics of one category, or of the whole
// catalog when key is empty.
func ListTopics(cat *catalog.Catalog, key string, w io.Writer) error {
	keys := cat.Keys()
	if key != "" {
		if _, ok := cat.Get(key); !ok {
			return fmt.Errorf("unknown category %q (try 'refdeck list')", key)
		}
		keys = []string{key}
	}

	for _, k := range keys {
		for _, topic := range cat.Topics(k) {
			fmt.Fprintf(w, "%-24s %-12s %s\n", topic.ID, k, topic.Title)
		}
	}
	return nil
}

// ShowOptions controls ShowTopic's output.
type ShowOptions struct {
	Format  string // text, json or yaml; empty means text
	NoColor bool   // Suppress syntax highlighting in text output
}

// ShowTopic prints one topic in the requested format.
func ShowTopic(cat *catalog.Catalog, id string, opts ShowOptions, w io.Writer) error {
	topic, key, ok := cat.TopicByID(id)
	if !ok {
		return fmt.Errorf("unknown topic %q (try 'refdeck list --topics')", id)
	}

	switch opts.Format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(topic)
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(topic)
	case OutputText, "":
		writeText(w, topic, key, opts.NoColor)
		return nil
	default:
		return fmt.Errorf("unknown output format %q (expected text, json or yaml)", opts.Format)
	}
}

// writeText renders a topic for plain terminal reading.
func writeText(w io.Writer, topic types.Topic, category string, noColor bool) {
	fmt.Fprintf(w, "%s\n", topic.Title)
	if topic.Subtitle != "" {
		fmt.Fprintf(w, "%s\n", topic.Subtitle)
	}
	fmt.Fprintf(w, "[%s / %s]\n\n", category, topic.ID)

	fmt.Fprintf(w, "%s\n\n", topic.Summary)

	if topic.Explanation != "" {
		fmt.Fprintf(w, "Explanation\n%s\n%s\n\n", rule(), topic.Explanation)
	}
	if topic.Analogy != "" {
		fmt.Fprintf(w, "Analogy\n%s\n%s\n\n", rule(), topic.Analogy)
	}

	if len(topic.KeyPoints) > 0 {
		fmt.Fprintf(w, "Key Points\n%s\n", rule())
		for _, point := range topic.KeyPoints {
			fmt.Fprintf(w, "  - %s\n", point)
		}
		fmt.Fprintln(w)
	}

	for i, example := range topic.Examples {
		fmt.Fprintf(w, "Example %d: %s\n%s\n", i+1, example.Title, rule())
		code := example.Code
		if !noColor {
			code = highlight.Code(code, example.Language)
		}
		fmt.Fprintln(w, code)
		if example.Description != "" {
			fmt.Fprintf(w, "%s\n", example.Description)
		}
		fmt.Fprintln(w)
	}

	if len(topic.Resources) > 0 {
		fmt.Fprintf(w, "Resources\n%s\n", rule())
		for _, res := range topic.Resources {
			fmt.Fprintf(w, "  %s\n    %s\n", res.Title, res.URL)
		}
		fmt.Fprintln(w)
	}

	if len(topic.Questions) > 0 {
		fmt.Fprintf(w, "Questions\n%s\n", rule())
		for i, qa := range topic.Questions {
			fmt.Fprintf(w, "  Q%d: %s\n  A%d: %s\n", i+1, qa.Question, i+1, qa.Answer)
		}
	}
}

func rule() string {
	return strings.Repeat("-", 40)
}
