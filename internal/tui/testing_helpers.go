package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/refdeck/refdeck/internal/catalog"
	"github.com/refdeck/refdeck/internal/session"
	"github.com/refdeck/refdeck/internal/types"
)

// testSets is a small fixture catalog: two populated categories and an
// empty one.
func testSets() []types.Category {
	return []types.Category{
		{Key: "net", Label: "Networking", Topics: []types.Topic{
			{ID: "a", Title: "DHCP", Summary: "address leasing"},
			{ID: "b", Title: "DNS", Summary: "name resolution",
				Examples: []types.CodeExample{
					{Title: "lookup", Language: "go", Code: "net.LookupIP(\"example.com\")"},
					{Title: "reverse", Language: "go", Code: "net.LookupAddr(\"93.184.216.34\")"},
				},
				Questions: []types.QuestionAnswer{
					{Question: "what is a TTL", Answer: "cache lifetime"},
				}},
		}},
		{Key: "db", Label: "Databases", Topics: []types.Topic{
			{ID: "idx", Title: "Indexes", Summary: "b-trees"},
		}},
		{Key: "empty", Label: "Empty"},
	}
}

// createTestModel builds a Model over the fixture catalog with a
// throwaway session file and a usable window size.
func createTestModel(t *testing.T) *Model {
	t.Helper()

	cat, err := catalog.Build(testSets()...)
	if err != nil {
		t.Fatalf("Failed to build fixture catalog: %v", err)
	}

	mgr := session.NewManagerAt(filepath.Join(t.TempDir(), ".session.json"))
	if err := mgr.Load(); err != nil {
		t.Fatalf("Failed to load session: %v", err)
	}

	m, err := New(cat, mgr)
	if err != nil {
		t.Fatalf("Failed to create model: %v", err)
	}
	m.width = 100
	m.height = 30
	m.resizeViews()
	m.updateDetailView()
	return &m
}

// stripANSI removes escape sequences so tests can assert on rendered
// text content.
func stripANSI(s string) string {
	var out strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}
