package docs

import (
	"bufio"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestTopicsMatchReadme keeps the readme index in sync with the topic files:
// every topic listed in readme.md must load, and every topic file must be
// listed in readme.md.
func TestTopicsMatchReadme(t *testing.T) {
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	var listed []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if m := topicRegex.FindStringSubmatch(scanner.Text()); len(m) > 1 {
			listed = append(listed, strings.TrimSpace(m[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, name := range listed {
		if _, err := Topic(name); err != nil {
			t.Errorf("failed to get topic %q: %v", name, err)
		}
	}

	all, err := Topics()
	if err != nil {
		t.Fatalf("Topics: %v", err)
	}
	for _, name := range all {
		found := false
		for _, l := range listed {
			if l == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in readme.md", name)
		}
	}
}

// TestTopicsStructure checks that every topic is well formed markdown
// opening with a single level-1 heading.
func TestTopicsStructure(t *testing.T) {
	all, err := Topics()
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range all {
		t.Run(name, func(t *testing.T) {
			content, err := Topic(name)
			if err != nil {
				t.Fatal(err)
			}
			source := []byte(content)
			root := goldmark.DefaultParser().Parse(text.NewReader(source))

			var h1 int
			first := true
			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if !entering {
					return ast.WalkContinue, nil
				}
				if h, ok := n.(*ast.Heading); ok {
					if h.Level == 1 {
						h1++
						if !first {
							t.Errorf("level-1 heading is not the first block")
						}
					}
					first = false
				} else if _, ok := n.(*ast.Document); !ok && n.Type() == ast.TypeBlock {
					first = false
				}
				return ast.WalkContinue, nil
			})
			if h1 != 1 {
				t.Errorf("want exactly one level-1 heading, got %d", h1)
			}
		})
	}
}

func TestTopicStar(t *testing.T) {
	content, err := Topic("*")
	if err != nil {
		t.Fatalf("Topic(*): %v", err)
	}
	for _, want := range []string{"# Dashboard", "# Contribution Sheet", "# Quote Sources"} {
		if !strings.Contains(content, want) {
			t.Errorf("concatenated topics miss %q", want)
		}
	}
}

func TestTopicNotFound(t *testing.T) {
	if _, err := Topic("nope"); err == nil {
		t.Errorf("expected error for unknown topic")
	}
}
