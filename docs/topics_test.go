package docs

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/etnz/shortpos"
	"github.com/etnz/shortpos/renderer"
	"github.com/google/go-cmp/cmp"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// This test ensures that the documentation is consistent:
	// 1. Every topic listed in readme.md can be loaded.
	// 2. Every .md file (except readme.md) is listed in readme.md.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() unexpected error = %v", err)
	}
	for _, topic := range all {
		if !slices.Contains(topicsInReadme, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestGetTopics(t *testing.T) {
	if _, err := GetTopic("nope"); err == nil {
		t.Errorf("GetTopic(%q) error = nil, want an error", "nope")
	}
	content, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*) unexpected error = %v", err)
	}
	for _, title := range []string{"# Interactive shell", "# CSV export", "# Configuration"} {
		if !strings.Contains(content, title) {
			t.Errorf("GetTopics(*) does not contain %q", title)
		}
	}
}

// TestCSVExample checks that the csv example in csv.md is what the renderer
// actually writes.
func TestCSVExample(t *testing.T) {
	blocks := fencedBlocks(t, "csv.md", "csv")
	if len(blocks) != 1 {
		t.Fatalf("csv.md has %d csv blocks, want 1", len(blocks))
	}

	var records []shortpos.Record
	if err := json.Unmarshal([]byte(`[
		{"positionHolder":"Fund A","issuerName":"Acme Oy","isinCode":"FI001","netShortPositionInPercent":1.5,"positionDate":"2025-01-02T00:00:00"},
		{"positionHolder":"Fund B","issuerName":"Acme Oy","isinCode":"FI001","netShortPositionInPercent":3.25,"positionDate":"2025-01-03T00:00:00"}
	]`), &records); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := renderer.WriteCSV(&buf, records); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(blocks[0], buf.String()); diff != "" {
		t.Errorf("csv.md example is out of date (-doc +renderer):\n%s", diff)
	}
}

// TestShellExample checks that the line example in shell.md is what the
// renderer actually prints.
func TestShellExample(t *testing.T) {
	r := shortpos.NewRecord("Fund A", "Acme Oy", "FI001", 1.5, "2025-10-16T00:00:00")
	want := renderer.Line(r) + "\n"
	blocks := fencedBlocks(t, "shell.md", "text")
	if !slices.Contains(blocks, want) {
		t.Errorf("shell.md has no example block %q", want)
	}
}

// fencedBlocks returns the content of the fenced code blocks of the given
// language in file.
func fencedBlocks(t *testing.T, file, lang string) []string {
	t.Helper()
	content, err := os.ReadFile(filepath.Clean(file))
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}

	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var blocks []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok || fcb.Info == nil || string(fcb.Info.Segment.Value(content)) != lang {
			return ast.WalkContinue, nil
		}
		var b strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			b.Write(line.Value(content))
		}
		blocks = append(blocks, b.String())
		return ast.WalkContinue, nil
	})
	return blocks
}
