package parser

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a parsed input file and the text items found in it
type Document struct {
	Path        string
	Content     []byte
	Format      Format
	Items       []Item
	Frontmatter map[string]interface{} // YAML frontmatter from markdown files
}

// Texts returns the text of every item in document order
func (d *Document) Texts() []string {
	texts := make([]string, len(d.Items))
	for i, item := range d.Items {
		texts[i] = item.Text
	}
	return texts
}

// Item is one piece of UI text and where it came from
type Item struct {
	ID   string
	Text string
	// Line range in the source file, 1-based and inclusive
	StartLine int
	EndLine   int
	// Position in a JSON or YAML item list, -1 for line based formats
	Index int
}

// Format is the syntax of an input file
type Format int

const (
	FormatPlain Format = iota
	FormatMarkdown
	FormatJSON
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatMarkdown:
		return "markdown"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "plain"
	}
}

// Structured reports whether items live in a list rather than in lines
func (f Format) Structured() bool {
	return f == FormatJSON || f == FormatYAML
}

// StdinName is the document path used for text read from standard input
const StdinName = "stdin"

// Parser defines the interface for extracting items from a file
type Parser interface {
	Parse(path string, content []byte) (*Document, error)
	CanParse(path string) bool
}

// Parse reads and parses a file using the parser for its extension
func Parse(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseContent(path, content)
}

// ParseContent parses content as if it had been read from path
func ParseContent(path string, content []byte) (*Document, error) {
	doc, err := getParser(path).Parse(path, content)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// ParseReader parses everything read from r. The name selects the parser the
// same way a path does; StdinName parses as plain text.
func ParseReader(name string, r io.Reader) (*Document, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return ParseContent(name, content)
}

// getParser returns the appropriate parser for a file
func getParser(path string) Parser {
	switch GetFormat(path) {
	case FormatMarkdown:
		return &MarkdownParser{}
	case FormatJSON:
		return &JSONParser{}
	case FormatYAML:
		return &YAMLParser{}
	default:
		return &PlainParser{}
	}
}

// GetFormat returns the Format for a given path
func GetFormat(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".md", ".markdown":
		return FormatMarkdown
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatPlain
	}
}

// ParseFrontmatter extracts YAML frontmatter from content between --- delimiters.
// Returns the parsed frontmatter, the remaining content and the number of
// lines the frontmatter occupied.
func ParseFrontmatter(content []byte) (map[string]interface{}, []byte, int) {
	s := string(content)

	// Must start with ---
	if !strings.HasPrefix(s, "---") {
		return nil, content, 0
	}

	// Find the closing ---
	rest := s[3:]
	endIdx := strings.Index(rest, "\n---")
	if endIdx == -1 {
		return nil, content, 0
	}

	frontmatterStr := strings.TrimSpace(rest[:endIdx])

	var frontmatter map[string]interface{}
	if err := yaml.Unmarshal([]byte(frontmatterStr), &frontmatter); err != nil {
		return nil, content, 0
	}

	remaining := rest[endIdx+4:] // +4 for "\n---"
	if i := strings.IndexByte(remaining, '\n'); i >= 0 {
		remaining = remaining[i+1:]
	} else {
		remaining = ""
	}

	consumed := strings.Count(s[:len(s)-len(remaining)], "\n")
	return frontmatter, []byte(remaining), consumed
}

// lineID identifies a line based item
func lineID(path string, line int) string {
	return fmt.Sprintf("%s:%d", path, line)
}
