package parser

import (
	"strings"
)

// PlainParser treats every non-blank line as one item
type PlainParser struct{}

// CanParse returns true (fallback parser)
func (p *PlainParser) CanParse(path string) bool {
	return true
}

// Parse parses a plain text file
func (p *PlainParser) Parse(path string, content []byte) (*Document, error) {
	lines := strings.Split(string(content), "\n")

	var items []Item
	for i, line := range lines {
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		items = append(items, Item{
			ID:        lineID(path, i+1),
			Text:      text,
			StartLine: i + 1,
			EndLine:   i + 1,
			Index:     -1,
		})
	}

	return &Document{
		Path:    path,
		Content: content,
		Format:  FormatPlain,
		Items:   items,
	}, nil
}
