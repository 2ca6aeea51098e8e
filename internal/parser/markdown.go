package parser

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser extracts headings and paragraphs from markdown files
type MarkdownParser struct{}

// CanParse returns true if this parser can handle the file
func (p *MarkdownParser) CanParse(path string) bool {
	return GetFormat(path) == FormatMarkdown
}

// Parse parses a markdown file into one item per heading or paragraph
func (p *MarkdownParser) Parse(path string, content []byte) (*Document, error) {
	frontmatter, body, offset := ParseFrontmatter(content)

	md := goldmark.New()
	reader := text.NewReader(body)
	doc := md.Parser().Parse(reader)

	return &Document{
		Path:        path,
		Content:     content, // Keep original content
		Format:      FormatMarkdown,
		Items:       p.extractItems(path, doc, body, offset),
		Frontmatter: frontmatter,
	}, nil
}

// extractItems walks the AST and keeps the raw source of every text block.
// Tight list items hold a TextBlock instead of a Paragraph.
func (p *MarkdownParser) extractItems(path string, doc ast.Node, source []byte, offset int) []Item {
	var items []Item

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n.(type) {
		case *ast.Heading, *ast.Paragraph, *ast.TextBlock:
		default:
			return ast.WalkContinue, nil
		}

		lines := n.Lines()
		if lines.Len() == 0 {
			return ast.WalkSkipChildren, nil
		}

		start := lines.At(0).Start
		stop := lines.At(lines.Len() - 1).Stop
		raw := strings.TrimRight(string(source[start:stop]), "\r\n")
		if strings.TrimSpace(raw) == "" {
			return ast.WalkSkipChildren, nil
		}

		line := bytes.Count(source[:start], []byte("\n")) + 1 + offset
		items = append(items, Item{
			ID:        lineID(path, line),
			Text:      raw,
			StartLine: line,
			EndLine:   line + strings.Count(raw, "\n"),
			Index:     -1,
		})

		return ast.WalkSkipChildren, nil
	})

	return items
}
