package parser

import (
	"bytes"
	"encoding/json"
)

// JSONParser parses JSON item lists: either a bare array of {id, text}
// objects or an object with an "items" array
type JSONParser struct{}

// CanParse returns true if this parser can handle the file
func (p *JSONParser) CanParse(path string) bool {
	return GetFormat(path) == FormatJSON
}

// Parse parses a JSON file
func (p *JSONParser) Parse(path string, content []byte) (*Document, error) {
	entries, err := decodeJSONList(content)
	if err != nil {
		return nil, err
	}

	var items []Item
	for i, entry := range entries {
		if item, ok := toItem(path, i, 0, entry); ok {
			items = append(items, item)
		}
	}

	return &Document{
		Path:    path,
		Content: content,
		Format:  FormatJSON,
		Items:   items,
	}, nil
}

// decodeJSONList decodes either list form into its entries
func decodeJSONList(content []byte) ([]listItem, error) {
	if trimmed := bytes.TrimSpace(content); len(trimmed) > 0 && trimmed[0] == '[' {
		var entries []listItem
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, err
		}
		return entries, nil
	}

	var doc listDocument
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, err
	}
	return doc.Items, nil
}
