package fixer

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"gopkg.in/yaml.v3"

	"github.com/pthm/uxtone/internal/parser"
)

// jsonTextPath is the path of an entry's text value: the document is either
// a bare array of entries or an object with an "items" array
func jsonTextPath(content []byte, idx int) string {
	if gjson.ParseBytes(content).IsArray() {
		return fmt.Sprintf("%d.text", idx)
	}
	return fmt.Sprintf("items.%d.text", idx)
}

// replaceJSON rewrites the text values of list entries in place, leaving the
// rest of the document byte for byte. Every edit is checked before any is
// applied; a value that is missing or no longer the original text is stale.
func replaceJSON(content []byte, edits []Edit) ([]byte, error) {
	if !gjson.ValidBytes(content) {
		return nil, fmt.Errorf("invalid JSON document")
	}

	paths := make([]string, len(edits))
	for i, edit := range edits {
		if edit.Item.Index < 0 {
			return nil, fmt.Errorf("%s: %w", edit.Item.ID, ErrStale)
		}
		path := jsonTextPath(content, edit.Item.Index)
		current := gjson.GetBytes(content, path)
		if current.Type != gjson.String || current.Str != edit.Item.Text {
			return nil, fmt.Errorf("%s: %w", edit.Item.ID, ErrStale)
		}
		paths[i] = path
	}

	out := content
	for i, edit := range edits {
		encoded, err := marshalString(edit.Converted)
		if err != nil {
			return nil, err
		}
		out, err = sjson.SetRawBytes(out, paths[i], encoded)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", edit.Item.ID, err)
		}
	}
	return out, nil
}

// marshalString encodes s as a JSON string without HTML escaping
func marshalString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// replaceYAML rewrites text values through the document node tree so that
// comments and key order survive
func replaceYAML(content []byte, edits []Edit) ([]byte, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, err
	}

	seq, err := parser.ItemSequence(&root)
	if err != nil {
		return nil, err
	}

	for _, edit := range edits {
		idx := edit.Item.Index
		if seq == nil || idx < 0 || idx >= len(seq.Content) {
			return nil, fmt.Errorf("%s: %w", edit.Item.ID, ErrStale)
		}
		node := parser.TextNode(seq.Content[idx])
		if node == nil || node.Value != edit.Item.Text {
			return nil, fmt.Errorf("%s: %w", edit.Item.ID, ErrStale)
		}
		node.Value = edit.Converted
	}

	var out bytes.Buffer
	enc := yaml.NewEncoder(&out)
	enc.SetIndent(2)
	if err := enc.Encode(&root); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
